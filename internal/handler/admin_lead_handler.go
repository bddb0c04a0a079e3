package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dealspro/dealspro_api/internal/models"
	"github.com/dealspro/dealspro_api/internal/service"
	"github.com/dealspro/dealspro_api/internal/utils"
)

// AdminLeadHandler handles lead review for the admin console.
type AdminLeadHandler struct {
	leadService *service.LeadService
}

// NewAdminLeadHandler constructs an AdminLeadHandler.
func NewAdminLeadHandler(leadService *service.LeadService) *AdminLeadHandler {
	return &AdminLeadHandler{leadService: leadService}
}

// statusFilter parses the optional ?status= query. It writes a 400 and
// returns false on an unknown status.
func statusFilter(c *gin.Context) (models.LeadStatus, bool) {
	raw := c.Query("status")
	if raw == "" {
		return "", true
	}
	status, err := models.ParseLeadStatus(raw)
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Unknown status filter")
		return "", false
	}
	return status, true
}

func leadKind(c *gin.Context) (models.LeadKind, bool) {
	kind, err := models.ParseLeadKind(c.Param("kind"))
	if err != nil {
		utils.Error(c, 404, "LEAD_NOT_FOUND", "Lead not found")
		return "", false
	}
	return kind, true
}

// ListInbox handles GET /v1/admin/leads?status=
func (h *AdminLeadHandler) ListInbox(c *gin.Context) {
	status, ok := statusFilter(c)
	if !ok {
		return
	}

	entries, err := h.leadService.Inbox(c.Request.Context(), status)
	if err != nil {
		respondError(c, err, "LEAD_NOT_FOUND", "Lead not found")
		return
	}

	page, limit := pageParams(c, defaultAdminPageSize)
	items, total := utils.Paginate(entries, page, limit)
	utils.SuccessWithPagination(c, 200, "Leads retrieved", items, page, limit, total)
}

// ListBrands handles GET /v1/admin/leads/brands?status=
func (h *AdminLeadHandler) ListBrands(c *gin.Context) {
	status, ok := statusFilter(c)
	if !ok {
		return
	}

	subs, err := h.leadService.ListBrands(c.Request.Context(), status)
	if err != nil {
		respondError(c, err, "LEAD_NOT_FOUND", "Lead not found")
		return
	}
	utils.Success(c, 200, "Brand submissions retrieved", subs)
}

// ListInfluencers handles GET /v1/admin/leads/influencers?status=
func (h *AdminLeadHandler) ListInfluencers(c *gin.Context) {
	status, ok := statusFilter(c)
	if !ok {
		return
	}

	apps, err := h.leadService.ListInfluencers(c.Request.Context(), status)
	if err != nil {
		respondError(c, err, "LEAD_NOT_FOUND", "Lead not found")
		return
	}
	utils.Success(c, 200, "Influencer applications retrieved", apps)
}

// Approve handles POST /v1/admin/leads/:kind/:id/approve
func (h *AdminLeadHandler) Approve(c *gin.Context) {
	h.review(c, models.LeadApproved)
}

// Reject handles POST /v1/admin/leads/:kind/:id/reject
func (h *AdminLeadHandler) Reject(c *gin.Context) {
	h.review(c, models.LeadRejected)
}

func (h *AdminLeadHandler) review(c *gin.Context, status models.LeadStatus) {
	kind, ok := leadKind(c)
	if !ok {
		return
	}

	entry, err := h.leadService.SetStatus(c.Request.Context(), kind, c.Param("id"), status)
	if err != nil {
		respondError(c, err, "LEAD_NOT_FOUND", "Lead not found")
		return
	}
	utils.Success(c, 200, "Lead "+string(status), entry)
}

// Delete handles DELETE /v1/admin/leads/:kind/:id
func (h *AdminLeadHandler) Delete(c *gin.Context) {
	kind, ok := leadKind(c)
	if !ok {
		return
	}

	if err := h.leadService.Delete(c.Request.Context(), kind, c.Param("id")); err != nil {
		respondError(c, err, "LEAD_NOT_FOUND", "Lead not found")
		return
	}
	utils.Success(c, 200, "Lead deleted successfully", nil)
}
