package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dealspro/dealspro_api/internal/service"
	"github.com/dealspro/dealspro_api/internal/utils"
	"github.com/dealspro/dealspro_api/internal/validation"
)

// LeadHandler accepts the public brand and influencer forms.
type LeadHandler struct {
	leadService *service.LeadService
}

// NewLeadHandler constructs a LeadHandler.
func NewLeadHandler(leadService *service.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// SubmitBrand handles POST /v1/brands/submissions
func (h *LeadHandler) SubmitBrand(c *gin.Context) {
	var form validation.BrandForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	sub, err := h.leadService.SubmitBrand(c.Request.Context(), form)
	if err != nil {
		respondError(c, err, "LEAD_NOT_FOUND", "Lead not found")
		return
	}
	utils.Success(c, 201, "Thanks! Our team will review your product and get back to you.", sub)
}

// SubmitInfluencer handles POST /v1/influencers/applications
func (h *LeadHandler) SubmitInfluencer(c *gin.Context) {
	var form validation.InfluencerForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	app, err := h.leadService.SubmitInfluencer(c.Request.Context(), form)
	if err != nil {
		respondError(c, err, "LEAD_NOT_FOUND", "Lead not found")
		return
	}
	utils.Success(c, 201, "Application received! We will reach out soon.", app)
}
