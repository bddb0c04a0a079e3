package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dealspro/dealspro_api/internal/models"
	"github.com/dealspro/dealspro_api/internal/service"
	"github.com/dealspro/dealspro_api/internal/utils"
)

const defaultAdminPageSize = 50

// AdminDealHandler handles deal management for the admin console.
type AdminDealHandler struct {
	dealService  *service.DealService
	imageService *service.ImageService
}

// NewAdminDealHandler constructs an AdminDealHandler.
func NewAdminDealHandler(dealService *service.DealService, imageService *service.ImageService) *AdminDealHandler {
	return &AdminDealHandler{dealService: dealService, imageService: imageService}
}

// ListDeals handles GET /v1/admin/deals
func (h *AdminDealHandler) ListDeals(c *gin.Context) {
	deals, err := h.dealService.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "DEAL_NOT_FOUND", "Deal not found")
		return
	}

	page, limit := pageParams(c, defaultAdminPageSize)
	items, total := utils.Paginate(deals, page, limit)
	utils.SuccessWithPagination(c, 200, "Deals retrieved", items, page, limit, total)
}

// GetStats handles GET /v1/admin/deals/stats
func (h *AdminDealHandler) GetStats(c *gin.Context) {
	stats, err := h.dealService.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err, "DEAL_NOT_FOUND", "Deal not found")
		return
	}
	utils.Success(c, 200, "Stats retrieved", stats)
}

// CreateDeal handles POST /v1/admin/deals
func (h *AdminDealHandler) CreateDeal(c *gin.Context) {
	var req models.DealInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	deal, err := h.dealService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "DEAL_NOT_FOUND", "Deal not found")
		return
	}

	utils.Success(c, 201, "Deal created successfully", gin.H{
		"deal": deal,
		"url":  h.dealService.URLFor(deal),
	})
}

// GetDeal handles GET /v1/admin/deals/:id
func (h *AdminDealHandler) GetDeal(c *gin.Context) {
	deal, err := h.dealService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "DEAL_NOT_FOUND", "Deal not found")
		return
	}
	utils.Success(c, 200, "Deal retrieved", deal)
}

// UpdateDeal handles PATCH /v1/admin/deals/:id
func (h *AdminDealHandler) UpdateDeal(c *gin.Context) {
	var req models.DealPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	deal, err := h.dealService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "DEAL_NOT_FOUND", "Deal not found")
		return
	}
	utils.Success(c, 200, "Deal updated successfully", deal)
}

// DeleteDeal handles DELETE /v1/admin/deals/:id
func (h *AdminDealHandler) DeleteDeal(c *gin.Context) {
	if err := h.dealService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "DEAL_NOT_FOUND", "Deal not found")
		return
	}
	utils.Success(c, 200, "Deal deleted successfully", nil)
}

// GetDealURL handles GET /v1/admin/deals/:id/url
func (h *AdminDealHandler) GetDealURL(c *gin.Context) {
	url, err := h.dealService.ShareURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "DEAL_NOT_FOUND", "Deal not found")
		return
	}
	utils.Success(c, 200, "Deal URL retrieved", gin.H{"url": url})
}

// UploadImage handles POST /v1/admin/deals/images (multipart field "image").
func (h *AdminDealHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Missing image file")
		return
	}
	if file.Size > service.MaxImageSize {
		utils.Error(c, 400, "INVALID_IMAGE", "Image must be 5MB or smaller")
		return
	}

	f, err := file.Open()
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Unable to read image")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, service.MaxImageSize+1))
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Unable to read image")
		return
	}

	url, err := h.imageService.UploadDealImage(c.Request.Context(), http.DetectContentType(data), data)
	if err != nil {
		respondError(c, err, "DEAL_NOT_FOUND", "Deal not found")
		return
	}
	utils.Success(c, 201, "Image uploaded", gin.H{"imageUrl": url})
}
