package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dealspro/dealspro_api/internal/catalog"
	"github.com/dealspro/dealspro_api/internal/models"
	"github.com/dealspro/dealspro_api/internal/service"
	"github.com/dealspro/dealspro_api/internal/utils"
)

const defaultDealPageSize = 20

// DealHandler serves the public deal catalog.
type DealHandler struct {
	dealService *service.DealService
}

// NewDealHandler constructs a DealHandler.
func NewDealHandler(dealService *service.DealService) *DealHandler {
	return &DealHandler{dealService: dealService}
}

func queryInt(c *gin.Context, key string, def int) int {
	if v := c.Query(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// ListDeals handles GET /v1/deals?category=&store=&sort=&page=&limit=
func (h *DealHandler) ListDeals(c *gin.Context) {
	q := service.CatalogQuery{
		Category: c.Query("category"),
		Sort:     catalog.ParseSortKey(c.Query("sort")),
	}
	if raw := c.Query("store"); raw != "" {
		store, err := models.ParseStore(raw)
		if err != nil {
			utils.Error(c, 400, "INVALID_REQUEST", "Unknown store")
			return
		}
		q.Store = store
	}

	deals, err := h.dealService.Catalog(c.Request.Context(), q)
	if err != nil {
		respondError(c, err, "DEAL_NOT_FOUND", "Deal not found")
		return
	}

	page, limit := pageParams(c, defaultDealPageSize)
	items, total := utils.Paginate(deals, page, limit)
	utils.SuccessWithPagination(c, 200, "Deals retrieved", items, page, limit, total)
}

// SearchDeals handles GET /v1/deals/search?q=
func (h *DealHandler) SearchDeals(c *gin.Context) {
	deals, err := h.dealService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err, "DEAL_NOT_FOUND", "Deal not found")
		return
	}

	page, limit := pageParams(c, defaultDealPageSize)
	items, total := utils.Paginate(deals, page, limit)
	utils.SuccessWithPagination(c, 200, "Deals retrieved", items, page, limit, total)
}

// GetCategories handles GET /v1/deals/categories
func (h *DealHandler) GetCategories(c *gin.Context) {
	counts, err := h.dealService.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err, "DEAL_NOT_FOUND", "Deal not found")
		return
	}

	utils.Success(c, 200, "Categories retrieved", gin.H{
		"categories": append([]string{catalog.AllCategories}, models.DealCategories...),
		"counts":     counts,
	})
}

// GetDeal handles GET /v1/deals/:slug
func (h *DealHandler) GetDeal(c *gin.Context) {
	detail, err := h.dealService.GetPublic(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err, "DEAL_NOT_FOUND", "Deal not found")
		return
	}
	utils.Success(c, 200, "Deal retrieved", detail)
}
