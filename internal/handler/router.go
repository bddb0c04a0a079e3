package handler

import (
	"github.com/gin-gonic/gin"
)

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Deal      *DealHandler
	AdminDeal *AdminDealHandler
	Lead      *LeadHandler
	AdminLead *AdminLeadHandler
	SSE       *SSEHandler
}

// SetupRoutes registers all routes. loginGuard runs before the login handler
// and adminAuth before every other admin route.
func SetupRoutes(router *gin.Engine, handlers *Handlers, loginGuard, adminAuth gin.HandlerFunc) {
	router.GET("/v1/health", handlers.Health.GetHealth)

	// Public catalog
	deals := router.Group("/v1/deals")
	{
		deals.GET("", handlers.Deal.ListDeals)
		deals.GET("/search", handlers.Deal.SearchDeals)
		deals.GET("/categories", handlers.Deal.GetCategories)
		deals.GET("/:slug", handlers.Deal.GetDeal)
	}

	// Public lead forms
	router.POST("/v1/brands/submissions", handlers.Lead.SubmitBrand)
	router.POST("/v1/influencers/applications", handlers.Lead.SubmitInfluencer)

	// Admin routes
	admin := router.Group("/v1/admin")
	admin.POST("/auth/login", loginGuard, handlers.Auth.Login)
	// EventSource cannot send headers; the stream authenticates via ?token=
	admin.GET("/sse", handlers.SSE.Stream)
	admin.Use(adminAuth)
	{
		// Deal management
		admin.GET("/deals", handlers.AdminDeal.ListDeals)
		admin.GET("/deals/stats", handlers.AdminDeal.GetStats)
		admin.POST("/deals", handlers.AdminDeal.CreateDeal)
		admin.POST("/deals/images", handlers.AdminDeal.UploadImage)
		admin.GET("/deals/:id", handlers.AdminDeal.GetDeal)
		admin.PATCH("/deals/:id", handlers.AdminDeal.UpdateDeal)
		admin.DELETE("/deals/:id", handlers.AdminDeal.DeleteDeal)
		admin.GET("/deals/:id/url", handlers.AdminDeal.GetDealURL)

		// Lead review
		admin.GET("/leads", handlers.AdminLead.ListInbox)
		admin.GET("/leads/brands", handlers.AdminLead.ListBrands)
		admin.GET("/leads/influencers", handlers.AdminLead.ListInfluencers)
		admin.POST("/leads/:kind/:id/approve", handlers.AdminLead.Approve)
		admin.POST("/leads/:kind/:id/reject", handlers.AdminLead.Reject)
		admin.DELETE("/leads/:kind/:id", handlers.AdminLead.Delete)
	}
}
