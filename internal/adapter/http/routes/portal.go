package routes

import (
	"torchline_portal/internal/adapter/http/handlers"
	"torchline_portal/internal/adapter/http/middleware"
	"torchline_portal/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth     = "/auth"
	PathQuotes   = "/quotes"
	PathReports  = "/reports"
	PathPortal   = "/portal"
	PathAdmin    = "/admin/store"
	PathServices = "/services"
)

var staffRoles = []entities.UserRole{entities.UserRoleEmployee, entities.UserRoleAdmin}

func addPublicRoutes(rg *gin.RouterGroup, h Handlers) {
	rg.GET(PathServices, h.Catalog.ListServices)
	rg.POST(PathQuotes, h.Quotes.SubmitQuote)

	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/logout", h.Auth.Logout)
	}
}

func addPortalRoutes(rg *gin.RouterGroup, h Handlers, sessions handlers.SessionStore) {
	authed := rg.Group("", middleware.RequireAuth(sessions))
	authed.GET(PathAuth+"/me", h.Auth.Me)

	staff := authed.Group("", middleware.RequireRole(staffRoles...))
	{
		staff.GET(PathQuotes, h.Quotes.ListQuotes)
		staff.GET(PathQuotes+"/:id", h.Quotes.GetQuote)
		staff.GET(PathQuotes+"/:id/price", h.Quotes.PriceQuote)
		staff.POST(PathQuotes+"/:id/approve", h.Quotes.ApproveQuote)
		staff.POST(PathQuotes+"/:id/reject", h.Quotes.RejectQuote)

		staff.GET("/analytics", h.Reports.GetAnalytics)
		staff.POST(PathReports, h.Reports.GenerateReport)
		staff.POST(PathReports+"/schedule", h.Reports.ScheduleReport)

		staff.POST("/tracking", h.Collaboration.UpdateTracking)
	}

	authed.POST("/messages", h.Collaboration.SendMessage)
	authed.POST("/files", h.Collaboration.UploadFile)

	authed.GET(PathPortal+"/customer", middleware.RequireRole(entities.UserRoleCustomer), h.Portal.CustomerDashboard)
	authed.GET(PathPortal+"/vendor", middleware.RequireRole(entities.UserRoleVendor), h.Portal.VendorDashboard)

	admin := authed.Group(PathAdmin, middleware.RequireRole(entities.UserRoleAdmin))
	{
		admin.GET("/collections", h.Catalog.Collections)
		admin.GET("/stats", h.Catalog.Stats)
	}
}
