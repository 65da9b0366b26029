package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/nextup-mentor/nextup-api/internal/middleware"
)

// Handlers groups every HTTP handler mounted under the API prefix. Files is
// optional and only set for the local storage driver.
type Handlers struct {
	Catalog      *CatalogHandler
	Submissions  *SubmissionHandler
	Auth         *AuthHandler
	Dashboard    *DashboardHandler
	Enrollments  *EnrollmentHandler
	Messages     *MessageHandler
	Packages     *PackageHandler
	Destinations *DestinationHandler
	Chat         *ChatHandler
	Currency     *CurrencyHandler
	Files        *FileHandler
}

// RegisterRoutes mounts the public, chat and admin routes on r. adminAuth
// guards every /admin route except login.
func RegisterRoutes(r gin.IRouter, h Handlers, adminAuth gin.HandlerFunc) {
	r.Use(middleware.Currency())

	r.GET("/packages", h.Catalog.ListPackages)
	r.GET("/packages/:id", h.Catalog.GetPackage)
	r.GET("/destinations", h.Catalog.ListDestinations)
	r.GET("/payment-methods", h.Catalog.PaymentMethods)
	r.POST("/messages", h.Submissions.CreateMessage)
	r.POST("/enrollments", h.Submissions.SubmitEnrollment)
	r.POST("/chat", h.Chat.Chat)
	r.GET("/currency", h.Currency.Get)
	r.POST("/currency/toggle", h.Currency.Toggle)
	if h.Files != nil {
		r.GET("/files/:token", h.Files.Download)
	}

	r.POST("/admin/login", h.Auth.Login)

	admin := r.Group("/admin")
	admin.Use(adminAuth)
	admin.GET("/dashboard", h.Dashboard.Snapshot)

	admin.GET("/enrollments", h.Enrollments.List)
	admin.GET("/enrollments/export", h.Enrollments.Export)
	admin.GET("/enrollments/:id", h.Enrollments.Get)
	admin.PATCH("/enrollments/:id/status", h.Enrollments.UpdateStatus)

	admin.GET("/messages", h.Messages.List)
	admin.PATCH("/messages/:id/status", h.Messages.UpdateStatus)

	admin.GET("/packages", h.Packages.List)
	admin.POST("/packages", h.Packages.Create)
	admin.POST("/packages/images", h.Packages.UploadImage)
	admin.DELETE("/packages/images/*path", h.Packages.DeleteImage)
	admin.GET("/packages/:id", h.Packages.Get)
	admin.PUT("/packages/:id", h.Packages.Update)
	admin.DELETE("/packages/:id", h.Packages.Delete)

	admin.GET("/destinations", h.Destinations.List)
	admin.POST("/destinations", h.Destinations.Create)
	admin.PUT("/destinations/:id", h.Destinations.Update)
	admin.DELETE("/destinations/:id", h.Destinations.Delete)
}
