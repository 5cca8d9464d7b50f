// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raulbellosom/travel-sub004/internal/application/container"
	"github.com/raulbellosom/travel-sub004/internal/presentation/http/handlers"
	"github.com/raulbellosom/travel-sub004/internal/presentation/http/middleware"
	"github.com/raulbellosom/travel-sub004/pkg/config"
)

// SetupRoutes configures all HTTP routes and middleware with dependency injection.
func SetupRoutes(container *container.Container) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	// Uploaded photos and their resized variants are served straight from disk.
	r.Static("/media", config.MediaBasePath)

	wizardHandlers := handlers.NewWizardHandlers(container.WizardService, container.Logger)
	listingHandlers := handlers.NewListingHandlers(container.ListingService, container.MediaService, container.ImageProcessor, container.Logger)
	paymentHandlers := handlers.NewPaymentHandlers(container.PaymentService, container.Logger)
	proposalHandlers := handlers.NewProposalHandlers(container.ProposalService, container.Logger)
	authHandlers := handlers.NewAuthHandlers(container.Logger)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		api.POST("/auth/login", authHandlers.Login)

		// Wizard: step activation, field resolution, validation.
		wizard := api.Group("/wizard")
		{
			wizard.GET("/kinds", wizardHandlers.GetKinds)
			wizard.POST("/:kind/steps", wizardHandlers.GetSteps)
			wizard.POST("/:kind/steps/:stepId/fields", wizardHandlers.GetFields)
			wizard.POST("/:kind/steps/:stepId/validate", wizardHandlers.ValidateStep)
			wizard.POST("/:kind/validate", wizardHandlers.ValidateDocument)
		}

		// Public listing reads and proposals.
		api.GET("/listings", listingHandlers.ListListings)
		api.GET("/listings/:id", listingHandlers.GetListing)
		api.POST("/listings/:id/proposals", proposalHandlers.SubmitProposal)

		// Checkout sessions.
		payments := api.Group("/payments")
		{
			payments.POST("/sessions", paymentHandlers.CreateSession)
			payments.GET("/sessions/:id", paymentHandlers.GetSession)
			payments.POST("/sessions/:id/complete", paymentHandlers.CompleteSession)
			payments.POST("/sessions/:id/cancel", paymentHandlers.CancelSession)
		}

		// Owner endpoints behind session auth.
		owner := api.Group("")
		owner.Use(middleware.AuthMiddleware())
		{
			owner.POST("/listings", listingHandlers.CreateListing)
			owner.PUT("/listings/:id", listingHandlers.UpdateListing)
			owner.POST("/listings/:id/publish", listingHandlers.PublishListing)
			owner.DELETE("/listings/:id", listingHandlers.DeleteListing)
			owner.GET("/listings/:id/form", listingHandlers.LoadForEdit)
			owner.GET("/listings/:id/media", listingHandlers.GetExistingMedia)
			owner.POST("/listings/:id/media", listingHandlers.UploadPhoto)
			owner.GET("/listings/:id/proposals", proposalHandlers.ListProposals)
			owner.POST("/proposals/:id/respond", proposalHandlers.RespondProposal)
		}
	}

	return r
}
