// Package container provides dependency injection for all singleton services
package container

import (
	"github.com/raulbellosom/travel-sub004/internal/application/services"
	"github.com/raulbellosom/travel-sub004/internal/domain/profiles"
	"github.com/raulbellosom/travel-sub004/internal/domain/repositories"
	"github.com/raulbellosom/travel-sub004/internal/infrastructure/caching/stores"
	"github.com/raulbellosom/travel-sub004/internal/infrastructure/email"
	"github.com/raulbellosom/travel-sub004/internal/infrastructure/media"
	"github.com/raulbellosom/travel-sub004/internal/infrastructure/observability/logging"
	"github.com/raulbellosom/travel-sub004/internal/infrastructure/persistence/database"
	"github.com/raulbellosom/travel-sub004/internal/infrastructure/persistence/listings"
	"github.com/raulbellosom/travel-sub004/pkg/config"
)

// Container holds all singleton services and infrastructure dependencies
type Container struct {
	// Domain
	Registry *profiles.Registry
	Labels   profiles.LabelResolver

	// Application services
	WizardService   *services.WizardService
	ListingService  *services.ListingService
	PaymentService  *services.PaymentService
	ProposalService *services.ProposalService
	MediaService    *services.MediaService

	// Infrastructure
	DB             *database.DB
	ListingCache   *stores.ListingStore
	ListingRepo    repositories.ListingRepository
	PaymentRepo    repositories.PaymentSessionRepository
	ProposalRepo   repositories.ProposalRepository
	EmailService   email.Service
	ImageProcessor *media.ImageProcessor
	Logger         *logging.ChanneledLogger
}

// NewContainer creates and wires all singleton services
func NewContainer(db *database.DB, logger *logging.ChanneledLogger) *Container {
	registry := profiles.NewRegistry()
	labels := services.EnglishLabels()

	listingCache := stores.NewListingStore()
	listingRepo := listings.NewListingRepository(db.DB, listingCache, logger)
	paymentRepo := listings.NewPaymentSessionRepository(db.DB)
	proposalRepo := listings.NewProposalRepository(db.DB)

	// Email is optional; without an API key proposal responses simply skip
	// the notification.
	emailService, err := email.NewService()
	if err != nil {
		logger.Startup().Warn("Email service unavailable, proposal notifications disabled", "reason", err.Error())
		emailService = nil
	}

	return &Container{
		Registry: registry,
		Labels:   labels,

		WizardService:   services.NewWizardService(registry, labels, logger),
		ListingService:  services.NewListingService(registry, labels, listingRepo, logger),
		PaymentService:  services.NewPaymentService(paymentRepo, listingRepo, services.NewConfigGateway(), logger),
		ProposalService: services.NewProposalService(proposalRepo, listingRepo, emailService, logger),
		MediaService:    services.NewMediaService(services.NewRepositoryMediaFetcher(listingRepo), logger),

		DB:             db,
		ListingCache:   listingCache,
		ListingRepo:    listingRepo,
		PaymentRepo:    paymentRepo,
		ProposalRepo:   proposalRepo,
		EmailService:   emailService,
		ImageProcessor: media.NewImageProcessor(config.MediaBasePath),
		Logger:         logger,
	}
}
