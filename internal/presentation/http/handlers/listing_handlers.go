package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/raulbellosom/travel-sub004/internal/application/services"
	"github.com/raulbellosom/travel-sub004/internal/domain/profiles"
	"github.com/raulbellosom/travel-sub004/internal/domain/repositories"
	"github.com/raulbellosom/travel-sub004/internal/infrastructure/media"
	"github.com/raulbellosom/travel-sub004/internal/infrastructure/observability/logging"
	"github.com/raulbellosom/travel-sub004/internal/infrastructure/security"
)

// SaveListingRequest carries the full form for create and update.
type SaveListingRequest struct {
	Kind string             `json:"kind" binding:"required"`
	Form profiles.FormState `json:"form" binding:"required"`
}

// UploadPhotoRequest carries one base64-encoded photo.
type UploadPhotoRequest struct {
	Data string `json:"data" binding:"required"`
}

// ListingHandlers contains all listing-related HTTP handlers.
type ListingHandlers struct {
	listingService *services.ListingService
	mediaService   *services.MediaService
	imageProcessor *media.ImageProcessor
	logger         *logging.ChanneledLogger
}

// NewListingHandlers creates listing handlers with injected dependencies
func NewListingHandlers(listingService *services.ListingService, mediaService *services.MediaService, imageProcessor *media.ImageProcessor, logger *logging.ChanneledLogger) *ListingHandlers {
	return &ListingHandlers{
		listingService: listingService,
		mediaService:   mediaService,
		imageProcessor: imageProcessor,
		logger:         logger,
	}
}

// CreateListing validates the posted form and stores a new draft.
func (h *ListingHandlers) CreateListing(c *gin.Context) {
	start := time.Now()

	var req SaveListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	record, result, err := h.listingService.Create(req.Kind, &req.Form)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !result.OK {
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}

	h.logger.Listing().Info("Create listing request completed", "id", record.ID, "duration", time.Since(start))
	c.JSON(http.StatusCreated, record)
}

// UpdateListing validates the posted form against the stored record and
// overwrites it.
func (h *ListingHandlers) UpdateListing(c *gin.Context) {
	id := c.Param("id")

	var req SaveListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	record, result, err := h.listingService.Update(id, &req.Form)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if !result.OK {
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}

	c.JSON(http.StatusOK, record)
}

// PublishListing re-validates a draft and flips it live.
func (h *ListingHandlers) PublishListing(c *gin.Context) {
	id := c.Param("id")

	record, result, err := h.listingService.Publish(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if !result.OK {
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}

	c.JSON(http.StatusOK, record)
}

// GetListing returns one listing by ID.
func (h *ListingHandlers) GetListing(c *gin.Context) {
	record, err := h.listingService.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// ListListings returns listings matching the query filters.
func (h *ListingHandlers) ListListings(c *gin.Context) {
	filters := repositories.ListingFilters{
		ResourceKind: c.Query("kind"),
		Category:     c.Query("category"),
		Status:       c.Query("status"),
		City:         c.Query("city"),
	}

	records, err := h.listingService.List(filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"listings": records,
		"count":    len(records),
	})
}

// DeleteListing removes a listing.
func (h *ListingHandlers) DeleteListing(c *gin.Context) {
	if err := h.listingService.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// LoadForEdit hydrates a stored listing into wizard form state.
func (h *ListingHandlers) LoadForEdit(c *gin.Context) {
	form, ctx, err := h.listingService.LoadForEdit(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"form": form,
		"context": gin.H{
			"kind":           ctx.Kind,
			"category":       ctx.Category,
			"commercialMode": ctx.Mode,
			"bookingType":    ctx.Booking,
		},
	})
}

// GetExistingMedia returns the stored photos of a listing for the editor.
// A stale fetch superseded by a newer request is reported as a conflict.
func (h *ListingHandlers) GetExistingMedia(c *gin.Context) {
	items, current := h.mediaService.LoadExisting(c.Request.Context(), c.Param("id"))
	if !current {
		c.JSON(http.StatusConflict, gin.H{"error": "superseded by a newer request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"media": items,
		"count": len(items),
	})
}

// UploadPhoto stores one base64 photo and its resized variants.
func (h *ListingHandlers) UploadPhoto(c *gin.Context) {
	listingID := c.Param("id")

	var req UploadPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	photoID := security.GenerateULID()
	url, err := h.imageProcessor.ProcessBase64Photo(req.Data, photoID, listingID)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	h.logger.Media().Info("Photo uploaded", "listingId", listingID, "photoId", photoID)
	c.JSON(http.StatusCreated, gin.H{
		"id":  photoID,
		"url": url,
	})
}
