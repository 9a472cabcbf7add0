package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"eventhub/internal/models"
	"eventhub/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// GetEventBySlug serves GET /events/:slug. Slug shape problems are 400s
// answered before any store access; an unknown slug is a 404. A
// store-connectivity failure gets a generic 500 body, any other unexpected
// failure carries the underlying error for diagnostics.
func GetEventBySlug(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, err := es.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			switch {
			case errors.Is(err, models.ErrMissingSlug):
				c.JSON(http.StatusBadRequest, gin.H{"message": "slug parameter is required"})
			case errors.Is(err, models.ErrInvalidSlugFormat):
				c.JSON(http.StatusBadRequest, gin.H{"message": "invalid slug format"})
			case errors.Is(err, models.ErrEventNotFound):
				c.JSON(http.StatusNotFound, gin.H{"message": "event not found"})
			case models.IsUnavailable(err):
				c.JSON(http.StatusInternalServerError, gin.H{"message": "database connection failed"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{
					"message": "failed to fetch event",
					"error":   err.Error(),
				})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "event fetched successfully",
			"event":   event,
		})
	}
}

// GetSimilarEvents serves GET /events/:slug/similar. The recommendation is
// auxiliary, so it always answers 200 with an (possibly empty) ordered list.
func GetSimilarEvents(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := strconv.ParseInt(c.DefaultQuery("limit", "5"), 10, 64)
		if err != nil || limit <= 0 {
			limit = services.DefaultSimilarLimit
		}

		events := es.GetSimilar(c.Request.Context(), c.Param("slug"), limit)
		c.JSON(http.StatusOK, gin.H{"events": events})
	}
}

func CreateEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var event models.Event
		if err := c.ShouldBindJSON(&event); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body: "+err.Error()))
			return
		}

		created, err := es.CreateEvent(c.Request.Context(), &event)
		if err != nil {
			writeEventError(c, err, "failed to create event")
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(created, "event created successfully"))
	}
}

func UpdateEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch models.Event
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body: "+err.Error()))
			return
		}

		updated, err := es.UpdateEvent(c.Request.Context(), c.Param("slug"), &patch)
		if err != nil {
			writeEventError(c, err, "failed to update event")
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(updated, "event updated successfully"))
	}
}

func writeEventError(c *gin.Context, err error, fallback string) {
	var fieldErrs validator.ValidationErrors
	switch {
	case models.IsValidationError(err), errors.As(err, &fieldErrs):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
	case errors.Is(err, models.ErrEventNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse("event not found"))
	case errors.Is(err, models.ErrDuplicateSlug):
		c.JSON(http.StatusConflict, models.ErrorResponse(err.Error()))
	case models.IsUnavailable(err):
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("database connection failed"))
	default:
		c.JSON(http.StatusInternalServerError, models.InternalErrorResponse(fallback, err.Error()))
	}
}
