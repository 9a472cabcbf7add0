package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"eventhub/internal/analytics"
	"eventhub/internal/models"
	"eventhub/internal/services"

	"github.com/gin-gonic/gin"
)

type bookingRequest struct {
	EventID string `json:"event_id"`
	Email   string `json:"email"`
}

// CreateBooking serves POST /bookings. The service's tagged outcome is
// rendered as the standard {success, message, data?, error?} envelope, and
// every outcome emits a fire-and-forget analytics event that never affects
// the response.
func CreateBooking(bs *services.BookingService, sink *analytics.Client, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req bookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body: "+err.Error()))
			return
		}

		booking, err := bs.CreateBooking(c.Request.Context(), req.EventID, req.Email)
		if err != nil {
			status, message := bookingErrorStatus(err)

			errorType := "validation_error"
			if status == http.StatusInternalServerError {
				errorType = "unexpected_error"
			}
			sink.Capture("booking_failed", map[string]interface{}{
				"event_id":   req.EventID,
				"email":      req.Email,
				"error_type": errorType,
				"message":    message,
			})

			if status == http.StatusInternalServerError {
				logger.Error("booking creation failed",
					"event_id", req.EventID,
					"error", err,
				)
				c.JSON(status, models.InternalErrorResponse(message, err.Error()))
				return
			}
			c.JSON(status, models.ErrorResponse(message))
			return
		}

		sink.Capture("booking_created", map[string]interface{}{
			"event_id":   booking.EventID.Hex(),
			"email":      booking.Email,
			"booking_id": booking.ID.Hex(),
			"timestamp":  booking.CreatedAt.UTC().Format(time.RFC3339),
		})

		c.JSON(http.StatusCreated, models.SuccessResponse(gin.H{
			"booking_id": booking.ID.Hex(),
			"event_id":   booking.EventID.Hex(),
			"email":      booking.Email,
		}, "booking created successfully"))
	}
}

func bookingErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrMissingEventID),
		errors.Is(err, models.ErrMissingEmail),
		errors.Is(err, models.ErrInvalidEmailFormat),
		errors.Is(err, models.ErrInvalidEventIDFormat):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, models.ErrEventNotFound):
		return http.StatusNotFound, "event not found"
	case errors.Is(err, models.ErrAlreadyBooked):
		return http.StatusConflict, err.Error()
	default:
		return http.StatusInternalServerError, "failed to create booking"
	}
}
