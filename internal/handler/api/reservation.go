package api

import (
	"errors"
	"net/http"
	"strings"

	resdto "hothour/internal/handler/dto/response"
	"hothour/internal/handler/middleware"
	"hothour/internal/infra"
	"hothour/internal/pkg/bookingcode"
	"hothour/internal/usecase/commands"
	"hothour/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	bookingCommands      commands.BookingCommands
	cancellationCommands commands.CancellationCommands
	reservationQueries   queries.ReservationQueries
}

func NewReservationHandler(
	bookingCommands commands.BookingCommands,
	cancellationCommands commands.CancellationCommands,
	reservationQueries queries.ReservationQueries,
) *ReservationHandler {
	return &ReservationHandler{
		bookingCommands:      bookingCommands,
		cancellationCommands: cancellationCommands,
		reservationQueries:   reservationQueries,
	}
}

// BookAuction claims the auction at its current price for the caller.
// A lost race comes back as 409.
func (h *ReservationHandler) BookAuction(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	auctionID, ok := pathID(c)
	if !ok {
		return
	}

	view, err := h.bookingCommands.BookAuction(c.Request.Context(), auctionID, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAuctionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Auction not found",
			})
		case errors.Is(err, commands.ErrAlreadyBooked):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Auction already booked",
			})
		case errors.Is(err, commands.ErrAuctionNotActive):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Auction is not active",
			})
		case errors.Is(err, commands.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		case errors.Is(err, commands.ErrAdminCannotBook):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Administrators cannot book auctions",
			})
		case errors.Is(err, commands.ErrGenderNotEligible):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "You do not meet this auction's booking restriction",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

func (h *ReservationHandler) GetReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), userID, middleware.IsAdmin(c), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrViewNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Not allowed to view this reservation",
			})
		case infra.IsKind(err, infra.KindNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

func (h *ReservationHandler) GetUserReservations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.reservationQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	err := h.cancellationCommands.CancelReservation(c.Request.Context(), id, userID, middleware.IsAdmin(c))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, commands.ErrNotReservationOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Reservation belongs to another user",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// Admin endpoints below.

func (h *ReservationHandler) ListAllReservations(c *gin.Context) {
	views, err := h.reservationQueries.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// GetReservationByCode is the front-desk lookup for the code a customer
// presents on arrival. Codes are stored uppercase with a dashed prefix;
// the lookup tolerates lowercase input but rejects codes without the
// separator before touching the store.
func (h *ReservationHandler) GetReservationByCode(c *gin.Context) {
	code := strings.ToUpper(strings.TrimSpace(c.Param("code")))
	if _, suffix := bookingcode.Parse(code); suffix == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking code format",
		})
		return
	}

	view, err := h.reservationQueries.GetByCode(c.Request.Context(), code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

func (h *ReservationHandler) CheckIn(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.cancellationCommands.CheckIn(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, commands.ErrReservationCancelled):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation is cancelled",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
