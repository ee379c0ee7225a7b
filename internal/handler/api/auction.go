package api

import (
	"errors"
	"net/http"
	"strconv"

	"hothour/internal/domain/auction"
	reqdto "hothour/internal/handler/dto/request"
	resdto "hothour/internal/handler/dto/response"
	"hothour/internal/infra"
	"hothour/internal/usecase/commands"
	"hothour/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuctionHandler struct {
	auctionCommands commands.AuctionCommands
	auctionQueries  queries.AuctionQueries
}

func NewAuctionHandler(auctionCommands commands.AuctionCommands, auctionQueries queries.AuctionQueries) *AuctionHandler {
	return &AuctionHandler{
		auctionCommands: auctionCommands,
		auctionQueries:  auctionQueries,
	}
}

func (h *AuctionHandler) ListAuctions(c *gin.Context) {
	var status *auction.Status
	if s := c.Query("status"); s != "" {
		st := auction.Status(s)
		if !st.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid status filter",
			})
			return
		}
		status = &st
	}

	views, err := h.auctionQueries.List(c.Request.Context(), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuctionViews(views))
}

func (h *AuctionHandler) GetAuction(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	view, err := h.auctionQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Auction not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuctionView(view))
}

// GetPrice serves the live price poll: clients without a WebSocket
// connection hit this between ticks.
func (h *AuctionHandler) GetPrice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	quote, err := h.auctionQueries.GetPrice(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Auction not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPriceQuote(quote))
}

func (h *AuctionHandler) CreateAuction(c *gin.Context) {
	var req reqdto.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.auctionCommands.CreateAuction(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAuctionValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Auction validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

func (h *AuctionHandler) UpdateAuction(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.auctionCommands.UpdateAuction(c.Request.Context(), id, req); err != nil {
		handleAuctionCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AuctionHandler) CancelAuction(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.auctionCommands.CancelAuction(c.Request.Context(), id); err != nil {
		handleAuctionCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func handleAuctionCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrAuctionNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Auction not found",
		})
	case errors.Is(err, commands.ErrAuctionNotOpen):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Auction is no longer open",
		})
	case errors.Is(err, commands.ErrAuctionValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Auction validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID format",
		})
		return 0, false
	}
	return id, true
}
