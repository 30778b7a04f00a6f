package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"heavyrent-backend/internal/mw"
	"heavyrent-backend/internal/service"
)

type createRentalRequest struct {
	MachineID int64  `json:"machineId" binding:"required"`
	StartDate string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" binding:"required,datetime=2006-01-02"`
}

// ListRentals handles GET /api/rentals, returning the authenticated
// caller's rental requests.
func (h *Handler) ListRentals(c *gin.Context) {
	rentals, err := h.rentals.FindByUser(c.Request.Context(), mw.UserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rentals)
}

// CreateRental handles POST /api/rentals. A successful create also
// queues a push notification to the machine owner.
func (h *Handler) CreateRental(c *gin.Context) {
	var req createRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := service.CreateRentalInput{
		MachineID: req.MachineID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	rental, err := h.rentals.Create(c.Request.Context(), in, mw.UserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	if h.notifier != nil {
		h.notifier.Dispatch(rental.ID)
	}

	c.JSON(http.StatusCreated, rental)
}
