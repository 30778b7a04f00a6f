package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"heavyrent-backend/internal/mw"
	"heavyrent-backend/internal/service"
)

type createMachineRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required,min=10"`
}

// ListMachines handles GET /api/machines.
func (h *Handler) ListMachines(c *gin.Context) {
	machines, err := h.machines.FindAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, machines)
}

// CreateMachine handles POST /api/machines. The owner is the
// authenticated caller.
func (h *Handler) CreateMachine(c *gin.Context) {
	var req createMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := service.CreateMachineInput{
		Name:        req.Name,
		Description: req.Description,
	}
	machine, err := h.machines.Create(c.Request.Context(), in, mw.UserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, machine)
}
