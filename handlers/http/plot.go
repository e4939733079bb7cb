package httpHandler

import (
	"net/http"

	"agroclima-server/entities"
	"agroclima-server/middleware"
	"agroclima-server/usecases"

	"github.com/gin-gonic/gin"
)

type PlotHandler struct {
	registry *usecases.RegistryUseCase
}

func NewPlotHandler(registry *usecases.RegistryUseCase) *PlotHandler {
	return &PlotHandler{registry: registry}
}

func (h *PlotHandler) CreatePlot(c *gin.Context) {
	var plot entities.Plot
	if err := c.ShouldBindJSON(&plot); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := h.registry.CreatePlot(c.Param("id"), middleware.ProducerID(c), &plot); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"talhao": plot})
}

func (h *PlotHandler) ListPlots(c *gin.Context) {
	plots, err := h.registry.ListPlots(c.Param("id"), middleware.ProducerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"talhoes": plots,
		"count":   len(plots),
	})
}
