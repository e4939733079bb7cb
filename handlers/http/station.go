package httpHandler

import (
	"net/http"

	"agroclima-server/entities"
	"agroclima-server/middleware"
	"agroclima-server/usecases"

	"github.com/gin-gonic/gin"
)

type StationHandler struct {
	registry *usecases.RegistryUseCase
}

func NewStationHandler(registry *usecases.RegistryUseCase) *StationHandler {
	return &StationHandler{registry: registry}
}

// CreateStation registers a station under one of the caller's farms. The
// response carries the issued credential; it is shown once here and then only
// readable through GetStation.
func (h *StationHandler) CreateStation(c *gin.Context) {
	var station entities.Station
	if err := c.ShouldBindJSON(&station); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := h.registry.CreateStation(c.Param("id"), middleware.ProducerID(c), &station); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"estacao": station})
}

func (h *StationHandler) ListStations(c *gin.Context) {
	stations, err := h.registry.ListStations(c.Param("id"), middleware.ProducerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"estacoes": stations,
		"count":    len(stations),
	})
}

func (h *StationHandler) GetStation(c *gin.Context) {
	station, err := h.registry.GetStation(c.Param("id"), middleware.ProducerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"estacao": station})
}

func (h *StationHandler) DeactivateStation(c *gin.Context) {
	station, err := h.registry.DeactivateStation(c.Param("id"), middleware.ProducerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"estacao": station})
}

func (h *StationHandler) DeleteStation(c *gin.Context) {
	if err := h.registry.DeleteStation(c.Param("id"), middleware.ProducerID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Station deleted successfully"})
}
