package httpHandler

import (
	"net/http"

	"agroclima-server/entities"
	"agroclima-server/middleware"
	"agroclima-server/usecases"

	"github.com/gin-gonic/gin"
)

type FarmHandler struct {
	registry *usecases.RegistryUseCase
}

func NewFarmHandler(registry *usecases.RegistryUseCase) *FarmHandler {
	return &FarmHandler{registry: registry}
}

func (h *FarmHandler) CreateFarm(c *gin.Context) {
	var farm entities.Farm
	if err := c.ShouldBindJSON(&farm); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := h.registry.CreateFarm(middleware.ProducerID(c), &farm); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"fazenda": farm})
}

func (h *FarmHandler) ListFarms(c *gin.Context) {
	farms, err := h.registry.ListFarms(middleware.ProducerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"fazendas": farms,
		"count":    len(farms),
	})
}

func (h *FarmHandler) GetFarm(c *gin.Context) {
	farm, err := h.registry.GetFarm(c.Param("id"), middleware.ProducerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"fazenda": farm})
}

func (h *FarmHandler) UpdateFarm(c *gin.Context) {
	var in entities.Farm
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	farm, err := h.registry.UpdateFarm(c.Param("id"), middleware.ProducerID(c), &in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"fazenda": farm})
}

func (h *FarmHandler) DeleteFarm(c *gin.Context) {
	if err := h.registry.DeleteFarm(c.Param("id"), middleware.ProducerID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Farm deleted successfully"})
}
