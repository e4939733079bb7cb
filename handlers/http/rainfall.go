package httpHandler

import (
	"net/http"

	"agroclima-server/middleware"
	"agroclima-server/usecases"

	"github.com/gin-gonic/gin"
)

// StationCredentialHeader is the header deployed stations send their
// credential in. The name is fixed by the fleet's firmware.
const StationCredentialHeader = "X-Station-UUID"

type RainfallHandler struct {
	ingestion *usecases.IngestionUseCase
	queries   *usecases.QueryUseCase
}

func NewRainfallHandler(ingestion *usecases.IngestionUseCase, queries *usecases.QueryUseCase) *RainfallHandler {
	return &RainfallHandler{
		ingestion: ingestion,
		queries:   queries,
	}
}

// Ingest is the public endpoint physical stations post readings to,
// authenticated solely by the credential header.
func (h *RainfallHandler) Ingest(c *gin.Context) {
	credential := c.GetHeader(StationCredentialHeader)

	var in usecases.ReadingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	reading, err := h.ingestion.Ingest(credential, &in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "ok",
		"dado":   reading,
	})
}

func (h *RainfallHandler) GetByStation(c *gin.Context) {
	from, to, err := parseWindow(c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	readings, err := h.queries.ReadingsForStation(c.Param("id"), middleware.ProducerID(c), from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dados": readings,
		"count": len(readings),
	})
}

// GetByPeriod answers multi-station queries, ordered by station then time.
func (h *RainfallHandler) GetByPeriod(c *gin.Context) {
	from, to, err := parseWindow(c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stationIDs := splitIDs(c.Query("estacoes"))
	readings, err := h.queries.ReadingsForStations(stationIDs, middleware.ProducerID(c), from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dados": readings,
		"count": len(readings),
	})
}

func (h *RainfallHandler) GetLatest(c *gin.Context) {
	reading, err := h.queries.LatestForStation(c.Param("id"), middleware.ProducerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dado": reading})
}
