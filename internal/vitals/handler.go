package vitals

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"driveline/internal/logger"
	"driveline/pkg/metrics"
)

type Handler struct {
	store *FileStore
	log   logger.Logger
}

func NewHandler(store *FileStore, log logger.Logger) *Handler {
	return &Handler{
		store: store,
		log:   log,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	{
		v1.POST("/vitals", h.Collect)
	}
}

// Collect godoc
// @Summary      Record a web-vitals beacon
// @Description  Appends a timestamped browser performance metric to the vitals log
// @Tags         vitals
// @Accept       json
// @Produce      json
// @Param        beacon  body      Beacon  true  "Vitals beacon"
// @Success      200     {object}  BeaconResponse
// @Failure      400     {object}  BeaconResponse
// @Router       /vitals [post]
func (h *Handler) Collect(c *gin.Context) {
	var beacon Beacon
	if err := c.ShouldBindJSON(&beacon); err != nil || beacon.URL == "" || beacon.Metrics.Name == "" {
		metrics.VitalsEntriesTotal.WithLabelValues("rejected").Inc()
		c.JSON(http.StatusBadRequest, BeaconResponse{Success: false})
		return
	}

	entry := Entry{
		Timestamp: time.Now().UTC(),
		URL:       beacon.URL,
		Name:      beacon.Metrics.Name,
		Value:     beacon.Metrics.Value,
		Rating:    beacon.Metrics.Rating,
		ID:        beacon.Metrics.ID,
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	if err := h.store.Append(entry); err != nil {
		metrics.VitalsEntriesTotal.WithLabelValues("error").Inc()
		h.log.ErrorwCtx(c.Request.Context(), "Failed to append vitals entry", "error", err)
		c.JSON(http.StatusInternalServerError, BeaconResponse{Success: false})
		return
	}

	metrics.VitalsEntriesTotal.WithLabelValues("accepted").Inc()
	c.JSON(http.StatusOK, BeaconResponse{Success: true})
}
