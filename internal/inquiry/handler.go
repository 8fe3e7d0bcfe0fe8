package inquiry

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"driveline/internal/constants"
	"driveline/internal/logger"
	"driveline/pkg/errors"
	"driveline/pkg/logging"
	"driveline/pkg/metrics"
	"driveline/pkg/quota"
)

type Handler struct {
	service *Service
	quota   quota.Limiter
	log     logger.Logger
}

func NewHandler(service *Service, limiter quota.Limiter, log logger.Logger) *Handler {
	return &Handler{
		service: service,
		quota:   limiter,
		log:     log,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	{
		v1.POST("/inquiries", h.Submit)
	}
}

func (h *Handler) handleError(c *gin.Context, err error) {
	h.log.ErrorwCtx(c.Request.Context(), "Request error", "error", err, "path", c.Request.URL.Path)
	c.JSON(errors.ToHTTPStatus(err), errors.ToErrorResponse(err))
}

// Submit godoc
// @Summary      Submit a vehicle export inquiry
// @Description  Validates, rate-limits and relays a contact-form submission to the operators by email
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Param        inquiry  body      SubmitRequest  true  "Inquiry fields"
// @Success      200      {object}  SubmitResponse
// @Failure      400      {object}  map[string]interface{}
// @Failure      429      {object}  map[string]interface{}
// @Failure      500      {object}  map[string]interface{}
// @Router       /inquiries [post]
func (h *Handler) Submit(c *gin.Context) {
	addr := clientAddress(c)
	ctx := logging.WithClientAddr(c.Request.Context(), addr)
	c.Request = c.Request.WithContext(ctx)

	admitted, err := h.quota.Admit(ctx, addr)
	if err != nil {
		// The quota is best-effort: a broken store must not block customers.
		metrics.QuotaDecisionsTotal.WithLabelValues("error").Inc()
		h.log.WarnwCtx(ctx, "Quota check failed, admitting request", "error", err)
		admitted = true
	}
	if !admitted {
		metrics.QuotaDecisionsTotal.WithLabelValues("rejected").Inc()
		metrics.InquiriesTotal.WithLabelValues(metrics.StatusRateLimited).Inc()
		h.handleError(c, errors.ErrRateLimited)
		return
	}
	metrics.QuotaDecisionsTotal.WithLabelValues("admitted").Inc()

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.InquiriesTotal.WithLabelValues(metrics.StatusInvalid).Inc()
		h.handleError(c, errors.ErrValidation.WithCause(err))
		return
	}

	result, err := h.service.Submit(ctx, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, SubmitResponse{
		Success:   true,
		MessageID: result.MessageID,
		Message:   result.Message,
	})
}

// clientAddress resolves the originating address from the trusted proxy
// header, falling back to the socket peer, then to a fixed sentinel. The
// sentinel means all header-less traffic shares one quota bucket, which is
// the intended behavior behind a proxy that always sets the header.
func clientAddress(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		if first, _, found := strings.Cut(forwarded, ","); found {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(forwarded)
	}

	if ip := c.ClientIP(); ip != "" {
		return ip
	}

	return constants.UnknownClientAddr
}
