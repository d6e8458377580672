package handler

import (
	"context"
	"errors"
	"net/http"

	"exchange-service/internal/entity"
	"exchange-service/internal/metrics"
	"exchange-service/internal/middleware"
	"exchange-service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ConversionHandler struct {
	usecase usecase.ExchangeUsecase
	metrics *metrics.Metrics
	logger  *logrus.Logger
}

func NewConversionHandler(usecase usecase.ExchangeUsecase, m *metrics.Metrics, logger *logrus.Logger) *ConversionHandler {
	return &ConversionHandler{
		usecase: usecase,
		metrics: m,
		logger:  logger,
	}
}

// Convert serves GET /api/exchange?from=&to=&amount=.
func (h *ConversionHandler) Convert(c *gin.Context) {
	var req entity.ConversionRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.writeError(c, req, entity.NewValidationError())
		return
	}

	resp, err := h.usecase.Convert(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, req, err)
		return
	}

	h.metrics.ObserveConversion("success")
	c.JSON(http.StatusOK, resp)
}

func (h *ConversionHandler) ListCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, usecase.CurrenciesResponse{Currencies: h.usecase.ListCurrencies()})
}

func (h *ConversionHandler) writeError(c *gin.Context, req entity.ConversionRequest, err error) {
	statusCode := http.StatusInternalServerError
	errorMsg := entity.MsgUnknown
	outcome := "unknown"

	var convErr *entity.ConversionError
	if errors.As(err, &convErr) {
		statusCode = convErr.Kind.HTTPStatus()
		errorMsg = convErr.Message
		outcome = convErr.Kind.String()
	}

	entry := h.logger.WithError(err).WithFields(logrus.Fields{
		"from":       req.From,
		"to":         req.To,
		"amount":     req.Amount,
		"request_id": c.GetString(middleware.RequestIDKey),
	})
	switch {
	case errors.Is(err, context.Canceled):
		entry.Info("Client went away during conversion")
	case statusCode >= http.StatusInternalServerError:
		entry.Error("Conversion failed")
	default:
		entry.Debug("Conversion rejected")
	}

	h.metrics.ObserveConversion(outcome)
	c.JSON(statusCode, gin.H{"error": errorMsg})
}
