package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/Westerntf/driplypay-v2-sub002/internal/checkout"
	"github.com/Westerntf/driplypay-v2-sub002/internal/metrics"
	"github.com/Westerntf/driplypay-v2-sub002/internal/models"
	"github.com/Westerntf/driplypay-v2-sub002/internal/models/dto"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CheckoutService interface {
	CreateCheckout(ctx context.Context, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
}

type CheckoutHandler struct {
	Service CheckoutService
}

func NewCheckoutHandler(s CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{Service: s}
}

// POST /tips/checkout
func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.CheckoutSessionsTotal.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.Service.CreateCheckout(c.Request.Context(), &req)
	switch {
	case errors.Is(err, checkout.ErrInvalidTip):
		metrics.CheckoutSessionsTotal.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrProfileNotFound):
		metrics.CheckoutSessionsTotal.WithLabelValues("unknown_creator").Inc()
		c.JSON(http.StatusNotFound, gin.H{"error": "creator not found"})
	case errors.Is(err, checkout.ErrProcessor):
		metrics.CheckoutSessionsTotal.WithLabelValues("processor_error").Inc()
		logrus.WithError(err).Error("Checkout session creation failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "payment processor unavailable"})
	case err != nil:
		metrics.CheckoutSessionsTotal.WithLabelValues("error").Inc()
		logrus.WithError(err).Error("Checkout failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	default:
		metrics.CheckoutSessionsTotal.WithLabelValues("created").Inc()
		c.JSON(http.StatusCreated, resp)
	}
}
