package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/Westerntf/driplypay-v2-sub002/internal/metrics"
	"github.com/Westerntf/driplypay-v2-sub002/internal/settlement"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	SignatureHeader = "Stripe-Signature"
	maxWebhookBody  = 64 << 10
)

type Reconciler interface {
	HandleCompletionEvent(ctx context.Context, rawBody []byte, signatureHeader string) (settlement.Result, error)
}

type WebhookHandler struct {
	Reconciler Reconciler
}

func NewWebhookHandler(r Reconciler) *WebhookHandler {
	return &WebhookHandler{Reconciler: r}
}

// POST /webhooks/stripe
func (h *WebhookHandler) HandleStripe(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "payload too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res, err := h.Reconciler.HandleCompletionEvent(c.Request.Context(), body, c.GetHeader(SignatureHeader))
	metrics.SettlementsTotal.WithLabelValues(string(res.Outcome)).Inc()

	switch {
	case errors.Is(err, settlement.ErrInvalidSignature):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
	case err != nil:
		logrus.WithError(err).Error("Webhook delivery not settled, processor will retry")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "temporarily unavailable"})
	default:
		c.JSON(http.StatusOK, gin.H{"ok": true, "outcome": res.Outcome})
	}
}
