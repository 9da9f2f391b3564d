package settlement

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Westerntf/driplypay-v2-sub002/internal/models"
	"github.com/go-playground/validator/v10"
)

const (
	EventCheckoutCompleted           = "checkout.session.completed"
	EventCheckoutAsyncPaymentSucceed = "checkout.session.async_payment_succeeded"

	MetadataUserID        = "user_id"
	MetadataUsername      = "username"
	MetadataMessage       = "message"
	MetadataAnonymous     = "anonymous"
	MetadataSupporterName = "supporter_name"

	paymentStatusPaid              = "paid"
	paymentStatusNoPaymentRequired = "no_payment_required"
)

var validate = validator.New()

type envelope struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

type checkoutSession struct {
	ID            string            `json:"id"`
	AmountTotal   *int64            `json:"amount_total"`
	Currency      string            `json:"currency"`
	PaymentStatus string            `json:"payment_status"`
	Metadata      map[string]string `json:"metadata"`
}

// Tip is a fully validated settlement request extracted from a processor
// event.
type Tip struct {
	EventID       string `validate:"required"`
	SessionID     string `validate:"required"`
	UserID        string `validate:"required"`
	Username      string `validate:"required"`
	Amount        int64  `validate:"gte=0"`
	Currency      string `validate:"required,len=3"`
	Message       string `validate:"max=500"`
	Anonymous     bool
	SupporterName string `validate:"max=80"`
}

func parseEnvelope(raw []byte) (envelope, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return env, fmt.Errorf("%w: %v", errMalformedEvent, err)
	}
	if strings.TrimSpace(env.Type) == "" {
		return env, fmt.Errorf("%w: missing event type", errMalformedEvent)
	}
	return env, nil
}

// eventKey identifies a delivery for the unreconciled log. Deliveries
// without an id are keyed by the payload hash.
func eventKey(env envelope, raw []byte) string {
	if id := strings.TrimSpace(env.ID); id != "" {
		return id
	}
	sum := sha256.Sum256(raw)
	return "hash:" + hex.EncodeToString(sum[:])
}

func isSettlementEvent(eventType string) bool {
	switch eventType {
	case EventCheckoutCompleted, EventCheckoutAsyncPaymentSucceed:
		return true
	default:
		return false
	}
}

func parseTip(env envelope) (Tip, error) {
	if len(env.Data.Object) == 0 {
		return Tip{}, fmt.Errorf("%w: missing data.object", errMalformedEvent)
	}

	var cs checkoutSession
	if err := json.Unmarshal(env.Data.Object, &cs); err != nil {
		return Tip{}, fmt.Errorf("%w: %v", errMalformedEvent, err)
	}

	// A completed session with a delayed payment method settles later
	// through async_payment_succeeded.
	if env.Type == EventCheckoutCompleted &&
		cs.PaymentStatus != paymentStatusPaid && cs.PaymentStatus != paymentStatusNoPaymentRequired {
		return Tip{}, errAwaitingPayment
	}

	if cs.AmountTotal == nil {
		return Tip{}, fmt.Errorf("%w: missing amount_total", errMalformedEvent)
	}
	if cs.Metadata == nil {
		return Tip{}, fmt.Errorf("%w: missing metadata", errMalformedEvent)
	}

	rawAnonymous, ok := cs.Metadata[MetadataAnonymous]
	if !ok {
		return Tip{}, fmt.Errorf("%w: missing metadata.%s", errMalformedEvent, MetadataAnonymous)
	}
	anonymous, err := strconv.ParseBool(strings.TrimSpace(rawAnonymous))
	if err != nil {
		return Tip{}, fmt.Errorf("%w: metadata.%s is not a boolean: %q", errMalformedEvent, MetadataAnonymous, rawAnonymous)
	}

	tip := Tip{
		EventID:       strings.TrimSpace(env.ID),
		SessionID:     strings.TrimSpace(cs.ID),
		UserID:        strings.TrimSpace(cs.Metadata[MetadataUserID]),
		Username:      strings.TrimSpace(cs.Metadata[MetadataUsername]),
		Amount:        *cs.AmountTotal,
		Currency:      strings.ToLower(strings.TrimSpace(cs.Currency)),
		Message:       strings.TrimSpace(cs.Metadata[MetadataMessage]),
		Anonymous:     anonymous,
		SupporterName: strings.TrimSpace(cs.Metadata[MetadataSupporterName]),
	}
	if err := validate.Struct(tip); err != nil {
		return Tip{}, fmt.Errorf("%w: %v", errMalformedEvent, err)
	}
	return tip, nil
}

// SupportRecord builds the ledger entry for the tip. Anonymous tips never
// carry a supporter name.
func (t Tip) SupportRecord() *models.Support {
	record := &models.Support{
		UserID:             t.UserID,
		Amount:             t.Amount,
		Currency:           t.Currency,
		IsAnonymous:        t.Anonymous,
		ProcessorSessionID: t.SessionID,
	}
	if t.Message != "" {
		msg := t.Message
		record.Message = &msg
	}
	if !t.Anonymous && t.SupporterName != "" {
		name := t.SupporterName
		record.SupporterName = &name
	}
	return record
}

// Received is the analytics stream form of the settled tip.
func (t Tip) Received(settledAt time.Time) models.TipReceivedEvent {
	return models.TipReceivedEvent{
		SessionID:   t.SessionID,
		UserID:      t.UserID,
		Username:    t.Username,
		Amount:      t.Amount,
		Currency:    t.Currency,
		IsAnonymous: t.Anonymous,
		Message:     t.Message,
		SettledAt:   settledAt,
	}
}
