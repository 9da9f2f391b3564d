package settlement

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Westerntf/driplypay-v2-sub002/internal/metrics"
	"github.com/Westerntf/driplypay-v2-sub002/internal/models"
	"github.com/sirupsen/logrus"
)

// Verifier authenticates a raw webhook body against its signature header.
type Verifier interface {
	Verify(payload []byte, signatureHeader string) error
}

// LedgerStore inserts a support record unless one already exists for the
// same processor session id.
type LedgerStore interface {
	InsertIfAbsent(ctx context.Context, record *models.Support) (bool, error)
}

// BalanceStore increments a creator's earnings atomically in storage.
type BalanceStore interface {
	IncrementEarnings(ctx context.Context, userID string, amount int64) error
}

// Store runs the ledger insert and the balance increment as one unit. The
// uniqueness of the session id must be enforced by the storage itself.
type Store interface {
	Atomically(ctx context.Context, fn func(ledger LedgerStore, balance BalanceStore) error) error
}

// AnalyticsStore appends to the analytics stream. Failures are tolerated.
type AnalyticsStore interface {
	Append(ctx context.Context, event models.TipReceivedEvent) error
}

// Quarantine keeps events that need manual reconciliation.
type Quarantine interface {
	Record(ctx context.Context, event *models.UnreconciledEvent) error
}

// Reconciler applies verified payment-completion events exactly once to
// the support ledger, the creator balance and the analytics stream.
type Reconciler struct {
	verifier   Verifier
	store      Store
	analytics  AnalyticsStore
	quarantine Quarantine
	now        func() time.Time
}

// New builds a Reconciler. quarantine may be nil, in which case malformed
// events are only logged.
func New(verifier Verifier, store Store, analytics AnalyticsStore, quarantine Quarantine) *Reconciler {
	return &Reconciler{
		verifier:   verifier,
		store:      store,
		analytics:  analytics,
		quarantine: quarantine,
		now:        time.Now,
	}
}

// HandleCompletionEvent processes one webhook delivery.
//
// The returned error is non-nil only for ErrInvalidSignature and
// ErrTransientStore; every other outcome is reported through Result and
// must be acknowledged to the processor.
func (r *Reconciler) HandleCompletionEvent(ctx context.Context, rawBody []byte, signatureHeader string) (Result, error) {
	if strings.TrimSpace(signatureHeader) == "" {
		return Result{Outcome: OutcomeRejected, Reason: "missing signature header"}, ErrInvalidSignature
	}
	if err := r.verifier.Verify(rawBody, signatureHeader); err != nil {
		return Result{Outcome: OutcomeRejected, Reason: err.Error()}, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	env, err := parseEnvelope(rawBody)
	if err != nil {
		return r.malformed(ctx, env, rawBody, Result{}, err), nil
	}

	res := Result{EventID: env.ID, EventType: env.Type}
	if !isSettlementEvent(env.Type) {
		res.Outcome = OutcomeIgnored
		res.Reason = "unsupported event type"
		return res, nil
	}

	tip, err := parseTip(env)
	if errors.Is(err, errAwaitingPayment) {
		res.Outcome = OutcomeIgnored
		res.Reason = err.Error()
		return res, nil
	}
	if err != nil {
		return r.malformed(ctx, env, rawBody, res, err), nil
	}

	res.SessionID = tip.SessionID
	res.UserID = tip.UserID
	res.Amount = tip.Amount

	err = r.store.Atomically(ctx, func(ledger LedgerStore, balance BalanceStore) error {
		inserted, err := ledger.InsertIfAbsent(ctx, tip.SupportRecord())
		if err != nil {
			return err
		}
		if !inserted {
			return errAlreadyProcessed
		}
		return balance.IncrementEarnings(ctx, tip.UserID, tip.Amount)
	})
	switch {
	case errors.Is(err, errAlreadyProcessed):
		res.Outcome = OutcomeAlreadyProcessed
		logrus.WithFields(logFields(res)).Info("Duplicate settlement delivery acknowledged")
		return res, nil
	case errors.Is(err, models.ErrProfileNotFound):
		return r.malformed(ctx, env, rawBody, res, fmt.Errorf("%w: unknown creator %q", errMalformedEvent, tip.UserID)), nil
	case err != nil:
		res.Outcome = OutcomeFailed
		res.Reason = err.Error()
		logrus.WithFields(logFields(res)).WithError(err).Error("Settlement write failed")
		return res, fmt.Errorf("%w: %v", ErrTransientStore, err)
	}

	r.emitAnalytics(ctx, tip)

	res.Outcome = OutcomeSettled
	metrics.TipAmounts.WithLabelValues(tip.Currency).Observe(float64(tip.Amount))
	logrus.WithFields(logFields(res)).Info("Tip settled")
	return res, nil
}

func (r *Reconciler) emitAnalytics(ctx context.Context, tip Tip) {
	if r.analytics == nil {
		return
	}
	if err := r.analytics.Append(ctx, tip.Received(r.now().UTC())); err != nil {
		metrics.AnalyticsFailuresTotal.WithLabelValues("settlement").Inc()
		logrus.WithFields(logrus.Fields{
			"session_id": tip.SessionID,
			"user_id":    tip.UserID,
		}).WithError(err).Warn("Analytics append failed, settlement kept")
	}
}

func (r *Reconciler) malformed(ctx context.Context, env envelope, raw []byte, res Result, cause error) Result {
	res.Outcome = OutcomeMalformed
	res.Reason = cause.Error()
	if res.EventID == "" {
		res.EventID = env.ID
	}
	if res.EventType == "" {
		res.EventType = env.Type
	}

	logrus.WithFields(logFields(res)).Error("Unattributable payment event, manual reconciliation required")

	if r.quarantine != nil {
		event := &models.UnreconciledEvent{
			ProcessorEventID: eventKey(env, raw),
			EventType:        env.Type,
			Reason:           res.Reason,
			Payload:          string(raw),
		}
		if err := r.quarantine.Record(ctx, event); err != nil {
			logrus.WithFields(logFields(res)).WithError(err).Error("Failed to record unreconciled event")
		}
	}
	return res
}

func logFields(res Result) logrus.Fields {
	return logrus.Fields{
		"event_id":   res.EventID,
		"event_type": res.EventType,
		"session_id": res.SessionID,
		"user_id":    res.UserID,
		"amount":     res.Amount,
		"outcome":    res.Outcome,
		"reason":     res.Reason,
	}
}
