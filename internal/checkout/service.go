package checkout

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/Westerntf/driplypay-v2-sub002/internal/models"
	"github.com/Westerntf/driplypay-v2-sub002/internal/models/dto"
	"github.com/Westerntf/driplypay-v2-sub002/internal/settlement"
	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidTip = errors.New("invalid tip request")
	ErrProcessor  = errors.New("payment processor error")
)

// SessionRequest is what the processor needs to open a hosted checkout.
type SessionRequest struct {
	Amount      int64
	Currency    string
	Description string
	Metadata    map[string]string
}

type Session struct {
	ID  string
	URL string
}

// SessionCreator opens a hosted checkout session at the payment processor.
type SessionCreator interface {
	CreateSession(ctx context.Context, req SessionRequest) (*Session, error)
}

// ProfileFinder resolves a public username to the creator profile.
type ProfileFinder interface {
	GetByUsername(ctx context.Context, username string) (*models.Profile, error)
}

type Limits struct {
	MinAmount  int64
	MaxAmount  int64
	Currencies []string
}

// Service starts tip checkouts. It embeds everything the settlement
// reconciler needs in the session metadata so the webhook can be
// attributed without a secondary lookup.
type Service struct {
	Sessions SessionCreator
	Profiles ProfileFinder
	Limits   Limits
	validate *validator.Validate
}

func NewService(sessions SessionCreator, profiles ProfileFinder, limits Limits) *Service {
	return &Service{
		Sessions: sessions,
		Profiles: profiles,
		Limits:   limits,
		validate: validator.New(),
	}
}

// CreateCheckout validates the request, resolves the creator and opens a
// checkout session. Validation failures wrap ErrInvalidTip; an unknown
// username returns models.ErrProfileNotFound and processor failures wrap
// ErrProcessor.
func (s *Service) CreateCheckout(ctx context.Context, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	req.Sanitize()
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	profile, err := s.Profiles.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	metadata := map[string]string{
		settlement.MetadataUserID:    profile.UserID,
		settlement.MetadataUsername:  profile.Username,
		settlement.MetadataAnonymous: strconv.FormatBool(req.Anonymous),
	}
	if req.Message != "" {
		metadata[settlement.MetadataMessage] = req.Message
	}
	if req.SupporterName != "" {
		metadata[settlement.MetadataSupporterName] = req.SupporterName
	}

	session, err := s.Sessions.CreateSession(ctx, SessionRequest{
		Amount:      req.Amount,
		Currency:    req.Currency,
		Description: fmt.Sprintf("Tip for @%s", profile.Username),
		Metadata:    metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProcessor, err)
	}

	return &dto.CheckoutResponse{SessionID: session.ID, URL: session.URL}, nil
}

func (s *Service) validateRequest(req *dto.CheckoutRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTip, err)
	}
	if s.Limits.MinAmount > 0 && req.Amount < s.Limits.MinAmount {
		return fmt.Errorf("%w: amount must be at least %d", ErrInvalidTip, s.Limits.MinAmount)
	}
	if s.Limits.MaxAmount > 0 && req.Amount > s.Limits.MaxAmount {
		return fmt.Errorf("%w: amount must not exceed %d", ErrInvalidTip, s.Limits.MaxAmount)
	}
	if len(s.Limits.Currencies) > 0 && !slices.Contains(s.Limits.Currencies, req.Currency) {
		return fmt.Errorf("%w: currency %q is not supported", ErrInvalidTip, req.Currency)
	}
	return nil
}
