package dto

import "strings"

type CheckoutRequest struct {
	Username      string `json:"username" validate:"required,max=64"`
	Amount        int64  `json:"amount" validate:"required,gt=0"`
	Currency      string `json:"currency" validate:"required,len=3"`
	Message       string `json:"message" validate:"max=500"`
	Anonymous     bool   `json:"anonymous"`
	SupporterName string `json:"supporter_name" validate:"max=80"`
}

func (r *CheckoutRequest) Sanitize() {
	r.Username = strings.ToLower(strings.TrimSpace(r.Username))
	r.Currency = strings.ToLower(strings.TrimSpace(r.Currency))
	r.Message = strings.TrimSpace(r.Message)
	r.SupporterName = strings.TrimSpace(r.SupporterName)
	if r.Anonymous {
		r.SupporterName = ""
	}
}

type CheckoutResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}
