package processor_test

import (
	"testing"
	"time"

	"github.com/Westerntf/driplypay-v2-sub002/internal/processor"
	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v76/webhook"
)

const secret = "whsec_test_secret"

func signed(payload []byte, secret string, at time.Time) string {
	return webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: at,
	}).Header
}

func TestWebhookVerifier_Verify(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)
	verifier := processor.NewWebhookVerifier(secret, 5*time.Minute)

	tests := []struct {
		name    string
		payload []byte
		header  string
		wantErr bool
	}{
		{name: "valid signature", payload: payload, header: signed(payload, secret, time.Now())},
		{name: "wrong secret", payload: payload, header: signed(payload, "whsec_other", time.Now()), wantErr: true},
		{name: "tampered body", payload: []byte(`{"id":"evt_1","type":"charge.refunded"}`), header: signed(payload, secret, time.Now()), wantErr: true},
		{name: "stale timestamp", payload: payload, header: signed(payload, secret, time.Now().Add(-time.Hour)), wantErr: true},
		{name: "garbage header", payload: payload, header: "not-a-signature", wantErr: true},
		{name: "empty header", payload: payload, header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := verifier.Verify(tt.payload, tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestWebhookVerifier_RequiresSecret(t *testing.T) {
	payload := []byte(`{}`)
	verifier := processor.NewWebhookVerifier("", 0)

	assert.Error(t, verifier.Verify(payload, signed(payload, "", time.Now())))
}
