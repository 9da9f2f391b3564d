package models

import "time"

type TipReceivedEvent struct {
	SessionID   string    `json:"session_id"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	Amount      int64     `json:"amount"`
	Currency    string    `json:"currency"`
	IsAnonymous bool      `json:"is_anonymous"`
	Message     string    `json:"message,omitempty"`
	SettledAt   time.Time `json:"settled_at"`
}

// ToAnalytics converts the stream message into the row stored by the
// analytics projection.
func (e TipReceivedEvent) ToAnalytics() AnalyticsEvent {
	metadata := map[string]interface{}{
		"session_id":   e.SessionID,
		"is_anonymous": e.IsAnonymous,
		"currency":     e.Currency,
	}
	if e.Message != "" {
		metadata["message"] = e.Message
	}
	return AnalyticsEvent{
		UserID:         e.UserID,
		EventType:      EventTypeTipReceived,
		Amount:         e.Amount,
		Metadata:       metadata,
		IdempotencyKey: TipReceivedKey(e.SessionID),
	}
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"last_error,omitempty"`
}

// MessageKey partitions the tip stream by creator.
func (e TipReceivedEvent) MessageKey() string {
	return e.UserID
}
