package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Westerntf/driplypay-v2-sub002/config"
	"github.com/Westerntf/driplypay-v2-sub002/internal/analytics"
	"github.com/Westerntf/driplypay-v2-sub002/internal/handler"
	"github.com/Westerntf/driplypay-v2-sub002/internal/handler/mocks"
	"github.com/Westerntf/driplypay-v2-sub002/internal/models"
	"github.com/Westerntf/driplypay-v2-sub002/internal/repository/posgrest"
	"github.com/Westerntf/driplypay-v2-sub002/internal/settlement"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsSink_Selection(t *testing.T) {
	tests := []struct {
		sink string
		want interface{}
	}{
		{sink: config.AnalyticsSinkDatabase, want: &posgrest.AnalyticsRepo{}},
		{sink: "", want: &posgrest.AnalyticsRepo{}},
		{sink: config.AnalyticsSinkKafka, want: &analytics.KafkaSink{}},
	}

	for _, tt := range tests {
		t.Run(tt.sink, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Analytics.Sink = tt.sink
			cfg.Kafka.Brokers = "localhost:9092"
			cfg.Kafka.TipsTopic = "tips.received"
			cfg.Kafka.RetryMaxAttempts = 1

			a := &App{config: cfg}
			t.Cleanup(a.Close)

			sink, err := a.analyticsSink()
			require.NoError(t, err)
			assert.IsType(t, tt.want, sink)
		})
	}
}

func TestAnalyticsSink_Unknown(t *testing.T) {
	a := &App{config: &config.Config{Analytics: config.Analytics{Sink: "s3"}}}

	_, err := a.analyticsSink()
	assert.ErrorContains(t, err, "unknown analytics sink")
}

func TestInitialize_RequiresWebhookSecret(t *testing.T) {
	a := &App{}
	err := a.Initialize(&config.Config{})
	assert.ErrorContains(t, err, "STRIPE_WEBHOOK_SECRET")
}

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reconciler := mocks.NewMockReconciler(t)
	creators := mocks.NewMockCreatorReader(t)
	tips := mocks.NewMockCheckoutService(t)

	a := &App{Router: gin.New()}
	a.RegisterRoutes(
		handler.NewWebhookHandler(reconciler),
		handler.NewCheckoutHandler(tips),
		handler.NewCreatorHandler(creators),
	)

	reconciler.EXPECT().
		HandleCompletionEvent(mock.Anything, mock.Anything, mock.Anything).
		Return(settlement.Result{Outcome: settlement.OutcomeIgnored}, nil).
		Once()
	creators.EXPECT().GetByUsername(mock.Anything, "alice").Return(&models.Profile{Username: "alice"}, nil).Once()

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhooks/stripe", strings.NewReader("{}")))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/creators/alice", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
