package app

import (
	"github.com/Westerntf/driplypay-v2-sub002/internal/handler"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) RegisterRoutes(webhooks *handler.WebhookHandler, tips *handler.CheckoutHandler, creators *handler.CreatorHandler) {
	a.Router.POST("/webhooks/stripe", webhooks.HandleStripe)
	a.Router.POST("/tips/checkout", tips.CreateCheckout)

	c := a.Router.Group("/creators")
	c.GET("/:username", creators.GetProfile)
	c.GET("/:username/supports", creators.ListSupports)

	registerMetricsRoute(a.Router)
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
