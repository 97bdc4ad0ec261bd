package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harshmriduhash/Cold-Emailer/pkg/metrics"
)

func NewHTTPServer(addr string, h *Handlers) *http.Server {
	r := gin.New()
	r.Use(gin.Recovery(), Observability())

	r.GET("/healthz", h.Healthz)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	r.GET("/campaign", h.GetCampaign)
	r.PUT("/campaign/fields/:field", h.SetField)
	r.POST("/campaign/recipients", h.AddRecipient)
	r.PATCH("/campaign/recipients/:id", h.UpdateRecipient)
	r.DELETE("/campaign/recipients/:id", h.RemoveRecipient)
	r.POST("/campaign/submit", h.Submit)

	r.GET("/notifications", h.Notifications)
	if h.History != nil {
		r.GET("/submissions", h.ListSubmissions)
	}

	return &http.Server{
		Addr:    addr,
		Handler: r,
	}
}
