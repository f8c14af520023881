package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"opencsg.com/persona-predictor/builder/instrumentation"
	"opencsg.com/persona-predictor/common/config"
)

func SetInfraMiddleware(r *gin.Engine, config *config.Config, serviceName string) {
	r.Use(Recovery())
	instrumentation.SetupOtelMiddleware(r, config, serviceName)
	r.Use(Request())
	r.Use(Log())
	r.Use(Metrics())

	// Unified health check
	// Since readinessProbe cannot send a head request, use the get method
	r.GET("/healthz", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})
}
