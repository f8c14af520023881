package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"opencsg.com/persona-predictor/api/middleware"
	"opencsg.com/persona-predictor/builder/instrumentation"
	"opencsg.com/persona-predictor/common/config"
	"opencsg.com/persona-predictor/predictor/component"
	"opencsg.com/persona-predictor/predictor/handler"
)

const apiPrefix = "/api"

// NewRouter builds the http routes of the predictor service. predictor may be nil,
// the inference endpoints then answer that the model is not available.
func NewRouter(config *config.Config, predictor component.PredictorComponent) (*gin.Engine, error) {
	r := gin.New()
	middleware.SetInfraMiddleware(r, config, instrumentation.PersonaPredictor)
	r.Use(apiCORS(config))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if config.APIServer.EnablePprof {
		//add router for golang pprof
		pprof.Register(r)
	}
	if config.EnableSwagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	ph := handler.NewPredictorHandler(config, predictor)
	apiGroup := r.Group(apiPrefix)
	{
		apiGroup.GET("/", ph.Status)
		apiGroup.POST("/generate", ph.Generate)
		apiGroup.POST("/check-coherence", ph.CheckCoherence)
	}

	return r, nil
}

// apiCORS applies the CORS policy to /api/* only. It is installed on the engine
// so that preflight requests without a matching OPTIONS route are answered too.
func apiCORS(config *config.Config) gin.HandlerFunc {
	cc := cors.Config{
		AllowOrigins: config.CORS.AllowOrigins,
		AllowMethods: config.CORS.AllowMethods,
		AllowHeaders: config.CORS.AllowHeaders,
		MaxAge:       12 * time.Hour,
	}
	if len(cc.AllowOrigins) == 0 || (len(cc.AllowOrigins) == 1 && cc.AllowOrigins[0] == "*") {
		cc.AllowOrigins = nil
		cc.AllowAllOrigins = true
	}
	if len(cc.AllowMethods) == 0 {
		cc.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	}
	if len(cc.AllowHeaders) == 0 {
		cc.AllowHeaders = []string{"Content-Type"}
	}
	corsHandler := cors.New(cc)

	return func(ctx *gin.Context) {
		if strings.HasPrefix(ctx.Request.URL.Path, apiPrefix+"/") {
			corsHandler(ctx)
		}
	}
}
