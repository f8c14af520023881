package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	bld "opencsg.com/persona-predictor/builder/prometheus"
)

// Metrics records request count by method, route and status code.
func Metrics() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}
		bld.HttpRequestsTotal.WithLabelValues(ctx.Request.Method, path, strconv.Itoa(ctx.Writer.Status())).Inc()
	}
}
