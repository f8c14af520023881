package handler

import (
	"context"

	"github.com/gin-gonic/gin"
)

func generate(ctx context.Context, prompt string) error { return nil }

func count(n int, ctx context.Context) int { return n }

func Generate(ctx *gin.Context) {
	_ = generate(ctx, "p")        // want "should use ctx.Request.Context"
	_ = generate(ctx.Copy(), "p") // want "should use gin request context"
	_ = generate(ctx.Request.Context(), "p")
	_ = count(1, ctx)
}
