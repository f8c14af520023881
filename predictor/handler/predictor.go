package handler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/gin-gonic/gin"
	"opencsg.com/persona-predictor/api/httpbase"
	"opencsg.com/persona-predictor/common/config"
	"opencsg.com/persona-predictor/common/errorx"
	"opencsg.com/persona-predictor/common/types"
	"opencsg.com/persona-predictor/predictor/component"
)

const (
	msgMissingGenerateFields  = "Missing 'prompt' or 'persona'."
	msgMissingCoherenceFields = "Missing 'sentence_a' or 'sentence_b'."
	statusRunning             = "API is running"
)

type PredictorHandler struct {
	// nil when the models failed to load at startup
	c                 component.PredictorComponent
	defaultNumResults int
	maxNumResults     int
}

func NewPredictorHandler(cfg *config.Config, c component.PredictorComponent) *PredictorHandler {
	return &PredictorHandler{
		c:                 c,
		defaultNumResults: cfg.Generator.DefaultNumResults,
		maxNumResults:     cfg.Generator.MaxNumResults,
	}
}

// Status godoc
// @Summary      Check if the API is running
// @Description  liveness of the API, does not check the models
// @Tags         Predictor
// @Produce      json
// @Success      200  {object}  types.StatusResponse "OK"
// @Router       / [get]
func (h *PredictorHandler) Status(ctx *gin.Context) {
	httpbase.OK(ctx, types.StatusResponse{Status: statusRunning})
}

// Generate godoc
// @Summary      Generate next sentences in the voice of a persona
// @Description  continue the prompt with up to num_results sentences written as a lawyer, doctor, writer or teacher
// @Tags         Predictor
// @Accept       json
// @Produce      json
// @Param        body body types.GenerationRequest true "body"
// @Success      200  {object}  types.GenerationResult "OK"
// @Failure      400  {object}  types.ErrorResponse "Bad request"
// @Failure      500  {object}  types.ErrorResponse "Internal server error"
// @Router       /generate [post]
func (h *PredictorHandler) Generate(ctx *gin.Context) {
	if h.c == nil {
		httpbase.ModelUnavailable(ctx)
		return
	}

	var req types.GenerationRequest
	if err := bindJSON(ctx, &req); err != nil {
		slog.ErrorContext(ctx.Request.Context(), "Bad request format", slog.String("err", err.Error()))
		httpbase.BadRequest(ctx, httpbase.MsgInvalidJSON)
		return
	}
	if req.Prompt == "" || req.Persona == "" {
		httpbase.BadRequest(ctx, msgMissingGenerateFields)
		return
	}
	numResults := h.defaultNumResults
	if req.NumResults != nil {
		numResults = *req.NumResults
	}
	if msg := h.checkNumResults(numResults); msg != "" {
		httpbase.BadRequest(ctx, msg)
		return
	}

	sentences, err := h.c.GenerateNextSentence(ctx.Request.Context(), req.Prompt, req.Persona, numResults)
	if err != nil {
		if errorx.IsValidationError(err) {
			httpbase.BadRequest(ctx, err.Error())
			return
		}
		httpbase.ServerError(ctx, err)
		return
	}

	httpbase.OK(ctx, types.GenerationResult{GeneratedSentences: sentences})
}

// CheckCoherence godoc
// @Summary      Check if the second sentence follows the first coherently
// @Description  label the pair Coherent or Incoherent from the NLI contradiction probability
// @Tags         Predictor
// @Accept       json
// @Produce      json
// @Param        body body types.CoherenceRequest true "body"
// @Success      200  {object}  types.CoherenceResult "OK"
// @Failure      400  {object}  types.ErrorResponse "Bad request"
// @Failure      500  {object}  types.ErrorResponse "Internal server error"
// @Router       /check-coherence [post]
func (h *PredictorHandler) CheckCoherence(ctx *gin.Context) {
	if h.c == nil {
		httpbase.ModelUnavailable(ctx)
		return
	}

	var req types.CoherenceRequest
	if err := bindJSON(ctx, &req); err != nil {
		slog.ErrorContext(ctx.Request.Context(), "Bad request format", slog.String("err", err.Error()))
		httpbase.BadRequest(ctx, httpbase.MsgInvalidJSON)
		return
	}
	if req.SentenceA == "" || req.SentenceB == "" {
		httpbase.BadRequest(ctx, msgMissingCoherenceFields)
		return
	}

	result, err := h.c.CheckCoherence(ctx.Request.Context(), req.SentenceA, req.SentenceB)
	if err != nil {
		httpbase.ServerError(ctx, err)
		return
	}

	httpbase.OK(ctx, result)
}

// checkNumResults returns the client message for an out of range num_results,
// maxNumResults 0 leaves it unbounded.
func (h *PredictorHandler) checkNumResults(n int) string {
	switch {
	case h.maxNumResults > 0 && (n < 1 || n > h.maxNumResults):
		return fmt.Sprintf("'num_results' must be between 1 and %d.", h.maxNumResults)
	case n < 1:
		return "'num_results' must be at least 1."
	default:
		return ""
	}
}

// bindJSON decodes the request body into obj, an empty body leaves obj untouched
// so that the missing field checks answer it.
func bindJSON(ctx *gin.Context, obj any) error {
	err := ctx.ShouldBindJSON(obj)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return errorx.ReqBodyFormat(err, nil)
}
