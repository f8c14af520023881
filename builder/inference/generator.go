package inference

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Generator samples continuations of a prompt from a causal language model.
type Generator interface {
	// Generate returns n sampled continuations in the order the backend produced them.
	Generate(ctx context.Context, prompt string, n int) ([]string, error)
	Models(ctx context.Context) ([]string, error)
}

type GeneratorOption struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// completionGenerator uses the legacy /v1/completions endpoint of an OpenAI compatible
// server (vLLM, LocalAI, TGI). top_k and no_repeat_ngram_size are not part of the
// OpenAI schema and travel as extra body fields.
type completionGenerator struct {
	client openai.Client
	params GenerateParams
}

func NewCompletionGenerator(opt GeneratorOption, params GenerateParams) Generator {
	opts := []option.RequestOption{
		option.WithBaseURL(opt.BaseURL),
		option.WithHTTPClient(&http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   opt.Timeout,
		}),
		option.WithMaxRetries(0),
	}
	if opt.APIKey != "" {
		opts = append(opts, option.WithAPIKey(opt.APIKey))
	}
	return &completionGenerator{
		client: openai.NewClient(opts...),
		params: params,
	}
}

func (g *completionGenerator) Generate(ctx context.Context, prompt string, n int) ([]string, error) {
	params := openai.CompletionNewParams{
		Model: openai.CompletionNewParamsModel(g.params.Model),
		Prompt: openai.CompletionNewParamsPromptUnion{
			OfString: openai.String(prompt),
		},
		N:           openai.Int(int64(n)),
		MaxTokens:   openai.Int(int64(g.params.MaxNewTokens)),
		Temperature: openai.Float(g.params.Temperature),
		TopP:        openai.Float(g.params.TopP),
	}
	completion, err := g.client.Completions.New(ctx, params,
		option.WithJSONSet("top_k", g.params.TopK),
		option.WithJSONSet("no_repeat_ngram_size", g.params.NoRepeatNgramSize),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to call completions: %w", err)
	}

	choices := completion.Choices
	sort.SliceStable(choices, func(i, j int) bool {
		return choices[i].Index < choices[j].Index
	})
	texts := make([]string, 0, len(choices))
	for _, choice := range choices {
		texts = append(texts, choice.Text)
	}
	return texts, nil
}

func (g *completionGenerator) Models(ctx context.Context) ([]string, error) {
	page, err := g.client.Models.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}
	ids := make([]string, 0, len(page.Data))
	for _, m := range page.Data {
		ids = append(ids, m.ID)
	}
	return ids, nil
}
