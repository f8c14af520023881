package component

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"opencsg.com/persona-predictor/builder/inference"
	bld "opencsg.com/persona-predictor/builder/prometheus"
	"opencsg.com/persona-predictor/common/config"
	"opencsg.com/persona-predictor/common/errorx"
	"opencsg.com/persona-predictor/common/types"
)

const (
	opGenerate = "generate"
	opClassify = "classify"
)

type PredictorComponent interface {
	// GenerateNextSentence returns at most numResults non-empty sentences continuing prompt in the voice of persona.
	GenerateNextSentence(ctx context.Context, prompt, persona string, numResults int) ([]string, error)
	// CheckCoherence labels sentenceB as a coherent or incoherent follow-up of sentenceA.
	CheckCoherence(ctx context.Context, sentenceA, sentenceB string) (*types.CoherenceResult, error)
}

// Labels names the classifier classes in the order [contradiction, neutral, entailment].
type Labels struct {
	Contradiction string
	Neutral       string
	Entailment    string
}

func (l Labels) ordered() [3]string {
	return [3]string{l.Contradiction, l.Neutral, l.Entailment}
}

type predictorComponentImpl struct {
	generator  inference.Generator
	classifier inference.Classifier
	labels     Labels
	threshold  float64
}

func NewPredictorComponent(generator inference.Generator, classifier inference.Classifier, labels Labels, threshold float64) PredictorComponent {
	return &predictorComponentImpl{
		generator:  generator,
		classifier: classifier,
		labels:     labels,
		threshold:  threshold,
	}
}

func labelsFromConfig(cfg *config.Config) Labels {
	return Labels{
		Contradiction: cfg.Classifier.ContradictionLabel,
		Neutral:       cfg.Classifier.NeutralLabel,
		Entailment:    cfg.Classifier.EntailmentLabel,
	}
}

// NewPredictorComponentFromConfig creates the backend clients and checks that both models
// are served. The returned error is an ErrModelUnavailable, callers keep running without
// a predictor.
func NewPredictorComponentFromConfig(ctx context.Context, cfg *config.Config) (PredictorComponent, error) {
	generator := inference.NewCompletionGenerator(inference.GeneratorOption{
		BaseURL: cfg.Generator.BaseURL,
		APIKey:  cfg.Generator.APIKey,
		Timeout: time.Duration(cfg.Generator.TimeoutSeconds) * time.Second,
	}, inference.GenerateParams{
		Model:             cfg.Generator.Model,
		TopK:              cfg.Generator.TopK,
		TopP:              cfg.Generator.TopP,
		Temperature:       cfg.Generator.Temperature,
		NoRepeatNgramSize: cfg.Generator.NoRepeatNgramSize,
		MaxNewTokens:      cfg.Generator.MaxNewTokens,
	})
	classifier := inference.NewTEIClassifier(cfg.Classifier.Endpoint, inference.ClassifierOption{
		APIKey:     cfg.Classifier.APIKey,
		Timeout:    time.Duration(cfg.Classifier.TimeoutSeconds) * time.Second,
		RetryTimes: cfg.Classifier.RetryTimes,
	})

	return LoadPredictor(ctx, generator, classifier, cfg)
}

// LoadPredictor verifies the generator serves cfg.Generator.Model and the classifier
// exposes all three NLI classes before returning a usable predictor.
func LoadPredictor(ctx context.Context, generator inference.Generator, classifier inference.Classifier, cfg *config.Config) (PredictorComponent, error) {
	slog.InfoContext(ctx, "loading the AI model",
		slog.String("generator_model", cfg.Generator.Model),
		slog.String("generator_url", cfg.Generator.BaseURL),
		slog.String("classifier_model", cfg.Classifier.Model),
		slog.String("classifier_url", cfg.Classifier.Endpoint),
	)
	bld.ModelAvailable.Set(0)

	models, err := generator.Models(ctx)
	if err != nil {
		return nil, errorx.ModelUnavailable(fmt.Errorf("generator is not reachable: %w", err), errorx.Ctx().Set("model", cfg.Generator.Model))
	}
	if !containsFold(models, cfg.Generator.Model) {
		return nil, errorx.ModelUnavailable(fmt.Errorf("generator does not serve model %s, served: %v", cfg.Generator.Model, models), nil)
	}

	info, err := classifier.Info(ctx)
	if err != nil {
		return nil, errorx.ModelUnavailable(fmt.Errorf("classifier is not reachable: %w", err), errorx.Ctx().Set("model", cfg.Classifier.Model))
	}
	labels := labelsFromConfig(cfg)
	for _, label := range labels.ordered() {
		if !containsFold(info.Labels, label) {
			return nil, errorx.ModelUnavailable(fmt.Errorf("classifier %s has no %q class, labels: %v", info.ModelID, label, info.Labels), nil)
		}
	}
	if cfg.Classifier.Model != "" && info.ModelID != "" && !strings.EqualFold(info.ModelID, cfg.Classifier.Model) {
		slog.WarnContext(ctx, "classifier serves a different model than configured",
			slog.String("configured", cfg.Classifier.Model),
			slog.String("served", info.ModelID))
	}

	bld.ModelAvailable.Set(1)
	slog.InfoContext(ctx, "model loaded successfully",
		slog.String("generator_model", cfg.Generator.Model),
		slog.String("classifier_model", info.ModelID),
		slog.Any("classifier_labels", info.Labels),
	)
	return NewPredictorComponent(generator, classifier, labels, cfg.Classifier.ContradictionThreshold), nil
}

func (c *predictorComponentImpl) GenerateNextSentence(ctx context.Context, prompt, persona string, numResults int) ([]string, error) {
	p, ok := types.ParsePersona(persona)
	if !ok {
		return nil, errorx.InvalidPersona(persona)
	}
	if numResults < 1 {
		return nil, errorx.ReqParamInvalid(fmt.Errorf("num_results must be at least 1, got %d", numResults), nil)
	}
	templated, err := BuildPrompt(p, prompt)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	outputs, err := c.generator.Generate(ctx, templated, numResults)
	bld.InferenceDuration.WithLabelValues(opGenerate).Observe(time.Since(start).Seconds())
	if err != nil {
		bld.InferenceErrorsTotal.WithLabelValues(opGenerate).Inc()
		return nil, errorx.Inference(err, errorx.Ctx().Set("persona", string(p)))
	}

	sentences := make([]string, 0, len(outputs))
	for _, output := range outputs {
		if len(sentences) == numResults {
			break
		}
		if s := firstSentence(output, templated); s != "" {
			sentences = append(sentences, s)
		}
	}
	bld.GeneratedSentences.Observe(float64(len(sentences)))
	slog.DebugContext(ctx, "generated next sentences",
		slog.String("persona", string(p)),
		slog.Int("requested", numResults),
		slog.Int("returned", len(sentences)))
	return sentences, nil
}

func (c *predictorComponentImpl) CheckCoherence(ctx context.Context, sentenceA, sentenceB string) (*types.CoherenceResult, error) {
	start := time.Now()
	scores, err := c.classifier.Scores(ctx, sentenceA, sentenceB)
	bld.InferenceDuration.WithLabelValues(opClassify).Observe(time.Since(start).Seconds())
	if err != nil {
		bld.InferenceErrorsTotal.WithLabelValues(opClassify).Inc()
		return nil, errorx.Inference(err, nil)
	}

	logits, err := orderLogits(scores, c.labels)
	if err != nil {
		bld.InferenceErrorsTotal.WithLabelValues(opClassify).Inc()
		return nil, errorx.Inference(err, nil)
	}
	probs := softmax(logits[:])
	result := decide(probs[0], c.threshold)
	bld.CoherenceLabelsTotal.WithLabelValues(string(result.Label)).Inc()
	return result, nil
}

// orderLogits arranges the classifier output as [contradiction, neutral, entailment].
func orderLogits(scores []inference.LabelScore, labels Labels) ([3]float64, error) {
	var logits [3]float64
	for i, label := range labels.ordered() {
		found := false
		for _, s := range scores {
			if strings.EqualFold(s.Label, label) {
				logits[i] = s.Score
				found = true
				break
			}
		}
		if !found {
			return logits, fmt.Errorf("classifier output has no %q class", label)
		}
	}
	return logits, nil
}

func softmax(logits []float64) []float64 {
	probs := make([]float64, len(logits))
	if len(logits) == 0 {
		return probs
	}
	maxLogit := logits[0]
	for _, l := range logits[1:] {
		maxLogit = math.Max(maxLogit, l)
	}
	var sum float64
	for i, l := range logits {
		probs[i] = math.Exp(l - maxLogit)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}

// decide labels the pair Incoherent when the contradiction probability is strictly
// above threshold, the confidence is the probability of the chosen label.
func decide(contradiction, threshold float64) *types.CoherenceResult {
	if contradiction > threshold {
		return &types.CoherenceResult{Label: types.LabelIncoherent, Confidence: contradiction}
	}
	return &types.CoherenceResult{Label: types.LabelCoherent, Confidence: 1 - contradiction}
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}
