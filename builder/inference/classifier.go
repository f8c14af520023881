package inference

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"opencsg.com/persona-predictor/builder/rpc"
)

// Classifier scores sentence pairs with a sequence pair classification model.
type Classifier interface {
	// Scores returns the raw logit of every class for the (premise, hypothesis) pair.
	Scores(ctx context.Context, premise, hypothesis string) ([]LabelScore, error)
	Info(ctx context.Context) (*ClassifierInfo, error)
}

type ClassifierOption struct {
	APIKey     string
	Timeout    time.Duration
	RetryTimes uint
}

// teiClassifier talks to a text-embeddings-inference server started with a classifier model.
type teiClassifier struct {
	hc *rpc.HttpClient
}

func NewTEIClassifier(endpoint string, opt ClassifierOption) Classifier {
	var opts []rpc.RequestOption
	if opt.APIKey != "" {
		opts = append(opts, rpc.AuthWithApiKey(opt.APIKey))
	}
	hc := rpc.NewHttpClient(endpoint, opts...).
		WithRetry(opt.RetryTimes).
		WithTimeout(opt.Timeout)
	return &teiClassifier{hc: hc}
}

func (c *teiClassifier) Scores(ctx context.Context, premise, hypothesis string) ([]LabelScore, error) {
	req := TEIPredictRequest{
		Inputs:    [][]string{{premise, hypothesis}},
		RawScores: true,
		Truncate:  true,
	}
	var raw json.RawMessage
	if err := c.hc.Post(ctx, "/predict", req, &raw); err != nil {
		return nil, fmt.Errorf("failed to call classifier predict: %w", err)
	}
	return decodePrediction(raw)
}

// decodePrediction accepts both the batched [[...]] and the single [...] response shape.
func decodePrediction(raw json.RawMessage) ([]LabelScore, error) {
	var batch [][]LabelScore
	if err := json.Unmarshal(raw, &batch); err == nil {
		if len(batch) == 0 || len(batch[0]) == 0 {
			return nil, errors.New("classifier returned no predictions")
		}
		return batch[0], nil
	}

	var single []LabelScore
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, fmt.Errorf("failed to decode classifier response: %w", err)
	}
	if len(single) == 0 {
		return nil, errors.New("classifier returned no predictions")
	}
	return single, nil
}

func (c *teiClassifier) Info(ctx context.Context) (*ClassifierInfo, error) {
	var info TEIInfo
	if err := c.hc.Get(ctx, "/info", &info); err != nil {
		return nil, fmt.Errorf("failed to get classifier info: %w", err)
	}
	raw, ok := info.ModelType["classifier"]
	if !ok {
		return nil, fmt.Errorf("model %s is not served as a classifier", info.ModelID)
	}
	var ct teiClassifierType
	if err := json.Unmarshal(raw, &ct); err != nil {
		return nil, fmt.Errorf("failed to decode classifier labels: %w", err)
	}

	ids := make([]string, 0, len(ct.ID2Label))
	for id := range ct.ID2Label {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, errA := strconv.Atoi(ids[i])
		b, errB := strconv.Atoi(ids[j])
		if errA != nil || errB != nil {
			return ids[i] < ids[j]
		}
		return a < b
	})
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		labels = append(labels, ct.ID2Label[id])
	}
	return &ClassifierInfo{ModelID: info.ModelID, Labels: labels}, nil
}
