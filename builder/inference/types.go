package inference

import "encoding/json"

// GenerateParams are the sampling settings sent with every completion request.
type GenerateParams struct {
	Model             string
	TopK              int
	TopP              float64
	Temperature       float64
	NoRepeatNgramSize int
	MaxNewTokens      int
}

// LabelScore is one class of a sequence classification result.
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// TEIPredictRequest is the body of text-embeddings-inference POST /predict.
// Each element of Inputs is a [premise, hypothesis] pair.
type TEIPredictRequest struct {
	Inputs    [][]string `json:"inputs"`
	RawScores bool       `json:"raw_scores"`
	Truncate  bool       `json:"truncate"`
}

// TEIInfo is the subset of text-embeddings-inference GET /info we rely on.
type TEIInfo struct {
	ModelID   string                     `json:"model_id"`
	ModelSha  string                     `json:"model_sha,omitempty"`
	ModelType map[string]json.RawMessage `json:"model_type"`
	Version   string                     `json:"version"`
}

type teiClassifierType struct {
	ID2Label map[string]string `json:"id2label"`
}

// ClassifierInfo describes the model served by the classification backend.
type ClassifierInfo struct {
	ModelID string
	Labels  []string
}
