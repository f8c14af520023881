package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type Persona string

const (
	PersonaLawyer  Persona = "lawyer"
	PersonaDoctor  Persona = "doctor"
	PersonaWriter  Persona = "writer"
	PersonaTeacher Persona = "teacher"
)

var Personas = []Persona{PersonaLawyer, PersonaDoctor, PersonaWriter, PersonaTeacher}

// ParsePersona matches name against the known personas case-insensitively.
func ParsePersona(name string) (Persona, bool) {
	p := Persona(strings.ToLower(name))
	switch p {
	case PersonaLawyer, PersonaDoctor, PersonaWriter, PersonaTeacher:
		return p, true
	default:
		return "", false
	}
}

type GenerationRequest struct {
	Prompt  string `json:"prompt" example:"The meeting starts late"`
	Persona string `json:"persona" example:"lawyer" enums:"lawyer,doctor,writer,teacher"`
	// nil means the configured default
	NumResults *int `json:"num_results,omitempty" example:"3"`
}

// UnmarshalJSON accepts num_results as a JSON number or a numeric string.
func (r *GenerationRequest) UnmarshalJSON(data []byte) error {
	type plain GenerationRequest
	aux := struct {
		*plain
		NumResults json.RawMessage `json:"num_results,omitempty"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.NumResults = nil
	raw := bytes.TrimSpace(aux.NumResults)
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var n int
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("num_results is not an integer: %q", s)
		}
		n = v
	} else {
		var num json.Number
		if err := json.Unmarshal(raw, &num); err != nil {
			return fmt.Errorf("num_results is not a number: %s", raw)
		}
		if v, err := num.Int64(); err == nil {
			n = int(v)
		} else if f, err := num.Float64(); err == nil {
			n = int(f)
		} else {
			return fmt.Errorf("num_results is not a number: %s", raw)
		}
	}
	r.NumResults = &n
	return nil
}

type GenerationResult struct {
	GeneratedSentences []string `json:"generated_sentences"`
}

type CoherenceRequest struct {
	SentenceA string `json:"sentence_a" example:"It is raining heavily outside."`
	SentenceB string `json:"sentence_b" example:"The sun is shining brightly."`
}

type CoherenceLabel string

const (
	LabelCoherent   CoherenceLabel = "Coherent"
	LabelIncoherent CoherenceLabel = "Incoherent"
)

type CoherenceResult struct {
	Label      CoherenceLabel `json:"label" example:"Incoherent"`
	Confidence float64        `json:"confidence" example:"0.97"`
}

type StatusResponse struct {
	Status string `json:"status" example:"API is running"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"An internal server error occurred."`
}
