package main

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"
)

func TestAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), analyzer,
		"opencsg.com/persona-predictor/predictor/handler",
		"opencsg.com/persona-predictor/builder/rpc",
	)
}
