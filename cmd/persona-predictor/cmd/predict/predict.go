package predict

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"opencsg.com/persona-predictor/common/config"
	"opencsg.com/persona-predictor/common/types"
	"opencsg.com/persona-predictor/predictor/component"
)

var (
	sentenceA  string
	sentenceB  string
	prompt     string
	persona    string
	numResults int
)

func init() {
	coherenceCmd.Flags().StringVar(&sentenceA, "sentence-a", "The patient showed symptoms of a bacterial infection.", "first sentence")
	coherenceCmd.Flags().StringVar(&sentenceB, "sentence-b", "An immediate course of antibiotics was prescribed.", "sentence that should follow the first one")

	generateCmd.Flags().StringVar(&prompt, "prompt", "", "text to continue")
	generateCmd.Flags().StringVar(&persona, "persona", "writer", "one of lawyer, doctor, writer or teacher")
	generateCmd.Flags().IntVarP(&numResults, "num-results", "n", 0, "number of sentences to generate, 0 uses the configured default")
	_ = generateCmd.MarkFlagRequired("prompt")

	Cmd.AddCommand(coherenceCmd, generateCmd)
}

// Cmd runs the predictor once from the command line with the server configuration.
var Cmd = &cobra.Command{
	Use:   "predict",
	Short: "Run a single prediction against the configured models",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var coherenceCmd = &cobra.Command{
	Use:     "coherence",
	Short:   "Check if sentence B coherently follows sentence A",
	Example: predictExample(),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, predictor, err := loadPredictor(cmd.Context())
		if err != nil {
			return err
		}
		result, err := predictor.CheckCoherence(cmd.Context(), sentenceA, sentenceB)
		if err != nil {
			return err
		}
		printCoherence(cmd.OutOrStdout(), sentenceA, sentenceB, result)
		return nil
	},
}

var generateCmd = &cobra.Command{
	Use:     "generate",
	Short:   "Generate the next sentences of a prompt in the voice of a persona",
	Example: predictExample(),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, predictor, err := loadPredictor(cmd.Context())
		if err != nil {
			return err
		}
		n := numResults
		if n == 0 {
			n = cfg.Generator.DefaultNumResults
		}
		sentences, err := predictor.GenerateNextSentence(cmd.Context(), prompt, persona, n)
		if err != nil {
			return err
		}
		printSentences(cmd.OutOrStdout(), persona, sentences)
		return nil
	},
}

func loadPredictor(ctx context.Context) (*config.Config, component.PredictorComponent, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	predictor, err := component.NewPredictorComponentFromConfig(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load the AI model: %w", err)
	}
	return cfg, predictor, nil
}

func printCoherence(w io.Writer, a, b string, result *types.CoherenceResult) {
	fmt.Fprintf(w, "A: %q\n", a)
	fmt.Fprintf(w, "B: %q\n", b)
	fmt.Fprintf(w, "Result: %s (Confidence: %.2f%%)\n", result.Label, result.Confidence*100)
}

func printSentences(w io.Writer, persona string, sentences []string) {
	fmt.Fprintf(w, "Persona: %s\n", persona)
	if len(sentences) == 0 {
		fmt.Fprintln(w, "No sentence generated.")
		return
	}
	for i, s := range sentences {
		fmt.Fprintf(w, "%d. %s\n", i+1, s)
	}
}

func predictExample() string {
	return `
persona-predictor predict coherence --sentence-a "She spilled her coffee all over the new laptop." --sentence-b "The street outside was empty."
persona-predictor predict generate --prompt "The meeting starts late" --persona lawyer -n 2
`
}
