package config

import (
	"context"
	"log/slog"
	"os"
	"reflect"

	"github.com/mcuadros/go-defaults"
	"github.com/naoina/toml"
	"github.com/sethvargo/go-envconfig"
)

var configFile = ""

type Config struct {
	// enable swagger ui at /swagger/index.html
	EnableSwagger bool `env:"PERSONA_PREDICTOR_ENABLE_SWAGGER" default:"false"`

	APIServer struct {
		Port        int  `env:"PERSONA_PREDICTOR_SERVER_PORT" default:"5000"`
		EnablePprof bool `env:"PERSONA_PREDICTOR_ENABLE_PPROF" default:"false"`
	}

	// Generator is an OpenAI compatible completion server hosting the causal language model,
	// e.g. vLLM, LocalAI or TGI started with the openai api.
	Generator struct {
		BaseURL           string  `env:"PERSONA_PREDICTOR_GENERATOR_BASE_URL" default:"http://localhost:8000/v1"`
		APIKey            string  `env:"PERSONA_PREDICTOR_GENERATOR_API_KEY" default:""`
		Model             string  `env:"PERSONA_PREDICTOR_GENERATOR_MODEL" default:"gpt2-medium"`
		TopK              int     `env:"PERSONA_PREDICTOR_GENERATOR_TOP_K" default:"50"`
		TopP              float64 `env:"PERSONA_PREDICTOR_GENERATOR_TOP_P" default:"0.95"`
		Temperature       float64 `env:"PERSONA_PREDICTOR_GENERATOR_TEMPERATURE" default:"0.9"`
		NoRepeatNgramSize int     `env:"PERSONA_PREDICTOR_GENERATOR_NO_REPEAT_NGRAM_SIZE" default:"2"`
		MaxNewTokens      int     `env:"PERSONA_PREDICTOR_GENERATOR_MAX_NEW_TOKENS" default:"50"`
		DefaultNumResults int     `env:"PERSONA_PREDICTOR_GENERATOR_DEFAULT_NUM_RESULTS" default:"3"`
		MaxNumResults     int     `env:"PERSONA_PREDICTOR_GENERATOR_MAX_NUM_RESULTS" default:"0"`
		// 0 means no timeout, the request context still applies
		TimeoutSeconds int `env:"PERSONA_PREDICTOR_GENERATOR_TIMEOUT_SECONDS" default:"0"`
	}

	// Classifier is a text-embeddings-inference server hosting the NLI sequence pair classifier.
	Classifier struct {
		Endpoint               string  `env:"PERSONA_PREDICTOR_CLASSIFIER_ENDPOINT" default:"http://localhost:8081"`
		APIKey                 string  `env:"PERSONA_PREDICTOR_CLASSIFIER_API_KEY" default:""`
		Model                  string  `env:"PERSONA_PREDICTOR_CLASSIFIER_MODEL" default:"facebook/bart-large-mnli"`
		ContradictionLabel     string  `env:"PERSONA_PREDICTOR_CLASSIFIER_CONTRADICTION_LABEL" default:"contradiction"`
		NeutralLabel           string  `env:"PERSONA_PREDICTOR_CLASSIFIER_NEUTRAL_LABEL" default:"neutral"`
		EntailmentLabel        string  `env:"PERSONA_PREDICTOR_CLASSIFIER_ENTAILMENT_LABEL" default:"entailment"`
		ContradictionThreshold float64 `env:"PERSONA_PREDICTOR_CLASSIFIER_CONTRADICTION_THRESHOLD" default:"0.5"`
		TimeoutSeconds         int     `env:"PERSONA_PREDICTOR_CLASSIFIER_TIMEOUT_SECONDS" default:"0"`
		// total attempts of one classification call, 1 disables retry
		RetryTimes uint `env:"PERSONA_PREDICTOR_CLASSIFIER_RETRY_TIMES" default:"1"`
	}

	// empty lists fall back to all origins, GET/POST/OPTIONS and Content-Type
	CORS struct {
		AllowOrigins []string `env:"PERSONA_PREDICTOR_CORS_ALLOW_ORIGINS, delimiter=;"`
		AllowMethods []string `env:"PERSONA_PREDICTOR_CORS_ALLOW_METHODS, delimiter=;"`
		AllowHeaders []string `env:"PERSONA_PREDICTOR_CORS_ALLOW_HEADERS, delimiter=;"`
	}

	Instrumentation struct {
		OTLPEndpoint string `env:"OPENCSG_TRACING_OTLP_ENDPOINT"`
		//Note: don't enable it unless you have no other way to collect service logs. It will leads to very high CPU usage.
		OTLPLogging bool `env:"OPENCSG_TRACING_OTLP_LOGGING"`
	}
}

func SetConfigFile(file string) {
	configFile = file
}

func LoadConfig() (*Config, error) {
	defer slog.Debug("end load config")
	slog.Debug("start load config")
	cfg := &Config{}
	defaults.SetDefaults(cfg)
	toml.DefaultConfig.MissingField = func(typ reflect.Type, key string) error {
		return nil
	}

	if configFile != "" {
		f, err := os.Open(configFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		err = toml.NewDecoder(f).Decode(cfg)
		if err != nil {
			return nil, err
		}
	}

	// Always read environment variables, even if a config file exists. If a config value is present in both the
	// config file and the environment, the environment value takes priority. If a config value is missing from
	// the config file, the default value (specified by the struct field's default tag) will be used.
	err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:           cfg,
		DefaultOverwrite: true,
	})
	return cfg, err
}
