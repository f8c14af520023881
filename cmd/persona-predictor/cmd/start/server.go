package start

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"opencsg.com/persona-predictor/api/httpbase"
	"opencsg.com/persona-predictor/builder/instrumentation"
	"opencsg.com/persona-predictor/common/config"
	"opencsg.com/persona-predictor/docs"
	"opencsg.com/persona-predictor/predictor/component"
	"opencsg.com/persona-predictor/predictor/router"
)

var enableSwagger bool

func init() {
	serverCmd.Flags().BoolVar(&enableSwagger, "swagger", false, "Start swagger help docs")
}

var serverCmd = &cobra.Command{
	Use:     "server",
	Short:   "Start the predictor API server",
	Example: serverExample(),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		stopOtel, err := instrumentation.SetupOTelSDK(cmd.Context(), cfg, instrumentation.PersonaPredictor)
		if err != nil {
			return fmt.Errorf("failed to setup otel sdk: %w", err)
		}

		cfg.EnableSwagger = enableSwagger || cfg.EnableSwagger
		if cfg.EnableSwagger {
			docs.SwaggerInfo.Title = "Persona Predictor API"
			docs.SwaggerInfo.Version = "1.0"
			docs.SwaggerInfo.BasePath = "/api"
			docs.SwaggerInfo.Schemes = []string{"http", "https"}
		}

		// the server keeps running without models, inference endpoints then report them unavailable
		predictor, err := component.NewPredictorComponentFromConfig(cmd.Context(), cfg)
		if err != nil {
			slog.Error("failed to load the AI model, inference endpoints are disabled", slog.Any("error", err))
		}

		r, err := router.NewRouter(cfg, predictor)
		if err != nil {
			return fmt.Errorf("failed to init router: %w", err)
		}
		slog.Info("http server is running", slog.Any("port", cfg.APIServer.Port))
		server := httpbase.NewGracefulServer(
			httpbase.GraceServerOpt{
				Port: cfg.APIServer.Port,
			},
			r,
		)
		server.Run()

		_ = stopOtel(context.Background())
		return nil
	},
}

func serverExample() string {
	return `
# for development
persona-predictor start server

# with a config file and swagger ui
persona-predictor start server -c config.toml --swagger
`
}
