package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"opencsg.com/persona-predictor/cmd/persona-predictor/cmd/predict"
	"opencsg.com/persona-predictor/cmd/persona-predictor/cmd/start"
	"opencsg.com/persona-predictor/cmd/persona-predictor/cmd/version"
	"opencsg.com/persona-predictor/common/config"
	"opencsg.com/persona-predictor/common/log"
)

var (
	logLevel   string
	logFormat  string
	configFile string
)

var RootCmd = &cobra.Command{
	Use:          "persona-predictor",
	Short:        "Persona next sentence generation and coherence checking API.",
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "set log level to debug, info, warn or error (case-insensitive). default is INFO")
	RootCmd.PersistentFlags().StringVarP(&logFormat, "log-format", "f", "json", "set log format to json or text. default is json")
	RootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path of an optional toml config file, environment variables take priority")
	RootCmd.DisableAutoGenTag = true

	cobra.OnInitialize(func() {
		setupLog(logLevel, logFormat)
		config.SetConfigFile(configFile)
	})

	RootCmd.AddCommand(
		start.Cmd,
		predict.Cmd,
		version.Cmd,
	)
}

func setupLog(lvl, format string) {
	logLevel := slog.LevelInfo.Level()
	if len(lvl) > 0 {
		err := logLevel.UnmarshalText([]byte(lvl))
		// logLevel not change if unmarshall failed
		if err != nil {
			fmt.Println("input invalid log level, use default log level INFO")
		}
	}
	opt := &slog.HandlerOptions{AddSource: false, Level: logLevel}
	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opt)
	default:
		handler = slog.NewTextHandler(os.Stdout, opt)
	}
	slog.SetDefault(slog.New(&log.ContextHandler{Handler: handler}))
}
