package main

import (
	"context"
	"os"

	"opencsg.com/persona-predictor/cmd/persona-predictor/cmd"
)

func main() {
	command := cmd.RootCmd
	if err := command.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
