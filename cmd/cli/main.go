package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vk/taskflowgo/internal/app"
	"github.com/vk/taskflowgo/internal/cli"
	"github.com/vk/taskflowgo/internal/config"
	"github.com/vk/taskflowgo/internal/hcl"
	"github.com/vk/taskflowgo/internal/yaml"
)

// main is the entrypoint for the taskflowgo application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW io.Writer, args []string) (err error) {
	appConfig, shouldExit, parseErr := cli.Parse(args, outW)
	if parseErr != nil {
		return parseErr
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical config errors, so we recover here to
	// provide a clean exit message to the user.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked | %v", r)
		}
	}()

	loader := chooseLoader(appConfig)
	flowApp := app.NewApp(outW, appConfig, loader)

	return flowApp.Run(context.Background(), appConfig)
}

// chooseLoader picks the concrete config loader for the configured format.
// In "auto" mode the file extension decides, with HCL as the default.
func chooseLoader(appConfig *app.Config) config.Loader {
	format := appConfig.Format
	if format == "auto" {
		lower := strings.ToLower(appConfig.ConfigPath)
		if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
			format = "yaml"
		} else {
			format = "hcl"
		}
	}
	if format == "yaml" {
		return yaml.NewLoader()
	}
	return hcl.NewLoader()
}
