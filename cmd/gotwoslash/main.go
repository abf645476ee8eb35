package main

import (
	"context"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/gotwoslash/cmd/gotwoslash/render"
	"github.com/walteh/gotwoslash/cmd/gotwoslash/serve"
	logging "github.com/walteh/gotwoslash/pkg/debug"
	"gitlab.com/tozd/go/errors"
)

func main() {
	if err := run(); err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	var level string
	var noColor bool

	rootCmd := &cobra.Command{
		Use:           "gotwoslash",
		Short:         "Render annotated Go samples into code plus hover, completion and error tokens",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&level, "log-level", "warn", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored logs")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		lvl, err := zerolog.ParseLevel(level)
		if err != nil {
			return errors.Errorf("parsing log level: %w", err)
		}
		colorize := !noColor && isatty.IsTerminal(os.Stderr.Fd())
		logger := logging.NewLogger(os.Stderr, lvl, colorize)
		cmd.SetContext(logger.WithContext(cmd.Context()))
		return nil
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		rootCmd.Version = "unknown"
	} else {
		rootCmd.Version = info.Main.Version
	}

	cmdVersion := &cobra.Command{
		Use: "raw-version",
		Run: func(cmdz *cobra.Command, args []string) {
			cmdz.Println(rootCmd.Version)
		},
		Hidden: true,
	}

	rootCmd.AddCommand(cmdVersion)
	rootCmd.AddCommand(render.NewRenderCommand())
	rootCmd.AddCommand(serve.NewServeCommand())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return errors.Errorf("failed to execute command: %w", err)
	}

	return nil
}
