// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command elogctl is the operator CLI of the Elog service.
//
// It reads the same environment as the API server (DATABASE_DRIVER,
// DATABASE_URL, ELOG_*) and talks to the store directly.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/elog/internal/app"
	"github.com/taibuivan/elog/internal/platform/config"
	"github.com/taibuivan/elog/internal/platform/constants"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// globals are the persistent flags shared by every subcommand.
type globals struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &globals{}

	rootCmd := &cobra.Command{
		Use:          "elogctl",
		Short:        "elogctl manages and queries an Elog database",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log to stderr")

	rootCmd.AddCommand(
		newMigrateCmd(flags),
		newEntriesCmd(flags),
		newLognumberCmd(flags),
	)
	return rootCmd
}

func (flags *globals) logger(cmd *cobra.Command) *slog.Logger {
	output := io.Discard
	level := slog.LevelInfo
	if flags.verbose {
		output = cmd.ErrOrStderr()
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(output, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// withApp loads the configuration, opens the store and runs fn.
func withApp(cmd *cobra.Command, flags *globals, fn func(context.Context, *app.App) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	application, err := app.Open(ctx, cfg, flags.logger(cmd))
	if err != nil {
		return err
	}
	defer application.Close()

	return fn(ctx, application)
}
