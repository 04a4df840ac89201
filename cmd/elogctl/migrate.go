// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/elog/internal/platform/config"
	"github.com/taibuivan/elog/internal/platform/migration"
)

func newMigrateCmd(flags *globals) *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the embedded schema migrations",
	}

	run := func(direction string, apply func(driver, dsn string, cmd *cobra.Command) error) *cobra.Command {
		return &cobra.Command{
			Use:   direction,
			Short: fmt.Sprintf("Run every %s migration", direction),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				if err := apply(cfg.DatabaseDriver, cfg.DatabaseURL, cmd); err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "migrate %s: ok\n", direction)
				return err
			},
		}
	}

	migrateCmd.AddCommand(
		run("up", func(driver, dsn string, cmd *cobra.Command) error {
			return migration.RunUp(driver, dsn, flags.logger(cmd))
		}),
		run("down", func(driver, dsn string, cmd *cobra.Command) error {
			return migration.RunDown(driver, dsn, flags.logger(cmd))
		}),
	)
	return migrateCmd
}
