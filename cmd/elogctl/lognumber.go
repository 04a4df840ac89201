// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/elog/internal/app"
	"github.com/taibuivan/elog/internal/platform/validate"
)

// maxIssued bounds one "lognumber next" run.
const maxIssued = 1000

func newLognumberCmd(flags *globals) *cobra.Command {
	lognumberCmd := &cobra.Command{
		Use:   "lognumber",
		Short: "Work with the log number sequence",
	}

	var count int
	nextCmd := &cobra.Command{
		Use:   "next",
		Short: "Issue the next log number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := new(validate.Validator).Range("count", count, 1, maxIssued).Err(); err != nil {
				return err
			}
			return withApp(cmd, flags, func(ctx context.Context, application *app.App) error {
				for range count {
					number, err := application.Lognumber.Next(ctx)
					if err != nil {
						return err
					}
					if _, err := fmt.Fprintln(cmd.OutOrStdout(), number); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	nextCmd.Flags().IntVarP(&count, "count", "n", 1, "how many numbers to issue")

	lognumberCmd.AddCommand(nextCmd)
	return lognumberCmd
}
