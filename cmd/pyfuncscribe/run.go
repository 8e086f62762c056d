// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/pyfuncscribe/pkg/scribe"
)

// runScribe executes the report generation pipeline for the root command.
// Any returned error maps to exit code 1 in main.
func runScribe(cmd *cobra.Command, args []string) error {
	cfg := scribe.Config{
		RootDir:            viper.GetString("root"),
		OutputPath:         viper.GetString("output"),
		BriefDocstring:     viper.GetBool("brief"),
		IncludeCommented:   viper.GetBool("include-commented"),
		IncludeDataclasses: viper.GetBool("dataclasses"),
		AddDescription:     viper.GetBool("add-description"),
		NoRecurse:          viper.GetBool("no-recursive"),
		IncludeEmpty:       viper.GetBool("include-empty"),
		Model:              viper.GetString("model"),
		Region:             viper.GetString("region"),
		Profile:            viper.GetString("profile"),
		Stdout:             cmd.OutOrStdout(),
		Stderr:             cmd.ErrOrStderr(),
	}

	s, err := scribe.New(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	_, err = s.Run(ctx)
	return err
}
