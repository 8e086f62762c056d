// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command pyfuncscribe generates a markdown report of the functions
// defined in a Python codebase.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "pyfuncscribe",
		Short: "Markdown function reports for Python codebases",
		Long: "pyfuncscribe scans a directory tree of Python files, extracts every\n" +
			"function signature, and renders a markdown report grouped by directory.",
		RunE:          runScribe,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringP("root", "r", ".", "Root directory to start the search from")
	rootCmd.Flags().StringP("output", "o", "", "Output file path for the markdown report (default: stdout)")
	rootCmd.Flags().BoolP("brief", "b", false, "Include only the first line of docstrings")
	rootCmd.Flags().BoolP("include-commented", "c", false, "Include functions that are commented out")
	rootCmd.Flags().Bool("dataclasses", false, "Also report dataclass declarations")
	rootCmd.Flags().BoolP("add-description", "d", false, "Add an LLM-generated description to the report (requires a Bedrock model)")
	rootCmd.Flags().Bool("no-recursive", false, "Scan only the root directory, not subdirectories")
	rootCmd.Flags().Bool("include-empty", false, "Write a report even when no functions are found")
	rootCmd.Flags().String("model", "", "Bedrock model ID for description generation")
	rootCmd.Flags().String("region", "", "AWS region for Bedrock")
	rootCmd.Flags().String("profile", "", "AWS credential profile")

	viper.BindPFlags(rootCmd.Flags())

	// Env vars: PYFUNCSCRIBE_MODEL, PYFUNCSCRIBE_REGION, etc.
	viper.SetEnvPrefix("PYFUNCSCRIBE")
	viper.AutomaticEnv()

	// Config file.
	viper.SetConfigName(".pyfuncscribe")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print pyfuncscribe version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("pyfuncscribe %s\n", version)
		},
	}
}
