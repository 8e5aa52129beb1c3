// Copyright (c) 2025 Seedgen
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"seedgen/cli/internal/config"
	"seedgen/cli/internal/dialect"
	"seedgen/cli/internal/prompt"
	"seedgen/cli/internal/tui"
)

var (
	formDialect string
	formModel   string
	formUUID    bool
	formRoles   bool
	formOutput  string
	verboseForm bool
)

// formCmd runs the full-screen form for entering pools and jobs, then
// feeds the result through the same generation pipeline as generate.
var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Collect inputs with a full-screen form, then generate",
	Long: `The form command opens an interactive full-screen form for entering question
pools and job positions. Leaving the first field empty moves on: an empty skill
advances to job entry, an empty job name starts generation.

Generation settings (dialect, model, output prefix) come from flags or the
saved configuration, same as the generate command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if verboseForm {
			os.Setenv("SEEDGEN_VERBOSE", "1")
		}

		cfg, _ := config.Load()
		if !cmd.Flags().Changed("dialect") {
			formDialect = cfg.Dialect
		}
		if !cmd.Flags().Changed("model") {
			formModel = cfg.Model
		}
		if !cmd.Flags().Changed("output") {
			formOutput = cfg.OutputPrefix
		}
		if !cmd.Flags().Changed("uuid") {
			formUUID = cfg.UseUUID
		}
		if !cmd.Flags().Changed("roles") {
			formRoles = cfg.IncludeRoles
		}

		d, ok := dialect.Parse(formDialect)
		if !ok && strings.TrimSpace(formDialect) != "" {
			pterm.Warning.Printf("Unknown dialect %q, falling back to %s\n", formDialect, d)
		}

		req, err := tui.Run()
		if err != nil {
			if errors.Is(err, tui.ErrAborted) {
				fmt.Println("Cancelled.")
				return nil
			}
			return err
		}

		opts := prompt.Options{Dialect: d, UseUUID: formUUID, IncludeRoles: formRoles}
		return runGeneration(cmd.Context(), req, opts, formModel, formOutput)
	},
}

func init() {
	formCmd.Flags().StringVar(&formDialect, "dialect", config.DefaultDialect, "Target SQL dialect (mysql, postgres, sqlserver)")
	formCmd.Flags().StringVar(&formModel, "model", config.DefaultModel, "Gemini model to use")
	formCmd.Flags().BoolVar(&formUUID, "uuid", true, "Use UUID primary keys instead of auto-increment")
	formCmd.Flags().BoolVar(&formRoles, "roles", false, "Also seed roles and permissions tables")
	formCmd.Flags().StringVarP(&formOutput, "output", "o", config.DefaultPrefix, "Output file prefix")
	formCmd.Flags().BoolVarP(&verboseForm, "verbose", "v", false, "Enable verbose debug logging")
	rootCmd.AddCommand(formCmd)
}
