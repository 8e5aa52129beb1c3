// Copyright (c) 2025 Seedgen
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"seedgen/cli/internal/dsn"
	"seedgen/cli/internal/keychain"
	"seedgen/cli/internal/logging"
	"seedgen/cli/internal/sqlexec"
)

// Environment variables checked for a DSN before the keychain.
const (
	envDSN         = "SEEDGEN_DSN"
	envDatabaseURL = "DATABASE_URL"
)

var applyYes bool

// applyCmd executes a generated seed script against PostgreSQL. The
// whole script runs in one transaction; other dialects are rejected at
// DSN parse time with a pointer to the right client tool.
var applyCmd = &cobra.Command{
	Use:   "apply <script.sql>",
	Short: "Apply a generated seed script to PostgreSQL",
	Long: `The apply command runs a generated .sql file against a PostgreSQL database
inside a single transaction, so a failing statement rolls everything back.

The connection string is resolved from SEEDGEN_DSN, then DATABASE_URL, then
the DSN stored by the connect command.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scriptPath := args[0]
		script, err := os.ReadFile(scriptPath)
		if err != nil {
			return fmt.Errorf("failed to read script: %w", err)
		}

		rawDSN, source, err := resolveDSN()
		if err != nil {
			return err
		}

		normalizedDSN, err := dsn.Parse(rawDSN)
		if err != nil {
			var parseErr *dsn.ParseError
			if errors.As(err, &parseErr) {
				fmt.Println("❌ " + parseErr.Error())
				return parseErr
			}
			return err
		}

		info, err := dsn.ParseInfo(normalizedDSN)
		if err != nil {
			return err
		}

		pterm.Println()
		pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint("→ Script:   ") + pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint(scriptPath))
		pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint("→ Database: ") + pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint(info.Database))
		pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint("→ DSN from: ") + pterm.NewStyle(pterm.FgLightBlue).Sprint(source))
		pterm.Println()

		if !applyYes {
			confirmed, err := pterm.DefaultInteractiveConfirm.
				Show(fmt.Sprintf("Run %d bytes of SQL against %q?", len(script), info.Database))
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Println("Aborted.")
				return nil
			}
		}

		result, err := sqlexec.Apply(cmd.Context(), normalizedDSN, string(script))
		if err != nil {
			pterm.Printf("❌ Apply failed\n")
			pterm.Println(logging.PresentError("", err))
			return err
		}

		fmt.Printf("✅ Script applied in %s\n", result.Duration.Round(time.Millisecond))
		return nil
	},
}

// resolveDSN finds a connection string: environment first, then the
// keychain entry saved by connect.
func resolveDSN() (value, source string, err error) {
	if v := strings.TrimSpace(os.Getenv(envDSN)); v != "" {
		return v, envDSN, nil
	}
	if v := strings.TrimSpace(os.Getenv(envDatabaseURL)); v != "" {
		return v, envDatabaseURL, nil
	}

	km, err := keychain.GetManager()
	if err == nil {
		if v, loadErr := km.LoadDBDSN(); loadErr == nil && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v), "keychain", nil
		}
	}

	return "", "", errors.New("no database connection configured; set SEEDGEN_DSN or run 'seedgen connect'")
}

func init() {
	applyCmd.Flags().BoolVarP(&applyYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(applyCmd)
}
