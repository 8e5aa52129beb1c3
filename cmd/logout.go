// Copyright (c) 2025 Seedgen
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"seedgen/cli/internal/keychain"
)

// logoutCmd removes the stored API key and database credentials from
// the OS keychain. Keys supplied via the environment are unaffected.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove stored credentials from the OS keychain",
	RunE: func(cmd *cobra.Command, args []string) error {
		km, err := keychain.GetManager()
		if err != nil {
			return fmt.Errorf("keychain unavailable: %w", err)
		}
		km.ClearAll()
		fmt.Println("✅ Stored credentials removed.")
		fmt.Println("   Note: GEMINI_API_KEY from the environment or .env still applies.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
