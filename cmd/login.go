// Copyright (c) 2025 Seedgen
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"seedgen/cli/internal/config"
	apperrors "seedgen/cli/internal/errors"
	"seedgen/cli/internal/gemini"
	"seedgen/cli/internal/httperrors"
	"seedgen/cli/internal/keychain"
	"seedgen/cli/internal/logging"
	"seedgen/cli/internal/terminal"
)

// loginCmd stores a Gemini API key in the OS keychain after verifying
// it against the API. The key is read without echo and the prompt is
// wiped from the terminal afterwards.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"auth"},
	Short:   "Store and verify a Gemini API key",
	Long: `The login command prompts for a Gemini API key, verifies it with a real API
call, and stores it securely in the OS keychain for future runs.

The key is read without echoing it to the terminal. Keys from the GEMINI_API_KEY
environment variable or a .env file take precedence over the keychain at
generation time, so login is only needed when neither is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		promptText := "Enter your Gemini API key: "
		fmt.Print(promptText)

		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read API key: %w", err)
		}
		key := strings.TrimSpace(string(raw))

		// Wipe the prompt so the masked line does not linger
		terminal.ClearPreviousLines(len(promptText))

		if key == "" {
			return errors.New("API key is required")
		}

		stopSpinner := startInlineSpinner(os.Stdout, "verifying API key", spinnerFrames, 100*time.Millisecond)

		cfg, _ := config.Load()
		client, err := gemini.NewClientWithKey(ctx, cfg.Model, key)
		if err == nil {
			err = client.Ping(ctx)
		}
		stopSpinner()

		if err != nil {
			if httperrors.IsNetworkError(err) {
				return httperrors.FormatNetworkError(err, "verifying the API key")
			}
			if apperrors.KindOf(err) == apperrors.InvalidCredential {
				fmt.Println("❌ The API key was rejected. Double-check it in Google AI Studio.")
			} else {
				fmt.Println("❌ Could not verify the API key.")
			}
			fmt.Println(logging.PresentError("", err))
			return err
		}

		km, err := keychain.GetManager()
		if err != nil {
			return fmt.Errorf("keychain unavailable: %w", err)
		}
		if err := km.SaveAPIKey(key); err != nil {
			return fmt.Errorf("failed to store API key: %w", err)
		}

		fmt.Printf("✅ API key verified and stored (%s)\n", logging.MaskKey(key))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
