// Copyright (c) 2025 Seedgen
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"seedgen/cli/internal/config"
	"seedgen/cli/internal/dialect"
	"seedgen/cli/internal/gemini"
	"seedgen/cli/internal/httperrors"
	"seedgen/cli/internal/inputs"
	"seedgen/cli/internal/logging"
	"seedgen/cli/internal/output"
	"seedgen/cli/internal/prompt"
)

var (
	generateDialect string
	generateModel   string
	generateUUID    bool
	generateRoles   bool
	generateOutput  string
	generateInput   string
	verboseGenerate bool
)

// generateCmd collects pools and jobs (interactively or from a JSON
// file), asks the model for a seed script, and writes the result to
// disk as one combined SQL file, one raw JSON payload, and one SQL
// file per table.
var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate SQL seed scripts for question pools and job positions",
	Long: `The generate command builds a seed script for the recruitment schema:
question pools with multiple-choice questions, certifier links, pending
validation rows, and job positions with their skills.

Inputs come from interactive prompts, or from a JSON file via --input:

  {"pools": [{"skill": "Go", "level": "HIGH", "quantity": 5}],
   "jobs":  [{"name": "Backend Developer", "skills": ["Go"]}]}

The generated script targets the selected SQL dialect and is written to
<output>.sql, <output>.json, and <output>__<table>.sql files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if verboseGenerate {
			os.Setenv("SEEDGEN_VERBOSE", "1")
		}

		cfg, _ := config.Load()
		applyConfigDefaults(cmd, &cfg)

		d, ok := dialect.Parse(generateDialect)
		if !ok && strings.TrimSpace(generateDialect) != "" {
			pterm.Warning.Printf("Unknown dialect %q, falling back to %s\n", generateDialect, d)
		}

		var req *inputs.Request
		var err error
		if generateInput != "" {
			req, err = inputs.LoadFile(generateInput)
			if err != nil {
				return err
			}
		} else {
			if d, err = promptSettings(cmd, d); err != nil {
				return err
			}
			req, err = collectInteractive()
			if err != nil {
				return err
			}
		}

		opts := prompt.Options{Dialect: d, UseUUID: generateUUID, IncludeRoles: generateRoles}
		if err := runGeneration(cmd.Context(), req, opts, generateModel, generateOutput); err != nil {
			return err
		}

		// Remember the choices that worked for next time
		cfg.Dialect = d.String()
		cfg.Model = generateModel
		cfg.OutputPrefix = generateOutput
		cfg.UseUUID = generateUUID
		cfg.IncludeRoles = generateRoles
		if err := config.Save(cfg); err != nil {
			logging.Debug().Warn("failed to persist config: " + err.Error())
		}

		return nil
	},
}

// applyConfigDefaults fills flags the user did not set from the saved
// configuration, so the CLI remembers the last run's choices.
func applyConfigDefaults(cmd *cobra.Command, cfg *config.Config) {
	if !cmd.Flags().Changed("dialect") {
		generateDialect = cfg.Dialect
	}
	if !cmd.Flags().Changed("model") {
		generateModel = cfg.Model
	}
	if !cmd.Flags().Changed("output") {
		generateOutput = cfg.OutputPrefix
	}
	if !cmd.Flags().Changed("uuid") {
		generateUUID = cfg.UseUUID
	}
	if !cmd.Flags().Changed("roles") {
		generateRoles = cfg.IncludeRoles
	}
}

// promptSettings asks for generation settings the user did not pin via
// flags. Flagged values are respected without prompting.
func promptSettings(cmd *cobra.Command, current dialect.Dialect) (dialect.Dialect, error) {
	d := current

	if !cmd.Flags().Changed("dialect") {
		options := make([]string, 0, 3)
		for _, opt := range dialect.All() {
			options = append(options, opt.String())
		}
		picked, err := pterm.DefaultInteractiveSelect.
			WithOptions(options).
			WithDefaultOption(d.String()).
			Show("SQL dialect")
		if err != nil {
			return d, err
		}
		d, _ = dialect.Parse(picked)
	}

	if !cmd.Flags().Changed("uuid") {
		useUUID, err := pterm.DefaultInteractiveConfirm.
			WithDefaultValue(generateUUID).
			Show("Use UUID primary keys?")
		if err != nil {
			return d, err
		}
		generateUUID = useUUID
	}

	if !cmd.Flags().Changed("roles") {
		roles, err := pterm.DefaultInteractiveConfirm.
			WithDefaultValue(generateRoles).
			Show("Also seed roles and permissions?")
		if err != nil {
			return d, err
		}
		generateRoles = roles
	}

	if !cmd.Flags().Changed("model") {
		model, err := pterm.DefaultInteractiveTextInput.
			WithDefaultValue(generateModel).
			Show("Gemini model")
		if err != nil {
			return d, err
		}
		if strings.TrimSpace(model) != "" {
			generateModel = strings.TrimSpace(model)
		}
	}

	return d, nil
}

// collectInteractive walks the user through pools and jobs with pterm
// prompts.
func collectInteractive() (*inputs.Request, error) {
	req := &inputs.Request{}

	pterm.Println()
	pterm.Println(pterm.NewStyle(pterm.FgLightCyan, pterm.Bold).Sprint("Question pools"))

	for {
		skill, err := pterm.DefaultInteractiveTextInput.Show("Technical skill (e.g. Go, SQL)")
		if err != nil {
			return nil, err
		}
		skill = strings.TrimSpace(skill)
		if skill == "" {
			pterm.Warning.Println("A skill is required.")
			continue
		}

		level, err := pterm.DefaultInteractiveSelect.
			WithOptions([]string{inputs.LevelLow, inputs.LevelMedium, inputs.LevelHigh}).
			WithDefaultOption(inputs.LevelLow).
			Show("Difficulty level")
		if err != nil {
			return nil, err
		}

		quantityRaw, err := pterm.DefaultInteractiveTextInput.
			WithDefaultValue(strconv.Itoa(inputs.DefaultQuantity)).
			Show("Number of questions")
		if err != nil {
			return nil, err
		}
		quantity, convErr := strconv.Atoi(strings.TrimSpace(quantityRaw))
		if convErr != nil || quantity <= 0 {
			pterm.Warning.Printf("Invalid quantity %q, using %d\n", quantityRaw, inputs.DefaultQuantity)
			quantity = inputs.DefaultQuantity
		}

		certifiersRaw, err := pterm.DefaultInteractiveTextInput.
			Show("Certifier emails (comma-separated, empty for default)")
		if err != nil {
			return nil, err
		}

		req.Pools = append(req.Pools, inputs.PoolInput{
			Skill:      skill,
			Level:      level,
			Quantity:   quantity,
			Certifiers: inputs.ParseList(certifiersRaw),
		})

		more, err := pterm.DefaultInteractiveConfirm.Show("Add another pool?")
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
	}

	pterm.Println()
	pterm.Println(pterm.NewStyle(pterm.FgLightCyan, pterm.Bold).Sprint("Job positions"))

	for {
		name, err := pterm.DefaultInteractiveTextInput.Show("Job position name")
		if err != nil {
			return nil, err
		}
		name = strings.TrimSpace(name)
		if name == "" {
			pterm.Warning.Println("A job name is required.")
			continue
		}

		skillsRaw, err := pterm.DefaultInteractiveTextInput.
			Show("Required skills (comma-separated, empty to reuse the first pool's skill)")
		if err != nil {
			return nil, err
		}

		req.Jobs = append(req.Jobs, inputs.JobInput{
			Name:   name,
			Skills: inputs.ParseList(skillsRaw),
		})

		more, err := pterm.DefaultInteractiveConfirm.Show("Add another job?")
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

// runGeneration is the shared pipeline behind generate and form: build
// the prompt, call the model, write files, print the summary.
func runGeneration(ctx context.Context, req *inputs.Request, opts prompt.Options, model, outputPrefix string) error {
	promptText, err := prompt.Build(req, opts)
	if err != nil {
		return err
	}

	client, err := gemini.NewClient(ctx, model)
	if err != nil {
		pterm.Printf("❌ %s\n", logging.PresentError("", err))
		return err
	}

	pterm.Println()
	pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint("→ Dialect: ") + pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint(opts.Dialect.String()))
	pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint("→ Model:   ") + pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint(model))
	pterm.Println()

	genCtx, cancel := context.WithTimeout(ctx, 3*time.Minute)
	defer cancel()

	startTime := time.Now()
	stopSpinner := startInlineSpinner(os.Stdout, "generating seed script", spinnerFrames, 100*time.Millisecond)
	script, err := client.GenerateSeed(genCtx, promptText)
	stopSpinner()

	if err != nil {
		if httperrors.IsNetworkError(err) {
			return httperrors.FormatNetworkError(err, "generating the seed script")
		}
		pterm.Printf("❌ Generation failed\n")
		pterm.Println(logging.PresentError("", err))
		return err
	}

	files, err := output.Write(outputPrefix, script)
	if err != nil {
		pterm.Printf("❌ Failed to write output files\n")
		pterm.Println(logging.PresentError("", err))
		return err
	}

	tableData := pterm.TableData{{"File", "Kind", "Statements"}}
	for _, f := range files {
		tableData = append(tableData, []string{f.Path, f.Kind, strconv.Itoa(f.Statements)})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()

	if strings.TrimSpace(script.Notes) != "" {
		pterm.Println()
		pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint("Model notes: ") + script.Notes)
	}

	elapsed := time.Since(startTime).Round(time.Second)
	title := pterm.NewStyle(pterm.FgGreen, pterm.Bold).Sprint("Generation Completed")
	details := fmt.Sprintf("%d INSERT statements across %d tables in %s",
		script.StatementCount(), len(script.Tables), elapsed)
	box := pterm.DefaultBox.WithTitle(title).WithPadding(1).Sprint(details)
	pterm.Println(box)

	return nil
}

func init() {
	generateCmd.Flags().StringVar(&generateDialect, "dialect", config.DefaultDialect, "Target SQL dialect (mysql, postgres, sqlserver)")
	generateCmd.Flags().StringVar(&generateModel, "model", config.DefaultModel, "Gemini model to use")
	generateCmd.Flags().BoolVar(&generateUUID, "uuid", true, "Use UUID primary keys instead of auto-increment")
	generateCmd.Flags().BoolVar(&generateRoles, "roles", false, "Also seed roles and permissions tables")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", config.DefaultPrefix, "Output file prefix")
	generateCmd.Flags().StringVarP(&generateInput, "input", "i", "", "Read pools and jobs from a JSON file instead of prompting")
	generateCmd.Flags().BoolVarP(&verboseGenerate, "verbose", "v", false, "Enable verbose debug logging")
	rootCmd.AddCommand(generateCmd)
}
