package main

import (
	"fmt"
	"os"

	"accuracycheck/adapters/excel"
	"accuracycheck/adapters/similarity"
	"accuracycheck/app"
	"accuracycheck/internal/config"
	"accuracycheck/internal/errors"
	"accuracycheck/internal/logging"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configPath string
	var printResults bool

	cmd := &cobra.Command{
		Use:   "accuracycheck [workbook]",
		Short: "Score Active Voice against Passive Voice answers in an Excel workbook",
		Long: `Compare the "Active Voice" and "Passive Voice" columns on every sheet of a workbook.

Each row gets a TF-IDF cosine similarity and a verdict (Passed when the score is
above 0.5). Results are written to <workbook>-results.xlsx in a "Results" sheet.

The workbook path is taken from the argument, then EXCEL_FILE_PATH (a .env file
is honored), then an interactive prompt.

Example: accuracycheck answers.xlsx --print`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				logConfigError(err)
				return err
			}
			if cmd.Flags().Changed("print") {
				cfg.Output.PrintResults = printResults
			}

			sink, err := logging.Open(cfg.Log.File, cfg.Log.Level)
			if err != nil {
				return err
			}
			defer sink.Close()
			log := sink.Logger.With("run_id", uuid.NewString())

			argPath := ""
			if len(args) == 1 {
				argPath = args[0]
			}
			path, err := resolveInputPath(argPath, cfg.ExcelFile, os.Stdin, cmd.OutOrStdout())
			if err != nil {
				log.Error("no workbook path", "error", err)
				return err
			}

			svc := app.NewAnalysisService(
				excel.NewDataReader(log),
				excel.NewReportWriter(log),
				app.NewSheetProcessor(similarity.NewScorer(), log),
				log,
			)
			// Analyze logs its own failures
			result, err := svc.Analyze(cmd.Context(), path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if cfg.Output.PrintResults {
				fmt.Fprintln(out, renderResults(result.Table))
				fmt.Fprintln(out, renderSummary(result.Summary))
			}
			fmt.Fprintf(out, "Results saved to: %s\n", result.OutputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Configuration file path (TOML)")
	cmd.Flags().BoolVar(&printResults, "print", false, "Print the results table and summary")
	return cmd
}

// logConfigError records a configuration failure in the fallback log, since the configured sink never opened
func logConfigError(err error) {
	sink, openErr := logging.Open(config.FallbackLogFile(), "INFO")
	if openErr != nil {
		return
	}
	defer sink.Close()
	sink.Logger.Error("error loading configuration", "run_id", uuid.NewString(), "code", errors.GetCode(err), "error", err)
}

// errorMessage is the single line printed to stderr when a run fails
func errorMessage(err error) string {
	switch {
	case errors.IsPathError(err):
		return fmt.Sprintf("Invalid Excel file path: %v", err)
	case errors.IsSchemaError(err):
		return fmt.Sprintf("Workbook layout problem: %v", err)
	}
	return fmt.Sprintf("An error occurred: %v", err)
}
