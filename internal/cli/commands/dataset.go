package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/lvyanru/startupradar/internal/cli/types"
	"github.com/lvyanru/startupradar/internal/cli/ui"
	"github.com/lvyanru/startupradar/internal/domain"
	"github.com/lvyanru/startupradar/internal/handler/dto"
	"github.com/lvyanru/startupradar/internal/infrastructure/source"
	"github.com/lvyanru/startupradar/internal/ingest"
)

var (
	reloadYes    bool
	inspectMulti float64
	showSkips    bool
)

var reloadCmd = &cobra.Command{
	Use:   "reload",
	Short: "make the server re-read its dataset",
	Long: `Drop the dataset cached by the server and load it again from its source.

The new ingest report is printed when the reload finishes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}

		if !reloadYes {
			confirm := false
			prompt := &survey.Confirm{
				Message: fmt.Sprintf("Reload the dataset on %s?", s.client.Server()),
			}
			if err := survey.AskOne(prompt, &confirm); err != nil {
				return fmt.Errorf("prompt failed: %w", err)
			}
			if !confirm {
				ui.PrintInfo("Reload cancelled")
				return nil
			}
		}

		ctx, cancel := requestContext()
		defer cancel()

		report, err := s.client.Reload(ctx)
		if err != nil {
			return fmt.Errorf("reload failed: %w", err)
		}
		return s.render(report, func() {
			ui.PrintSuccess("Dataset reloaded from %s", report.Source)
			printReport(report, false)
		})
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "show the ingest report of the served dataset",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext()
		defer cancel()

		report, err := s.client.DatasetReport(ctx)
		if err != nil {
			return fmt.Errorf("failed to get dataset report: %w", err)
		}
		return s.render(report, func() { printReport(report, showSkips) })
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "run the ingest pipeline on a local CSV file",
	Long: `Parse and normalize a local funding CSV exactly as the server would, without
starting it, and print what was produced and which rows were dropped.`,
	Example: `  $ radarctl inspect data/startup_funding.csv --skips`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output := outputFlag
		if output == "" {
			output = ui.FormatTable
		}
		if !ui.ValidFormat(output) {
			return fmt.Errorf("unsupported output format %q, use table, json or yaml", output)
		}

		// pipeline logs go nowhere, the report says it all
		quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
		pipeline, err := ingest.NewPipeline(inspectMulti, quiet)
		if err != nil {
			return err
		}

		ctx, cancel := requestContext()
		defer cancel()
		report := inspectFile(ctx, pipeline, args[0])

		if output != ui.FormatTable {
			return ui.Encode(ui.Out, output, report)
		}
		if report.SourceError != "" {
			return fmt.Errorf("failed to read %s: %s", args[0], report.SourceError)
		}
		printReport(report, showSkips)
		return nil
	},
}

func inspectFile(ctx context.Context, pipeline *ingest.Pipeline, path string) *types.DatasetReport {
	ds := pipeline.Load(ctx, source.NewFileSource(path))
	report := dto.ToDatasetReportResponse(&domain.DatasetReport{
		Source:        ds.Source,
		LoadedAt:      ds.LoadedAt,
		Startups:      len(ds.Startups),
		FundingRounds: len(ds.FundingRounds),
		Investors:     len(ds.Investors),
		Report:        ds.Report,
	})
	return &report
}

func init() {
	reloadCmd.Flags().BoolVarP(&reloadYes, "yes", "y", false, "skip the confirmation prompt")

	reportCmd.Flags().BoolVar(&showSkips, "skips", false, "list every skipped row")
	rootCmd.AddCommand(reportCmd)

	inspectCmd.Flags().Float64Var(&inspectMulti, "multiplier", ingest.DefaultAmountMultiplier, "USD per unit of the amount column")
	inspectCmd.Flags().BoolVar(&showSkips, "skips", false, "list every skipped row")
}

func printReport(r *types.DatasetReport, skips bool) {
	table := ui.NewTable("SOURCE", "LINES", "ROWS", "STARTUPS", "ROUNDS", "INVESTORS")
	table.Append(
		r.Source,
		strconv.Itoa(r.TotalLines),
		strconv.Itoa(r.Rows),
		strconv.Itoa(r.Startups),
		strconv.Itoa(r.FundingRounds),
		strconv.Itoa(r.Investors),
	)
	fmt.Fprint(ui.Out, table.String())

	if len(r.MissingColumns) > 0 {
		ui.PrintWarning("Missing columns: %s", ui.FormatList(r.MissingColumns))
	}

	if len(r.SkipCounts) > 0 {
		keys := make([]string, 0, len(r.SkipCounts))
		for k := range r.SkipCounts {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Fprintln(ui.Out)
		counts := ui.NewTable("STAGE/REASON", "COUNT")
		for _, k := range keys {
			counts.Append(k, strconv.Itoa(r.SkipCounts[k]))
		}
		fmt.Fprint(ui.Out, counts.String())
	}

	if skips && len(r.Skips) > 0 {
		fmt.Fprintln(ui.Out)
		lines := ui.NewTable("LINE", "STAGE", "REASON")
		for _, s := range r.Skips {
			lines.Append(strconv.Itoa(s.Line), s.Stage, s.Reason)
		}
		fmt.Fprint(ui.Out, lines.String())
	}
}
