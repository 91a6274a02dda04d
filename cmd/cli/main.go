package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"habitlens/adapters/excel"
	"habitlens/app"
	"habitlens/domain/student"
	"habitlens/internal/config"
	"habitlens/internal/dataset"
	"habitlens/internal/pipeline"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type dataFlags struct {
	file  string
	sheet string
}

func (f *dataFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.file, "data", os.Getenv("DATA_FILE"), "Dataset file (.csv or .xlsx)")
	cmd.Flags().StringVar(&f.sheet, "sheet", "Sheet1", "Worksheet name for .xlsx files")
}

func (f *dataFlags) load() (*student.Dataset, error) {
	if f.file == "" {
		return nil, fmt.Errorf("no dataset given: pass --data or set DATA_FILE")
	}
	excelConfig := excel.DefaultExcelConfig()
	excelConfig.FilePath = f.file
	excelConfig.Sheet = f.sheet
	return dataset.LoadFile(excelConfig)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "habitlens-cli",
		Short:         "habitlens CLI for computing student dashboards offline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newSummarizeCmd(),
		newOptionsCmd(),
	)

	return rootCmd
}

func newSummarizeCmd() *cobra.Command {
	var data dataFlags
	var gender, major, semester string
	var denominator string
	var parallel bool
	var compact bool

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Compute the KPI row and all charts for a filter selection",
		Long: `Compute the dashboard for one filter selection and print it as JSON.

An empty filter value leaves that field unconstrained.

Example: habitlens-cli summarize --data students.csv --gender Female --semester 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{Parallel: parallel}
			switch denominator {
			case config.DropoutOverKnown:
				opts.KPI.Denominator = pipeline.OverKnown
			case config.DropoutOverAll:
				opts.KPI.Denominator = pipeline.OverAll
			default:
				return fmt.Errorf("invalid --denominator %q (use %s|%s)", denominator, config.DropoutOverKnown, config.DropoutOverAll)
			}

			ds, err := data.load()
			if err != nil {
				return err
			}
			criteria := student.NewFilterCriteria(gender, major, semester)
			return runSummarize(cmd.Context(), cmd.OutOrStdout(), ds, criteria, opts, compact)
		},
	}

	data.register(cmd)
	cmd.Flags().StringVar(&gender, "gender", "", "Only students with this gender")
	cmd.Flags().StringVar(&major, "major", "", "Only students with this major")
	cmd.Flags().StringVar(&semester, "semester", "", "Only students in this semester")
	cmd.Flags().StringVar(&denominator, "denominator", config.DropoutOverKnown, "Dropout rate denominator: known|all")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "Build charts concurrently")
	cmd.Flags().BoolVar(&compact, "compact", false, "Print the snapshot on a single line")

	return cmd
}

func newOptionsCmd() *cobra.Command {
	var data dataFlags

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the values each filter accepts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := data.load()
			if err != nil {
				return err
			}
			return runOptions(cmd.OutOrStdout(), ds)
		},
	}

	data.register(cmd)
	return cmd
}

func runSummarize(ctx context.Context, out io.Writer, ds *student.Dataset, criteria student.FilterCriteria, opts pipeline.Options, compact bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	service := app.NewDashboardService(ds, opts)
	snapshot, err := service.Update(ctx, criteria)
	if err != nil {
		return fmt.Errorf("dashboard update failed: %w", err)
	}

	encoder := json.NewEncoder(out)
	if !compact {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(snapshot)
}

func runOptions(out io.Writer, ds *student.Dataset) error {
	options := ds.Options()

	fmt.Fprintf(out, "Rows:      %d\n", ds.Len())
	fmt.Fprintf(out, "Genders:   %s\n", strings.Join(options.Genders, ", "))
	fmt.Fprintf(out, "Majors:    %s\n", strings.Join(options.Majors, ", "))
	fmt.Fprintf(out, "Semesters: %s\n", strings.Join(options.Semesters, ", "))
	return nil
}
