package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/sarchlab/tickloop/datarecording"
	"github.com/sarchlab/tickloop/tracing"
	"github.com/spf13/cobra"
)

func newReportCmd() *cobra.Command {
	var last int

	reportCmd := &cobra.Command{
		Use:   "report <recording.sqlite3>",
		Short: "Summarize a recorded run.",
		Long: "`report` reads a database written by `run --record` and prints " +
			"the number of executions, the ticks where the budget ran out, " +
			"and the last recorded ticks.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reader, err := datarecording.NewReader(args[0])
			if err != nil {
				return err
			}
			defer reader.Close()

			return writeReport(cmd.Context(), cmd.OutOrStdout(), reader, last)
		},
	}

	reportCmd.Flags().IntVar(&last, "last", 5, "Number of last ticks to list")

	return reportCmd
}

func writeReport(
	ctx context.Context,
	w io.Writer,
	reader datarecording.DataReader,
	last int,
) error {
	reader.MapTable(tracing.ExecTableName, tracing.ExecRecord{})
	reader.MapTable(tracing.TickTableName, tracing.TickRecord{})

	_, executions, err := reader.Query(ctx, tracing.ExecTableName,
		datarecording.QueryParams{Limit: 1})
	if err != nil {
		return err
	}

	exhausted, exhaustedCount, err := reader.Query(ctx, tracing.TickTableName,
		datarecording.QueryParams{
			Where:   "BudgetExhausted = ?",
			Args:    []any{true},
			OrderBy: "Tick",
		})
	if err != nil {
		return err
	}

	lastTicks, tickCount, err := reader.Query(ctx, tracing.TickTableName,
		datarecording.QueryParams{
			OrderBy: "Tick DESC",
			Limit:   last,
		})
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "executions: %d\n", executions)
	fmt.Fprintf(w, "ticks: %d\n", tickCount)

	fmt.Fprintf(w, "exhausted ticks: %d\n", exhaustedCount)
	for _, r := range exhausted {
		rec := r.(*tracing.TickRecord)
		fmt.Fprintf(w, "  tick %d: %d executed, %d pending\n",
			rec.Tick, rec.Executed, rec.Pending)
	}

	fmt.Fprintf(w, "last ticks:\n")
	for i := len(lastTicks) - 1; i >= 0; i-- {
		rec := lastTicks[i].(*tracing.TickRecord)
		fmt.Fprintf(w, "  tick %d: %d executed, %d pending\n",
			rec.Tick, rec.Executed, rec.Pending)
	}

	return nil
}
