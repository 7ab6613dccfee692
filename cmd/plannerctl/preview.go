package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"wellness-planner/internal/recurrence"
)

func previewCmd() *cobra.Command {
	var (
		rf      ruleFlags
		from    string
		count   int
		cadence bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "List the next occurrences of a rule",
		Example: `  plannerctl preview --kind weekly --days mon,thu --count 4
  plannerctl preview --kind monthly --day-of-month 31 --from "next friday"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, rf, from, count, cadence, time.Now())
		},
	}

	rf.register(cmd)
	cmd.Flags().StringVar(&from, "from", "today", "Start date: YYYY-MM-DD or a phrase like \"tomorrow\"")
	cmd.Flags().IntVarP(&count, "count", "n", 5, "Number of occurrences")
	cmd.Flags().BoolVar(&cadence, "cadence", false, "Show the dates successive completions would produce")

	return cmd
}

func runPreview(cmd *cobra.Command, rf ruleFlags, from string, count int, cadence bool, now time.Time) error {
	p, err := rf.parser()
	if err != nil {
		return err
	}
	rule, err := rf.rule(p, now)
	if err != nil {
		return err
	}
	start, err := p.Parse(from, now)
	if err != nil {
		return fmt.Errorf("--from: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s, starting after %s\n", recurrence.Describe(rule), start.Format("Mon 2006-01-02"))

	dates := recurrence.UpcomingOccurrences(rule, count, start)
	if cadence {
		dates = recurrence.CompletionCadence(rule, count, start)
	}
	if len(dates) == 0 {
		fmt.Fprintln(out, "  no upcoming occurrences")
		return nil
	}
	for i, d := range dates {
		fmt.Fprintf(out, "  %2d. %s\n", i+1, d.Format("Mon 2006-01-02"))
	}
	return nil
}
