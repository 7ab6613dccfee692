package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"wellness-planner/internal/recurrence"
)

func describeCmd() *cobra.Command {
	var rf ruleFlags

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the human description and RRULE of a rule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(cmd, rf, time.Now())
		},
	}

	rf.register(cmd)
	return cmd
}

func runDescribe(cmd *cobra.Command, rf ruleFlags, now time.Time) error {
	p, err := rf.parser()
	if err != nil {
		return err
	}
	rule, err := rf.rule(p, now)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, recurrence.Describe(rule))

	start, _ := p.Parse("today", now)
	rrule, err := recurrence.FormatRRule(rule, start)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "RRULE:%s\n", rrule)
	return nil
}
