// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/antpath/store"
)

// ErrRunNotFound is returned by "runs show" for an unknown id.
var ErrRunNotFound = errors.New("run not found")

func newRunsCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect recorded runs",
	}

	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List recorded runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return root.withStore(cmd, func(s store.Store) error {
				recs, err := s.ListRuns(cmd.Context(), limit)
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tGRAPH\tCREATED\tCOST\tSCORE")
				for _, rec := range recs {
					cost := "-"
					if !rec.Failed {
						cost = humanize.Commaf(rec.Summary.BestCost)
					}
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.6g\n",
						rec.ID, rec.Graph, humanize.Time(rec.CreatedAt), cost, rec.BestScore)
				}

				return tw.Flush()
			})
		},
	}
	list.Flags().IntVarP(&limit, "limit", "l", 20, "maximum runs to show; 0 shows all")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a recorded run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.withStore(cmd, func(s store.Store) error {
				rec, ok, err := s.GetRun(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("%s: %w", args[0], ErrRunNotFound)
				}

				return writeJSON(cmd.OutOrStdout(), rec)
			})
		},
	}

	cmd.AddCommand(list, show)

	return cmd
}

// withStore opens the configured store for the duration of fn.
func (o *rootOptions) withStore(cmd *cobra.Command, fn func(store.Store) error) error {
	s, err := o.openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer func() {
		_ = store.CloseIfSupported(s)
	}()

	return fn(s)
}
