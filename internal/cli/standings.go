package cli

import (
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// pairingserver standings
func Standings() *cobra.Command {
	return &cobra.Command{
		Use:   "standings tournament-id",
		Short: "Print the current ranking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTournamentID(args[0])
			if err != nil {
				return err
			}
			e, err := open(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			standings, err := e.service.Standings(cmd.Context(), id)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "RANK\tNAME\tSCORE\tBUCHHOLZ\tCUT1\tSB\tWSQ")
			for _, s := range standings {
				tb := s.TieBreaks
				fmt.Fprintf(w, "%d\t%s\t%g\t%g\t%g\t%g\t%g\n",
					s.Rank, s.Name, s.Score, tb.Buchholz, tb.BuchholzCut1, tb.SonnebornBerger, tb.WeightedSquare)
			}
			return w.Flush()
		},
	}
}

// pairingserver finalize
func Finalize() *cobra.Command {
	return &cobra.Command{
		Use:   "finalize tournament-id",
		Short: "Apply Elo changes and close the tournament",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTournamentID(args[0])
			if err != nil {
				return err
			}
			e, err := open(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			changes, err := e.service.FinalizeRatings(cmd.Context(), id)
			if err != nil {
				return err
			}
			ids := make([]int, 0, len(changes))
			for playerID := range changes {
				ids = append(ids, playerID)
			}
			slices.Sort(ids)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tOLD\tNEW\tDELTA")
			for _, playerID := range ids {
				c := changes[playerID]
				fmt.Fprintf(w, "%d\t%d\t%d\t%+d\n", playerID, c.Old, c.New, c.Delta)
			}
			return w.Flush()
		},
	}
}
