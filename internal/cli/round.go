package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/goserg/pairingserver/internal/domain"

	"github.com/spf13/cobra"
)

// pairingserver pair
func Pair() *cobra.Command {
	return &cobra.Command{
		Use:   "pair tournament-id round",
		Short: "Pair and store the next round",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTournamentID(args[0])
			if err != nil {
				return err
			}
			round, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("round %q: %w", args[1], err)
			}
			e, err := open(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			r, err := e.service.GeneratePairings(cmd.Context(), id, round)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			printRound(w, r)
			return w.Flush()
		},
	}
}

// pairingserver result
func Result() *cobra.Command {
	return &cobra.Command{
		Use:   "result tournament-id game-id result",
		Short: `Record a result such as "1-0", "1/2-1/2" or "+:-"`,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTournamentID(args[0])
			if err != nil {
				return err
			}
			gameID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("game %q: %w", args[1], err)
			}
			e, err := open(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			g, err := e.service.RecordResult(cmd.Context(), id, gameID, args[2])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "round %d board %d: %s\n", g.Round, g.Board, g.Result)
			return nil
		},
	}
}

func printRound(w io.Writer, r domain.Round) {
	fmt.Fprintf(w, "Round %d\n", r.Number)
	for i, p := range r.Pairings {
		rematch := ""
		if p.Rematch {
			rematch = "rematch"
		}
		fmt.Fprintf(w, "%d\t%d\t%d\t%s\n", i+1, p.White(), p.Black(), rematch)
	}
	if r.Bye != nil {
		fmt.Fprintf(w, "bye\t%d\t\t\n", r.Bye.Player1)
	}
}
