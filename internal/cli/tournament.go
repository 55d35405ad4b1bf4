package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/goserg/pairingserver/internal/domain"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

// pairingserver tournament
func Tournament() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tournament",
		Short: "Create tournaments and enter players",
		Args:  cobra.NoArgs,
	}
	cmd.AddCommand(tournamentCreate(), tournamentList(), tournamentJoin(), tournamentSchedule())
	return cmd
}

func tournamentCreate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create name",
		Short: "Create a tournament and print its id",
		Long: heredoc.Doc(`create registers a new tournament.

			--kind is "swiss" or "round-robin". For round-robin events
			--rounds beyond one cycle replays the cycle with colors
			swapped. --tie-break is "buchholz" or "weighted-square".`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, _ := cmd.Flags().GetString("kind")
			rounds, _ := cmd.Flags().GetInt("rounds")
			policy, _ := cmd.Flags().GetString("tie-break")

			e, err := open(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			t, err := e.service.CreateTournament(cmd.Context(), domain.Tournament{
				Name:       args[0],
				Kind:       domain.Kind(kind),
				RoundCount: rounds,
				TieBreak:   domain.TieBreakPolicy(policy),
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.ID)
			return nil
		},
	}
	cmd.Flags().String("kind", string(domain.Swiss), "Tournament kind")
	cmd.Flags().Int("rounds", 5, "Number of rounds")
	cmd.Flags().String("tie-break", string(domain.PolicyBuchholz), "Tie-break policy")
	return cmd
}

func tournamentList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tournaments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := open(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			tournaments, err := e.service.ListTournaments(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tKIND\tROUNDS\tFINALIZED")
			for _, t := range tournaments {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%t\n", t.ID, t.Name, t.Kind, t.RoundCount, t.Finalized)
			}
			return w.Flush()
		},
	}
}

func tournamentJoin() *cobra.Command {
	return &cobra.Command{
		Use:   "join tournament-id { player-id player-name }",
		Short: "Enter a registered player",
		Args:  cobra.ExactArgs(2),
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

			playerID, err := strconv.Atoi(args[1])
			if err != nil {
				p, err := e.service.GetByName(cmd.Context(), args[1])
				if err != nil {
					return err
				}
				playerID = p.ID
			}
			return e.service.AddCompetitor(cmd.Context(), id, playerID)
		},
	}
}

func tournamentSchedule() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule tournament-id",
		Short: "Print the full round-robin timetable",
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

			rounds, err := e.service.Schedule(cmd.Context(), id)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, r := range rounds {
				printRound(w, r)
			}
			return w.Flush()
		},
	}
}
