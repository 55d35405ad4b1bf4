package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// pairingserver player
func Player() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Manage registered players",
		Args:  cobra.NoArgs,
	}
	cmd.AddCommand(playerAdd(), playerList(), playerPreview())
	return cmd
}

func playerAdd() *cobra.Command {
	return &cobra.Command{
		Use:   "add name rating",
		Short: "Register a player",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rating, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("rating %q: %w", args[1], err)
			}
			e, err := open(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			p, err := e.service.CreatePlayer(cmd.Context(), args[0], rating)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.ID)
			return nil
		},
	}
}

func playerList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List players by rating",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := open(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			players, err := e.service.ListPlayers(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tRATING\tPEAK")
			for _, p := range players {
				fmt.Fprintf(w, "%d\t%s\t%d\t%d\n", p.ID, p.Name, p.Rating, p.PeakRating)
			}
			return w.Flush()
		},
	}
}

func playerPreview() *cobra.Command {
	return &cobra.Command{
		Use:   "preview player-id opponent-id result",
		Short: "Show how one rated game would move both ratings",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int, 2)
			for i := range ids {
				id, err := strconv.Atoi(args[i])
				if err != nil {
					return fmt.Errorf("player %q: %w", args[i], err)
				}
				ids[i] = id
			}
			e, err := open(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			a, b, err := e.service.PreviewGame(cmd.Context(), ids[0], ids[1], args[2])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d: %d -> %d (%+d)\n", ids[0], a.Old, a.New, a.Delta)
			fmt.Fprintf(cmd.OutOrStdout(), "%d: %d -> %d (%+d)\n", ids[1], b.Old, b.New, b.Delta)
			return nil
		},
	}
}
