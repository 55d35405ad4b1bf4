package cli

import (
	"github.com/goserg/pairingserver/internal/config"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "pairingserver",
		Short: "Chess tournament pairing and standings server",
		Long: heredoc.Doc(`pairingserver runs Swiss and round-robin chess tournaments.

			It pairs rounds, records results, ranks competitors by score
			and tie-breaks and applies Elo rating changes once a
			tournament is finalized. Every command works on the sqlite
			file named in the config.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringP("config", "c", config.DefaultPath, "Path to the TOML config")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")

	root.AddCommand(Serve())
	root.AddCommand(Migrate())
	root.AddCommand(Player())
	root.AddCommand(Tournament())
	root.AddCommand(Pair())
	root.AddCommand(Result())
	root.AddCommand(Standings())
	root.AddCommand(Finalize())

	return root
}
