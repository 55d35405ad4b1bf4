package cli

import (
	"fmt"

	migrate "github.com/goserg/pairingserver/internal/migrate"
	"github.com/goserg/pairingserver/internal/storage"

	"github.com/spf13/cobra"
)

// pairingserver migrate
func Migrate() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, l, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			db, err := storage.Open(cfg.Storage.SqliteFile)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := migrate.UpServerDB(db); err != nil {
				return err
			}
			version, dirty, err := migrate.Version(db)
			if err != nil {
				return err
			}
			l.WithField("file", cfg.Storage.SqliteFile).Debug("migrated")
			fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (dirty: %t)\n", version, dirty)
			return nil
		},
	}
}
