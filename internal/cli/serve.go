package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/goserg/pairingserver/internal/web"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// pairingserver serve
func Serve() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API and metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := open(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			server := web.New(e.log, e.service, e.metrics, e.cfg.Server)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			g, ctx := errgroup.WithContext(ctx)
			g.Go(server.Serve)
			g.Go(func() error {
				<-ctx.Done()
				e.log.Info("shutting down")
				return server.Shutdown()
			})
			return g.Wait()
		},
	}
}
