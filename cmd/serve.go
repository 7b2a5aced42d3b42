package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/they4kman/gosweep/server"
)

var serverConfig = server.Config{Addr: ":8080"}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve games over HTTP and websockets",
	RunE: func(cmd *cobra.Command, args []string) error {
		serverConfig.SnapshotsDir = gameConfig.SavedSnapshotsDir
		serverConfig.Seed = gameConfig.Seed

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		return serve(ctx, serverConfig)
	},
}

// serve runs the server until ctx is done.
func serve(ctx context.Context, config server.Config) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.New(config).ListenAndServe(ctx)
	})
	g.Go(func() error {
		<-ctx.Done()
		server.Log.Info("shutting down")
		return nil
	})
	return g.Wait()
}

func init() {
	serveCmd.Flags().StringVar(&serverConfig.Addr, "addr", serverConfig.Addr, "Address to listen on")
}
