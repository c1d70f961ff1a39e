package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"godicom/webservice"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the status webservice over the catalog without scanning",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			svc := webservice.New(cfg.RootDirectory, nil, nil)
			if cfg.ConnString != "" {
				store, err := openCatalog(ctx)
				if err != nil {
					return err
				}
				defer store.Close()
				svc.Files = store
			} else {
				logrus.Warnf("'serve' connString is not configured, /api/files is disabled")
			}
			return svc.ListenAndServe(ctx, cfg.ListenAddress)
		},
	}
}
