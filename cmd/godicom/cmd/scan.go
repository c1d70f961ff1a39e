package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"godicom/catalog"
	"godicom/forward"
	"godicom/scanner"
	"godicom/webservice"
)

type scanOpts struct {
	root     string
	workers  int
	filter   string
	noWeb    bool
	progress bool
}

func newScanCmd() *cobra.Command {
	var opts scanOpts
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Catalogue every file below the root directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("root") {
				cfg.RootDirectory = opts.root
			}
			if cmd.Flags().Changed("workers") {
				cfg.MaxGoroutines = opts.workers
			}
			if cmd.Flags().Changed("filter") {
				cfg.InstituteFilter = opts.filter
			}
			return runScan(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.root, "root", "", "directory to scan (overrides root_directory)")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "concurrent files (overrides max_goroutines)")
	cmd.Flags().StringVar(&opts.filter, "filter", "", `accepted institutions separated by "|" (overrides institute_filter)`)
	cmd.Flags().BoolVar(&opts.noWeb, "no-web", false, "do not start the status webservice")
	cmd.Flags().BoolVar(&opts.progress, "progress", true, "show a progress bar")
	return cmd
}

func openCatalog(ctx context.Context) (*catalog.Store, error) {
	if cfg.ConnString == "" {
		return nil, errors.New("connString is not configured")
	}
	store, err := catalog.Open(cfg.Driver, cfg.ConnString)
	if err != nil {
		return nil, err
	}
	if err := store.Init(ctx); err != nil {
		store.Close()
		return nil, err
	}
	logrus.Infof("'openCatalog' connected to the %s database", cfg.Driver)
	return store, nil
}

func runScan(cmd *cobra.Command, opts scanOpts) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openCatalog(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	stats := &scanner.Stats{}
	if !opts.noWeb {
		svc := webservice.New(cfg.RootDirectory, stats, store)
		go func() {
			if err := svc.ListenAndServe(ctx, cfg.ListenAddress); err != nil {
				logrus.Errorf("'runScan' %v", err)
			}
		}()
	}

	runner := &scanner.Runner{
		Root:            cfg.RootDirectory,
		MaxWorkers:      cfg.MaxGoroutines,
		InstituteFilter: cfg.InstituteFilter,
		Store:           store,
		Stats:           stats,
	}
	if cfg.DicomServer != "" {
		scu, err := forward.New(forward.Destination{
			Host:      cfg.DicomServer,
			Port:      cfg.DicomServerPort,
			CalledAE:  cfg.DicomServerRemoteAET,
			CallingAE: cfg.DicomServerLocalAET,
		})
		if err != nil {
			return err
		}
		runner.Forwarder = scu
		logrus.Infof("'runScan' forwarding accepted files to %s:%d", cfg.DicomServer, cfg.DicomServerPort)
	}
	if opts.progress {
		total, err := scanner.CountFiles(cfg.RootDirectory)
		if err != nil {
			return err
		}
		bar := progressbar.NewOptions(total,
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("scanning"),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetWidth(50),
		)
		runner.OnFile = func(string) {
			if err := bar.Add(1); err != nil {
				logrus.Debugf("'runScan' progress bar: %v", err)
			}
		}
		defer bar.Finish()
	}

	snap, err := runner.Run(ctx)
	fmt.Fprintf(cmd.OutOrStdout(),
		"\nProcessed: %d files skipped already present, %d non DICOM files imported, %d DICOM files imported, %d wrong institute, %d archives, %d failed, %d forwarded\n",
		snap.Skipped, snap.NonDICOM, snap.DICOM, snap.WrongInstitute, snap.Archives, snap.Failed, snap.Forwarded)
	fmt.Fprintf(cmd.OutOrStdout(), "Execution time: %v\n", snap.Finished.Sub(snap.Started))
	return err
}
