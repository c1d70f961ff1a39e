package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"godicom/internal/config"
	"godicom/internal/logger"
)

type rootOpts struct {
	cfgFile      string
	debug        bool
	logDir       string
	disableColor bool
}

var (
	rootOpt rootOpts
	// cfg is loaded before any subcommand runs.
	cfg config.Config
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "godicom",
		Short:         "Read, edit and catalogue DICOM files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	}
	root.AddCommand(newInfoCmd(), newRecordsCmd(), newEditCmd(), newScanCmd(), newServeCmd())

	flags := root.PersistentFlags()
	flags.StringVar(&rootOpt.cfgFile, "config", "", "JSON config file (default: built-in defaults and GODICOM_* environment)")
	flags.BoolVarP(&rootOpt.debug, "debug", "d", false, "turn on debug logging")
	flags.StringVar(&rootOpt.logDir, "log-dir", "", "write a daily rotated log file to this directory")
	flags.BoolVar(&rootOpt.disableColor, "no-color", false, "disable colored log output")
	return root
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Errorf("godicom: %v", err)
		os.Exit(1)
	}
}

func initConfig() error {
	loaded, err := config.LoadFile(rootOpt.cfgFile)
	if err != nil {
		return err
	}
	cfg = loaded

	logDir := rootOpt.logDir
	if logDir == "" {
		logDir = cfg.LogDir
	}
	if err := logger.Init(logger.Options{
		Verbose:      rootOpt.debug || cfg.Verbose,
		DisableColor: rootOpt.disableColor,
		Dir:          logDir,
	}); err != nil {
		return errors.Wrap(err, "failed to init logger")
	}
	logrus.Debugf("'initConfig' config loaded, scan directory: %s", cfg.RootDirectory)
	return nil
}

// checkOutput validates an --output flag value.
func checkOutput(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return errors.Errorf("unsupported output %q, use one of %v", format, allowed)
}
