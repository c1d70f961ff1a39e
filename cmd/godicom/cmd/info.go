package cmd

import (
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"godicom/parser"
)

func newInfoCmd() *cobra.Command {
	var (
		output string
		preset int
	)
	cmd := &cobra.Command{
		Use:   "info FILE...",
		Short: "Print the normalized attributes of DICOM files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutput(output, outputTable, outputJSON, outputYAML); err != nil {
				return err
			}
			var errs *multierror.Error
			infos := make(map[string]parser.Info, len(args))
			for _, file := range args {
				info, err := parser.BuildDictionary(file, parser.WithWindowPreset(preset))
				if err != nil {
					errs = multierror.Append(errs, err)
					continue
				}
				infos[file] = info
			}

			out := cmd.OutOrStdout()
			switch output {
			case outputJSON:
				if err := writeJSON(out, infos); err != nil {
					return err
				}
			case outputYAML:
				if err := writeYAML(out, infos); err != nil {
					return err
				}
			default:
				for _, file := range args {
					if info, ok := infos[file]; ok {
						writeInfoTable(out, file, info)
					}
				}
			}
			return errs.ErrorOrNil()
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table, json or yaml")
	cmd.Flags().IntVar(&preset, "window-preset", parser.DefaultWindowPreset, "index of the window center/width pair to report")
	return cmd
}
