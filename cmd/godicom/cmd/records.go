package cmd

import (
	"github.com/spf13/cobra"

	"godicom/parser"
	"godicom/record"
)

func newRecordsCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "records FILE",
		Short: "Print the patient, acquisition and image records of a DICOM file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutput(output, outputJSON, outputYAML); err != nil {
				return err
			}
			p := parser.New()
			if err := p.Open(args[0]); err != nil {
				return err
			}
			defer p.Close()

			d := record.New(p)
			if output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), d)
			}
			return writeYAML(cmd.OutOrStdout(), d)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputYAML, "output format: json or yaml")
	return cmd
}
