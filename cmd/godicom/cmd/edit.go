package cmd

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"godicom/writer"
)

type editOpts struct {
	patientName  string
	thickness    float64
	seriesNumber int
	imageNumber  int
	location     float64
	position     []float64
	modality     string
	pixelSpacing []float64
	institution  string
	output       string
}

func newEditCmd() *cobra.Command {
	var opts editOpts
	cmd := &cobra.Command{
		Use:   "edit FILE",
		Short: "Replace attributes of a DICOM file",
		Long: `Replace attributes of a DICOM file and write it back, in place or
to --output. Only the attributes given as flags are changed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args[0], opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.patientName, "patient-name", "", "patient name (0010,0010)")
	f.Float64Var(&opts.thickness, "thickness", 0, "slice thickness in mm (0018,0050)")
	f.IntVar(&opts.seriesNumber, "series-number", 0, "series number (0020,0011)")
	f.IntVar(&opts.imageNumber, "image-number", 0, "instance number (0020,0013)")
	f.Float64Var(&opts.location, "location", 0, "slice location (0020,1041)")
	f.Float64SliceVar(&opts.position, "position", nil, "image position x,y,z (0020,0032)")
	f.StringVar(&opts.modality, "modality", "", "modality, e.g. CT or MR (0008,0060)")
	f.Float64SliceVar(&opts.pixelSpacing, "pixel-spacing", nil, "pixel spacing x,y (0028,0030)")
	f.StringVar(&opts.institution, "institution", "", "institution name (0008,0080)")
	f.StringVarP(&opts.output, "output", "o", "", "write to this path instead of editing in place")
	return cmd
}

func runEdit(cmd *cobra.Command, file string, opts editOpts) error {
	changed := cmd.Flags().Changed
	if changed("position") && len(opts.position) != 3 {
		return errors.Errorf("--position needs 3 values, got %d", len(opts.position))
	}
	if changed("pixel-spacing") && len(opts.pixelSpacing) != 2 {
		return errors.Errorf("--pixel-spacing needs 2 values, got %d", len(opts.pixelSpacing))
	}

	w := writer.New()
	if err := w.SetFileName(file); err != nil {
		return err
	}

	edits := []struct {
		flag  string
		apply func() error
	}{
		{"patient-name", func() error { return w.SetPatientName(opts.patientName) }},
		{"thickness", func() error { return w.SetImageThickness(opts.thickness) }},
		{"series-number", func() error { return w.SetImageSeriesNumber(opts.seriesNumber) }},
		{"image-number", func() error { return w.SetImageNumber(opts.imageNumber) }},
		{"location", func() error { return w.SetImageLocation(opts.location) }},
		{"position", func() error {
			return w.SetImagePosition([3]float64{opts.position[0], opts.position[1], opts.position[2]})
		}},
		{"modality", func() error { return w.SetAcquisitionModality(opts.modality) }},
		{"pixel-spacing", func() error {
			return w.SetPixelSpacing([2]float64{opts.pixelSpacing[0], opts.pixelSpacing[1]})
		}},
		{"institution", func() error { return w.SetInstitutionName(opts.institution) }},
	}

	applied := 0
	for _, e := range edits {
		if !changed(e.flag) {
			continue
		}
		if err := e.apply(); err != nil {
			return errors.Wrapf(err, "failed to apply --%s", e.flag)
		}
		applied++
	}
	if applied == 0 {
		return errors.New("nothing to change, pass at least one attribute flag")
	}

	if opts.output != "" {
		return w.SaveAs(opts.output)
	}
	logrus.Debugf("'runEdit' %d attributes changed in %s", applied, file)
	return w.Save()
}
