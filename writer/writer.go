// Package writer edits a handful of attributes of a DICOM file and writes
// the whole dataset back to disk.
//
// Setters change the in-memory dataset immediately. Nothing reaches the
// disk before Save or SaveAs, and a setter that fails leaves the changes
// made before it in place.
package writer

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

var ErrNoFile = errors.New("no dicom file is loaded")

var (
	tagPatientName          = tag.Tag{Group: 0x0010, Element: 0x0010}
	tagSliceThickness       = tag.Tag{Group: 0x0018, Element: 0x0050}
	tagSeriesNumber         = tag.Tag{Group: 0x0020, Element: 0x0011}
	tagInstanceNumber       = tag.Tag{Group: 0x0020, Element: 0x0013}
	tagSliceLocation        = tag.Tag{Group: 0x0020, Element: 0x1041}
	tagImagePositionPatient = tag.Tag{Group: 0x0020, Element: 0x0032}
	tagModality             = tag.Tag{Group: 0x0008, Element: 0x0060}
	tagPixelSpacing         = tag.Tag{Group: 0x0028, Element: 0x0030}
	tagInstitutionName      = tag.Tag{Group: 0x0008, Element: 0x0080}
)

type Writer struct {
	path  string
	ds    dicom.Dataset
	anony *Anonymizer
	log   logrus.FieldLogger
}

func New() *Writer {
	return &Writer{log: logrus.StandardLogger()}
}

// SetFileName reads path, pixel data included, so that Save can rewrite it
// without losing anything.
func (w *Writer) SetFileName(path string) error {
	ds, err := dicom.ParseFile(path, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to parse dicom file %s", path)
	}
	w.path = path
	w.ds = ds
	w.anony = NewAnonymizer(&w.ds)
	w.log.Debugf("'SetFileName' loaded %s with %d elements", path, len(ds.Elements))
	return nil
}

func (w *Writer) FileName() string {
	return w.path
}

// Dataset returns the dataset with every change applied so far.
func (w *Writer) Dataset() dicom.Dataset {
	return w.ds
}

func (w *Writer) replace(t tag.Tag, values ...string) error {
	if w.anony == nil {
		return ErrNoFile
	}
	return w.anony.Replace(t, values...)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// SetPatientName replaces (0010,0010).
func (w *Writer) SetPatientName(name string) error {
	return w.replace(tagPatientName, name)
}

// SetImageThickness replaces the slice thickness (0018,0050) in mm.
func (w *Writer) SetImageThickness(thickness float64) error {
	return w.replace(tagSliceThickness, formatFloat(thickness))
}

func (w *Writer) SetImageSeriesNumber(number int) error {
	return w.replace(tagSeriesNumber, strconv.Itoa(number))
}

func (w *Writer) SetImageNumber(number int) error {
	return w.replace(tagInstanceNumber, strconv.Itoa(number))
}

// SetImageLocation replaces the slice location (0020,1041).
func (w *Writer) SetImageLocation(location float64) error {
	return w.replace(tagSliceLocation, formatFloat(location))
}

// SetImagePosition replaces (0020,0032) with x, y and z.
func (w *Writer) SetImagePosition(position [3]float64) error {
	return w.replace(tagImagePositionPatient,
		formatFloat(position[0]), formatFloat(position[1]), formatFloat(position[2]))
}

// SetAcquisitionModality replaces (0008,0060), e.g. CT or MR.
func (w *Writer) SetAcquisitionModality(modality string) error {
	return w.replace(tagModality, modality)
}

// SetPixelSpacing replaces (0028,0030) with the x and y spacing.
func (w *Writer) SetPixelSpacing(spacing [2]float64) error {
	return w.replace(tagPixelSpacing, formatFloat(spacing[0]), formatFloat(spacing[1]))
}

func (w *Writer) SetInstitutionName(institution string) error {
	return w.replace(tagInstitutionName, institution)
}

// Save writes the dataset back to the file it was read from.
func (w *Writer) Save() error {
	return w.SaveAs(w.path)
}

// SaveAs writes the dataset to path. The data goes to a temporary file in
// the same directory first and is renamed over path once complete. An
// existing file keeps its permissions, a new one gets 0644.
func (w *Writer) SaveAs(path string) error {
	if w.anony == nil {
		return ErrNoFile
	}
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to stat %s", path)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrapf(err, "failed to create temporary file for %s", path)
	}
	defer os.Remove(tmp.Name())

	if err := dicom.Write(tmp, w.ds); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "failed to write dicom file %s", path)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "failed to set mode of %s", tmp.Name())
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %s", tmp.Name())
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "failed to move %s to %s", tmp.Name(), path)
	}
	w.log.Infof("'SaveAs' wrote %s", path)
	return nil
}
