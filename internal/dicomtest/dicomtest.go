// Package dicomtest builds small in-memory and on-disk DICOM datasets for
// tests.
package dicomtest

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

const (
	ExplicitVRLittleEndian = "1.2.840.10008.1.2.1"
	CTImageStorage         = "1.2.840.10008.5.1.4.1.1.2"
	SOPInstanceUID         = "1.2.826.0.1.3680043.2.1125.1"
)

// Element builds an element whose VR is taken from the tag dictionary.
func Element(t testing.TB, tg tag.Tag, data interface{}) *dicom.Element {
	t.Helper()
	elem, err := dicom.NewElement(tg, data)
	require.NoError(t, err)
	return elem
}

// Dataset wraps elems without any file meta information.
func Dataset(elems ...*dicom.Element) dicom.Dataset {
	return dicom.Dataset{Elements: elems}
}

// MetaElements returns the file meta group needed to serialize a dataset.
func MetaElements(t testing.TB, sopInstanceUID string) []*dicom.Element {
	return []*dicom.Element{
		Element(t, tag.MediaStorageSOPClassUID, []string{CTImageStorage}),
		Element(t, tag.MediaStorageSOPInstanceUID, []string{sopInstanceUID}),
		Element(t, tag.TransferSyntaxUID, []string{ExplicitVRLittleEndian}),
	}
}

// WriteFile serializes the meta group followed by elems to dir/name and
// returns the path.
func WriteFile(t testing.TB, dir, name string, elems ...*dicom.Element) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	all := append(MetaElements(t, SOPInstanceUID), elems...)
	sort.SliceStable(all, func(i, j int) bool {
		return tagOrder(all[i].Tag) < tagOrder(all[j].Tag)
	})
	require.NoError(t, dicom.Write(f, Dataset(all...)))
	return path
}

func tagOrder(t tag.Tag) uint32 {
	return uint32(t.Group)<<16 | uint32(t.Element)
}
