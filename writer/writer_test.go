package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"

	"godicom/internal/dicomtest"
	"godicom/parser"
)

func sample(t *testing.T) []*dicom.Element {
	return []*dicom.Element{
		dicomtest.Element(t, tagModality, []string{"MR"}),
		dicomtest.Element(t, tagInstitutionName, []string{"Old Clinic"}),
		dicomtest.Element(t, tagPatientName, []string{"Doe^John"}),
		dicomtest.Element(t, tagSliceThickness, []string{"5"}),
		dicomtest.Element(t, tagSeriesNumber, []string{"1"}),
		dicomtest.Element(t, tagRows, []int{2}),
		dicomtest.Element(t, tagColumns, []int{2}),
	}
}

var (
	tagRows    = tag.Tag{Group: 0x0028, Element: 0x0010}
	tagColumns = tag.Tag{Group: 0x0028, Element: 0x0011}
)

func TestAnonymizer(t *testing.T) {
	ds := dicomtest.Dataset(sample(t)...)
	a := NewAnonymizer(&ds)

	require.NoError(t, a.Replace(tagPatientName, "Anonymous"))
	elem, err := ds.FindElementByTag(tagPatientName)
	require.NoError(t, err)
	assert.Equal(t, []string{"Anonymous"}, elem.Value.GetValue())

	require.NoError(t, a.Replace(tagSliceLocation, "12.5"))
	elem, err = ds.FindElementByTag(tagSliceLocation)
	require.NoError(t, err)
	assert.Equal(t, []string{"12.5"}, elem.Value.GetValue())
	for i := 1; i < len(ds.Elements); i++ {
		assert.Less(t, tagOrder(ds.Elements[i-1].Tag), tagOrder(ds.Elements[i].Tag))
	}

	require.NoError(t, a.Empty(tagInstitutionName))
	elem, err = ds.FindElementByTag(tagInstitutionName)
	require.NoError(t, err)
	assert.Equal(t, []string{}, elem.Value.GetValue())

	assert.True(t, a.Remove(tagModality))
	assert.False(t, a.Remove(tagModality))
	_, err = ds.FindElementByTag(tagModality)
	assert.Error(t, err)
}

func TestAnonymizerWithoutDataset(t *testing.T) {
	a := NewAnonymizer(nil)
	assert.Error(t, a.Replace(tagPatientName, "x"))
	assert.False(t, a.Remove(tagPatientName))
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := dicomtest.WriteFile(t, dir, "mr.dcm", sample(t)...)

	w := New()
	require.NoError(t, w.SetFileName(path))
	require.NoError(t, w.SetPatientName("InVesalius"))
	require.NoError(t, w.SetImageThickness(1.5))
	require.NoError(t, w.SetImageSeriesNumber(7))
	require.NoError(t, w.SetImageNumber(3))
	require.NoError(t, w.SetImageLocation(-20.25))
	require.NoError(t, w.SetImagePosition([3]float64{-100, -90.5, 30}))
	require.NoError(t, w.SetAcquisitionModality("CT"))
	require.NoError(t, w.SetPixelSpacing([2]float64{0.5, 0.6}))
	require.NoError(t, w.SetInstitutionName("New Clinic"))
	require.NoError(t, w.Save())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	p := parser.New()
	require.NoError(t, p.Open(path))
	assert.Equal(t, "InVesalius", p.PatientName())
	assert.Equal(t, 1.5, p.ImageThickness())
	series, _ := p.ImageSeriesNumber()
	assert.Equal(t, 7, series)
	number, _ := p.ImageNumber()
	assert.Equal(t, 3, number)
	loc, _ := p.ImageLocation()
	assert.Equal(t, -20.25, loc)
	pos, _ := p.ImagePosition()
	assert.Equal(t, []float64{-100, -90.5, 30}, pos)
	assert.Equal(t, "CT", p.AcquisitionModality())
	spacing, _ := p.PixelSpacing()
	assert.Equal(t, []float64{0.5, 0.6}, spacing)
	assert.Equal(t, "New Clinic", p.InstitutionName())
	rows, _ := p.DimensionY()
	assert.Equal(t, 2, rows)
}

func TestSaveAs(t *testing.T) {
	dir := t.TempDir()
	path := dicomtest.WriteFile(t, dir, "mr.dcm", sample(t)...)
	out := filepath.Join(dir, "copy.dcm")

	w := New()
	require.NoError(t, w.SetFileName(path))
	require.NoError(t, w.SetPatientName("Copy^Only"))
	require.NoError(t, w.SaveAs(out))

	original := parser.New()
	require.NoError(t, original.Open(path))
	assert.Equal(t, "Doe^John", original.PatientName())

	edited := parser.New()
	require.NoError(t, edited.Open(out))
	assert.Equal(t, "Copy^Only", edited.PatientName())
}

func TestSaveKeepsMode(t *testing.T) {
	dir := t.TempDir()
	path := dicomtest.WriteFile(t, dir, "mr.dcm", sample(t)...)

	for _, mode := range []os.FileMode{0o644, 0o640} {
		require.NoError(t, os.Chmod(path, mode))
		w := New()
		require.NoError(t, w.SetFileName(path))
		require.NoError(t, w.SetPatientName("X"))
		require.NoError(t, w.Save())

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, mode, info.Mode().Perm())
	}

	out := filepath.Join(dir, "new.dcm")
	w := New()
	require.NoError(t, w.SetFileName(path))
	require.NoError(t, w.SaveAs(out))
	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestWithoutFile(t *testing.T) {
	w := New()
	assert.Equal(t, ErrNoFile, w.SetPatientName("x"))
	assert.Equal(t, ErrNoFile, w.Save())
	assert.Error(t, w.SetFileName(filepath.Join(t.TempDir(), "missing.dcm")))
}

func TestSaveIntoMissingDirectory(t *testing.T) {
	dir := t.TempDir()
	path := dicomtest.WriteFile(t, dir, "mr.dcm", sample(t)...)

	w := New()
	require.NoError(t, w.SetFileName(path))
	assert.Error(t, w.SaveAs(filepath.Join(dir, "nope", "out.dcm")))
}
