package record

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"godicom/parser"
)

var _ Source = (*parser.Parser)(nil)

type fakeSource struct {
	position  []float64
	spacing   []float64
	thickness float64
}

func (f fakeSource) FileName() string               { return "/data/ct/0001.dcm" }
func (f fakeSource) PatientName() string            { return "Doe^Jane" }
func (f fakeSource) PatientID() string              { return "P-77" }
func (f fakeSource) PatientAge() string             { return "61" }
func (f fakeSource) PatientBirthDate() string       { return "02/03/1960" }
func (f fakeSource) PatientGender() string          { return "F" }
func (f fakeSource) PhysicianReferringName() string { return "Grey^Meredith" }

func (f fakeSource) ImagePatientOrientation() [6]float64 { return [6]float64{1, 0, 0, 0, 1, 0} }
func (f fakeSource) AcquisitionGantryTilt() float64      { return 12.5 }
func (f fakeSource) StudyID() string                     { return "S1" }
func (f fakeSource) AcquisitionModality() string         { return "CT" }
func (f fakeSource) StudyDescription() string            { return "HEAD" }
func (f fakeSource) AcquisitionDate() string             { return "15/03/2020" }
func (f fakeSource) InstitutionName() string             { return "General Hospital" }
func (f fakeSource) AccessionNumber() (int, bool)        { return 991, true }
func (f fakeSource) SeriesDescription() string           { return parser.UnnamedSeries }
func (f fakeSource) AcquisitionTime() string             { return "10:15:30" }
func (f fakeSource) ProtocolName() string                { return "FACE" }
func (f fakeSource) SerieNumber() string                 { return "4" }
func (f fakeSource) SOPClassUID() string                 { return "1.2.840.10008.5.1.4.1.1.2" }

func (f fakeSource) ImageWindowLevel() float64 { return 40 }
func (f fakeSource) ImageWindowWidth() float64 { return 400 }
func (f fakeSource) ImagePosition() ([]float64, bool) {
	return f.position, f.position != nil
}
func (f fakeSource) ImageNumber() (int, bool) { return 17, true }
func (f fakeSource) PixelSpacing() ([]float64, bool) {
	return f.spacing, f.spacing != nil
}
func (f fakeSource) ImageThickness() float64       { return f.thickness }
func (f fakeSource) ImageOrientationLabel() string { return parser.OrientationAxial }
func (f fakeSource) ImageTime() string             { return "10:15:31" }
func (f fakeSource) ImageType() []string           { return []string{"ORIGINAL", "PRIMARY"} }
func (f fakeSource) DimensionX() (int, bool)       { return 512, true }
func (f fakeSource) DimensionY() (int, bool)       { return 256, true }
func (f fakeSource) BitsAllocated() (int, bool)    { return 16, true }

func TestNew(t *testing.T) {
	d := New(fakeSource{
		position:  []float64{-125.5, -130, 42},
		spacing:   []float64{0.488281, 0.488281},
		thickness: 1.25,
	})

	assert.Equal(t, Patient{
		Name:      "Doe^Jane",
		ID:        "P-77",
		Age:       "61",
		BirthDate: "02/03/1960",
		Gender:    "F",
		Physician: "Grey^Meredith",
	}, d.Patient)

	assert.Equal(t, "CT", d.Acquisition.Modality)
	assert.Equal(t, 12.5, d.Acquisition.Tilt)
	assert.Equal(t, 991, d.Acquisition.AccessionNumber)
	assert.Equal(t, d.Acquisition.AcquisitionDate, d.Acquisition.Date)
	assert.Equal(t, "General Hospital", d.Acquisition.Institution)

	assert.Equal(t, []float64{-125.5, -130, 42}, d.Image.Position)
	assert.Equal(t, [3]float64{0.49, 0.49, 1.25}, d.Image.Spacing)
	assert.Equal(t, [2]int{512, 256}, d.Image.Size)
	assert.Equal(t, 16, d.Image.BitsAllocated)
	assert.Equal(t, "/data/ct/0001.dcm", d.Image.File)
	assert.Equal(t, parser.OrientationAxial, d.Image.OrientationLabel)
}

func TestImageDefaults(t *testing.T) {
	img := NewImage(fakeSource{})
	assert.Equal(t, []float64{1, 1, 1}, img.Position)
	assert.Equal(t, [3]float64{1, 1, 1}, img.Spacing)

	img = NewImage(fakeSource{spacing: []float64{0.7, 0.8}})
	assert.Equal(t, [3]float64{0.7, 0.8, DefaultSliceSpacing}, img.Spacing)
}
