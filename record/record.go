// Package record copies parser getter results into plain structs that
// outlive the open file.
package record

import "math"

// DefaultSliceSpacing is used as the z spacing of files without a slice
// thickness.
const DefaultSliceSpacing = 1.5

// Source is the subset of *parser.Parser the records are built from.
type Source interface {
	FileName() string

	PatientName() string
	PatientID() string
	PatientAge() string
	PatientBirthDate() string
	PatientGender() string
	PhysicianReferringName() string

	ImagePatientOrientation() [6]float64
	AcquisitionGantryTilt() float64
	StudyID() string
	AcquisitionModality() string
	StudyDescription() string
	AcquisitionDate() string
	InstitutionName() string
	AccessionNumber() (int, bool)
	SeriesDescription() string
	AcquisitionTime() string
	ProtocolName() string
	SerieNumber() string
	SOPClassUID() string

	ImageWindowLevel() float64
	ImageWindowWidth() float64
	ImagePosition() ([]float64, bool)
	ImageNumber() (int, bool)
	PixelSpacing() ([]float64, bool)
	ImageThickness() float64
	ImageOrientationLabel() string
	ImageTime() string
	ImageType() []string
	DimensionX() (int, bool)
	DimensionY() (int, bool)
	BitsAllocated() (int, bool)
}

type Patient struct {
	Name      string `json:"name" yaml:"name"`
	ID        string `json:"id" yaml:"id"`
	Age       string `json:"age" yaml:"age"`
	BirthDate string `json:"birthDate" yaml:"birthDate"`
	Gender    string `json:"gender" yaml:"gender"`
	Physician string `json:"physician" yaml:"physician"`
}

type Acquisition struct {
	PatientOrientation [6]float64 `json:"patientOrientation" yaml:"patientOrientation"`
	Tilt               float64    `json:"tilt" yaml:"tilt"`
	StudyID            string     `json:"studyId" yaml:"studyId"`
	Modality           string     `json:"modality" yaml:"modality"`
	StudyDescription   string     `json:"studyDescription" yaml:"studyDescription"`
	AcquisitionDate    string     `json:"acquisitionDate" yaml:"acquisitionDate"`
	Institution        string     `json:"institution" yaml:"institution"`
	Date               string     `json:"date" yaml:"date"`
	AccessionNumber    int        `json:"accessionNumber" yaml:"accessionNumber"`
	SeriesDescription  string     `json:"seriesDescription" yaml:"seriesDescription"`
	Time               string     `json:"time" yaml:"time"`
	ProtocolName       string     `json:"protocolName" yaml:"protocolName"`
	SerieNumber        string     `json:"serieNumber" yaml:"serieNumber"`
	SOPClassUID        string     `json:"sopClassUid" yaml:"sopClassUid"`
}

type Image struct {
	Level            float64    `json:"level" yaml:"level"`
	Window           float64    `json:"window" yaml:"window"`
	Position         []float64  `json:"position" yaml:"position"`
	Number           int        `json:"number" yaml:"number"`
	Spacing          [3]float64 `json:"spacing" yaml:"spacing"`
	OrientationLabel string     `json:"orientationLabel" yaml:"orientationLabel"`
	File             string     `json:"file" yaml:"file"`
	Time             string     `json:"time" yaml:"time"`
	Type             []string   `json:"type" yaml:"type"`
	Size             [2]int     `json:"size" yaml:"size"`
	BitsAllocated    int        `json:"bitsAllocated" yaml:"bitsAllocated"`
}

// Dicom is a snapshot of one file.
type Dicom struct {
	Patient     Patient     `json:"patient" yaml:"patient"`
	Acquisition Acquisition `json:"acquisition" yaml:"acquisition"`
	Image       Image       `json:"image" yaml:"image"`
}

func New(src Source) Dicom {
	return Dicom{
		Patient:     NewPatient(src),
		Acquisition: NewAcquisition(src),
		Image:       NewImage(src),
	}
}

func NewPatient(src Source) Patient {
	return Patient{
		Name:      src.PatientName(),
		ID:        src.PatientID(),
		Age:       src.PatientAge(),
		BirthDate: src.PatientBirthDate(),
		Gender:    src.PatientGender(),
		Physician: src.PhysicianReferringName(),
	}
}

func NewAcquisition(src Source) Acquisition {
	accession, _ := src.AccessionNumber()
	date := src.AcquisitionDate()
	return Acquisition{
		PatientOrientation: src.ImagePatientOrientation(),
		Tilt:               src.AcquisitionGantryTilt(),
		StudyID:            src.StudyID(),
		Modality:           src.AcquisitionModality(),
		StudyDescription:   src.StudyDescription(),
		AcquisitionDate:    date,
		Institution:        src.InstitutionName(),
		Date:               date,
		AccessionNumber:    accession,
		SeriesDescription:  src.SeriesDescription(),
		Time:               src.AcquisitionTime(),
		ProtocolName:       src.ProtocolName(),
		SerieNumber:        src.SerieNumber(),
		SOPClassUID:        src.SOPClassUID(),
	}
}

// NewImage fills an Image. Position falls back to [1, 1, 1]; spacing is the
// pixel spacing followed by the slice thickness (DefaultSliceSpacing when
// the thickness is zero), or [1, 1, 1] without pixel spacing.
func NewImage(src Source) Image {
	position, ok := src.ImagePosition()
	if !ok || len(position) == 0 {
		position = []float64{1, 1, 1}
	}
	number, _ := src.ImageNumber()
	cols, _ := src.DimensionX()
	rows, _ := src.DimensionY()
	bits, _ := src.BitsAllocated()

	return Image{
		Level:            src.ImageWindowLevel(),
		Window:           src.ImageWindowWidth(),
		Position:         position,
		Number:           number,
		Spacing:          spacing(src),
		OrientationLabel: src.ImageOrientationLabel(),
		File:             src.FileName(),
		Time:             src.ImageTime(),
		Type:             src.ImageType(),
		Size:             [2]int{cols, rows},
		BitsAllocated:    bits,
	}
}

func spacing(src Source) [3]float64 {
	pixel, ok := src.PixelSpacing()
	if !ok || len(pixel) < 2 {
		return [3]float64{1, 1, 1}
	}
	z := src.ImageThickness()
	if z == 0 {
		z = DefaultSliceSpacing
	}
	return [3]float64{round2(pixel[0]), round2(pixel[1]), round2(z)}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
