package parser

import "math"

// Orientation labels reported by ImageOrientationLabel.
const (
	OrientationUnknown  = "UNKNOWN"
	OrientationAxial    = "AXIAL"
	OrientationCoronal  = "CORONAL"
	OrientationSagittal = "SAGITTAL"
	OrientationOblique  = "OBLIQUE"
)

const (
	obliquityThreshold = 0.8
	cosineEpsilon      = 1e-3
)

// majorAxis returns the patient axis letter a direction cosine mostly
// points along, or 0 when no component exceeds the obliquity threshold.
func majorAxis(x, y, z float64) byte {
	ox, oy, oz := byte('L'), byte('P'), byte('H')
	if x < 0 {
		ox = 'R'
	}
	if y < 0 {
		oy = 'A'
	}
	if z < 0 {
		oz = 'F'
	}
	ax, ay, az := math.Abs(x), math.Abs(y), math.Abs(z)
	switch {
	case ax > obliquityThreshold && ax > ay && ax > az:
		return ox
	case ay > obliquityThreshold && ay > ax && ay > az:
		return oy
	case az > obliquityThreshold && az > ax && az > ay:
		return oz
	}
	return 0
}

func validCosines(c [6]float64) bool {
	row := c[0]*c[0] + c[1]*c[1] + c[2]*c[2]
	col := c[3]*c[3] + c[4]*c[4] + c[5]*c[5]
	dot := c[0]*c[3] + c[1]*c[4] + c[2]*c[5]
	return math.Abs(row-1) < cosineEpsilon &&
		math.Abs(col-1) < cosineEpsilon &&
		math.Abs(dot) < cosineEpsilon
}

// OrientationLabel classifies row/column direction cosines into the plane
// they lie in.
func OrientationLabel(c [6]float64) string {
	if !validCosines(c) {
		return OrientationUnknown
	}
	row := majorAxis(c[0], c[1], c[2])
	col := majorAxis(c[3], c[4], c[5])
	if row == 0 || col == 0 {
		return OrientationOblique
	}

	lr := func(a byte) bool { return a == 'R' || a == 'L' }
	ap := func(a byte) bool { return a == 'A' || a == 'P' }
	hf := func(a byte) bool { return a == 'H' || a == 'F' }

	switch {
	case lr(row) && ap(col), ap(row) && lr(col):
		return OrientationAxial
	case lr(row) && hf(col), hf(row) && lr(col):
		return OrientationCoronal
	case ap(row) && hf(col), hf(row) && ap(col):
		return OrientationSagittal
	}
	return OrientationOblique
}
