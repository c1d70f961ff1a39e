package parser

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrientationLabel(t *testing.T) {
	s := math.Sqrt(0.5)
	tests := []struct {
		name   string
		cosine [6]float64
		want   string
	}{
		{"axial", [6]float64{1, 0, 0, 0, 1, 0}, OrientationAxial},
		{"axial flipped", [6]float64{-1, 0, 0, 0, -1, 0}, OrientationAxial},
		{"coronal", [6]float64{1, 0, 0, 0, 0, -1}, OrientationCoronal},
		{"sagittal", [6]float64{0, 1, 0, 0, 0, -1}, OrientationSagittal},
		{"oblique", [6]float64{s, s, 0, -s, s, 0}, OrientationOblique},
		{"not unit length", [6]float64{2, 0, 0, 0, 1, 0}, OrientationUnknown},
		{"not orthogonal", [6]float64{1, 0, 0, 1, 0, 0}, OrientationUnknown},
		{"zero", [6]float64{}, OrientationUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OrientationLabel(tt.cosine))
		})
	}
}

func TestMajorAxis(t *testing.T) {
	assert.Equal(t, byte('L'), majorAxis(1, 0, 0))
	assert.Equal(t, byte('R'), majorAxis(-1, 0, 0))
	assert.Equal(t, byte('A'), majorAxis(0, -0.9, 0.1))
	assert.Equal(t, byte('F'), majorAxis(0, 0, -1))
	assert.Equal(t, byte(0), majorAxis(0.6, 0.6, 0.5))
}
