package parser

var (
	defaultOrientation    = [6]float64{1, 0, 0, 0, 1, 0}
	defaultRowOrientation = [3]float64{1, 0, 0}
	defaultColOrientation = [3]float64{0, 1, 0}
)

// ImageWindowLevel returns the window center (0028,1050) of the configured
// preset. Files may carry several center/width pairs; they are matched by
// index with ImageWindowWidth.
func (p *Parser) ImageWindowLevel() float64 {
	return p.windowValue(p.ImageWindowLevels(), DefaultWindowLevel)
}

// ImageWindowLevels returns every window center.
func (p *Parser) ImageWindowLevels() []float64 {
	values, _ := p.floats(tagWindowCenter)
	return values
}

// ImageWindowWidth returns the window width (0028,1051) of the configured
// preset.
func (p *Parser) ImageWindowWidth() float64 {
	return p.windowValue(p.ImageWindowWidths(), DefaultWindowWidth)
}

func (p *Parser) ImageWindowWidths() []float64 {
	values, _ := p.floats(tagWindowWidth)
	return values
}

func (p *Parser) windowValue(values []float64, def float64) float64 {
	if p.preset < 0 || p.preset >= len(values) {
		return def
	}
	return values[p.preset]
}

// ImagePosition returns the x, y, z coordinates in mm of the first voxel
// transmitted (0020,0032).
func (p *Parser) ImagePosition() ([]float64, bool) {
	return p.floats(tagImagePositionPatient)
}

// ImageLocation returns the slice location (0020,1041).
func (p *Parser) ImageLocation() (float64, bool) {
	return p.float(tagSliceLocation)
}

// PixelSpacing returns the row and column spacing in mm (0028,0030).
func (p *Parser) PixelSpacing() ([]float64, bool) {
	return p.floats(tagPixelSpacing)
}

func (p *Parser) ImagePixelSpacingX() (float64, bool) {
	spacing, ok := p.PixelSpacing()
	if !ok || len(spacing) < 1 {
		return 0, false
	}
	return spacing[0], true
}

func (p *Parser) ImagePixelSpacingY() (float64, bool) {
	spacing, ok := p.PixelSpacing()
	if !ok || len(spacing) < 2 {
		return 0, false
	}
	return spacing[1], true
}

// ImagePatientOrientation returns the row and column direction cosines
// (0020,0037): three row values followed by three column values.
func (p *Parser) ImagePatientOrientation() [6]float64 {
	values, ok := p.floats(tagImageOrientationPatient)
	if !ok || len(values) < 6 {
		return defaultOrientation
	}
	var out [6]float64
	copy(out[:], values)
	return out
}

func (p *Parser) ImageRowOrientation() [3]float64 {
	values, ok := p.floats(tagImageOrientationPatient)
	if !ok || len(values) < 3 {
		return defaultRowOrientation
	}
	var out [3]float64
	copy(out[:], values[0:3])
	return out
}

func (p *Parser) ImageColumnOrientation() [3]float64 {
	values, ok := p.floats(tagImageOrientationPatient)
	if !ok || len(values) < 6 {
		return defaultColOrientation
	}
	var out [3]float64
	copy(out[:], values[3:6])
	return out
}

// ImageOrientationLabel returns AXIAL, CORONAL, SAGITTAL, OBLIQUE or
// UNKNOWN. Files without (0020,0037) are treated as axial.
func (p *Parser) ImageOrientationLabel() string {
	if p.str(tagImageOrientationPatient) == "" {
		return OrientationLabel(defaultOrientation)
	}
	values, ok := p.floats(tagImageOrientationPatient)
	if !ok || len(values) != 6 {
		return OrientationUnknown
	}
	var c [6]float64
	copy(c[:], values)
	return OrientationLabel(c)
}

// ImageSamplesPerPixel reads (0028,0002).
func (p *Parser) ImageSamplesPerPixel() (int, bool) {
	return p.integer(tagSamplesPerPixel)
}

// PhotometricInterpretation, e.g. "MONOCHROME2" (0028,0004).
func (p *Parser) PhotometricInterpretation() string {
	return p.str(tagPhotometric)
}

// BitsAllocated per sample (0028,0100), usually 8, 16, 32 or 64.
func (p *Parser) BitsAllocated() (int, bool) {
	return p.integer(tagBitsAllocated)
}

// BitsStored per sample (0028,0101), e.g. 12 or 16.
func (p *Parser) BitsStored() (int, bool) {
	return p.integer(tagBitsStored)
}

// HighBit is commonly 11 or 15 (0028,0102).
func (p *Parser) HighBit() (int, bool) {
	return p.integer(tagHighBit)
}

// PixelRepresentation is 0 for unsigned samples and 1 for two's
// complement (0028,0103).
func (p *Parser) PixelRepresentation() (int, bool) {
	return p.integer(tagPixelRepresentation)
}

// ImageDataType derives the sample type from bits allocated and pixel
// representation: Int8, UInt16, Int16, Int32 or Float64.
func (p *Parser) ImageDataType() string {
	bits, ok := p.BitsAllocated()
	if !ok || bits == 0 {
		return ""
	}
	repr, _ := p.PixelRepresentation()
	switch bits {
	case 8:
		return "Int8"
	case 16:
		if repr != 0 {
			return "Int16"
		}
	case 32:
		return "Int32"
	case 64:
		return "Float64"
	}
	return "UInt16"
}

// ImageType returns the image type values (0008,0008), e.g.
// ["ORIGINAL", "PRIMARY", "AXIAL"].
func (p *Parser) ImageType() []string {
	raw := p.str(tagImageType)
	if raw == "" {
		return []string{}
	}
	return SplitValues(raw)
}

// ImageThickness returns the nominal slice thickness in mm (0018,0050),
// 0 when not set.
func (p *Parser) ImageThickness() float64 {
	thickness, _ := p.float(tagSliceThickness)
	return thickness
}

// ImageConvolutionKernel is vendor specific; "standard" may be written
// STD, STND, Stand or STANDARD (0018,1210).
func (p *Parser) ImageConvolutionKernel() string {
	return p.str(tagConvolutionKernel)
}

// ImageNumber returns the instance (slice) number (0020,0013).
func (p *Parser) ImageNumber() (int, bool) {
	return p.integer(tagInstanceNumber)
}

// ImageTime returns the content time (0008,0033) as "hh:mm:ss".
func (p *Parser) ImageTime() string {
	raw := p.str(tagContentTime)
	if raw == "None" {
		return ""
	}
	return FormatTime(raw)
}

// DimensionX is the number of columns (0028,0011).
func (p *Parser) DimensionX() (int, bool) {
	return p.positive(p.integer(tagColumns))
}

// DimensionY is the number of rows (0028,0010).
func (p *Parser) DimensionY() (int, bool) {
	return p.positive(p.integer(tagRows))
}

// DimensionZ is the number of frames (0028,0008); single frame images
// report 1.
func (p *Parser) DimensionZ() float64 {
	if !p.open {
		return 0
	}
	frames, ok := p.integer(tagNumberOfFrames)
	if !ok || frames < 1 {
		return 1
	}
	return float64(frames)
}

func (p *Parser) positive(n int, ok bool) (int, bool) {
	if !ok || n <= 0 {
		return 0, false
	}
	return n, true
}
