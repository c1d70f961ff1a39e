package parser

// UnnamedSeries is reported for series without a description.
const UnnamedSeries = "unnamed"

// AcquisitionDate returns (0008,0022) as "dd/mm/yyyy".
func (p *Parser) AcquisitionDate() string {
	return FormatDate(p.str(tagAcquisitionDate))
}

// AcquisitionTime returns (0008,0032) as "hh:mm:ss".
func (p *Parser) AcquisitionTime() string {
	raw := p.str(tagAcquisitionTime)
	if raw == "None" {
		return ""
	}
	return FormatTime(raw)
}

// AcquisitionNumber identifies the acquisition of this slice (0020,0012).
func (p *Parser) AcquisitionNumber() (int, bool) {
	return p.integer(tagAcquisitionNumber)
}

// AccessionNumber reads (0008,0050). A present value that is not a number
// is reported as 0.
func (p *Parser) AccessionNumber() (int, bool) {
	raw := p.str(tagAccessionNumber)
	if raw == "" {
		return 0, false
	}
	n, err := parseInt(raw)
	if err != nil {
		return 0, true
	}
	return n, true
}

// AcquisitionModality returns the modality, e.g. CT or MR (0008,0060).
func (p *Parser) AcquisitionModality() string {
	return p.str(tagModality)
}

// AcquisitionGantryTilt returns the nominal gantry tilt in degrees
// (0018,1120), 0 when not set.
func (p *Parser) AcquisitionGantryTilt() float64 {
	tilt, _ := p.float(tagGantryDetectorTilt)
	return tilt
}

// AcquisitionSequence describes how the data was acquired (0018,0020):
// SE, IR, GR, EP, RM, or vendor terms such as HELICAL_CT.
func (p *Parser) AcquisitionSequence() string {
	return p.str(tagScanningSequence)
}

// ProtocolName varies by manufacturer, e.g. "FACE" or
// "./protocols/user1.pfossa.pro" (0018,1030).
func (p *Parser) ProtocolName() string {
	return p.str(tagProtocolName)
}

func (p *Parser) StudyID() string {
	return p.str(tagStudyID)
}

func (p *Parser) StudyInstanceUID() string {
	return p.str(tagStudyInstanceUID)
}

// StudyDescription reads (0008,1030) decoded from the file's character set.
func (p *Parser) StudyDescription() string {
	return p.decoded(tagStudyDescription)
}

// StudyAdmittingDiagnosis reads (0008,1080).
func (p *Parser) StudyAdmittingDiagnosis() string {
	return p.str(tagAdmittingDiagnoses)
}

// SeriesDescription reads (0008,103E), UnnamedSeries when not set.
func (p *Parser) SeriesDescription() string {
	v := p.str(tagSeriesDescription)
	if v == "" || v == "None" {
		return UnnamedSeries
	}
	return v
}

// SerieNumber returns the series number (0020,0011) as stored.
func (p *Parser) SerieNumber() string {
	return p.str(tagSeriesNumber)
}

// ImageSeriesNumber returns the series number (0020,0011) as an integer.
func (p *Parser) ImageSeriesNumber() (int, bool) {
	raw := p.str(tagSeriesNumber)
	if raw == `""` || raw == "None" {
		return 0, false
	}
	return p.integer(tagSeriesNumber)
}

func (p *Parser) SOPClassUID() string {
	return p.str(tagSOPClassUID)
}

func (p *Parser) SOPInstanceUID() string {
	return p.str(tagSOPInstanceUID)
}

// FrameReferenceUID reads the Frame of Reference UID (0020,0052).
func (p *Parser) FrameReferenceUID() string {
	return p.str(tagFrameOfReferenceUID)
}

// InstitutionName reads (0008,0080).
func (p *Parser) InstitutionName() string {
	return p.str(tagInstitutionName)
}

// EquipmentInstitutionName is the institution where the acquisition
// equipment is located; same attribute as InstitutionName.
func (p *Parser) EquipmentInstitutionName() string {
	return p.InstitutionName()
}

// InstitutionAddress reads (0008,0081). Some institutions record only the
// city.
func (p *Parser) InstitutionAddress() string {
	return p.str(tagInstitutionAddress)
}

func (p *Parser) EquipmentManufacturer() string {
	return p.str(tagManufacturer)
}

func (p *Parser) ManufacturerModelName() string {
	return p.str(tagManufacturerModelName)
}

// StationName is the user defined machine name (0008,1010).
func (p *Parser) StationName() string {
	return p.str(tagStationName)
}

// EquipmentKVP returns the peak kilo voltage of the generator (0018,0060).
func (p *Parser) EquipmentKVP() (float64, bool) {
	return p.float(tagKVP)
}

// EquipmentXRayTubeCurrent returns the tube current in mA (0018,1151).
func (p *Parser) EquipmentXRayTubeCurrent() (float64, bool) {
	return p.float(tagXRayTubeCurrent)
}

// ExposureTime returns the X-ray exposure time (0018,1152).
func (p *Parser) ExposureTime() (float64, bool) {
	return p.float(tagExposureTime)
}
