package parser

// Info maps InfoKeys field names to normalized attribute values.
type Info map[string]interface{}

// InfoKeys is the fixed vocabulary of fields collected by Dictionary.
var InfoKeys = []string{
	"AcquisitionDate",
	"AcquisitionGantryTilt",
	"AcquisitionModality",
	"AcquisitionNumber",
	"AcquisitionSequence",
	"AcquisitionTime",
	"EquipmentKVP",
	"EquipmentInstitutionName",
	"EquipmentManufacturer",
	"EquipmentXRayTubeCurrent",
	"ImageColumnOrientation",
	"ImageConvolutionKernel",
	"ImageDataType",
	"ImageLocation",
	"ImageNumber",
	"ImagePixelSpacingX",
	"ImagePixelSpacingY",
	"ImagePosition",
	"ImageRowOrientation",
	"ImageSamplesPerPixel",
	"ImageSeriesNumber",
	"ImageThickness",
	"ImageWindowLevel",
	"ImageWindowWidth",
	"PatientAge",
	"PatientBirthDate",
	"PatientGender",
	"PatientName",
	"PhysicianName",
	"StudyID",
	"StudyInstanceUID",
	"StudyAdmittingDiagnosis",
}

func optionalInt(v int, ok bool) interface{} {
	if !ok {
		return nil
	}
	return v
}

func optionalFloat(v float64, ok bool) interface{} {
	if !ok {
		return nil
	}
	return v
}

func optionalString(v string) interface{} {
	if v == "" {
		return nil
	}
	return v
}

func (p *Parser) infoGetters() map[string]func() interface{} {
	return map[string]func() interface{}{
		"AcquisitionDate":          func() interface{} { return optionalString(p.AcquisitionDate()) },
		"AcquisitionGantryTilt":    func() interface{} { return p.AcquisitionGantryTilt() },
		"AcquisitionModality":      func() interface{} { return optionalString(p.AcquisitionModality()) },
		"AcquisitionNumber":        func() interface{} { return optionalInt(p.AcquisitionNumber()) },
		"AcquisitionSequence":      func() interface{} { return optionalString(p.AcquisitionSequence()) },
		"AcquisitionTime":          func() interface{} { return optionalString(p.AcquisitionTime()) },
		"EquipmentKVP":             func() interface{} { return optionalFloat(p.EquipmentKVP()) },
		"EquipmentInstitutionName": func() interface{} { return optionalString(p.EquipmentInstitutionName()) },
		"EquipmentManufacturer":    func() interface{} { return optionalString(p.EquipmentManufacturer()) },
		"EquipmentXRayTubeCurrent": func() interface{} { return optionalFloat(p.EquipmentXRayTubeCurrent()) },
		"ImageColumnOrientation":   func() interface{} { o := p.ImageColumnOrientation(); return o[:] },
		"ImageConvolutionKernel":   func() interface{} { return optionalString(p.ImageConvolutionKernel()) },
		"ImageDataType":            func() interface{} { return optionalString(p.ImageDataType()) },
		"ImageLocation":            func() interface{} { return optionalFloat(p.ImageLocation()) },
		"ImageNumber":              func() interface{} { return optionalInt(p.ImageNumber()) },
		"ImagePixelSpacingX":       func() interface{} { return optionalFloat(p.ImagePixelSpacingX()) },
		"ImagePixelSpacingY":       func() interface{} { return optionalFloat(p.ImagePixelSpacingY()) },
		"ImagePosition": func() interface{} {
			if pos, ok := p.ImagePosition(); ok {
				return pos
			}
			return nil
		},
		"ImageRowOrientation":     func() interface{} { o := p.ImageRowOrientation(); return o[:] },
		"ImageSamplesPerPixel":    func() interface{} { return optionalInt(p.ImageSamplesPerPixel()) },
		"ImageSeriesNumber":       func() interface{} { return optionalInt(p.ImageSeriesNumber()) },
		"ImageThickness":          func() interface{} { return p.ImageThickness() },
		"ImageWindowLevel":        func() interface{} { return p.ImageWindowLevel() },
		"ImageWindowWidth":        func() interface{} { return p.ImageWindowWidth() },
		"PatientAge":              func() interface{} { return optionalString(p.PatientAge()) },
		"PatientBirthDate":        func() interface{} { return optionalString(p.PatientBirthDate()) },
		"PatientGender":           func() interface{} { return optionalString(p.PatientGender()) },
		"PatientName":             func() interface{} { return optionalString(p.PatientName()) },
		"PhysicianName":           func() interface{} { return optionalString(p.PhysicianReferringName()) },
		"StudyID":                 func() interface{} { return optionalString(p.StudyID()) },
		"StudyInstanceUID":        func() interface{} { return optionalString(p.StudyInstanceUID()) },
		"StudyAdmittingDiagnosis": func() interface{} { return optionalString(p.StudyAdmittingDiagnosis()) },
	}
}

// Dictionary collects every InfoKeys field of the open file. Fields that
// are absent are left out of the map.
func (p *Parser) Dictionary() Info {
	getters := p.infoGetters()
	info := make(Info, len(InfoKeys))
	for _, key := range InfoKeys {
		get, ok := getters[key]
		if !ok {
			continue
		}
		if v := get(); v != nil {
			info[key] = v
		}
	}
	return info
}

// BuildDictionary parses filename and returns its Dictionary.
func BuildDictionary(filename string, opts ...Option) (Info, error) {
	p := New(opts...)
	if err := p.Open(filename); err != nil {
		return nil, err
	}
	defer p.Close()
	return p.Dictionary(), nil
}
