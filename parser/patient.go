package parser

import "strings"

// PatientName returns the patient's full name (0010,0010) decoded from the
// file's character set.
func (p *Parser) PatientName() string {
	return strings.TrimSpace(p.decoded(tagPatientName))
}

// PatientID returns the primary hospital identification number (0010,0020).
func (p *Parser) PatientID() string {
	return p.decoded(tagPatientID)
}

// PatientAge returns the age (0010,1010) in years without the unit and
// leading zeros ("045Y" becomes "45"). Ages in days, weeks or months are
// returned as stored.
func (p *Parser) PatientAge() string {
	raw := p.str(tagPatientAge)
	if raw == "" {
		return ""
	}
	return normalizeAge(raw)
}

// PatientAgeYears reports the age as a number when it is expressed in years.
func (p *Parser) PatientAgeYears() (int, bool) {
	age := p.PatientAge()
	if age == "" {
		return 0, false
	}
	n, err := parseInt(age)
	if err != nil {
		return 0, false
	}
	return n, true
}

// PatientBirthDate returns the birth date (0010,0030) as "dd/mm/yyyy".
func (p *Parser) PatientBirthDate() string {
	raw := p.str(tagPatientBirthDate)
	if raw == "" || raw == "None" {
		return ""
	}
	return FormatDate(raw)
}

// PatientGender returns M, F or O (0010,0040).
func (p *Parser) PatientGender() string {
	return p.str(tagPatientSex)
}

// PatientWeight returns the weight in kilograms (0010,1030).
func (p *Parser) PatientWeight() (float64, bool) {
	return p.float(tagPatientWeight)
}

// PatientHeight returns the height in meters (0010,1020).
func (p *Parser) PatientHeight() (float64, bool) {
	return p.float(tagPatientSize)
}

// PatientAddress reads (0010,1040).
func (p *Parser) PatientAddress() string {
	return p.str(tagPatientAddress)
}

// PatientMilitaryRank reads (0010,1080).
func (p *Parser) PatientMilitaryRank() string {
	return p.str(tagMilitaryRank)
}

// PatientMilitaryBranch (0010,1081) may include the country allegiance,
// e.g. "B.R. Army".
func (p *Parser) PatientMilitaryBranch() string {
	return p.str(tagBranchOfService)
}

// PatientCountry is the country of residence (0010,2150).
func (p *Parser) PatientCountry() string {
	return p.str(tagCountryOfResidence)
}

// PatientRegion is the region of residence (0010,2152).
func (p *Parser) PatientRegion() string {
	return p.str(tagRegionOfResidence)
}

// PatientTelephone reads (0010,2154).
func (p *Parser) PatientTelephone() string {
	return p.str(tagPatientTelephoneNumbers)
}

// PatientResponsible is the person with medical decision authority over
// the patient (0010,2297).
func (p *Parser) PatientResponsible() string {
	return p.str(tagResponsiblePerson)
}

// PatientResponsibleRole reads (0010,2298).
func (p *Parser) PatientResponsibleRole() string {
	return p.str(tagResponsiblePersonRole)
}

// PatientResponsibleOrganization reads (0010,2299).
func (p *Parser) PatientResponsibleOrganization() string {
	return p.str(tagResponsibleOrganization)
}

// PatientMedicalCondition lists medical alerts such as contagious illness
// or drug allergies (0010,2000).
func (p *Parser) PatientMedicalCondition() string {
	return p.str(tagMedicalAlerts)
}

// PatientContrastAllergies describes prior reactions to contrast agents
// (0010,2110).
func (p *Parser) PatientContrastAllergies() string {
	return p.str(tagAllergies)
}

// PatientOccupation reads (0010,2180).
func (p *Parser) PatientOccupation() string {
	return p.str(tagOccupation)
}

// PhysicianReferringName returns the referring physician (0008,0090).
func (p *Parser) PhysicianReferringName() string {
	v := p.str(tagReferringPhysicianName)
	if v == "None" {
		return ""
	}
	return v
}

// PhysicianReferringAddress reads (0008,0092).
func (p *Parser) PhysicianReferringAddress() string {
	return p.str(tagReferringPhysicianAddr)
}

// PhysicianReferringTelephone reads (0008,0094).
func (p *Parser) PhysicianReferringTelephone() string {
	return p.str(tagReferringPhysicianPhone)
}
