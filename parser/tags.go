package parser

import "github.com/suyashkumar/dicom/pkg/tag"

// Attribute tags read by the getters. Literal (group, element) pairs keep
// the numbering visible next to the keyword.
var (
	tagImageType               = tag.Tag{Group: 0x0008, Element: 0x0008} // ImageType
	tagSpecificCharacterSet    = tag.Tag{Group: 0x0008, Element: 0x0005} // SpecificCharacterSet
	tagSOPClassUID             = tag.Tag{Group: 0x0008, Element: 0x0016} // SOPClassUID
	tagSOPInstanceUID          = tag.Tag{Group: 0x0008, Element: 0x0018} // SOPInstanceUID
	tagAcquisitionDate         = tag.Tag{Group: 0x0008, Element: 0x0022} // AcquisitionDate
	tagAcquisitionTime         = tag.Tag{Group: 0x0008, Element: 0x0032} // AcquisitionTime
	tagContentTime             = tag.Tag{Group: 0x0008, Element: 0x0033} // ContentTime
	tagAccessionNumber         = tag.Tag{Group: 0x0008, Element: 0x0050} // AccessionNumber
	tagModality                = tag.Tag{Group: 0x0008, Element: 0x0060} // Modality
	tagManufacturer            = tag.Tag{Group: 0x0008, Element: 0x0070} // Manufacturer
	tagInstitutionName         = tag.Tag{Group: 0x0008, Element: 0x0080} // InstitutionName
	tagInstitutionAddress      = tag.Tag{Group: 0x0008, Element: 0x0081} // InstitutionAddress
	tagReferringPhysicianName  = tag.Tag{Group: 0x0008, Element: 0x0090} // ReferringPhysicianName
	tagReferringPhysicianAddr  = tag.Tag{Group: 0x0008, Element: 0x0092} // ReferringPhysicianAddress
	tagReferringPhysicianPhone = tag.Tag{Group: 0x0008, Element: 0x0094} // ReferringPhysicianTelephoneNumbers
	tagStationName             = tag.Tag{Group: 0x0008, Element: 0x1010} // StationName
	tagStudyDescription        = tag.Tag{Group: 0x0008, Element: 0x1030} // StudyDescription
	tagSeriesDescription       = tag.Tag{Group: 0x0008, Element: 0x103E} // SeriesDescription
	tagAdmittingDiagnoses      = tag.Tag{Group: 0x0008, Element: 0x1080} // AdmittingDiagnosesDescription
	tagManufacturerModelName   = tag.Tag{Group: 0x0008, Element: 0x1090} // ManufacturerModelName
	tagPatientName             = tag.Tag{Group: 0x0010, Element: 0x0010} // PatientName
	tagPatientID               = tag.Tag{Group: 0x0010, Element: 0x0020} // PatientID
	tagPatientBirthDate        = tag.Tag{Group: 0x0010, Element: 0x0030} // PatientBirthDate
	tagPatientSex              = tag.Tag{Group: 0x0010, Element: 0x0040} // PatientSex
	tagPatientAge              = tag.Tag{Group: 0x0010, Element: 0x1010} // PatientAge
	tagPatientSize             = tag.Tag{Group: 0x0010, Element: 0x1020} // PatientSize
	tagPatientWeight           = tag.Tag{Group: 0x0010, Element: 0x1030} // PatientWeight
	tagPatientAddress          = tag.Tag{Group: 0x0010, Element: 0x1040} // PatientAddress
	tagMilitaryRank            = tag.Tag{Group: 0x0010, Element: 0x1080} // MilitaryRank
	tagBranchOfService         = tag.Tag{Group: 0x0010, Element: 0x1081} // BranchOfService
	tagMedicalAlerts           = tag.Tag{Group: 0x0010, Element: 0x2000} // MedicalAlerts
	tagAllergies               = tag.Tag{Group: 0x0010, Element: 0x2110} // Allergies
	tagCountryOfResidence      = tag.Tag{Group: 0x0010, Element: 0x2150} // CountryOfResidence
	tagRegionOfResidence       = tag.Tag{Group: 0x0010, Element: 0x2152} // RegionOfResidence
	tagPatientTelephoneNumbers = tag.Tag{Group: 0x0010, Element: 0x2154} // PatientTelephoneNumbers
	tagOccupation              = tag.Tag{Group: 0x0010, Element: 0x2180} // Occupation
	tagResponsiblePerson       = tag.Tag{Group: 0x0010, Element: 0x2297} // ResponsiblePerson
	tagResponsiblePersonRole   = tag.Tag{Group: 0x0010, Element: 0x2298} // ResponsiblePersonRole
	tagResponsibleOrganization = tag.Tag{Group: 0x0010, Element: 0x2299} // ResponsibleOrganization
	tagScanningSequence        = tag.Tag{Group: 0x0018, Element: 0x0020} // ScanningSequence
	tagSliceThickness          = tag.Tag{Group: 0x0018, Element: 0x0050} // SliceThickness
	tagKVP                     = tag.Tag{Group: 0x0018, Element: 0x0060} // KVP
	tagProtocolName            = tag.Tag{Group: 0x0018, Element: 0x1030} // ProtocolName
	tagGantryDetectorTilt      = tag.Tag{Group: 0x0018, Element: 0x1120} // GantryDetectorTilt
	tagXRayTubeCurrent         = tag.Tag{Group: 0x0018, Element: 0x1151} // XRayTubeCurrent
	tagExposureTime            = tag.Tag{Group: 0x0018, Element: 0x1152} // ExposureTime
	tagConvolutionKernel       = tag.Tag{Group: 0x0018, Element: 0x1210} // ConvolutionKernel
	tagStudyInstanceUID        = tag.Tag{Group: 0x0020, Element: 0x000D} // StudyInstanceUID
	tagStudyID                 = tag.Tag{Group: 0x0020, Element: 0x0010} // StudyID
	tagSeriesNumber            = tag.Tag{Group: 0x0020, Element: 0x0011} // SeriesNumber
	tagAcquisitionNumber       = tag.Tag{Group: 0x0020, Element: 0x0012} // AcquisitionNumber
	tagInstanceNumber          = tag.Tag{Group: 0x0020, Element: 0x0013} // InstanceNumber
	tagImagePositionPatient    = tag.Tag{Group: 0x0020, Element: 0x0032} // ImagePositionPatient
	tagImageOrientationPatient = tag.Tag{Group: 0x0020, Element: 0x0037} // ImageOrientationPatient
	tagFrameOfReferenceUID     = tag.Tag{Group: 0x0020, Element: 0x0052} // FrameOfReferenceUID
	tagSliceLocation           = tag.Tag{Group: 0x0020, Element: 0x1041} // SliceLocation
	tagSamplesPerPixel         = tag.Tag{Group: 0x0028, Element: 0x0002} // SamplesPerPixel
	tagPhotometric             = tag.Tag{Group: 0x0028, Element: 0x0004} // PhotometricInterpretation
	tagNumberOfFrames          = tag.Tag{Group: 0x0028, Element: 0x0008} // NumberOfFrames
	tagRows                    = tag.Tag{Group: 0x0028, Element: 0x0010} // Rows
	tagColumns                 = tag.Tag{Group: 0x0028, Element: 0x0011} // Columns
	tagPixelSpacing            = tag.Tag{Group: 0x0028, Element: 0x0030} // PixelSpacing
	tagBitsAllocated           = tag.Tag{Group: 0x0028, Element: 0x0100} // BitsAllocated
	tagBitsStored              = tag.Tag{Group: 0x0028, Element: 0x0101} // BitsStored
	tagHighBit                 = tag.Tag{Group: 0x0028, Element: 0x0102} // HighBit
	tagPixelRepresentation     = tag.Tag{Group: 0x0028, Element: 0x0103} // PixelRepresentation
	tagWindowCenter            = tag.Tag{Group: 0x0028, Element: 0x1050} // WindowCenter
	tagWindowWidth             = tag.Tag{Group: 0x0028, Element: 0x1051} // WindowWidth
)
