package exifmeta

import (
	"github.com/simonhull/exifmeta/internal/types"
)

// Re-export all tag constants. Tag numbers are only unique within an
// IFD group, so they are always used together with an IFD.
//
// IFD0 / IFD1 tags.
const (
	TagImageWidth                  = types.TagImageWidth
	TagImageLength                 = types.TagImageLength
	TagBitsPerSample               = types.TagBitsPerSample
	TagCompression                 = types.TagCompression
	TagPhotometricInterpretation   = types.TagPhotometricInterpretation
	TagImageDescription            = types.TagImageDescription
	TagMake                        = types.TagMake
	TagModel                       = types.TagModel
	TagStripOffsets                = types.TagStripOffsets
	TagOrientation                 = types.TagOrientation
	TagSamplesPerPixel             = types.TagSamplesPerPixel
	TagRowsPerStrip                = types.TagRowsPerStrip
	TagStripByteCounts             = types.TagStripByteCounts
	TagXResolution                 = types.TagXResolution
	TagYResolution                 = types.TagYResolution
	TagPlanarConfiguration         = types.TagPlanarConfiguration
	TagResolutionUnit              = types.TagResolutionUnit
	TagTransferFunction            = types.TagTransferFunction
	TagSoftware                    = types.TagSoftware
	TagDateTime                    = types.TagDateTime
	TagArtist                      = types.TagArtist
	TagWhitePoint                  = types.TagWhitePoint
	TagPrimaryChromaticities       = types.TagPrimaryChromaticities
	TagJPEGInterchangeFormat       = types.TagJPEGInterchangeFormat
	TagJPEGInterchangeFormatLength = types.TagJPEGInterchangeFormatLength
	TagYCbCrCoefficients           = types.TagYCbCrCoefficients
	TagYCbCrSubSampling            = types.TagYCbCrSubSampling
	TagYCbCrPositioning            = types.TagYCbCrPositioning
	TagReferenceBlackWhite         = types.TagReferenceBlackWhite
	TagCopyright                   = types.TagCopyright
	TagExifIFDPointer              = types.TagExifIFDPointer
	TagGPSInfoIFDPointer           = types.TagGPSInfoIFDPointer
)

// EXIF IFD tags.
const (
	TagExposureTime               = types.TagExposureTime
	TagFNumber                    = types.TagFNumber
	TagExposureProgram            = types.TagExposureProgram
	TagSpectralSensitivity        = types.TagSpectralSensitivity
	TagISOSpeedRatings            = types.TagISOSpeedRatings
	TagOECF                       = types.TagOECF
	TagExifVersion                = types.TagExifVersion
	TagDateTimeOriginal           = types.TagDateTimeOriginal
	TagDateTimeDigitized          = types.TagDateTimeDigitized
	TagOffsetTime                 = types.TagOffsetTime
	TagOffsetTimeOriginal         = types.TagOffsetTimeOriginal
	TagOffsetTimeDigitized        = types.TagOffsetTimeDigitized
	TagComponentsConfiguration    = types.TagComponentsConfiguration
	TagCompressedBitsPerPixel     = types.TagCompressedBitsPerPixel
	TagShutterSpeedValue          = types.TagShutterSpeedValue
	TagApertureValue              = types.TagApertureValue
	TagBrightnessValue            = types.TagBrightnessValue
	TagExposureBiasValue          = types.TagExposureBiasValue
	TagMaxApertureValue           = types.TagMaxApertureValue
	TagSubjectDistance            = types.TagSubjectDistance
	TagMeteringMode               = types.TagMeteringMode
	TagLightSource                = types.TagLightSource
	TagFlash                      = types.TagFlash
	TagFocalLength                = types.TagFocalLength
	TagSubjectArea                = types.TagSubjectArea
	TagMakerNote                  = types.TagMakerNote
	TagUserComment                = types.TagUserComment
	TagSubSecTime                 = types.TagSubSecTime
	TagSubSecTimeOriginal         = types.TagSubSecTimeOriginal
	TagSubSecTimeDigitized        = types.TagSubSecTimeDigitized
	TagFlashPixVersion            = types.TagFlashPixVersion
	TagColorSpace                 = types.TagColorSpace
	TagPixelXDimension            = types.TagPixelXDimension
	TagPixelYDimension            = types.TagPixelYDimension
	TagRelatedSoundFile           = types.TagRelatedSoundFile
	TagInteroperabilityIFDPointer = types.TagInteroperabilityIFDPointer
	TagFocalPlaneXResolution      = types.TagFocalPlaneXResolution
	TagFocalPlaneYResolution      = types.TagFocalPlaneYResolution
	TagFocalPlaneResolutionUnit   = types.TagFocalPlaneResolutionUnit
	TagSensingMethod              = types.TagSensingMethod
	TagFileSource                 = types.TagFileSource
	TagSceneType                  = types.TagSceneType
	TagCustomRendered             = types.TagCustomRendered
	TagExposureMode               = types.TagExposureMode
	TagWhiteBalance               = types.TagWhiteBalance
	TagDigitalZoomRatio           = types.TagDigitalZoomRatio
	TagFocalLengthIn35mmFilm      = types.TagFocalLengthIn35mmFilm
	TagSceneCaptureType           = types.TagSceneCaptureType
	TagGainControl                = types.TagGainControl
	TagContrast                   = types.TagContrast
	TagSaturation                 = types.TagSaturation
	TagSharpness                  = types.TagSharpness
	TagSubjectDistanceRange       = types.TagSubjectDistanceRange
	TagImageUniqueID              = types.TagImageUniqueID
	TagCameraOwnerName            = types.TagCameraOwnerName
	TagBodySerialNumber           = types.TagBodySerialNumber
	TagLensSpecification          = types.TagLensSpecification
	TagLensMake                   = types.TagLensMake
	TagLensModel                  = types.TagLensModel
)

// GPS IFD tags.
const (
	TagGPSVersionID         = types.TagGPSVersionID
	TagGPSLatitudeRef       = types.TagGPSLatitudeRef
	TagGPSLatitude          = types.TagGPSLatitude
	TagGPSLongitudeRef      = types.TagGPSLongitudeRef
	TagGPSLongitude         = types.TagGPSLongitude
	TagGPSAltitudeRef       = types.TagGPSAltitudeRef
	TagGPSAltitude          = types.TagGPSAltitude
	TagGPSTimeStamp         = types.TagGPSTimeStamp
	TagGPSSatellites        = types.TagGPSSatellites
	TagGPSStatus            = types.TagGPSStatus
	TagGPSMeasureMode       = types.TagGPSMeasureMode
	TagGPSDOP               = types.TagGPSDOP
	TagGPSSpeedRef          = types.TagGPSSpeedRef
	TagGPSSpeed             = types.TagGPSSpeed
	TagGPSTrackRef          = types.TagGPSTrackRef
	TagGPSTrack             = types.TagGPSTrack
	TagGPSImgDirectionRef   = types.TagGPSImgDirectionRef
	TagGPSImgDirection      = types.TagGPSImgDirection
	TagGPSMapDatum          = types.TagGPSMapDatum
	TagGPSDestLatitudeRef   = types.TagGPSDestLatitudeRef
	TagGPSDestLatitude      = types.TagGPSDestLatitude
	TagGPSDestLongitudeRef  = types.TagGPSDestLongitudeRef
	TagGPSDestLongitude     = types.TagGPSDestLongitude
	TagGPSDestBearingRef    = types.TagGPSDestBearingRef
	TagGPSDestBearing       = types.TagGPSDestBearing
	TagGPSDestDistanceRef   = types.TagGPSDestDistanceRef
	TagGPSDestDistance      = types.TagGPSDestDistance
	TagGPSProcessingMethod  = types.TagGPSProcessingMethod
	TagGPSAreaInformation   = types.TagGPSAreaInformation
	TagGPSDateStamp         = types.TagGPSDateStamp
	TagGPSDifferential      = types.TagGPSDifferential
	TagGPSHPositioningError = types.TagGPSHPositioningError
)

// Interoperability IFD tags.
const (
	TagInteroperabilityIndex   = types.TagInteroperabilityIndex
	TagInteroperabilityVersion = types.TagInteroperabilityVersion
)
