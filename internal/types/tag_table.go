package types

// IFD0 / IFD1 tags (TIFF 6.0).
const (
	TagImageWidth                  Tag = 0x0100
	TagImageLength                 Tag = 0x0101
	TagBitsPerSample               Tag = 0x0102
	TagCompression                 Tag = 0x0103
	TagPhotometricInterpretation   Tag = 0x0106
	TagImageDescription            Tag = 0x010E
	TagMake                        Tag = 0x010F
	TagModel                       Tag = 0x0110
	TagStripOffsets                Tag = 0x0111
	TagOrientation                 Tag = 0x0112
	TagSamplesPerPixel             Tag = 0x0115
	TagRowsPerStrip                Tag = 0x0116
	TagStripByteCounts             Tag = 0x0117
	TagXResolution                 Tag = 0x011A
	TagYResolution                 Tag = 0x011B
	TagPlanarConfiguration         Tag = 0x011C
	TagResolutionUnit              Tag = 0x0128
	TagTransferFunction            Tag = 0x012D
	TagSoftware                    Tag = 0x0131
	TagDateTime                    Tag = 0x0132
	TagArtist                      Tag = 0x013B
	TagWhitePoint                  Tag = 0x013E
	TagPrimaryChromaticities       Tag = 0x013F
	TagJPEGInterchangeFormat       Tag = 0x0201
	TagJPEGInterchangeFormatLength Tag = 0x0202
	TagYCbCrCoefficients           Tag = 0x0211
	TagYCbCrSubSampling            Tag = 0x0212
	TagYCbCrPositioning            Tag = 0x0213
	TagReferenceBlackWhite         Tag = 0x0214
	TagCopyright                   Tag = 0x8298
	TagExifIFDPointer              Tag = 0x8769
	TagGPSInfoIFDPointer           Tag = 0x8825
)

// EXIF IFD tags (Exif 2.3).
const (
	TagExposureTime               Tag = 0x829A
	TagFNumber                    Tag = 0x829D
	TagExposureProgram            Tag = 0x8822
	TagSpectralSensitivity        Tag = 0x8824
	TagISOSpeedRatings            Tag = 0x8827
	TagOECF                       Tag = 0x8828
	TagExifVersion                Tag = 0x9000
	TagDateTimeOriginal           Tag = 0x9003
	TagDateTimeDigitized          Tag = 0x9004
	TagOffsetTime                 Tag = 0x9010
	TagOffsetTimeOriginal         Tag = 0x9011
	TagOffsetTimeDigitized        Tag = 0x9012
	TagComponentsConfiguration    Tag = 0x9101
	TagCompressedBitsPerPixel     Tag = 0x9102
	TagShutterSpeedValue          Tag = 0x9201
	TagApertureValue              Tag = 0x9202
	TagBrightnessValue            Tag = 0x9203
	TagExposureBiasValue          Tag = 0x9204
	TagMaxApertureValue           Tag = 0x9205
	TagSubjectDistance            Tag = 0x9206
	TagMeteringMode               Tag = 0x9207
	TagLightSource                Tag = 0x9208
	TagFlash                      Tag = 0x9209
	TagFocalLength                Tag = 0x920A
	TagSubjectArea                Tag = 0x9214
	TagMakerNote                  Tag = 0x927C
	TagUserComment                Tag = 0x9286
	TagSubSecTime                 Tag = 0x9290
	TagSubSecTimeOriginal         Tag = 0x9291
	TagSubSecTimeDigitized        Tag = 0x9292
	TagFlashPixVersion            Tag = 0xA000
	TagColorSpace                 Tag = 0xA001
	TagPixelXDimension            Tag = 0xA002
	TagPixelYDimension            Tag = 0xA003
	TagRelatedSoundFile           Tag = 0xA004
	TagInteroperabilityIFDPointer Tag = 0xA005
	TagFocalPlaneXResolution      Tag = 0xA20E
	TagFocalPlaneYResolution      Tag = 0xA20F
	TagFocalPlaneResolutionUnit   Tag = 0xA210
	TagSensingMethod              Tag = 0xA217
	TagFileSource                 Tag = 0xA300
	TagSceneType                  Tag = 0xA301
	TagCustomRendered             Tag = 0xA401
	TagExposureMode               Tag = 0xA402
	TagWhiteBalance               Tag = 0xA403
	TagDigitalZoomRatio           Tag = 0xA404
	TagFocalLengthIn35mmFilm      Tag = 0xA405
	TagSceneCaptureType           Tag = 0xA406
	TagGainControl                Tag = 0xA407
	TagContrast                   Tag = 0xA408
	TagSaturation                 Tag = 0xA409
	TagSharpness                  Tag = 0xA40A
	TagSubjectDistanceRange       Tag = 0xA40C
	TagImageUniqueID              Tag = 0xA420
	TagCameraOwnerName            Tag = 0xA430
	TagBodySerialNumber           Tag = 0xA431
	TagLensSpecification          Tag = 0xA432
	TagLensMake                   Tag = 0xA433
	TagLensModel                  Tag = 0xA434
)

// GPS IFD tags.
const (
	TagGPSVersionID         Tag = 0x0000
	TagGPSLatitudeRef       Tag = 0x0001
	TagGPSLatitude          Tag = 0x0002
	TagGPSLongitudeRef      Tag = 0x0003
	TagGPSLongitude         Tag = 0x0004
	TagGPSAltitudeRef       Tag = 0x0005
	TagGPSAltitude          Tag = 0x0006
	TagGPSTimeStamp         Tag = 0x0007
	TagGPSSatellites        Tag = 0x0008
	TagGPSStatus            Tag = 0x0009
	TagGPSMeasureMode       Tag = 0x000A
	TagGPSDOP               Tag = 0x000B
	TagGPSSpeedRef          Tag = 0x000C
	TagGPSSpeed             Tag = 0x000D
	TagGPSTrackRef          Tag = 0x000E
	TagGPSTrack             Tag = 0x000F
	TagGPSImgDirectionRef   Tag = 0x0010
	TagGPSImgDirection      Tag = 0x0011
	TagGPSMapDatum          Tag = 0x0012
	TagGPSDestLatitudeRef   Tag = 0x0013
	TagGPSDestLatitude      Tag = 0x0014
	TagGPSDestLongitudeRef  Tag = 0x0015
	TagGPSDestLongitude     Tag = 0x0016
	TagGPSDestBearingRef    Tag = 0x0017
	TagGPSDestBearing       Tag = 0x0018
	TagGPSDestDistanceRef   Tag = 0x0019
	TagGPSDestDistance      Tag = 0x001A
	TagGPSProcessingMethod  Tag = 0x001B
	TagGPSAreaInformation   Tag = 0x001C
	TagGPSDateStamp         Tag = 0x001D
	TagGPSDifferential      Tag = 0x001E
	TagGPSHPositioningError Tag = 0x001F
)

// Interoperability IFD tags.
const (
	TagInteroperabilityIndex   Tag = 0x0001
	TagInteroperabilityVersion Tag = 0x0002
)

const (
	lvN = SupportNotRecorded
	lvO = SupportOptional
	lvM = SupportMandatory
)

var (
	oooo = supportSpec{lvO, lvO, lvO, lvO}
	mmmm = supportSpec{lvM, lvM, lvM, lvM}
	mmmn = supportSpec{lvM, lvM, lvM, lvN}
	omon = supportSpec{lvO, lvM, lvO, lvN}
	nnmn = supportSpec{lvN, lvN, lvM, lvN}
	nnmm = supportSpec{lvN, lvN, lvM, lvM}
	nnoo = supportSpec{lvN, lvN, lvO, lvO}
	nnnm = supportSpec{lvN, lvN, lvN, lvM}
	nnno = supportSpec{lvN, lvN, lvN, lvO}
)

var (
	fmtByte      = []DataType{TypeByte}
	fmtASCII     = []DataType{TypeASCII}
	fmtShort     = []DataType{TypeShort}
	fmtLong      = []DataType{TypeLong}
	fmtShortLong = []DataType{TypeShort, TypeLong}
	fmtRational  = []DataType{TypeRational}
	fmtSRational = []DataType{TypeSRational}
	fmtUndefined = []DataType{TypeUndefined}
)

// both records a tag in IFD0 and IFD1 with the same support.
func both(s supportSpec) map[IFD]supportSpec {
	return map[IFD]supportSpec{IFDImage: s, IFDThumbnail: s}
}

func split(ifd0, ifd1 supportSpec) map[IFD]supportSpec {
	return map[IFD]supportSpec{IFDImage: ifd0, IFDThumbnail: ifd1}
}

func in(ifd IFD, s supportSpec) map[IFD]supportSpec {
	return map[IFD]supportSpec{ifd: s}
}

var (
	labelsOrientation = map[uint32]string{
		1: "Top-left", 2: "Top-right", 3: "Bottom-right", 4: "Bottom-left",
		5: "Left-top", 6: "Right-top", 7: "Right-bottom", 8: "Left-bottom",
	}
	labelsResolutionUnit = map[uint32]string{
		1: "No absolute unit", 2: "Inch", 3: "Centimeter",
	}
	labelsCompression = map[uint32]string{
		1: "Uncompressed", 5: "LZW compression", 6: "JPEG compression",
		7: "JPEG compression", 8: "Deflate/ZIP compression", 32773: "PackBits compression",
	}
	labelsPhotometric = map[uint32]string{
		0: "Reversed mono", 1: "Normal mono", 2: "RGB", 3: "Palette",
		5: "CMYK", 6: "YCbCr", 8: "CieLAB",
	}
	labelsPlanar = map[uint32]string{
		1: "Chunky format", 2: "Planar format",
	}
	labelsYCbCrPositioning = map[uint32]string{
		1: "Centered", 2: "Co-sited",
	}
	labelsExposureProgram = map[uint32]string{
		0: "Not defined", 1: "Manual", 2: "Normal program", 3: "Aperture priority",
		4: "Shutter priority", 5: "Creative program (biased toward depth of field)",
		6: "Creative program (biased toward fast shutter speed)",
		7: "Portrait mode (for closeup photos with the background out of focus)",
		8: "Landscape mode (for landscape photos with the background in focus)",
	}
	labelsMeteringMode = map[uint32]string{
		0: "Unknown", 1: "Average", 2: "Center-weighted average", 3: "Spot",
		4: "Multi spot", 5: "Pattern", 6: "Partial", 255: "Other",
	}
	labelsLightSource = map[uint32]string{
		0: "Unknown", 1: "Daylight", 2: "Fluorescent", 3: "Tungsten incandescent light",
		4: "Flash", 9: "Fine weather", 10: "Cloudy weather", 11: "Shade",
		12: "Daylight fluorescent", 13: "Day white fluorescent", 14: "Cool white fluorescent",
		15: "White fluorescent", 17: "Standard light A", 18: "Standard light B",
		19: "Standard light C", 20: "D55", 21: "D65", 22: "D75",
		24: "ISO studio tungsten", 255: "Other",
	}
	labelsFlash = map[uint32]string{
		0x00: "Flash did not fire",
		0x01: "Flash fired",
		0x05: "Strobe return light not detected",
		0x07: "Strobe return light detected",
		0x09: "Flash fired, compulsory flash mode",
		0x0D: "Flash fired, compulsory flash mode, return light not detected",
		0x0F: "Flash fired, compulsory flash mode, return light detected",
		0x10: "Flash did not fire, compulsory flash mode",
		0x18: "Flash did not fire, auto mode",
		0x19: "Flash fired, auto mode",
		0x1D: "Flash fired, auto mode, return light not detected",
		0x1F: "Flash fired, auto mode, return light detected",
		0x20: "No flash function",
		0x41: "Flash fired, red-eye reduction mode",
		0x59: "Flash fired, auto mode, red-eye reduction mode",
	}
	labelsColorSpace = map[uint32]string{
		1: "sRGB", 2: "Adobe RGB", 0xFFFF: "Uncalibrated",
	}
	labelsSensingMethod = map[uint32]string{
		1: "Not defined", 2: "One-chip color area sensor", 3: "Two-chip color area sensor",
		4: "Three-chip color area sensor", 5: "Color sequential area sensor",
		7: "Trilinear sensor", 8: "Color sequential linear sensor",
	}
	labelsFileSource = map[uint32]string{
		0: "Others", 1: "Scanner of transparent type", 2: "Scanner of reflex type", 3: "DSC",
	}
	labelsSceneType = map[uint32]string{
		1: "Directly photographed",
	}
	labelsCustomRendered = map[uint32]string{
		0: "Normal process", 1: "Custom process",
	}
	labelsExposureMode = map[uint32]string{
		0: "Auto exposure", 1: "Manual exposure", 2: "Auto bracket",
	}
	labelsWhiteBalance = map[uint32]string{
		0: "Auto white balance", 1: "Manual white balance",
	}
	labelsSceneCaptureType = map[uint32]string{
		0: "Standard", 1: "Landscape", 2: "Portrait", 3: "Night scene",
	}
	labelsGainControl = map[uint32]string{
		0: "Normal", 1: "Low gain up", 2: "High gain up", 3: "Low gain down", 4: "High gain down",
	}
	labelsContrast = map[uint32]string{
		0: "Normal", 1: "Soft", 2: "Hard",
	}
	labelsSaturation = map[uint32]string{
		0: "Normal", 1: "Low saturation", 2: "High saturation",
	}
	labelsSubjectDistanceRange = map[uint32]string{
		0: "Unknown", 1: "Macro", 2: "Close view", 3: "Distant view",
	}
	labelsAltitudeRef = map[uint32]string{
		0: "Sea level", 1: "Sea level reference",
	}
	labelsDifferential = map[uint32]string{
		0: "Without differential correction", 1: "Differential correction applied",
	}
	labelsComponents = map[uint32]string{
		0: "-", 1: "Y", 2: "Cb", 3: "Cr", 4: "R", 5: "G", 6: "B",
	}
)

var mainTags = []TagInfo{
	{Tag: TagImageWidth, Name: "ImageWidth", Title: "Image Width",
		Description: "The number of columns of image data, equal to the number of pixels per row.",
		Formats: fmtShortLong, Components: 1, support: both(mmmn)},
	{Tag: TagImageLength, Name: "ImageLength", Title: "Image Length",
		Description: "The number of rows of image data.",
		Formats: fmtShortLong, Components: 1, support: both(mmmn)},
	{Tag: TagBitsPerSample, Name: "BitsPerSample", Title: "Bits per Sample",
		Description: "The number of bits per image component.",
		Formats: fmtShort, support: both(mmmn)},
	{Tag: TagCompression, Name: "Compression", Title: "Compression",
		Description: "The compression scheme used for the image data.",
		Formats: fmtShort, Components: 1, Labels: labelsCompression,
		support: split(mmmn, mmmm)},
	{Tag: TagPhotometricInterpretation, Name: "PhotometricInterpretation", Title: "Photometric Interpretation",
		Description: "The pixel composition.",
		Formats: fmtShort, Components: 1, Labels: labelsPhotometric, support: both(mmmn)},
	{Tag: TagImageDescription, Name: "ImageDescription", Title: "Image Description",
		Description: "A character string giving the title of the image.",
		Formats: fmtASCII, support: both(oooo)},
	{Tag: TagMake, Name: "Make", Title: "Manufacturer",
		Description: "The manufacturer of the recording equipment.",
		Formats: fmtASCII, support: both(oooo)},
	{Tag: TagModel, Name: "Model", Title: "Model",
		Description: "The model name or model number of the equipment.",
		Formats: fmtASCII, support: both(oooo)},
	{Tag: TagStripOffsets, Name: "StripOffsets", Title: "Strip Offsets",
		Description: "For each strip, the byte offset of that strip.",
		Formats: fmtShortLong, support: both(mmmn)},
	{Tag: TagOrientation, Name: "Orientation", Title: "Orientation",
		Description: "The image orientation viewed in terms of rows and columns.",
		Formats: fmtShort, Components: 1, Labels: labelsOrientation, support: both(oooo)},
	{Tag: TagSamplesPerPixel, Name: "SamplesPerPixel", Title: "Samples per Pixel",
		Description: "The number of components per pixel.",
		Formats: fmtShort, Components: 1, support: both(mmmn)},
	{Tag: TagRowsPerStrip, Name: "RowsPerStrip", Title: "Rows per Strip",
		Description: "The number of rows per strip.",
		Formats: fmtShortLong, Components: 1, support: both(mmmn)},
	{Tag: TagStripByteCounts, Name: "StripByteCounts", Title: "Strip Byte Count",
		Description: "The total number of bytes in each strip.",
		Formats: fmtShortLong, support: both(mmmn)},
	{Tag: TagXResolution, Name: "XResolution", Title: "X-Resolution",
		Description: "The number of pixels per ResolutionUnit in the ImageWidth direction.",
		Formats: fmtRational, Components: 1, Default: URational{{Num: 72, Den: 1}},
		support: both(mmmm)},
	{Tag: TagYResolution, Name: "YResolution", Title: "Y-Resolution",
		Description: "The number of pixels per ResolutionUnit in the ImageLength direction.",
		Formats: fmtRational, Components: 1, Default: URational{{Num: 72, Den: 1}},
		support: both(mmmm)},
	{Tag: TagPlanarConfiguration, Name: "PlanarConfiguration", Title: "Planar Configuration",
		Description: "Indicates whether pixel components are recorded in chunky or planar format.",
		Formats: fmtShort, Components: 1, Labels: labelsPlanar, support: both(omon)},
	{Tag: TagResolutionUnit, Name: "ResolutionUnit", Title: "Resolution Unit",
		Description: "The unit for measuring XResolution and YResolution.",
		Formats: fmtShort, Components: 1, Labels: labelsResolutionUnit, Default: U16{2},
		support: both(mmmm)},
	{Tag: TagTransferFunction, Name: "TransferFunction", Title: "Transfer Function",
		Description: "A transfer function for the image, described in tabular style.",
		Formats: fmtShort, Components: 3 * 256, support: both(oooo)},
	{Tag: TagSoftware, Name: "Software", Title: "Software",
		Description: "The name and version of the software or firmware used to generate the image.",
		Formats: fmtASCII, support: both(oooo)},
	{Tag: TagDateTime, Name: "DateTime", Title: "Date and Time",
		Description: "The date and time of image creation, as YYYY:MM:DD HH:MM:SS.",
		Formats: fmtASCII, Components: 20, support: both(oooo)},
	{Tag: TagArtist, Name: "Artist", Title: "Artist",
		Description: "The name of the camera owner, photographer or image creator.",
		Formats: fmtASCII, support: both(oooo)},
	{Tag: TagWhitePoint, Name: "WhitePoint", Title: "White Point Chromaticity",
		Description: "The chromaticity of the white point of the image.",
		Formats: fmtRational, Components: 2, support: both(oooo)},
	{Tag: TagPrimaryChromaticities, Name: "PrimaryChromaticities", Title: "Primary Chromaticities",
		Description: "The chromaticity of the three primary colors of the image.",
		Formats: fmtRational, Components: 6, support: both(oooo)},
	{Tag: TagJPEGInterchangeFormat, Name: "JPEGInterchangeFormat", Title: "JPEG Interchange Format",
		Description: "The offset to the start byte of compressed thumbnail data.",
		Formats: fmtLong, Components: 1, support: split(supportSpec{lvN, lvN, lvN, lvN}, nnnm)},
	{Tag: TagJPEGInterchangeFormatLength, Name: "JPEGInterchangeFormatLength", Title: "JPEG Interchange Format Length",
		Description: "The number of bytes of compressed thumbnail data.",
		Formats: fmtLong, Components: 1, support: split(supportSpec{lvN, lvN, lvN, lvN}, nnnm)},
	{Tag: TagYCbCrCoefficients, Name: "YCbCrCoefficients", Title: "YCbCr Coefficients",
		Description: "The matrix coefficients for transformation from RGB to YCbCr image data.",
		Formats: fmtRational, Components: 3, support: both(oooo)},
	{Tag: TagYCbCrSubSampling, Name: "YCbCrSubSampling", Title: "YCbCr Sub-Sampling",
		Description: "The sampling ratio of chrominance components in relation to the luminance component.",
		Formats: fmtShort, Components: 2, support: both(nnmn)},
	{Tag: TagYCbCrPositioning, Name: "YCbCrPositioning", Title: "YCbCr Positioning",
		Description: "The position of chrominance components in relation to the luminance component.",
		Formats: fmtShort, Components: 1, Labels: labelsYCbCrPositioning, Default: U16{1},
		support: split(nnmm, nnoo)},
	{Tag: TagReferenceBlackWhite, Name: "ReferenceBlackWhite", Title: "Reference Black/White",
		Description: "The reference black point value and reference white point value.",
		Formats: fmtRational, Components: 6, support: both(oooo)},
	{Tag: TagCopyright, Name: "Copyright", Title: "Copyright",
		Description: "Copyright information.",
		Formats: fmtASCII, support: both(oooo)},
	{Tag: TagExifIFDPointer, Name: "ExifIFDPointer", Title: "Exif IFD Pointer",
		Description: "A pointer to the EXIF IFD.",
		Formats: fmtLong, Components: 1, support: in(IFDImage, oooo)},
	{Tag: TagGPSInfoIFDPointer, Name: "GPSInfoIFDPointer", Title: "GPS Info IFD Pointer",
		Description: "A pointer to the GPS IFD.",
		Formats: fmtLong, Components: 1, support: in(IFDImage, oooo)},

	{Tag: TagExposureTime, Name: "ExposureTime", Title: "Exposure Time",
		Description: "Exposure time, given in seconds.",
		Formats: fmtRational, Components: 1, support: in(IFDExif, oooo)},
	{Tag: TagFNumber, Name: "FNumber", Title: "F-Number",
		Description: "The F number.",
		Formats: fmtRational, Components: 1, support: in(IFDExif, oooo)},
	{Tag: TagExposureProgram, Name: "ExposureProgram", Title: "Exposure Program",
		Description: "The class of the program used by the camera to set exposure.",
		Formats: fmtShort, Components: 1, Labels: labelsExposureProgram, support: in(IFDExif, oooo)},
	{Tag: TagSpectralSensitivity, Name: "SpectralSensitivity", Title: "Spectral Sensitivity",
		Description: "The spectral sensitivity of each channel of the camera used.",
		Formats: fmtASCII, support: in(IFDExif, oooo)},
	{Tag: TagISOSpeedRatings, Name: "ISOSpeedRatings", Title: "ISO Speed Ratings",
		Description: "The ISO speed and ISO latitude of the camera or input device.",
		Formats: fmtShort, support: in(IFDExif, oooo)},
	{Tag: TagOECF, Name: "OECF", Title: "Opto-Electronic Conversion Function",
		Description: "The opto-electronic conversion function specified in ISO 14524.",
		Formats: fmtUndefined, support: in(IFDExif, oooo)},
	{Tag: TagExifVersion, Name: "ExifVersion", Title: "Exif Version",
		Description: "The version of the EXIF standard supported.",
		Formats: fmtUndefined, Components: 4, Default: Undefined("0230"),
		support: in(IFDExif, mmmm)},
	{Tag: TagDateTimeOriginal, Name: "DateTimeOriginal", Title: "Date and Time (Original)",
		Description: "The date and time when the original image data was generated.",
		Formats: fmtASCII, Components: 20, support: in(IFDExif, oooo)},
	{Tag: TagDateTimeDigitized, Name: "DateTimeDigitized", Title: "Date and Time (Digitized)",
		Description: "The date and time when the image was stored as digital data.",
		Formats: fmtASCII, Components: 20, support: in(IFDExif, oooo)},
	{Tag: TagOffsetTime, Name: "OffsetTime", Title: "Offset Time",
		Description: "The UTC offset of DateTime, as +HH:MM or -HH:MM.",
		Formats: fmtASCII, Components: 7, support: in(IFDExif, oooo)},
	{Tag: TagOffsetTimeOriginal, Name: "OffsetTimeOriginal", Title: "Offset Time (Original)",
		Description: "The UTC offset of DateTimeOriginal.",
		Formats: fmtASCII, Components: 7, support: in(IFDExif, oooo)},
	{Tag: TagOffsetTimeDigitized, Name: "OffsetTimeDigitized", Title: "Offset Time (Digitized)",
		Description: "The UTC offset of DateTimeDigitized.",
		Formats: fmtASCII, Components: 7, support: in(IFDExif, oooo)},
	{Tag: TagComponentsConfiguration, Name: "ComponentsConfiguration", Title: "Components Configuration",
		Description: "The meaning of each component of compressed data.",
		Formats: fmtUndefined, Components: 4, Default: Undefined{1, 2, 3, 0}, Labels: labelsComponents,
		support: in(IFDExif, nnnm)},
	{Tag: TagCompressedBitsPerPixel, Name: "CompressedBitsPerPixel", Title: "Compressed Bits per Pixel",
		Description: "The compression mode used for a compressed image, in bits per pixel.",
		Formats: fmtRational, Components: 1, support: in(IFDExif, nnno)},
	{Tag: TagShutterSpeedValue, Name: "ShutterSpeedValue", Title: "Shutter Speed",
		Description: "Shutter speed in APEX units.",
		Formats: fmtSRational, Components: 1, support: in(IFDExif, oooo)},
	{Tag: TagApertureValue, Name: "ApertureValue", Title: "Aperture",
		Description: "The lens aperture in APEX units.",
		Formats: fmtRational, Components: 1, support: in(IFDExif, oooo)},
	{Tag: TagBrightnessValue, Name: "BrightnessValue", Title: "Brightness",
		Description: "The value of brightness in APEX units.",
		Formats: fmtSRational, Components: 1, support: in(IFDExif, oooo)},
	{Tag: TagExposureBiasValue, Name: "ExposureBiasValue", Title: "Exposure Bias",
		Description: "The exposure bias in APEX units.",
		Formats: fmtSRational, Components: 1, support: in(IFDExif, oooo)},
	{Tag: TagMaxApertureValue, Name: "MaxApertureValue", Title: "Maximum Aperture Value",
		Description: "The smallest F number of the lens in APEX units.",
		Formats: fmtRational, Components: 1, support: in(IFDExif, oooo)},
	{Tag: TagSubjectDistance, Name: "SubjectDistance", Title: "Subject Distance",
		Description: "The distance to the subject, given in meters.",
		Formats: fmtRational, Components: 1, support: in(IFDExif, oooo)},
	{Tag: TagMeteringMode, Name: "MeteringMode", Title: "Metering Mode",
		Description: "The metering mode.",
		Formats: fmtShort, Components: 1, Labels: labelsMeteringMode, support: in(IFDExif, oooo)},
	{Tag: TagLightSource, Name: "LightSource", Title: "Light Source",
		Description: "The kind of light source.",
		Formats: fmtShort, Components: 1, Labels: labelsLightSource, support: in(IFDExif, oooo)},
	{Tag: TagFlash, Name: "Flash", Title: "Flash",
		Description: "The status of flash when the image was shot.",
		Formats: fmtShort, Components: 1, Labels: labelsFlash, support: in(IFDExif, oooo)},
	{Tag: TagFocalLength, Name: "FocalLength", Title: "Focal Length",
		Description: "The actual focal length of the lens, in mm.",
		Formats: fmtRational, Components: 1, support: in(IFDExif, oooo)},
	{Tag: TagSubjectArea, Name: "SubjectArea", Title: "Subject Area",
		Description: "The location and area of the main subject in the overall scene.",
		Formats: fmtShort, support: in(IFDExif, oooo)},
	{Tag: TagMakerNote, Name: "MakerNote", Title: "Maker Note",
		Description: "Manufacturer-specific information.",
		Formats: fmtUndefined, support: in(IFDExif, oooo)},
	{Tag: TagUserComment, Name: "UserComment", Title: "User Comment",
		Description: "Keywords or comments on the image, prefixed by an 8-byte character code.",
		Formats: fmtUndefined, support: in(IFDExif, oooo)},
	{Tag: TagSubSecTime, Name: "SubSecTime", Title: "Sub-second Time",
		Description: "Fractions of seconds for the DateTime tag.",
		Formats: fmtASCII, support: in(IFDExif, oooo)},
	{Tag: TagSubSecTimeOriginal, Name: "SubSecTimeOriginal", Title: "Sub-second Time (Original)",
		Description: "Fractions of seconds for the DateTimeOriginal tag.",
		Formats: fmtASCII, support: in(IFDExif, oooo)},
	{Tag: TagSubSecTimeDigitized, Name: "SubSecTimeDigitized", Title: "Sub-second Time (Digitized)",
		Description: "Fractions of seconds for the DateTimeDigitized tag.",
		Formats: fmtASCII, support: in(IFDExif, oooo)},
	{Tag: TagFlashPixVersion, Name: "FlashPixVersion", Title: "FlashPixVersion",
		Description: "The FlashPix format version supported by an FPXR file.",
		Formats: fmtUndefined, Components: 4, Default: Undefined("0100"),
		support: in(IFDExif, mmmm)},
	{Tag: TagColorSpace, Name: "ColorSpace", Title: "Color Space",
		Description: "The color space information tag.",
		Formats: fmtShort, Components: 1, Labels: labelsColorSpace, Default: U16{1},
		support: in(IFDExif, mmmm)},
	{Tag: TagPixelXDimension, Name: "PixelXDimension", Title: "Pixel X Dimension",
		Description: "The valid width of the meaningful compressed image.",
		Formats: fmtShortLong, Components: 1, support: in(IFDExif, nnnm)},
	{Tag: TagPixelYDimension, Name: "PixelYDimension", Title: "Pixel Y Dimension",
		Description: "The valid height of the meaningful compressed image.",
		Formats: fmtShortLong, Components: 1, support: in(IFDExif, nnnm)},
	{Tag: TagRelatedSoundFile, Name: "RelatedSoundFile", Title: "Related Sound File",
		Description: "The name of an audio file related to the image data.",
		Formats: fmtASCII, Components: 13, support: in(IFDExif, oooo)},
	{Tag: TagInteroperabilityIFDPointer, Name: "InteroperabilityIFDPointer", Title: "Interoperability IFD Pointer",
		Description: "A pointer to the Interoperability IFD.",
		Formats: fmtLong, Components: 1, support: in(IFDExif, oooo)},
	{Tag: TagFocalPlaneXResolution, Name: "FocalPlaneXResolution", Title: "Focal Plane X-Resolution",
		Description: "The number of pixels in the image width direction per FocalPlaneResolutionUnit.",
		Formats: fmtRational, Components: 1, support: in(IFDExif, oooo)},
	{Tag: TagFocalPlaneYResolution, Name: "FocalPlaneYResolution", Title: "Focal Plane Y-Resolution",
		Description: "The number of pixels in the image height direction per FocalPlaneResolutionUnit.",
		Formats: fmtRational, Components: 1, support: in(IFDExif, oooo)},
	{Tag: TagFocalPlaneResolutionUnit, Name: "FocalPlaneResolutionUnit", Title: "Focal Plane Resolution Unit",
		Description: "The unit for measuring FocalPlaneXResolution and FocalPlaneYResolution.",
		Formats: fmtShort, Components: 1, Labels: labelsResolutionUnit, support: in(IFDExif, oooo)},
	{Tag: TagSensingMethod, Name: "SensingMethod", Title: "Sensing Method",
		Description: "The image sensor type on the camera or input device.",
		Formats: fmtShort, Components: 1, Labels: labelsSensingMethod, support: in(IFDExif, oooo)},
	{Tag: TagFileSource, Name: "FileSource", Title: "File Source",
		Description: "The image source.",
		Formats: fmtUndefined, Components: 1, Labels: labelsFileSource, support: in(IFDExif, oooo)},
	{Tag: TagSceneType, Name: "SceneType", Title: "Scene Type",
		Description: "The type of scene.",
		Formats: fmtUndefined, Components: 1, Labels: labelsSceneType, support: in(IFDExif, oooo)},
	{Tag: TagCustomRendered, Name: "CustomRendered", Title: "Custom Rendered",
		Description: "The use of special processing on image data.",
		Formats: fmtShort, Components: 1, Labels: labelsCustomRendered, support: in(IFDExif, oooo)},
	{Tag: TagExposureMode, Name: "ExposureMode", Title: "Exposure Mode",
		Description: "The exposure mode set when the image was shot.",
		Formats: fmtShort, Components: 1, Labels: labelsExposureMode, support: in(IFDExif, oooo)},
	{Tag: TagWhiteBalance, Name: "WhiteBalance", Title: "White Balance",
		Description: "The white balance mode set when the image was shot.",
		Formats: fmtShort, Components: 1, Labels: labelsWhiteBalance, support: in(IFDExif, oooo)},
	{Tag: TagDigitalZoomRatio, Name: "DigitalZoomRatio", Title: "Digital Zoom Ratio",
		Description: "The digital zoom ratio when the image was shot.",
		Formats: fmtRational, Components: 1, support: in(IFDExif, oooo)},
	{Tag: TagFocalLengthIn35mmFilm, Name: "FocalLengthIn35mmFilm", Title: "Focal Length in 35mm Film",
		Description: "The equivalent focal length assuming a 35mm film camera, in mm.",
		Formats: fmtShort, Components: 1, support: in(IFDExif, oooo)},
	{Tag: TagSceneCaptureType, Name: "SceneCaptureType", Title: "Scene Capture Type",
		Description: "The type of scene that was shot.",
		Formats: fmtShort, Components: 1, Labels: labelsSceneCaptureType, support: in(IFDExif, oooo)},
	{Tag: TagGainControl, Name: "GainControl", Title: "Gain Control",
		Description: "The degree of overall image gain adjustment.",
		Formats: fmtShort, Components: 1, Labels: labelsGainControl, support: in(IFDExif, oooo)},
	{Tag: TagContrast, Name: "Contrast", Title: "Contrast",
		Description: "The direction of contrast processing applied by the camera.",
		Formats: fmtShort, Components: 1, Labels: labelsContrast, support: in(IFDExif, oooo)},
	{Tag: TagSaturation, Name: "Saturation", Title: "Saturation",
		Description: "The direction of saturation processing applied by the camera.",
		Formats: fmtShort, Components: 1, Labels: labelsSaturation, support: in(IFDExif, oooo)},
	{Tag: TagSharpness, Name: "Sharpness", Title: "Sharpness",
		Description: "The direction of sharpness processing applied by the camera.",
		Formats: fmtShort, Components: 1, Labels: labelsContrast, support: in(IFDExif, oooo)},
	{Tag: TagSubjectDistanceRange, Name: "SubjectDistanceRange", Title: "Subject Distance Range",
		Description: "The distance to the subject.",
		Formats: fmtShort, Components: 1, Labels: labelsSubjectDistanceRange, support: in(IFDExif, oooo)},
	{Tag: TagImageUniqueID, Name: "ImageUniqueID", Title: "Image Unique ID",
		Description: "An identifier assigned uniquely to each image, as a 128-bit hex string.",
		Formats: fmtASCII, Components: 33, support: in(IFDExif, oooo)},
	{Tag: TagCameraOwnerName, Name: "CameraOwnerName", Title: "Camera Owner Name",
		Description: "The owner of the camera used to photograph the image.",
		Formats: fmtASCII, support: in(IFDExif, oooo)},
	{Tag: TagBodySerialNumber, Name: "BodySerialNumber", Title: "Body Serial Number",
		Description: "The serial number of the body of the camera.",
		Formats: fmtASCII, support: in(IFDExif, oooo)},
	{Tag: TagLensSpecification, Name: "LensSpecification", Title: "Lens Specification",
		Description: "Minimum and maximum focal length and minimum F number at each.",
		Formats: fmtRational, Components: 4, support: in(IFDExif, oooo)},
	{Tag: TagLensMake, Name: "LensMake", Title: "Lens Make",
		Description: "The lens manufacturer.",
		Formats: fmtASCII, support: in(IFDExif, oooo)},
	{Tag: TagLensModel, Name: "LensModel", Title: "Lens Model",
		Description: "The lens's model name and model number.",
		Formats: fmtASCII, support: in(IFDExif, oooo)},
}

var gpsTags = []TagInfo{
	{Tag: TagGPSVersionID, Name: "GPSVersionID", Title: "GPS Tag Version",
		Description: "The version of the GPS IFD, as four bytes (2.3.0.0).",
		Formats: fmtByte, Components: 4, Default: U8{2, 3, 0, 0}, support: in(IFDGPS, mmmm)},
	{Tag: TagGPSLatitudeRef, Name: "GPSLatitudeRef", Title: "North or South Latitude",
		Description: "Whether the latitude is north (N) or south (S).",
		Formats: fmtASCII, Components: 2, support: in(IFDGPS, oooo)},
	{Tag: TagGPSLatitude, Name: "GPSLatitude", Title: "Latitude",
		Description: "The latitude as degrees, minutes and seconds.",
		Formats: fmtRational, Components: 3, support: in(IFDGPS, oooo)},
	{Tag: TagGPSLongitudeRef, Name: "GPSLongitudeRef", Title: "East or West Longitude",
		Description: "Whether the longitude is east (E) or west (W).",
		Formats: fmtASCII, Components: 2, support: in(IFDGPS, oooo)},
	{Tag: TagGPSLongitude, Name: "GPSLongitude", Title: "Longitude",
		Description: "The longitude as degrees, minutes and seconds.",
		Formats: fmtRational, Components: 3, support: in(IFDGPS, oooo)},
	{Tag: TagGPSAltitudeRef, Name: "GPSAltitudeRef", Title: "Altitude Reference",
		Description: "The altitude used as the reference altitude.",
		Formats: fmtByte, Components: 1, Labels: labelsAltitudeRef, support: in(IFDGPS, oooo)},
	{Tag: TagGPSAltitude, Name: "GPSAltitude", Title: "Altitude",
		Description: "The altitude in meters based on GPSAltitudeRef.",
		Formats: fmtRational, Components: 1, support: in(IFDGPS, oooo)},
	{Tag: TagGPSTimeStamp, Name: "GPSTimeStamp", Title: "GPS Time (Atomic Clock)",
		Description: "The UTC time as hour, minute and second.",
		Formats: fmtRational, Components: 3, support: in(IFDGPS, oooo)},
	{Tag: TagGPSSatellites, Name: "GPSSatellites", Title: "GPS Satellites",
		Description: "The GPS satellites used for measurements.",
		Formats: fmtASCII, support: in(IFDGPS, oooo)},
	{Tag: TagGPSStatus, Name: "GPSStatus", Title: "GPS Receiver Status",
		Description: "The status of the GPS receiver: A (in progress) or V (interoperability).",
		Formats: fmtASCII, Components: 2, support: in(IFDGPS, oooo)},
	{Tag: TagGPSMeasureMode, Name: "GPSMeasureMode", Title: "GPS Measurement Mode",
		Description: "The GPS measurement mode: 2 (two-dimensional) or 3 (three-dimensional).",
		Formats: fmtASCII, Components: 2, support: in(IFDGPS, oooo)},
	{Tag: TagGPSDOP, Name: "GPSDOP", Title: "Measurement Precision",
		Description: "The GPS dilution of precision.",
		Formats: fmtRational, Components: 1, support: in(IFDGPS, oooo)},
	{Tag: TagGPSSpeedRef, Name: "GPSSpeedRef", Title: "Speed Unit",
		Description: "The unit of GPSSpeed: K, M or N.",
		Formats: fmtASCII, Components: 2, support: in(IFDGPS, oooo)},
	{Tag: TagGPSSpeed, Name: "GPSSpeed", Title: "Speed of GPS Receiver",
		Description: "The speed of GPS receiver movement.",
		Formats: fmtRational, Components: 1, support: in(IFDGPS, oooo)},
	{Tag: TagGPSTrackRef, Name: "GPSTrackRef", Title: "Reference for Direction of Movement",
		Description: "The reference for the direction of movement: T (true) or M (magnetic).",
		Formats: fmtASCII, Components: 2, support: in(IFDGPS, oooo)},
	{Tag: TagGPSTrack, Name: "GPSTrack", Title: "Direction of Movement",
		Description: "The direction of GPS receiver movement, from 0.00 to 359.99.",
		Formats: fmtRational, Components: 1, support: in(IFDGPS, oooo)},
	{Tag: TagGPSImgDirectionRef, Name: "GPSImgDirectionRef", Title: "GPS Image Direction Reference",
		Description: "The reference for the direction of the image: T or M.",
		Formats: fmtASCII, Components: 2, support: in(IFDGPS, oooo)},
	{Tag: TagGPSImgDirection, Name: "GPSImgDirection", Title: "GPS Image Direction",
		Description: "The direction of the image when it was captured.",
		Formats: fmtRational, Components: 1, support: in(IFDGPS, oooo)},
	{Tag: TagGPSMapDatum, Name: "GPSMapDatum", Title: "Geodetic Survey Data Used",
		Description: "The geodetic survey data used by the GPS receiver.",
		Formats: fmtASCII, support: in(IFDGPS, oooo)},
	{Tag: TagGPSDestLatitudeRef, Name: "GPSDestLatitudeRef", Title: "Reference for Latitude of Destination",
		Description: "Whether the destination latitude is north or south.",
		Formats: fmtASCII, Components: 2, support: in(IFDGPS, oooo)},
	{Tag: TagGPSDestLatitude, Name: "GPSDestLatitude", Title: "Latitude of Destination",
		Description: "The latitude of the destination point.",
		Formats: fmtRational, Components: 3, support: in(IFDGPS, oooo)},
	{Tag: TagGPSDestLongitudeRef, Name: "GPSDestLongitudeRef", Title: "Reference for Longitude of Destination",
		Description: "Whether the destination longitude is east or west.",
		Formats: fmtASCII, Components: 2, support: in(IFDGPS, oooo)},
	{Tag: TagGPSDestLongitude, Name: "GPSDestLongitude", Title: "Longitude of Destination",
		Description: "The longitude of the destination point.",
		Formats: fmtRational, Components: 3, support: in(IFDGPS, oooo)},
	{Tag: TagGPSDestBearingRef, Name: "GPSDestBearingRef", Title: "Reference for Bearing of Destination",
		Description: "The reference used for the bearing to the destination point.",
		Formats: fmtASCII, Components: 2, support: in(IFDGPS, oooo)},
	{Tag: TagGPSDestBearing, Name: "GPSDestBearing", Title: "Bearing of Destination",
		Description: "The bearing to the destination point.",
		Formats: fmtRational, Components: 1, support: in(IFDGPS, oooo)},
	{Tag: TagGPSDestDistanceRef, Name: "GPSDestDistanceRef", Title: "Reference for Distance to Destination",
		Description: "The unit of GPSDestDistance.",
		Formats: fmtASCII, Components: 2, support: in(IFDGPS, oooo)},
	{Tag: TagGPSDestDistance, Name: "GPSDestDistance", Title: "Distance to Destination",
		Description: "The distance to the destination point.",
		Formats: fmtRational, Components: 1, support: in(IFDGPS, oooo)},
	{Tag: TagGPSProcessingMethod, Name: "GPSProcessingMethod", Title: "Name of GPS Processing Method",
		Description: "The name of the method used for location finding.",
		Formats: fmtUndefined, support: in(IFDGPS, oooo)},
	{Tag: TagGPSAreaInformation, Name: "GPSAreaInformation", Title: "Name of GPS Area",
		Description: "The name of the GPS area.",
		Formats: fmtUndefined, support: in(IFDGPS, oooo)},
	{Tag: TagGPSDateStamp, Name: "GPSDateStamp", Title: "GPS Date",
		Description: "The date relative to UTC, as YYYY:MM:DD.",
		Formats: fmtASCII, Components: 11, support: in(IFDGPS, oooo)},
	{Tag: TagGPSDifferential, Name: "GPSDifferential", Title: "GPS Differential Correction",
		Description: "Whether differential correction was applied to the GPS receiver.",
		Formats: fmtShort, Components: 1, Labels: labelsDifferential, support: in(IFDGPS, oooo)},
	{Tag: TagGPSHPositioningError, Name: "GPSHPositioningError", Title: "GPS Horizontal Positioning Error",
		Description: "The horizontal positioning error in meters.",
		Formats: fmtRational, Components: 1, support: in(IFDGPS, oooo)},
}

var interopTags = []TagInfo{
	{Tag: TagInteroperabilityIndex, Name: "InteroperabilityIndex", Title: "Interoperability Index",
		Description: "The identification of the interoperability rule, such as R98.",
		Formats: fmtASCII, support: in(IFDInteroperability, oooo)},
	{Tag: TagInteroperabilityVersion, Name: "InteroperabilityVersion", Title: "Interoperability Version",
		Description: "The version of the interoperability rule.",
		Formats: fmtUndefined, Components: 4, support: in(IFDInteroperability, oooo)},
}
