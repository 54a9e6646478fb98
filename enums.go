package ktx2

import (
	"fmt"
	"strings"
)

// SupercompressionScheme identifies the supercompression applied to level data.
// Unknown values are preserved as-is.
type SupercompressionScheme uint32

const (
	SupercompressionNone      SupercompressionScheme = 0
	SupercompressionBasisLZ   SupercompressionScheme = 1
	SupercompressionZstandard SupercompressionScheme = 2
	SupercompressionZLIB      SupercompressionScheme = 3
)

var supercompressionNames = map[SupercompressionScheme]string{
	SupercompressionNone:      "None",
	SupercompressionBasisLZ:   "BasisLZ",
	SupercompressionZstandard: "Zstandard",
	SupercompressionZLIB:      "ZLIB",
}

func (s SupercompressionScheme) String() string {
	if name, ok := supercompressionNames[s]; ok {
		return name
	}

	return fmt.Sprintf("SupercompressionScheme(%d)", uint32(s))
}

// Known reports whether s is one of the registered schemes.
func (s SupercompressionScheme) Known() bool {
	_, ok := supercompressionNames[s]
	return ok
}

// ColorModel is the Khronos data format color model. Zero is unspecified.
type ColorModel uint8

const (
	ColorModelUnspecified ColorModel = 0
	ColorModelRGBSDA      ColorModel = 1
	ColorModelYUVSDA      ColorModel = 2
	ColorModelYIQSDA      ColorModel = 3
	ColorModelLABSDA      ColorModel = 4
	ColorModelCMYKA       ColorModel = 5
	ColorModelXYZW        ColorModel = 6
	ColorModelHSVAAng     ColorModel = 7
	ColorModelHSLAAng     ColorModel = 8
	ColorModelHSVAHex     ColorModel = 9
	ColorModelHSLAHex     ColorModel = 10
	ColorModelYCgCoA      ColorModel = 11
	ColorModelYcCbcCrc    ColorModel = 12
	ColorModelICtCp       ColorModel = 13
	ColorModelCIEXYZ      ColorModel = 14
	ColorModelCIEXYY      ColorModel = 15
	ColorModelBC1A        ColorModel = 128
	ColorModelBC2         ColorModel = 129
	ColorModelBC3         ColorModel = 130
	ColorModelBC4         ColorModel = 131
	ColorModelBC5         ColorModel = 132
	ColorModelBC6H        ColorModel = 133
	ColorModelBC7         ColorModel = 134
	ColorModelETC1        ColorModel = 160
	ColorModelETC2        ColorModel = 161
	ColorModelASTC        ColorModel = 162
	ColorModelETC1S       ColorModel = 163
	ColorModelPVRTC       ColorModel = 164
	ColorModelPVRTC2      ColorModel = 165
	ColorModelUASTC       ColorModel = 166
)

var colorModelNames = map[ColorModel]string{
	ColorModelRGBSDA:   "RGBSDA",
	ColorModelYUVSDA:   "YUVSDA",
	ColorModelYIQSDA:   "YIQSDA",
	ColorModelLABSDA:   "LABSDA",
	ColorModelCMYKA:    "CMYKA",
	ColorModelXYZW:     "XYZW",
	ColorModelHSVAAng:  "HSVA_ANG",
	ColorModelHSLAAng:  "HSLA_ANG",
	ColorModelHSVAHex:  "HSVA_HEX",
	ColorModelHSLAHex:  "HSLA_HEX",
	ColorModelYCgCoA:   "YCgCoA",
	ColorModelYcCbcCrc: "YcCbcCrc",
	ColorModelICtCp:    "ICtCp",
	ColorModelCIEXYZ:   "CIEXYZ",
	ColorModelCIEXYY:   "CIEXYY",
	ColorModelBC1A:     "BC1A",
	ColorModelBC2:      "BC2",
	ColorModelBC3:      "BC3",
	ColorModelBC4:      "BC4",
	ColorModelBC5:      "BC5",
	ColorModelBC6H:     "BC6H",
	ColorModelBC7:      "BC7",
	ColorModelETC1:     "ETC1",
	ColorModelETC2:     "ETC2",
	ColorModelASTC:     "ASTC",
	ColorModelETC1S:    "ETC1S",
	ColorModelPVRTC:    "PVRTC",
	ColorModelPVRTC2:   "PVRTC2",
	ColorModelUASTC:    "UASTC",
}

func (m ColorModel) String() string {
	if m == ColorModelUnspecified {
		return "Unspecified"
	}
	if name, ok := colorModelNames[m]; ok {
		return name
	}

	return fmt.Sprintf("ColorModel(%d)", uint8(m))
}

// Known reports whether m is a registered, specified color model.
func (m ColorModel) Known() bool {
	_, ok := colorModelNames[m]
	return ok
}

// ColorPrimaries is the Khronos data format color primaries. Zero is unspecified.
type ColorPrimaries uint8

const (
	ColorPrimariesUnspecified ColorPrimaries = 0
	ColorPrimariesBT709       ColorPrimaries = 1
	ColorPrimariesBT601EBU    ColorPrimaries = 2
	ColorPrimariesBT601SMPTE  ColorPrimaries = 3
	ColorPrimariesBT2020      ColorPrimaries = 4
	ColorPrimariesCIEXYZ      ColorPrimaries = 5
	ColorPrimariesACES        ColorPrimaries = 6
	ColorPrimariesACESCC      ColorPrimaries = 7
	ColorPrimariesNTSC1953    ColorPrimaries = 8
	ColorPrimariesPAL525      ColorPrimaries = 9
	ColorPrimariesDisplayP3   ColorPrimaries = 10
	ColorPrimariesAdobeRGB    ColorPrimaries = 11
)

var colorPrimariesNames = map[ColorPrimaries]string{
	ColorPrimariesBT709:      "BT709",
	ColorPrimariesBT601EBU:   "BT601_EBU",
	ColorPrimariesBT601SMPTE: "BT601_SMPTE",
	ColorPrimariesBT2020:     "BT2020",
	ColorPrimariesCIEXYZ:     "CIEXYZ",
	ColorPrimariesACES:       "ACES",
	ColorPrimariesACESCC:     "ACESCC",
	ColorPrimariesNTSC1953:   "NTSC1953",
	ColorPrimariesPAL525:     "PAL525",
	ColorPrimariesDisplayP3:  "DISPLAYP3",
	ColorPrimariesAdobeRGB:   "ADOBERGB",
}

func (p ColorPrimaries) String() string {
	if p == ColorPrimariesUnspecified {
		return "Unspecified"
	}
	if name, ok := colorPrimariesNames[p]; ok {
		return name
	}

	return fmt.Sprintf("ColorPrimaries(%d)", uint8(p))
}

// Known reports whether p is a registered, specified set of primaries.
func (p ColorPrimaries) Known() bool {
	_, ok := colorPrimariesNames[p]
	return ok
}

// TransferFunction is the Khronos data format transfer function. Zero is unspecified.
type TransferFunction uint8

const (
	TransferUnspecified TransferFunction = 0
	TransferLinear      TransferFunction = 1
	TransferSRGB        TransferFunction = 2
	TransferITU         TransferFunction = 3
	TransferNTSC        TransferFunction = 4
	TransferSLog        TransferFunction = 5
	TransferSLog2       TransferFunction = 6
	TransferBT1886      TransferFunction = 7
	TransferHLGOETF     TransferFunction = 8
	TransferHLGEOTF     TransferFunction = 9
	TransferPQEOTF      TransferFunction = 10
	TransferPQOETF      TransferFunction = 11
	TransferDCIP3       TransferFunction = 12
	TransferPALOETF     TransferFunction = 13
	TransferPAL625EOTF  TransferFunction = 14
	TransferST240       TransferFunction = 15
	TransferACESCC      TransferFunction = 16
	TransferACESCCT     TransferFunction = 17
	TransferAdobeRGB    TransferFunction = 18
)

var transferNames = map[TransferFunction]string{
	TransferLinear:     "LINEAR",
	TransferSRGB:       "SRGB",
	TransferITU:        "ITU",
	TransferNTSC:       "NTSC",
	TransferSLog:       "SLOG",
	TransferSLog2:      "SLOG2",
	TransferBT1886:     "BT1886",
	TransferHLGOETF:    "HLG_OETF",
	TransferHLGEOTF:    "HLG_EOTF",
	TransferPQEOTF:     "PQ_EOTF",
	TransferPQOETF:     "PQ_OETF",
	TransferDCIP3:      "DCIP3",
	TransferPALOETF:    "PAL_OETF",
	TransferPAL625EOTF: "PAL625_EOTF",
	TransferST240:      "ST240",
	TransferACESCC:     "ACESCC",
	TransferACESCCT:    "ACESCCT",
	TransferAdobeRGB:   "ADOBERGB",
}

func (t TransferFunction) String() string {
	if t == TransferUnspecified {
		return "Unspecified"
	}
	if name, ok := transferNames[t]; ok {
		return name
	}

	return fmt.Sprintf("TransferFunction(%d)", uint8(t))
}

// Known reports whether t is a registered, specified transfer function.
func (t TransferFunction) Known() bool {
	_, ok := transferNames[t]
	return ok
}

// DataFormatFlags holds the Basic DFD flags byte.
type DataFormatFlags uint8

// FlagAlphaPremultiplied marks premultiplied alpha; its absence means straight alpha.
const FlagAlphaPremultiplied DataFormatFlags = 1

// AlphaPremultiplied reports whether color channels are premultiplied by alpha.
func (f DataFormatFlags) AlphaPremultiplied() bool {
	return f&FlagAlphaPremultiplied != 0
}

// ChannelQualifiers holds the 4-bit sample qualifier nibble.
type ChannelQualifiers uint8

const (
	QualifierLinear   ChannelQualifiers = 1 << 0
	QualifierExponent ChannelQualifiers = 1 << 1
	QualifierSigned   ChannelQualifiers = 1 << 2
	QualifierFloat    ChannelQualifiers = 1 << 3
)

// Linear reports the LINEAR qualifier (sample ignores the transfer function).
func (q ChannelQualifiers) Linear() bool { return q&QualifierLinear != 0 }

// Exponent reports the EXPONENT qualifier.
func (q ChannelQualifiers) Exponent() bool { return q&QualifierExponent != 0 }

// Signed reports the SIGNED qualifier.
func (q ChannelQualifiers) Signed() bool { return q&QualifierSigned != 0 }

// Float reports the FLOAT qualifier.
func (q ChannelQualifiers) Float() bool { return q&QualifierFloat != 0 }

func (q ChannelQualifiers) String() string {
	var parts []string
	if q.Linear() {
		parts = append(parts, "LINEAR")
	}
	if q.Exponent() {
		parts = append(parts, "EXPONENT")
	}
	if q.Signed() {
		parts = append(parts, "SIGNED")
	}
	if q.Float() {
		parts = append(parts, "FLOAT")
	}
	if len(parts) == 0 {
		return "-"
	}

	return strings.Join(parts, "|")
}

// Channel ids. Their meaning depends on the color model.
const (
	ChannelRGBSDARed     uint8 = 0
	ChannelRGBSDAGreen   uint8 = 1
	ChannelRGBSDABlue    uint8 = 2
	ChannelRGBSDAStencil uint8 = 13
	ChannelRGBSDADepth   uint8 = 14
	ChannelRGBSDAAlpha   uint8 = 15

	ChannelBC1AColor        uint8 = 0
	ChannelBC1AAlphaPresent uint8 = 1
	ChannelBC2Color         uint8 = 0
	ChannelBC2Alpha         uint8 = 15
	ChannelBC3Color         uint8 = 0
	ChannelBC3Alpha         uint8 = 15
	ChannelBC4Data          uint8 = 0
	ChannelBC5Red           uint8 = 0
	ChannelBC5Green         uint8 = 1
	ChannelBC6HColor        uint8 = 0
	ChannelBC7Color         uint8 = 0

	ChannelETC2Red   uint8 = 0
	ChannelETC2Green uint8 = 1
	ChannelETC2Color uint8 = 2
	ChannelETC2Alpha uint8 = 15

	ChannelASTCData   uint8 = 0
	ChannelPVRTCColor uint8 = 0
)
