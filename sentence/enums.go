package sentence

// Status is the position-fix validity flag carried by RMC and GLL.
type Status uint8

const (
	// StatusValid means the fix is usable ("A").
	StatusValid Status = iota
	// StatusInvalid means the fix is not usable ("V").
	StatusInvalid
)

// ParseStatus decodes the wire form of Status.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "A":
		return StatusValid, nil
	case "V":
		return StatusInvalid, nil
	}
	return 0, &EnumError{Enum: "Status", Value: s}
}

func (s Status) String() string {
	if s == StatusValid {
		return "Valid"
	}
	return "Invalid"
}

// PosMode is the NMEA fix-mode (FAA mode) indicator.
type PosMode uint8

const (
	PosModeAutonomous PosMode = iota
	PosModeDifferential
	PosModeEstimated
	PosModeFloatRTK
	PosModeManual
	PosModeNotValid
	PosModePrecise
	PosModeRTKInteger
	PosModeSimulator
)

// ParsePosMode decodes the wire form of PosMode. "V" maps to
// PosModeNotValid alongside "N".
func ParsePosMode(s string) (PosMode, error) {
	if len(s) != 1 {
		return 0, &EnumError{Enum: "PosMode", Value: s}
	}
	return posModeOf(rune(s[0]))
}

func posModeOf(c rune) (PosMode, error) {
	switch c {
	case 'A':
		return PosModeAutonomous, nil
	case 'D':
		return PosModeDifferential, nil
	case 'E':
		return PosModeEstimated, nil
	case 'F':
		return PosModeFloatRTK, nil
	case 'M':
		return PosModeManual, nil
	case 'N', 'V':
		return PosModeNotValid, nil
	case 'P':
		return PosModePrecise, nil
	case 'R':
		return PosModeRTKInteger, nil
	case 'S':
		return PosModeSimulator, nil
	}
	return 0, &EnumError{Enum: "PosMode", Value: string(c)}
}

func (m PosMode) String() string {
	switch m {
	case PosModeAutonomous:
		return "Autonomous"
	case PosModeDifferential:
		return "Differential"
	case PosModeEstimated:
		return "Estimated"
	case PosModeFloatRTK:
		return "Float RTK"
	case PosModeManual:
		return "Manual"
	case PosModeNotValid:
		return "Not Valid"
	case PosModePrecise:
		return "Precise"
	case PosModeRTKInteger:
		return "RTK Integer"
	default:
		return "Simulator"
	}
}

// Quality is the GGA position-fix quality indicator.
type Quality uint8

const (
	QualityInvalid Quality = iota
	QualityGPSFix
	QualityDifferentialGPSFix
	QualityPPSFix
	QualityRealTimeKinematic
	QualityFloatRTK
	QualityDeadReckoning
	QualityManualInput
	QualitySimulation
)

// ParseQuality decodes the wire form of Quality (digits 0-8).
func ParseQuality(s string) (Quality, error) {
	if len(s) == 1 && s[0] >= '0' && s[0] <= '8' {
		return Quality(s[0] - '0'), nil
	}
	return 0, &EnumError{Enum: "Quality", Value: s}
}

func (q Quality) String() string {
	switch q {
	case QualityInvalid:
		return "Invalid"
	case QualityGPSFix:
		return "GPS Fix"
	case QualityDifferentialGPSFix:
		return "Differential GPS Fix"
	case QualityPPSFix:
		return "PPS Fix"
	case QualityRealTimeKinematic:
		return "Real Time Kinematic"
	case QualityFloatRTK:
		return "Float RTK"
	case QualityDeadReckoning:
		return "Dead Reckoning"
	case QualityManualInput:
		return "Manual Input"
	default:
		return "Simulation"
	}
}

// SystemID identifies the GNSS constellation in GSA, GRS and GBS
// tails.
type SystemID uint8

const (
	SystemGPS SystemID = iota + 1
	SystemGLONASS
	SystemBDS
	SystemQZSS
	SystemNavIC
)

// ParseSystemID decodes the wire form of SystemID (digits 1-5).
func ParseSystemID(s string) (SystemID, error) {
	if len(s) == 1 && s[0] >= '1' && s[0] <= '5' {
		return SystemID(s[0] - '0'), nil
	}
	return 0, &EnumError{Enum: "SystemID", Value: s}
}

func (id SystemID) String() string {
	switch id {
	case SystemGPS:
		return "GPS"
	case SystemGLONASS:
		return "GLONASS"
	case SystemBDS:
		return "BDS"
	case SystemQZSS:
		return "QZSS"
	default:
		return "NavIC"
	}
}

// NavStatus is the GNS navigational-status flag.
type NavStatus uint8

const (
	NavStatusSafe NavStatus = iota
	NavStatusCaution
	NavStatusUnsafe
	NavStatusInvalid
)

// ParseNavStatus decodes the wire form of NavStatus.
func ParseNavStatus(s string) (NavStatus, error) {
	switch s {
	case "S":
		return NavStatusSafe, nil
	case "C":
		return NavStatusCaution, nil
	case "U":
		return NavStatusUnsafe, nil
	case "V":
		return NavStatusInvalid, nil
	}
	return 0, &EnumError{Enum: "NavStatus", Value: s}
}

// OpMode is the GSA operation mode.
type OpMode uint8

const (
	// OpModeManual means the receiver was forced into 2D or 3D mode.
	OpModeManual OpMode = iota
	// OpModeAutomatic means the receiver switches modes itself.
	OpModeAutomatic
)

// ParseOpMode decodes the wire form of OpMode.
func ParseOpMode(s string) (OpMode, error) {
	switch s {
	case "M":
		return OpModeManual, nil
	case "A":
		return OpModeAutomatic, nil
	}
	return 0, &EnumError{Enum: "OpMode", Value: s}
}

// NavMode is the GSA navigation (fix) mode.
type NavMode uint8

const (
	NavModeNoFix NavMode = iota + 1
	NavModeFix2D
	NavModeFix3D
)

// ParseNavMode decodes the wire form of NavMode (digits 1-3).
func ParseNavMode(s string) (NavMode, error) {
	switch s {
	case "1":
		return NavModeNoFix, nil
	case "2":
		return NavModeFix2D, nil
	case "3":
		return NavModeFix3D, nil
	}
	return 0, &EnumError{Enum: "NavMode", Value: s}
}

// ResidualMode states whether GRS residuals were used in the
// position fix or recomputed afterwards.
type ResidualMode uint8

const (
	ResidualUsedInFix ResidualMode = iota
	ResidualRecomputed
)

// ParseResidualMode decodes the wire form of ResidualMode.
func ParseResidualMode(s string) (ResidualMode, error) {
	switch s {
	case "0":
		return ResidualUsedInFix, nil
	case "1":
		return ResidualRecomputed, nil
	}
	return 0, &EnumError{Enum: "ResidualMode", Value: s}
}

// Datum is the DTM local datum code.
type Datum uint8

const (
	DatumWGS84 Datum = iota
	DatumPZ90
	DatumUserDefined
)

// ParseDatum decodes the wire form of Datum.
func ParseDatum(s string) (Datum, error) {
	switch s {
	case "W84":
		return DatumWGS84, nil
	case "P90":
		return DatumPZ90, nil
	case "999":
		return DatumUserDefined, nil
	}
	return 0, &EnumError{Enum: "Datum", Value: s}
}

// TxtType is the severity of a TXT transmission.
type TxtType uint8

const (
	TxtError TxtType = 0
	TxtWarn  TxtType = 1
	TxtInfo  TxtType = 2
	TxtUser  TxtType = 7
)

// ParseTxtType decodes the wire form of TxtType ("00".."07" on the
// wire; the one- or two-digit rendering of 0, 1, 2 or 7 is accepted).
func ParseTxtType(s string) (TxtType, error) {
	switch s {
	case "0", "00":
		return TxtError, nil
	case "1", "01":
		return TxtWarn, nil
	case "2", "02":
		return TxtInfo, nil
	case "7", "07":
		return TxtUser, nil
	}
	return 0, &EnumError{Enum: "TxtType", Value: s}
}

func (t TxtType) String() string {
	switch t {
	case TxtError:
		return "Error"
	case TxtWarn:
		return "Warn"
	case TxtInfo:
		return "Info"
	default:
		return "User"
	}
}
