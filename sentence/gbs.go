package sentence

import (
	"github.com/coregx/nmea/strparse"
)

// GBS is GNSS satellite fault detection: RAIM error estimates and the
// most likely failed satellite.
//
// References:
//   - https://gpsd.gitlab.io/gpsd/NMEA.html#_gbs_gps_satellite_fault_detection
type GBS struct {
	Talker Talker

	// Time is the UTC time of the RAIM computation.
	Time *TimeOfDay
	// ErrLat is the expected 1-sigma error in latitude, meters.
	ErrLat *float64
	// ErrLon is the expected 1-sigma error in longitude, meters.
	ErrLon *float64
	// ErrAlt is the expected 1-sigma error in altitude, meters.
	ErrAlt *float64
	// SVID is the ID of the most likely failed satellite.
	SVID *uint16
	// Prob is the probability of missed detection.
	Prob *float64
	// Bias is the estimated bias of the most likely failed satellite.
	Bias *float64
	// StdDev is the standard deviation of the bias estimate.
	StdDev *float64
	// SystemID identifies the constellation (NMEA 4.1+).
	SystemID *SystemID
	// SignalID identifies the signal (NMEA 4.1+).
	SignalID *uint16
}

// Kind implements Record.
func (*GBS) Kind() Identifier { return IdentGBS }

// NewGBS decodes a GBS sentence from the context.
func NewGBS(ctx *strparse.Context, talker Talker) (*GBS, error) {
	if err := strparse.Global(ctx, Validate); err != nil {
		return nil, err
	}
	if _, err := strparse.SkipStrict(ctx, untilComma); err != nil {
		return nil, err
	}

	g := &GBS{Talker: talker}
	g.Time = opt(strparse.Take(ctx, nmeaTime))
	g.ErrLat = optF64(strparse.Take(ctx, untilComma))
	g.ErrLon = optF64(strparse.Take(ctx, untilComma))
	g.ErrAlt = optF64(strparse.Take(ctx, untilComma))
	g.SVID = optU16(strparse.Take(ctx, untilComma))
	g.Prob = optF64(strparse.Take(ctx, untilComma))
	g.Bias = optF64(strparse.Take(ctx, untilComma))
	// StdDev is last on pre-4.1 receivers, so it may end at '*'.
	g.StdDev = optF64(strparse.Take(ctx, commaOrStar))

	var err error
	if g.SystemID, err = enumField(ctx, commaOrStar, ParseSystemID); err != nil {
		return nil, err
	}
	g.SignalID = optU16(strparse.Take(ctx, untilStar))
	return g, nil
}
