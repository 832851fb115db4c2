package caffeine

// Params defines all configurable parameters for the caffeine analysis
// routines. The defaults match the thresholds the mobile clients were built
// around; overriding them is mainly useful for testing.
type Params struct {
	// CrashThresholdFraction is the fraction of the peak level below which
	// the user is considered to be crashing.
	CrashThresholdFraction float64

	// CrashFloorMg is the minimum absolute crash threshold. It prevents a
	// degenerate near-zero threshold when the peak itself is small.
	CrashFloorMg float64

	// PeakWindowHours bounds the peak search window past the reference time.
	PeakWindowHours int

	// CrashScanHours bounds the crash search window past the peak.
	CrashScanHours int

	// PeakStepMinutes is the sampling resolution used while locating the peak.
	PeakStepMinutes int

	// CrashStepMinutes is the sampling resolution used while scanning for the crash.
	CrashStepMinutes int
}

// ParamsConfig allows overriding the default parameters when creating a new
// Params instance. Zero-valued fields keep their defaults.
type ParamsConfig struct {
	CrashThresholdFraction float64
	CrashFloorMg           float64
	PeakWindowHours        int
	CrashScanHours         int
	PeakStepMinutes        int
	CrashStepMinutes       int
}

// NewDefaultParams creates a new Params instance with default values.
func NewDefaultParams() *Params {
	return &Params{
		CrashThresholdFraction: 0.25,
		CrashFloorMg:           40.0,
		PeakWindowHours:        24,
		CrashScanHours:         24,
		PeakStepMinutes:        5,
		CrashStepMinutes:       1,
	}
}

// NewParams creates a new Params instance with custom configuration.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.CrashThresholdFraction > 0 {
		params.CrashThresholdFraction = config.CrashThresholdFraction
	}
	if config.CrashFloorMg > 0 {
		params.CrashFloorMg = config.CrashFloorMg
	}
	if config.PeakWindowHours > 0 {
		params.PeakWindowHours = config.PeakWindowHours
	}
	if config.CrashScanHours > 0 {
		params.CrashScanHours = config.CrashScanHours
	}
	if config.PeakStepMinutes > 0 {
		params.PeakStepMinutes = config.PeakStepMinutes
	}
	if config.CrashStepMinutes > 0 {
		params.CrashStepMinutes = config.CrashStepMinutes
	}

	return params
}
