package caffeine

import (
	"time"

	"github.com/joltlabs/jolt-api/internal/domain"
)

// Peak is the maximum point of the computed caffeine curve.
type Peak struct {
	Time     time.Time `json:"time"`
	AmountMg float64   `json:"amount_mg"`
}

// findPeak locates the maximum active caffeine level. The search window runs
// from the earliest record's consumption time to now+PeakWindowHours, sampled
// at PeakStepMinutes resolution. Returns nil when there are no records, or
// when every record lies so far past the window that there is nothing to
// sample yet.
//
// The scan uses a strict greater-than comparison, so when several samples
// share the maximum value the first occurrence in chronological order wins.
func findPeak(
	records []*domain.IntakeRecord,
	halfLifeHours float64,
	now time.Time,
	params *Params,
) *Peak {
	if len(records) == 0 {
		return nil
	}

	start := records[0].ConsumedAt
	for _, record := range records[1:] {
		if record.ConsumedAt.Before(start) {
			start = record.ConsumedAt
		}
	}

	end := now.Add(time.Duration(params.PeakWindowHours) * time.Hour)
	levels := sampleLevels(records, halfLifeHours, start, end, params.PeakStepMinutes)
	if len(levels) == 0 {
		// Every record lies beyond the search window, so the window collapsed
		// to nothing. Nothing to report yet.
		return nil
	}

	peak := Peak{Time: levels[0].Timestamp, AmountMg: levels[0].ActiveMg}
	for _, level := range levels[1:] {
		if level.ActiveMg > peak.AmountMg {
			peak = Peak{Time: level.Timestamp, AmountMg: level.ActiveMg}
		}
	}

	return &peak
}

// predictCrash estimates when the user will feel the post-caffeine energy
// drop: the first instant after the peak at which the active level falls to
// or below max(peak × CrashThresholdFraction, CrashFloorMg).
//
// The scan walks forward from the peak in CrashStepMinutes increments for up
// to CrashScanHours. Returns nil when there are no records or the level never
// drops below the threshold inside the scan window; callers must treat that
// as "no alert needed", not as an error.
func predictCrash(
	records []*domain.IntakeRecord,
	halfLifeHours float64,
	now time.Time,
	params *Params,
) *time.Time {
	peak := findPeak(records, halfLifeHours, now, params)
	if peak == nil {
		return nil
	}

	threshold := peak.AmountMg * params.CrashThresholdFraction
	if threshold < params.CrashFloorMg {
		threshold = params.CrashFloorMg
	}

	step := time.Duration(params.CrashStepMinutes) * time.Minute
	end := peak.Time.Add(time.Duration(params.CrashScanHours) * time.Hour)

	for t := peak.Time; t.Before(end); t = t.Add(step) {
		if activeCaffeineAt(records, halfLifeHours, t) <= threshold {
			crash := t
			return &crash
		}
	}

	return nil
}
