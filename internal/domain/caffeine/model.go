// Package caffeine implements the pharmacokinetic model behind the app:
// single-compartment first-order elimination of caffeine, timeline sampling,
// peak detection, crash prediction, and the safety-threshold evaluator.
//
// Everything in this package is pure: functions take their full input as
// arguments, never read the wall clock, and are safe for concurrent use.
package caffeine

import (
	"math"
	"time"

	"github.com/joltlabs/jolt-api/internal/domain"
)

// Level is a single point of the computed caffeine curve. Levels are derived
// on demand and never persisted.
type Level struct {
	Timestamp time.Time `json:"timestamp"`
	ActiveMg  float64   `json:"active_mg"`
}

// activeCaffeineAt computes the total active caffeine in milligrams at the
// given instant. Each record decays exponentially from its consumption time:
//
//	remaining = amount × 0.5^(elapsedHours / halfLifeHours)
//
// Records consumed after the query time contribute nothing. No upper bound is
// imposed; clamping against a display maximum is a caller concern.
//
// Inputs are assumed validated (halfLifeHours > 0, amounts ≥ 0); the Service
// wrapper enforces that before calling in here.
func activeCaffeineAt(
	records []*domain.IntakeRecord,
	halfLifeHours float64,
	at time.Time,
) float64 {
	total := 0.0

	for _, record := range records {
		elapsedHours := at.Sub(record.ConsumedAt).Hours()
		if elapsedHours < 0 {
			continue
		}

		total += record.AmountMg * math.Pow(0.5, elapsedHours/halfLifeHours)
	}

	return total
}

// sampleLevels materializes the caffeine curve over [start, end] at a fixed
// step. The end boundary is inclusive: if end falls exactly on a step it is
// the last sample. The result is fully materialized and deterministic, so
// calling it twice with identical arguments yields identical output.
func sampleLevels(
	records []*domain.IntakeRecord,
	halfLifeHours float64,
	start, end time.Time,
	stepMinutes int,
) []Level {
	step := time.Duration(stepMinutes) * time.Minute

	var levels []Level
	for t := start; !t.After(end); t = t.Add(step) {
		levels = append(levels, Level{
			Timestamp: t,
			ActiveMg:  activeCaffeineAt(records, halfLifeHours, t),
		})
	}

	return levels
}
