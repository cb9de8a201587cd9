package triage

// Symptom weights for the base severity score.
const (
	weightBreathing     = 2.0
	weightChestPain     = 2.0
	weightConsciousness = 2.0
	weightBleeding      = 1.5
	weightPain          = 1.0
	weightPalpitations  = 1.0
	weightConfusion     = 1.0
	weightHeadache      = 0.5
	weightNausea        = 0.5
)

// Tier thresholds: inclusive lower bounds on the total score, checked from
// highest to lowest.
const (
	thresholdCritical = 55.0
	thresholdHigh     = 35.0
	thresholdMedium   = 20.0
	thresholdLow      = 10.0
)

// Score converts a symptom vector and normalized vitals into an urgency
// tier. It is pure and deterministic; absent vitals contribute no modifier.
func Score(symptoms SymptomVector, vitals Vitals) Tier {
	total := SeverityScore(symptoms) + VitalModifiers(vitals)
	switch {
	case total >= thresholdCritical:
		return TierCritical
	case total >= thresholdHigh:
		return TierHigh
	case total >= thresholdMedium:
		return TierMedium
	case total >= thresholdLow:
		return TierLow
	default:
		return TierRoutine
	}
}

// SeverityScore is the weighted sum of the nine symptom fields.
func SeverityScore(s SymptomVector) float64 {
	return weightBreathing*float64(s.BreathingDifficulty) +
		weightChestPain*float64(s.ChestPain) +
		weightConsciousness*float64(s.ConsciousnessLevel) +
		weightBleeding*float64(s.Bleeding) +
		weightPain*float64(s.PainLevel) +
		weightPalpitations*float64(s.Palpitations) +
		weightConfusion*float64(s.Confusion) +
		weightHeadache*float64(s.Headache) +
		weightNausea*float64(s.Nausea)
}

// VitalModifiers sums the additive out-of-range adjustments. Within each
// vital the severe band is checked before the moderate one and only the
// first match applies; the hypotension check is independent of the
// hypertensive bands and can stack with them.
func VitalModifiers(v Vitals) float64 {
	var m float64

	if v.HeartRate != nil {
		hr := *v.HeartRate
		if hr < 45 || hr > 130 {
			m += 8
		} else if hr < 55 || hr > 110 {
			m += 4
		}
	}

	if v.Temperature != nil {
		t := *v.Temperature
		if t >= 103 {
			m += 4
		} else if t >= 101.5 {
			m += 2
		}
	}

	if v.BloodPressureSys != nil && v.BloodPressureDia != nil {
		sys, dia := *v.BloodPressureSys, *v.BloodPressureDia
		if sys >= 180 || dia >= 120 {
			m += 6
		} else if sys >= 160 || dia >= 100 {
			m += 3
		}
		if sys < 85 || dia < 55 {
			m += 5
		}
	}

	return m
}
