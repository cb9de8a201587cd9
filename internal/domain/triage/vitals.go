package triage

import (
	"math"
	"strconv"
	"strings"
)

// NormalizeVitals coerces raw intake vitals into numeric readings. Heart
// rate and temperature may arrive as text; blood pressure arrives as a
// "systolic/diastolic" or "systolic-diastolic" string. Malformed or missing
// fields normalize to absent — intake must never fail on bad formatting.
func NormalizeVitals(in VitalsInput) Vitals {
	var v Vitals
	if hr, ok := parseIntField(string(in.HeartRate)); ok {
		v.HeartRate = &hr
	}
	if t, ok := parseFloatField(string(in.Temperature)); ok {
		v.Temperature = &t
	}
	if sys, dia, ok := parseBloodPressure(string(in.BloodPressure)); ok {
		v.BloodPressureSys = &sys
		v.BloodPressureDia = &dia
	}
	return v
}

// parseIntField parses a possibly-textual integer. Decimal text is accepted
// and truncated, matching how intake forms submit whole-number vitals.
func parseIntField(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, ok := parseFloatField(s)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// parseFloatField parses a possibly-textual finite number.
func parseFloatField(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// parseBloodPressure splits a reading on "/" or "-" and parses the first
// two parts. Fewer than two numeric parts means the reading is skipped.
func parseBloodPressure(s string) (sys, dia int, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, false
	}
	parts := strings.Split(s, "/")
	if len(parts) < 2 {
		parts = strings.Split(s, "-")
	}
	if len(parts) < 2 {
		return 0, 0, false
	}
	sys, sysOK := parseIntField(parts[0])
	dia, diaOK := parseIntField(parts[1])
	if !sysOK || !diaOK {
		return 0, 0, false
	}
	return sys, dia, true
}
