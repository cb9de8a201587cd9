package triage

import "testing"

func intPtr(v int) *int          { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestScore_AllZeroIsRoutine(t *testing.T) {
	if got := Score(SymptomVector{}, Vitals{}); got != TierRoutine {
		t.Errorf("got tier %d, want %d", got, TierRoutine)
	}
}

func TestScore_Thresholds(t *testing.T) {
	tests := []struct {
		name     string
		symptoms SymptomVector
		want     Tier
	}{
		{"just below low", SymptomVector{Headache: 10, Nausea: 9}, TierRoutine},     // 9.5
		{"at low", SymptomVector{PainLevel: 10}, TierLow},                           // 10
		{"at medium", SymptomVector{BreathingDifficulty: 10}, TierMedium},           // 20
		{"at high", SymptomVector{BreathingDifficulty: 10, Bleeding: 10}, TierHigh}, // 35
		{"at critical", SymptomVector{BreathingDifficulty: 10, ChestPain: 10, Bleeding: 10}, TierCritical}, // 55
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.symptoms, Vitals{}); got != tt.want {
				t.Errorf("got tier %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSeverityScore_Weights(t *testing.T) {
	tests := []struct {
		name     string
		symptoms SymptomVector
		want     float64
	}{
		{"breathing x2", SymptomVector{BreathingDifficulty: 5}, 10},
		{"chest pain x2", SymptomVector{ChestPain: 5}, 10},
		{"consciousness x2", SymptomVector{ConsciousnessLevel: 5}, 10},
		{"bleeding x1.5", SymptomVector{Bleeding: 4}, 6},
		{"pain x1", SymptomVector{PainLevel: 7}, 7},
		{"palpitations x1", SymptomVector{Palpitations: 7}, 7},
		{"confusion x1", SymptomVector{Confusion: 7}, 7},
		{"headache x0.5", SymptomVector{Headache: 8}, 4},
		{"nausea x0.5", SymptomVector{Nausea: 8}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SeverityScore(tt.symptoms); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScore_MonotonicInSymptoms(t *testing.T) {
	lower := SymptomVector{PainLevel: 3, ChestPain: 4}
	higher := SymptomVector{PainLevel: 3, ChestPain: 9}
	if Score(higher, Vitals{}) > Score(lower, Vitals{}) {
		t.Error("raising a symptom must never yield a less urgent tier")
	}
}

func TestVitalModifiers_HeartRateBands(t *testing.T) {
	tests := []struct {
		hr   int
		want float64
	}{
		{44, 8},
		{45, 4},  // below moderate floor, above severe floor
		{54, 4},
		{55, 0},
		{80, 0},
		{110, 0},
		{111, 4},
		{130, 4},
		{131, 8},
	}
	for _, tt := range tests {
		if got := VitalModifiers(Vitals{HeartRate: intPtr(tt.hr)}); got != tt.want {
			t.Errorf("hr=%d: got %v, want %v", tt.hr, got, tt.want)
		}
	}
}

func TestVitalModifiers_TemperatureBands(t *testing.T) {
	tests := []struct {
		temp float64
		want float64
	}{
		{98.6, 0},
		{101.4, 0},
		{101.5, 2},
		{102.9, 2},
		{103, 4},
		{105, 4},
	}
	for _, tt := range tests {
		if got := VitalModifiers(Vitals{Temperature: floatPtr(tt.temp)}); got != tt.want {
			t.Errorf("temp=%v: got %v, want %v", tt.temp, got, tt.want)
		}
	}
}

func TestVitalModifiers_BloodPressureBands(t *testing.T) {
	tests := []struct {
		sys, dia int
		want     float64
	}{
		{120, 80, 0},
		{160, 80, 3},
		{150, 100, 3},
		{180, 110, 6},
		{150, 120, 6},
		{80, 50, 5},
		{84, 90, 5},
		{185, 50, 11}, // severe hypertensive band stacks with hypotension
	}
	for _, tt := range tests {
		v := Vitals{BloodPressureSys: intPtr(tt.sys), BloodPressureDia: intPtr(tt.dia)}
		if got := VitalModifiers(v); got != tt.want {
			t.Errorf("bp=%d/%d: got %v, want %v", tt.sys, tt.dia, got, tt.want)
		}
	}
}

func TestVitalModifiers_AbsentContributesNothing(t *testing.T) {
	if got := VitalModifiers(Vitals{}); got != 0 {
		t.Errorf("got %v, want 0", got)
	}
	// A lone systolic reading without diastolic is incomplete and skipped.
	if got := VitalModifiers(Vitals{BloodPressureSys: intPtr(190)}); got != 0 {
		t.Errorf("got %v, want 0 for incomplete blood pressure", got)
	}
}

func TestScore_VitalsEscalateTier(t *testing.T) {
	symptoms := SymptomVector{PainLevel: 8} // 8, Routine on its own
	if got := Score(symptoms, Vitals{}); got != TierRoutine {
		t.Fatalf("baseline: got %d, want %d", got, TierRoutine)
	}
	vitals := Vitals{HeartRate: intPtr(140)} // +8 pushes to 16, Low
	if got := Score(symptoms, vitals); got != TierLow {
		t.Errorf("with tachycardia: got %d, want %d", got, TierLow)
	}
}
