package triage

import "testing"

func TestNormalizeVitals_Textual(t *testing.T) {
	v := NormalizeVitals(VitalsInput{
		HeartRate:     "88",
		BloodPressure: "120/80",
		Temperature:   "98.6",
	})
	if v.HeartRate == nil || *v.HeartRate != 88 {
		t.Errorf("heart rate: got %v, want 88", v.HeartRate)
	}
	if v.BloodPressureSys == nil || *v.BloodPressureSys != 120 {
		t.Errorf("systolic: got %v, want 120", v.BloodPressureSys)
	}
	if v.BloodPressureDia == nil || *v.BloodPressureDia != 80 {
		t.Errorf("diastolic: got %v, want 80", v.BloodPressureDia)
	}
	if v.Temperature == nil || *v.Temperature != 98.6 {
		t.Errorf("temperature: got %v, want 98.6", v.Temperature)
	}
}

func TestNormalizeVitals_MalformedAbsent(t *testing.T) {
	v := NormalizeVitals(VitalsInput{
		HeartRate:     "fast",
		BloodPressure: "abc",
		Temperature:   "hot",
	})
	if v.HeartRate != nil || v.BloodPressureSys != nil || v.BloodPressureDia != nil || v.Temperature != nil {
		t.Errorf("expected all fields absent, got %+v", v)
	}
}

func TestNormalizeVitals_Empty(t *testing.T) {
	v := NormalizeVitals(VitalsInput{})
	if v.HeartRate != nil || v.BloodPressureSys != nil || v.Temperature != nil {
		t.Errorf("expected all fields absent, got %+v", v)
	}
}

func TestNormalizeVitals_DecimalHeartRateTruncates(t *testing.T) {
	v := NormalizeVitals(VitalsInput{HeartRate: "88.9"})
	if v.HeartRate == nil || *v.HeartRate != 88 {
		t.Errorf("got %v, want 88", v.HeartRate)
	}
}

func TestParseBloodPressure(t *testing.T) {
	tests := []struct {
		in       string
		sys, dia int
		ok       bool
	}{
		{"120/80", 120, 80, true},
		{"120-80", 120, 80, true},
		{" 140 / 95 ", 140, 95, true},
		{"120/80/40", 120, 80, true},
		{"120", 0, 0, false},
		{"abc", 0, 0, false},
		{"120/low", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tt := range tests {
		sys, dia, ok := parseBloodPressure(tt.in)
		if ok != tt.ok || sys != tt.sys || dia != tt.dia {
			t.Errorf("parseBloodPressure(%q) = (%d, %d, %v), want (%d, %d, %v)",
				tt.in, sys, dia, ok, tt.sys, tt.dia, tt.ok)
		}
	}
}

func TestParseFloatField_RejectsNonFinite(t *testing.T) {
	for _, in := range []string{"NaN", "Inf", "-Inf", "+Inf"} {
		if _, ok := parseFloatField(in); ok {
			t.Errorf("expected %q to be rejected", in)
		}
	}
}
