package triage

import (
	"encoding/json"
	"testing"
	"time"
)

func TestStatus_CanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusWaiting, StatusInProgress, true},
		{StatusWaiting, StatusCompleted, true},
		{StatusInProgress, StatusCompleted, true},
		{StatusInProgress, StatusWaiting, false},
		{StatusCompleted, StatusWaiting, false},
		{StatusCompleted, StatusInProgress, false},
		{StatusWaiting, StatusWaiting, false},
		{StatusInProgress, StatusInProgress, false},
		{StatusCompleted, StatusCompleted, false},
		{StatusWaiting, Status("discharged"), false},
		{Status("unknown"), StatusCompleted, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.want {
			t.Errorf("CanTransition(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestStatus_Valid(t *testing.T) {
	for _, s := range []Status{StatusWaiting, StatusInProgress, StatusCompleted} {
		if !s.Valid() {
			t.Errorf("expected %s to be valid", s)
		}
	}
	if Status("archived").Valid() {
		t.Error("expected archived to be invalid")
	}
}

func TestTier_Label(t *testing.T) {
	tests := []struct {
		tier Tier
		want string
	}{
		{TierCritical, "Critical"},
		{TierHigh, "High"},
		{TierMedium, "Medium"},
		{TierLow, "Low"},
		{TierRoutine, "Routine"},
	}
	for _, tt := range tests {
		if got := tt.tier.Label(); got != tt.want {
			t.Errorf("Tier(%d).Label() = %q, want %q", tt.tier, got, tt.want)
		}
	}
	if Tier(0).Valid() || Tier(6).Valid() {
		t.Error("expected tiers outside 1..5 to be invalid")
	}
}

func TestSortRecords_TotalOrder(t *testing.T) {
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	rec := func(id string, status Status, tier Tier, offset time.Duration) *PatientRecord {
		return &PatientRecord{ID: id, Status: status, PriorityTier: tier, ArrivalTime: base.Add(offset)}
	}

	records := []*PatientRecord{
		rec("done-early", StatusCompleted, TierCritical, 0),
		rec("routine", StatusWaiting, TierRoutine, time.Minute),
		rec("active", StatusInProgress, TierCritical, 2*time.Minute),
		rec("critical-late", StatusWaiting, TierCritical, 10*time.Minute),
		rec("critical-early", StatusWaiting, TierCritical, 3*time.Minute),
	}
	SortRecords(records)

	want := []string{"critical-early", "critical-late", "routine", "active", "done-early"}
	for i, id := range want {
		if records[i].ID != id {
			t.Fatalf("position %d: got %s, want %s", i, records[i].ID, id)
		}
	}
}

func TestSortRecords_FIFOTieBreak(t *testing.T) {
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	records := []*PatientRecord{
		{ID: "second", Status: StatusWaiting, PriorityTier: TierMedium, ArrivalTime: base.Add(time.Minute)},
		{ID: "first", Status: StatusWaiting, PriorityTier: TierMedium, ArrivalTime: base},
	}
	SortRecords(records)
	if records[0].ID != "first" || records[1].ID != "second" {
		t.Errorf("expected arrival order for equal status and tier, got [%s %s]", records[0].ID, records[1].ID)
	}
}

func TestFlexString_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want FlexString
	}{
		{"string", `"88"`, "88"},
		{"number", `88`, "88"},
		{"float", `98.6`, "98.6"},
		{"null", `null`, ""},
		{"bool", `true`, ""},
		{"object", `{"a":1}`, ""},
		{"array", `[1,2]`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexString
			if err := json.Unmarshal([]byte(tt.in), &f); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if f != tt.want {
				t.Errorf("got %q, want %q", f, tt.want)
			}
		})
	}
}

func TestVitalsInput_DecodeMixedTypes(t *testing.T) {
	body := `{"heartRate": 92, "bloodPressure": "140/90", "temperature": "99.1"}`
	var in VitalsInput
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.HeartRate != "92" || in.BloodPressure != "140/90" || in.Temperature != "99.1" {
		t.Errorf("unexpected decode: %+v", in)
	}
}

func TestPatientRecord_CloneIsDeep(t *testing.T) {
	hr := 90
	rec := &PatientRecord{ID: "p1", Vitals: Vitals{HeartRate: &hr}}
	cp := rec.clone()

	*cp.Vitals.HeartRate = 150
	if *rec.Vitals.HeartRate != 90 {
		t.Errorf("clone shares heart rate pointer: original mutated to %d", *rec.Vitals.HeartRate)
	}
}
