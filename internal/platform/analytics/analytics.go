// Package analytics aggregates queue snapshots into the dashboard summary:
// census counts, wait averages, and breakdowns by priority, status, age,
// and symptom.
package analytics

import (
	"fmt"
	"math"
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"

	"github.com/triageq/triageq/internal/domain/triage"
)

// PriorityCount is one bar of the priority breakdown.
type PriorityCount struct {
	Priority string `json:"priority"`
	Count    int    `json:"count"`
}

// StatusCount is one slice of the status breakdown.
type StatusCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// AgeCount is one bucket of the age distribution.
type AgeCount struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

// SymptomCount is one entry of the top-symptom list.
type SymptomCount struct {
	Symptom string `json:"symptom"`
	Count   int    `json:"count"`
}

// Summary is the full dashboard payload.
type Summary struct {
	TotalPatients      int             `json:"totalPatients"`
	CriticalPatients   int             `json:"criticalPatients"`
	CompletedPatients  int             `json:"completedPatients"`
	InProgressPatients int             `json:"inProgressPatients"`
	WaitingPatients    int             `json:"waitingPatients"`
	AvgWaitTime        int             `json:"avgWaitTime"`
	PriorityData       []PriorityCount `json:"priorityData"`
	StatusData         []StatusCount   `json:"statusData"`
	AgeData            []AgeCount      `json:"ageData"`
	TopSymptoms        []SymptomCount  `json:"topSymptoms"`
}

// severeSymptomLevel is the exclusive threshold above which a symptom counts
// toward the top-symptom list.
const severeSymptomLevel = 5

// topSymptomLimit caps the top-symptom list length.
const topSymptomLimit = 5

var ageBuckets = []struct {
	label    string
	min, max int
}{
	{"0-18", 0, 18},
	{"19-35", 19, 35},
	{"36-55", 36, 55},
	{"56-70", 56, 70},
	{"70+", 71, math.MaxInt},
}

// Summarize aggregates one queue snapshot. Wait estimates are averaged as
// supplied, so callers should pass records with estimates already filled.
func Summarize(records []*triage.PatientRecord) Summary {
	sum := Summary{}
	sum.TotalPatients = len(records)

	totalWait := 0
	priorityCounts := make(map[triage.Tier]int)
	symptomCounts := make(map[string]int)

	for _, rec := range records {
		if rec.PriorityTier <= triage.TierHigh {
			sum.CriticalPatients++
		}
		switch rec.Status {
		case triage.StatusWaiting:
			sum.WaitingPatients++
		case triage.StatusInProgress:
			sum.InProgressPatients++
		case triage.StatusCompleted:
			sum.CompletedPatients++
		}
		totalWait += rec.EstimatedWaitMinutes
		priorityCounts[rec.PriorityTier]++
		for name, level := range rec.Symptoms.Levels() {
			if level > severeSymptomLevel {
				symptomCounts[name]++
			}
		}
	}

	if len(records) > 0 {
		sum.AvgWaitTime = int(math.Round(float64(totalWait) / float64(len(records))))
	}

	for tier := triage.TierCritical; tier <= triage.TierRoutine; tier++ {
		sum.PriorityData = append(sum.PriorityData, PriorityCount{
			Priority: fmt.Sprintf("Priority %d", tier),
			Count:    priorityCounts[tier],
		})
	}

	sum.StatusData = []StatusCount{
		{Name: "Waiting", Value: sum.WaitingPatients},
		{Name: "In Progress", Value: sum.InProgressPatients},
		{Name: "Completed", Value: sum.CompletedPatients},
	}

	for _, bucket := range ageBuckets {
		count := 0
		for _, rec := range records {
			if rec.Age >= bucket.min && rec.Age <= bucket.max {
				count++
			}
		}
		sum.AgeData = append(sum.AgeData, AgeCount{Range: bucket.label, Count: count})
	}

	sum.TopSymptoms = topSymptoms(symptomCounts)
	return sum
}

// topSymptoms ranks severe symptoms by prevalence, ties broken by name so
// the output is deterministic.
func topSymptoms(counts map[string]int) []SymptomCount {
	out := make([]SymptomCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, SymptomCount{Symptom: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Symptom < out[j].Symptom
	})
	if len(out) > topSymptomLimit {
		out = out[:topSymptomLimit]
	}
	return out
}

// Handler serves the dashboard summary.
type Handler struct {
	queue func(c echo.Context) []*triage.PatientRecord
}

// NewHandler creates a handler reading snapshots through the given source.
func NewHandler(queue func(c echo.Context) []*triage.PatientRecord) *Handler {
	return &Handler{queue: queue}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/analytics", h.GetSummary)
}

func (h *Handler) GetSummary(c echo.Context) error {
	return c.JSON(http.StatusOK, Summarize(h.queue(c)))
}
