package triage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Listener receives queue change notifications, e.g. so a realtime feed can
// push updates to waiting-room displays.
type Listener interface {
	PatientAdmitted(rec *PatientRecord)
	PatientStatusChanged(rec *PatientRecord)
}

// IntakeRequest is a triage creation request as received from the transport
// collaborator.
type IntakeRequest struct {
	Name             string        `json:"name"`
	Age              *int          `json:"age"`
	Gender           string        `json:"gender"`
	Insurance        string        `json:"insurance"`
	EmergencyContact string        `json:"emergencyContact"`
	ChiefComplaint   string        `json:"chiefComplaint"`
	Symptoms         SymptomVector `json:"symptoms"`
	Vitals           VitalsInput   `json:"vitals"`
}

// Service owns the queue store and exposes the core operations to the
// transport collaborator. The clock and identifier generator are injected;
// uniqueness is the only contract on generated ids.
type Service struct {
	store     *Store
	est       *Estimator
	now       func() time.Time
	newID     func() string
	listeners []Listener
}

// NewService creates a service around the given store with a UUID-backed
// identifier generator and the wall clock.
func NewService(store *Store, est *Estimator) *Service {
	if est == nil {
		est = NewEstimator(0)
	}
	return &Service{
		store: store,
		est:   est,
		now:   time.Now,
		newID: func() string { return "PAT-" + uuid.New().String() },
	}
}

// SetClock overrides the time source for arrival stamps and wait math.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
	s.est.Now = now
}

// SetIDGenerator overrides the record identifier generator.
func (s *Service) SetIDGenerator(gen func() string) {
	s.newID = gen
}

// AddListener attaches a queue change listener. Listeners are registered at
// wiring time, before the service handles requests.
func (s *Service) AddListener(l Listener) {
	s.listeners = append(s.listeners, l)
}

// CreateTriage validates the intake request, normalizes vitals, scores the
// urgency tier once, and inserts the new waiting record into the queue.
func (s *Service) CreateTriage(ctx context.Context, req IntakeRequest) (*PatientRecord, error) {
	if err := validateIntake(req); err != nil {
		return nil, err
	}

	vitals := NormalizeVitals(req.Vitals)
	tier := Score(req.Symptoms, vitals)

	rec := &PatientRecord{
		ID:               s.newID(),
		Name:             strings.TrimSpace(req.Name),
		Age:              *req.Age,
		Gender:           strings.TrimSpace(req.Gender),
		Insurance:        strings.TrimSpace(req.Insurance),
		EmergencyContact: strings.TrimSpace(req.EmergencyContact),
		ChiefComplaint:   strings.TrimSpace(req.ChiefComplaint),
		Symptoms:         req.Symptoms,
		Vitals:           vitals,
		PriorityTier:     tier,
		PriorityLabel:    tier.Label(),
		Status:           StatusWaiting,
		ArrivalTime:      s.now(),
	}

	if err := s.store.Insert(rec); err != nil {
		return nil, err
	}

	out := s.withEstimate(rec)
	for _, l := range s.listeners {
		l.PatientAdmitted(out.clone())
	}
	return out, nil
}

// ListQueue returns all records in queue order with wait estimates
// recomputed for this read.
func (s *Service) ListQueue(ctx context.Context) []*PatientRecord {
	snapshot := s.store.Snapshot()
	for _, rec := range snapshot {
		rec.EstimatedWaitMinutes = s.est.Estimate(rec, snapshot)
	}
	return snapshot
}

// GetPatient returns one record with a fresh wait estimate.
func (s *Service) GetPatient(ctx context.Context, id string) (*PatientRecord, error) {
	rec, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	return s.withEstimate(rec), nil
}

// UpdateStatus applies a lifecycle transition and emits the updated record
// to listeners so collaborators can act on it.
func (s *Service) UpdateStatus(ctx context.Context, id string, target Status) (*PatientRecord, error) {
	if !target.Valid() {
		return nil, &ValidationError{Fields: map[string]string{
			"status": fmt.Sprintf("unknown status %q", string(target)),
		}}
	}

	rec, err := s.store.UpdateStatus(id, target)
	if err != nil {
		return nil, err
	}

	out := s.withEstimate(rec)
	for _, l := range s.listeners {
		l.PatientStatusChanged(out.clone())
	}
	return out, nil
}

// withEstimate fills the advisory wait using a fresh snapshot.
func (s *Service) withEstimate(rec *PatientRecord) *PatientRecord {
	rec.EstimatedWaitMinutes = s.est.Estimate(rec, s.store.Snapshot())
	return rec
}

const (
	minAge = 0
	maxAge = 120
)

// validateIntake checks the required demographics, age bounds, and symptom
// bounds. Vitals are deliberately not validated here — malformed vitals
// degrade to absent during normalization instead of failing intake.
func validateIntake(req IntakeRequest) error {
	fields := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = "is required"
	}
	if req.Age == nil {
		fields["age"] = "is required"
	} else if *req.Age < minAge || *req.Age > maxAge {
		fields["age"] = fmt.Sprintf("must be between %d and %d, got %d", minAge, maxAge, *req.Age)
	}
	if strings.TrimSpace(req.Gender) == "" {
		fields["gender"] = "is required"
	}
	if strings.TrimSpace(req.ChiefComplaint) == "" {
		fields["chiefComplaint"] = "is required"
	}
	req.Symptoms.validate(fields)

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
