package triage

import "sync"

// Store holds the active patient records under the queue's total order.
// All mutations take the write lock and re-sort the whole set before
// releasing it, so snapshots always observe a fully-applied state. Records
// are never physically deleted by this core.
type Store struct {
	mu      sync.RWMutex
	records map[string]*PatientRecord
	order   []string // ids in queue order, re-sorted on every mutation
}

// NewStore creates an empty queue store.
func NewStore() *Store {
	return &Store{records: make(map[string]*PatientRecord)}
}

// Insert adds a new record and re-establishes the sort order. An identifier
// collision returns ErrDuplicateID without touching the existing record.
func (s *Store) Insert(rec *PatientRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[rec.ID]; exists {
		return ErrDuplicateID
	}
	s.records[rec.ID] = rec.clone()
	s.order = append(s.order, rec.ID)
	s.resortLocked()
	return nil
}

// Get returns a copy of the record with the given id.
func (s *Store) Get(id string) (*PatientRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return rec.clone(), nil
}

// Snapshot returns copies of all records in queue order. It is safe to call
// concurrently with mutations and never observes a partially-applied one.
func (s *Store) Snapshot() []*PatientRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*PatientRecord, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id].clone())
	}
	return out
}

// Len returns the number of records in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// UpdateStatus applies a lifecycle transition and re-sorts. Only strictly
// forward moves are accepted; the status is the only field mutable through
// this operation. The updated record is returned as a copy.
func (s *Store) UpdateStatus(id string, target Status) (*PatientRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	if !rec.Status.CanTransition(target) {
		return nil, &InvalidTransitionError{From: rec.Status, To: target}
	}
	rec.Status = target
	s.resortLocked()
	return rec.clone(), nil
}

// resortLocked re-sorts the whole id slice under the total order. A full
// stable sort per mutation is O(n log n) and stays cheap at single-facility
// queue sizes. Callers must hold the write lock.
func (s *Store) resortLocked() {
	recs := make([]*PatientRecord, 0, len(s.order))
	for _, id := range s.order {
		recs = append(recs, s.records[id])
	}
	SortRecords(recs)
	for i, rec := range recs {
		s.order[i] = rec.ID
	}
}
