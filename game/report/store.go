// Package report keeps verdicts for submitted game logs in memory so that
// transports can list and re-fetch them. Nothing is written to disk: the
// referee's contract covers exactly one input stream per game, and reports
// are throwaway working state, pruned once they go stale.
package report

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/gameref/connectz/game/engine"
)

var (
	ErrReportNotFound = errors.New("report not found")
)

// Report is one validated game log and its verdict.
type Report struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Verdict     engine.Verdict `json:"verdict"`
	SubmittedAt time.Time      `json:"submitted_at"`
}

// Store is an in-memory, mutex-guarded report collection safe for use from
// concurrent HTTP and MCP handlers.
type Store struct {
	mu      sync.RWMutex
	reports map[string]*Report
}

// NewStore creates an empty report store.
func NewStore() *Store {
	return &Store{
		reports: make(map[string]*Report),
	}
}

// Add records a verdict under a fresh ID and returns the stored report.
func (s *Store) Add(name string, verdict engine.Verdict) *Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.generateID()
	rep := &Report{
		ID:          id,
		Name:        name,
		Verdict:     verdict,
		SubmittedAt: time.Now(),
	}
	s.reports[id] = rep
	return rep
}

// Get retrieves a report by ID.
func (s *Store) Get(id string) (*Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rep, ok := s.reports[id]
	if !ok {
		return nil, ErrReportNotFound
	}
	return rep, nil
}

// List returns all reports, newest first.
func (s *Store) List() []*Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reports := make([]*Report, 0, len(s.reports))
	for _, rep := range s.reports {
		reports = append(reports, rep)
	}
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].SubmittedAt.After(reports[j].SubmittedAt)
	})
	return reports
}

// Delete removes a report by ID.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reports[id]; !ok {
		return ErrReportNotFound
	}
	delete(s.reports, id)
	return nil
}

// Len returns the number of stored reports.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reports)
}

// CleanupExpired removes reports older than maxAge and returns how many
// were pruned.
func (s *Store) CleanupExpired(maxAge time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for id, rep := range s.reports {
		if rep.SubmittedAt.Before(cutoff) {
			delete(s.reports, id)
			removed++
		}
	}
	return removed
}

// generateID returns a random 8-character hex ID unique within the store.
// Callers must hold the write lock.
func (s *Store) generateID() string {
	for {
		b := make([]byte, 4)
		if _, err := rand.Read(b); err != nil {
			// crypto/rand is documented never to fail on supported
			// platforms; fall back to a timestamp if it somehow does.
			return hex.EncodeToString([]byte(time.Now().Format("150405.000")))[:8]
		}
		id := hex.EncodeToString(b)
		if _, exists := s.reports[id]; !exists {
			return id
		}
	}
}
