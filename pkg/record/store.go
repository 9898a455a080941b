// Package record implements the append-only evaluation record store.
package record

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"

	"evalvault/pkg/core"
	"evalvault/pkg/taxonomy"
)

// Store holds evaluation records in append order. Records are never mutated
// after Append; a correction is a new revision of the same test case id.
// Append is serialized by a single lock, so two evaluators cannot claim the
// same revision for one test case.
type Store struct {
	registry *taxonomy.Registry

	mu      sync.RWMutex
	records []core.Record
	byCase  map[string][]int // test case id -> indices into records, creation order
	order   []string         // test case ids in first-seen order
}

func NewStore(registry *taxonomy.Registry) *Store {
	return &Store{
		registry: registry,
		byCase:   make(map[string][]int),
	}
}

// Append validates rec and stores it, returning its sequence position
// (0-based). The revision is assigned here: one past the latest revision for
// the test case. On validation failure the store is unchanged.
func (s *Store) Append(rec core.Record) (int, error) {
	if err := s.validate(rec); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	indices := s.byCase[rec.TestCaseID]
	rec.Revision = len(indices) + 1

	seq := len(s.records)
	s.records = append(s.records, rec)
	if len(indices) == 0 {
		s.order = append(s.order, rec.TestCaseID)
	}
	s.byCase[rec.TestCaseID] = append(indices, seq)
	return seq, nil
}

// Get returns the latest revision for testCaseID.
func (s *Store) Get(testCaseID string) (core.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	indices := s.byCase[testCaseID]
	if len(indices) == 0 {
		return core.Record{}, errors.Wrapf(core.NotFoundError, "test case %q", testCaseID)
	}
	return s.records[indices[len(indices)-1]], nil
}

// GetRevision returns one specific revision (1-based) for testCaseID.
func (s *Store) GetRevision(testCaseID string, revision int) (core.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	indices := s.byCase[testCaseID]
	if revision < 1 || revision > len(indices) {
		return core.Record{}, errors.Wrapf(core.NotFoundError,
			"test case %q revision %d", testCaseID, revision)
	}
	return s.records[indices[revision-1]], nil
}

// History streams every revision for testCaseID in creation order. The
// sequence is finite and each call restarts from the first revision.
func (s *Store) History(ctx context.Context, testCaseID string) (<-chan core.Record, <-chan error) {
	recordCh := make(chan core.Record)
	errCh := make(chan error, 1)

	s.mu.RLock()
	indices := s.byCase[testCaseID]
	revisions := make([]core.Record, 0, len(indices))
	for _, idx := range indices {
		revisions = append(revisions, s.records[idx])
	}
	s.mu.RUnlock()

	go func() {
		defer close(recordCh)
		defer close(errCh)

		if len(revisions) == 0 {
			errCh <- errors.Wrapf(core.NotFoundError, "test case %q", testCaseID)
			return
		}
		for _, rec := range revisions {
			select {
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			case recordCh <- rec:
			}
		}
	}()

	return recordCh, errCh
}

// Len returns the number of appended records, all revisions included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Latest returns the latest revision of every test case in first-seen order.
func (s *Store) Latest() []core.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Record, 0, len(s.order))
	for _, id := range s.order {
		indices := s.byCase[id]
		out = append(out, s.records[indices[len(indices)-1]])
	}
	return out
}

// All returns every appended record in append order.
func (s *Store) All() []core.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Record, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) validate(rec core.Record) error {
	fields := core.FieldValidationError{}

	if rec.TestCaseID == "" {
		fields["test_case_id"] = "must not be empty"
	}
	if rec.Date != "" {
		if _, err := rec.EvaluatedAt(); err != nil {
			fields["date"] = fmt.Sprintf("must use layout %s", core.DateLayout)
		}
	}
	if !rec.Outcome.Valid() {
		fields["overall_outcome"] = "must be PASS or FAIL"
	}

	if rec.PrimaryFailureMode.Valid {
		if err := s.registry.Validate(int(rec.PrimaryFailureMode.Int64)); err != nil {
			fields["primary_failure_mode"] = err.Error()
		}
	}
	for i, id := range rec.SecondaryFailureModes {
		if err := s.registry.Validate(id); err != nil {
			fields[fmt.Sprintf("secondary_failure_modes[%d]", i)] = err.Error()
		}
	}

	for dim, score := range rec.Dimensions {
		field := fmt.Sprintf("dimension_scores[%s]", dim)
		if !dim.Valid() {
			fields[field] = "unknown dimension"
			continue
		}
		var problems []string
		if score.Score < 0 || score.Score > 3 {
			problems = append(problems, "score must be within 0-3")
		}
		if score.Score <= 1 && len(score.Findings) == 0 {
			problems = append(problems, "a dimension scored 0 or 1 must reference at least one failure mode")
		}
		if len(problems) > 0 {
			fields[field] = strings.Join(problems, "; ")
		}
		for i, id := range score.Findings {
			if err := s.registry.Validate(id); err != nil {
				fields[fmt.Sprintf("%s.findings[%d]", field, i)] = err.Error()
			}
		}
	}

	if _, ok := rec.Dimensions[core.DimensionGrounding]; ok && !rec.SourcesProvided {
		fields["dimension_scores[Grounding]"] = "only meaningful when sources_provided is true"
	}
	if _, ok := rec.Dimensions[core.DimensionToolUse]; ok && !rec.ToolsUsed {
		fields["dimension_scores[Tool Use]"] = "only meaningful when tools_used is true"
	}

	if rec.Outcome.Valid() {
		if derived := core.DeriveOutcome(rec); rec.Outcome != derived {
			fields["overall_outcome"] = fmt.Sprintf(
				"stated %s but scores and criteria derive %s", rec.Outcome, derived)
		}
	}

	return core.AsValidationError(fields)
}
