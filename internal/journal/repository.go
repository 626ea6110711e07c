// Package journal implements the session repository: numbering, CRUD,
// filtering and additive import over the persisted session list.
package journal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/rcliao/learning-journal/internal/model"
)

type recordStore interface {
	Load(ctx context.Context) ([]model.Session, error)
	Save(ctx context.Context, sessions []model.Session) error
}

// Repository provides session operations. Every mutation loads the whole
// list, changes it in memory and saves it back; the mutex serializes those
// cycles within one process.
type Repository struct {
	records recordStore
	clock   Clock
	ids     IDGenerator
	loc     *time.Location
	log     *slog.Logger

	mu sync.Mutex
}

// Option configures a Repository.
type Option func(*Repository)

// WithClock overrides the wall clock.
func WithClock(c Clock) Option {
	return func(r *Repository) { r.clock = c }
}

// WithIDGenerator overrides the id source.
func WithIDGenerator(g IDGenerator) Option {
	return func(r *Repository) { r.ids = g }
}

// WithLocation sets the time zone that decides which calendar day is "today".
func WithLocation(loc *time.Location) Option {
	return func(r *Repository) {
		if loc != nil {
			r.loc = loc
		}
	}
}

// NewRepository creates a Repository over records.
func NewRepository(log *slog.Logger, records recordStore, opts ...Option) *Repository {
	if log == nil {
		log = slog.Default()
	}
	r := &Repository{
		records: records,
		clock:   SystemClock{},
		ids:     NewULIDGenerator(),
		loc:     time.Local,
		log:     log.With("service", "journal"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NextSessionNumber returns one more than the highest number in sessions,
// or 1 for an empty list. Non-positive numbers count as 0.
func NextSessionNumber(sessions []model.Session) int {
	highest := 0
	for _, s := range sessions {
		if s.SessionNumber > highest {
			highest = s.SessionNumber
		}
	}
	return highest + 1
}

// NextNumber returns the number the next created session will receive.
func (r *Repository) NextNumber(ctx context.Context) (int, error) {
	sessions, err := r.records.Load(ctx)
	if err != nil {
		return 0, err
	}
	return NextSessionNumber(sessions), nil
}

// Create stores a new session and returns it with its id, number and
// timestamps assigned.
func (r *Repository) Create(ctx context.Context, d model.Draft) (*model.Session, error) {
	if err := validateDraft(d); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	sessions, err := r.records.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := r.clock.Now()
	s := model.NewSession(d)
	s.Date = strings.TrimSpace(s.Date)
	s.TopicTitle = strings.TrimSpace(s.TopicTitle)
	normalizeLists(&s)
	s.ID = r.uniqueID(idSet(sessions))
	s.SessionNumber = NextSessionNumber(sessions)
	s.CreatedAt = now
	s.UpdatedAt = now
	if s.DurationMinutes == 0 {
		s.DurationMinutes = DurationFromTimes(s.Date, s.StartTime, s.EndTime)
	}
	if s.DayOfWeek == "" {
		s.DayOfWeek = DayOfWeek(s.Date)
	}

	sessions = append(sessions, s)
	if err := r.records.Save(ctx, sessions); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	r.log.InfoContext(ctx, "session created",
		slog.String("id", s.ID),
		slog.Int("session_number", s.SessionNumber),
		slog.String("date", s.Date),
	)
	return &s, nil
}

// Get returns the session with the given id.
func (r *Repository) Get(ctx context.Context, id string) (*model.Session, error) {
	sessions, err := r.records.Load(ctx)
	if err != nil {
		return nil, err
	}
	idx := indexOf(sessions, id)
	if idx < 0 {
		return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	s := sessions[idx]
	return &s, nil
}

// Update merges patch into the session with the given id. The id, number
// and creation time are never changed; updatedAt never moves backwards.
func (r *Repository) Update(ctx context.Context, id string, patch model.Patch) (*model.Session, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	sessions, err := r.records.Load(ctx)
	if err != nil {
		return nil, err
	}
	idx := indexOf(sessions, id)
	if idx < 0 {
		return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
	}

	s := sessions[idx]
	prevDate := s.Date
	patch.Apply(&s)
	s.Date = strings.TrimSpace(s.Date)
	s.TopicTitle = strings.TrimSpace(s.TopicTitle)
	normalizeLists(&s)

	if patch.DayOfWeek == nil && s.Date != prevDate {
		s.DayOfWeek = DayOfWeek(s.Date)
	}
	timesChanged := patch.StartTime != nil || patch.EndTime != nil || patch.Date != nil
	if patch.DurationMinutes == nil && timesChanged {
		if d := DurationFromTimes(s.Date, s.StartTime, s.EndTime); d > 0 {
			s.DurationMinutes = d
		}
	}

	now := r.clock.Now()
	if now.After(s.UpdatedAt) {
		s.UpdatedAt = now
	}
	if s.UpdatedAt.Before(s.CreatedAt) {
		s.UpdatedAt = s.CreatedAt
	}

	sessions[idx] = s
	if err := r.records.Save(ctx, sessions); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	r.log.InfoContext(ctx, "session updated",
		slog.String("id", s.ID),
		slog.Int("session_number", s.SessionNumber),
	)
	return &s, nil
}

// Delete removes the session with the given id. It reports whether a
// session was removed; an unknown id leaves the store untouched.
func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sessions, err := r.records.Load(ctx)
	if err != nil {
		return false, err
	}
	idx := indexOf(sessions, id)
	if idx < 0 {
		return false, nil
	}

	kept := make([]model.Session, 0, len(sessions)-1)
	kept = append(kept, sessions[:idx]...)
	kept = append(kept, sessions[idx+1:]...)
	if err := r.records.Save(ctx, kept); err != nil {
		return false, fmt.Errorf("delete session: %w", err)
	}

	r.log.InfoContext(ctx, "session deleted", slog.String("id", id))
	return true, nil
}

func (r *Repository) uniqueID(taken map[string]bool) string {
	for {
		id := r.ids.New()
		if id != "" && !taken[id] {
			return id
		}
	}
}

func normalizeLists(s *model.Session) {
	s.LearningModes = normalizeList(s.LearningModes)
	s.LanguageUsed = normalizeList(s.LanguageUsed)
	s.ToolsUsed = normalizeList(s.ToolsUsed)
}

func indexOf(sessions []model.Session, id string) int {
	for i := range sessions {
		if sessions[i].ID == id {
			return i
		}
	}
	return -1
}

func idSet(sessions []model.Session) map[string]bool {
	ids := make(map[string]bool, len(sessions))
	for _, s := range sessions {
		ids[s.ID] = true
	}
	return ids
}
