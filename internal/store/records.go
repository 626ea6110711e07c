package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/rcliao/learning-journal/internal/model"
)

// Slot keys. Each list lives under its own independent key.
const (
	SessionsKey   = "learningSessions"
	CategoriesKey = "lj_categories"
	LanguagesKey  = "lj_languages"
)

// DefaultCategories seeds the category set on first use.
var DefaultCategories = []string{"Algorithms", "Web", "Mobile", "ML", "Networking", "Systems", "IoT"}

// DefaultLanguages seeds the language set on first use. "None" marks
// sessions that involved no programming language.
var DefaultLanguages = []string{"JavaScript", "Python", "C++", "None"}

// RecordStore persists the session list and the two vocabularies.
type RecordStore struct {
	kv  KV
	log *slog.Logger
}

// NewRecordStore wraps kv. A nil logger falls back to slog.Default().
func NewRecordStore(kv KV, log *slog.Logger) *RecordStore {
	if log == nil {
		log = slog.Default()
	}
	return &RecordStore{kv: kv, log: log.With("component", "record_store")}
}

// EnsureInitialized seeds every slot that is absent. Safe to call on every start.
func (s *RecordStore) EnsureInitialized(ctx context.Context) error {
	if err := s.seed(ctx, SessionsKey, "[]"); err != nil {
		return err
	}
	if err := s.Categories().ensure(ctx); err != nil {
		return err
	}
	return s.Languages().ensure(ctx)
}

func (s *RecordStore) seed(ctx context.Context, key, value string) error {
	_, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("check %s: %w", key, err)
	}
	if ok {
		return nil
	}
	if err := s.kv.Set(ctx, key, value); err != nil {
		return fmt.Errorf("seed %s: %w", key, err)
	}
	s.log.Debug("slot seeded", slog.String("key", key))
	return nil
}

// Load returns the persisted sessions. An absent or undecodable slot reads
// as an empty list; only backend failures are returned.
func (s *RecordStore) Load(ctx context.Context) ([]model.Session, error) {
	raw, ok, err := s.kv.Get(ctx, SessionsKey)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}
	if !ok {
		return []model.Session{}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.log.Warn("malformed sessions slot, treating as empty",
			slog.String("key", SessionsKey),
			slog.String("error", err.Error()),
		)
		return []model.Session{}, nil
	}

	sessions := make([]model.Session, 0, len(items))
	for i, item := range items {
		sess, err := decodeSession(item)
		if err != nil {
			s.log.Warn("skipping unreadable session record",
				slog.Int("index", i),
				slog.String("error", err.Error()),
			)
			continue
		}
		sessions = append(sessions, sess)
	}
	return sessions, nil
}

// Save replaces the persisted list with sessions in one write.
func (s *RecordStore) Save(ctx context.Context, sessions []model.Session) error {
	if sessions == nil {
		sessions = []model.Session{}
	}
	b, err := json.Marshal(sessions)
	if err != nil {
		return fmt.Errorf("encode sessions: %w", err)
	}
	if err := s.kv.Set(ctx, SessionsKey, string(b)); err != nil {
		return fmt.Errorf("save sessions: %w", err)
	}
	return nil
}

// Reset empties the session list and restores both default vocabularies
// in one batch, so a failure leaves every slot as it was.
func (s *RecordStore) Reset(ctx context.Context) error {
	cats, err := json.Marshal(DefaultCategories)
	if err != nil {
		return fmt.Errorf("encode categories: %w", err)
	}
	langs, err := json.Marshal(DefaultLanguages)
	if err != nil {
		return fmt.Errorf("encode languages: %w", err)
	}

	if err := s.kv.SetAll(ctx, map[string]string{
		SessionsKey:   "[]",
		CategoriesKey: string(cats),
		LanguagesKey:  string(langs),
	}); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	s.log.Info("journal data cleared")
	return nil
}

// Categories returns the category vocabulary.
func (s *RecordStore) Categories() *Vocabulary {
	return &Vocabulary{kv: s.kv, key: CategoriesKey, defaults: DefaultCategories, log: s.log}
}

// Languages returns the language vocabulary.
func (s *RecordStore) Languages() *Vocabulary {
	return &Vocabulary{kv: s.kv, key: LanguagesKey, defaults: DefaultLanguages, log: s.log}
}
