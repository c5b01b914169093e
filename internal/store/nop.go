package store

import (
	"errors"
	"time"

	"github.com/artinmajd/ai-cover-letter-generator/internal/model"
)

// NopStore is a no-op store used when history is disabled. Nothing is
// persisted and nothing can be read back.
type NopStore struct{}

func NewNopStore() *NopStore { return &NopStore{} }

func (s *NopStore) Save(rec model.LetterRecord) (int64, error) { return 0, nil }
func (s *NopStore) List() ([]model.LetterRecord, error)        { return nil, nil }
func (s *NopStore) Get(id int64) (model.LetterRecord, error) {
	return model.LetterRecord{}, errors.New("history is disabled")
}
func (s *NopStore) Prune(olderThan time.Duration) (int64, error) { return 0, nil }
func (s *NopStore) Close() error                                 { return nil }
