package search

import (
	"time"

	"seeker/models"

	"github.com/jinzhu/gorm"
)

// Default list bounds, matching the two history views the UI renders.
const (
	DefaultRecentLimit = 5
	DefaultListLimit   = 20
)

// NoIdentity is the zero identity: "no session".
const NoIdentity int64 = 0

// Store owns the search-record lifecycle. Every operation takes the
// caller's identity and filters by it: records are invisible outside
// their owner, and an ownership mismatch is indistinguishable from
// absence.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// now is swappable so ordering tests can force timestamp collisions.
var now = func() int64 {
	return time.Now().UnixMilli()
}

// ListRecent returns up to limit records owned by identity, newest first.
// An absent identity is not an error: reads degrade to an empty list.
func (s *Store) ListRecent(identity int64, limit int) ([]models.Search, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return s.list(identity, limit)
}

// ListAll is the larger history view. Same ordering as ListRecent.
func (s *Store) ListAll(identity int64, limit int) ([]models.Search, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.list(identity, limit)
}

func (s *Store) list(identity int64, limit int) ([]models.Search, error) {
	items := []models.Search{}
	if identity == NoIdentity {
		return items, nil
	}

	// created_at collides at ms resolution; id preserves insertion order.
	err := s.db.
		Where("user_id = ?", identity).
		Order("created_at desc, id desc").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, newError(ErrorInternal, "store_list_error", err)
	}

	for i := range items {
		if err := items[i].DecodeSources(); err != nil {
			return nil, newError(ErrorInternal, "store_decode_error", err)
		}
	}
	return items, nil
}

// Insert persists a new record for identity and returns its id. The
// timestamp is assigned here, never taken from the caller.
func (s *Store) Insert(identity int64, query, response string, sources []models.SearchSource) (int64, error) {
	if identity == NoIdentity {
		return 0, newError(ErrorUnauthenticated, "no_identity", nil)
	}

	item := models.Search{
		UserID:    identity,
		Query:     query,
		Response:  response,
		Sources:   sources,
		CreatedAt: now(),
	}
	if err := item.EncodeSources(); err != nil {
		return 0, newError(ErrorInternal, "store_encode_error", err)
	}

	if err := s.db.Create(&item).Error; err != nil {
		return 0, newError(ErrorInternal, "store_insert_error", err)
	}
	return item.ID, nil
}

// Delete removes identity's record permanently. A record that does not
// exist and a record owned by someone else both come back NOT_FOUND, so
// callers never learn about other users' records.
func (s *Store) Delete(identity int64, recordID int64) error {
	if identity == NoIdentity {
		return newError(ErrorUnauthenticated, "no_identity", nil)
	}

	res := s.db.Where("id = ? AND user_id = ?", recordID, identity).Delete(&models.Search{})
	if res.Error != nil {
		return newError(ErrorInternal, "store_delete_error", res.Error)
	}
	if res.RowsAffected == 0 {
		return newError(ErrorNotFound, "record_not_found", nil)
	}
	return nil
}
