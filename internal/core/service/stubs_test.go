package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"time"

	"github.com/parlevel/stocktake-api/internal/core/domain"
	"github.com/parlevel/stocktake-api/internal/core/ports"
)

// stubItemRepo is an in-memory ItemRepository recording what the importer
// asked it to commit.
type stubItemRepo struct {
	items    []domain.Item
	nextID   int64
	applyErr error

	applyCalls     int
	appliedCreates []domain.Item
	appliedUpdates []domain.Item
}

func newStubItemRepo(items ...domain.Item) *stubItemRepo {
	r := &stubItemRepo{nextID: 1}
	for _, it := range items {
		it.ID = r.nextID
		r.nextID++
		r.items = append(r.items, it)
	}
	return r
}

func (r *stubItemRepo) ListAll(_ context.Context) ([]domain.Item, error) {
	out := make([]domain.Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *stubItemRepo) ApplyCatalogChanges(_ context.Context, creates []domain.Item, updates []domain.Item) error {
	r.applyCalls++
	r.appliedCreates = append([]domain.Item(nil), creates...)
	r.appliedUpdates = append([]domain.Item(nil), updates...)
	if r.applyErr != nil {
		return r.applyErr
	}
	for _, it := range creates {
		it.ID = r.nextID
		r.nextID++
		r.items = append(r.items, it)
	}
	for _, upd := range updates {
		for i := range r.items {
			if r.items[i].ID == upd.ID {
				r.items[i].Par = upd.Par
			}
		}
	}
	return nil
}

// stubStockRepo is an in-memory append-only StockRecordRepository.
type stubStockRepo struct {
	records   []domain.StockRecord
	nextID    int64
	insertErr error
}

func (r *stubStockRepo) InsertBatch(_ context.Context, records []domain.StockRecord) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	for _, rec := range records {
		r.nextID++
		rec.ID = r.nextID
		r.records = append(r.records, rec)
	}
	return nil
}

func (r *stubStockRepo) ListAll(_ context.Context) ([]domain.StockRecord, error) {
	out := make([]domain.StockRecord, len(r.records))
	copy(out, r.records)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.After(out[j].Timestamp)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *stubStockRepo) ListByItem(_ context.Context, itemID int64) ([]domain.StockRecord, error) {
	var out []domain.StockRecord
	for _, rec := range r.records {
		if rec.ItemID == itemID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.Before(out[j].Timestamp)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// stubArtifactStore records written artifacts in memory.
type stubArtifactStore struct {
	writes   [][][]string
	names    []string
	writeErr error
}

func (s *stubArtifactStore) Write(ts time.Time, rows [][]string) (string, error) {
	if s.writeErr != nil {
		return "", s.writeErr
	}
	rowsCopy := make([][]string, len(rows))
	for i, row := range rows {
		rowsCopy[i] = append([]string(nil), row...)
	}
	s.writes = append(s.writes, rowsCopy)
	name := ts.UTC().Format("20060102_150405") + ".csv"
	s.names = append(s.names, name)
	return name, nil
}

func (s *stubArtifactStore) List() ([]ports.ArtifactInfo, error) {
	return nil, errors.New("not implemented")
}

func (s *stubArtifactStore) Open(string) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(nil)), nil
}

// stubRevoker tracks revoked token ids.
type stubRevoker struct {
	revoked map[string]int64
}

func newStubRevoker() *stubRevoker {
	return &stubRevoker{revoked: make(map[string]int64)}
}

func (r *stubRevoker) Revoke(_ context.Context, tokenID string, ttlSeconds int64) error {
	r.revoked[tokenID] = ttlSeconds
	return nil
}

func (r *stubRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := r.revoked[tokenID]
	return ok, nil
}

// stubUserRepo is an in-memory UserRepository.
type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := r.users[username]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = r.nextID
	r.users[created.Username] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) UpdatePasswordHash(_ context.Context, userID int64, hash string) error {
	for _, u := range r.users {
		if u.ID == userID {
			u.PasswordHash = hash
			return nil
		}
	}
	return domain.ErrUserNotFound
}
