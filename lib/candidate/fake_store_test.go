package candidate

import (
	"context"
	"io"
	"onboarding-backend/lib/apperr"
	candidatestore "onboarding-backend/lib/candidate/store"
	dbmodels "onboarding-backend/models/db"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// fakeStore keeps candidates in memory; a transaction works on a snapshot that is
// committed only when fn succeeds.
type fakeStore struct {
	mu      *sync.Mutex
	recs    map[string]dbmodels.Candidate
	saveErr error
	saves   int
	clock   time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		mu:    &sync.Mutex{},
		recs:  map[string]dbmodels.Candidate{},
		clock: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (s *fakeStore) Create(rec dbmodels.Candidate) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		s.clock = s.clock.Add(time.Minute)
		rec.CreatedAt = s.clock
	}
	s.recs[rec.ID] = rec
	return rec.ID, nil
}

func (s *fakeStore) Save(rec *dbmodels.Candidate) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.recs[rec.ID] = *rec
	return nil
}

func (s *fakeStore) GetByID(id string) (*dbmodels.Candidate, error) {
	rec, ok := s.recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *fakeStore) GetByIDForUpdate(id string) (*dbmodels.Candidate, error) {
	return s.GetByID(id)
}

func (s *fakeStore) FindByEmail(email string) (*dbmodels.Candidate, error) {
	for _, rec := range s.recs {
		if rec.Email == email {
			found := rec
			return &found, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) List(filter candidatestore.Filter) ([]dbmodels.Candidate, error) {
	list := []dbmodels.Candidate{}
	for _, rec := range s.recs {
		if filter.ID != "" && rec.ID != filter.ID {
			continue
		}
		if filter.Status != "" && rec.Status != filter.Status {
			continue
		}
		list = append(list, rec)
	}
	sort.Slice(list, func(a, b int) bool {
		return list[a].CreatedAt.After(list[b].CreatedAt)
	})
	return list, nil
}

func (s *fakeStore) Transaction(fn func(store candidatestore.Provider) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make(map[string]dbmodels.Candidate, len(s.recs))
	for k, v := range s.recs {
		snapshot[k] = v
	}
	if err := fn(s); err != nil {
		s.recs = snapshot
		return err
	}
	return nil
}

type fakeFileStorage struct {
	files map[string][]byte
	err   error
}

func newFakeFileStorage() *fakeFileStorage {
	return &fakeFileStorage{files: map[string][]byte{}}
}

func (f *fakeFileStorage) UploadDocument(ctx context.Context, candidateID, fileName string, fileReader io.Reader, fileSize int64, contentType string) error {
	if f.err != nil {
		return f.err
	}
	body, err := io.ReadAll(fileReader)
	if err != nil {
		return err
	}
	f.files[candidateID+"/"+fileName] = body
	return nil
}

func (f *fakeFileStorage) GetDocument(ctx context.Context, candidateID, fileName string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, ok := f.files[candidateID+"/"+fileName]
	if !ok {
		return nil, apperr.NewNotFound("Document not found.")
	}
	return body, nil
}

var errStorageDown = errors.New("storage is down")
