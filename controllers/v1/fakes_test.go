package apiv1

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"onboarding-backend/lib/apperr"
	"onboarding-backend/lib/candidate"
	candidateauthhandler "onboarding-backend/lib/candidate-auth"
	candidatestore "onboarding-backend/lib/candidate/store"
	xlsexport "onboarding-backend/lib/export/xls"
	staffauthhandler "onboarding-backend/lib/staff/auth"
	authutils "onboarding-backend/lib/utils/auth-utils"
	"onboarding-backend/middleware"
	dbmodels "onboarding-backend/models/db"
	"sort"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type memCandidateStore struct {
	recs  map[string]dbmodels.Candidate
	clock time.Time
}

func newMemCandidateStore() *memCandidateStore {
	return &memCandidateStore{
		recs:  map[string]dbmodels.Candidate{},
		clock: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (s *memCandidateStore) Create(rec dbmodels.Candidate) (string, error) {
	for _, existing := range s.recs {
		if existing.Email == rec.Email {
			return "", apperr.NewValidation("duplicate email")
		}
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	s.clock = s.clock.Add(time.Minute)
	rec.CreatedAt = s.clock
	s.recs[rec.ID] = rec
	return rec.ID, nil
}

func (s *memCandidateStore) Save(rec *dbmodels.Candidate) error {
	s.recs[rec.ID] = *rec
	return nil
}

func (s *memCandidateStore) GetByID(id string) (*dbmodels.Candidate, error) {
	rec, ok := s.recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *memCandidateStore) GetByIDForUpdate(id string) (*dbmodels.Candidate, error) {
	return s.GetByID(id)
}

func (s *memCandidateStore) FindByEmail(email string) (*dbmodels.Candidate, error) {
	for _, rec := range s.recs {
		if rec.Email == email {
			found := rec
			return &found, nil
		}
	}
	return nil, nil
}

func (s *memCandidateStore) List(filter candidatestore.Filter) ([]dbmodels.Candidate, error) {
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

func (s *memCandidateStore) Transaction(fn func(store candidatestore.Provider) error) error {
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

type memStaffStore struct {
	users map[string]dbmodels.StaffUser
}

func (s *memStaffStore) Create(rec dbmodels.StaffUser) (string, error) {
	rec.ID = uuid.NewString()
	s.users[rec.Email] = rec
	return rec.ID, nil
}

func (s *memStaffStore) FindByEmail(email string) (*dbmodels.StaffUser, error) {
	user, ok := s.users[email]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (s *memStaffStore) Update(userID string, updMap map[string]interface{}) error {
	return nil
}

func (s *memStaffStore) Count() (int64, error) {
	return int64(len(s.users)), nil
}

type memFileStorage struct {
	files map[string][]byte
}

func (f *memFileStorage) UploadDocument(ctx context.Context, candidateID, fileName string, fileReader io.Reader, fileSize int64, contentType string) error {
	body, err := io.ReadAll(fileReader)
	if err != nil {
		return err
	}
	f.files[candidateID+"/"+fileName] = body
	return nil
}

func (f *memFileStorage) GetDocument(ctx context.Context, candidateID, fileName string) ([]byte, error) {
	body, ok := f.files[candidateID+"/"+fileName]
	if !ok {
		return nil, apperr.NewNotFound("Document not found.")
	}
	return body, nil
}

type testEnv struct {
	app     *fiber.App
	store   *memCandidateStore
	staff   *memStaffStore
	files   *memFileStorage
	healthy error
}

type envOption func(env *testEnv)

func withFiles() envOption {
	return func(env *testEnv) {
		env.files = &memFileStorage{files: map[string][]byte{}}
	}
}

func newTestEnv(t *testing.T, trustClientRole bool, opts ...envOption) *testEnv {
	env := &testEnv{
		store: newMemCandidateStore(),
		staff: &memStaffStore{users: map[string]dbmodels.StaffUser{}},
	}
	for _, opt := range opts {
		opt(env)
	}
	tokens := authutils.NewTokenIssuer(testSecret, 3600)
	if env.files != nil {
		candidate.Instance = candidate.NewInstance(env.store, env.files)
	} else {
		candidate.Instance = candidate.NewInstance(env.store, nil)
	}
	candidateauthhandler.Instance = candidateauthhandler.NewInstance(env.store, tokens)
	staffauthhandler.Instance = staffauthhandler.NewInstance(env.staff, tokens)
	xlsexport.NewHandler()

	env.app = fiber.New()
	InitHealthRouters(env.app, func() error { return env.healthy })
	api := fiber.New()
	env.app.Mount("/api", api)
	api.Use(middleware.ResolveRole(testSecret, trustClientRole))
	InitAuthApiRouters(api)
	InitCandidateApiRouters(api)
	return env
}

type request struct {
	method string
	target string
	body   interface{}
	token  string
	header map[string]string
}

func (env *testEnv) do(t *testing.T, req request) (*http.Response, []byte) {
	var reader io.Reader
	if req.body != nil {
		raw, err := json.Marshal(req.body)
		require.Nil(t, err)
		reader = bytes.NewReader(raw)
	}
	httpReq := httptest.NewRequest(req.method, req.target, reader)
	if req.body != nil {
		httpReq.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if req.token != "" {
		httpReq.Header.Set(fiber.HeaderAuthorization, "Bearer "+req.token)
	}
	for k, v := range req.header {
		httpReq.Header.Set(k, v)
	}
	return env.send(t, httpReq)
}

func (env *testEnv) upload(t *testing.T, target, token, fileName string, content []byte) (*http.Response, []byte) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", fileName)
	require.Nil(t, err)
	_, err = part.Write(content)
	require.Nil(t, err)
	require.Nil(t, writer.Close())

	httpReq := httptest.NewRequest(fiber.MethodPost, target, body)
	httpReq.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
	if token != "" {
		httpReq.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	return env.send(t, httpReq)
}

func (env *testEnv) send(t *testing.T, httpReq *http.Request) (*http.Response, []byte) {
	resp, err := env.app.Test(httpReq, -1)
	require.Nil(t, err)
	respBody, err := io.ReadAll(resp.Body)
	require.Nil(t, err)
	return resp, respBody
}

func decode(t *testing.T, body []byte, out interface{}) {
	require.Nil(t, json.Unmarshal(body, out), string(body))
}
