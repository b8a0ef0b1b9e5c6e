package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"HealthKeeper/internal/auth"
	"HealthKeeper/internal/config"
	"HealthKeeper/internal/handlers"
	"HealthKeeper/internal/mlclient"
	"HealthKeeper/internal/model"
	"HealthKeeper/internal/repo"
	"HealthKeeper/internal/service"
)

// Minimal mocks
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockRecordRepo struct{ mock.Mock }

func (m *mockRecordRepo) ListByUser(ctx context.Context, userID int64) ([]model.Record, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.Record); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRecordRepo) Create(ctx context.Context, rec *model.Record) error {
	return m.Called(ctx, rec).Error(0)
}

func (m *mockRecordRepo) GetOwned(ctx context.Context, userID, id int64) (*model.Record, error) {
	args := m.Called(ctx, userID, id)
	if v, ok := args.Get(0).(*model.Record); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRecordRepo) UpdateOwned(ctx context.Context, userID, id int64, title, data string) (int64, error) {
	args := m.Called(ctx, userID, id, title, data)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRecordRepo) DeleteOwned(ctx context.Context, userID, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

var _ repo.RecordRepository = (*mockRecordRepo)(nil)

type mockUploadRepo struct{ mock.Mock }

func (m *mockUploadRepo) Create(ctx context.Context, up *model.Upload) error {
	return m.Called(ctx, up).Error(0)
}

func (m *mockUploadRepo) ListByUser(ctx context.Context, userID int64) ([]model.Upload, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.Upload); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UploadRepository = (*mockUploadRepo)(nil)

// стаб внешнего предиктора
type stubPredictor struct {
	p   *mlclient.Prediction
	err error
}

func (s *stubPredictor) Predict(ctx context.Context, filename string) (*mlclient.Prediction, error) {
	return s.p, s.err
}

var _ service.Predictor = (*stubPredictor)(nil)

// стаб проверки БД для /api/health
type stubPinger struct{ err error }

func (s *stubPinger) PingContext(ctx context.Context) error { return s.err }

// --- Helpers ---

type testEnv struct {
	router http.Handler
	cfg    *config.Config
	user   *mockUserRepo
	record *mockRecordRepo
	upload *mockUploadRepo
	ml     *stubPredictor
	ping   *stubPinger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cfg := &config.Config{AuthSecret: "test-secret", UploadMaxSizeMB: 1, UploadDir: t.TempDir()}
	logger := zap.NewNop().Sugar()

	env := &testEnv{
		cfg:    cfg,
		user:   &mockUserRepo{},
		record: &mockRecordRepo{},
		upload: &mockUploadRepo{},
		ml:     &stubPredictor{},
		ping:   &stubPinger{},
	}

	userSvc := service.NewUserService(env.user)
	recordSvc := service.NewRecordService(env.record)
	uploadSvc := service.NewUploadService(env.upload, env.ml, cfg.UploadDir, logger)

	h := handlers.NewHandler(userSvc, recordSvc, uploadSvc, env.ping, logger, cfg)
	env.router = h.Router
	return env
}

func addAuth(t *testing.T, req *http.Request, userID int64, email, secret string) {
	t.Helper()
	token, err := auth.IssueToken(userID, email, secret)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
}

func do(env *testEnv, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)
	return rr
}
