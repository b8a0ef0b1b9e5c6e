package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"HealthKeeper/internal/model"
)

func TestRecords_AuthRequired(t *testing.T) {
	env := newTestEnv(t)

	// без токена — 401
	rr := do(env, httptest.NewRequest(http.MethodGet, "/api/records", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// мусорный токен — 403
	req := httptest.NewRequest(http.MethodGet, "/api/records", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rr = do(env, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestRecords_List_DataRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	now := time.Now().UTC()
	env.record.On("ListByUser", mock.Anything, int64(9)).Return([]model.Record{
		{ID: 1, UserID: 9, Title: "t", Data: `{"a":1}`, CreatedAt: now},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/records", nil)
	addAuth(t, req, 9, "u@example.com", env.cfg.AuthSecret)
	rr := do(env, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var records []struct {
		ID    int64          `json:"id"`
		Title string         `json:"title"`
		Data  map[string]any `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &records))
	if assert.Len(t, records, 1) {
		// data возвращается ровно тем JSON, что был сохранён
		assert.Equal(t, map[string]any{"a": float64(1)}, records[0].Data)
	}
	env.record.AssertExpectations(t)
}

func TestRecords_Create(t *testing.T) {
	env := newTestEnv(t)

	t.Run("ok", func(t *testing.T) {
		env.record.ExpectedCalls = nil
		env.record.On("Create", mock.Anything, mock.MatchedBy(func(rec *model.Record) bool {
			return rec.UserID == 9 && rec.Title == "t" && rec.Data == `{"a":1}`
		})).Run(func(args mock.Arguments) {
			rec := args.Get(1).(*model.Record)
			rec.ID = 7
			rec.CreatedAt = time.Now().UTC()
		}).Return(nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/records", strings.NewReader(`{"title":"t","data":{"a":1}}`))
		req.Header.Set("Content-Type", "application/json")
		addAuth(t, req, 9, "u@example.com", env.cfg.AuthSecret)
		rr := do(env, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var body struct {
			ID   int64          `json:"id"`
			Data map[string]any `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, int64(7), body.ID)
		assert.Equal(t, map[string]any{"a": float64(1)}, body.Data)
		env.record.AssertExpectations(t)
	})

	t.Run("missing title", func(t *testing.T) {
		env.record.ExpectedCalls = nil

		req := httptest.NewRequest(http.MethodPost, "/api/records", strings.NewReader(`{"data":{"a":1}}`))
		req.Header.Set("Content-Type", "application/json")
		addAuth(t, req, 9, "u@example.com", env.cfg.AuthSecret)
		rr := do(env, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRecords_Update(t *testing.T) {
	env := newTestEnv(t)

	t.Run("ok", func(t *testing.T) {
		env.record.ExpectedCalls = nil
		env.record.On("UpdateOwned", mock.Anything, int64(9), int64(5), "new", `{"b":2}`).Return(int64(1), nil).Once()
		env.record.On("GetOwned", mock.Anything, int64(9), int64(5)).Return(&model.Record{ID: 5, UserID: 9, Title: "new", Data: `{"b":2}`}, nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/api/records/5", strings.NewReader(`{"title":"new","data":{"b":2}}`))
		req.Header.Set("Content-Type", "application/json")
		addAuth(t, req, 9, "u@example.com", env.cfg.AuthSecret)
		rr := do(env, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		env.record.AssertExpectations(t)
	})

	t.Run("not owned is 404", func(t *testing.T) {
		env.record.ExpectedCalls = nil
		// чужая запись: ноль затронутых строк
		env.record.On("UpdateOwned", mock.Anything, int64(9), int64(5), "x", `{}`).Return(int64(0), nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/api/records/5", strings.NewReader(`{"title":"x","data":{}}`))
		req.Header.Set("Content-Type", "application/json")
		addAuth(t, req, 9, "u@example.com", env.cfg.AuthSecret)
		rr := do(env, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		env.record.AssertExpectations(t)
	})

	t.Run("bad id", func(t *testing.T) {
		env.record.ExpectedCalls = nil

		req := httptest.NewRequest(http.MethodPut, "/api/records/abc", strings.NewReader(`{"title":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		addAuth(t, req, 9, "u@example.com", env.cfg.AuthSecret)
		rr := do(env, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRecords_Delete(t *testing.T) {
	env := newTestEnv(t)

	// репозиторий молчит и про несуществующий id — ответ всё равно success
	env.record.On("DeleteOwned", mock.Anything, int64(9), int64(123)).Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/records/123", nil)
	addAuth(t, req, 9, "u@example.com", env.cfg.AuthSecret)
	rr := do(env, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true}`, rr.Body.String())
	env.record.AssertExpectations(t)
}

func TestDashboard(t *testing.T) {
	env := newTestEnv(t)

	env.user.On("GetUserByID", mock.Anything, int64(9)).Return(&model.User{ID: 9, Email: "u@example.com", Name: "U"}, nil).Once()
	env.record.On("ListByUser", mock.Anything, int64(9)).Return([]model.Record{
		{ID: 1, UserID: 9, Title: "t", Data: `{"v":42}`},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	addAuth(t, req, 9, "u@example.com", env.cfg.AuthSecret)
	rr := do(env, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		User struct {
			ID    int64  `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
		Records []map[string]any `json:"records"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, int64(9), body.User.ID)
	assert.Len(t, body.Records, 1)
	env.user.AssertExpectations(t)
	env.record.AssertExpectations(t)
}
