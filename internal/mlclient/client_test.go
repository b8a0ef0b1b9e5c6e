package mlclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClient_Predict_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/predict", r.URL.Path)
		assert.Equal(t, "scan 1.png", r.URL.Query().Get("filename"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"prediction":"negative","confidence":0.87,"note":"model v2"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	p, err := c.Predict(context.Background(), "scan 1.png")
	assert.NoError(t, err)
	assert.Equal(t, "negative", p.Prediction)
	assert.InDelta(t, 0.87, p.Confidence, 1e-9)
	assert.Equal(t, "model v2", p.Note)
}

func TestClient_Predict_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)
	p, err := c.Predict(context.Background(), "f")
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_Predict_Unreachable(t *testing.T) {
	// сервер закрыт — транспортная ошибка
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(srv.URL)
	p, err := c.Predict(context.Background(), "f")
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_Predict_BadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	p, err := c.Predict(context.Background(), "f")
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestFallback_Shape(t *testing.T) {
	p := Fallback()
	assert.Equal(t, "positive", p.Prediction)
	assert.InDelta(t, 0.95, p.Confidence, 1e-9)
	assert.Equal(t, "ML service offline", p.Note)
}
