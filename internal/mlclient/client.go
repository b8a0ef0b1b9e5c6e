package mlclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrUnavailable — сервис предсказаний недоступен или ответил не тем, что ожидали.
// Вызывающий обязан не превращать эту ошибку в ошибку запроса (см. UploadService).
var ErrUnavailable = errors.New("ml service unavailable")

// Prediction — ответ сервиса предсказаний.
type Prediction struct {
	Prediction string  `json:"prediction"`
	Confidence float64 `json:"confidence"`
	Note       string  `json:"note,omitempty"`
}

// Fallback возвращает фиксированный подменный ответ на случай недоступности сервиса.
// Форма зафиксирована контрактом: загрузка не должна зависеть от ML-сервиса.
func Fallback() *Prediction {
	return &Prediction{Prediction: "positive", Confidence: 0.95, Note: "ML service offline"}
}

// Client — HTTP-клиент сервиса предсказаний с ограниченным таймаутом.
type Client struct {
	baseURL string
	httpc   *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 5 * time.Second},
	}
}

// Predict отправляет POST {base}/predict?filename=<name>.
// Любая сетевая проблема, не-200 статус или нечитаемое тело — ErrUnavailable.
func (c *Client) Predict(ctx context.Context, filename string) (*Prediction, error) {
	u := c.baseURL + "/predict?filename=" + url.QueryEscape(filename)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var p Prediction
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &p, nil
}
