package service

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"HealthKeeper/internal/mlclient"
	"HealthKeeper/internal/model"
	"HealthKeeper/internal/repo"
)

// Predictor — внешний сервис предсказаний. Его недоступность не является ошибкой
// загрузки: сервис подменяет результат фиксированным fallback-ответом.
type Predictor interface {
	Predict(ctx context.Context, filename string) (*mlclient.Prediction, error)
}

// UploadService сохраняет файл на диск, фиксирует строку Upload и дергает ML-сервис.
type UploadService struct {
	repo   repo.UploadRepository
	ml     Predictor
	dir    string
	logger *zap.SugaredLogger
}

func NewUploadService(r repo.UploadRepository, ml Predictor, dir string, logger *zap.SugaredLogger) *UploadService {
	return &UploadService{repo: r, ml: ml, dir: dir, logger: logger}
}

// UploadResult — сохранённая строка Upload плюс результат предсказания
// (настоящий или подменный).
type UploadResult struct {
	Upload *model.Upload
	ML     *mlclient.Prediction
}

// Accept сохраняет файл под сгенерированным именем, пишет строку Upload и
// запрашивает предсказание. declaredType может быть пустым — тогда тип
// определяется по содержимому файла.
func (s *UploadService) Accept(ctx context.Context, userID int64, file io.Reader, declaredType, metadata string) (*UploadResult, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, err
	}

	name := uuid.NewString()
	path := filepath.Join(s.dir, name)
	if err := writeFile(path, file); err != nil {
		return nil, err
	}

	filetype := declaredType
	if filetype == "" {
		if mt, err := mimetype.DetectFile(path); err == nil {
			filetype = mt.String()
		}
	}

	if metadata == "" {
		metadata = "{}"
	}

	up := &model.Upload{
		UserID:   userID,
		Filename: name,
		Filetype: filetype,
		Metadata: metadata,
	}
	if err := s.repo.Create(ctx, up); err != nil {
		return nil, err
	}

	ml, err := s.ml.Predict(ctx, name)
	if err != nil {
		// недоступность ML-сервиса не влияет на загрузку: подставляем фиксированный ответ
		s.logger.Infow("ml service unavailable, using fallback", "filename", name, "error", err)
		ml = mlclient.Fallback()
	}

	return &UploadResult{Upload: up, ML: ml}, nil
}

func writeFile(path string, src io.Reader) error {
	dst, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return err
	}
	return dst.Close()
}
