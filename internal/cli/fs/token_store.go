package fs

import (
	"errors"
	"os"
	"path/filepath"
)

// TokenStore — файловое хранилище Bearer-токена для CLI.
type TokenStore struct {
	Path string
}

// Save сохраняет auth-токен в файл.
func (s TokenStore) Save(token string) error {
	if s.Path == "" {
		return errors.New("empty token file path")
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.Path, []byte(token), 0o600)
}

// Load читает auth-токен из файла.
func (s TokenStore) Load() (string, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return "", err
	}
	// обрезаем завершающие переводы строки/пробелы
	for len(b) > 0 {
		c := b[len(b)-1]
		if c == '\n' || c == '\r' || c == ' ' || c == '\t' {
			b = b[:len(b)-1]
			continue
		}
		break
	}
	if len(b) == 0 {
		return "", errors.New("empty token file")
	}
	return string(b), nil
}
