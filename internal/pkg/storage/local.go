package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type LocalStorage struct {
	basePath string
	baseURL  string
}

func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{basePath: basePath, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// resolve keeps paths inside basePath; rejects traversal attempts.
func (s *LocalStorage) resolve(path string) (string, error) {
	cleaned := filepath.Clean("/" + path)
	full := filepath.Join(s.basePath, cleaned)
	if !strings.HasPrefix(full, filepath.Clean(s.basePath)+string(os.PathSeparator)) {
		return "", fmt.Errorf("invalid storage path: %s", path)
	}
	return full, nil
}

func (s *LocalStorage) Save(ctx context.Context, path string, content io.Reader) (string, error) {
	full, err := s.resolve(path)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	f, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.baseURL + "/" + strings.TrimPrefix(filepath.ToSlash(path), "/"), nil
}

func (s *LocalStorage) Read(ctx context.Context, path string) ([]byte, error) {
	full, err := s.resolve(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

func (s *LocalStorage) Delete(ctx context.Context, path string) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalStorage) Exists(ctx context.Context, path string) bool {
	full, err := s.resolve(path)
	if err != nil {
		return false
	}
	_, err = os.Stat(full)
	return err == nil
}
