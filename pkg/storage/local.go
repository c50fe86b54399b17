package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileStorage defines the contract for uploaded-file storage.
type FileStorage interface {
	// UploadFile stores the reader's content and returns the public URL.
	// folder is a logical folder under the upload root (e.g. "uploads").
	UploadFile(ctx context.Context, r io.Reader, folder, fileName string) (string, error)
	// DeleteFile removes a stored file using its public URL.
	DeleteFile(ctx context.Context, fileURL string) error
}

type localStorage struct {
	root string
}

// NewLocalStorage creates a FileStorage backed by the public file tree at
// root. Stored files are referenced by their /<folder>/<name> path.
func NewLocalStorage(root string) (FileStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &localStorage{root: root}, nil
}

func (s *localStorage) UploadFile(ctx context.Context, r io.Reader, folder, fileName string) (string, error) {
	if s == nil || s.root == "" {
		return "", fmt.Errorf("local storage is not initialized")
	}

	dir := filepath.Join(s.root, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), SanitizeFileName(fileName))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return "/" + folder + "/" + name, nil
}

func (s *localStorage) DeleteFile(ctx context.Context, fileURL string) error {
	rel := strings.TrimPrefix(fileURL, "/")
	if rel == "" || strings.Contains(rel, "..") {
		return fmt.Errorf("invalid file URL: %s", fileURL)
	}

	if err := os.Remove(filepath.Join(s.root, filepath.FromSlash(rel))); err != nil {
		return fmt.Errorf("failed to delete %s: %w", fileURL, err)
	}
	return nil
}

// SanitizeFileName replaces characters that cannot appear in a stored name.
func SanitizeFileName(name string) string {
	name = filepath.Base(name)
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_")
	return replacer.Replace(name)
}
