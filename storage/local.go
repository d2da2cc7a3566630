// Package storage writes build artifacts to the local filesystem.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ArtifactInfo describes a written artifact.
type ArtifactInfo struct {
	Path string
	Size int64
}

// Store is the artifact storage interface.
type Store interface {
	// Write stores the content at path, creating parent directories.
	Write(ctx context.Context, path string, content io.Reader) (ArtifactInfo, error)
	// Stat returns info about an existing artifact.
	Stat(path string) (ArtifactInfo, bool, error)
}

// LocalStore implements Store on the local filesystem.
type LocalStore struct{}

// NewLocalStore creates a new local artifact store.
func NewLocalStore() *LocalStore {
	return &LocalStore{}
}

// Write saves content to the local filesystem, creating the parent
// directory if needed.
func (s *LocalStore) Write(ctx context.Context, path string, content io.Reader) (ArtifactInfo, error) {
	if err := ctx.Err(); err != nil {
		return ArtifactInfo{}, err
	}

	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return ArtifactInfo{}, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	dst, err := os.Create(path)
	if err != nil {
		return ArtifactInfo{}, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, content)
	if err != nil {
		return ArtifactInfo{}, fmt.Errorf("failed to write file content: %w", err)
	}

	return ArtifactInfo{Path: path, Size: size}, nil
}

// Stat checks whether an artifact exists and reports its byte size.
func (s *LocalStore) Stat(path string) (ArtifactInfo, bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		return ArtifactInfo{Path: path, Size: info.Size()}, true, nil
	}
	if os.IsNotExist(err) {
		return ArtifactInfo{}, false, nil
	}
	return ArtifactInfo{}, false, err
}

// Ensure LocalStore implements Store.
var _ Store = (*LocalStore)(nil)
