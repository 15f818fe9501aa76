// Package fetch supplies raw table text to the catalog by resource key.
// The catalog core is agnostic to where the bytes come from; this package
// owns the addressing scheme.
package fetch

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_fetcher.go -package=mocks github.com/ammusto/khazain-browser/internal/fetch Fetcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when a resource key has no backing content.
var ErrNotFound = errors.New("resource not found")

// Fetcher retrieves raw table text by resource key.
type Fetcher interface {
	// FetchText returns the text behind key. The error wraps ErrNotFound
	// when nothing backs the key.
	FetchText(ctx context.Context, key string) (string, error)
}

// DirFetcher serves resource keys as files under a root data directory.
type DirFetcher struct {
	root string
}

// NewDirFetcher creates a DirFetcher rooted at dir.
func NewDirFetcher(dir string) *DirFetcher {
	return &DirFetcher{root: dir}
}

// FetchText reads the file named by key relative to the root directory.
func (f *DirFetcher) FetchText(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := filepath.Join(f.root, filepath.FromSlash(key))
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	return string(data), nil
}
