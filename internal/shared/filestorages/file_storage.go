package filestorages

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrFileNotFound     = errors.New("file not found")
	ErrNotDirectory     = errors.New("not a directory")
	ErrInvalidKey       = errors.New("invalid file key")
	ErrInvalidRootDir   = errors.New("invalid root directory")
	ErrAppendNotAllowed = errors.New("append not supported by storage")
)

// Entry is one child of a listed key.
type Entry struct {
	Name  string // base name, without any trailing separator
	Key   string // key usable with Get or List, relative to the storage root
	IsDir bool
}

// Reader lists and opens keys relative to a root. Listings are returned in lexical
// name order.
//
//go:generate mockgen -source=file_storage.go -destination=./mocks/file_storage_mock.go -package=mocks
type Reader interface {
	// List returns the children of key. An empty key lists the root.
	List(ctx context.Context, key string) ([]Entry, error)
	Get(ctx context.Context, key string) (io.ReadCloser, error)
}

// FileStorage is a Reader that can also append to files.
type FileStorage interface {
	Reader
	// Append creates key if needed and appends everything read from r to it.
	Append(ctx context.Context, key string, r io.Reader) error
}

type fileStorage struct {
	dir string
}

func NewFileStorage(rootDir string) (FileStorage, error) {
	if rootDir == "" {
		return nil, fmt.Errorf("%w: root directory cannot be empty", ErrInvalidRootDir)
	}

	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve absolute path: %w", ErrInvalidRootDir, err)
	}

	return &fileStorage{dir: absRootDir}, nil
}

func (s *fileStorage) List(ctx context.Context, key string) ([]Entry, error) {
	dirPath := s.dir
	if key != "" {
		if err := s.validateKey(key); err != nil {
			return nil, err
		}
		dirPath = filepath.Join(s.dir, filepath.Clean(key))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(dirPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, key)
	}

	// os.ReadDir returns entries sorted by filename
	dirEntries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, dirEntry := range dirEntries {
		childKey := dirEntry.Name()
		if key != "" {
			childKey = filepath.ToSlash(filepath.Join(filepath.Clean(key), dirEntry.Name()))
		}
		entries = append(entries, Entry{
			Name:  dirEntry.Name(),
			Key:   childKey,
			IsDir: dirEntry.IsDir(),
		})
	}
	return entries, nil
}

func (s *fileStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := s.validateKey(key); err != nil {
		return nil, err
	}

	fullPath := filepath.Join(s.dir, key)

	file, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}

	return file, nil
}

func (s *fileStorage) Append(ctx context.Context, key string, r io.Reader) error {
	if err := s.validateKey(key); err != nil {
		return err
	}

	finalPath := filepath.Join(s.dir, filepath.Clean(key))
	if err := os.MkdirAll(filepath.Dir(finalPath), 0755); err != nil {
		return err
	}

	file, err := os.OpenFile(finalPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	if _, err := io.Copy(file, r); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	if err := file.Sync(); err != nil {
		return err
	}
	return file.Close()
}

func (s *fileStorage) validateKey(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	if filepath.IsAbs(key) {
		return ErrInvalidKey
	}
	cleanPath := filepath.Clean(key)
	if cleanPath == ".." || cleanPath == "." {
		return ErrInvalidKey
	}
	if strings.HasPrefix(cleanPath, "..") {
		return ErrInvalidKey
	}
	// Additional check: ensure the resolved path is within the root directory
	rel, err := filepath.Rel(s.dir, filepath.Join(s.dir, cleanPath))
	if err != nil || strings.HasPrefix(rel, "..") {
		return ErrInvalidKey
	}
	return nil
}
