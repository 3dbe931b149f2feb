package store

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/wltime/internal/core/domain"
	"go.trai.ch/zerr"
)

const entryExt = ".json"

// fileEntry is the on-disk form of one cached duration.
type fileEntry struct {
	URL      string `json:"url"`
	Duration string `json:"duration"`
}

// File stores one JSON document per key in a directory.
type File struct {
	dir string
}

// NewFile creates a File store rooted at dir, creating the directory if needed.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", dir)
	}
	return &File{dir: dir}, nil
}

// Get returns the value stored under key.
func (s *File) Get(_ context.Context, key string) (string, bool, error) {
	//nolint:gosec // Path is constructed from the store directory and a hashed filename
	data, err := os.ReadFile(s.filename(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	var entry fileEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return "", false, zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error())
	}
	// A different URL under the same name is a hash collision, i.e. a miss.
	if entry.URL != key {
		return "", false, nil
	}
	return entry.Duration, true, nil
}

// Set stores value under key.
func (s *File) Set(_ context.Context, key, value string) error {
	data, err := json.Marshal(fileEntry{URL: key, Duration: value})
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}
	if err := writeFileAtomic(s.filename(key), data); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	return nil
}

// BytesInUse sums the sizes of all entry files.
func (s *File) BytesInUse(_ context.Context) (int64, error) {
	entries, err := s.entries()
	if err != nil {
		return 0, err
	}
	var n int64
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return 0, zerr.Wrap(err, domain.ErrStoreSizeFailed.Error())
		}
		n += info.Size()
	}
	return n, nil
}

// Clear removes every entry file. Other files in the directory are left alone.
func (s *File) Clear(_ context.Context) error {
	entries, err := s.entries()
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return zerr.Wrap(err, domain.ErrStoreClearFailed.Error())
		}
	}
	return nil
}

// Close does nothing.
func (s *File) Close() error {
	return nil
}

func (s *File) entries() ([]fs.DirEntry, error) {
	all, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", s.dir)
	}
	entries := all[:0]
	for _, e := range all {
		if e.Type().IsRegular() && strings.HasSuffix(e.Name(), entryExt) {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (s *File) filename(key string) string {
	return filepath.Join(s.dir, strconv.FormatUint(xxhash.Sum64String(key), 16)+entryExt)
}

// writeFileAtomic writes data to a temporary file and renames it into place.
func writeFileAtomic(filename string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}
	return os.Rename(tmpName, filename)
}
