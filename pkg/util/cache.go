// pkg/util/cache.go
// Copyright(c) 2025 route-plotter contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"os"
	"path/filepath"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// The disk cache holds things that are expensive to recompute but cheap
// to reload, most notably parsed sector files. The encoding is msgpack
// run through zstd; entries are keyed by a relative path.

func fullCachePath(path string) (string, error) {
	cd, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cd, "RoutePlotter", path), nil
}

func CacheStoreObject(path string, obj any) error {
	path, err := fullCachePath(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	b, err := msgpack.Marshal(obj)
	if err != nil {
		return err
	}
	b, err = CompressZstd(b)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// CacheRetrieveObject decodes the cache entry at path into obj, returning
// the time the entry was stored so that the caller can decide whether it
// is stale.
func CacheRetrieveObject(path string, obj any) (time.Time, error) {
	path, err := fullCachePath(path)
	if err != nil {
		return time.Time{}, err
	}

	fi, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return time.Time{}, err
	}
	if b, err = DecompressZstd(b); err != nil {
		return time.Time{}, err
	}
	return fi.ModTime(), msgpack.Unmarshal(b, obj)
}
