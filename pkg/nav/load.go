// pkg/nav/load.go
// Copyright(c) 2025 route-plotter contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package nav

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/19wintersp/route-plotter/pkg/log"
	"github.com/19wintersp/route-plotter/pkg/util"
)

// LoadSectorFile reads and parses the sector file at path, transparently
// decompressing ".zst" files and picking up a companion ESE file next to
// it if one exists. Parsed files are cached on disk keyed by content
// hash since large sector files take a little while to parse.
func LoadSectorFile(path string, lg *log.Logger) (*SectorFile, error) {
	sct, err := readMaybeZstd(path)
	if err != nil {
		return nil, err
	}

	var ese []byte
	for _, ext := range []string{".ese", ".ese.zst"} {
		p := strings.TrimSuffix(strings.TrimSuffix(path, ".zst"), filepath.Ext(strings.TrimSuffix(path, ".zst"))) + ext
		if b, err := readMaybeZstd(p); err == nil {
			ese = b
			lg.Infof("%s: loaded companion ESE file", p)
			break
		}
	}

	h := sha256.Sum256(append(util.DuplicateSlice(sct), ese...))
	cachePath := "sct/" + hex.EncodeToString(h[:8]) + ".msgpack"

	var sf SectorFile
	if _, err := util.CacheRetrieveObject(cachePath, &sf); err == nil && len(sf.Elements) > 0 {
		lg.Infof("%s: loaded from parse cache", path)
		return &sf, nil
	}

	var e util.ErrorLogger
	parsed := ParseSectorFile(sct, ese, &e)
	if e.HaveErrors() {
		e.PrintErrors(lg)
	}
	if len(parsed.Elements) == 0 {
		return nil, fmt.Errorf("%s: no navigation data found in sector file", path)
	}

	if err := util.CacheStoreObject(cachePath, parsed); err != nil {
		lg.Warnf("%s: unable to cache parsed sector file: %v", cachePath, err)
	}
	return parsed, nil
}

func readMaybeZstd(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if filepath.Ext(path) == ".zst" {
		return util.DecompressZstd(b)
	}
	return b, nil
}
