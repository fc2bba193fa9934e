package prt

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// CleanResult describes what a cleanup pass removed.
type CleanResult struct {
	Deleted    []string
	FreedBytes uint64
}

// Cleaner removes built package archives from the ports trees.
type Cleaner struct {
	dirs []string

	// freeBytes reports available bytes on the filesystem holding a
	// path. Injectable for tests; defaults to statfs on the host.
	freeBytes func(path string) (uint64, error)
}

// CleanerOption configures the cleaner.
type CleanerOption func(*Cleaner)

// WithFreeBytes overrides the free-space probe.
func WithFreeBytes(fn func(string) (uint64, error)) CleanerOption {
	return func(c *Cleaner) {
		if fn != nil {
			c.freeBytes = fn
		}
	}
}

// NewCleaner creates a Cleaner over the given ports trees.
func NewCleaner(dirs []string, opts ...CleanerOption) *Cleaner {
	c := &Cleaner{
		dirs:      dirs,
		freeBytes: FreeBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Clean walks the ports trees and deletes every built *.pkg.tar.gz
// archive. Deletions are committed as they happen; a failure midway
// leaves the already-deleted files gone.
func (c *Cleaner) Clean() (CleanResult, error) {
	var res CleanResult

	before, err := c.measure()
	if err != nil {
		return res, err
	}

	for _, base := range c.dirs {
		err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// A missing ports tree is normal on a trimmed install.
				if os.IsNotExist(err) {
					return filepath.SkipDir
				}
				return err
			}
			if d.IsDir() || !strings.HasSuffix(d.Name(), ".pkg.tar.gz") {
				return nil
			}
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("remove %s: %w", path, err)
			}
			res.Deleted = append(res.Deleted, path)
			return nil
		})
		if err != nil {
			return res, err
		}
	}

	after, err := c.measure()
	if err != nil {
		return res, err
	}
	if after > before {
		res.FreedBytes = after - before
	}
	return res, nil
}

// measure probes free space on the first ports tree that exists.
func (c *Cleaner) measure() (uint64, error) {
	for _, base := range c.dirs {
		if _, err := os.Stat(base); err != nil {
			continue
		}
		free, err := c.freeBytes(base)
		if err != nil {
			return 0, fmt.Errorf("free space on %s: %w", base, err)
		}
		return free, nil
	}
	return 0, nil
}
