package prt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/glebone/cruxcat/pkg/domain"
)

// Selection splits the outdated ports into the ones an update run will
// actually touch and the ones pre-assigned a terminal status by flags.
type Selection struct {
	// Update holds the ports to process, in diff order.
	Update []domain.Port

	// Preset maps port names excluded by flags to their status
	// (skipped, or not in list).
	Preset map[string]domain.UpdateStatus
}

// Select applies the update flags: --skip names, --list allow-list and
// the -n limit, in that order (the limit counts selected ports, not
// outdated ones).
func Select(outdated []domain.Port, skip, only []string, limit int) Selection {
	sel := Selection{Preset: make(map[string]domain.UpdateStatus)}

	for _, p := range outdated {
		if slices.Contains(skip, p.Name) {
			sel.Preset[p.Name] = domain.StatusSkipped
			continue
		}
		if only != nil && !slices.Contains(only, p.Name) {
			sel.Preset[p.Name] = domain.StatusNotListed
			continue
		}
		sel.Update = append(sel.Update, p)
	}

	if limit > 0 && limit < len(sel.Update) {
		for _, p := range sel.Update[limit:] {
			sel.Preset[p.Name] = domain.StatusSkipped
		}
		sel.Update = sel.Update[:limit]
	}
	return sel
}

// Update runs the full per-port flow: checksum refresh, source
// download, build, install. Each stage streams its output; the first
// failing stage aborts the port but not the whole run; the caller
// decides what a failed port means.
func (c *Client) Update(ctx context.Context, port domain.Port, skipMD5 bool) error {
	dir, err := c.PortDir(port.Name)
	if err != nil {
		return err
	}

	if !skipMD5 {
		if err := c.RefreshChecksums(ctx, dir); err != nil {
			return err
		}
	}
	if err := c.EnsureSources(ctx, dir); err != nil {
		return err
	}
	if err := c.Build(ctx, dir); err != nil {
		return err
	}

	pkgFile, err := c.NewestPackage(dir, port.Name)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.progress, "Updating %s from version %s to %s\n", port.Name, port.Installed, port.Available)
	return c.Install(ctx, pkgFile)
}

// RefreshChecksums regenerates the port's .md5sum with `pkgmk -um`.
// When the source tarball is not on disk yet, pkgmk refuses; in that
// case the sources are downloaded once and the refresh retried.
func (c *Client) RefreshChecksums(ctx context.Context, dir string) error {
	fmt.Fprintf(c.progress, "Updating Pkgfile with new MD5 checksum in %s...\n", dir)

	res, err := c.runner.Output(ctx, domain.Command{Name: "pkgmk", Args: []string{"-um"}, Dir: dir})
	if err == nil {
		return nil
	}
	c.logger.Debug("pkgmk -um failed", "dir", dir, "stderr", res.Stderr)

	if strings.Contains(res.Stderr, "Source file") && strings.Contains(res.Stderr, "not found") {
		fmt.Fprintln(c.progress, "Source file not found. Downloading sources with pkgmk -d...")
		if dlErr := c.runner.Run(ctx, domain.Command{Name: "pkgmk", Args: []string{"-d"}, Dir: dir}); dlErr != nil {
			return fmt.Errorf("download sources in %s: %w", dir, dlErr)
		}
		if _, retryErr := c.runner.Output(ctx, domain.Command{Name: "pkgmk", Args: []string{"-um"}, Dir: dir}); retryErr != nil {
			return fmt.Errorf("refresh checksums in %s: %w", dir, retryErr)
		}
		return nil
	}
	return fmt.Errorf("refresh checksums in %s: %w", dir, err)
}

// EnsureSources downloads the port's distfiles with `pkgmk -d`.
// A failure usually means a stale .md5sum, so the checksums are
// regenerated once and the download retried before giving up.
// Download progress streams to the inherited stdio.
func (c *Client) EnsureSources(ctx context.Context, dir string) error {
	fmt.Fprintf(c.progress, "Checking and downloading source files in %s...\n", dir)

	if err := c.runner.Run(ctx, domain.Command{Name: "pkgmk", Args: []string{"-d"}, Dir: dir}); err == nil {
		return nil
	}
	if err := c.RefreshChecksums(ctx, dir); err != nil {
		return err
	}
	if err := c.runner.Run(ctx, domain.Command{Name: "pkgmk", Args: []string{"-d"}, Dir: dir}); err != nil {
		return fmt.Errorf("download sources in %s: %w", dir, err)
	}
	return nil
}

// Build compiles and packages the port with `sudo pkgmk -if`,
// streaming compiler output to the inherited stdio.
func (c *Client) Build(ctx context.Context, dir string) error {
	fmt.Fprintf(c.progress, "Building the package in %s...\n", dir)
	if err := c.runner.Run(ctx, domain.Command{Name: "sudo", Args: []string{"pkgmk", "-if"}, Dir: dir}); err != nil {
		return fmt.Errorf("pkgmk build in %s: %w", dir, err)
	}
	return nil
}

// NewestPackage finds the most recent built archive for the port,
// checking the pkg/ subdirectory first and falling back to the port
// directory itself.
func (c *Client) NewestPackage(dir, name string) (string, error) {
	for _, d := range []string{filepath.Join(dir, "pkg"), dir} {
		entries, err := os.ReadDir(d)
		if err != nil {
			continue
		}
		var files []string
		for _, e := range entries {
			n := e.Name()
			if strings.HasPrefix(n, name+"#") && strings.HasSuffix(n, ".pkg.tar.gz") {
				files = append(files, n)
			}
		}
		if len(files) > 0 {
			sort.Sort(sort.Reverse(sort.StringSlice(files)))
			return filepath.Join(d, files[0]), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNoPackage, name)
}
