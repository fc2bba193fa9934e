// Package prt drives the CRUX packaging toolchain (prt-get, pkgmk
// and pkgadd) through a CommandRunner. The tools themselves are
// opaque collaborators; this package only sequences them and parses
// their tabular output.
package prt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/glebone/cruxcat/internal/logging"
	"github.com/glebone/cruxcat/pkg/domain"
	"github.com/glebone/cruxcat/pkg/ports"
)

// ErrNoPackage is returned when a build produced no installable archive.
var ErrNoPackage = errors.New("no built package found")

// ErrPortDirNotFound is returned when a port has no directory in any
// of the configured ports trees.
var ErrPortDirNotFound = errors.New("port directory not found")

// Client wraps the packaging tools for one machine.
type Client struct {
	runner    ports.CommandRunner
	portsDirs []string
	logger    *slog.Logger
	progress  io.Writer
}

// ClientOption configures the client.
type ClientOption func(*Client)

// WithLogger sets a structured logger for tool invocations.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithProgress sets the writer for user-facing progress lines
// (builds and downloads stream their own output independently).
func WithProgress(w io.Writer) ClientOption {
	return func(c *Client) {
		if w != nil {
			c.progress = w
		}
	}
}

// NewClient creates a Client searching the given ports trees.
func NewClient(runner ports.CommandRunner, portsDirs []string, opts ...ClientOption) *Client {
	c := &Client{
		runner:    runner,
		portsDirs: portsDirs,
		logger:    logging.NewNop(),
		progress:  io.Discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Outdated runs `prt-get diff` and parses the resulting table.
func (c *Client) Outdated(ctx context.Context) ([]domain.Port, error) {
	res, err := c.runner.Output(ctx, domain.Command{Name: "prt-get", Args: []string{"diff"}})
	if err != nil {
		return nil, fmt.Errorf("prt-get diff: %w", err)
	}
	return ParseDiff(res.Stdout), nil
}

// ParseDiff extracts port rows from `prt-get diff` output. Header,
// ruler and empty lines are skipped; anything else with at least
// three columns is a port row.
func ParseDiff(out string) []domain.Port {
	var outdated []domain.Port
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, "Port") ||
			strings.HasPrefix(line, "Differences") ||
			strings.HasPrefix(line, "====") ||
			strings.HasPrefix(line, "---") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) >= 3 {
			outdated = append(outdated, domain.Port{
				Name:      fields[0],
				Installed: fields[1],
				Available: fields[2],
			})
		}
	}
	return outdated
}

// PortDir locates the directory for a port across the ports trees.
func (c *Client) PortDir(name string) (string, error) {
	for _, base := range c.portsDirs {
		dir := filepath.Join(base, name)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrPortDirNotFound, name)
}

// BuiltPackages lists package archives for a port present in its port
// directory, sorted newest-looking first (reverse lexical, same rule
// pkgmk uses for release suffixes).
func (c *Client) BuiltPackages(name string) ([]string, error) {
	dir, err := c.PortDir(name)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		n := e.Name()
		if strings.HasPrefix(n, name) && strings.HasSuffix(n, ".pkg.tar.gz") {
			files = append(files, n)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(files)))
	return files, nil
}

// Install installs a built package archive via `sudo pkgadd -u`.
func (c *Client) Install(ctx context.Context, pkgFile string) error {
	fmt.Fprintf(c.progress, "Executing: sudo pkgadd -u %s\n", pkgFile)
	if err := c.runner.Run(ctx, domain.Command{Name: "sudo", Args: []string{"pkgadd", "-u", pkgFile}}); err != nil {
		return fmt.Errorf("pkgadd: %w", err)
	}
	return nil
}
