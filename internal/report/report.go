// Package report renders maintenance run records as markdown
// documents, both for files on disk and for the terminal.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/dustin/go-humanize"

	"github.com/glebone/cruxcat/pkg/domain"
)

// Markdown renders a run record as a markdown report document.
func Markdown(rec *domain.RunRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Crux %s report, %s\n\n", rec.Kind, rec.StartedAt.Format("2006-01-02 15:04:05"))

	if len(rec.Outcomes) > 0 {
		b.WriteString("| Port | Installed | Available | Status |\n")
		b.WriteString("| --- | --- | --- | --- |\n")
		for _, o := range rec.Outcomes {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
				o.Port.Name, o.Port.Installed, o.Port.Available, o.Status)
		}
		b.WriteString("\n")
	}

	if rec.Kind == domain.RunClean {
		if len(rec.Deleted) > 0 {
			b.WriteString("## Deleted packages\n\n")
			for _, f := range rec.Deleted {
				fmt.Fprintf(&b, "- %s\n", f)
			}
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Space freed: %s\n", humanize.IBytes(rec.FreedBytes))
	}
	return b.String()
}

// WriteFile saves the rendered report under dir, keeping the original
// script's timestamped naming scheme, and returns the file path.
func WriteFile(dir string, rec *domain.RunRecord) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	name := rec.StartedAt.Format("2006-01-02-15-04-05") + "-" + string(rec.Kind) + ".md"
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(Markdown(rec)), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// RenderTerminal renders a markdown document for the terminal.
func RenderTerminal(markdown string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	if err != nil {
		return "", fmt.Errorf("init renderer: %w", err)
	}
	return r.Render(markdown)
}
