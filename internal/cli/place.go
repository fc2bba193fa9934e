package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/glebone/cruxcat/internal/wpa"
)

// Place rewrites the supplicant configuration for a named location.
func Place(app *App, name string) error {
	place, ok := app.Config.Places[name]
	if !ok {
		return fmt.Errorf("unknown place %q (valid places: %s)", name, strings.Join(placeNames(app), ", "))
	}
	if err := wpa.Write(app.Config.WPAConf, place); err != nil {
		return err
	}
	fmt.Fprintf(app.Out, "wpa_supplicant.conf updated for %s\n", name)
	return nil
}

func placeNames(app *App) []string {
	names := make([]string, 0, len(app.Config.Places))
	for n := range app.Config.Places {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
