package ui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the CAT Soft banner with the running version.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	s1 := termenv.String("  ^..^   CAT Soft").Foreground(p.Color("#f472b6"))
	s2 := termenv.String(" (oo)    cruxcat " + version).Foreground(p.Color("#c084fc"))
	s3 := termenv.String("   --    Blahodatne on CruxPad").Foreground(p.Color("#818cf8"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println()
}
