// Package naming derives component and file names from slide identifiers.
package naming

import (
	"strings"
	"unicode/utf8"

	"github.com/wizzomafizzo/slideprops/internal/constants"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ComponentName converts a hyphenated slide name into the exported component
// name: each segment gets an upper-case first character and a lower-case
// tail, and the segments are joined without a separator. "slide-ngfw" becomes
// "SlideNgfw" and "slide-3d-view" becomes "Slide3dView".
func ComponentName(slide string) string {
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)

	var b strings.Builder
	for _, segment := range strings.Split(slide, "-") {
		_, size := utf8.DecodeRuneInString(segment)
		b.WriteString(upper.String(segment[:size]))
		b.WriteString(lower.String(segment[size:]))
	}
	return b.String()
}

// PropsName returns the props interface name for a component.
func PropsName(component string) string {
	return component + constants.PropsSuffix
}

// FileName returns the source file name for a slide.
func FileName(slide, ext string) string {
	return slide + ext
}
