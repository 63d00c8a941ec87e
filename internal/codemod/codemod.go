// Package codemod rewrites slide component sources so they accept and
// forward an optional onNavigateHome callback.
//
// All edits are textual. Nothing here parses TSX: an entry point is found only
// when it is spelled exactly "export function <Name>()", and a call site only
// when it is exactly "<SlideContainer slideNumber={N}>" or "<SlideContainer>".
// Sources that format these differently (extra whitespace, other attributes,
// an acronym-cased component name) are left untouched without any diagnostic.
package codemod

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wizzomafizzo/slideprops/internal/constants"
	"github.com/wizzomafizzo/slideprops/internal/naming"
)

var (
	numberedContainer = regexp.MustCompile(
		`<` + constants.ContainerComponent + ` slideNumber=\{(\d+)\}>`)
	numberedContainerRepl = fmt.Sprintf(
		"<%s slideNumber={${1}} %s={%s}>",
		constants.ContainerComponent, constants.CallbackProp, constants.CallbackProp)

	bareContainer     = "<" + constants.ContainerComponent + ">"
	bareContainerRepl = fmt.Sprintf(
		"<%s %s={%s}>", constants.ContainerComponent, constants.CallbackProp, constants.CallbackProp)
)

// Result describes the outcome of applying the migration to one source.
type Result struct {
	Content             string
	NumberedSites       int
	BareSites           int
	DeclarationInjected bool
}

// Changed reports whether any rewrite matched.
func (r Result) Changed() bool {
	return r.DeclarationInjected || r.NumberedSites > 0 || r.BareSites > 0
}

// Apply injects the props declaration for component and threads the callback
// into every SlideContainer call site.
func Apply(content, component string) Result {
	content, injected := InjectProps(content, component)
	content, numbered, bare := ThreadCallback(content)

	return Result{
		Content:             content,
		DeclarationInjected: injected,
		NumberedSites:       numbered,
		BareSites:           bare,
	}
}

// InjectProps inserts a props interface declaring the optional callback
// immediately before the first zero-argument "export function <component>()"
// and rewrites that signature to destructure the callback.
//
// Nothing happens when "interface <component>Props" already appears in
// content, or when no zero-argument entry point is found.
func InjectProps(content, component string) (string, bool) {
	props := naming.PropsName(component)
	if strings.Contains(content, "interface "+props) {
		return content, false
	}

	entryPoint := regexp.MustCompile(`export function ` + regexp.QuoteMeta(component) + `\(\)`)
	loc := entryPoint.FindStringIndex(content)
	if loc == nil {
		return content, false
	}

	declaration := fmt.Sprintf("interface %s {\n  %s?: () => void;\n}\n\n", props, constants.CallbackProp)
	signature := fmt.Sprintf("export function %s({ %s }: %s)", component, constants.CallbackProp, props)

	return content[:loc[0]] + declaration + signature + content[loc[1]:], true
}

// ThreadCallback adds the callback attribute to every SlideContainer call
// site that carries only a numeric slideNumber or no attributes at all. It
// returns the rewritten content and the number of sites of each shape.
func ThreadCallback(content string) (string, int, int) {
	numbered := len(numberedContainer.FindAllStringIndex(content, -1))
	content = numberedContainer.ReplaceAllString(content, numberedContainerRepl)

	bare := strings.Count(content, bareContainer)
	content = strings.ReplaceAll(content, bareContainer, bareContainerRepl)

	return content, numbered, bare
}
