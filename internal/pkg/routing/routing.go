// Package routing owns the static route table of the site shell and the
// pure resolution from a request path to the view that should be displayed.
// Everything HTTP-specific lives in internal/pkg/router; this package has no
// dependencies beyond the route constants and can be exercised directly.
package routing

import (
	"strings"

	"github.com/example/learnhub/internal/pkg/constants"
)

// View identifies one of the top-level pages the shell can display.
type View int

const (
	ViewNotFound View = iota
	ViewHome
	ViewStartLearning
)

// String returns the stable name of the view, used in counters, the JSON
// API, and template data.
func (v View) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewStartLearning:
		return "start-learning"
	default:
		return "not-found"
	}
}

// Route associates a path pattern (relative to constants.BasePath) with the
// view it displays.
type Route struct {
	Pattern string `json:"pattern"`
	View    View   `json:"-"`
}

// routes is the static route table. It is defined once at startup and never
// mutated; only the *active* route changes, and that lives in the request
// context, not here.
var routes = []Route{
	{Pattern: "/", View: ViewHome},
	{Pattern: "/start-learning", View: ViewStartLearning},
}

// Table returns a copy of the route table so callers cannot mutate it.
func Table() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// Resolve maps a request path to the view that should be displayed.
//
// Matching policy: exact and case-sensitive. Query strings and fragments are
// ignored, trailing slashes are ignored, and the fixed base prefix is
// optional, so "/learning/start-learning" and "/start-learning" resolve to
// the same view. Anything else, including the empty string, resolves to
// ViewNotFound. Resolve is a pure function of its input and the static
// table; it never fails.
func Resolve(path string) View {
	p := normalize(path)
	for _, r := range routes {
		if p == r.Pattern {
			return r.View
		}
	}
	return ViewNotFound
}

func normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		// Malformed input matches nothing rather than defaulting to "/".
		return path
	}
	if rest, ok := stripBasePath(path); ok {
		path = rest
	}
	for len(path) > 1 && strings.HasSuffix(path, "/") {
		path = path[:len(path)-1]
	}
	return path
}

// stripBasePath removes the constants.BasePath prefix when it is present as
// a whole segment. "/learningfoo" keeps its prefix; "/learning" alone maps
// to the root pattern.
func stripBasePath(path string) (string, bool) {
	if !strings.HasPrefix(path, constants.BasePath) {
		return path, false
	}
	rest := path[len(constants.BasePath):]
	if rest == "" {
		return "/", true
	}
	if !strings.HasPrefix(rest, "/") {
		return path, false
	}
	return rest, true
}
