/*
Package theme is the query surface of the wolfy styling engine.

A theme is authored as a small CSS-like stylesheet. Parsing compiles the
source text into an immutable Tree; widgets then ask the tree for the
effective value of a property in a given interaction state through typed
getters:

	tree, err := theme.Load("default.rasi")
	if err != nil {
		// fall back to an empty tree, never crash the UI
		tree = theme.Empty()
	}
	fg := tree.GetColor("entry", "focused", "text-color", style.White)

Resolution walks three scopes: the element's state map, the element's
base map, then the global map built from '*' rules. The bare identifier
'inherit' short-circuits the element scopes and resolves from the global
map. Structural validity is checked loudly at parse time; after that all
getters are fail-soft and degrade to the caller's default, so partial or
evolving stylesheets never break the application.

Trees are immutable snapshots. Hot reload builds a brand-new tree and
swaps the reference (see package theme/watch); there is no in-place
mutation of a live tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package theme

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wolfy.theme'.
func tracer() tracing.Trace {
	return tracing.Select("wolfy.theme")
}
