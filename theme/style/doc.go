/*
Package style provides the scalar value types of the wolfy theme engine:
colors, unit-tagged distances, paddings, borders and the layout context
needed to resolve relative units into physical pixels.

These types are plain immutable values. They carry no reference to the
stylesheet they were parsed from and may be freely copied, compared and
cached by clients.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wolfy.theme'.
func tracer() tracing.Trace {
	return tracing.Select("wolfy.theme")
}
