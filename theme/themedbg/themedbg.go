/*
Package themedbg renders a resolved theme tree for debugging.

The output is an indented tree: the global scope first, then every
element with its base properties and state overrides. Handy in tests
and when chasing down why a property resolves the way it does.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package themedbg

import (
	"fmt"

	tp "github.com/xlab/treeprint"
	"github.com/wolfyui/wolfy/theme"
)

// Dump renders the whole tree as text.
func Dump(t *theme.Tree) string {
	p := tp.New()
	globals := p.AddBranch("* (globals)")
	for _, name := range t.Globals() {
		v, _ := t.Global(name)
		globals.AddNode(fmt.Sprintf("%s: %s", name, v))
	}
	for _, element := range t.Elements() {
		branch := p.AddBranch(element)
		node := t.Node(element)
		for _, name := range node.Properties() {
			v, _ := node.Property(name)
			branch.AddNode(fmt.Sprintf("%s: %s", name, v))
		}
		for _, state := range node.States() {
			sub := branch.AddBranch("." + state)
			for _, name := range node.StateProperties(state) {
				v, _ := node.StateProperty(state, name)
				sub.AddNode(fmt.Sprintf("%s: %s", name, v))
			}
		}
	}
	return p.String()
}
