/*
Package catalog locates and caches theme files.

Themes live as '.rasi' files in a themes directory and are addressed by
name: "dark" resolves to <dir>/dark.rasi, with the working directory as
a secondary lookup location. Loaded trees are cached per name; Reload
busts the cache entry and parses the file again, returning a fresh
immutable tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/wolfyui/wolfy/theme"
)

// Ext is the file extension of theme files.
const Ext = ".rasi"

// DefaultName is the theme name that is always listed, whether or not
// a file for it exists.
const DefaultName = "default"

// tracer traces with key 'wolfy.theme.catalog'.
func tracer() tracing.Trace {
	return tracing.Select("wolfy.theme.catalog")
}

// Catalog resolves theme names to files in a themes directory and
// caches parsed trees. A Catalog is not safe for concurrent use; the
// launcher owns one on its UI thread.
type Catalog struct {
	dir   string
	cache map[string]*theme.Tree
}

// New creates a catalog over the given themes directory.
func New(dir string) *Catalog {
	return &Catalog{
		dir:   dir,
		cache: make(map[string]*theme.Tree),
	}
}

// Dir returns the themes directory.
func (c *Catalog) Dir() string {
	return c.dir
}

// Find resolves a theme name to a file path. It tries the exact name
// inside the themes directory, then the name with the '.rasi' extension
// appended, then the extended name in the working directory.
func (c *Catalog) Find(name string) (string, bool) {
	exact := filepath.Join(c.dir, name)
	if fileExists(exact) {
		return exact, true
	}
	withExt := filepath.Join(c.dir, name+Ext)
	if fileExists(withExt) {
		return withExt, true
	}
	local := name + Ext
	if fileExists(local) {
		return local, true
	}
	return "", false
}

// Exists reports whether a theme of this name can be loaded. The
// default theme always exists; loading it without a file yields an
// empty tree.
func (c *Catalog) Exists(name string) bool {
	if _, ok := c.Find(name); ok {
		return true
	}
	return name == DefaultName
}

// Load resolves and parses a theme by name, serving repeated requests
// from the cache. The default theme degrades to an empty tree when no
// file backs it.
func (c *Catalog) Load(name string) (*theme.Tree, error) {
	if tree, ok := c.cache[name]; ok {
		return tree, nil
	}
	path, ok := c.Find(name)
	if !ok {
		if name == DefaultName {
			tracer().Infof("no default theme file, using an empty tree")
			tree := theme.Empty()
			c.cache[name] = tree
			return tree, nil
		}
		return nil, fmt.Errorf("theme not found: %s", name)
	}
	tree, err := theme.Load(path)
	if err != nil {
		return nil, err
	}
	c.cache[name] = tree
	return tree, nil
}

// Reload drops the cache entry for a theme and loads it again.
func (c *Catalog) Reload(name string) (*theme.Tree, error) {
	delete(c.cache, name)
	return c.Load(name)
}

// List returns the available theme names, sorted. The default theme is
// always included.
func (c *Catalog) List() []string {
	var names []string
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		tracer().Infof("cannot read themes directory %s: %v", c.dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), Ext))
	}
	if !contains(names, DefaultName) {
		names = append(names, DefaultName)
	}
	sort.Strings(names)
	return names
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
