package convert

import (
	"github.com/typelift/typelift/liftgen/csem"
	"github.com/typelift/typelift/liftgen/layout"
)

// Context is the state of one conversion pass over a translation unit: the
// declared and defined tag-name registries, the layout table, and the target
// the layout facts are computed for.
//
// The registries are written only by the pass driver as it walks
// declarations; the converter itself treats them as a read-only oracle. The
// driver must mark a tag declared before any pointer to it is converted, and
// defined before any repeat reference to it is converted.
type Context struct {
	Target *csem.TargetInfo
	Layout *layout.Table

	decls map[string]struct{}
	defs  map[string]struct{}
}

// NewContext returns a fresh pass context for the given target.
func NewContext(target *csem.TargetInfo) *Context {
	return &Context{
		Target: target,
		Layout: layout.NewTable(),
		decls:  make(map[string]struct{}),
		defs:   make(map[string]struct{}),
	}
}

// DeclareType marks a tag name as declared: the name is known and forward
// references to it are valid.
func (c *Context) DeclareType(name string) {
	c.decls[name] = struct{}{}
}

// DefineType marks a tag name as defined: its full member layout has been
// materialized.
func (c *Context) DefineType(name string) {
	c.defs[name] = struct{}{}
}

// IsDeclared reports whether a tag name has been declared.
func (c *Context) IsDeclared(name string) bool {
	_, ok := c.decls[name]
	return ok
}

// IsDefined reports whether a tag name has been defined.
func (c *Context) IsDefined(name string) bool {
	_, ok := c.defs[name]
	return ok
}
