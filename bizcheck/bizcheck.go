// Package bizcheck reports business object interfaces that break the
// convention documented on interfaces.BusinessObject.
package bizcheck

import (
	"go/ast"
	"go/types"
	"strings"

	mapset "github.com/deckarep/golang-set"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const doc = `check business object interfaces against the convention

A business object interface embeds a marker interface (by default
bizobj/interfaces.BusinessObject). bizcheck reports:

  hierarchy       an interface embedding another business object interface
  exportedEmbed   a business object interface embedding an exported,
                  non business interface
  toMany          a business object interface method returning a collection
                  of business objects`

var Analyzer = &analysis.Analyzer{
	Name:     "bizcheck",
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var (
	configPath string
	markerList string
)

func init() {
	Analyzer.Flags.StringVar(&configPath, "config", "", "path of a JSON config file")
	Analyzer.Flags.StringVar(&markerList, "markers", "", "comma separated marker interfaces, import/path.TypeName")
}

func run(pass *analysis.Pass) (interface{}, error) {
	config, err := readConfig(configPath, markerList)
	if err != nil {
		return nil, err
	}
	c := newChecker(pass, config)
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	insp.Preorder([]ast.Node{(*ast.TypeSpec)(nil)}, func(n ast.Node) {
		c.checkTypeSpec(n.(*ast.TypeSpec))
	})
	return nil, nil
}

type checker struct {
	pass    *analysis.Pass
	rules   Rules
	markers mapset.Set
}

func newChecker(pass *analysis.Pass, config *Config) *checker {
	markers := mapset.NewThreadUnsafeSet()
	for _, m := range config.Markers {
		markers.Add(strings.TrimSpace(m))
	}
	return &checker{
		pass:    pass,
		rules:   *config.Rules,
		markers: markers,
	}
}

func (c *checker) checkTypeSpec(spec *ast.TypeSpec) {
	ifaceExpr, ok := spec.Type.(*ast.InterfaceType)
	if !ok || ifaceExpr.Methods == nil {
		return
	}
	obj := c.pass.TypesInfo.Defs[spec.Name]
	if obj == nil || c.isMarker(obj.Type()) {
		return
	}
	name := spec.Name.Name
	business := c.isBusiness(obj.Type())
	direct := false
	for _, field := range ifaceExpr.Methods.List {
		if len(field.Names) > 0 {
			continue
		}
		if t := c.pass.TypesInfo.TypeOf(field.Type); t != nil && c.isMarker(t) {
			direct = true
		}
	}
	for _, field := range ifaceExpr.Methods.List {
		t := c.pass.TypesInfo.TypeOf(field.Type)
		if t == nil {
			continue
		}
		if len(field.Names) == 0 {
			c.checkEmbed(field, name, t, direct)
			continue
		}
		sig, ok := t.(*types.Signature)
		if !ok || !business {
			continue
		}
		for _, ident := range field.Names {
			c.checkMethod(ident, name, sig)
		}
	}
}

func (c *checker) checkEmbed(field *ast.Field, iface string, embedded types.Type, direct bool) {
	if c.isMarker(embedded) {
		return
	}
	if c.isBusiness(embedded) {
		if c.rules.Hierarchy {
			c.pass.Reportf(field.Pos(), "business object interface %s extends business object interface %s",
				iface, c.typeName(embedded))
		}
		return
	}
	if direct && c.rules.ExportedEmbed && isExportedInterface(embedded) {
		c.pass.Reportf(field.Pos(), "business object interface %s embeds exported interface %s; share properties through an unexported interface",
			iface, c.typeName(embedded))
	}
}

func (c *checker) checkMethod(ident *ast.Ident, iface string, sig *types.Signature) {
	if !c.rules.ToMany {
		return
	}
	results := sig.Results()
	for i := 0; i < results.Len(); i++ {
		if elem, ok := c.toManyElem(results.At(i).Type()); ok {
			c.pass.Reportf(ident.Pos(), "%s.%s exposes a to-many relationship to %s; take the collection as a logic function parameter",
				iface, ident.Name, c.typeName(elem))
			return
		}
	}
}

func (c *checker) isMarker(t types.Type) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	if obj.Pkg() == nil {
		return false
	}
	return c.markers.Contains(obj.Pkg().Path() + "." + obj.Name())
}

// isBusiness reports whether t is an interface that embeds a marker,
// directly or through other embedded interfaces.
func (c *checker) isBusiness(t types.Type) bool {
	return c.embedsMarker(t, mapset.NewThreadUnsafeSet())
}

func (c *checker) embedsMarker(t types.Type, seen mapset.Set) bool {
	iface, ok := t.Underlying().(*types.Interface)
	if !ok {
		return false
	}
	if named, ok := types.Unalias(t).(*types.Named); ok {
		if seen.Contains(named) {
			return false
		}
		seen.Add(named)
	}
	for i := 0; i < iface.NumEmbeddeds(); i++ {
		e := iface.EmbeddedType(i)
		if c.isMarker(e) || c.embedsMarker(e, seen) {
			return true
		}
	}
	return false
}

func (c *checker) isBusinessOrMarker(t types.Type) bool {
	return c.isMarker(t) || c.isBusiness(t)
}

// toManyElem finds a business object element inside a collection type:
// slices, arrays, channels, maps, named collections and generic
// instantiations such as immutable.List[T], also behind pointers.
func (c *checker) toManyElem(t types.Type) (types.Type, bool) {
	switch u := types.Unalias(t).(type) {
	case *types.Pointer:
		return c.toManyElem(u.Elem())
	case *types.Named:
		if args := u.TypeArgs(); args != nil {
			for i := 0; i < args.Len(); i++ {
				if c.isBusinessOrMarker(args.At(i)) {
					return args.At(i), true
				}
			}
		}
		switch u.Underlying().(type) {
		case *types.Slice, *types.Array, *types.Chan, *types.Map:
			return c.toManyElem(u.Underlying())
		}
	case *types.Slice:
		if c.isBusinessOrMarker(u.Elem()) {
			return u.Elem(), true
		}
	case *types.Array:
		if c.isBusinessOrMarker(u.Elem()) {
			return u.Elem(), true
		}
	case *types.Chan:
		if c.isBusinessOrMarker(u.Elem()) {
			return u.Elem(), true
		}
	case *types.Map:
		if c.isBusinessOrMarker(u.Key()) {
			return u.Key(), true
		}
		if c.isBusinessOrMarker(u.Elem()) {
			return u.Elem(), true
		}
	}
	return nil, false
}

func (c *checker) typeName(t types.Type) string {
	return types.TypeString(t, types.RelativeTo(c.pass.Pkg))
}

func isExportedInterface(t types.Type) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok || !named.Obj().Exported() {
		return false
	}
	_, ok = named.Underlying().(*types.Interface)
	return ok
}
