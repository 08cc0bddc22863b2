package typescript

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/cuba-labs/frontgen/restgen/model"
)

// ImportInfo is a symbol imported from a module.
type ImportInfo struct {
	Name   string
	Module string
}

// importsOf returns the imports a resolved parameter type requires.
func importsOf(t model.TypeRef) []ImportInfo {
	refs := model.Imports(t)
	if len(refs) == 0 {
		return nil
	}
	infos := make([]ImportInfo, len(refs))
	for i, ref := range refs {
		infos[i] = ImportInfo{Name: ref.ClassName, Module: ref.Module}
	}
	return infos
}

// bindImports assigns a module-unique local name to every class referenced by
// the parameters of services, in reference order. The first class of a name
// keeps it; a later class of the same name from another module, or a class
// named like a name already taken in namer, is imported under an alias and
// reported with an import_conflict warning.
func bindImports(services []model.ServiceDescriptor, resolver *model.Resolver, namer *Namer) (map[ImportInfo]string, []model.Warning) {
	locals := make(map[ImportInfo]string)
	var warnings []model.Warning
	for _, svc := range services {
		for _, m := range svc.Methods {
			for _, p := range m.Params {
				for _, info := range importsOf(resolver.Resolve(p.Type)) {
					if _, ok := locals[info]; ok {
						continue
					}
					local := namer.Unique(info.Name)
					locals[info] = local
					if local == info.Name {
						continue
					}
					warnings = append(warnings, model.Warning{
						Code:    model.WarnImportConflict,
						Message: fmt.Sprintf("%s from %s is imported as %s", info.Name, quote(info.Module), local),
						Service: svc.Name,
						Method:  m.Name,
					})
				}
			}
		}
	}
	return locals, warnings
}

// createIncludes deduplicates imports and groups them into one declaration per
// module, binding each symbol to its name in locals. Modules and the symbols
// within a module are sorted.
func createIncludes(infos []ImportInfo, locals map[ImportInfo]string) []*ImportDecl {
	byModule := make(map[string][]ImportSpec)
	seen := make(map[ImportInfo]bool)
	for _, info := range infos {
		if seen[info] {
			continue
		}
		seen[info] = true
		spec := ImportSpec{Name: info.Name}
		if local, ok := locals[info]; ok && local != info.Name {
			spec.Alias = local
		}
		byModule[info.Module] = append(byModule[info.Module], spec)
	}

	decls := make([]*ImportDecl, 0, len(byModule))
	for module, specs := range byModule {
		slices.SortFunc(specs, func(a, b ImportSpec) int {
			return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.Alias, b.Alias))
		})
		decls = append(decls, &ImportDecl{Specs: specs, Module: module})
	}
	slices.SortFunc(decls, func(a, b *ImportDecl) int {
		return cmp.Compare(a.Module, b.Module)
	})
	return decls
}
