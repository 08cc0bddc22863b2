package model

import "strings"

// Default import locations used when ResolverOptions leaves them empty.
const (
	DefaultEntitiesDir = "./entities"
	DefaultEnumsModule = "./enums/enums"
)

var primitiveTypes = map[string]PrimitiveKind{
	"boolean":           PrimitiveBool,
	"java.lang.Boolean": PrimitiveBool,

	"int":                  PrimitiveNumber,
	"long":                 PrimitiveNumber,
	"short":                PrimitiveNumber,
	"byte":                 PrimitiveNumber,
	"double":               PrimitiveNumber,
	"float":                PrimitiveNumber,
	"java.lang.Integer":    PrimitiveNumber,
	"java.lang.Long":       PrimitiveNumber,
	"java.lang.Short":      PrimitiveNumber,
	"java.lang.Byte":       PrimitiveNumber,
	"java.lang.Double":     PrimitiveNumber,
	"java.lang.Float":      PrimitiveNumber,
	"java.math.BigDecimal": PrimitiveNumber,
	"java.math.BigInteger": PrimitiveNumber,

	"char":                PrimitiveString,
	"String":              PrimitiveString,
	"java.lang.String":    PrimitiveString,
	"java.lang.Character": PrimitiveString,

	"java.util.UUID": PrimitiveUUID,

	"java.util.Date":           PrimitiveDateTime,
	"java.sql.Date":            PrimitiveDateTime,
	"java.sql.Time":            PrimitiveDateTime,
	"java.time.LocalDate":      PrimitiveDateTime,
	"java.time.LocalDateTime":  PrimitiveDateTime,
	"java.time.LocalTime":      PrimitiveDateTime,
	"java.time.OffsetDateTime": PrimitiveDateTime,
	"java.time.OffsetTime":     PrimitiveDateTime,

	"java.lang.Object": PrimitiveAny,
}

var collectionTypes = map[string]bool{
	"java.util.List":       true,
	"java.util.ArrayList":  true,
	"java.util.LinkedList": true,
	"java.util.Set":        true,
	"java.util.HashSet":    true,
	"java.util.Collection": true,
}

var mapTypes = map[string]bool{
	"java.util.Map":           true,
	"java.util.HashMap":       true,
	"java.util.LinkedHashMap": true,
}

// ResolverOptions configures where referenced classes are imported from.
type ResolverOptions struct {
	// EntitiesDir is the import prefix for entity modules, relative to the
	// generated file. Base project entities live in its "base" subdirectory.
	EntitiesDir string

	// EnumsModule is the import specifier of the module exporting all enums.
	EnumsModule string
}

// Resolver maps Java type names from the model to TypeRefs.
// A Resolver is immutable and safe for concurrent use.
type Resolver struct {
	entities map[string]ClassRef
	enums    map[string]ClassRef
}

// NewResolver indexes the entities and enums of pm by fully qualified name.
func (pm *ProjectModel) NewResolver(opts ResolverOptions) *Resolver {
	dir := strings.TrimSuffix(opts.EntitiesDir, "/")
	if dir == "" {
		dir = DefaultEntitiesDir
	}
	enumsModule := opts.EnumsModule
	if enumsModule == "" {
		enumsModule = DefaultEnumsModule
	}

	r := &Resolver{
		entities: make(map[string]ClassRef),
		enums:    make(map[string]ClassRef),
	}
	// Project entities win over base entities with the same FQN.
	for _, e := range pm.BaseProjectEntities {
		r.entities[e.FQN] = ClassRef{ClassName: e.ClassName, Module: dir + "/base/" + entityFile(e), FQN: e.FQN}
	}
	for _, e := range pm.Entities {
		r.entities[e.FQN] = ClassRef{ClassName: e.ClassName, Module: dir + "/" + entityFile(e), FQN: e.FQN}
	}
	for _, e := range pm.Enums {
		r.enums[e.FQN] = ClassRef{ClassName: e.ClassName, Module: enumsModule, FQN: e.FQN}
	}
	return r
}

// entityFile returns the module file name of an entity: its entity name when
// known (e.g. "sec$User"), the class name otherwise.
func entityFile(e Entity) string {
	if e.Name != "" {
		return e.Name
	}
	return e.ClassName
}

// Resolve converts a Java type name into a TypeRef.
// Names the model does not know about resolve to *UnresolvedType.
func (r *Resolver) Resolve(raw string) TypeRef {
	name := strings.TrimSpace(raw)

	if elem, ok := strings.CutSuffix(name, "[]"); ok {
		return Array(r.Resolve(elem))
	}

	if kind, ok := primitiveTypes[name]; ok {
		return Primitive(kind)
	}
	if ref, ok := r.entities[name]; ok {
		return &EntityRef{ClassRef: ref}
	}
	if ref, ok := r.enums[name]; ok {
		return &EnumRef{ClassRef: ref}
	}

	base, args, generic := splitGeneric(name)
	switch {
	case collectionTypes[base] && !generic:
		return Array(Primitive(PrimitiveAny))
	case collectionTypes[base] && len(args) == 1:
		return Array(r.Resolve(args[0]))
	case mapTypes[base] && !generic:
		return Map(Primitive(PrimitiveString), Primitive(PrimitiveAny))
	case mapTypes[base] && len(args) == 2:
		return Map(r.Resolve(args[0]), r.Resolve(args[1]))
	}

	return &UnresolvedType{Name: name}
}

// splitGeneric splits "a.B<C, D<E>>" into "a.B" and its top-level type arguments.
// generic is false when name has no (well-formed) argument list.
func splitGeneric(name string) (base string, args []string, generic bool) {
	open := strings.IndexByte(name, '<')
	if open < 0 || !strings.HasSuffix(name, ">") {
		return name, nil, false
	}
	base = strings.TrimSpace(name[:open])
	inner := name[open+1 : len(name)-1]

	depth, start := 0, 0
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(inner[start:i]))
				start = i + 1
			}
		}
	}
	args = append(args, strings.TrimSpace(inner[start:]))
	return base, args, true
}
