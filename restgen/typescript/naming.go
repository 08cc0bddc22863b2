package typescript

import (
	"strconv"

	"github.com/iancoleman/strcase"
)

// ParamsTypeName derives the parameter type name for a service method:
// "<service>_<method>_params" with the typeCase transform applied, sanitized
// into a valid identifier. The result is deterministic but not necessarily
// unique; Namer resolves collisions.
func ParamsTypeName(service, method, typeCase string) string {
	return sanitizeIdentifier(applyCase(service+"_"+method+"_params", typeCase))
}

// applyCase applies a case transform: "pascal", "camel", "snake", or
// anything else to keep the name as is.
func applyCase(name, typeCase string) string {
	switch typeCase {
	case "pascal":
		return strcase.ToCamel(name)
	case "camel":
		return strcase.ToLowerCamel(name)
	case "snake":
		return strcase.ToSnake(name)
	default:
		return name
	}
}

// Namer hands out module-unique parameter type names.
// Names are assigned in call order, so identical input yields identical names.
type Namer struct {
	typeCase string
	taken    map[string]bool
}

// NewNamer returns a Namer with the given identifiers already taken.
func NewNamer(typeCase string, reserved ...string) *Namer {
	n := &Namer{typeCase: typeCase, taken: make(map[string]bool)}
	for _, r := range reserved {
		n.Reserve(r)
	}
	return n
}

// Reserve marks name as taken.
func (n *Namer) Reserve(name string) {
	n.taken[name] = true
}

// ParamsTypeName returns Unique(ParamsTypeName(service, method)).
func (n *Namer) ParamsTypeName(service, method string) string {
	return n.Unique(ParamsTypeName(service, method, n.typeCase))
}

// Unique returns base, suffixed with _2, _3, ... if base is already taken,
// and marks the result as taken.
func (n *Namer) Unique(base string) string {
	name := base
	for i := 2; n.taken[name]; i++ {
		name = base + "_" + strconv.Itoa(i)
	}
	n.taken[name] = true
	return name
}
