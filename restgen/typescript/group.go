package typescript

import "github.com/cuba-labs/frontgen/restgen/model"

// MethodWithOverloads is the set of methods of one service sharing a name.
type MethodWithOverloads struct {
	MethodName string
	Methods    []model.MethodDescriptor
}

// HasParams reports whether any overload declares a parameter.
func (m MethodWithOverloads) HasParams() bool {
	return model.HasParams(m.Methods)
}

// GroupMethods groups methods by exact name, preserving the first-seen order
// of names and the declaration order within each group.
func GroupMethods(methods []model.MethodDescriptor) []MethodWithOverloads {
	var groups []MethodWithOverloads
	index := make(map[string]int)
	for _, m := range methods {
		i, ok := index[m.Name]
		if !ok {
			i = len(groups)
			index[m.Name] = i
			groups = append(groups, MethodWithOverloads{MethodName: m.Name})
		}
		groups[i].Methods = append(groups[i].Methods, m)
	}
	return groups
}
