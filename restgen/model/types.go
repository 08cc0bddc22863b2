package model

// TypeKind identifies the category of a resolved parameter type.
type TypeKind int

const (
	KindPrimitive  TypeKind = iota // Built-in scalar type
	KindEntity                     // Reference to a persistent entity class
	KindEnum                       // Reference to an enum class
	KindArray                      // Ordered collection (T[], List<T>, Set<T>)
	KindMap                        // Key-value mapping (Map<K,V>)
	KindUnresolved                 // Type name the model does not know about
)

// String returns the string representation of the type kind.
func (k TypeKind) String() string {
	switch k {
	case KindPrimitive:
		return "Primitive"
	case KindEntity:
		return "Entity"
	case KindEnum:
		return "Enum"
	case KindArray:
		return "Array"
	case KindMap:
		return "Map"
	case KindUnresolved:
		return "Unresolved"
	default:
		return "Unknown"
	}
}

// TypeRef is the base interface for resolved parameter types.
type TypeRef interface {
	// Kind returns the type kind for type switching.
	Kind() TypeKind

	// Ensure only types in this package can implement TypeRef.
	sealed()
}

// PrimitiveKind identifies the category of a primitive type.
type PrimitiveKind int

const (
	PrimitiveBool   PrimitiveKind = iota
	PrimitiveNumber               // Any Java numeric type, including BigDecimal
	PrimitiveString
	PrimitiveUUID     // java.util.UUID (string in JSON)
	PrimitiveDateTime // Dates and times (ISO string in JSON)
	PrimitiveAny      // java.lang.Object
)

// String returns the string representation of the primitive kind.
func (k PrimitiveKind) String() string {
	switch k {
	case PrimitiveBool:
		return "Bool"
	case PrimitiveNumber:
		return "Number"
	case PrimitiveString:
		return "String"
	case PrimitiveUUID:
		return "UUID"
	case PrimitiveDateTime:
		return "DateTime"
	case PrimitiveAny:
		return "Any"
	default:
		return "Unknown"
	}
}

// PrimitiveType represents a built-in scalar type.
type PrimitiveType struct {
	PrimitiveKind PrimitiveKind
}

// Kind returns KindPrimitive.
func (*PrimitiveType) Kind() TypeKind { return KindPrimitive }
func (*PrimitiveType) sealed()        {}

// Primitive returns a PrimitiveType of the given kind.
func Primitive(kind PrimitiveKind) *PrimitiveType {
	return &PrimitiveType{PrimitiveKind: kind}
}

// ClassRef references a named class that generated code imports from another module.
type ClassRef struct {
	// ClassName is the symbol the module exports (e.g. "User").
	ClassName string

	// Module is the import specifier, relative to the generated services file.
	Module string

	// FQN is the fully qualified Java class name.
	FQN string
}

// EntityRef references an entity class.
type EntityRef struct {
	ClassRef
}

// Kind returns KindEntity.
func (*EntityRef) Kind() TypeKind { return KindEntity }
func (*EntityRef) sealed()        {}

// EnumRef references an enum class.
type EnumRef struct {
	ClassRef
}

// Kind returns KindEnum.
func (*EnumRef) Kind() TypeKind { return KindEnum }
func (*EnumRef) sealed()        {}

// ArrayType represents an ordered collection.
type ArrayType struct {
	Element TypeRef
}

// Kind returns KindArray.
func (*ArrayType) Kind() TypeKind { return KindArray }
func (*ArrayType) sealed()        {}

// Array returns an ArrayType of the given element type.
func Array(elem TypeRef) *ArrayType {
	return &ArrayType{Element: elem}
}

// MapType represents a key-value mapping. Keys serialize as strings, so only
// an enum key carries type information; other keys are treated as string.
type MapType struct {
	Key   TypeRef
	Value TypeRef
}

// Kind returns KindMap.
func (*MapType) Kind() TypeKind { return KindMap }
func (*MapType) sealed()        {}

// Map returns a MapType.
func Map(key, value TypeRef) *MapType {
	return &MapType{Key: key, Value: value}
}

// UnresolvedType is a type name the project model could not resolve.
type UnresolvedType struct {
	Name string
}

// Kind returns KindUnresolved.
func (*UnresolvedType) Kind() TypeKind { return KindUnresolved }
func (*UnresolvedType) sealed()        {}

// Imports returns the class references t depends on, in depth-first order.
func Imports(t TypeRef) []ClassRef {
	switch v := t.(type) {
	case *EntityRef:
		return []ClassRef{v.ClassRef}
	case *EnumRef:
		return []ClassRef{v.ClassRef}
	case *ArrayType:
		return Imports(v.Element)
	case *MapType:
		if key, ok := v.Key.(*EnumRef); ok {
			return append([]ClassRef{key.ClassRef}, Imports(v.Value)...)
		}
		return Imports(v.Value)
	default:
		return nil
	}
}

// Unresolved returns the names of all unresolved types within t.
func Unresolved(t TypeRef) []string {
	switch v := t.(type) {
	case *UnresolvedType:
		return []string{v.Name}
	case *ArrayType:
		return Unresolved(v.Element)
	case *MapType:
		return Unresolved(v.Value)
	default:
		return nil
	}
}
