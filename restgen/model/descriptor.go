// Package model defines the project metadata model that drives service stub generation.
// The types here are language-agnostic; generators transform them into target language
// source code.
package model

// Warning codes produced during generation.
const (
	// WarnOverloadUnion is reported when overloads of one method have different
	// parameter shapes and their parameter type is emitted as a union.
	WarnOverloadUnion = "overload_union"

	// WarnUnresolvedType is reported when a parameter type cannot be resolved
	// against the project model and falls back to the unknown type.
	WarnUnresolvedType = "unresolved_type"

	// WarnImportConflict is reported when two referenced classes share a
	// class name but live in different modules.
	WarnImportConflict = "import_conflict"
)

// Warning represents a non-fatal issue encountered during generation.
type Warning struct {
	// Code is a machine-readable warning identifier.
	Code string

	// Message is a human-readable description.
	Message string

	// Service is the service that triggered the warning, if applicable.
	Service string

	// Method is the method that triggered the warning, if applicable.
	Method string
}

// String returns "code: message".
func (w Warning) String() string {
	return w.Code + ": " + w.Message
}

// ProjectInfo describes the project the model was exported from.
type ProjectInfo struct {
	Name         string `json:"name"`
	Namespace    string `json:"namespace"`
	ModulePrefix string `json:"modulePrefix,omitempty"`
}
