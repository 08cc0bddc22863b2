// Package typescript renders the REST services module: parameter types for
// every service method and the curried restServices accessors.
package typescript

import (
	"context"

	"github.com/cuba-labs/frontgen/restgen/model"
	"github.com/cuba-labs/frontgen/restgen/sink"
)

// Names fixed by the generated module's contract with the CUBA REST client.
const (
	// DefaultClientModule is the module the client types are imported from.
	DefaultClientModule = "@cuba-platform/rest"

	// DefaultFileName is the generated services module path.
	DefaultFileName = "services.ts"

	// RestServicesVarName is the name of the exported services object.
	RestServicesVarName = "restServices"

	CubaAppType      = "CubaApp"
	FetchOptionsType = "FetchOptions"

	cubaAppName      = "cubaApp"
	fetchOptionsName = "fetchOpts"
	paramsName       = "params"
	invokeService    = "invokeService"
)

// Currying orders for generated service methods.
const (
	// CurryAppFirst generates restServices.S.m(app, opts?)(params).
	CurryAppFirst = "app-first"

	// CurryParamsFirst generates restServices.S.m(params)(app, opts?).
	CurryParamsFirst = "params-first"
)

// Generator transforms a project model into target language source code.
type Generator interface {
	// Name returns the generator's identifier (e.g., "typescript").
	Name() string

	// Generate produces source code for the given services.
	Generate(ctx context.Context, pm *model.ProjectModel, opts GenerateOptions) (*GenerateResult, error)
}

// GenerateOptions configures generation behavior.
type GenerateOptions struct {
	// Sink receives generated output files.
	Sink sink.OutputSink

	// Config contains formatting and naming configuration.
	Config GeneratorConfig

	// TypeScript contains options specific to the services module.
	TypeScript TypeScriptConfig

	// Services overrides the model's REST services, e.g. after answer selection.
	// nil means pm.RestServices.
	Services []model.ServiceDescriptor
}

// GenerateResult contains generation output metadata.
type GenerateResult struct {
	// Files lists all files that were written.
	Files []OutputFile

	// Services is the number of services emitted.
	Services int

	// Methods is the number of service methods emitted (overloads count once).
	Methods int

	// Warnings contains non-fatal issues encountered.
	Warnings []model.Warning
}

// OutputFile describes a generated file.
type OutputFile struct {
	// Path is the relative path of the generated file.
	Path string

	// Size is the number of bytes written.
	Size int64
}

// GeneratorConfig provides common configuration options.
type GeneratorConfig struct {
	// TypeCase transforms synthesized parameter type names:
	// "preserve", "pascal", "camel" or "snake".
	TypeCase string

	// Formatting
	IndentStyle     string // "space" or "tab"
	IndentSize      int    // Spaces per indent level (when IndentStyle is "space")
	LineEnding      string // "lf" or "crlf"
	TrailingNewline bool   // Ensure files end with a newline

	// EmitComments adds JSDoc comments to synthesized parameter types.
	EmitComments bool

	// Frontmatter is emitted verbatim at the top of the file.
	Frontmatter string
}

// TypeScriptConfig contains options for the services module.
type TypeScriptConfig struct {
	// ClientModule is the import specifier for CubaApp and FetchOptions.
	ClientModule string

	// FileName is the output path of the services module.
	FileName string

	// CurryOrder is CurryAppFirst or CurryParamsFirst.
	CurryOrder string

	// UnknownType is emitted for parameter types the model cannot resolve.
	// SHOULD be one of: "any", "unknown".
	UnknownType string

	// EntitiesDir and EnumsModule locate imported entity and enum classes,
	// relative to the services module.
	EntitiesDir string
	EnumsModule string
}

// withDefaults returns a copy of c with empty fields defaulted.
func (c TypeScriptConfig) withDefaults() TypeScriptConfig {
	if c.ClientModule == "" {
		c.ClientModule = DefaultClientModule
	}
	if c.FileName == "" {
		c.FileName = DefaultFileName
	}
	if c.CurryOrder == "" {
		c.CurryOrder = CurryAppFirst
	}
	if c.UnknownType == "" {
		c.UnknownType = "any"
	}
	if c.EntitiesDir == "" {
		c.EntitiesDir = model.DefaultEntitiesDir
	}
	if c.EnumsModule == "" {
		c.EnumsModule = model.DefaultEnumsModule
	}
	return c
}
