// Package restgen generates the TypeScript REST services module of a CUBA
// front-end project from its project model.
package restgen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cuba-labs/frontgen/restgen/model"
	"github.com/cuba-labs/frontgen/restgen/sink"
	"github.com/cuba-labs/frontgen/restgen/typescript"
)

// Config holds the configuration for services generation.
type Config struct {
	// OutDir is the directory the services module is written to.
	// When empty, files are only returned in the result.
	OutDir string

	// Select limits generation to the given service methods (all overloads
	// of a selected name). Empty means every REST service of the model.
	Select []model.MethodInfo

	// CurryOrder is "app-first" (default) or "params-first".
	CurryOrder string

	// ClientModule is the import specifier for CubaApp and FetchOptions.
	// Default: "@cuba-platform/rest"
	ClientModule string

	// EntitiesDir and EnumsModule locate imported entity and enum classes
	// relative to the services module.
	// Defaults: "./entities" and "./enums/enums"
	EntitiesDir string
	EnumsModule string

	// FileName is the output path of the services module. Default: "services.ts"
	FileName string

	// TypeCase transforms parameter type names: "preserve" (default),
	// "pascal", "camel" or "snake".
	TypeCase string

	// IndentStyle is "space" (default) or "tab"; IndentSize is the number of
	// spaces per level (default 2).
	IndentStyle string
	IndentSize  int

	// UnknownType is emitted for unresolvable parameter types: "any" (default) or "unknown".
	UnknownType string

	// EmitComments adds JSDoc comments to parameter types.
	EmitComments bool

	// Frontmatter is content added to the top of the generated module.
	// e.g. "// Code generated by frontgen. DO NOT EDIT."
	Frontmatter string

	// Logger receives debug output, including warnings. nil disables logging.
	Logger *slog.Logger
}

// GenerateResult contains the output of a generation run.
type GenerateResult struct {
	// Files contains every generated file with its content.
	Files []GeneratedFile

	// Services is the number of services emitted.
	Services int

	// Methods is the number of service methods emitted (overloads count once).
	Methods int

	// Warnings contains non-fatal issues encountered during generation.
	Warnings []model.Warning
}

// GeneratedFile is a generated file.
type GeneratedFile struct {
	Path    string
	Content []byte
}

// File returns the content of the generated file at path, or nil.
func (r *GenerateResult) File(path string) []byte {
	for _, f := range r.Files {
		if f.Path == path {
			return f.Content
		}
	}
	return nil
}

// Generate generates the services module for pm.
func Generate(ctx context.Context, pm *model.ProjectModel, cfg *Config) (*GenerateResult, error) {
	if pm == nil {
		return nil, errors.New("project model is nil")
	}
	cfg = applyConfigDefaults(cfg)
	logger := cfg.Logger

	if err := pm.ValidateErr(); err != nil {
		return nil, fmt.Errorf("invalid project model: %w", err)
	}

	services := pm.RestServices
	if len(cfg.Select) > 0 {
		selected, err := model.SelectServices(services, cfg.Select)
		if err != nil {
			return nil, err
		}
		services = selected
	}

	logger.Debug("generating services module",
		"project", pm.Project.Name,
		"services", len(services),
		"curry", cfg.CurryOrder,
		"file", cfg.FileName,
		"outDir", cfg.OutDir)

	mem := sink.NewMemorySink()
	gen := &typescript.ServicesGenerator{}
	result, err := gen.Generate(ctx, pm, typescript.GenerateOptions{
		Sink:     mem,
		Services: services,
		Config: typescript.GeneratorConfig{
			TypeCase:        cfg.TypeCase,
			IndentStyle:     cfg.IndentStyle,
			IndentSize:      cfg.IndentSize,
			LineEnding:      "lf",
			TrailingNewline: true,
			EmitComments:    cfg.EmitComments,
			Frontmatter:     cfg.Frontmatter,
		},
		TypeScript: typescript.TypeScriptConfig{
			ClientModule: cfg.ClientModule,
			FileName:     cfg.FileName,
			CurryOrder:   cfg.CurryOrder,
			UnknownType:  cfg.UnknownType,
			EntitiesDir:  cfg.EntitiesDir,
			EnumsModule:  cfg.EnumsModule,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate services module: %w", err)
	}

	for _, w := range result.Warnings {
		logger.Debug("generation warning", "code", w.Code, "service", w.Service, "method", w.Method, "message", w.Message)
	}

	out := &GenerateResult{
		Services: result.Services,
		Methods:  result.Methods,
		Warnings: result.Warnings,
	}
	for _, path := range mem.Paths() {
		out.Files = append(out.Files, GeneratedFile{Path: path, Content: mem.Get(path)})
	}

	if cfg.OutDir != "" {
		fs := sink.NewFilesystemSink(cfg.OutDir)
		for _, f := range out.Files {
			if err := fs.WriteFile(ctx, f.Path, f.Content); err != nil {
				return nil, fmt.Errorf("failed to write %s: %w", f.Path, err)
			}
			logger.Debug("wrote file", "path", f.Path, "bytes", len(f.Content))
		}
	}

	return out, nil
}

// applyConfigDefaults applies default values to Config.
func applyConfigDefaults(cfg *Config) *Config {
	var result Config
	if cfg != nil {
		result = *cfg
	}

	if result.CurryOrder == "" {
		result.CurryOrder = typescript.CurryAppFirst
	}
	if result.ClientModule == "" {
		result.ClientModule = typescript.DefaultClientModule
	}
	if result.EntitiesDir == "" {
		result.EntitiesDir = model.DefaultEntitiesDir
	}
	if result.EnumsModule == "" {
		result.EnumsModule = model.DefaultEnumsModule
	}
	if result.FileName == "" {
		result.FileName = typescript.DefaultFileName
	}
	if result.TypeCase == "" {
		result.TypeCase = "preserve"
	}
	if result.IndentStyle == "" {
		result.IndentStyle = "space"
	}
	if result.IndentSize == 0 {
		result.IndentSize = 2
	}
	if result.UnknownType == "" {
		result.UnknownType = "any"
	}
	if result.Logger == nil {
		result.Logger = slog.New(slog.DiscardHandler)
	}

	return &result
}
