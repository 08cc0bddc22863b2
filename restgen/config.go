package restgen

import (
	"context"
	"log/slog"
	"slices"

	"github.com/cuba-labs/frontgen/restgen/model"
)

// Generator provides a fluent API for services generation.
// Create with FromModel() or FromFile() and configure with method chaining.
//
// Example:
//
//	restgen.FromFile("projectModel.json").
//	    CurryOrder("params-first").
//	    ToDir("./src/cuba")
type Generator struct {
	pm      *model.ProjectModel
	path    string
	answers string
	cfg     Config
}

// FromModel creates a Generator for an in-memory project model.
func FromModel(pm *model.ProjectModel) *Generator {
	return &Generator{pm: pm}
}

// FromFile creates a Generator for the project model stored at path.
// The file is read by the terminal operation.
func FromFile(path string) *Generator {
	return &Generator{path: path}
}

// Select limits generation to the given service methods.
// Can be called multiple times.
func (g *Generator) Select(methods ...model.MethodInfo) *Generator {
	g.cfg.Select = append(g.cfg.Select, methods...)
	return g
}

// Answers selects service methods from base64-encoded answers,
// as produced by EncodeAnswers.
func (g *Generator) Answers(encoded string) *Generator {
	g.answers = encoded
	return g
}

// CurryOrder sets the argument order of generated accessors.
// Valid values: "app-first" (default), "params-first".
func (g *Generator) CurryOrder(order string) *Generator {
	g.cfg.CurryOrder = order
	return g
}

// ClientModule sets the module CubaApp and FetchOptions are imported from.
func (g *Generator) ClientModule(module string) *Generator {
	g.cfg.ClientModule = module
	return g
}

// EntitiesDir sets the directory entity classes are imported from.
func (g *Generator) EntitiesDir(dir string) *Generator {
	g.cfg.EntitiesDir = dir
	return g
}

// EnumsModule sets the module enum classes are imported from.
func (g *Generator) EnumsModule(module string) *Generator {
	g.cfg.EnumsModule = module
	return g
}

// FileName sets the output path of the services module.
func (g *Generator) FileName(name string) *Generator {
	g.cfg.FileName = name
	return g
}

// TypeCase sets the case transform of parameter type names.
// Valid values: "preserve" (default), "pascal", "camel", "snake".
func (g *Generator) TypeCase(c string) *Generator {
	g.cfg.TypeCase = c
	return g
}

// Indent sets the indentation style ("space" or "tab") and size.
func (g *Generator) Indent(style string, size int) *Generator {
	g.cfg.IndentStyle = style
	g.cfg.IndentSize = size
	return g
}

// UnknownType sets the type emitted for unresolvable parameter types.
// Valid values: "any" (default), "unknown".
func (g *Generator) UnknownType(t string) *Generator {
	g.cfg.UnknownType = t
	return g
}

// WithComments adds JSDoc comments to parameter types.
func (g *Generator) WithComments() *Generator {
	g.cfg.EmitComments = true
	return g
}

// Frontmatter adds content to the top of the generated module.
func (g *Generator) Frontmatter(content string) *Generator {
	g.cfg.Frontmatter = content
	return g
}

// Logger sets the logger for debug output.
func (g *Generator) Logger(l *slog.Logger) *Generator {
	g.cfg.Logger = l
	return g
}

// ToDir generates the services module into dir.
// This is a terminal operation that writes files to disk.
func (g *Generator) ToDir(dir string) (*GenerateResult, error) {
	cfg := g.cfg
	cfg.OutDir = dir
	return g.run(&cfg)
}

// Generate returns the generated files in memory without writing to disk.
// Use ToDir() to write files to disk instead.
func (g *Generator) Generate() (*GenerateResult, error) {
	cfg := g.cfg
	cfg.OutDir = ""
	return g.run(&cfg)
}

func (g *Generator) run(cfg *Config) (*GenerateResult, error) {
	pm := g.pm
	if pm == nil && g.path != "" {
		loaded, err := model.ReadProjectModel(g.path)
		if err != nil {
			return nil, err
		}
		pm = loaded
	}

	if g.answers != "" {
		answers, err := model.DecodeAnswers(g.answers)
		if err != nil {
			return nil, err
		}
		cfg.Select = append(slices.Clip(cfg.Select), answers.ServiceMethods...)
	}

	return Generate(context.Background(), pm, cfg)
}
