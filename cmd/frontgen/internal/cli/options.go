// Package cli holds the flags and output helpers shared by frontgen commands.
package cli

import (
	"log/slog"

	"github.com/cuba-labs/frontgen/restgen"
)

// Options are the generation flags common to gen, check and preview.
type Options struct {
	Model        string `help:"Project model file (JSON or YAML)." short:"m" required:"" type:"existingfile"`
	Answers      string `help:"Base64-encoded answers selecting service methods." short:"a"`
	Curry        string `help:"Argument order of generated accessors." enum:"app-first,params-first" default:"app-first"`
	File         string `help:"Output path of the services module, relative to the destination." default:"services.ts"`
	ClientModule string `help:"Module CubaApp and FetchOptions are imported from." default:"@cuba-platform/rest" name:"client-module"`
	EntitiesDir  string `help:"Directory entity classes are imported from." default:"./entities" name:"entities-dir"`
	EnumsModule  string `help:"Module enum classes are imported from." default:"./enums/enums" name:"enums-module"`
	TypeCase     string `help:"Case of parameter type names." enum:"preserve,pascal,camel,snake" default:"preserve" name:"type-case"`
	Indent       int    `help:"Spaces per indentation level." default:"2"`
	Tabs         bool   `help:"Indent with tabs."`
	UnknownType  string `help:"Type emitted for unresolvable parameter types." enum:"any,unknown" default:"any" name:"unknown-type"`
	Comments     bool   `help:"Add JSDoc comments to parameter types."`
	Frontmatter  string `help:"Text placed at the top of the generated module."`
}

// Generator returns a restgen.Generator configured from the flags.
func (o *Options) Generator(logger *slog.Logger) *restgen.Generator {
	indentStyle := "space"
	if o.Tabs {
		indentStyle = "tab"
	}

	g := restgen.FromFile(o.Model).
		CurryOrder(o.Curry).
		FileName(o.File).
		ClientModule(o.ClientModule).
		EntitiesDir(o.EntitiesDir).
		EnumsModule(o.EnumsModule).
		TypeCase(o.TypeCase).
		Indent(indentStyle, o.Indent).
		UnknownType(o.UnknownType).
		Frontmatter(o.Frontmatter).
		Logger(logger)
	if o.Answers != "" {
		g = g.Answers(o.Answers)
	}
	if o.Comments {
		g = g.WithComments()
	}
	return g
}
