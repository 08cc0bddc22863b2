package typescript

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"golang.org/x/tools/txtar"

	"github.com/cuba-labs/frontgen/restgen/model"
)

// goldenConfig is the optional config.json section of a golden archive.
type goldenConfig struct {
	Config     GeneratorConfig
	TypeScript TypeScriptConfig
}

// TestRenderServices_Golden renders every testdata/*.txtar archive. An archive
// holds model.json, an optional config.json, the expected services.ts and an
// optional warnings section with one "code Service.method" line per warning.
func TestRenderServices_Golden(t *testing.T) {
	files, err := filepath.Glob("testdata/*.txtar")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no golden archives found")
	}

	for _, file := range files {
		t.Run(strings.TrimSuffix(filepath.Base(file), ".txtar"), func(t *testing.T) {
			ar, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatal(err)
			}
			sections := make(map[string][]byte)
			for _, f := range ar.Files {
				sections[f.Name] = f.Data
			}

			pm, err := model.ParseProjectModel(sections["model.json"])
			if err != nil {
				t.Fatalf("ParseProjectModel() error = %v", err)
			}

			cfg := goldenConfig{Config: GeneratorConfig{TrailingNewline: true}}
			if data, ok := sections["config.json"]; ok {
				if err := json.Unmarshal(data, &cfg); err != nil {
					t.Fatalf("config.json: %v", err)
				}
			}
			if err := ValidateConfig(cfg.Config, cfg.TypeScript); err != nil {
				t.Fatalf("ValidateConfig() error = %v", err)
			}

			ts := cfg.TypeScript.withDefaults()
			resolver := pm.NewResolver(model.ResolverOptions{EntitiesDir: ts.EntitiesDir, EnumsModule: ts.EnumsModule})
			got, warnings := RenderServices(pm.RestServices, Context{
				Resolver:   resolver,
				Config:     cfg.Config,
				TypeScript: cfg.TypeScript,
			})

			if want := string(sections["services.ts"]); got != want {
				dmp := diffmatchpatch.New()
				diffs := dmp.DiffMain(want, got, false)
				t.Errorf("services.ts mismatch (-want +got):\n%s", dmp.DiffPrettyText(diffs))
			}

			var gotWarnings []string
			for _, w := range warnings {
				gotWarnings = append(gotWarnings, fmt.Sprintf("%s %s.%s", w.Code, w.Service, w.Method))
			}
			var wantWarnings []string
			if s := strings.TrimSpace(string(sections["warnings"])); s != "" {
				wantWarnings = strings.Split(s, "\n")
			}
			if strings.Join(gotWarnings, "\n") != strings.Join(wantWarnings, "\n") {
				t.Errorf("warnings = %q, want %q", gotWarnings, wantWarnings)
			}
		})
	}
}

func calcService(methods ...model.MethodDescriptor) []model.ServiceDescriptor {
	return []model.ServiceDescriptor{{Name: "Calc", Methods: methods}}
}

func intParams(names ...string) []model.ParameterDescriptor {
	params := make([]model.ParameterDescriptor, len(names))
	for i, n := range names {
		params[i] = model.ParameterDescriptor{Name: n, Type: "int"}
	}
	return params
}

func TestAssembleModule_Structure(t *testing.T) {
	services := []model.ServiceDescriptor{
		{Name: "Calc", Methods: []model.MethodDescriptor{
			{Name: "add", Params: intParams("a", "b")},
			{Name: "ping"},
			{Name: "add", Params: intParams("a")},
		}},
		{Name: "Empty"},
		{Name: "Echo", Methods: []model.MethodDescriptor{{Name: "echo", Params: intParams("v")}}},
	}

	mod := AssembleModule(services, Context{})

	obj, ok := mod.Services.Init.(*ObjectLiteral)
	if !ok {
		t.Fatalf("Services.Init = %T, want *ObjectLiteral", mod.Services.Init)
	}
	var keys []string
	for _, p := range obj.Props {
		keys = append(keys, p.Key)
	}
	if strings.Join(keys, ",") != "Calc,Empty,Echo" {
		t.Errorf("service keys = %v", keys)
	}

	calc := obj.Props[0].Value.(*ObjectLiteral)
	if len(calc.Props) != 2 || calc.Props[0].Key != "add" || calc.Props[1].Key != "ping" {
		t.Errorf("Calc methods = %+v", calc.Props)
	}

	// One parameter type per parameterized method, none for ping.
	var names []string
	for _, decl := range mod.ParamTypes {
		names = append(names, decl.Name)
	}
	if strings.Join(names, ",") != "Calc_add_params,Echo_echo_params" {
		t.Errorf("param types = %v", names)
	}

	if len(mod.Imports) != 1 || mod.Imports[0].Module != DefaultClientModule {
		t.Errorf("imports = %+v", mod.Imports)
	}
	if mod.Services.Name != RestServicesVarName || !mod.Services.Export {
		t.Errorf("export = %+v", mod.Services)
	}
}

func TestAssembleModule_EmptyServiceRendersEmptyObject(t *testing.T) {
	got, _ := RenderServices([]model.ServiceDescriptor{{Name: "Empty"}}, Context{})
	want := "import { CubaApp, FetchOptions } from \"@cuba-platform/rest\";\n\n" +
		"export const restServices = {\n  Empty: {}\n};"
	if got != want {
		t.Errorf("RenderServices() =\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderServices_Deterministic(t *testing.T) {
	services := []model.ServiceDescriptor{
		{Name: "B", Methods: []model.MethodDescriptor{{Name: "x", Params: intParams("a")}}},
		{Name: "A", Methods: []model.MethodDescriptor{{Name: "y", Params: intParams("b")}, {Name: "y"}}},
	}
	ctx := Context{Config: GeneratorConfig{TrailingNewline: true}}

	first, _ := RenderServices(services, ctx)
	for i := 0; i < 10; i++ {
		if got, _ := RenderServices(services, ctx); got != first {
			t.Fatalf("run %d differs:\n%s\nfirst:\n%s", i, got, first)
		}
	}

	// Model order is kept, not sorted.
	if strings.Index(first, "B_x_params") > strings.Index(first, "A_y_params") {
		t.Errorf("parameter types not in model order:\n%s", first)
	}
}

func TestRenderServices_NoParamsPassesEmptyObject(t *testing.T) {
	got, _ := RenderServices(calcService(model.MethodDescriptor{Name: "ping"}), Context{})

	if strings.Contains(got, "export type") {
		t.Errorf("parameterless method produced a type:\n%s", got)
	}
	if !strings.Contains(got, `ping: (cubaApp: CubaApp, fetchOpts?: FetchOptions) => () => {`) {
		t.Errorf("missing empty params stage:\n%s", got)
	}
	if !strings.Contains(got, `cubaApp.invokeService("Calc", "ping", {}, fetchOpts)`) {
		t.Errorf("missing {} argument:\n%s", got)
	}
}

func TestRenderServices_UnknownType(t *testing.T) {
	services := calcService(model.MethodDescriptor{
		Name:   "store",
		Params: []model.ParameterDescriptor{{Name: "blob", Type: "com.acme.Blob"}},
	})

	tests := []struct {
		unknownType string
		want        string
	}{
		{"", "blob: any;"},
		{"any", "blob: any;"},
		{"unknown", "blob: unknown;"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, warnings := RenderServices(services, Context{TypeScript: TypeScriptConfig{UnknownType: tt.unknownType}})
			if !strings.Contains(got, tt.want) {
				t.Errorf("output does not contain %q:\n%s", tt.want, got)
			}
			if len(warnings) != 1 || warnings[0].Code != model.WarnUnresolvedType {
				t.Fatalf("warnings = %v, want one %s", warnings, model.WarnUnresolvedType)
			}
			if !strings.Contains(warnings[0].Message, "com.acme.Blob") {
				t.Errorf("warning message %q does not name the type", warnings[0].Message)
			}
		})
	}
}

func TestRenderServices_TypeNameAvoidsImportedSymbols(t *testing.T) {
	pm := &model.ProjectModel{
		Entities: map[string]model.Entity{
			"x$Params": {Name: "x$Params", ClassName: "Calc_add_params", FQN: "com.x.Params"},
		},
	}
	services := calcService(model.MethodDescriptor{
		Name:   "add",
		Params: []model.ParameterDescriptor{{Name: "p", Type: "com.x.Params"}},
	})

	mod := AssembleModule(services, Context{Resolver: pm.NewResolver(model.ResolverOptions{})})
	if len(mod.ParamTypes) != 1 || mod.ParamTypes[0].Name != "Calc_add_params_2" {
		t.Fatalf("param types = %+v, want Calc_add_params_2", mod.ParamTypes)
	}
}

func TestRenderServices_ReservedNames(t *testing.T) {
	services := []model.ServiceDescriptor{
		{Name: "CubaApp", Methods: []model.MethodDescriptor{{Name: "x", Params: intParams("a")}}},
	}
	got, _ := RenderServices(services, Context{Config: GeneratorConfig{TypeCase: "pascal"}})
	if !strings.Contains(got, "export type CubaAppXParams = {") {
		t.Errorf("unexpected type name:\n%s", got)
	}
	if strings.Count(got, "import { CubaApp, FetchOptions }") != 1 {
		t.Errorf("client import not emitted exactly once:\n%s", got)
	}
}

func TestRenderServices_OverloadSetTypeChecksEveryOverload(t *testing.T) {
	services := calcService(
		model.MethodDescriptor{Name: "f", Params: intParams("a")},
		model.MethodDescriptor{Name: "f", Params: []model.ParameterDescriptor{{Name: "a", Type: "String"}}},
	)

	mod := AssembleModule(services, Context{})
	union, ok := mod.ParamTypes[0].Type.(*UnionTypeNode)
	if !ok {
		t.Fatalf("Type = %T, want *UnionTypeNode", mod.ParamTypes[0].Type)
	}
	if len(union.Types) != 2 {
		t.Fatalf("union has %d members, want 2", len(union.Types))
	}
	p := NewPrinter(GeneratorConfig{})
	if got := p.Print(union); got != "{\n  a: number;\n} | {\n  a: string;\n}" {
		t.Errorf("union = %q", got)
	}
	if len(mod.Warnings) != 1 || mod.Warnings[0].Code != model.WarnOverloadUnion {
		t.Errorf("warnings = %v", mod.Warnings)
	}
}
