package typescript

import (
	"context"
	"strings"
	"testing"

	"github.com/cuba-labs/frontgen/restgen/model"
	"github.com/cuba-labs/frontgen/restgen/sink"
)

func TestServicesGenerator_Generate(t *testing.T) {
	pm := &model.ProjectModel{
		RestServices: []model.ServiceDescriptor{
			{Name: "Calc", Methods: []model.MethodDescriptor{
				{Name: "add", Params: intParams("a", "b")},
				{Name: "add", Params: intParams("a")},
				{Name: "ping"},
			}},
			{Name: "Echo", Methods: []model.MethodDescriptor{{Name: "echo"}}},
		},
	}
	mem := sink.NewMemorySink()

	g := &ServicesGenerator{}
	if g.Name() != "typescript" {
		t.Errorf("Name() = %q", g.Name())
	}

	result, err := g.Generate(context.Background(), pm, GenerateOptions{
		Sink:       mem,
		Config:     GeneratorConfig{TrailingNewline: true},
		TypeScript: TypeScriptConfig{FileName: "src/services.ts"},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if result.Services != 2 || result.Methods != 3 {
		t.Errorf("Services, Methods = %d, %d; want 2, 3", result.Services, result.Methods)
	}
	if len(result.Files) != 1 || result.Files[0].Path != "src/services.ts" {
		t.Fatalf("Files = %+v", result.Files)
	}

	content := mem.Get("src/services.ts")
	if content == nil {
		t.Fatal("services module not written")
	}
	if int64(len(content)) != result.Files[0].Size {
		t.Errorf("Size = %d, written %d bytes", result.Files[0].Size, len(content))
	}
	if !strings.HasSuffix(string(content), "};\n") {
		t.Errorf("content does not end with the export:\n%s", content)
	}
	if len(result.Warnings) != 1 || result.Warnings[0].Code != model.WarnOverloadUnion {
		t.Errorf("Warnings = %v", result.Warnings)
	}
}

func TestServicesGenerator_ServicesOverride(t *testing.T) {
	pm := &model.ProjectModel{
		RestServices: calcService(model.MethodDescriptor{Name: "add", Params: intParams("a")}),
	}
	mem := sink.NewMemorySink()

	result, err := (&ServicesGenerator{}).Generate(context.Background(), pm, GenerateOptions{
		Sink:     mem,
		Services: []model.ServiceDescriptor{},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if result.Services != 0 {
		t.Errorf("Services = %d, want 0", result.Services)
	}
	if got := string(mem.Get(DefaultFileName)); !strings.Contains(got, "export const restServices = {};") {
		t.Errorf("content =\n%s", got)
	}
}

func TestServicesGenerator_Errors(t *testing.T) {
	pm := &model.ProjectModel{}
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name    string
		ctx     context.Context
		pm      *model.ProjectModel
		opts    GenerateOptions
		wantErr string
	}{
		{
			name:    "nil model",
			ctx:     context.Background(),
			opts:    GenerateOptions{Sink: sink.NewMemorySink()},
			wantErr: "project model is nil",
		},
		{
			name:    "nil sink",
			ctx:     context.Background(),
			pm:      pm,
			wantErr: "output sink is nil",
		},
		{
			name:    "canceled",
			ctx:     canceled,
			pm:      pm,
			opts:    GenerateOptions{Sink: sink.NewMemorySink()},
			wantErr: "context canceled",
		},
		{
			name:    "bad curry order",
			ctx:     context.Background(),
			pm:      pm,
			opts:    GenerateOptions{Sink: sink.NewMemorySink(), TypeScript: TypeScriptConfig{CurryOrder: "sideways"}},
			wantErr: `unknown curry order: "sideways"`,
		},
		{
			name:    "bad file name",
			ctx:     context.Background(),
			pm:      pm,
			opts:    GenerateOptions{Sink: sink.NewMemorySink(), TypeScript: TypeScriptConfig{FileName: "../services.ts"}},
			wantErr: "path traversal not allowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&ServicesGenerator{}).Generate(tt.ctx, tt.pm, tt.opts)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Generate() error = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     GeneratorConfig
		ts      TypeScriptConfig
		wantErr []string
	}{
		{name: "zero value"},
		{
			name: "all valid",
			cfg:  GeneratorConfig{TypeCase: "snake", IndentStyle: "tab", LineEnding: "crlf"},
			ts:   TypeScriptConfig{CurryOrder: CurryParamsFirst, UnknownType: "unknown"},
		},
		{
			name:    "several problems",
			cfg:     GeneratorConfig{TypeCase: "kebab", IndentSize: -1},
			ts:      TypeScriptConfig{UnknownType: "object"},
			wantErr: []string{`unknown type case: "kebab"`, `unknown fallback type: "object"`, "indent size must not be negative"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfig(tt.cfg, tt.ts)
			if len(tt.wantErr) == 0 {
				if err != nil {
					t.Errorf("ValidateConfig() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidateConfig() error = nil")
			}
			for _, want := range tt.wantErr {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("error %q does not contain %q", err, want)
				}
			}
		})
	}
}
