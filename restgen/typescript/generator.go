package typescript

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/cuba-labs/frontgen/restgen/model"
)

// ServicesGenerator generates the CUBA REST services module.
type ServicesGenerator struct{}

var _ Generator = (*ServicesGenerator)(nil)

// Name returns "typescript".
func (g *ServicesGenerator) Name() string {
	return "typescript"
}

// Generate renders the services module for pm and writes it to opts.Sink
// under TypeScript.FileName.
func (g *ServicesGenerator) Generate(ctx context.Context, pm *model.ProjectModel, opts GenerateOptions) (*GenerateResult, error) {
	if pm == nil {
		return nil, errors.New("project model is nil")
	}
	if opts.Sink == nil {
		return nil, errors.New("output sink is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateConfig(opts.Config, opts.TypeScript); err != nil {
		return nil, err
	}

	ts := opts.TypeScript.withDefaults()
	services := opts.Services
	if services == nil {
		services = pm.RestServices
	}

	resolver := pm.NewResolver(model.ResolverOptions{
		EntitiesDir: ts.EntitiesDir,
		EnumsModule: ts.EnumsModule,
	})
	content, warnings := RenderServices(services, Context{
		Resolver:   resolver,
		Config:     opts.Config,
		TypeScript: ts,
	})

	if err := opts.Sink.WriteFile(ctx, ts.FileName, []byte(content)); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", ts.FileName, err)
	}

	return &GenerateResult{
		Files:    []OutputFile{{Path: ts.FileName, Size: int64(len(content))}},
		Services: len(services),
		Methods:  model.CountMethods(services),
		Warnings: warnings,
	}, nil
}

// ValidateConfig rejects unknown option values. Empty values select defaults.
func ValidateConfig(cfg GeneratorConfig, ts TypeScriptConfig) error {
	checks := []struct {
		name    string
		value   string
		allowed []string
	}{
		{"type case", cfg.TypeCase, []string{"preserve", "pascal", "camel", "snake"}},
		{"indent style", cfg.IndentStyle, []string{"space", "tab"}},
		{"line ending", cfg.LineEnding, []string{"lf", "crlf"}},
		{"curry order", ts.CurryOrder, []string{CurryAppFirst, CurryParamsFirst}},
		{"fallback type", ts.UnknownType, []string{"any", "unknown"}},
	}

	var errs []error
	for _, c := range checks {
		if c.value == "" || slices.Contains(c.allowed, c.value) {
			continue
		}
		errs = append(errs, fmt.Errorf("unknown %s: %q (expected one of %q)", c.name, c.value, c.allowed))
	}
	if cfg.IndentSize < 0 {
		errs = append(errs, fmt.Errorf("indent size must not be negative, got %d", cfg.IndentSize))
	}
	return errors.Join(errs...)
}
