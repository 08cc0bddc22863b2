package typescript

import (
	"fmt"

	"github.com/cuba-labs/frontgen/restgen/model"
)

// Context is the naming and resolution context of one module generation.
type Context struct {
	// Resolver maps parameter type names to TypeRefs. When nil, a resolver
	// over an empty model is used and only primitives and collections resolve.
	Resolver *model.Resolver

	Config     GeneratorConfig
	TypeScript TypeScriptConfig
}

// Module is an assembled services module, ready to print.
type Module struct {
	Frontmatter string

	// Imports holds the client import followed by the collected class imports.
	Imports []*ImportDecl

	// ParamTypes holds the synthesized parameter types in generation order.
	ParamTypes []*TypeAliasDecl

	// Services is the exported services object.
	Services *VarDecl

	Warnings []model.Warning
}

// Render prints the module.
func (m *Module) Render(p *Printer) string {
	sections := make([][]Node, 0, len(m.ParamTypes)+2)

	imports := make([]Node, len(m.Imports))
	for i, decl := range m.Imports {
		imports[i] = decl
	}
	sections = append(sections, imports)

	for _, decl := range m.ParamTypes {
		sections = append(sections, []Node{decl})
	}
	sections = append(sections, []Node{m.Services})

	return p.PrintFile(m.Frontmatter, sections...)
}

// RenderServices assembles and prints the services module for services.
func RenderServices(services []model.ServiceDescriptor, ctx Context) (string, []model.Warning) {
	mod := AssembleModule(services, ctx)
	return mod.Render(NewPrinter(ctx.Config)), mod.Warnings
}

// AssembleModule builds the services module: the client import, deduplicated
// class imports, one parameter type per parameterized method, and the
// exported services object mirroring the service/method names of services.
func AssembleModule(services []model.ServiceDescriptor, ctx Context) *Module {
	ts := ctx.TypeScript.withDefaults()
	resolver := ctx.Resolver
	if resolver == nil {
		resolver = (&model.ProjectModel{}).NewResolver(model.ResolverOptions{
			EntitiesDir: ts.EntitiesDir,
			EnumsModule: ts.EnumsModule,
		})
	}

	s := &synthesizer{
		cfg:      ctx.Config,
		ts:       ts,
		resolver: resolver,
		keys:     NewPrinter(GeneratorConfig{}),
	}

	// Imported classes are bound before parameter types are named, so a
	// parameter type never shadows a class and a class never shadows the
	// client types or the export.
	s.namer = NewNamer(ctx.Config.TypeCase, CubaAppType, FetchOptionsType, RestServicesVarName)
	s.locals, s.warnings = bindImports(services, resolver, s.namer)

	props := make([]PropertyAssignment, 0, len(services))
	var paramTypes []*TypeAliasDecl
	var imports []ImportInfo
	for _, svc := range services {
		res := s.assembleService(svc)
		props = append(props, res.node)
		paramTypes = append(paramTypes, res.paramTypes...)
		imports = append(imports, res.imports...)
	}

	clientImport := &ImportDecl{
		Specs:  []ImportSpec{{Name: CubaAppType}, {Name: FetchOptionsType}},
		Module: ts.ClientModule,
	}

	return &Module{
		Frontmatter: ctx.Config.Frontmatter,
		Imports:     append([]*ImportDecl{clientImport}, createIncludes(imports, s.locals)...),
		ParamTypes:  paramTypes,
		Services: &VarDecl{
			Export: true,
			Name:   RestServicesVarName,
			Init:   &ObjectLiteral{Props: props},
		},
		Warnings: s.warnings,
	}
}

// synthesizer carries the state of one module generation.
type synthesizer struct {
	cfg      GeneratorConfig
	ts       TypeScriptConfig
	resolver *model.Resolver
	namer    *Namer
	locals   map[ImportInfo]string // local names of imported classes
	keys     *Printer              // renders shapes for structural comparison
	warnings []model.Warning
}

type serviceResult struct {
	node       PropertyAssignment
	paramTypes []*TypeAliasDecl
	imports    []ImportInfo
}

// assembleService builds the services object entry for svc.
func (s *synthesizer) assembleService(svc model.ServiceDescriptor) serviceResult {
	var res serviceResult
	groups := GroupMethods(svc.Methods)
	methods := make([]PropertyAssignment, 0, len(groups))

	for _, mwo := range groups {
		typeName := ""
		if mwo.HasParams() {
			decl, imports := s.paramsType(svc.Name, mwo)
			res.paramTypes = append(res.paramTypes, decl)
			res.imports = append(res.imports, imports...)
			typeName = decl.Name
		}
		methods = append(methods, PropertyAssignment{
			Key:   mwo.MethodName,
			Value: s.methodBody(svc.Name, mwo.MethodName, typeName),
		})
	}

	res.node = PropertyAssignment{Key: svc.Name, Value: &ObjectLiteral{Props: methods}}
	return res
}

// paramsType synthesizes the parameter type of an overload set. Every overload
// contributes one object shape; identical shapes are kept once and several
// distinct shapes become a union, so any call valid for any overload type-checks.
func (s *synthesizer) paramsType(service string, mwo MethodWithOverloads) (*TypeAliasDecl, []ImportInfo) {
	name := s.namer.ParamsTypeName(service, mwo.MethodName)

	var shapes []TypeNode
	var imports []ImportInfo
	seen := make(map[string]bool)
	for _, m := range mwo.Methods {
		var shape TypeNode
		if len(m.Params) == 0 {
			shape = &RecordTypeNode{Key: &TypeRefNode{Name: "string"}, Value: &TypeRefNode{Name: "never"}}
		} else {
			lit := &TypeLiteralNode{Members: make([]PropertySignature, 0, len(m.Params))}
			for _, p := range m.Params {
				ref := s.resolver.Resolve(p.Type)
				s.warnUnresolved(service, mwo.MethodName, p, ref)
				imports = append(imports, importsOf(ref)...)
				lit.Members = append(lit.Members, PropertySignature{Name: p.Name, Type: s.typeExpr(ref)})
			}
			shape = lit
		}

		key := s.keys.Print(shape)
		if seen[key] {
			continue
		}
		seen[key] = true
		shapes = append(shapes, shape)
	}

	decl := &TypeAliasDecl{Export: true, Name: name, Type: shapes[0]}
	if len(shapes) > 1 {
		decl.Type = &UnionTypeNode{Types: shapes}
		s.warnings = append(s.warnings, model.Warning{
			Code:    model.WarnOverloadUnion,
			Message: fmt.Sprintf("%s.%s has %d overload shapes; %s is their union", service, mwo.MethodName, len(shapes), name),
			Service: service,
			Method:  mwo.MethodName,
		})
	}

	if s.cfg.EmitComments {
		decl.Doc = "Parameters of " + service + "." + mwo.MethodName + "."
		if len(shapes) > 1 {
			decl.Doc += fmt.Sprintf("\nUnion of %d overload signatures.", len(shapes))
		}
	}

	return decl, imports
}

// methodBody builds the curried accessor of one method:
//
//	(cubaApp, fetchOpts?) => (params) => { return cubaApp.invokeService(...); }
//
// with the stages swapped for CurryParamsFirst. typeName is empty when no
// overload takes parameters; the params stage is then empty and {} is passed.
func (s *synthesizer) methodBody(service, method, typeName string) *ArrowFunc {
	var args Expr = &ObjectLiteral{}
	var paramsStage []Param
	if typeName != "" {
		args = &Ident{Name: paramsName}
		paramsStage = []Param{{Name: paramsName, Type: &TypeRefNode{Name: typeName}}}
	}

	appStage := []Param{
		{Name: cubaAppName, Type: &TypeRefNode{Name: CubaAppType}},
		{Name: fetchOptionsName, Optional: true, Type: &TypeRefNode{Name: FetchOptionsType}},
	}

	call := &Block{Stmts: []Node{
		&ReturnStmt{X: &CallExpr{
			Callee: &PropertyAccess{X: &Ident{Name: cubaAppName}, Name: invokeService},
			Args: []Expr{
				&StringLit{Value: service},
				&StringLit{Value: method},
				args,
				&Ident{Name: fetchOptionsName},
			},
		}},
	}}

	if s.ts.CurryOrder == CurryParamsFirst {
		return &ArrowFunc{Params: paramsStage, Body: &ArrowFunc{Params: appStage, Body: call}}
	}
	return &ArrowFunc{Params: appStage, Body: &ArrowFunc{Params: paramsStage, Body: call}}
}

// typeExpr maps a resolved parameter type to a TypeScript type.
func (s *synthesizer) typeExpr(ref model.TypeRef) TypeNode {
	switch t := ref.(type) {
	case *model.PrimitiveType:
		switch t.PrimitiveKind {
		case model.PrimitiveBool:
			return &TypeRefNode{Name: "boolean"}
		case model.PrimitiveNumber:
			return &TypeRefNode{Name: "number"}
		case model.PrimitiveString, model.PrimitiveUUID, model.PrimitiveDateTime:
			return &TypeRefNode{Name: "string"}
		default:
			return &TypeRefNode{Name: s.ts.UnknownType}
		}
	case *model.EntityRef:
		return &TypeRefNode{Name: s.localName(t.ClassRef)}
	case *model.EnumRef:
		return &TypeRefNode{Name: s.localName(t.ClassRef)}
	case *model.ArrayType:
		return &ArrayTypeNode{Elem: s.typeExpr(t.Element)}
	case *model.MapType:
		// JSON object keys are strings; only enum keys keep their type.
		var key TypeNode = &TypeRefNode{Name: "string"}
		if _, ok := t.Key.(*model.EnumRef); ok {
			key = s.typeExpr(t.Key)
		}
		return &RecordTypeNode{Key: key, Value: s.typeExpr(t.Value)}
	default:
		return &TypeRefNode{Name: s.ts.UnknownType}
	}
}

// localName returns the name ref is bound to by the module's imports.
func (s *synthesizer) localName(ref model.ClassRef) string {
	if local, ok := s.locals[ImportInfo{Name: ref.ClassName, Module: ref.Module}]; ok {
		return local
	}
	return ref.ClassName
}

func (s *synthesizer) warnUnresolved(service, method string, p model.ParameterDescriptor, ref model.TypeRef) {
	for _, name := range model.Unresolved(ref) {
		s.warnings = append(s.warnings, model.Warning{
			Code:    model.WarnUnresolvedType,
			Message: fmt.Sprintf("parameter %s of %s.%s: unknown type %s, emitted as %s", p.Name, service, method, name, s.ts.UnknownType),
			Service: service,
			Method:  method,
		})
	}
}
