package typescript

import (
	"bytes"
	"fmt"
	"strings"
)

// Printer renders syntax nodes as TypeScript source text.
// A Printer holds no per-call state and may be shared.
type Printer struct {
	indent          string
	newline         string
	trailingNewline bool
}

// NewPrinter returns a Printer for the formatting options in cfg.
func NewPrinter(cfg GeneratorConfig) *Printer {
	p := &Printer{
		indent:          "  ",
		newline:         "\n",
		trailingNewline: cfg.TrailingNewline,
	}
	if cfg.IndentStyle == "tab" {
		p.indent = "\t"
	} else if cfg.IndentSize > 0 {
		p.indent = strings.Repeat(" ", cfg.IndentSize)
	}
	if cfg.LineEnding == "crlf" {
		p.newline = "\r\n"
	}
	return p
}

// Print renders a single node at the top indentation level.
func (p *Printer) Print(n Node) string {
	var buf bytes.Buffer
	p.print(&buf, n, 0)
	return p.lineEndings(buf.String())
}

// PrintFile renders a source file. Frontmatter, when set, comes first.
// Nodes within a section go on consecutive lines; sections are separated
// by a blank line. Empty sections are skipped.
func (p *Printer) PrintFile(frontmatter string, sections ...[]Node) string {
	var parts []string
	if fm := strings.TrimRight(frontmatter, "\r\n"); fm != "" {
		parts = append(parts, fm)
	}
	for _, section := range sections {
		if len(section) == 0 {
			continue
		}
		var buf bytes.Buffer
		for i, n := range section {
			if i > 0 {
				buf.WriteString("\n")
			}
			p.print(&buf, n, 0)
		}
		parts = append(parts, buf.String())
	}

	out := strings.Join(parts, "\n\n")
	if p.trailingNewline && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return p.lineEndings(out)
}

func (p *Printer) lineEndings(s string) string {
	if p.newline == "\n" {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", p.newline)
}

func (p *Printer) writeIndent(buf *bytes.Buffer, level int) {
	for i := 0; i < level; i++ {
		buf.WriteString(p.indent)
	}
}

func (p *Printer) print(buf *bytes.Buffer, n Node, level int) {
	switch n := n.(type) {
	case *ImportDecl:
		buf.WriteString("import { ")
		for i, spec := range n.Specs {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(spec.Name)
			if spec.Alias != "" && spec.Alias != spec.Name {
				buf.WriteString(" as ")
				buf.WriteString(spec.Alias)
			}
		}
		buf.WriteString(" } from ")
		buf.WriteString(quote(n.Module))
		buf.WriteString(";")

	case *TypeAliasDecl:
		if n.Doc != "" {
			p.writeJSDoc(buf, n.Doc, level)
		}
		if n.Export {
			buf.WriteString("export ")
		}
		buf.WriteString("type ")
		buf.WriteString(n.Name)
		buf.WriteString(" = ")
		p.print(buf, n.Type, level)
		buf.WriteString(";")

	case *VarDecl:
		if n.Export {
			buf.WriteString("export ")
		}
		buf.WriteString("const ")
		buf.WriteString(n.Name)
		buf.WriteString(" = ")
		p.print(buf, n.Init, level)
		buf.WriteString(";")

	case *Block:
		if len(n.Stmts) == 0 {
			buf.WriteString("{}")
			return
		}
		buf.WriteString("{")
		for _, stmt := range n.Stmts {
			buf.WriteString("\n")
			p.writeIndent(buf, level+1)
			p.print(buf, stmt, level+1)
		}
		buf.WriteString("\n")
		p.writeIndent(buf, level)
		buf.WriteString("}")

	case *ReturnStmt:
		buf.WriteString("return ")
		p.print(buf, n.X, level)
		buf.WriteString(";")

	case *TypeRefNode:
		buf.WriteString(n.Name)

	case *ArrayTypeNode:
		if _, isUnion := n.Elem.(*UnionTypeNode); isUnion {
			buf.WriteString("(")
			p.print(buf, n.Elem, level)
			buf.WriteString(")")
		} else {
			p.print(buf, n.Elem, level)
		}
		buf.WriteString("[]")

	case *RecordTypeNode:
		buf.WriteString("Record<")
		p.print(buf, n.Key, level)
		buf.WriteString(", ")
		p.print(buf, n.Value, level)
		buf.WriteString(">")

	case *UnionTypeNode:
		for i, t := range n.Types {
			if i > 0 {
				buf.WriteString(" | ")
			}
			p.print(buf, t, level)
		}

	case *TypeLiteralNode:
		if len(n.Members) == 0 {
			buf.WriteString("{}")
			return
		}
		buf.WriteString("{")
		for _, m := range n.Members {
			buf.WriteString("\n")
			p.writeIndent(buf, level+1)
			buf.WriteString(propertyKey(m.Name))
			if m.Optional {
				buf.WriteString("?")
			}
			buf.WriteString(": ")
			p.print(buf, m.Type, level+1)
			buf.WriteString(";")
		}
		buf.WriteString("\n")
		p.writeIndent(buf, level)
		buf.WriteString("}")

	case *Ident:
		buf.WriteString(n.Name)

	case *StringLit:
		buf.WriteString(quote(n.Value))

	case *PropertyAccess:
		p.print(buf, n.X, level)
		buf.WriteString(".")
		buf.WriteString(n.Name)

	case *CallExpr:
		p.print(buf, n.Callee, level)
		buf.WriteString("(")
		for i, arg := range n.Args {
			if i > 0 {
				buf.WriteString(", ")
			}
			p.print(buf, arg, level)
		}
		buf.WriteString(")")

	case *ArrowFunc:
		buf.WriteString("(")
		for i, param := range n.Params {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(param.Name)
			if param.Optional {
				buf.WriteString("?")
			}
			if param.Type != nil {
				buf.WriteString(": ")
				p.print(buf, param.Type, level)
			}
		}
		buf.WriteString(") => ")
		p.print(buf, n.Body, level)

	case *ObjectLiteral:
		if len(n.Props) == 0 {
			buf.WriteString("{}")
			return
		}
		buf.WriteString("{")
		for i, prop := range n.Props {
			if i > 0 {
				buf.WriteString(",")
			}
			buf.WriteString("\n")
			p.writeIndent(buf, level+1)
			buf.WriteString(objectKey(prop.Key))
			buf.WriteString(": ")
			p.print(buf, prop.Value, level+1)
		}
		buf.WriteString("\n")
		p.writeIndent(buf, level)
		buf.WriteString("}")

	default:
		panic(fmt.Sprintf("typescript: cannot print %T", n))
	}
}

// writeJSDoc writes a JSDoc comment and re-indents for the following declaration.
func (p *Printer) writeJSDoc(buf *bytes.Buffer, doc string, level int) {
	lines := strings.Split(strings.TrimSpace(doc), "\n")
	if len(lines) == 1 {
		buf.WriteString("/** ")
		buf.WriteString(strings.TrimSpace(lines[0]))
		buf.WriteString(" */\n")
		p.writeIndent(buf, level)
		return
	}

	buf.WriteString("/**\n")
	for _, line := range lines {
		p.writeIndent(buf, level)
		line = strings.TrimSpace(line)
		if line == "" {
			buf.WriteString(" *\n")
			continue
		}
		buf.WriteString(" * ")
		buf.WriteString(line)
		buf.WriteString("\n")
	}
	p.writeIndent(buf, level)
	buf.WriteString(" */\n")
	p.writeIndent(buf, level)
}
