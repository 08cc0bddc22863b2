package typescript

// Node is a TypeScript syntax node the Printer can render.
// The node set covers exactly what the services module needs.
type Node interface {
	node()
}

// TypeNode is a node in type position.
type TypeNode interface {
	Node
	typeNode()
}

// Expr is a node in expression position.
type Expr interface {
	Node
	expr()
}

// Declarations and statements.

// ImportDecl is `import { A, B as C } from "module";`.
type ImportDecl struct {
	Specs  []ImportSpec
	Module string
}

// ImportSpec is one imported symbol. Alias, when set, is the local name.
type ImportSpec struct {
	Name  string
	Alias string
}

// Local returns the name the symbol is bound to in the importing module.
func (s ImportSpec) Local() string {
	if s.Alias != "" {
		return s.Alias
	}
	return s.Name
}

// TypeAliasDecl is `export type Name = Type;`.
type TypeAliasDecl struct {
	Export bool
	Name   string
	Type   TypeNode
	Doc    string
}

// VarDecl is `export const Name = Init;`.
type VarDecl struct {
	Export bool
	Name   string
	Init   Expr
}

// Block is a braced statement list.
type Block struct {
	Stmts []Node
}

// ReturnStmt is `return X;`.
type ReturnStmt struct {
	X Expr
}

func (*ImportDecl) node()    {}
func (*TypeAliasDecl) node() {}
func (*VarDecl) node()       {}
func (*Block) node()         {}
func (*ReturnStmt) node()    {}

// Types.

// TypeRefNode names a type: a keyword ("number") or a declared/imported type.
type TypeRefNode struct {
	Name string
}

// ArrayTypeNode is `Elem[]`.
type ArrayTypeNode struct {
	Elem TypeNode
}

// RecordTypeNode is `Record<Key, Value>`.
type RecordTypeNode struct {
	Key   TypeNode
	Value TypeNode
}

// UnionTypeNode is `A | B | ...`.
type UnionTypeNode struct {
	Types []TypeNode
}

// TypeLiteralNode is an object type `{ a: T; b?: U; }`.
type TypeLiteralNode struct {
	Members []PropertySignature
}

// PropertySignature is one member of a TypeLiteralNode.
type PropertySignature struct {
	Name     string
	Optional bool
	Type     TypeNode
}

func (*TypeRefNode) node()     {}
func (*ArrayTypeNode) node()   {}
func (*RecordTypeNode) node()  {}
func (*UnionTypeNode) node()   {}
func (*TypeLiteralNode) node() {}

func (*TypeRefNode) typeNode()     {}
func (*ArrayTypeNode) typeNode()   {}
func (*RecordTypeNode) typeNode()  {}
func (*UnionTypeNode) typeNode()   {}
func (*TypeLiteralNode) typeNode() {}

// Expressions.

// Ident is an identifier reference.
type Ident struct {
	Name string
}

// StringLit is a double-quoted string literal.
type StringLit struct {
	Value string
}

// PropertyAccess is `X.Name`.
type PropertyAccess struct {
	X    Expr
	Name string
}

// CallExpr is `Callee(Args...)`.
type CallExpr struct {
	Callee Expr
	Args   []Expr
}

// ArrowFunc is `(Params) => Body`. Body is either an Expr or a *Block.
type ArrowFunc struct {
	Params []Param
	Body   Node
}

// Param is one arrow function parameter.
type Param struct {
	Name     string
	Optional bool
	Type     TypeNode
}

// ObjectLiteral is `{ key: value, ... }`, one property per line.
type ObjectLiteral struct {
	Props []PropertyAssignment
}

// PropertyAssignment is one ObjectLiteral entry.
type PropertyAssignment struct {
	Key   string
	Value Expr
}

func (*Ident) node()          {}
func (*StringLit) node()      {}
func (*PropertyAccess) node() {}
func (*CallExpr) node()       {}
func (*ArrowFunc) node()      {}
func (*ObjectLiteral) node()  {}

func (*Ident) expr()          {}
func (*StringLit) expr()      {}
func (*PropertyAccess) expr() {}
func (*CallExpr) expr()       {}
func (*ArrowFunc) expr()      {}
func (*ObjectLiteral) expr()  {}
