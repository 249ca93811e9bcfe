package parser

// The AST is a pair of tagged unions. Nodes embed the union interface so the
// concrete types below are the only members; every node exclusively owns its
// sub-nodes (a tree, never a DAG).

type Expr interface {
	isExpr() Expr
}

type Stmt interface {
	isStmt() Stmt
}

// Expression nodes
type ENumber struct {
	Expr  `json:"-"`
	Value int64
}
type EVar struct {
	Expr `json:"-"`
	Name string
}
type EBinary struct {
	Expr  `json:"-"`
	Left  Expr
	Op    string
	Right Expr
}

// Statement nodes
type SAssign struct {
	Stmt  `json:"-"`
	Name  string
	Value Expr
}
type SFunc struct {
	Stmt   `json:"-"`
	Name   string
	Params []string
	Body   []Stmt
}
type SIf struct {
	Stmt `json:"-"`
	Cond Expr
	Body []Stmt
}
