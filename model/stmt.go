package model

// Op selects the shape of a Stmt.
type Op int

const (
	OpDeclare Op = iota + 1 // Name := Value
	OpAssign                // Target = Value
	OpAppend                // Target = append(Target, Value)
	OpIfEmpty               // if Target is unset { Body }
	OpGrow                  // append unset slots to Target until len(Target) > Index, counting with Name
	OpReturn                // return Value
)

// Stmt is one statement of a synthesized method body. Only the fields
// relevant to Op are set.
type Stmt struct {
	Op     Op
	Name   string
	Target Expr
	Value  Expr
	Index  Expr
	Body   []Stmt
}

// ExprOp selects the shape of an Expr.
type ExprOp int

const (
	ExprNil   ExprOp = iota + 1 // the unset value
	ExprField                   // receiver.Name
	ExprVar                     // Name
	ExprIndex                   // X[Index]
	ExprNew                     // a fresh instance of Type, via constructor Name when set
)

// Expr is an expression inside a Stmt.
type Expr struct {
	Op    ExprOp
	Name  string
	Type  *TypeDescriptor
	X     *Expr
	Index *Expr
}

// Field refers to a field of the method receiver.
func Field(name string) Expr { return Expr{Op: ExprField, Name: name} }

// Var refers to a local variable or parameter.
func Var(name string) Expr { return Expr{Op: ExprVar, Name: name} }

// Nil is the unset value.
func Nil() Expr { return Expr{Op: ExprNil} }

// Index refers to x[index].
func Index(x, index Expr) Expr { return Expr{Op: ExprIndex, X: &x, Index: &index} }

// New constructs a fresh instance of t. An empty constructor means a
// composite literal.
func New(t *TypeDescriptor, constructor string) Expr {
	return Expr{Op: ExprNew, Name: constructor, Type: t}
}

// Declare introduces a local variable.
func Declare(name string, value Expr) Stmt { return Stmt{Op: OpDeclare, Name: name, Value: value} }

// Assign stores value into target.
func Assign(target, value Expr) Stmt { return Stmt{Op: OpAssign, Target: target, Value: value} }

// Append appends value to the sequence target.
func Append(target, value Expr) Stmt { return Stmt{Op: OpAppend, Target: target, Value: value} }

// IfEmpty runs body when target holds the unset value.
func IfEmpty(target Expr, body ...Stmt) Stmt { return Stmt{Op: OpIfEmpty, Target: target, Body: body} }

// Grow pads the sequence target with unset slots so that index is
// addressable. counter names the loop variable.
func Grow(target, index Expr, counter string) Stmt {
	return Stmt{Op: OpGrow, Name: counter, Target: target, Index: index}
}

// Return returns value.
func Return(value Expr) Stmt { return Stmt{Op: OpReturn, Value: value} }
