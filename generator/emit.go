package generator

import (
	"github.com/dave/jennifer/jen"

	"github.com/mlwelles/fluentGen/model"
)

// emitter renders the statement IR of one class's methods.
type emitter struct {
	recv string
}

func (e emitter) method(c *model.ClassDescriptor, m model.Method) *jen.Statement {
	params := make([]jen.Code, 0, len(m.Params))
	for _, p := range m.Params {
		params = append(params, jen.Id(p.Name).Add(typeCode(p.Type)))
	}
	return jen.Func().
		Params(jen.Id(e.recv).Op("*").Id(c.Name)).
		Id(m.Name).
		Params(params...).
		Add(typeCode(m.Result)).
		Block(e.stmts(m.Body)...)
}

func (e emitter) stmts(body []model.Stmt) []jen.Code {
	out := make([]jen.Code, 0, len(body))
	for _, s := range body {
		out = append(out, e.stmt(s))
	}
	return out
}

func (e emitter) stmt(s model.Stmt) jen.Code {
	switch s.Op {
	case model.OpDeclare:
		return jen.Id(s.Name).Op(":=").Add(e.expr(s.Value))
	case model.OpAssign:
		return e.expr(s.Target).Op("=").Add(e.expr(s.Value))
	case model.OpAppend:
		return e.expr(s.Target).Op("=").Append(e.expr(s.Target), e.expr(s.Value))
	case model.OpIfEmpty:
		return jen.If(e.expr(s.Target).Op("==").Nil()).Block(e.stmts(s.Body)...)
	case model.OpGrow:
		return jen.If(jen.Len(e.expr(s.Target)).Op("<=").Add(e.expr(s.Index))).Block(
			jen.For(
				jen.Id(s.Name).Op(":=").Len(e.expr(s.Target)),
				jen.Id(s.Name).Op("<=").Add(e.expr(s.Index)),
				jen.Id(s.Name).Op("++"),
			).Block(
				e.expr(s.Target).Op("=").Append(e.expr(s.Target), jen.Nil()),
			),
		)
	case model.OpReturn:
		return jen.Return(e.expr(s.Value))
	default:
		return jen.Null()
	}
}

// expr returns a fresh statement for x; jen statements are appended to in
// place and must not be shared.
func (e emitter) expr(x model.Expr) *jen.Statement {
	switch x.Op {
	case model.ExprNil:
		return jen.Nil()
	case model.ExprField:
		return jen.Id(e.recv).Dot(x.Name)
	case model.ExprVar:
		return jen.Id(x.Name)
	case model.ExprIndex:
		return e.expr(*x.X).Index(e.expr(*x.Index))
	case model.ExprNew:
		if x.Name != "" {
			return jen.Id(x.Name).Call()
		}
		lit := typeName(x.Type).Values()
		if x.Type.Pointer {
			return jen.Op("&").Add(lit)
		}
		return lit
	default:
		return jen.Null()
	}
}

// typeCode renders a type expression, e.g. *Item or []*Item.
func typeCode(t *model.TypeDescriptor) *jen.Statement {
	s := &jen.Statement{}
	if t == nil {
		return s
	}
	if t.Pointer {
		s.Op("*")
	}
	if t.Name == "" && t.Elem != nil {
		return s.Index().Add(typeCode(t.Elem))
	}
	return s.Add(typeName(t))
}

func typeName(t *model.TypeDescriptor) *jen.Statement {
	if t.Namespace != "" {
		return jen.Id(t.Namespace).Dot(t.Name)
	}
	return jen.Id(t.Name)
}
