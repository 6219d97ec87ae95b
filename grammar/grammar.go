// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package grammar is the concrete grammar of the language, built from the combinators in package parse.
//
// A compilation unit is a sequence of classes and functions:
//
//  class Math {
//      int Square(int x) x * x;
//      bool Even(int n) if (n == 0) true else Odd(n - 1);
//  }
//  int Main() { int x = 3; Math m = new Math(); m.Square(x) }
//
// Operators, from lowest to highest precedence: `??`, `||`, `&&`, `== !=`, `< <= > >=`, `+ -`,
// `* /`, unary `!`. Postfix forms are method invocation `x.M(a)`, indexing `v[i]`, and slicing
// `v[a:b]`; indexing and slicing are calls of the Index and Slice functions.
package grammar

import (
	"strconv"

	"github.com/coreos/pkg/capnslog"

	"github.com/wdamron/rook/ast"
	"github.com/wdamron/rook/lexer"
	"github.com/wdamron/rook/parse"
	"github.com/wdamron/rook/types"
)

var plog = capnslog.NewPackageLogger("github.com/wdamron/rook", "grammar")

// Grammar holds the parsers for each syntactic category. A Grammar must not be used
// concurrently when a nesting limit is set.
type Grammar struct {
	maxNesting int
	depth      int

	program    parse.Parser[*ast.Program]
	class      parse.Parser[*ast.Class]
	function   parse.Parser[*ast.Function]
	expression parse.Parser[ast.Expr]
	typeName   parse.Parser[*ast.TypeName]
}

// Option configures a Grammar.
type Option func(*Grammar)

// MaxNesting limits how deeply expressions may nest within one another. A limit of 0 disables the check.
func MaxNesting(n int) Option { return func(g *Grammar) { g.maxNesting = n } }

// NewGrammar builds the grammar.
func NewGrammar(opts ...Option) *Grammar {
	g := &Grammar{}
	for _, opt := range opts {
		opt(g)
	}
	g.typeName = g.typeNameRule()
	g.expression = g.nested(g.binaryRule(levels))
	g.function = g.functionRule()
	g.class = g.classRule()
	g.program = g.programRule()
	return g
}

func (g *Grammar) CompilationUnit() parse.Parser[*ast.Program] { return g.program }
func (g *Grammar) Class() parse.Parser[*ast.Class]             { return g.class }
func (g *Grammar) Function() parse.Parser[*ast.Function]       { return g.function }
func (g *Grammar) Expression() parse.Parser[ast.Expr]          { return g.expression }
func (g *Grammar) TypeName() parse.Parser[*ast.TypeName]       { return g.typeName }

// Error is a parse failure at a position.
type Error struct {
	Position lexer.Position
	Message  string
	// AtEndOfInput is set when the failure occurred at the end of the input.
	AtEndOfInput bool
}

// "(line, column): message"
func (e *Error) Error() string { return e.Position.String() + ": " + e.Message }

// Run applies p to the tokens of source.
func Run[T any](p parse.Parser[T], source string) parse.Reply[T] {
	return parse.Run(p, Lex(source).Stream())
}

// ParseAll applies p to the tokens of source, requiring that all tokens are consumed.
func ParseAll[T any](p parse.Parser[T], source string) (T, error) {
	r := Run(parse.Skip(p, parse.EndOfInput()), source)
	if !r.Success() {
		var zero T
		return zero, &Error{Position: r.Position(), Message: r.Errors().String(), AtEndOfInput: r.Rest().AtEnd()}
	}
	return r.Value(), nil
}

// ParseProgram parses a compilation unit.
func (g *Grammar) ParseProgram(source string) (*ast.Program, error) {
	p, err := ParseAll(g.program, source)
	if err != nil {
		plog.Debugf("parse failed: %v", err)
		return nil, err
	}
	plog.Debugf("parsed %d classes and %d functions", len(p.Classes), len(p.Functions))
	return p, nil
}

// ParseExpression parses a single expression.
func (g *Grammar) ParseExpression(source string) (ast.Expr, error) {
	return ParseAll(g.expression, source)
}

// ParseFunction parses a single function.
func (g *Grammar) ParseFunction(source string) (*ast.Function, error) {
	return ParseAll(g.function, source)
}

// ParseClass parses a single class.
func (g *Grammar) ParseClass(source string) (*ast.Class, error) {
	return ParseAll(g.class, source)
}

func (g *Grammar) nested(p parse.Parser[ast.Expr]) parse.Parser[ast.Expr] {
	return func(tokens lexer.TokenStream) parse.Reply[ast.Expr] {
		if g.maxNesting > 0 && g.depth >= g.maxNesting {
			return parse.FailWith[ast.Expr](tokens, parse.Expected("expression within nesting limit"))
		}
		g.depth++
		defer func() { g.depth-- }()
		return p(tokens)
	}
}

func (g *Grammar) expr() parse.Parser[ast.Expr] {
	return parse.Lazy(func() parse.Parser[ast.Expr] { return g.expression })
}

func identifier() parse.Parser[*ast.Name] {
	return parse.Map(parse.Token(Identifier), func(tok lexer.Token) *ast.Name {
		return &ast.Name{Position: tok.Position, Identifier: tok.Literal}
	})
}

func (g *Grammar) argumentList() parse.Parser[[]ast.Expr] {
	return parse.Between(parse.Token(LeftParen), parse.ZeroOrMoreSeparated(g.expr(), parse.Token(Comma)), parse.Token(RightParen))
}

func (g *Grammar) typeNameRule() parse.Parser[*ast.TypeName] {
	named := func(kind *lexer.TokenKind) parse.Parser[*ast.TypeName] {
		return parse.Map(parse.Token(kind), func(tok lexer.Token) *ast.TypeName { return ast.NewTypeName(tok.Literal) })
	}
	base := parse.Choice(named(Int), named(Bool), named(String), named(Void), named(Identifier))
	suffix := parse.Choice(parse.Token(Multiply), parse.Token(Brackets), parse.Token(Question))
	return parse.OnError(parse.Bind(base, func(tn *ast.TypeName) parse.Parser[*ast.TypeName] {
		return parse.Map(parse.ZeroOrMore(suffix), func(suffixes []lexer.Token) *ast.TypeName {
			for _, s := range suffixes {
				switch s.Kind {
				case Multiply:
					tn = ast.NewTypeName(types.EnumerableName, tn)
				case Brackets:
					tn = ast.NewTypeName(types.VectorName, tn)
				case Question:
					tn = ast.NewTypeName(types.NullableName, tn)
				}
			}
			return tn
		})
	}), "type name")
}

func (g *Grammar) parameter() parse.Parser[*ast.Parameter] {
	return parse.Bind(parse.Position(), func(pos lexer.Position) parse.Parser[*ast.Parameter] {
		return parse.Bind(g.typeName, func(tn *ast.TypeName) parse.Parser[*ast.Parameter] {
			return parse.Map(parse.Token(Identifier), func(id lexer.Token) *ast.Parameter {
				return &ast.Parameter{Position: pos, TypeName: tn, Identifier: id.Literal}
			})
		})
	})
}

// Lambda parameters may omit their type.
func (g *Grammar) lambdaParameter() parse.Parser[*ast.Parameter] {
	implicit := parse.Map(parse.Token(Identifier), func(id lexer.Token) *ast.Parameter {
		return &ast.Parameter{Position: id.Position, Identifier: id.Literal}
	})
	return parse.Choice(parse.Attempt(g.parameter()), implicit)
}

func parameterList(param parse.Parser[*ast.Parameter]) parse.Parser[[]*ast.Parameter] {
	return parse.Between(parse.Token(LeftParen), parse.ZeroOrMoreSeparated(param, parse.Token(Comma)), parse.Token(RightParen))
}

func (g *Grammar) functionRule() parse.Parser[*ast.Function] {
	return parse.Bind(parse.Position(), func(pos lexer.Position) parse.Parser[*ast.Function] {
		return parse.Bind(g.typeName, func(ret *ast.TypeName) parse.Parser[*ast.Function] {
			return parse.Bind(parse.Token(Identifier), func(name lexer.Token) parse.Parser[*ast.Function] {
				return parse.Bind(parameterList(g.parameter()), func(params []*ast.Parameter) parse.Parser[*ast.Function] {
					return parse.Map(g.expr(), func(body ast.Expr) *ast.Function {
						return &ast.Function{Position: pos, ReturnType: ret, Name: name.Literal, Params: params, Body: body}
					})
				})
			})
		})
	})
}

func optionalSemicolon() parse.Parser[lexer.Token] {
	return parse.Optional(parse.Token(Semicolon), lexer.Token{})
}

func (g *Grammar) classRule() parse.Parser[*ast.Class] {
	methods := parse.ZeroOrMore(parse.Skip(g.function, optionalSemicolon()))
	return parse.Bind(parse.Token(Class), func(kw lexer.Token) parse.Parser[*ast.Class] {
		return parse.Bind(parse.Token(Identifier), func(name lexer.Token) parse.Parser[*ast.Class] {
			return parse.Map(parse.Between(parse.Token(LeftBrace), methods, parse.Token(RightBrace)), func(fns []*ast.Function) *ast.Class {
				return &ast.Class{Position: kw.Position, Name: name.Literal, Methods: fns}
			})
		})
	})
}

type declaration struct {
	class    *ast.Class
	function *ast.Function
}

func (g *Grammar) programRule() parse.Parser[*ast.Program] {
	decl := parse.Choice(
		parse.Map(g.class, func(c *ast.Class) declaration { return declaration{class: c} }),
		parse.Map(g.function, func(f *ast.Function) declaration { return declaration{function: f} }),
	)
	return parse.Bind(parse.Position(), func(pos lexer.Position) parse.Parser[*ast.Program] {
		return parse.Map(parse.ZeroOrMore(parse.Skip(decl, optionalSemicolon())), func(decls []declaration) *ast.Program {
			p := &ast.Program{Position: pos}
			for _, d := range decls {
				if d.class != nil {
					p.Classes = append(p.Classes, d.class)
				} else {
					p.Functions = append(p.Functions, d.function)
				}
			}
			return p
		})
	})
}

// Binary operators, from lowest to highest precedence.
var levels = [][]*lexer.TokenKind{
	{NullCoalesce},
	{Or},
	{And},
	{Equal, NotEqual},
	{LessThan, LessThanOrEqual, GreaterThan, GreaterThanOrEqual},
	{Add, Subtract},
	{Multiply, Divide},
}

type operation struct {
	op  lexer.Token
	rhs ast.Expr
}

func operator(tok lexer.Token, args ...ast.Expr) *ast.Call {
	return &ast.Call{
		Position:   tok.Position,
		Callable:   &ast.Name{Position: tok.Position, Identifier: tok.Literal},
		Args:       args,
		IsOperator: true,
	}
}

// Left-associative binary operators.
func (g *Grammar) binaryRule(levels [][]*lexer.TokenKind) parse.Parser[ast.Expr] {
	if len(levels) == 0 {
		return g.unaryRule()
	}
	operand := g.binaryRule(levels[1:])
	ops := make([]parse.Parser[lexer.Token], len(levels[0]))
	for i, kind := range levels[0] {
		ops[i] = parse.Token(kind)
	}
	rest := parse.ZeroOrMore(parse.Bind(parse.Choice(ops...), func(op lexer.Token) parse.Parser[operation] {
		return parse.Map(operand, func(rhs ast.Expr) operation { return operation{op: op, rhs: rhs} })
	}))
	return parse.Bind(operand, func(lhs ast.Expr) parse.Parser[ast.Expr] {
		return parse.Map(rest, func(operations []operation) ast.Expr {
			for _, o := range operations {
				lhs = operator(o.op, lhs, o.rhs)
			}
			return lhs
		})
	})
}

func (g *Grammar) unaryRule() parse.Parser[ast.Expr] {
	var unary parse.Parser[ast.Expr]
	not := parse.Bind(parse.Token(Not), func(op lexer.Token) parse.Parser[ast.Expr] {
		return parse.Map(parse.Lazy(func() parse.Parser[ast.Expr] { return unary }), func(operand ast.Expr) ast.Expr {
			return operator(op, operand)
		})
	})
	unary = parse.Choice(not, g.postfixRule())
	return unary
}

type postfix func(ast.Expr) ast.Expr

func (g *Grammar) postfixRule() parse.Parser[ast.Expr] {
	method := parse.Bind(parse.Token(MemberAccess), func(dot lexer.Token) parse.Parser[postfix] {
		return parse.Bind(identifier(), func(name *ast.Name) parse.Parser[postfix] {
			return parse.Map(g.argumentList(), func(args []ast.Expr) postfix {
				return func(instance ast.Expr) ast.Expr {
					return &ast.MethodInvocation{Position: dot.Position, Instance: instance, Method: name, Args: args}
				}
			})
		})
	})
	index := parse.Bind(parse.Token(LeftSquare), func(bracket lexer.Token) parse.Parser[postfix] {
		call := func(fn string, args ...ast.Expr) ast.Expr {
			return &ast.Call{Position: bracket.Position, Callable: &ast.Name{Position: bracket.Position, Identifier: fn}, Args: args}
		}
		return parse.Bind(g.expr(), func(start ast.Expr) parse.Parser[postfix] {
			slice := parse.Map(parse.Between(parse.Token(Colon), g.expr(), parse.Token(RightSquare)), func(end ast.Expr) postfix {
				return func(v ast.Expr) ast.Expr { return call("Slice", v, start, end) }
			})
			single := parse.Map(parse.Token(RightSquare), func(lexer.Token) postfix {
				return func(v ast.Expr) ast.Expr { return call("Index", v, start) }
			})
			return parse.Choice(slice, single)
		})
	})
	return parse.Bind(g.unitRule(), func(e ast.Expr) parse.Parser[ast.Expr] {
		return parse.Map(parse.ZeroOrMore(parse.Choice(method, index)), func(fs []postfix) ast.Expr {
			for _, f := range fs {
				e = f(e)
			}
			return e
		})
	})
}

func (g *Grammar) unitRule() parse.Parser[ast.Expr] {
	return parse.Choice(
		g.literalRule(),
		g.blockRule(),
		g.lambdaRule(),
		g.conditionalRule(),
		g.vectorRule(),
		g.constructionRule(),
		parse.Between(parse.Token(LeftParen), g.expr(), parse.Token(RightParen)),
		g.nameOrCallRule(),
	)
}

func (g *Grammar) literalRule() parse.Parser[ast.Expr] {
	boolean := func(kind *lexer.TokenKind, value bool) parse.Parser[ast.Expr] {
		return parse.Map(parse.Token(kind), func(tok lexer.Token) ast.Expr {
			return &ast.BooleanLiteral{Position: tok.Position, Value: value}
		})
	}
	return parse.Choice(
		boolean(True, true),
		boolean(False, false),
		parse.Map(parse.Token(Integer), func(tok lexer.Token) ast.Expr {
			return &ast.IntegerLiteral{Position: tok.Position, Digits: tok.Literal}
		}),
		parse.Map(parse.Token(StringLiteral), func(tok lexer.Token) ast.Expr {
			return &ast.StringLiteral{Position: tok.Position, Quoted: tok.Literal, Value: unquote(tok.Literal)}
		}),
		parse.Map(parse.Token(Null), func(tok lexer.Token) ast.Expr {
			return &ast.Null{Position: tok.Position}
		}),
	)
}

func unquote(quoted string) string {
	if s, err := strconv.Unquote(quoted); err == nil {
		return s
	}
	return quoted[1 : len(quoted)-1]
}

type variableHead struct {
	position   lexer.Position
	typeName   *ast.TypeName
	identifier string
}

func (g *Grammar) variableDeclaration() parse.Parser[*ast.VariableDeclaration] {
	explicit := parse.Bind(parse.Position(), func(pos lexer.Position) parse.Parser[variableHead] {
		return parse.Bind(g.typeName, func(tn *ast.TypeName) parse.Parser[variableHead] {
			return parse.Map(parse.Skip(parse.Token(Identifier), parse.Token(Assignment)), func(id lexer.Token) variableHead {
				return variableHead{position: pos, typeName: tn, identifier: id.Literal}
			})
		})
	})
	implicit := parse.Map(parse.Skip(parse.Token(Identifier), parse.Token(Assignment)), func(id lexer.Token) variableHead {
		return variableHead{position: id.Position, identifier: id.Literal}
	})
	head := parse.Choice(parse.Attempt(explicit), parse.Attempt(implicit))
	return parse.Bind(head, func(h variableHead) parse.Parser[*ast.VariableDeclaration] {
		return parse.Map(parse.Skip(g.expr(), parse.Token(Semicolon)), func(value ast.Expr) *ast.VariableDeclaration {
			return &ast.VariableDeclaration{Position: h.position, TypeName: h.typeName, Identifier: h.identifier, Value: value}
		})
	})
}

func (g *Grammar) blockRule() parse.Parser[ast.Expr] {
	variables := parse.ZeroOrMore(g.variableDeclaration())
	body := parse.OneOrMore(parse.Skip(g.expr(), optionalSemicolon()))
	return parse.Bind(parse.Token(LeftBrace), func(brace lexer.Token) parse.Parser[ast.Expr] {
		return parse.Bind(variables, func(vars []*ast.VariableDeclaration) parse.Parser[ast.Expr] {
			return parse.Map(parse.Skip(body, parse.Token(RightBrace)), func(inner []ast.Expr) ast.Expr {
				return &ast.Block{Position: brace.Position, Variables: vars, Body: inner}
			})
		})
	})
}

func (g *Grammar) lambdaRule() parse.Parser[ast.Expr] {
	return parse.Bind(parse.Token(Fn), func(fn lexer.Token) parse.Parser[ast.Expr] {
		return parse.Bind(parameterList(g.lambdaParameter()), func(params []*ast.Parameter) parse.Parser[ast.Expr] {
			return parse.Map(g.expr(), func(body ast.Expr) ast.Expr {
				return &ast.Lambda{Position: fn.Position, Params: params, Body: body}
			})
		})
	})
}

func (g *Grammar) conditionalRule() parse.Parser[ast.Expr] {
	condition := parse.Between(parse.Token(LeftParen), g.expr(), parse.Token(RightParen))
	return parse.Bind(parse.Token(If), func(kw lexer.Token) parse.Parser[ast.Expr] {
		return parse.Bind(condition, func(c ast.Expr) parse.Parser[ast.Expr] {
			return parse.Bind(g.expr(), func(whenTrue ast.Expr) parse.Parser[ast.Expr] {
				return parse.Map(parse.Then(parse.Token(Else), g.expr()), func(whenFalse ast.Expr) ast.Expr {
					return &ast.If{Position: kw.Position, Condition: c, WhenTrue: whenTrue, WhenFalse: whenFalse}
				})
			})
		})
	})
}

func (g *Grammar) vectorRule() parse.Parser[ast.Expr] {
	items := parse.OneOrMoreSeparated(g.expr(), parse.Token(Comma))
	return parse.Bind(parse.Token(LeftSquare), func(bracket lexer.Token) parse.Parser[ast.Expr] {
		return parse.Map(parse.Skip(items, parse.Token(RightSquare)), func(items []ast.Expr) ast.Expr {
			return &ast.VectorLiteral{Position: bracket.Position, Items: items}
		})
	})
}

func (g *Grammar) constructionRule() parse.Parser[ast.Expr] {
	empty := parse.Then(parse.Token(LeftParen), parse.Token(RightParen))
	return parse.Bind(parse.Token(New), func(kw lexer.Token) parse.Parser[ast.Expr] {
		return parse.Map(parse.Skip(identifier(), empty), func(name *ast.Name) ast.Expr {
			return &ast.New{Position: kw.Position, TypeName: name}
		})
	})
}

func (g *Grammar) nameOrCallRule() parse.Parser[ast.Expr] {
	args := parse.Optional(parse.Map(g.argumentList(), func(args []ast.Expr) *[]ast.Expr { return &args }), nil)
	return parse.Bind(identifier(), func(name *ast.Name) parse.Parser[ast.Expr] {
		return parse.Map(args, func(args *[]ast.Expr) ast.Expr {
			if args == nil {
				return name
			}
			return &ast.Call{Position: name.Position, Callable: name, Args: *args}
		})
	})
}
