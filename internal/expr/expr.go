// Package expr parses and evaluates one-operator expressions over BigInt
// operands, e.g. "348975 % 123" or "-5 <= 7".
package expr

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"bigint/internal/bignum"
	"bigint/internal/trace"
)

var (
	// ErrSyntax indicates a line that is not "<a> <op> <b>".
	ErrSyntax = errors.New("expected <a> <op> <b>")
	// ErrUnknownOp indicates an unsupported operator.
	ErrUnknownOp = errors.New("unknown operator")
)

// Op is a binary operator.
type Op string

const (
	OpAdd Op = "+"
	OpSub Op = "-"
	OpMul Op = "*"
	OpQuo Op = "/"
	OpRem Op = "%"
	OpEq  Op = "=="
	OpNe  Op = "!="
	OpLt  Op = "<"
	OpLe  Op = "<="
	OpGt  Op = ">"
	OpGe  Op = ">="
)

// Ops lists every supported operator.
var Ops = []Op{OpAdd, OpSub, OpMul, OpQuo, OpRem, OpEq, OpNe, OpLt, OpLe, OpGt, OpGe}

// ParseOp validates an operator token.
func ParseOp(s string) (Op, error) {
	for _, op := range Ops {
		if string(op) == s {
			return op, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOp, s)
}

// IsComparison reports whether op yields a boolean.
func (op Op) IsComparison() bool {
	switch op {
	case OpEq, OpNe, OpLt, OpLe, OpGt, OpGe:
		return true
	default:
		return false
	}
}

// traceName is the span name used for op.
func (op Op) traceName() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpQuo:
		return "quo"
	case OpRem:
		return "rem"
	default:
		return "cmp"
	}
}

// Expr is a parsed binary expression.
type Expr struct {
	A  bignum.BigInt
	Op Op
	B  bignum.BigInt
}

// String renders the expression in canonical form.
func (e Expr) String() string {
	return e.A.String() + " " + string(e.Op) + " " + e.B.String()
}

// Parse reads "<a> <op> <b>". The line is NFKC-normalized first, so
// full-width digits and signs are accepted; fields are separated by any
// whitespace.
func Parse(line string) (Expr, error) {
	fields := strings.Fields(norm.NFKC.String(line))
	if len(fields) != 3 {
		return Expr{}, fmt.Errorf("%w: got %d fields in %q", ErrSyntax, len(fields), line)
	}
	a, err := bignum.ParseInt(fields[0])
	if err != nil {
		return Expr{}, fmt.Errorf("left operand: %w", err)
	}
	op, err := ParseOp(fields[1])
	if err != nil {
		return Expr{}, err
	}
	b, err := bignum.ParseInt(fields[2])
	if err != nil {
		return Expr{}, fmt.Errorf("right operand: %w", err)
	}
	return Expr{A: a, Op: op, B: b}, nil
}

// Eval computes the expression.
func (e Expr) Eval() (Result, error) {
	switch e.Op {
	case OpAdd:
		return ValueResult(e.A.Add(e.B)), nil
	case OpSub:
		return ValueResult(e.A.Sub(e.B)), nil
	case OpMul:
		return ValueResult(e.A.Mul(e.B)), nil
	case OpQuo:
		q, err := e.A.Quo(e.B)
		if err != nil {
			return Result{}, err
		}
		return ValueResult(q), nil
	case OpRem:
		r, err := e.A.Rem(e.B)
		if err != nil {
			return Result{}, err
		}
		return ValueResult(r), nil
	case OpEq:
		return BoolResult(e.A.Equal(e.B)), nil
	case OpNe:
		return BoolResult(e.A.NotEqual(e.B)), nil
	case OpLt:
		return BoolResult(e.A.Less(e.B)), nil
	case OpLe:
		return BoolResult(e.A.LessOrEqual(e.B)), nil
	case OpGt:
		return BoolResult(e.A.Greater(e.B)), nil
	case OpGe:
		return BoolResult(e.A.GreaterOrEqual(e.B)), nil
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownOp, e.Op)
	}
}

// Evaluate parses and evaluates line, recording an op-scope span on the
// tracer carried by ctx.
func Evaluate(ctx context.Context, line string) (Expr, Result, error) {
	e, err := Parse(line)
	if err != nil {
		return Expr{}, Result{}, err
	}
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeOp, e.Op.traceName(), trace.CurrentSpan(ctx))
	res, err := e.Eval()
	if err != nil {
		span.Fail(err)
		return e, Result{}, err
	}
	span.WithExtra("op", string(e.Op)).End(res.String())
	return e, res, nil
}
