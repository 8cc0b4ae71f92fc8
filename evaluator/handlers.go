package evaluator

import (
	"fmt"

	"github.com/robbyt/go-scalareval/ir"
	"github.com/robbyt/go-scalareval/ops"
	"github.com/robbyt/go-scalareval/value"
)

func (e *Evaluator) handleUnary(uop *ir.UnaryOp) error {
	if !ops.SupportedUnary(uop.Op()) {
		return e.fail(uop, fmt.Errorf("%w: %s", ErrUnsupportedOp, uop.Op()))
	}

	in, ok, err := e.Evaluate(uop.In())
	if err != nil {
		return err
	}
	if !ok {
		e.unresolved(uop)
		return nil
	}

	out, err := ops.Unary(uop.Op(), uop.Out().DType(), in)
	if err != nil {
		return e.fail(uop, err)
	}
	return e.record(uop, uop.Out(), out)
}

func (e *Evaluator) handleBinary(bop *ir.BinaryOp) error {
	if !ops.SupportedBinary(bop.Op()) {
		return e.fail(bop, fmt.Errorf("%w: %s", ErrUnsupportedOp, bop.Op()))
	}

	lhs, lhsKnown, err := e.Evaluate(bop.Lhs())
	if err != nil {
		return err
	}
	rhs, rhsKnown, err := e.Evaluate(bop.Rhs())
	if err != nil {
		return err
	}

	// a zero divisor fails even when lhs is still unknown
	if rhsKnown {
		if err := ops.CheckDivisor(bop.Op(), rhs); err != nil {
			return e.fail(bop, err)
		}
	}
	if !lhsKnown || !rhsKnown {
		e.unresolved(bop)
		return nil
	}

	out, err := ops.Binary(bop.Op(), lhs, rhs)
	if err != nil {
		return e.fail(bop, err)
	}
	return e.record(bop, bop.Out(), out)
}

func (e *Evaluator) record(def ir.Expr, out *ir.Val, x value.Value) error {
	if !ops.MatchesDType(out.DType(), x) {
		return e.fail(def, fmt.Errorf("%w: %s is %s, got %s", ErrKindMismatch, out, out.DType(), x.KindName()))
	}
	e.env.store(out, x)
	e.logger.Debug("evaluated", "expr", def.String(), "value", x.String())
	return nil
}
