package evaluator

import (
	"log/slog"
	"os"
	"testing"

	"github.com/robbyt/go-scalareval/ir"
	"github.com/robbyt/go-scalareval/mocks"
	"github.com/robbyt/go-scalareval/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestEvaluator builds an Evaluator logging to stdout.
func newTestEvaluator(t *testing.T, opts ...FunctionalOption) *Evaluator {
	t.Helper()
	handler := slog.NewTextHandler(os.Stdout, nil)
	ev, err := New(append([]FunctionalOption{WithLogHandler(handler)}, opts...)...)
	require.NoError(t, err, "Failed to create evaluator")
	require.NotNil(t, ev)
	return ev
}

// mustEvaluate evaluates v and requires a known value.
func mustEvaluate(t *testing.T, ev *Evaluator, v *ir.Val) value.Value {
	t.Helper()
	x, ok, err := ev.Evaluate(v)
	require.NoError(t, err)
	require.True(t, ok, "%s should resolve", v.InlineString())
	return x
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		ev, err := New()
		require.NoError(t, err)
		assert.NotNil(t, ev.logger)
		assert.NotNil(t, ev.logHandler)
		assert.NotNil(t, ev.Env())
		assert.Nil(t, ev.Env().Precomputed())
		assert.Equal(t, "scalareval.Evaluator", ev.String())
	})

	t.Run("with logger", func(t *testing.T) {
		t.Parallel()
		logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
		ev, err := New(WithLogger(logger))
		require.NoError(t, err)
		assert.Same(t, logger, ev.logger)
		assert.Equal(t, logger.Handler(), ev.logHandler)
	})

	t.Run("with precomputed", func(t *testing.T) {
		t.Parallel()
		cache := &mocks.PrecomputedCache{}
		ev, err := New(WithPrecomputed(cache))
		require.NoError(t, err)
		assert.Same(t, cache, ev.Env().Precomputed())
	})

	t.Run("invalid options", func(t *testing.T) {
		t.Parallel()
		for name, opt := range map[string]FunctionalOption{
			"nil handler": WithLogHandler(nil),
			"nil logger":  WithLogger(nil),
			"nil cache":   WithPrecomputed(nil),
		} {
			_, err := New(opt)
			assert.Error(t, err, name)
		}
	})
}

func TestEvaluate_EndToEnd(t *testing.T) {
	t.Parallel()

	c := ir.NewContainer()
	a := c.NewInt()
	b := c.NewInt()
	sum := c.Add(a, b)
	d := c.CeilDiv(sum, c.ConstInt(3))

	ev := newTestEvaluator(t)
	require.NoError(t, ev.Bind(a, value.Int(6)))
	require.NoError(t, ev.Bind(b, value.Int(4)))

	assert.Equal(t, value.Int(4), mustEvaluate(t, ev, d))
	assert.Equal(t, 2, ev.Stats().Dispatches)

	got, ok, err := ev.Lookup(sum)
	require.NoError(t, err)
	require.True(t, ok, "intermediate results are memoized")
	assert.Equal(t, value.Int(10), got)
	assert.Equal(t, 2, ev.Stats().Dispatches, "lookup must not traverse definitions")
}

func TestEvaluate_Memoization(t *testing.T) {
	t.Parallel()

	c := ir.NewContainer()
	a := c.NewInt()
	sq := c.Mul(a, a)
	out := c.Add(sq, sq)

	ev := newTestEvaluator(t)
	require.NoError(t, ev.Bind(a, value.Int(3)))

	assert.Equal(t, value.Int(18), mustEvaluate(t, ev, out))
	assert.Equal(t, 2, ev.Stats().Dispatches, "a shared operand is evaluated once")

	assert.Equal(t, value.Int(18), mustEvaluate(t, ev, out))
	assert.Equal(t, 2, ev.Stats().Dispatches, "a resolved node is not evaluated again")

	got, ok, err := ev.Lookup(sq)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, value.Int(9), got)
}

func TestEvaluate_Determinism(t *testing.T) {
	t.Parallel()

	c := ir.NewContainer()
	x := c.NewDouble()
	y := c.NewDouble()
	out := c.Max(c.Div(x, y), c.Abs(c.Neg(y)))

	ev := newTestEvaluator(t)
	require.NoError(t, ev.Bind(x, value.Double(7)))
	require.NoError(t, ev.Bind(y, value.Double(2)))

	first := mustEvaluate(t, ev, out)
	second := mustEvaluate(t, ev, out)
	assert.Equal(t, first, second)
	assert.Equal(t, value.Double(3.5), first)
}

func TestEvaluate_Unknowns(t *testing.T) {
	t.Parallel()

	t.Run("free node without binding", func(t *testing.T) {
		t.Parallel()
		c := ir.NewContainer()
		ev := newTestEvaluator(t)

		x, ok, err := ev.Evaluate(c.NewInt())
		require.NoError(t, err)
		assert.False(t, ok)
		assert.False(t, x.IsValid())
	})

	t.Run("binary with one unresolved operand writes nothing", func(t *testing.T) {
		t.Parallel()
		c := ir.NewContainer()
		a := c.NewInt()
		b := c.NewInt()
		sum := c.Add(a, b)

		ev := newTestEvaluator(t)
		require.NoError(t, ev.Bind(a, value.Int(1)))

		_, ok, err := ev.Evaluate(sum)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, 1, ev.Env().Len(), "only the binding of a is stored")
		assert.Equal(t, 1, ev.Stats().Unresolved)

		_, ok, err = ev.Lookup(sum)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unary with unresolved operand", func(t *testing.T) {
		t.Parallel()
		c := ir.NewContainer()
		neg := c.Neg(c.NewInt())

		ev := newTestEvaluator(t)
		_, ok, err := ev.Evaluate(neg)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, 0, ev.Env().Len())
	})

	t.Run("resolves once the missing binding arrives", func(t *testing.T) {
		t.Parallel()
		c := ir.NewContainer()
		a := c.NewInt()
		b := c.NewInt()
		sum := c.Add(a, b)

		ev := newTestEvaluator(t)
		require.NoError(t, ev.Bind(a, value.Int(1)))
		_, ok, err := ev.Evaluate(sum)
		require.NoError(t, err)
		require.False(t, ok)

		require.NoError(t, ev.Bind(b, value.Int(2)))
		assert.Equal(t, value.Int(3), mustEvaluate(t, ev, sum))
	})

	t.Run("nil node", func(t *testing.T) {
		t.Parallel()
		_, _, err := newTestEvaluator(t).Evaluate(nil)
		require.ErrorIs(t, err, ErrNilNode)
	})
}

func TestEvaluate_DivisionByZero(t *testing.T) {
	t.Parallel()

	builders := map[string]func(c *ir.Container, lhs, rhs *ir.Val) *ir.Val{
		"div":     (*ir.Container).Div,
		"mod":     (*ir.Container).Mod,
		"ceildiv": (*ir.Container).CeilDiv,
	}

	for name, build := range builders {
		t.Run(name+" with unresolved lhs", func(t *testing.T) {
			t.Parallel()
			c := ir.NewContainer()
			out := build(c, c.NewInt(), c.ConstInt(0))

			ev := newTestEvaluator(t)
			_, ok, err := ev.Evaluate(out)
			require.ErrorIs(t, err, ErrDivisionByZero)
			assert.False(t, ok)
		})

		t.Run(name+" with resolved lhs", func(t *testing.T) {
			t.Parallel()
			c := ir.NewContainer()
			lhs := c.NewInt()
			zero := c.NewInt()
			out := build(c, lhs, zero)

			ev := newTestEvaluator(t)
			require.NoError(t, ev.Bind(lhs, value.Int(5)))
			require.NoError(t, ev.Bind(zero, value.Int(0)))
			_, _, err := ev.Evaluate(out)
			require.ErrorIs(t, err, ErrDivisionByZero)
		})

		t.Run(name+" with computed double zero", func(t *testing.T) {
			t.Parallel()
			c := ir.NewContainer()
			y := c.NewDouble()
			out := build(c, c.ConstDouble(1), c.Sub(y, y))

			ev := newTestEvaluator(t)
			require.NoError(t, ev.Bind(y, value.Double(2.5)))
			_, _, err := ev.Evaluate(out)
			require.ErrorIs(t, err, ErrDivisionByZero)
			assert.Contains(t, err.Error(), "( d0 - d0 )", "the error names the expression")
		})
	}

	t.Run("nonzero divisor", func(t *testing.T) {
		t.Parallel()
		c := ir.NewContainer()
		out := c.Mod(c.ConstInt(-7), c.ConstInt(3))
		assert.Equal(t, value.Int(-1), mustEvaluate(t, newTestEvaluator(t), out))
	})
}

func TestEvaluate_Operators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		build    func(c *ir.Container, a, b *ir.Val) *ir.Val
		a, b     int64
		expected value.Value
	}{
		{"add", (*ir.Container).Add, 6, 4, value.Int(10)},
		{"sub", (*ir.Container).Sub, 6, 4, value.Int(2)},
		{"mul", (*ir.Container).Mul, 6, 4, value.Int(24)},
		{"div", (*ir.Container).Div, -7, 2, value.Int(-3)},
		{"mod", (*ir.Container).Mod, 7, 4, value.Int(3)},
		{"ceildiv", (*ir.Container).CeilDiv, 7, 4, value.Int(2)},
		{"and", (*ir.Container).And, 7, 0, value.Int(0)},
		{"max", (*ir.Container).Max, 7, 4, value.Int(7)},
		{"min", (*ir.Container).Min, 7, 4, value.Int(4)},
		{"neg", func(c *ir.Container, a, _ *ir.Val) *ir.Val { return c.Neg(a) }, 7, 0, value.Int(-7)},
		{"set", func(c *ir.Container, a, _ *ir.Val) *ir.Val { return c.Set(a) }, 7, 0, value.Int(7)},
		{"abs", func(c *ir.Container, a, _ *ir.Val) *ir.Val { return c.Abs(a) }, -7, 0, value.Int(7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := ir.NewContainer()
			a := c.NewInt()
			b := c.NewInt()
			out := tt.build(c, a, b)

			ev := newTestEvaluator(t)
			require.NoError(t, ev.Bind(a, value.Int(tt.a)))
			require.NoError(t, ev.Bind(b, value.Int(tt.b)))
			assert.Equal(t, tt.expected, mustEvaluate(t, ev, out))
		})
	}
}

func TestEvaluate_Casts(t *testing.T) {
	t.Parallel()

	c := ir.NewContainer()
	d := c.NewDouble()
	i := c.NewInt()
	toInt := c.NewCast(ir.Int, d)
	toDouble := c.NewCast(ir.Double, i)
	intToInt := c.NewCast(ir.Int, i)

	ev := newTestEvaluator(t)
	require.NoError(t, ev.Bind(d, value.Double(3.9)))
	require.NoError(t, ev.Bind(i, value.Int(7)))

	assert.Equal(t, value.Int(3), mustEvaluate(t, ev, toInt))
	assert.Equal(t, value.Double(7.0), mustEvaluate(t, ev, toDouble))
	assert.Equal(t, value.Int(7), mustEvaluate(t, ev, intToInt))

	t.Run("unsupported target dtype", func(t *testing.T) {
		t.Parallel()
		c := ir.NewContainer()
		out := c.NewCast(ir.Half, c.ConstInt(1))
		_, _, err := newTestEvaluator(t).Evaluate(out)
		require.ErrorIs(t, err, ErrUnsupportedDType)
	})

	t.Run("non finite double", func(t *testing.T) {
		t.Parallel()
		c := ir.NewContainer()
		zero := c.NewDouble()
		out := c.NewCast(ir.Int, c.Div(c.ConstDouble(1), c.Add(zero, c.ConstDouble(1e-320))))

		ev := newTestEvaluator(t)
		require.NoError(t, ev.Bind(zero, value.Double(0)))
		_, _, err := ev.Evaluate(out)
		require.ErrorIs(t, err, ErrInvalidCast)
	})
}

func TestEvaluate_HardFailures(t *testing.T) {
	t.Parallel()

	t.Run("unsupported unary operator", func(t *testing.T) {
		t.Parallel()
		c := ir.NewContainer()
		out := c.NewUnary(ir.UnarySqrt, c.NewDouble())
		_, _, err := newTestEvaluator(t).Evaluate(out)
		require.ErrorIs(t, err, ErrUnsupportedOp)
	})

	t.Run("unsupported binary operator", func(t *testing.T) {
		t.Parallel()
		c := ir.NewContainer()
		out := c.NewBinary(ir.BinaryPow, c.ConstInt(2), c.ConstInt(3))
		_, _, err := newTestEvaluator(t).Evaluate(out)
		require.ErrorIs(t, err, ErrUnsupportedOp)
	})

	t.Run("failure in an operand propagates", func(t *testing.T) {
		t.Parallel()
		c := ir.NewContainer()
		bad := c.NewBinary(ir.BinaryLT, c.ConstInt(2), c.ConstInt(3))
		out := c.Add(c.ConstInt(1), bad)
		_, _, err := newTestEvaluator(t).Evaluate(out)
		require.ErrorIs(t, err, ErrUnsupportedOp)
	})

	t.Run("mixed operand kinds", func(t *testing.T) {
		t.Parallel()
		c := ir.NewContainer()
		out := c.Add(c.ConstInt(1), c.ConstDouble(1))
		_, _, err := newTestEvaluator(t).Evaluate(out)
		require.ErrorIs(t, err, ErrKindMismatch)
	})

	t.Run("unsupported node dtype", func(t *testing.T) {
		t.Parallel()
		c := ir.NewContainer()
		_, _, err := newTestEvaluator(t).Evaluate(c.NewScalar(ir.Bool))
		require.ErrorIs(t, err, ErrUnsupportedDType)
	})
}

func TestEvaluate_Precomputed(t *testing.T) {
	t.Parallel()

	t.Run("ready cache takes precedence", func(t *testing.T) {
		t.Parallel()
		c := ir.NewContainer()
		n := c.NewInt()

		cache := &mocks.PrecomputedCache{}
		cache.On("Ready").Return(true)
		cache.On("GetMaybeValueFor", n).Return(value.Int(99), true)

		ev := newTestEvaluator(t, WithPrecomputed(cache))
		require.NoError(t, ev.Bind(n, value.Int(5)))

		assert.Equal(t, value.Int(99), mustEvaluate(t, ev, n))
		assert.Equal(t, 1, ev.Stats().CacheHits)

		got, ok, err := ev.Lookup(n)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, value.Int(5), got, "lookup reads the environment only")
		cache.AssertExpectations(t)
	})

	t.Run("cache that is not ready is skipped", func(t *testing.T) {
		t.Parallel()
		c := ir.NewContainer()
		n := c.NewInt()

		cache := &mocks.PrecomputedCache{}
		cache.On("Ready").Return(false)

		ev := newTestEvaluator(t, WithPrecomputed(cache))
		require.NoError(t, ev.Bind(n, value.Int(5)))

		assert.Equal(t, value.Int(5), mustEvaluate(t, ev, n))
		cache.AssertNotCalled(t, "GetMaybeValueFor", mock.Anything)
		assert.Equal(t, 0, ev.Stats().CacheHits)
	})

	t.Run("cache miss falls back to recursion", func(t *testing.T) {
		t.Parallel()
		c := ir.NewContainer()
		a := c.NewInt()
		out := c.Mul(a, c.ConstInt(2))

		cache := &mocks.PrecomputedCache{}
		cache.On("Ready").Return(true)
		cache.On("GetMaybeValueFor", mock.Anything).Return(value.Value{}, false)

		ev := newTestEvaluator(t, WithPrecomputed(cache))
		require.NoError(t, ev.Bind(a, value.Int(21)))

		assert.Equal(t, value.Int(42), mustEvaluate(t, ev, out))
		assert.Equal(t, 1, ev.Stats().Dispatches)
	})

	t.Run("cache answers operands of a definition", func(t *testing.T) {
		t.Parallel()
		c := ir.NewContainer()
		bdx := c.ParallelDim(ir.TIDx)
		out := c.CeilDiv(c.ConstInt(1000), bdx)

		cache := &mocks.PrecomputedCache{}
		cache.On("Ready").Return(true)
		cache.On("GetMaybeValueFor", bdx).Return(value.Int(128), true)
		cache.On("GetMaybeValueFor", mock.Anything).Return(value.Value{}, false)

		ev := newTestEvaluator(t, WithPrecomputed(cache))
		assert.Equal(t, value.Int(8), mustEvaluate(t, ev, out))
	})
}
