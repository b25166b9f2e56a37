package calls

import "github.com/CeresDB/dbc/pkg/dbc"

func calls(a, b int, xs []int) {
	dbc.Require(a > 0, "positive", a)
	dbc.Ensure(
		b < 10,
		"bounded",
		b,
		len(xs),
	)
	dbc.Require(a > 0, "twice", a); dbc.Require(b > 0, "twice", b)
	dbc.Invariant(a != b, "distinct", xs[0] +
		xs[1])
	args := []any{"spread", a}
	dbc.Require(false, args...)
}
