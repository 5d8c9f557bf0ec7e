package formula

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func evalConst(t *testing.T, src string) decimal.Decimal {
	t.Helper()
	expr, err := Parse(src)
	require.NoError(t, err, "Parse(%q)", src)
	v, err := expr.Eval(func(string) decimal.Decimal { return decimal.Zero })
	require.NoError(t, err, "Eval(%q)", src)
	return v
}

func TestParse_Arithmetic(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1+2*3", "7"},
		{"(1+2)*3", "9"},
		{"10-4-3", "3"},
		{"100/4/5", "5"},
		{"-5+2", "-3"},
		{"2*-3", "-6"},
		{" 1.5 + 2.25 ", "3.75"},
	}
	for _, tt := range tests {
		got := evalConst(t, tt.src)
		assert.True(t, got.Equal(dec(tt.want)), "%q = %s, want %s", tt.src, got, tt.want)
	}
}

func TestParse_RejectsForeignTokens(t *testing.T) {
	for _, src := range []string{
		"1+2;drop",
		"UB %",
		"exec('rm')",
		"1 & 2",
		"2^3",
		"1,5",
	} {
		_, err := Parse(src)
		assert.Error(t, err, "Parse(%q) should fail", src)
	}
}

func TestParse_RejectsIncomplete(t *testing.T) {
	for _, src := range []string{"1+", "(1+2", "*3", "I2:", "I2:3"} {
		_, err := Parse(src)
		assert.Error(t, err, "Parse(%q) should fail", src)
	}
}

func TestEval_DivisionByZeroErrors(t *testing.T) {
	expr, err := Parse("10/0")
	require.NoError(t, err)
	_, err = expr.Eval(func(string) decimal.Decimal { return decimal.Zero })
	assert.Error(t, err)
}

func TestEval_References(t *testing.T) {
	expr, err := Parse("UB*0.25")
	require.NoError(t, err)
	v, err := expr.Eval(func(id string) decimal.Decimal {
		if id == "UB" {
			return dec("1000")
		}
		return decimal.Zero
	})
	require.NoError(t, err)
	assert.True(t, v.Equal(dec("250")))
}

func TestExpandRange(t *testing.T) {
	ids, err := ExpandRange("I2", "I4")
	require.NoError(t, err)
	assert.Equal(t, []string{"I2", "I3", "I4"}, ids)

	ids, err = ExpandRange("I3", "I3")
	require.NoError(t, err)
	assert.Equal(t, []string{"I3"}, ids)

	_, err = ExpandRange("I4", "I2")
	assert.Error(t, err, "descending range")

	_, err = ExpandRange("I2", "J4")
	assert.Error(t, err, "mixed prefixes")
}

func TestSplitCellID(t *testing.T) {
	prefix, idx, err := SplitCellID("I12")
	require.NoError(t, err)
	assert.Equal(t, "I", prefix)
	assert.Equal(t, 12, idx)

	_, _, err = SplitCellID("UB")
	assert.Error(t, err)
	_, _, err = SplitCellID("42")
	assert.Error(t, err)
}

func TestSheet_LiteralAndFormula(t *testing.T) {
	s := NewSheet()
	s.SetRaw("I2", "10")
	s.SetRaw("I3", "=I2*2")
	s.SetValue("UB", dec("1000"))
	s.SetRaw("I4", "=UB-I3")

	assert.True(t, s.Resolve("I2").Equal(dec("10")))
	assert.True(t, s.Resolve("I3").Equal(dec("20")))
	assert.True(t, s.Resolve("I4").Equal(dec("980")))
}

func TestSheet_RangeSum(t *testing.T) {
	s := NewSheet()
	s.SetRaw("I2", "10")
	s.SetRaw("I3", "20")
	s.SetRaw("I4", "30")
	s.SetRaw("T", "=I2:I4")
	assert.True(t, s.Resolve("T").Equal(dec("60")))
}

func TestSheet_CycleResolvesToZero(t *testing.T) {
	s := NewSheet()
	s.SetRaw("I2", "=I3")
	s.SetRaw("I3", "=I2")
	assert.True(t, s.Resolve("I2").IsZero())
	assert.True(t, s.Resolve("I3").IsZero())

	s.SetRaw("I4", "=I4+1")
	assert.True(t, s.Resolve("I4").Equal(dec("1")), "self-reference counts as zero inside its own formula")
}

func TestSheet_RepeatedReferenceIsNotACycle(t *testing.T) {
	s := NewSheet()
	s.SetRaw("I2", "=5")
	s.SetRaw("I3", "=I2+I2")
	assert.True(t, s.Resolve("I3").Equal(dec("10")))

	// Diamond: the same formula cell reached through a range and directly.
	s.SetRaw("I4", "=10")
	s.SetRaw("I5", "=20")
	s.SetRaw("T", "=I4:I5+I4")
	assert.True(t, s.Resolve("T").Equal(dec("40")))
}

func TestSheet_MalformedFormulaIsZero(t *testing.T) {
	s := NewSheet()
	s.SetRaw("I2", "=1+")
	s.SetRaw("I3", "=10/0")
	s.SetRaw("I4", "not a number")
	assert.True(t, s.Resolve("I2").IsZero())
	assert.True(t, s.Resolve("I3").IsZero())
	assert.True(t, s.Resolve("I4").IsZero())
}

func TestSheet_UnknownCellIsZero(t *testing.T) {
	s := NewSheet()
	assert.True(t, s.Resolve("NOPE").IsZero())
}

func TestSheet_RawShadowsConstant(t *testing.T) {
	s := NewSheet()
	s.SetValue("TAX", dec("250"))
	s.SetRaw("TAX", "=100+1")
	assert.True(t, s.Resolve("TAX").Equal(dec("101")))
}

func TestEvalWith(t *testing.T) {
	consts := map[string]decimal.Decimal{"UB": dec("1000"), "RA": dec("50")}
	assert.True(t, EvalWith("=UB*0.25", consts).Equal(dec("250")))
	assert.True(t, EvalWith("=UB+RA", consts).Equal(dec("1050")))
	assert.True(t, EvalWith("=UB*", consts).IsZero())
	assert.True(t, EvalWith("12.5", consts).Equal(dec("12.5")))
}
