package formula

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

type literal struct {
	value decimal.Decimal
}

func (l literal) Eval(Resolver) (decimal.Decimal, error) {
	return l.value, nil
}

type ref struct {
	cellID string
}

func (r ref) Eval(resolve Resolver) (decimal.Decimal, error) {
	return resolve(r.cellID), nil
}

// cellRange is the sum of a contiguous run of indexed cells, I2:I4 meaning
// I2+I3+I4.
type cellRange struct {
	from, to string
}

func (c cellRange) Eval(resolve Resolver) (decimal.Decimal, error) {
	ids, err := ExpandRange(c.from, c.to)
	if err != nil {
		return decimal.Decimal{}, err
	}
	sum := decimal.Zero
	for _, id := range ids {
		sum = sum.Add(resolve(id))
	}
	return sum, nil
}

type negate struct {
	inner Expr
}

func (n negate) Eval(resolve Resolver) (decimal.Decimal, error) {
	v, err := n.inner.Eval(resolve)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return v.Neg(), nil
}

type binary struct {
	op          byte
	left, right Expr
}

func (b binary) Eval(resolve Resolver) (decimal.Decimal, error) {
	l, err := b.left.Eval(resolve)
	if err != nil {
		return decimal.Decimal{}, err
	}
	r, err := b.right.Eval(resolve)
	if err != nil {
		return decimal.Decimal{}, err
	}
	switch b.op {
	case '+':
		return l.Add(r), nil
	case '-':
		return l.Sub(r), nil
	case '*':
		return l.Mul(r), nil
	case '/':
		if r.IsZero() {
			return decimal.Decimal{}, fmt.Errorf("division by zero")
		}
		return l.Div(r), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("unknown operator %q", b.op)
	}
}

// ExpandRange lists the cell IDs covered by a range. Both endpoints must
// share a letter prefix and the indexes must not descend: ("I2","I4") ->
// [I2 I3 I4].
func ExpandRange(from, to string) ([]string, error) {
	fromPrefix, fromIdx, err := SplitCellID(from)
	if err != nil {
		return nil, err
	}
	toPrefix, toIdx, err := SplitCellID(to)
	if err != nil {
		return nil, err
	}
	if fromPrefix != toPrefix {
		return nil, fmt.Errorf("range %s:%s spans different prefixes", from, to)
	}
	if fromIdx > toIdx {
		return nil, fmt.Errorf("range %s:%s is descending", from, to)
	}
	ids := make([]string, 0, toIdx-fromIdx+1)
	for i := fromIdx; i <= toIdx; i++ {
		ids = append(ids, fromPrefix+strconv.Itoa(i))
	}
	return ids, nil
}

// SplitCellID splits an indexed cell ID into its letter prefix and numeric
// index. "I12" -> ("I", 12).
func SplitCellID(id string) (prefix string, index int, err error) {
	i := 0
	for i < len(id) && isLetter(id[i]) {
		i++
	}
	if i == 0 || i == len(id) {
		return "", 0, fmt.Errorf("cell %q is not an indexed cell", id)
	}
	index, err = strconv.Atoi(id[i:])
	if err != nil {
		return "", 0, fmt.Errorf("cell %q has a non-numeric index", id)
	}
	return id[:i], index, nil
}
