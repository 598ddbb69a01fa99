package line

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"github.com/hupe1980/decgeom/internal/decmath"
)

// renderPlaces is the number of decimal places shown for coefficients and
// the constant term.
const renderPlaces = -3

var renderOne = apd.New(1, 0)

// String renders the line as a human-readable equation, e.g.
// "10.115x_1 + 7.090x_2 = 0.100" or "x_1 - x_2 = 3".
//
// Coefficients and the constant are rounded half-even to three decimal
// places. A term whose rounded coefficient is zero is omitted; a
// coefficient of +-1 drops the digit; the leading term carries no "+";
// whole numbers drop the decimal point. When every coefficient rounds to
// zero the left-hand side is the literal "0".
func (l *Line) String() string {
	lhs := "0"

	if initial, err := l.FirstNonzeroIndex(); err == nil {
		terms := make([]string, 0, dimension)
		for i := 0; i < dimension; i++ {
			coeff := l.round(l.normal.At(i))
			if coeff.Sign() == 0 {
				continue
			}
			terms = append(terms, l.writeCoefficient(coeff, i == initial)+fmt.Sprintf("x_%d", i+1))
		}
		if len(terms) > 0 {
			lhs = strings.Join(terms, " ")
		}
	}

	return lhs + " = " + l.formatRounded(l.round(&l.constant))
}

// round quantizes x to three decimal places under the line's context.
func (l *Line) round(x *apd.Decimal) *apd.Decimal {
	var q apd.Decimal
	_, _ = l.ctx.Quantize(&q, x, renderPlaces)
	return &q
}

// writeCoefficient renders the sign and magnitude prefix of a rounded,
// nonzero coefficient. The initial term gets no "+" and no separator.
func (l *Line) writeCoefficient(coeff *apd.Decimal, isInitial bool) string {
	var sb strings.Builder

	if coeff.Sign() < 0 {
		sb.WriteByte('-')
	}
	if coeff.Sign() > 0 && !isInitial {
		sb.WriteByte('+')
	}
	if !isInitial {
		sb.WriteByte(' ')
	}

	abs := decmath.Abs(coeff)
	if abs.Cmp(renderOne) != 0 {
		sb.WriteString(l.formatRounded(abs))
	}

	return sb.String()
}

// formatRounded prints a quantized decimal, collapsing whole numbers to
// their integer form.
func (l *Line) formatRounded(q *apd.Decimal) string {
	if q.Sign() == 0 {
		return "0"
	}

	var whole apd.Decimal
	_, _ = l.ctx.Quantize(&whole, q, 0)
	if whole.Cmp(q) == 0 {
		return whole.Text('f')
	}

	return q.Text('f')
}
