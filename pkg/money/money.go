package money

import "github.com/shopspring/decimal"

// Round2 rounds a monetary amount to 2 decimal places (half away from zero).
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// SplitEven divides total into n parts rounded to cents. Any rounding
// remainder lands on the last part, so the parts always sum to total.
func SplitEven(total float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	t := decimal.NewFromFloat(total)
	per := t.DivRound(decimal.NewFromInt(int64(n)), 2)
	parts := make([]float64, n)
	for i := 0; i < n-1; i++ {
		parts[i], _ = per.Float64()
	}
	last := t.Sub(per.Mul(decimal.NewFromInt(int64(n - 1))))
	parts[n-1], _ = last.Float64()
	return parts
}

// Share returns amount * pct / 100 rounded to cents.
func Share(amount, pct float64) float64 {
	f, _ := decimal.NewFromFloat(amount).
		Mul(decimal.NewFromFloat(pct)).
		Div(decimal.NewFromInt(100)).
		Round(2).Float64()
	return f
}

// Add sums two amounts keeping cent precision.
func Add(a, b float64) float64 {
	f, _ := decimal.NewFromFloat(a).Add(decimal.NewFromFloat(b)).Float64()
	return f
}

// Sub subtracts b from a keeping cent precision.
func Sub(a, b float64) float64 {
	f, _ := decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Float64()
	return f
}
