package balance

import (
	"math/big"
)

// ScaleDecimals converts an amount between token denominations. Scaling down
// truncates unless roundUp is set.
func ScaleDecimals(amount *big.Int, from, to uint8, roundUp bool) *big.Int {
	if from == to {
		return new(big.Int).Set(amount)
	}

	if to > from {
		factor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(to-from)), nil)
		return factor.Mul(factor, amount)
	}

	factor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(from-to)), nil)
	scaled, rem := new(big.Int).QuoRem(amount, factor, new(big.Int))
	if roundUp && rem.Sign() > 0 {
		scaled.Add(scaled, big.NewInt(1))
	}
	return scaled
}
