package data

import "math/big"

var (
	ten  = big.NewFloat(10)
	half = big.NewFloat(0.5)
)

// RoundTenth rounds v to one decimal place from its exact binary value, with
// ties going up. 0.25 becomes 0.3 while 1.15 (stored as 1.1499...) becomes 1.1.
func RoundTenth(v float64) float64 {
	x := new(big.Float).SetPrec(128).SetFloat64(v)
	x.Mul(x, ten)
	x.Add(x, half)

	n, _ := x.Int(nil)
	if x.Sign() < 0 && !x.IsInt() {
		n.Sub(n, big.NewInt(1))
	}
	return float64(n.Int64()) / 10
}
