package repositories

import "math"

func roundTo2(x float64) float64 {
	return math.Round(x*100) / 100
}
