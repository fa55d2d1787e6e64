package service

import "github.com/shopspring/decimal"

// roundTo2Decimals redondea un float64 a 2 decimales
func roundTo2Decimals(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}
