package service

const (
	MaxAmount        = 1_000_000_000_000_000.0 // montos en pesos, cubre propiedades de lujo
	MaxInterestRate  = 1000.0                  // 1000% anual
	MaxTermYears     = 50
	MinTermYears     = 1
	MaxHorizonYears  = 100
	MonthsPerYear    = 12
	BalanceTolerance = 1e-9 // saldo residual aceptado en la última cuota, relativo al capital

	// Límites para la comparación de plazos
	MaxTermRangeYears = 40
)

const (
	PreferenceMinimizeInterest = "minimize_interest"
	PreferenceMaximizeCashFlow = "maximize_cash_flow"
	PreferenceBalanced         = "balanced"
)
