package repository

import "context"

// RateRepository supplies the local-currency value of one indexed unit.
type RateRepository interface {
	IndexedUnitValue(ctx context.Context) (float64, error)
}

// StaticRateRepository always answers with the configured constant.
type StaticRateRepository struct {
	value float64
}

func NewStaticRateRepository(value float64) *StaticRateRepository {
	return &StaticRateRepository{value: value}
}

func (r *StaticRateRepository) IndexedUnitValue(ctx context.Context) (float64, error) {
	return r.value, nil
}
