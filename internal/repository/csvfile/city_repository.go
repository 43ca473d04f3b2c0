package csvfile

import (
	"context"
	"fmt"

	"myRecoMarket/domain"
)

const colCity = "CIUDAD"

// CityRepository reads the city table exported next to the transactions.
// Only the CIUDAD column is used.
type CityRepository struct {
	path string
}

func NewCityRepository(path string) *CityRepository {
	return &CityRepository{
		path: path,
	}
}

func (r *CityRepository) FindAll(ctx context.Context) ([]domain.CityRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var cities []domain.CityRecord
	err := readRows(ctx, r.path, []string{colCity}, func(rw row) error {
		cities = append(cities, domain.CityRecord{City: rw.str(colCity)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load cities: %w", err)
	}

	return cities, nil
}
