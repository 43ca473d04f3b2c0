package domain

type CategoryStat struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

type MonthlySales struct {
	Month string  `json:"month"` // YYYY-MM
	Total float64 `json:"total"`
}

type EDAOverview struct {
	TopCategoriesByCount   []CategoryStat `json:"top_categories_by_count"`
	TopCategoriesByUnits   []CategoryStat `json:"top_categories_by_units"`
	TopCategoriesByAvgSale []CategoryStat `json:"top_categories_by_avg_sale"`
	TopCitiesByCount       []CategoryStat `json:"top_cities_by_count"`
	MonthlySales           []MonthlySales `json:"monthly_sales"`
}

// CityRecord is one row of the city table exported next to the transactions.
type CityRecord struct {
	City string `json:"city"`
}
