package domain

import "time"

// CREATE TABLE public.transactions (
//     id                  BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     customer_id         TEXT NOT NULL,
//     order_id            TEXT NOT NULL,
//     product_id          TEXT NOT NULL,
//     transaction_date    TIMESTAMPTZ NOT NULL,
//     category            TEXT,
//     units               NUMERIC,
//     gross_sale_amount   NUMERIC
// );

type Transaction struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement" json:"-"`
	CustomerID      string    `gorm:"column:customer_id;type:text;not null" json:"customer_id"`
	OrderID         string    `gorm:"column:order_id;type:text;not null" json:"order_id"`
	ProductID       string    `gorm:"column:product_id;type:text;not null" json:"product_id"`
	Date            time.Time `gorm:"column:transaction_date;not null" json:"date"`
	Category        string    `gorm:"column:category;type:text" json:"category"`
	Units           float64   `gorm:"column:units;type:numeric" json:"units"`
	GrossSaleAmount float64   `gorm:"column:gross_sale_amount;type:numeric" json:"gross_sale_amount"`
}

func (Transaction) TableName() string {
	return "transactions"
}
