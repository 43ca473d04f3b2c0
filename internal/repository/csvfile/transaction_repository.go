package csvfile

import (
	"context"
	"fmt"

	"myRecoMarket/domain"
)

// Column names of the raw transaction export.
const (
	colCustomerID = "UUID_CLIENTE_CONSUMIDOR"
	colOrderID    = "PEDIDO"
	colProductID  = "COD_PRODUCTO"
	colDate       = "FECHA_SOLUCION"
	colCategory   = "CATEGORIA"
	colUnits      = "UNIDADES_BRUTAS"
	colGrossSale  = "VENTA_BRUTA_CON_IVA"
)

type TransactionRepository struct {
	path string
}

func NewTransactionRepository(path string) *TransactionRepository {
	return &TransactionRepository{
		path: path,
	}
}

func (r *TransactionRepository) FindAll(ctx context.Context) ([]domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	required := []string{colCustomerID, colOrderID, colProductID, colDate, colCategory, colUnits, colGrossSale}

	var transactions []domain.Transaction
	err := readRows(ctx, r.path, required, func(rw row) error {
		date, err := rw.date(colDate)
		if err != nil {
			return err
		}
		units, err := rw.float(colUnits)
		if err != nil {
			return err
		}
		gross, err := rw.float(colGrossSale)
		if err != nil {
			return err
		}

		customerID := rw.str(colCustomerID)
		if customerID == "" {
			return fmt.Errorf("line %d: empty %s", rw.line, colCustomerID)
		}

		transactions = append(transactions, domain.Transaction{
			CustomerID:      customerID,
			OrderID:         rw.str(colOrderID),
			ProductID:       rw.str(colProductID),
			Date:            date,
			Category:        rw.str(colCategory),
			Units:           units,
			GrossSaleAmount: gross,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	return transactions, nil
}
