package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nodemart/backend/internal/ledger"
)

type lineItemResponse struct {
	ProductID   uuid.UUID       `json:"product_id"`
	Name        string          `json:"name"`
	Quantity    int             `json:"quantity"`
	PriceAtSale decimal.Decimal `json:"price_at_sale"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type transactionResponse struct {
	ID              uuid.UUID          `json:"id"`
	EmployeeID      uuid.UUID          `json:"employee_id"`
	OccurredAt      time.Time          `json:"occurred_at"`
	Lines           []lineItemResponse `json:"lines"`
	TotalAmount     decimal.Decimal    `json:"total_amount"`
	PaymentMethod   string             `json:"payment_method"`
	TransactionHash string             `json:"transaction_hash"`
	PreviousHash    string             `json:"previous_hash"`
}

func toResponse(tx *ledger.SaleTransaction) transactionResponse {
	resp := transactionResponse{
		ID:              tx.ID,
		EmployeeID:      tx.EmployeeID,
		OccurredAt:      tx.OccurredAt,
		Lines:           make([]lineItemResponse, len(tx.Lines)),
		TotalAmount:     tx.TotalAmount,
		PaymentMethod:   string(tx.PaymentMethod),
		TransactionHash: tx.TransactionHash,
		PreviousHash:    tx.PreviousHash,
	}

	for i, li := range tx.Lines {
		resp.Lines[i] = lineItemResponse{
			ProductID:   li.ProductID,
			Name:        li.Name,
			Quantity:    li.Quantity,
			PriceAtSale: li.PriceAtSale,
			Subtotal:    li.Subtotal,
		}
	}

	return resp
}

func toResponseList(txs []*ledger.SaleTransaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
