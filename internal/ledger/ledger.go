package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod is how a sale was paid for.
type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "cash"
	PaymentCard  PaymentMethod = "card"
	PaymentOther PaymentMethod = "other"
)

// Valid reports whether m is one of the known payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentOther:
		return true
	}

	return false
}

// GenesisHash is the previous-hash value of the first transaction ever appended.
const GenesisHash = "0"

// LineItem is a snapshot of one cart line at the moment of sale. PriceAtSale
// is the catalog price at that moment, never the live price.
type LineItem struct {
	ProductID   uuid.UUID
	Name        string
	Quantity    int
	PriceAtSale decimal.Decimal
	Subtotal    decimal.Decimal
}

// SaleTransaction is one committed sale. Records are immutable once appended;
// each one carries the hash of its predecessor, so altering any past record
// invalidates every hash after it.
type SaleTransaction struct {
	ID              uuid.UUID
	Seq             int64 // Append order across all employees
	EmployeeID      uuid.UUID
	OccurredAt      time.Time
	Lines           []LineItem
	TotalAmount     decimal.Decimal
	PaymentMethod   PaymentMethod
	TransactionHash string
	PreviousHash    string
}

// signaturePayload builds the canonical byte representation the content hash
// is computed over. Amounts are rendered with a fixed two-digit scale so the
// payload survives a round trip through NUMERIC columns.
func (t *SaleTransaction) signaturePayload() []byte {
	var b strings.Builder

	b.WriteString(t.PreviousHash)
	b.WriteByte('|')
	b.WriteString(t.EmployeeID.String())
	b.WriteByte('|')
	b.WriteString(t.OccurredAt.UTC().Format(time.RFC3339Nano))
	b.WriteByte('|')
	b.WriteString(t.TotalAmount.StringFixed(2))

	for _, li := range t.Lines {
		b.WriteByte('|')
		b.WriteString(li.ProductID.String())
		b.WriteByte(':')
		b.WriteString(li.Name)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(li.Quantity))
		b.WriteByte(':')
		b.WriteString(li.PriceAtSale.StringFixed(2))
	}

	return []byte(b.String())
}

// ComputeHash returns the hex-encoded SHA-256 content hash of the transaction.
func (t *SaleTransaction) ComputeHash() string {
	sum := sha256.Sum256(t.signaturePayload())
	return hex.EncodeToString(sum[:])
}

// VerifyHash reports whether the stored hash still matches the record's own
// fields.
func (t *SaleTransaction) VerifyHash() bool {
	return t.TransactionHash == t.ComputeHash()
}
