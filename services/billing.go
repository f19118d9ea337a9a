package services

import (
	"errors"
	"time"

	"photostudio-backend/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PaymentStatus is derived from recorded payments; it is not the free-text
// label stored on the invoice itself.
type PaymentStatus string

const (
	StatusUnpaid  PaymentStatus = "unpaid"
	StatusPartial PaymentStatus = "partial"
	StatusPaid    PaymentStatus = "paid"
)

var (
	ErrInvalidAmount   = errors.New("payment amount must be greater than zero")
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrOverpayment     = errors.New("payment exceeds invoice amount")
)

// DeriveStatus computes the balance and payment status for an invoice from
// its amount and the sum already paid. Pure; the summary endpoint and every
// report row go through here so the thresholds cannot drift apart.
//
// A zero-amount invoice with nothing paid has a zero balance and is "paid".
func DeriveStatus(amount, paid decimal.Decimal) (decimal.Decimal, PaymentStatus) {
	balance := amount.Sub(paid)
	switch {
	case balance.IsZero():
		return balance, StatusPaid
	case paid.Sign() > 0 && paid.Cmp(amount) < 0:
		return balance, StatusPartial
	default:
		return balance, StatusUnpaid
	}
}

// totalPaid sums an invoice's payments in decimal arithmetic. The sum is done
// in Go on purpose: SQL SUM would round-trip through floats on sqlite.
func totalPaid(db *gorm.DB, invoiceID uint) (decimal.Decimal, error) {
	var amounts []decimal.Decimal
	if err := db.Model(&models.Payment{}).
		Where("invoice_id = ?", invoiceID).
		Pluck("amount", &amounts).Error; err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total, nil
}

// RecordPayment applies a payment against an invoice.
//
// The existence check, the overpayment check and the insert run in one
// transaction. On postgres the invoice row is locked FOR UPDATE so two
// concurrent payments that individually fit under the balance cannot both
// slip through; sqlite has a single writer, so the transaction alone
// serializes them there.
func RecordPayment(db *gorm.DB, invoiceID uint, amount decimal.Decimal, method *string, paidAt *time.Time) (*models.Payment, error) {
	if amount.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}

	var payment models.Payment
	err := db.Transaction(func(tx *gorm.DB) error {
		q := tx
		if tx.Dialector.Name() == "postgres" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var invoice models.Invoice
		if err := q.First(&invoice, invoiceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvoiceNotFound
			}
			return err
		}

		paid, err := totalPaid(tx, invoiceID)
		if err != nil {
			return err
		}
		if paid.Add(amount).Cmp(invoice.Amount) > 0 {
			return ErrOverpayment
		}

		when := time.Now()
		if paidAt != nil {
			when = *paidAt
		}
		payment = models.Payment{
			InvoiceID: invoiceID,
			Amount:    amount,
			Method:    method,
			PaidAt:    when,
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// InvoiceSummary is the money view of a single invoice.
type InvoiceSummary struct {
	InvoiceID uint            `json:"invoice_id"`
	Amount    decimal.Decimal `json:"amount"`
	TotalPaid decimal.Decimal `json:"total_paid"`
	Balance   decimal.Decimal `json:"balance"`
	Status    PaymentStatus   `json:"status"`
}

func SummarizeInvoice(db *gorm.DB, invoiceID uint) (*InvoiceSummary, error) {
	var invoice models.Invoice
	if err := db.First(&invoice, invoiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}

	paid, err := totalPaid(db, invoiceID)
	if err != nil {
		return nil, err
	}

	balance, status := DeriveStatus(invoice.Amount, paid)
	return &InvoiceSummary{
		InvoiceID: invoice.ID,
		Amount:    invoice.Amount,
		TotalPaid: paid,
		Balance:   balance,
		Status:    status,
	}, nil
}
