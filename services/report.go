package services

import (
	"time"

	"photostudio-backend/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvoiceReportRow is one invoice joined with its client, optional package
// and optional shoot, plus the derived money figures.
type InvoiceReportRow struct {
	InvoiceID     uint            `json:"invoice_id"`
	IssuedDate    time.Time       `json:"issued_date"`
	DueDate       *time.Time      `json:"due_date"`
	ClientName    string          `json:"client_name"`
	PackageName   *string         `json:"package_name"`
	ShootLocation *string         `json:"shoot_location"`
	InvoiceAmount decimal.Decimal `json:"invoice_amount"`
	TotalPaid     decimal.Decimal `json:"total_paid"`
	Balance       decimal.Decimal `json:"balance"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
}

// ReportSource runs the read side of reporting. It exposes no mutating
// methods, so report handlers cannot write through it even by accident.
type ReportSource struct {
	db *gorm.DB
}

func NewReportSource(db *gorm.DB) ReportSource {
	return ReportSource{db: db}
}

// InvoiceRows returns one row per invoice, newest issued first, optionally
// bounded to issued dates in [from, to] (inclusive). Payments are grouped per
// invoice before the status derivation; there is no cross-invoice total.
func (s ReportSource) InvoiceRows(from, to *time.Time) ([]InvoiceReportRow, error) {
	q := s.db.Table("invoices").
		Select("invoices.id AS invoice_id, invoices.issued_date, invoices.due_date, invoices.amount AS invoice_amount, " +
			"clients.name AS client_name, packages.name AS package_name, shoots.location AS shoot_location").
		Joins("JOIN clients ON clients.id = invoices.client_id").
		Joins("LEFT JOIN packages ON packages.id = invoices.package_id").
		Joins("LEFT JOIN shoots ON shoots.id = invoices.shoot_id").
		Order("invoices.issued_date DESC, invoices.id DESC")

	if from != nil {
		q = q.Where("invoices.issued_date >= ?", *from)
	}
	if to != nil {
		q = q.Where("invoices.issued_date <= ?", *to)
	}

	var rows []InvoiceReportRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []InvoiceReportRow{}, nil
	}

	ids := make([]uint, len(rows))
	for i, r := range rows {
		ids[i] = r.InvoiceID
	}

	var payments []models.Payment
	if err := s.db.Where("invoice_id IN ?", ids).Find(&payments).Error; err != nil {
		return nil, err
	}

	paidByInvoice := make(map[uint]decimal.Decimal, len(rows))
	for _, p := range payments {
		paidByInvoice[p.InvoiceID] = paidByInvoice[p.InvoiceID].Add(p.Amount)
	}

	for i := range rows {
		paid := paidByInvoice[rows[i].InvoiceID]
		rows[i].TotalPaid = paid
		rows[i].Balance, rows[i].PaymentStatus = DeriveStatus(rows[i].InvoiceAmount, paid)
	}
	return rows, nil
}
