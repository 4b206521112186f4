package models

import "time"

type Invoice struct {
	BaseModel
	UserID        string       `gorm:"not null;index" json:"userId"`
	QuoteID       *string      `gorm:"index" json:"quoteId"`
	InvoiceNumber string       `gorm:"not null" json:"invoiceNumber"`
	Amount        float64      `gorm:"type:decimal(10,2);not null" json:"amount"`
	Status        RecordStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	DueDate       *time.Time   `json:"dueDate"`
	PaidAt        *time.Time   `json:"paidAt"`
}
