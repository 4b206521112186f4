package services

import (
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/models"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/repositories"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/pkg/apperrors"
)

// InvoiceService only reads: invoices are produced by the back office,
// the mobile client just lists them.
type InvoiceService interface {
	GetUserInvoices(userID string) ([]models.Invoice, error)
}

type InvoiceServiceImpl struct {
	invoiceRepo repositories.InvoiceRepository
}

func NewInvoiceService(invoiceRepo repositories.InvoiceRepository) InvoiceService {
	return &InvoiceServiceImpl{invoiceRepo: invoiceRepo}
}

func (s *InvoiceServiceImpl) GetUserInvoices(userID string) ([]models.Invoice, error) {
	invoices, err := s.invoiceRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return invoices, nil
}
