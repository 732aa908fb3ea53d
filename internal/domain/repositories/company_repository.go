package repositories

import (
	"context"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
)

// CompanyRepository defines the interface for company data access
type CompanyRepository interface {
	// Create inserts the company and its contacts
	Create(ctx context.Context, company *entities.Company) error

	// FindByID loads a company with its contacts in insertion order
	FindByID(ctx context.Context, id uint) (*entities.Company, error)

	// List loads every company (newest first) with its contacts
	List(ctx context.Context) ([]*entities.Company, error)

	// Update overwrites name/address and replaces the full contact set
	Update(ctx context.Context, company *entities.Company) error
}
