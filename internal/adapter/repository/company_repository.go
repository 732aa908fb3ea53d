package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
	"github.com/johnquangdev/meeting-scheduler/internal/domain/repositories"
)

// companyRepository implements the CompanyRepository interface
type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) repositories.CompanyRepository {
	return &companyRepository{db: db}
}

func orderContacts(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

// Create inserts the company and then its contacts in one transaction
func (r *companyRepository) Create(ctx context.Context, company *entities.Company) error {
	contacts := company.Contacts
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(company).Error; err != nil {
			return fmt.Errorf("failed to create company: %w", err)
		}
		if len(contacts) == 0 {
			return nil
		}
		contacts = entities.AttachContacts(company.ID, contacts)
		if err := tx.Create(&contacts).Error; err != nil {
			return fmt.Errorf("failed to create company contacts: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	company.Contacts = contacts
	return nil
}

// FindByID retrieves a company with its contacts
func (r *companyRepository) FindByID(ctx context.Context, id uint) (*entities.Company, error) {
	var company entities.Company
	err := r.db.WithContext(ctx).
		Preload("Contacts", orderContacts).
		Where("id = ?", id).
		First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}
	return &company, nil
}

// List retrieves all companies with their contacts
func (r *companyRepository) List(ctx context.Context) ([]*entities.Company, error) {
	var companies []*entities.Company
	err := r.db.WithContext(ctx).
		Preload("Contacts", orderContacts).
		Order("id DESC").
		Find(&companies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

// Update overwrites the company fields and swaps the whole contact set
func (r *companyRepository) Update(ctx context.Context, company *entities.Company) error {
	contacts := entities.AttachContacts(company.ID, company.Contacts)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.Company{}).
			Where("id = ?", company.ID).
			Updates(map[string]interface{}{
				"name":    company.Name,
				"address": company.Address,
			})
		if res.Error != nil {
			return fmt.Errorf("failed to update company: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return entities.ErrCompanyNotFound
		}

		if err := tx.Where("company_id = ?", company.ID).Delete(&entities.CompanyContact{}).Error; err != nil {
			return fmt.Errorf("failed to remove company contacts: %w", err)
		}
		if len(contacts) == 0 {
			return nil
		}
		if err := tx.Create(&contacts).Error; err != nil {
			return fmt.Errorf("failed to create company contacts: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	company.Contacts = contacts
	return nil
}
