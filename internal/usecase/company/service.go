package company

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
	"github.com/johnquangdev/meeting-scheduler/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/meeting-scheduler/internal/usecase/errors"
)

// Service defines the interface for the company use case
type Service interface {
	// List returns every company with its contacts, newest first
	List(ctx context.Context) ([]*entities.Company, error)

	// Get returns one company with its contacts
	Get(ctx context.Context, id uint) (*entities.Company, error)

	// Create adds a company and its contacts
	Create(ctx context.Context, input Input) (*entities.Company, error)

	// Update overwrites a company and replaces its whole contact list
	Update(ctx context.Context, id uint, input Input) (*entities.Company, error)
}

// ContactInput is one contact row as submitted by the client
type ContactInput struct {
	Name        string
	Designation string
	Phone       string
	Email       string
}

// Input represents the writable fields of a company
type Input struct {
	Name     string
	Address  string
	Contacts []ContactInput
}

func (in Input) toEntity(id uint) (*entities.Company, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, usecaseErrors.ErrCompanyNameRequired
	}

	contacts := make([]entities.CompanyContact, 0, len(in.Contacts))
	for _, c := range in.Contacts {
		contacts = append(contacts, entities.CompanyContact{
			Name:        c.Name,
			Designation: c.Designation,
			Phone:       c.Phone,
			Email:       c.Email,
		})
	}

	return &entities.Company{
		ID:       id,
		Name:     name,
		Address:  in.Address,
		Contacts: entities.AttachContacts(id, contacts),
	}, nil
}

// CompanyService handles company business logic
type CompanyService struct {
	companyRepo repositories.CompanyRepository
	logger      *zap.Logger
}

var _ Service = (*CompanyService)(nil)

// NewCompanyService creates a new company service
func NewCompanyService(companyRepo repositories.CompanyRepository, logger *zap.Logger) *CompanyService {
	return &CompanyService{companyRepo: companyRepo, logger: logger}
}

func (s *CompanyService) List(ctx context.Context) ([]*entities.Company, error) {
	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	for _, c := range companies {
		if c.Contacts == nil {
			c.Contacts = []entities.CompanyContact{}
		}
	}
	return companies, nil
}

func (s *CompanyService) Get(ctx context.Context, id uint) (*entities.Company, error) {
	company, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrCompanyNotFound) {
			return nil, usecaseErrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	if company.Contacts == nil {
		company.Contacts = []entities.CompanyContact{}
	}
	return company, nil
}

func (s *CompanyService) Create(ctx context.Context, input Input) (*entities.Company, error) {
	company, err := input.toEntity(0)
	if err != nil {
		return nil, err
	}

	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to add company: %w", err)
	}

	s.logger.Info("company added", zap.Uint("company_id", company.ID), zap.Int("contacts", len(company.Contacts)))
	return company, nil
}

func (s *CompanyService) Update(ctx context.Context, id uint, input Input) (*entities.Company, error) {
	company, err := input.toEntity(id)
	if err != nil {
		return nil, err
	}

	if err := s.companyRepo.Update(ctx, company); err != nil {
		if errors.Is(err, entities.ErrCompanyNotFound) {
			return nil, usecaseErrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	s.logger.Info("company updated", zap.Uint("company_id", id), zap.Int("contacts", len(company.Contacts)))
	return company, nil
}
