package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-scheduler/internal/adapter/dto/common"
	companyDTO "github.com/johnquangdev/meeting-scheduler/internal/adapter/dto/company"
	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
	"github.com/johnquangdev/meeting-scheduler/internal/usecase/company"
)

// Company handles company and contact requests
type Company struct {
	companyService company.Service
}

// NewCompany creates a new company handler
func NewCompany(companyService company.Service) *Company {
	return &Company{companyService: companyService}
}

func toCompanyInput(req companyDTO.CompanyRequest) company.Input {
	in := company.Input{
		Name:     req.Name,
		Address:  req.Address,
		Contacts: make([]company.ContactInput, 0, len(req.Contacts)),
	}
	for _, ct := range req.Contacts {
		in.Contacts = append(in.Contacts, company.ContactInput{
			Name:        ct.Name,
			Designation: ct.Designation,
			Phone:       ct.Phone,
			Email:       ct.Email,
		})
	}
	return in
}

// List godoc
// @Summary      List companies
// @Description  Newest first, each with its contacts
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entities.Company
// @Failure      500  {object}  common.ErrorResponse
// @Router       /api/companies [get]
func (h *Company) List(c echo.Context) error {
	companies, err := h.companyService.List(c.Request().Context())
	if err != nil {
		return toAppError(err, "Failed to fetch companies")
	}
	if companies == nil {
		companies = []*entities.Company{}
	}
	return c.JSON(http.StatusOK, companies)
}

// Get godoc
// @Summary      Get a company
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Company ID"
// @Success      200  {object}  entities.Company
// @Failure      404  {object}  common.ErrorResponse
// @Router       /api/companies/{id} [get]
func (h *Company) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	found, err := h.companyService.Get(c.Request().Context(), id)
	if err != nil {
		return toAppError(err, "Failed to fetch company")
	}
	return c.JSON(http.StatusOK, found)
}

// Create godoc
// @Summary      Add a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      companyDTO.CompanyRequest  true  "Company"
// @Success      200   {object}  common.CreatedResponse
// @Failure      400   {object}  common.ErrorResponse
// @Router       /api/companies [post]
func (h *Company) Create(c echo.Context) error {
	var req companyDTO.CompanyRequest
	if err := bindAndValidate(c, &req, "Company name required"); err != nil {
		return err
	}

	created, err := h.companyService.Create(c.Request().Context(), toCompanyInput(req))
	if err != nil {
		return toAppError(err, "Failed to add company")
	}

	message := "Company added"
	if len(created.Contacts) > 0 {
		message = "Company added with contacts"
	}
	return c.JSON(http.StatusOK, common.CreatedResponse{Message: message, ID: created.ID})
}

// Update godoc
// @Summary      Update a company
// @Description  Overwrites name and address and replaces the whole contact list
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                        true  "Company ID"
// @Param        body  body      companyDTO.CompanyRequest  true  "Company"
// @Success      200   {object}  common.MessageResponse
// @Failure      404   {object}  common.ErrorResponse
// @Router       /api/companies/{id} [put]
func (h *Company) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req companyDTO.CompanyRequest
	if err := bindAndValidate(c, &req, "Company name required"); err != nil {
		return err
	}

	updated, err := h.companyService.Update(c.Request().Context(), id, toCompanyInput(req))
	if err != nil {
		return toAppError(err, "Failed to update company")
	}

	message := "Company updated (no contacts)"
	if len(updated.Contacts) > 0 {
		message = "Company and contacts updated"
	}
	return c.JSON(http.StatusOK, common.MessageResponse{Message: message})
}
