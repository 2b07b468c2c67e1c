package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/teampulse/teampulse-backend/internal/apperr"
	"github.com/teampulse/teampulse-backend/internal/dto"
	"github.com/teampulse/teampulse-backend/internal/models"
	"github.com/teampulse/teampulse-backend/internal/tenant"
	"gorm.io/gorm"
)

var ErrEmployeeEmailTaken = apperr.New(apperr.KindConflict, "employee email already exists in this organization")

type EmployeeService struct {
	db *gorm.DB
}

func NewEmployeeService(db *gorm.DB) *EmployeeService {
	return &EmployeeService{db: db}
}

func (s *EmployeeService) List(orgID uuid.UUID) ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.db.Scopes(tenant.ForOrg(orgID)).Order("last_name ASC, first_name ASC").Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

func (s *EmployeeService) Create(orgID uuid.UUID, req *dto.CreateEmployeeRequest) (*models.Employee, error) {
	var violations []string
	if req.Email == "" {
		violations = append(violations, "Email is required")
	}
	if req.FirstName == "" {
		violations = append(violations, "First name is required")
	}
	if req.LastName == "" {
		violations = append(violations, "Last name is required")
	}
	if err := apperr.Validation(violations); err != nil {
		return nil, err
	}

	employee := models.Employee{
		ID:                uuid.New(),
		OrganizationID:    orgID,
		Email:             req.Email,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Position:          req.Position,
		Department:        req.Department,
		HireDate:          req.HireDate,
		Phone:             req.Phone,
		ProfilePictureURL: req.ProfilePictureURL,
	}
	if err := s.db.Create(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmployeeEmailTaken
		}
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return &employee, nil
}
