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

var ErrProjectNotFound = apperr.New(apperr.KindNotFound, "project not found")

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

func (s *ProjectService) List(orgID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.Scopes(tenant.ForOrg(orgID)).Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (s *ProjectService) Get(orgID, projectID uuid.UUID) (*models.Project, error) {
	var project models.Project
	if err := s.db.Scopes(tenant.ForOrg(orgID)).First(&project, "id = ?", projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	return &project, nil
}

func (s *ProjectService) Create(orgID uuid.UUID, req *dto.CreateProjectRequest) (*models.Project, error) {
	if req.Name == "" {
		return nil, apperr.Validation([]string{"Project name is required"})
	}

	project := models.Project{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Name:           req.Name,
		Description:    req.Description,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
	}
	if err := s.db.Create(&project).Error; err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return &project, nil
}
