package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/teampulse/teampulse-backend/internal/apperr"
	"github.com/teampulse/teampulse-backend/internal/dto"
	"github.com/teampulse/teampulse-backend/internal/models"
	"github.com/teampulse/teampulse-backend/internal/tenant"
	"gorm.io/gorm"
)

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{db: db}
}

// List resolves the product owner and project manager display names in one
// pass instead of a query per team.
func (s *TeamService) List(orgID uuid.UUID) ([]dto.TeamResponse, error) {
	var teams []models.Team
	if err := s.db.Scopes(tenant.ForOrg(orgID)).Order("created_at ASC").Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	userIDs := make([]uuid.UUID, 0, len(teams)*2)
	for _, t := range teams {
		if t.ProductOwnerUserID != nil {
			userIDs = append(userIDs, *t.ProductOwnerUserID)
		}
		if t.ProjectManagerUserID != nil {
			userIDs = append(userIDs, *t.ProjectManagerUserID)
		}
	}

	names := make(map[uuid.UUID]string, len(userIDs))
	if len(userIDs) > 0 {
		var users []models.User
		if err := s.db.Where("id IN ?", userIDs).Find(&users).Error; err != nil {
			return nil, fmt.Errorf("failed to resolve team member names: %w", err)
		}
		for _, u := range users {
			names[u.ID] = u.FirstName + " " + u.LastName
		}
	}

	out := make([]dto.TeamResponse, 0, len(teams))
	for _, t := range teams {
		resp := dto.TeamResponse{ID: t.ID.String(), Name: t.Name}
		if t.ProductOwnerUserID != nil {
			resp.ProductOwnerUserID = t.ProductOwnerUserID.String()
			resp.ProductOwnerUsername = names[*t.ProductOwnerUserID]
		}
		if t.ProjectManagerUserID != nil {
			resp.ProjectManagerUserID = t.ProjectManagerUserID.String()
			resp.ProjectManagerUsername = names[*t.ProjectManagerUserID]
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *TeamService) Create(orgID uuid.UUID, req *dto.CreateTeamRequest) (*models.Team, error) {
	if req.Name == "" {
		return nil, apperr.Validation([]string{"Team name is required"})
	}

	team := models.Team{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Name:           req.Name,
	}
	if req.ProductOwnerUserID != "" {
		id, err := uuid.Parse(req.ProductOwnerUserID)
		if err != nil {
			return nil, apperr.Validation([]string{"Valid productOwnerUserId is required"})
		}
		team.ProductOwnerUserID = &id
	}
	if req.ProjectManagerUserID != "" {
		id, err := uuid.Parse(req.ProjectManagerUserID)
		if err != nil {
			return nil, apperr.Validation([]string{"Valid projectManagerUserId is required"})
		}
		team.ProjectManagerUserID = &id
	}

	if err := s.db.Create(&team).Error; err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return &team, nil
}
