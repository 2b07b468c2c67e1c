package dto

import "time"

type CreateProjectRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
}

type CreateTeamRequest struct {
	Name                 string `json:"name"`
	ProductOwnerUserID   string `json:"productOwnerUserId,omitempty"`
	ProjectManagerUserID string `json:"projectManagerUserId,omitempty"`
}

// TeamResponse carries the owner and manager display names resolved from
// the user table, matching what the board UI renders.
type TeamResponse struct {
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	ProductOwnerUserID     string `json:"productOwnerUserId,omitempty"`
	ProjectManagerUserID   string `json:"projectManagerUserId,omitempty"`
	ProductOwnerUsername   string `json:"productOwnerUsername,omitempty"`
	ProjectManagerUsername string `json:"projectManagerUsername,omitempty"`
}
