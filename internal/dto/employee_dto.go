package dto

import "time"

type CreateEmployeeRequest struct {
	Email             string     `json:"email"`
	FirstName         string     `json:"firstName"`
	LastName          string     `json:"lastName"`
	Position          string     `json:"position,omitempty"`
	Department        string     `json:"department,omitempty"`
	HireDate          *time.Time `json:"hireDate,omitempty"`
	Phone             string     `json:"phone,omitempty"`
	ProfilePictureURL string     `json:"profilePictureUrl,omitempty"`
}
