package dto

import "github.com/google/uuid"

type SignupRequest struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Password         string `json:"password"`
	OrganizationName string `json:"organizationName"`
	Subdomain        string `json:"subdomain"`
	Role             string `json:"role,omitempty"`
}

type LoginRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	SubDomain string `json:"subDomain,omitempty"`
}

type OrganizationResponse struct {
	Name      string `json:"name"`
	Subdomain string `json:"subdomain"`
}

// UserResponse is the public profile. The password hash never appears here.
type UserResponse struct {
	ID           uuid.UUID             `json:"id"`
	FirstName    string                `json:"firstName"`
	LastName     string                `json:"lastName"`
	Email        string                `json:"email"`
	Phone        string                `json:"phone"`
	Organization *OrganizationResponse `json:"organization,omitempty"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type SignupResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

type ErrorResponse struct {
	Error    bool     `json:"error"`
	Message  string   `json:"message"`
	Messages []string `json:"messages,omitempty"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
