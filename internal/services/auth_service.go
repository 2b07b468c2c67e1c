package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/teampulse/teampulse-backend/internal/apperr"
	"github.com/teampulse/teampulse-backend/internal/config"
	"github.com/teampulse/teampulse-backend/internal/dto"
	"github.com/teampulse/teampulse-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Login failures are deliberately indistinguishable: unknown email, wrong
// password, and missing tenant membership all produce this error.
var ErrInvalidCredentials = apperr.New(apperr.KindInvalidCredentials, "invalid email or password")

var (
	ErrEmailOrPhoneTaken = apperr.New(apperr.KindConflict, "email or phone already in use")
	ErrSubdomainTaken    = apperr.New(apperr.KindConflict, "subdomain is already in use")
	ErrSignupConflict    = apperr.New(apperr.KindConflict, "signup conflicts with a concurrent request, please retry")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// Signup creates the founding User, the Organization with its settings,
// the membership, and the role binding in one transaction. Nothing is
// persisted when any step fails.
func (s *AuthService) Signup(req *dto.SignupRequest) (*dto.UserResponse, error) {
	req.Subdomain = strings.ToLower(strings.TrimSpace(req.Subdomain))

	if err := validateSignup(req); err != nil {
		return nil, err
	}

	var existing models.User
	err := s.db.Where("email = ? OR phone = ?", req.Email, req.Phone).First(&existing).Error
	if err == nil {
		return nil, ErrEmailOrPhoneTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	var existingOrg models.Organization
	err = s.db.Where("subdomain = ?", req.Subdomain).First(&existingOrg).Error
	if err == nil {
		return nil, ErrSubdomainTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing organization: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	roleName := req.Role
	if roleName == "" {
		roleName = models.DefaultRoleName
	}

	org := models.Organization{
		ID:        uuid.New(),
		Name:      req.OrganizationName,
		Subdomain: req.Subdomain,
	}
	user := models.User{
		ID:        uuid.New(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  string(hash),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var role models.Role
		if err := tx.Where("name = ?", roleName).First(&role).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			role = models.Role{ID: uuid.New(), Name: roleName}
			if err := tx.Create(&role).Error; err != nil {
				// Losing the lazy-creation race aborts this transaction;
				// the caller retries against the now-existing role row.
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return ErrSignupConflict
				}
				return err
			}
		}

		if err := tx.Create(&org).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrSubdomainTaken
			}
			return err
		}
		settings := models.OrganizationSettings{
			ID:             uuid.New(),
			OrganizationID: org.ID,
			Timezone:       "UTC",
			AllowGuests:    false,
		}
		if err := tx.Create(&settings).Error; err != nil {
			return err
		}
		if err := tx.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrEmailOrPhoneTaken
			}
			return err
		}

		membership := models.OrganizationUser{
			ID:             uuid.New(),
			OrganizationID: org.ID,
			UserID:         user.ID,
		}
		if err := tx.Create(&membership).Error; err != nil {
			return err
		}

		binding := models.OrgUserRole{
			ID:                 uuid.New(),
			OrganizationUserID: membership.ID,
			RoleID:             role.ID,
		}
		return tx.Create(&binding).Error
	})
	if err != nil {
		// The pre-checks are racy; the unique constraints are the final
		// arbiter and each one maps to its own conflict above.
		if apperr.KindOf(err) == apperr.KindConflict {
			return nil, err
		}
		return nil, fmt.Errorf("signup transaction failed: %w", err)
	}

	return &dto.UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Phone:     user.Phone,
		Organization: &dto.OrganizationResponse{
			Name:      org.Name,
			Subdomain: org.Subdomain,
		},
	}, nil
}

// Login verifies credentials scoped to the organization selected by
// subdomain and issues a signed bearer token.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	var violations []string
	if !emailPattern.MatchString(req.Email) {
		violations = append(violations, "Invalid email format")
	}
	if req.Password == "" {
		violations = append(violations, "Password is required")
	}
	if err := apperr.Validation(violations); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	membership, err := s.resolveMembership(user.ID, strings.ToLower(strings.TrimSpace(req.SubDomain)))
	if err != nil {
		return nil, err
	}

	// A membership with no role binding never yields a usable token.
	if len(membership.Roles) == 0 {
		return nil, ErrInvalidCredentials
	}
	roleID := membership.Roles[0].RoleID

	token, err := s.signToken(user.ID, membership.OrganizationID, roleID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			Phone:     user.Phone,
			Organization: &dto.OrganizationResponse{
				Name:      membership.Organization.Name,
				Subdomain: membership.Organization.Subdomain,
			},
		},
	}, nil
}

// resolveMembership picks the membership deterministically: scoped to the
// subdomain when one is supplied, otherwise the earliest-created
// membership wins. Role bindings are ordered the same way.
func (s *AuthService) resolveMembership(userID uuid.UUID, subdomain string) (*models.OrganizationUser, error) {
	q := s.db.
		Preload("Organization").
		Preload("Roles", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Joins("JOIN organizations ON organizations.id = organization_users.organization_id AND organizations.deleted_at IS NULL").
		Where("organization_users.user_id = ?", userID).
		Order("organization_users.created_at ASC, organization_users.id ASC")

	if subdomain != "" {
		q = q.Where("organizations.subdomain = ?", subdomain)
	}

	var memberships []models.OrganizationUser
	if err := q.Find(&memberships).Error; err != nil {
		return nil, fmt.Errorf("failed to load memberships: %w", err)
	}
	if len(memberships) == 0 {
		return nil, ErrInvalidCredentials
	}
	return &memberships[0], nil
}

func (s *AuthService) signToken(userID, orgID, roleID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     userID.String(),
		"org_id":  orgID.String(),
		"role_id": roleID.String(),
		"iat":     now.Unix(),
		"exp":     now.Add(s.cfg.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func validateSignup(req *dto.SignupRequest) error {
	var violations []string
	if len(req.FirstName) < 2 {
		violations = append(violations, "First name must be at least 2 characters")
	}
	if len(req.LastName) < 2 {
		violations = append(violations, "Last name must be at least 2 characters")
	}
	if !emailPattern.MatchString(req.Email) {
		violations = append(violations, "Invalid email format")
	}
	if digitCount(req.Phone) < 10 {
		violations = append(violations, "Phone number must be at least 10 digits")
	}
	if len(req.Password) < 8 {
		violations = append(violations, "Password must be at least 8 characters")
	}
	if len(req.OrganizationName) < 3 {
		violations = append(violations, "Organization name must be at least 3 characters")
	}
	if len(req.Subdomain) < 3 {
		violations = append(violations, "Subdomain must be at least 3 characters")
	}
	return apperr.Validation(violations)
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
