package services_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/teampulse/teampulse-backend/internal/apperr"
	"github.com/teampulse/teampulse-backend/internal/dto"
	"github.com/teampulse/teampulse-backend/internal/models"
	"github.com/teampulse/teampulse-backend/internal/services"
)

func validSignup() *dto.SignupRequest {
	return &dto.SignupRequest{
		FirstName:        "Ann",
		LastName:         "Lee",
		Email:            "ann@x.com",
		Phone:            "1234567890",
		Password:         "secretpw",
		OrganizationName: "Acme Inc",
		Subdomain:        "acme",
	}
}

func TestSignupCreatesAllRows(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewAuthService(db, testConfig())

	profile, err := svc.Signup(validSignup())
	require.NoError(t, err)

	require.Equal(t, "Ann", profile.FirstName)
	require.Equal(t, "ann@x.com", profile.Email)
	require.NotNil(t, profile.Organization)
	require.Equal(t, "acme", profile.Organization.Subdomain)

	var users, orgs, memberships, bindings, roles int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Organization{}).Count(&orgs)
	db.Model(&models.OrganizationUser{}).Count(&memberships)
	db.Model(&models.OrgUserRole{}).Count(&bindings)
	db.Model(&models.Role{}).Count(&roles)
	require.EqualValues(t, 1, users)
	require.EqualValues(t, 1, orgs)
	require.EqualValues(t, 1, memberships)
	require.EqualValues(t, 1, bindings)
	require.EqualValues(t, 1, roles)

	var settings models.OrganizationSettings
	require.NoError(t, db.First(&settings).Error)
	require.Equal(t, "UTC", settings.Timezone)
	require.False(t, settings.AllowGuests)

	// The stored password is a hash, never the plaintext
	var user models.User
	require.NoError(t, db.First(&user).Error)
	require.NotEqual(t, "secretpw", user.Password)
	require.NotEmpty(t, user.Password)
}

func TestSignupNormalizesSubdomain(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewAuthService(db, testConfig())

	req := validSignup()
	req.Subdomain = "  ACME  "
	profile, err := svc.Signup(req)
	require.NoError(t, err)
	require.Equal(t, "acme", profile.Organization.Subdomain)
}

func TestSignupDuplicateFailsAndPersistsNothing(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewAuthService(db, testConfig())

	_, err := svc.Signup(validSignup())
	require.NoError(t, err)

	// Verbatim repeat: email, phone, and subdomain all collide
	_, err = svc.Signup(validSignup())
	require.Error(t, err)
	require.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	// Same subdomain, fresh identity
	req := validSignup()
	req.Email = "other@x.com"
	req.Phone = "0987654321"
	_, err = svc.Signup(req)
	require.Error(t, err)
	require.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	// Same phone only
	req = validSignup()
	req.Email = "third@x.com"
	req.Subdomain = "other"
	_, err = svc.Signup(req)
	require.Error(t, err)
	require.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	var users, orgs int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Organization{}).Count(&orgs)
	require.EqualValues(t, 1, users)
	require.EqualValues(t, 1, orgs)
}

func TestSignupConstraintRaceNamesTheRightConflict(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewAuthService(db, testConfig())

	_, err := svc.Signup(validSignup())
	require.NoError(t, err)

	// Soft-deleted rows slip past the pre-checks but still hold their
	// unique index entries, which is exactly the race window the
	// transaction fallback covers.
	require.NoError(t, db.Delete(&models.Organization{}, "subdomain = ?", "acme").Error)
	req := validSignup()
	req.Email = "other@x.com"
	req.Phone = "0987654321"
	_, err = svc.Signup(req)
	require.ErrorIs(t, err, services.ErrSubdomainTaken)

	require.NoError(t, db.Delete(&models.User{}, "email = ?", "ann@x.com").Error)
	req = validSignup()
	req.Subdomain = "globex"
	_, err = svc.Signup(req)
	require.ErrorIs(t, err, services.ErrEmailOrPhoneTaken)
}

func TestSignupValidationListsEveryViolation(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewAuthService(db, testConfig())

	_, err := svc.Signup(&dto.SignupRequest{
		FirstName:        "A",
		LastName:         "B",
		Email:            "not-an-email",
		Phone:            "123",
		Password:         "short",
		OrganizationName: "ab",
		Subdomain:        "ab",
	})
	require.Error(t, err)

	var v *apperr.ValidationError
	require.ErrorAs(t, err, &v)
	require.Len(t, v.Violations, 7)

	var users int64
	db.Model(&models.User{}).Count(&users)
	require.EqualValues(t, 0, users)
}

func TestLoginRoundTrip(t *testing.T) {
	db := openTestDB(t)
	cfg := testConfig()
	svc := services.NewAuthService(db, cfg)

	_, err := svc.Signup(validSignup())
	require.NoError(t, err)

	resp, err := svc.Login(&dto.LoginRequest{
		Email:     "ann@x.com",
		Password:  "secretpw",
		SubDomain: "acme",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "ann@x.com", resp.User.Email)
	require.Equal(t, "acme", resp.User.Organization.Subdomain)

	// Verify the claims the gate will rely on
	parsed, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	require.Equal(t, resp.User.ID.String(), claims["sub"])
	require.NotEmpty(t, claims["org_id"])
	require.NotEmpty(t, claims["role_id"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), exp.Time, 10*time.Second)
}

func TestLoginWrongPassword(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewAuthService(db, testConfig())

	_, err := svc.Signup(validSignup())
	require.NoError(t, err)

	_, err = svc.Login(&dto.LoginRequest{Email: "ann@x.com", Password: "wrongpass", SubDomain: "acme"})
	require.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, err = svc.Login(&dto.LoginRequest{Email: "ghost@x.com", Password: "secretpw", SubDomain: "acme"})
	require.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestLoginScopedToSubdomain(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewAuthService(db, testConfig())

	_, err := svc.Signup(validSignup())
	require.NoError(t, err)

	// A tenant the user does not belong to reads as bad credentials,
	// indistinguishable from a wrong password.
	other := validSignup()
	other.Email = "bob@y.com"
	other.Phone = "5551234567"
	other.Subdomain = "globex"
	other.OrganizationName = "Globex"
	_, err = svc.Signup(other)
	require.NoError(t, err)

	_, err = svc.Login(&dto.LoginRequest{Email: "ann@x.com", Password: "secretpw", SubDomain: "globex"})
	require.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestLoginPicksEarliestMembershipWithoutSubdomain(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewAuthService(db, testConfig())

	profile, err := svc.Signup(validSignup())
	require.NoError(t, err)

	// Add a second, later membership in another organization by hand
	// (the invite flow is out of scope).
	var role models.Role
	require.NoError(t, db.First(&role).Error)
	org2 := models.Organization{ID: uuid.New(), Name: "Globex", Subdomain: "globex"}
	require.NoError(t, db.Create(&org2).Error)
	membership2 := models.OrganizationUser{
		ID:             uuid.New(),
		OrganizationID: org2.ID,
		UserID:         profile.ID,
		CreatedAt:      time.Now().Add(time.Hour),
	}
	require.NoError(t, db.Create(&membership2).Error)
	require.NoError(t, db.Create(&models.OrgUserRole{
		ID:                 uuid.New(),
		OrganizationUserID: membership2.ID,
		RoleID:             role.ID,
	}).Error)

	resp, err := svc.Login(&dto.LoginRequest{Email: "ann@x.com", Password: "secretpw"})
	require.NoError(t, err)
	require.Equal(t, "acme", resp.User.Organization.Subdomain)

	// Deterministic: the same login resolves the same tenant again
	resp2, err := svc.Login(&dto.LoginRequest{Email: "ann@x.com", Password: "secretpw"})
	require.NoError(t, err)
	require.Equal(t, resp.User.Organization.Subdomain, resp2.User.Organization.Subdomain)
}
