package service

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"cartly-be/internal/apperrors"
	"cartly-be/internal/entities"
	"cartly-be/internal/jwt"
	"cartly-be/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[string]*entities.User // keyed by email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entities.User{}}
}

func (f *fakeUserRepo) Create(email, passwordHash string) (*entities.User, error) {
	if _, exists := f.users[email]; exists {
		return nil, apperrors.Conflict("email already registered")
	}
	user := &entities.User{
		ID:           "id-" + email,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	f.users[email] = user
	return user, nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*entities.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, apperrors.NotFound("user not found")
	}
	return user, nil
}

func (f *fakeUserRepo) FindByID(id string) (*entities.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, apperrors.NotFound("user not found")
}

func newAuthServiceForTest() (AuthService, *fakeUserRepo, *jwt.JWTService) {
	repo := newFakeUserRepo()
	jwtService := jwt.NewJWTService("test-secret", time.Hour)
	return NewAuthService(repo, jwtService), repo, jwtService
}

func TestSignupStoresHashAndReturnsToken(t *testing.T) {
	svc, repo, jwtService := newAuthServiceForTest()

	resp, err := svc.Signup(&models.SignupRequest{Email: "Ana@Example.com", Password: "hunter22"})

	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", resp.User.Email, "email is lowercased")

	stored := repo.users["ana@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "hunter22", stored.PasswordHash, "plaintext must never be stored")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter22")))

	userID, err := jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, userID)
}

func TestSignupDuplicateEmailCaseInsensitive(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	_, err := svc.Signup(&models.SignupRequest{Email: "ana@example.com", Password: "hunter22"})
	require.NoError(t, err)

	_, err = svc.Signup(&models.SignupRequest{Email: "ANA@EXAMPLE.COM", Password: "other-pass"})
	require.Error(t, err)
	var conflict *apperrors.ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestLoginSuccess(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	_, err := svc.Signup(&models.SignupRequest{Email: "ana@example.com", Password: "hunter22"})
	require.NoError(t, err)

	resp, err := svc.Login(&models.LoginRequest{Email: "ana@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ana@example.com", resp.User.Email)
}

func TestLoginUniformErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	_, err := svc.Signup(&models.SignupRequest{Email: "ana@example.com", Password: "hunter22"})
	require.NoError(t, err)

	_, unknownErr := svc.Login(&models.LoginRequest{Email: "bob@example.com", Password: "hunter22"})
	_, wrongPassErr := svc.Login(&models.LoginRequest{Email: "ana@example.com", Password: "wrong"})

	require.Error(t, unknownErr)
	require.Error(t, wrongPassErr)

	var authErr1 *apperrors.AuthError
	var authErr2 *apperrors.AuthError
	require.ErrorAs(t, unknownErr, &authErr1)
	require.ErrorAs(t, wrongPassErr, &authErr2)
	assert.Equal(t, authErr1.Message, authErr2.Message, "no information leak distinguishing the two")
}

func TestProfile(t *testing.T) {
	svc, repo, _ := newAuthServiceForTest()

	signup, err := svc.Signup(&models.SignupRequest{Email: "ana@example.com", Password: "hunter22"})
	require.NoError(t, err)

	profile, err := svc.Profile(signup.User.ID)
	require.NoError(t, err)
	assert.Equal(t, repo.users["ana@example.com"].ID, profile.ID)
	assert.Equal(t, "ana@example.com", profile.Email)
}
