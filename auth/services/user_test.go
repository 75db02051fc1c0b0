package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobinette/photopilot/errors"
	"github.com/bobinette/photopilot/inmem"
	"github.com/bobinette/photopilot/jwt"
)

func createService() *UserService {
	encoder := jwt.NewEncodeDecoder([]byte("test key"))
	return NewUserService(inmem.NewUserRepository(), encoder)
}

func TestRegisterLogin(t *testing.T) {
	service := createService()

	user, token, err := service.Register("Ana", "ana@example.com", "password123")
	require.NoError(t, err, "register should not fail")
	assert.NotEqual(t, 0, user.ID, "user should get an id")
	assert.NotEmpty(t, token, "register should give a token")
	assert.NotEqual(t, "password123", user.PasswordHash, "password should be hashed")

	logged, token, err := service.Login("ana@example.com", "password123")
	require.NoError(t, err, "login should not fail")
	assert.Equal(t, user.ID, logged.ID, "login should give back the registered user")
	assert.NotEmpty(t, token, "login should give a token")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	service := createService()

	_, _, err := service.Register("Ana", "ana@example.com", "password123")
	require.NoError(t, err, "first register should not fail")

	_, _, err = service.Register("Other Ana", "ana@example.com", "hunter2")
	require.Error(t, err, "registering the same email twice should fail")
	errors.AssertCode(t, err, http.StatusBadRequest)
}

func TestLogin_WrongCredentials(t *testing.T) {
	service := createService()

	_, _, err := service.Register("Ana", "ana@example.com", "password123")
	require.NoError(t, err, "register should not fail")

	_, _, err = service.Login("ana@example.com", "not the password")
	require.Error(t, err, "wrong password should fail")
	errors.AssertCode(t, err, http.StatusUnauthorized)

	_, _, err = service.Login("nobody@example.com", "password123")
	require.Error(t, err, "unknown email should fail")
	errors.AssertCode(t, err, http.StatusUnauthorized)
}

func TestProfile_UnknownUser(t *testing.T) {
	service := createService()

	// A valid token for a vanished user resolves to 401, not 500.
	_, err := service.Profile(42)
	require.Error(t, err, "profile of a missing user should fail")
	errors.AssertCode(t, err, http.StatusUnauthorized)
}
