package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glen-sharp/emission-calculator-app/internal/domain"
	"github.com/glen-sharp/emission-calculator-app/internal/pkg/constants"
	"github.com/glen-sharp/emission-calculator-app/internal/pkg/store/memory"
	"github.com/glen-sharp/emission-calculator-app/internal/pkg/utils"
)

func signupRequest() *domain.SignupRequest {
	return &domain.SignupRequest{
		Email:     "jo@example.com",
		Password:  "correct horse",
		FirstName: "Jo",
		LastName:  "Bloggs",
	}
}

func TestSignupAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.NewStore())

	user, token, err := svc.Signup(ctx, signupRequest())
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotZero(t, user.ID)
	assert.NotEmpty(t, token)

	parsed, err := utils.ParseAuthToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, parsed.UserID)

	loggedIn, token, err := svc.Login(ctx, &domain.LoginRequest{Email: "jo@example.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.NotEmpty(t, token)
}

func TestSignupDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.NewStore())

	_, _, err := svc.Signup(ctx, signupRequest())
	require.NoError(t, err)

	_, _, err = svc.Signup(ctx, signupRequest())
	assert.ErrorIs(t, err, constants.ErrEmailAlreadyTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.NewStore())

	_, _, err := svc.Signup(ctx, signupRequest())
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, &domain.LoginRequest{Email: "jo@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, constants.ErrWrongPassword)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := NewService(memory.NewStore())

	_, _, err := svc.Login(context.Background(), &domain.LoginRequest{Email: "nobody@example.com", Password: "x"})
	assert.ErrorIs(t, err, constants.ErrDBNotFound)
}

func TestParseAuthTokenRejectsGarbage(t *testing.T) {
	_, err := utils.ParseAuthToken("not-a-token")
	assert.ErrorIs(t, err, constants.ErrUnauthorized)
}
