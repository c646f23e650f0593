package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/glen-sharp/emission-calculator-app/internal/domain"
	"github.com/glen-sharp/emission-calculator-app/internal/pkg/constants"
	"github.com/glen-sharp/emission-calculator-app/internal/pkg/logger"
	"github.com/glen-sharp/emission-calculator-app/internal/pkg/store"
	"github.com/glen-sharp/emission-calculator-app/internal/pkg/utils"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

func (svc *Service) Signup(ctx context.Context, request *domain.SignupRequest) (*domain.User, string, error) {
	if _, err := svc.store.GetUserByEmail(ctx, request.Email); !errors.Is(err, constants.ErrDBNotFound) {
		if err == nil {
			return nil, "", constants.ErrEmailAlreadyTaken
		}
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("bcrypt.GenerateFromPassword: %w", err)
	}

	user := &domain.User{
		Email:        request.Email,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		PasswordHash: string(hash),
	}

	if err := svc.store.CreateUser(ctx, user); err != nil {
		logger.Errorf(ctx, "store.CreateUser: %s", err.Error())
		return nil, "", fmt.Errorf("store.CreateUser: %w", err)
	}

	authToken, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{UserID: user.ID})
	if err != nil {
		return nil, "", err
	}

	return user, authToken, nil
}

func (svc *Service) Login(ctx context.Context, request *domain.LoginRequest) (*domain.User, string, error) {
	user, err := svc.store.GetUserByEmail(ctx, request.Email)
	if err != nil {
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)); err != nil {
		return nil, "", constants.ErrWrongPassword
	}

	logger.Debugf(ctx, "login: userID: [%v]", user.ID)

	authToken, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{UserID: user.ID})
	if err != nil {
		return nil, "", err
	}

	return user, authToken, nil
}
