package service

import (
	"context"
	"errors"
	"time"

	"github.com/dukamart/storefront/internal/auth"
	"github.com/dukamart/storefront/internal/constants"
	"github.com/dukamart/storefront/internal/model"
	"github.com/dukamart/storefront/internal/repository"
	"go.uber.org/zap"
)

type UserService interface {
	Signup(ctx context.Context, cmd SignupCommand) (AuthResult, error)
	Login(ctx context.Context, cmd LoginCommand) (AuthResult, error)
	GetUser(ctx context.Context, userID int64) (*model.User, error)
}

type user struct {
	repo   repository.UserRepository
	tokens *auth.TokenManager
	logger *zap.Logger
}

func NewUserService(repo repository.UserRepository, tokens *auth.TokenManager, logger *zap.Logger) UserService {
	return &user{repo: repo, tokens: tokens, logger: logger}
}

func (u *user) Signup(ctx context.Context, cmd SignupCommand) (AuthResult, error) {
	hash, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return AuthResult{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	usr := &model.User{
		Name:         cmd.Name,
		Email:        cmd.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := u.repo.Create(ctx, usr); err != nil {
		if errors.Is(err, repository.ErrUserDuplicate) {
			return AuthResult{}, NewServiceError(constants.ErrCodeUserExisted, err)
		}

		return AuthResult{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	token, err := u.tokens.Generate(usr.ID)
	if err != nil {
		return AuthResult{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	u.logger.Info("User registered", zap.Int64("userID", usr.ID))

	return AuthResult{User: usr, Token: token}, nil
}

func (u *user) Login(ctx context.Context, cmd LoginCommand) (AuthResult, error) {
	usr, err := u.repo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return AuthResult{}, NewServiceError(constants.ErrCodeInvalidCredentials, err)
		}

		return AuthResult{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	if err := auth.VerifyPassword(cmd.Password, usr.PasswordHash); err != nil {
		return AuthResult{}, NewServiceError(constants.ErrCodeInvalidCredentials, err)
	}

	token, err := u.tokens.Generate(usr.ID)
	if err != nil {
		return AuthResult{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	return AuthResult{User: usr, Token: token}, nil
}

func (u *user) GetUser(ctx context.Context, userID int64) (*model.User, error) {
	usr, err := u.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, NewServiceError(constants.ErrCodeUserNotFound, err)
		}

		return nil, NewServiceError(constants.ErrCodeInternalError, err)
	}

	return usr, nil
}
