package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"slotbook/internal/domain/user"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/pkg/jwt"
	"slotbook/internal/pkg/password"
	"slotbook/internal/usecase/queries"
)

var (
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	UserID      uuid.UUID
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	readStore  queries.UserReadStore
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthCommands(readStore queries.UserReadStore, userRepo UserRepository, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		readStore:  readStore,
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}
	passwordVO, err := user.NewPassword(rawPassword)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	view, err := a.validateUser(ctx, emailVO, passwordVO)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	accessToken, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	if err := a.userRepo.UpdateLastLogin(ctx, view.ID); err != nil {
		// Continue without failing - this is not critical
		slog.Warn("failed to update last login", "user_id", view.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:      view.ID,
		AccessToken: accessToken,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, email user.Email, pass user.Password) (*queries.AuthorizedUserView, error) {
	view, hashedPassword, err := a.readStore.FindByEmail(ctx, email.Value())
	if err != nil {
		// Return same error as password mismatch to prevent user enumeration attacks
		return nil, errs.ErrInvalidCredentials
	}

	if view == nil {
		return nil, errs.ErrUserNotFound
	}

	if !view.IsActive {
		return nil, errs.ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, pass.Value()); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	return view, nil
}
