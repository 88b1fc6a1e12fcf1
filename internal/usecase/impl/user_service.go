// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"regexp"

	deliverycontext "shelf/internal/delivery/context"
	"shelf/internal/domain/entity"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/repository"
	"shelf/internal/domain/service"
	"shelf/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minPasswordLength = 8

var emailPattern = regexp.MustCompile(
	`^[a-zA-Z0-9_+&*-]+(?:\.[a-zA-Z0-9_+&*-]+)*@(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,7}$`,
)

// userService implements the UserUsecase interface. It orchestrates the
// credential store, the password hasher and the token service.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for the user service, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new identity record. Validation happens before any I/O.
// The existence pre-check only produces a fast, friendly conflict error; the
// storage-level unique index on login is what actually serializes concurrent
// registrations of the same login.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) error {
	if !isValidEmail(input.Login) || len(input.Password) < minPasswordLength {
		srv.log(ctx).Warn("Rejected malformed registration input")

		return domainerrors.ErrInvalidRequest.WrapMessage("login must be an email and password at least 8 characters")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByLogin(ctx, input.Login)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("login already registered")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check login existence")
		}

		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password during registration")
		}

		newUser := &entity.User{
			Login:        input.Login,
			PasswordHash: hashedPassword,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			// A concurrent registration can slip past the pre-check; the
			// unique index reports it here.
			if errors.Is(err, repository.ErrDuplicateLogin) {
				return domainerrors.ErrUserAlreadyExists.WrapMessage("login already registered")
			}

			return errors.Wrap(err, "failed to create user during registration")
		}

		return nil
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			srv.log(ctx).Warn("Registration rejected", slog.String("reason", appErr.ErrorCode()))
		} else {
			srv.log(ctx).Error("Failed to execute registration transaction", slog.Any("error", err))
		}

		return err
	}

	srv.log(ctx).Info("User registered", slog.String("login", input.Login))

	return nil
}

// Authenticate verifies credentials and issues a bearer token. A missing
// account and a failed password check produce the identical error, so the
// login endpoint cannot be used to enumerate registered addresses.
func (srv *userService) Authenticate(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	if !isValidEmail(input.Login) || input.Password == "" {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("malformed login or empty password")
	}

	user, err := srv.userRepo.FindByLogin(ctx, input.Login)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Authentication failed", slog.String("login", input.Login))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown login")
		}

		srv.log(ctx).Error("Failed to load identity during authentication", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find user by login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Authentication failed", slog.String("login", input.Login))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	token, err := srv.tokenService.Issue(user)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Debug("Authentication succeeded", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{Token: token}, nil
}

// Logout acknowledges the request. Tokens are stateless: validity is a pure
// function of signature and expiry, so there is nothing to revoke.
func (srv *userService) Logout(ctx context.Context) error {
	srv.log(ctx).Debug("User logged out")

	return nil
}

func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
