package impl

import (
	"context"
	"sync"
	"testing"

	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserServiceForTest(userRepo *memUserRepo, tokenSvc *stubTokenService) usecase.UserUsecase {
	return NewUserService(UserServiceParams{
		TxManager:    &memTxManager{userRepo: userRepo, itemRepo: newMemItemRepo()},
		UserRepo:     userRepo,
		Hasher:       &stubHasher{},
		TokenService: tokenSvc,
		Logger:       newDiscardLogger(),
	})
}

func TestUserService_RegisterThenAuthenticate(t *testing.T) {
	userRepo := newMemUserRepo()
	tokenSvc := &stubTokenService{}
	svc := newUserServiceForTest(userRepo, tokenSvc)
	ctx := context.Background()

	err := svc.Register(ctx, usecase.RegisterInput{Login: "a@b.com", Password: "Password123!"})
	require.NoError(t, err)

	output, err := svc.Authenticate(ctx, usecase.LoginInput{Login: "a@b.com", Password: "Password123!"})
	require.NoError(t, err)
	assert.NotEmpty(t, output.Token)

	// The token's subject must resolve back to the created identity.
	require.Len(t, tokenSvc.issued, 1)
	stored, err := userRepo.FindByLogin(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, tokenSvc.issued[0].ID)
	assert.Equal(t, "token-"+stored.ID.String(), output.Token)
}

func TestUserService_RegisterRejectsMalformedInput(t *testing.T) {
	userRepo := newMemUserRepo()
	svc := newUserServiceForTest(userRepo, &stubTokenService{})
	ctx := context.Background()

	tests := []struct {
		name     string
		login    string
		password string
	}{
		{name: "not an email", login: "not-an-email", password: "Password123!"},
		{name: "empty login", login: "", password: "Password123!"},
		{name: "missing domain", login: "a@", password: "Password123!"},
		{name: "short password", login: "a@b.com", password: "short"},
		{name: "empty password", login: "a@b.com", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Register(ctx, usecase.RegisterInput{Login: tt.login, Password: tt.password})
			assert.ErrorIs(t, err, domainerrors.ErrInvalidRequest)
		})
	}

	// Validation failures must never touch storage.
	assert.Empty(t, userRepo.users)
}

func TestUserService_RegisterDuplicateLogin(t *testing.T) {
	userRepo := newMemUserRepo()
	svc := newUserServiceForTest(userRepo, &stubTokenService{})
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, usecase.RegisterInput{Login: "a@b.com", Password: "Password123!"}))

	err := svc.Register(ctx, usecase.RegisterInput{Login: "a@b.com", Password: "Different123!"})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_ConcurrentRegistrationSingleWinner(t *testing.T) {
	userRepo := newMemUserRepo()
	svc := newUserServiceForTest(userRepo, &stubTokenService{})
	ctx := context.Background()

	const attempts = 16

	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = svc.Register(ctx, usecase.RegisterInput{Login: "race@b.com", Password: "Password123!"})
		}()
	}
	wg.Wait()

	// Exactly one registration wins; every loser sees the conflict error,
	// whether it lost at the pre-check or at the unique constraint.
	var won, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, domainerrors.ErrUserAlreadyExists):
			lost++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, attempts-1, lost)
	assert.Len(t, userRepo.users, 1)
}

func TestUserService_AuthenticateUniformFailure(t *testing.T) {
	userRepo := newMemUserRepo()
	svc := newUserServiceForTest(userRepo, &stubTokenService{})
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, usecase.RegisterInput{Login: "a@b.com", Password: "Password123!"}))

	// Wrong password and unknown login must be indistinguishable.
	_, wrongPassword := svc.Authenticate(ctx, usecase.LoginInput{Login: "a@b.com", Password: "Wrong123!"})
	_, unknownLogin := svc.Authenticate(ctx, usecase.LoginInput{Login: "nobody@b.com", Password: "Password123!"})

	require.ErrorIs(t, wrongPassword, domainerrors.ErrInvalidCredentials)
	require.ErrorIs(t, unknownLogin, domainerrors.ErrInvalidCredentials)

	var first, second domainerrors.AppError
	require.ErrorAs(t, wrongPassword, &first)
	require.ErrorAs(t, unknownLogin, &second)
	assert.Equal(t, first.Message(), second.Message())
	assert.Equal(t, first.HTTPCode(), second.HTTPCode())
}

func TestUserService_AuthenticateMalformedLogin(t *testing.T) {
	svc := newUserServiceForTest(newMemUserRepo(), &stubTokenService{})

	_, err := svc.Authenticate(context.Background(), usecase.LoginInput{Login: "not-an-email", Password: "Password123!"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), usecase.LoginInput{Login: "a@b.com", Password: ""})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_RegisterStoreFailureIsInternal(t *testing.T) {
	userRepo := newMemUserRepo()
	userRepo.findErr = errors.New("connection reset")
	svc := newUserServiceForTest(userRepo, &stubTokenService{})

	err := svc.Register(context.Background(), usecase.RegisterInput{Login: "a@b.com", Password: "Password123!"})
	require.Error(t, err)

	// Store failures stay generic: no domain kind is attached.
	var appErr domainerrors.AppError
	assert.False(t, errors.As(err, &appErr))
}

func TestUserService_Logout(t *testing.T) {
	svc := newUserServiceForTest(newMemUserRepo(), &stubTokenService{})
	assert.NoError(t, svc.Logout(context.Background()))
}
