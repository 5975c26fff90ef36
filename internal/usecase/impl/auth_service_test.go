package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"passage/internal/domain/entity"
	domainerrors "passage/internal/domain/errors"
	"passage/internal/domain/repository"
	"passage/internal/domain/service"
	mockRepo "passage/internal/mocks/repository"
	mockSvc "passage/internal/mocks/service"
	"passage/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	publisher    *mockSvc.MockEventPublisher
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Publisher:    publisher,
		Logger:       logger,
	})

	return authServiceFixtures{
		service:      svc,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		publisher:    publisher,
	}
}

// expectTransaction makes the transaction manager run the callback against
// the given factory and propagate its error, mirroring a real commit/rollback.
func expectTransaction(f authServiceFixtures, ctx context.Context, factory *mockRepo.MockRepositoryFactory) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func googleClaims() *usecase.GoogleClaims {
	avatar := "https://lh3.googleusercontent.com/a/avatar"

	return &usecase.GoogleClaims{
		Email:     "new@example.com",
		Name:      "New User",
		GoogleID:  "108312345678901234567",
		AvatarURL: &avatar,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	}

	f.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	txUserRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	expectTransaction(f, ctx, factory)

	f.publisher.EXPECT().
		PublishWelcomeMail(ctx, mock.AnythingOfType("*service.WelcomeMailEvent")).
		Run(func(_ context.Context, event *service.WelcomeMailEvent) {
			assert.Equal(t, input.Email, event.Email)
			assert.Equal(t, input.Name, event.Name)
			assert.NotEmpty(t, event.UserID)
		}).
		Return(nil)

	output, err := f.service.Register(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
}

func TestAuthService_Register_EmailAlreadyRegistered(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "taken@example.com",
		Password: "Password123!",
	}

	f.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	txUserRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)

	expectTransaction(f, ctx, factory)

	output, err := f.service.Register(ctx, input)
	assert.Nil(t, output)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Register_InvalidInput(t *testing.T) {
	f := createTestAuthService(t)

	output, err := f.service.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "not-an-email",
		Password: "Password123!",
	})

	assert.Nil(t, output)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 422, appErr.HTTPCode())
	assert.Contains(t, appErr.Details(), "email")
}

func TestAuthService_Login_Success(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "test@example.com",
		Name:         "Test User",
		PasswordHash: "hashed_password",
	}
	input := &usecase.LoginInput{Email: user.Email, Password: "Password123!"}

	f.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	f.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)
	f.tokenService.EXPECT().IssueToken(userID).Return("access_token", nil)

	output, err := f.service.Login(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, user, output.User)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, service.TokenTypeBearer, output.TokenType)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
	}
	input := &usecase.LoginInput{Email: user.Email, Password: "wrong"}

	f.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	f.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(false)

	output, err := f.service.Login(ctx, input)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "ghost@example.com", Password: "Password123!"}

	f.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)

	output, err := f.service.Login(ctx, input)
	assert.Nil(t, output)
	// Unknown email and wrong password are indistinguishable to the caller.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_GoogleCallback_CreatesUser(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()
	claims := googleClaims()

	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	txUserRepo.EXPECT().
		FindByEmail(ctx, claims.Email).
		Return(nil, repository.ErrUserNotFound)

	var generatedCredential string
	f.hasher.EXPECT().
		Hash(mock.AnythingOfType("string")).
		Run(func(password string) {
			generatedCredential = password
		}).
		Return("hashed_random_credential", nil)

	var createdID uuid.UUID
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
			createdID = user.ID
			assert.Equal(t, claims.Email, user.Email)
			assert.Equal(t, claims.Name, user.Name)
			require.NotNil(t, user.GoogleID)
			assert.Equal(t, claims.GoogleID, *user.GoogleID)
			assert.Equal(t, claims.AvatarURL, user.AvatarURL)
			assert.Equal(t, "hashed_random_credential", user.PasswordHash)
		}).
		Return(nil)

	expectTransaction(f, ctx, factory)

	f.tokenService.EXPECT().
		IssueToken(mock.AnythingOfType("uuid.UUID")).
		Return("access_token", nil)

	f.publisher.EXPECT().
		PublishWelcomeMail(ctx, mock.AnythingOfType("*service.WelcomeMailEvent")).
		Run(func(_ context.Context, event *service.WelcomeMailEvent) {
			assert.Equal(t, claims.Email, event.Email)
			assert.Equal(t, claims.Name, event.Name)
		}).
		Return(nil)

	output, err := f.service.GoogleCallback(ctx, claims)
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, createdID, output.User.ID)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, service.TokenTypeBearer, output.TokenType)

	// The throwaway credential has real entropy and is never empty.
	assert.GreaterOrEqual(t, len(generatedCredential), 40)
}

func TestAuthService_GoogleCallback_LinksExistingUser(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()
	claims := googleClaims()

	oldGoogleID := "999999999999999999999"
	existing := &entity.User{
		ID:           uuid.New(),
		Email:        claims.Email,
		Name:         "Original Name",
		GoogleID:     &oldGoogleID,
		PasswordHash: "existing_hash",
	}

	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	txUserRepo.EXPECT().FindByEmail(ctx, claims.Email).Return(existing, nil)
	txUserRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			require.NotNil(t, user.GoogleID)
			assert.Equal(t, claims.GoogleID, *user.GoogleID)
			assert.Equal(t, claims.AvatarURL, user.AvatarURL)
			// Name and password credential survive the relink.
			assert.Equal(t, "Original Name", user.Name)
			assert.Equal(t, "existing_hash", user.PasswordHash)
		}).
		Return(nil)

	expectTransaction(f, ctx, factory)

	f.tokenService.EXPECT().IssueToken(existing.ID).Return("access_token", nil)

	output, err := f.service.GoogleCallback(ctx, claims)
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, existing.ID, output.User.ID)
	// No welcome mail for a relink; the publisher mock would fail on an
	// unexpected call.
}

func TestAuthService_GoogleCallback_InvalidClaims(t *testing.T) {
	f := createTestAuthService(t)

	tests := []struct {
		name   string
		claims *usecase.GoogleClaims
		field  string
	}{
		{
			name:   "missing email",
			claims: &usecase.GoogleClaims{Name: "User", GoogleID: "123"},
			field:  "email",
		},
		{
			name:   "malformed email",
			claims: &usecase.GoogleClaims{Email: "nope", Name: "User", GoogleID: "123"},
			field:  "email",
		},
		{
			name:   "missing name",
			claims: &usecase.GoogleClaims{Email: "a@b.com", GoogleID: "123"},
			field:  "name",
		},
		{
			name:   "missing google id",
			claims: &usecase.GoogleClaims{Email: "a@b.com", Name: "User"},
			field:  "google_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := f.service.GoogleCallback(context.Background(), tt.claims)
			assert.Nil(t, output)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 422, appErr.HTTPCode())
			assert.Contains(t, appErr.Details(), tt.field)
			// No transaction ran; the txManager mock would fail on an
			// unexpected Execute call.
		})
	}
}

func TestAuthService_GoogleCallback_OptionalAvatar(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()
	claims := googleClaims()
	claims.AvatarURL = nil

	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	txUserRepo.EXPECT().FindByEmail(ctx, claims.Email).Return(nil, repository.ErrUserNotFound)
	f.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("hashed_random_credential", nil)
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
			assert.Nil(t, user.AvatarURL)
		}).
		Return(nil)

	expectTransaction(f, ctx, factory)

	f.tokenService.EXPECT().IssueToken(mock.AnythingOfType("uuid.UUID")).Return("access_token", nil)
	f.publisher.EXPECT().PublishWelcomeMail(ctx, mock.AnythingOfType("*service.WelcomeMailEvent")).Return(nil)

	output, err := f.service.GoogleCallback(ctx, claims)
	require.NoError(t, err)
	assert.NotNil(t, output)
}

func TestAuthService_GoogleCallback_PublishFailureDoesNotFailAuth(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()
	claims := googleClaims()

	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	txUserRepo.EXPECT().FindByEmail(ctx, claims.Email).Return(nil, repository.ErrUserNotFound)
	f.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("hashed_random_credential", nil)
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) { user.ID = uuid.New() }).
		Return(nil)

	expectTransaction(f, ctx, factory)

	f.tokenService.EXPECT().IssueToken(mock.AnythingOfType("uuid.UUID")).Return("access_token", nil)
	f.publisher.EXPECT().
		PublishWelcomeMail(ctx, mock.AnythingOfType("*service.WelcomeMailEvent")).
		Return(errors.New("queue full"))

	output, err := f.service.GoogleCallback(ctx, claims)
	require.NoError(t, err)
	assert.NotNil(t, output)
	assert.Equal(t, "access_token", output.AccessToken)
}

func TestAuthService_GoogleCallback_TransactionFailure(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()
	claims := googleClaims()

	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	txUserRepo.EXPECT().FindByEmail(ctx, claims.Email).Return(nil, errors.New("connection reset"))

	expectTransaction(f, ctx, factory)

	output, err := f.service.GoogleCallback(ctx, claims)
	assert.Nil(t, output)
	require.Error(t, err)
	// No token mint and no welcome mail when the transaction rolls back.
}

func TestAuthService_GetUser(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "test@example.com"}

	f.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	got, err := f.service.GetUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuthService_GetUser_NotFound(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	got, err := f.service.GetUser(ctx, userID)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestRandomCredential(t *testing.T) {
	first, err := randomCredential()
	require.NoError(t, err)
	second, err := randomCredential()
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
	// 32 bytes of entropy encode to 43 unpadded base64url characters.
	assert.Len(t, first, 43)
}
