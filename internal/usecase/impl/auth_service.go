// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"log/slog"

	deliverycontext "passage/internal/delivery/context"
	"passage/internal/domain/entity"
	domainerrors "passage/internal/domain/errors"
	"passage/internal/domain/repository"
	"passage/internal/domain/service"
	"passage/internal/infra/validation"
	"passage/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// randomCredentialBytes is the entropy fed into the throwaway password hash
// created for Google-only accounts. The plaintext is discarded immediately;
// it exists only to keep the "password always set" invariant.
const randomCredentialBytes = 32

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	publisher    service.EventPublisher
	validate     *validator.Validate
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		publisher:    params.Publisher,
		validate:     validation.New(),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the native-credential registration process.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(validation.Describe(err))
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, findErr := userRepo.FindByEmail(ctx, input.Email)
		if findErr == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to find user by email")
		}

		newUser := &entity.User{
			Name:         input.Name,
			Email:        input.Email,
			PasswordHash: hashedPassword,
		}
		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			return errors.Wrap(createErr, "failed to create user during registration")
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", registeredUser.ID))
	srv.enqueueWelcomeMail(ctx, registeredUser)

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login orchestrates the password login process.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(validation.Describe(err))
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// bcrypt is CPU-bound; checked outside any transaction.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, err := srv.tokenService.IssueToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{
		User:        user,
		AccessToken: accessToken,
		TokenType:   service.TokenTypeBearer,
	}, nil
}

// GoogleCallback resolves verified Google claims to a user record and mints
// an access token. The upsert is keyed by email, not by the Google subject:
// an account registered earlier with a native password and the same email is
// linked rather than duplicated. The flip side is that whoever holds the
// email's account first absorbs the Google linkage; this matches the
// existing product behavior and is intentionally left unchanged.
func (srv *authService) GoogleCallback(ctx context.Context, claims *usecase.GoogleClaims) (*usecase.AuthOutput, error) {
	if err := srv.validate.Struct(claims); err != nil {
		srv.log(ctx).Warn("Rejected Google callback claims", slog.String("details", validation.Describe(err)))

		return nil, domainerrors.ErrValidationFailed.WithDetails(validation.Describe(err))
	}

	var resolvedUser *entity.User
	var created bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, findErr := userRepo.FindByEmail(ctx, claims.Email)
		if findErr != nil && !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to find user by email")
		}

		if findErr == nil {
			return srv.relinkGoogleIdentity(ctx, userRepo, user, claims, &resolvedUser)
		}

		created = true

		return srv.createGoogleUser(ctx, userRepo, claims, &resolvedUser)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute Google identity transaction", slog.String("email", claims.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to resolve Google identity")
	}

	accessToken, err := srv.tokenService.IssueToken(resolvedUser.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	if created {
		srv.enqueueWelcomeMail(ctx, resolvedUser)
	}

	return &usecase.AuthOutput{
		User:        resolvedUser,
		AccessToken: accessToken,
		TokenType:   service.TokenTypeBearer,
	}, nil
}

// relinkGoogleIdentity overwrites the Google linkage fields on an existing
// account. Last callback wins; name and password are left untouched.
func (srv *authService) relinkGoogleIdentity(
	ctx context.Context,
	userRepo repository.UserRepository,
	user *entity.User,
	claims *usecase.GoogleClaims,
	resolvedUser **entity.User,
) error {
	srv.log(ctx).Info("Linking Google identity to existing user", slog.Any("userID", user.ID))

	googleID := claims.GoogleID
	user.GoogleID = &googleID
	user.AvatarURL = claims.AvatarURL

	if err := userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update Google linkage")
	}

	*resolvedUser = user

	return nil
}

// createGoogleUser creates a new user from Google claims. The account gets a
// random, never-disclosed password credential so password-login code paths
// can assume the hash is always present.
func (srv *authService) createGoogleUser(
	ctx context.Context,
	userRepo repository.UserRepository,
	claims *usecase.GoogleClaims,
	resolvedUser **entity.User,
) error {
	srv.log(ctx).Info("Google user not found, creating new user", slog.String("email", claims.Email))

	credential, err := randomCredential()
	if err != nil {
		return errors.Wrap(err, "failed to generate random credential")
	}

	hashedCredential, err := srv.hasher.Hash(credential)
	if err != nil {
		return errors.Wrap(err, "failed to hash random credential")
	}

	googleID := claims.GoogleID
	newUser := &entity.User{
		Name:         claims.Name,
		Email:        claims.Email,
		GoogleID:     &googleID,
		AvatarURL:    claims.AvatarURL,
		PasswordHash: hashedCredential,
	}

	if err := userRepo.Create(ctx, newUser); err != nil {
		return errors.Wrap(err, "failed to create user for Google identity")
	}

	*resolvedUser = newUser

	return nil
}

// GetUser loads the user bound to an authenticated request.
func (srv *authService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// enqueueWelcomeMail hands the welcome mail event to the queue. Failures are
// logged and never surfaced to the caller; authentication already succeeded.
func (srv *authService) enqueueWelcomeMail(ctx context.Context, user *entity.User) {
	event := &service.WelcomeMailEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		UserID:    user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
	}

	if err := srv.publisher.PublishWelcomeMail(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to enqueue welcome mail",
			slog.Any("userID", user.ID),
			slog.Any("error", err),
		)
	}
}

func randomCredential() (string, error) {
	buf := make([]byte, randomCredentialBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "read random bytes")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
