package identity

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Daninc24/myshop/internal/domain/identity"
	"github.com/Daninc24/myshop/internal/domain/shared"
	"github.com/Daninc24/myshop/internal/infrastructure/auth"
)

// ErrInvalidCredentials is returned on any login failure. The cause is not
// disclosed: an unknown email and a wrong password look the same to a caller.
var ErrInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")

// AuthService handles registration, login and token lifecycle
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	eventBus   shared.EventBus
	logger     *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo identity.UserRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	eventBus shared.EventBus,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		eventBus:   eventBus,
		logger:     logger,
	}
}

// Register creates a customer account and signs it in
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("EMAIL_TAKEN", "An account with this email already exists")
	}

	user, err := identity.NewUser(req.Name, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, user)

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
	)

	return &AuthResponse{User: ToUserResponse(user), Tokens: tokens}, nil
}

// Login verifies the credentials and issues a token pair
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.VerifyPassword(req.Password) {
		s.logger.Warn("failed login attempt", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	user.RecordLogin()
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", zap.String("user_id", user.ID.String()))

	return &AuthResponse{User: ToUserResponse(user), Tokens: tokens}, nil
}

// Refresh exchanges a valid refresh token for a fresh pair. The role is
// re-read from the account so a role change takes effect on the next refresh.
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (*auth.TokenPair, error) {
	claims, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, err
	}

	if err := s.checkBlacklist(ctx, claims); err != nil {
		return nil, err
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	return s.jwtService.RefreshTokenPair(req.RefreshToken, user.Name, string(user.Role))
}

// Logout revokes the presented access token for its remaining lifetime
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	ttl := claims.GetRemainingTTL()
	if ttl <= 0 {
		return nil
	}

	if err := s.blacklist.AddToBlacklist(ctx, claims.ID, ttl); err != nil {
		return err
	}

	s.logger.Info("user logged out", zap.String("user_id", claims.UserID))
	return nil
}

// Me returns the account behind the token
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	response := ToUserResponse(user)
	return &response, nil
}

// ChangePassword changes the caller's password and force-expires every
// session issued before the change.
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := user.ChangePassword(req.OldPassword, req.NewPassword); err != nil {
		return err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	if err := s.blacklist.AddUserTokensToBlacklist(ctx, userID.String(), s.jwtService.GetRefreshTokenExpiration()); err != nil {
		s.logger.Error("failed to invalidate sessions after password change",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
	}

	s.logger.Info("password changed", zap.String("user_id", userID.String()))
	return nil
}

// CheckToken verifies an access token against the blacklist
func (s *AuthService) CheckToken(ctx context.Context, claims *auth.Claims) error {
	return s.checkBlacklist(ctx, claims)
}

func (s *AuthService) checkBlacklist(ctx context.Context, claims *auth.Claims) error {
	blacklisted, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		return err
	}
	if blacklisted {
		return auth.ErrTokenBlacklisted
	}

	invalidated, err := s.blacklist.IsUserTokenInvalidated(ctx, claims.UserID, claims.GetIssuedAtTime())
	if err != nil {
		return err
	}
	if invalidated {
		return auth.ErrTokenBlacklisted
	}

	return nil
}

func (s *AuthService) issueTokens(user *identity.User) (*auth.TokenPair, error) {
	return s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID: user.ID,
		Name:   user.Name,
		Role:   string(user.Role),
	})
}

// publishEvents publishes and clears pending domain events
func (s *AuthService) publishEvents(ctx context.Context, user *identity.User) {
	events := user.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.eventBus.Publish(ctx, events...); err != nil {
		s.logger.Error("failed to publish user events", zap.Error(err))
	}
	user.ClearDomainEvents()
}
