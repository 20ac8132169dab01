package auth

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/caresync/staffing-backend-go/internal/config"
	"github.com/caresync/staffing-backend-go/internal/domain/auth"
	"github.com/caresync/staffing-backend-go/internal/domain/user"
	"github.com/caresync/staffing-backend-go/internal/pkg/email"
	"github.com/caresync/staffing-backend-go/internal/pkg/jwt"
	"github.com/caresync/staffing-backend-go/internal/pkg/oauth"
)

const verificationTokenTTL = 24 * time.Hour

type authServiceImpl struct {
	userRepo      user.Repository
	roleRepo      user.RoleRepository
	refreshRepo   auth.RefreshTokenRepository
	verifyRepo    auth.VerificationTokenRepository
	jwtService    jwt.Service
	emailService  email.EmailService
	googleService oauth.GoogleService
	appCfg        config.AppConfig
}

// NewAuthService creates a new auth service instance
func NewAuthService(
	userRepo user.Repository,
	roleRepo user.RoleRepository,
	refreshRepo auth.RefreshTokenRepository,
	verifyRepo auth.VerificationTokenRepository,
	jwtService jwt.Service,
	emailService email.EmailService,
	googleService oauth.GoogleService,
	appCfg config.AppConfig,
) auth.Service {
	return &authServiceImpl{
		userRepo:      userRepo,
		roleRepo:      roleRepo,
		refreshRepo:   refreshRepo,
		verifyRepo:    verifyRepo,
		jwtService:    jwtService,
		emailService:  emailService,
		googleService: googleService,
		appCfg:        appCfg,
	}
}

// hashToken stores only a digest of refresh tokens; the raw value never
// touches the database.
func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return base64.StdEncoding.EncodeToString(sum[:])
}

func (s *authServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return 0, user.ErrEmailExists
	}

	role, err := s.roleRepo.GetByName(ctx, req.Role)
	if err != nil {
		return 0, user.ErrRoleNotFound
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &user.User{
		Email:        req.Email,
		PasswordHash: string(hashed),
		FullName:     req.FullName,
		Phone:        req.Phone,
		RoleID:       role.ID,
		CompanyID:    req.CompanyID,
		CountryID:    req.CountryID,
		IsActive:     true,
		IsVerified:   false,
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.sendVerification(ctx, u); err != nil {
		// Registration succeeded; the user can request a new link later.
		slog.Error("failed to send verification email", "user_id", u.ID, "error", err)
	}
	return u.ID, nil
}

func (s *authServiceImpl) sendVerification(ctx context.Context, u *user.User) error {
	token := uuid.NewString()
	expiresAt := time.Now().Add(verificationTokenTTL)
	if err := s.verifyRepo.Store(ctx, u.ID, token, expiresAt); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/auth/verify?token=%s", s.appCfg.FrontendURL, token)
	return s.emailService.SendVerification(u.Email, u.FullName, link, expiresAt.Format(time.RFC1123))
}

func (s *authServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, *http.Cookie, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, nil, err
	}

	u, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return auth.LoginResponse{}, nil, auth.ErrInvalidCredentials
	}
	if u.PasswordHash == "" {
		return auth.LoginResponse{}, nil, auth.ErrPasswordLoginDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, nil, auth.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, u)
}

func (s *authServiceImpl) LoginWithGoogle(ctx context.Context, req auth.GoogleLoginRequest) (auth.LoginResponse, *http.Cookie, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, nil, err
	}

	gu, err := s.googleService.ExchangeCode(ctx, req.Code)
	if err != nil {
		return auth.LoginResponse{}, nil, fmt.Errorf("google sign-in failed: %w", err)
	}
	if !gu.VerifiedEmail {
		return auth.LoginResponse{}, nil, auth.ErrGoogleEmailNotVerified
	}

	u, err := s.userRepo.GetByGoogleID(ctx, gu.ID)
	if err != nil {
		// Fall back to email linkage for accounts registered with a password.
		u, err = s.userRepo.GetByEmail(ctx, strings.ToLower(gu.Email))
		if err != nil {
			return auth.LoginResponse{}, nil, auth.ErrInvalidCredentials
		}
		u.GoogleID = &gu.ID
		if err := s.userRepo.Update(ctx, u); err != nil {
			slog.Warn("failed to link google id", "user_id", u.ID, "error", err)
		}
	}

	return s.issueTokens(ctx, u)
}

func (s *authServiceImpl) issueTokens(ctx context.Context, u *user.User) (auth.LoginResponse, *http.Cookie, error) {
	if !u.IsActive {
		return auth.LoginResponse{}, nil, user.ErrUserDeactivated
	}
	if !u.IsVerified {
		return auth.LoginResponse{}, nil, user.ErrUserNotVerified
	}

	role, err := s.roleRepo.GetByID(ctx, u.RoleID)
	if err != nil {
		return auth.LoginResponse{}, nil, fmt.Errorf("failed to resolve role: %w", err)
	}

	accessToken, expiresIn, err := s.jwtService.GenerateAccessToken(jwt.AccessClaims{
		UserID:    u.ID,
		Email:     u.Email,
		Role:      role.Name,
		CompanyID: u.CompanyID,
		CountryID: u.CountryID,
	})
	if err != nil {
		return auth.LoginResponse{}, nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshTTL, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.LoginResponse{}, nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	expiresAt := time.Now().Add(time.Duration(refreshTTL) * time.Second)
	if err := s.refreshRepo.Store(ctx, u.ID, hashToken(refreshToken), expiresAt); err != nil {
		return auth.LoginResponse{}, nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	resp := auth.LoginResponse{
		TokenResponse: auth.TokenResponse{
			AccessToken: accessToken,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		UserID:   u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     role.Name,
	}
	return resp, s.jwtService.RefreshTokenCookie(refreshToken, refreshTTL), nil
}

func (s *authServiceImpl) Refresh(ctx context.Context, rawRefreshToken string) (auth.TokenResponse, *http.Cookie, error) {
	if rawRefreshToken == "" {
		return auth.TokenResponse{}, nil, auth.ErrInvalidRefreshToken
	}

	hash := hashToken(rawRefreshToken)
	userID, revoked, err := s.refreshRepo.Lookup(ctx, hash)
	if err != nil {
		return auth.TokenResponse{}, nil, err
	}
	if revoked {
		// Reuse of a revoked token invalidates the whole session family.
		if err := s.refreshRepo.RevokeAllForUser(ctx, userID); err != nil {
			slog.Error("failed to revoke token family", "user_id", userID, "error", err)
		}
		return auth.TokenResponse{}, nil, auth.ErrRefreshTokenRevoked
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, nil, auth.ErrInvalidRefreshToken
	}
	if !u.IsActive {
		return auth.TokenResponse{}, nil, user.ErrUserDeactivated
	}

	role, err := s.roleRepo.GetByID(ctx, u.RoleID)
	if err != nil {
		return auth.TokenResponse{}, nil, fmt.Errorf("failed to resolve role: %w", err)
	}

	if err := s.refreshRepo.Revoke(ctx, hash); err != nil && !errors.Is(err, auth.ErrInvalidRefreshToken) {
		return auth.TokenResponse{}, nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	accessToken, expiresIn, err := s.jwtService.GenerateAccessToken(jwt.AccessClaims{
		UserID:    u.ID,
		Email:     u.Email,
		Role:      role.Name,
		CompanyID: u.CompanyID,
		CountryID: u.CountryID,
	})
	if err != nil {
		return auth.TokenResponse{}, nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	newRefresh, refreshTTL, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	expiresAt := time.Now().Add(time.Duration(refreshTTL) * time.Second)
	if err := s.refreshRepo.Store(ctx, u.ID, hashToken(newRefresh), expiresAt); err != nil {
		return auth.TokenResponse{}, nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	resp := auth.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}
	return resp, s.jwtService.RefreshTokenCookie(newRefresh, refreshTTL), nil
}

func (s *authServiceImpl) Logout(ctx context.Context, rawRefreshToken string) error {
	if rawRefreshToken == "" {
		return nil
	}
	err := s.refreshRepo.Revoke(ctx, hashToken(rawRefreshToken))
	if errors.Is(err, auth.ErrInvalidRefreshToken) {
		return nil
	}
	return err
}

func (s *authServiceImpl) VerifyEmail(ctx context.Context, token string) error {
	userID, err := s.verifyRepo.Consume(ctx, token)
	if err != nil {
		return err
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if u.IsVerified {
		return auth.ErrAlreadyVerified
	}

	if err := s.userRepo.MarkVerified(ctx, userID); err != nil {
		return err
	}

	if err := s.emailService.SendWelcome(u.Email, u.FullName, ""); err != nil {
		slog.Warn("failed to send welcome email", "user_id", userID, "error", err)
	}
	return nil
}
