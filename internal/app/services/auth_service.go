package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sixrdiamond/recruitment-portal/internal/app/models"
	"github.com/sixrdiamond/recruitment-portal/internal/app/models/dto"
	"github.com/sixrdiamond/recruitment-portal/internal/app/repositories"
	"github.com/sixrdiamond/recruitment-portal/internal/pkg/apperrors"
	"github.com/sixrdiamond/recruitment-portal/internal/pkg/auth"
	"github.com/sixrdiamond/recruitment-portal/internal/pkg/validation"
)

// AuthService handles HR employee authentication
type AuthService struct {
	employeeRepo *repositories.EmployeeRepository
	tokenRepo    *repositories.TokenRepository
	jwtService   *auth.JWTService
	logger       zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	employeeRepo *repositories.EmployeeRepository,
	tokenRepo *repositories.TokenRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		employeeRepo: employeeRepo,
		tokenRepo:    tokenRepo,
		jwtService:   jwtService,
		logger:       logger,
	}
}

// Login authenticates an employee by ID and password and issues a token pair
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	employeeID := strings.TrimSpace(req.EmployeeID)
	if !validation.IsValidEmployeeID(employeeID) || req.Password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	employee, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, repositories.ErrEmployeeNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login lookup failed: %w", err)
	}

	if !employee.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if !auth.CheckPassword(employee.Password, req.Password) {
		s.logger.Warn().Str("employeeId", employeeID).Msg("Login attempt with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, employee)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Message: "Login successful",
		User: dto.EmployeeSummary{
			ID:   employee.EmployeeID,
			Name: employee.FullName(),
			Role: employee.Role,
		},
		Token: *tokens,
	}, nil
}

// RefreshToken rotates a refresh token and issues a fresh pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	stored, err := s.tokenRepo.Get(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, repositories.ErrTokenNotFound) {
			return nil, apperrors.ErrTokenNotFound
		}
		return nil, fmt.Errorf("refresh token lookup failed: %w", err)
	}

	if stored.Revoked {
		return nil, apperrors.ErrTokenRevoked
	}
	if stored.ExpiresAt.Before(time.Now()) {
		_ = s.tokenRepo.Revoke(ctx, refreshToken)
		return nil, apperrors.ErrTokenExpired
	}

	employee, err := s.employeeRepo.GetByID(ctx, stored.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("refresh token owner lookup failed: %w", err)
	}
	if !employee.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	// Rotate: the old token must never be reusable
	if err := s.tokenRepo.Revoke(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke old refresh token: %w", err)
	}

	return s.issueTokens(ctx, employee)
}

func (s *AuthService) issueTokens(ctx context.Context, employee *models.Employee) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(employee)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	if err := s.tokenRepo.Save(ctx, employee.ID, refreshToken, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, fmt.Errorf("token saving error: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:           accessToken,
		TokenType:             "Bearer",
		ExpiresIn:             expiresIn,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresIn,
	}, nil
}
