package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/availboard/availboard-backend-go/internal/domain/auth"
	"github.com/availboard/availboard-backend-go/internal/domain/employee"
	"github.com/availboard/availboard-backend-go/internal/pkg/jwt"
	"github.com/availboard/availboard-backend-go/internal/pkg/oauth"
)

type AuthServiceImpl struct {
	employeeRepo  employee.Repository
	overrideRepo  employee.OverrideRepository
	jwtService    jwt.Service
	googleService oauth.GoogleService // nil when Google login is not configured
}

func NewAuthService(
	employeeRepo employee.Repository,
	overrideRepo employee.OverrideRepository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
) auth.Service {
	return &AuthServiceImpl{
		employeeRepo:  employeeRepo,
		overrideRepo:  overrideRepo,
		jwtService:    jwtService,
		googleService: googleService,
	}
}

func (s *AuthServiceImpl) effective(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	ovr, err := s.overrideRepo.Get(ctx, emp.ID)
	if err != nil {
		return employee.Employee{}, err
	}
	return employee.ResolveEffective(emp, ovr), nil
}

func (s *AuthServiceImpl) issuePair(emp employee.Employee) (auth.TokenPair, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(emp.ID, emp.SamAccountName, emp.IsAdmin)
	if err != nil {
		return auth.TokenPair{}, err
	}
	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(emp.ID)
	if err != nil {
		return auth.TokenPair{}, err
	}
	return auth.TokenPair{
		AccessToken:      accessToken,
		AccessExpiresAt:  accessExp,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExp,
	}, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenPair, error) {
	username := strings.TrimSpace(req.Username)

	var (
		emp employee.Employee
		err error
	)
	if strings.Contains(username, "@") {
		emp, err = s.employeeRepo.GetByEmail(ctx, username)
	} else {
		emp, err = s.employeeRepo.GetBySam(ctx, username)
	}
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		return auth.TokenPair{}, auth.ErrInvalidCredentials
	}
	if err != nil {
		return auth.TokenPair{}, err
	}

	if emp.PasswordHash == nil {
		return auth.TokenPair{}, auth.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(*emp.PasswordHash), []byte(req.Password)) != nil {
		return auth.TokenPair{}, auth.ErrInvalidCredentials
	}

	eff, err := s.effective(ctx, emp)
	if err != nil {
		return auth.TokenPair{}, err
	}
	if !eff.IsActive {
		return auth.TokenPair{}, auth.ErrAccountDisabled
	}
	return s.issuePair(eff)
}

func (s *AuthServiceImpl) LoginWithGoogle(ctx context.Context, code string) (auth.TokenPair, error) {
	if s.googleService == nil {
		return auth.TokenPair{}, auth.ErrInvalidToken
	}

	token, err := s.googleService.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenPair{}, auth.ErrInvalidToken
	}
	info, err := s.googleService.VerifyUser(ctx, token)
	if err != nil || !info.VerifiedEmail {
		return auth.TokenPair{}, auth.ErrInvalidToken
	}

	emp, err := s.employeeRepo.GetByEmail(ctx, info.Email)
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		return auth.TokenPair{}, auth.ErrUnknownAccount
	}
	if err != nil {
		return auth.TokenPair{}, err
	}

	eff, err := s.effective(ctx, emp)
	if err != nil {
		return auth.TokenPair{}, err
	}
	if !eff.IsActive {
		return auth.TokenPair{}, auth.ErrAccountDisabled
	}
	return s.issuePair(eff)
}

func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error) {
	employeeID, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenPair{}, auth.ErrInvalidToken
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		return auth.TokenPair{}, auth.ErrInvalidToken
	}
	if err != nil {
		return auth.TokenPair{}, err
	}

	eff, err := s.effective(ctx, emp)
	if err != nil {
		return auth.TokenPair{}, err
	}
	if !eff.IsActive {
		return auth.TokenPair{}, auth.ErrAccountDisabled
	}

	// Rotate: the presented refresh token is single use.
	s.jwtService.RevokeToken(refreshToken)
	return s.issuePair(eff)
}

func (s *AuthServiceImpl) Logout(_ context.Context, refreshToken string) {
	if refreshToken != "" {
		s.jwtService.RevokeToken(refreshToken)
	}
}
