package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sertaogourmet/pos-api/internal/domain/entity"
	"github.com/sertaogourmet/pos-api/internal/domain/enum"
	"github.com/sertaogourmet/pos-api/internal/domain/repository"
	"github.com/sertaogourmet/pos-api/pkg/apperror"
	"github.com/sertaogourmet/pos-api/pkg/utils"
)

const minPasswordLength = 6

// AuthService handles operator authentication and management
type AuthService struct {
	operatorRepo repository.OperatorRepository
	jwtManager   *utils.JWTManager
	now          func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(operatorRepo repository.OperatorRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		operatorRepo: operatorRepo,
		jwtManager:   jwtManager,
		now:          time.Now,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	Operator     *entity.Operator
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// Login authenticates an operator and returns tokens
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	operator, err := s.operatorRepo.GetByUsername(ctx, strings.TrimSpace(input.Username))
	if err != nil {
		return nil, err
	}
	if operator == nil || !utils.CheckPasswordHash(input.Password, operator.PasswordHash) {
		return nil, apperror.ErrInvalidCredentials
	}
	if !operator.IsActive {
		return nil, apperror.ErrInactiveOperator
	}

	now := s.now()
	operator.LastLoginAt = &now
	if err := s.operatorRepo.Update(ctx, operator); err != nil {
		return nil, err
	}

	return s.issue(operator)
}

// RefreshToken generates new tokens from a refresh token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	operatorID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	operator, err := s.operatorRepo.GetByID(ctx, operatorID)
	if err != nil {
		return nil, err
	}
	if operator == nil {
		return nil, apperror.ErrInvalidToken
	}
	if !operator.IsActive {
		return nil, apperror.ErrInactiveOperator
	}
	return s.issue(operator)
}

func (s *AuthService) issue(operator *entity.Operator) (*LoginOutput, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(operator.ID, operator.Username, operator.Role.String())
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(operator.ID)
	if err != nil {
		return nil, err
	}
	return &LoginOutput{
		Operator:     operator,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtManager.AccessTTL().Seconds()),
	}, nil
}

// GetOperator returns an operator by ID
func (s *AuthService) GetOperator(ctx context.Context, id uuid.UUID) (*entity.Operator, error) {
	operator, err := s.operatorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if operator == nil {
		return nil, apperror.NewNotFoundError("Operator")
	}
	return operator, nil
}

// CreateOperatorInput represents the create operator input
type CreateOperatorInput struct {
	Username    string
	DisplayName string
	Password    string
	Role        enum.OperatorRole
}

// CreateOperator adds an active operator
func (s *AuthService) CreateOperator(ctx context.Context, input *CreateOperatorInput) (*entity.Operator, error) {
	username := strings.TrimSpace(input.Username)
	var errs []apperror.FieldError
	if username == "" {
		errs = append(errs, apperror.FieldError{Field: "username", Message: "is required"})
	}
	if len(input.Password) < minPasswordLength {
		errs = append(errs, apperror.FieldError{Field: "password", Message: "must be at least 6 characters"})
	}
	if len(errs) > 0 {
		return nil, apperror.NewValidationError(errs)
	}

	existing, err := s.operatorRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Username already taken")
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	displayName := strings.TrimSpace(input.DisplayName)
	if displayName == "" {
		displayName = username
	}

	operator := &entity.Operator{
		Username:     username,
		DisplayName:  displayName,
		PasswordHash: hash,
		Role:         input.Role,
		IsActive:     true,
	}
	if err := s.operatorRepo.Create(ctx, operator); err != nil {
		return nil, err
	}
	return operator, nil
}

// ListOperators lists every operator
func (s *AuthService) ListOperators(ctx context.Context) ([]entity.Operator, error) {
	return s.operatorRepo.List(ctx)
}
