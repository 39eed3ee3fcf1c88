package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/okellojun/HackLab/internal/common"
	"github.com/okellojun/HackLab/internal/common/security"
	"github.com/okellojun/HackLab/internal/domain/model"
	"github.com/okellojun/HackLab/internal/domain/repository"
	"go.uber.org/zap"
)

const (
	MsgMissingFields      = "Missing required fields"
	MsgInvalidRole        = "Invalid user role"
	MsgUserExists         = "Username or email already exists"
	MsgMissingCredentials = "Missing username or password"
	MsgInvalidCredentials = "Invalid username or password"
	MsgUserNotFound       = "User not found"
)

type AuthService struct {
	userRepo repository.UserRepository
	hasher   *security.PasswordHasher
	tokens   *security.TokenService
	log      *zap.Logger
}

func NewAuthService(
	userRepo repository.UserRepository,
	hasher *security.PasswordHasher,
	tokens *security.TokenService,
	log *zap.Logger,
) *AuthService {
	return &AuthService{userRepo: userRepo, hasher: hasher, tokens: tokens, log: log}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	User  model.PublicUser `json:"user"`
	Token string           `json:"token"`
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" || req.Role == "" {
		return nil, common.NewError(common.ErrValidation, MsgMissingFields)
	}
	if !model.ValidRole(req.Role) {
		return nil, common.NewError(common.ErrValidation, MsgInvalidRole)
	}

	exists, err := s.userRepo.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return nil, common.NewError(common.ErrConflict, MsgUserExists)
	}

	hashedPassword, err := s.hasher.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:             uuid.NewString(),
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashedPassword,
		Role:           req.Role,
	}

	// A concurrent registration can still win between the check and the
	// insert; the unique constraint turns that into the same conflict.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	s.log.Info("user registered", zap.String("user_id", user.ID), zap.String("role", user.Role))

	return s.issue(user)
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, common.NewError(common.ErrValidation, MsgMissingCredentials)
	}

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrUnauthorized, MsgInvalidCredentials)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !s.hasher.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, common.NewError(common.ErrUnauthorized, MsgInvalidCredentials)
	}

	return s.issue(user)
}

func (s *AuthService) issue(user *model.User) (*AuthResponse, error) {
	token, err := s.tokens.GenerateToken(security.Principal{ID: user.ID, Username: user.Username, Role: user.Role})
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResponse{User: user.Public(), Token: token}, nil
}
