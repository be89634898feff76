package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/heishia/bluroutine/contracts/mq"
	"github.com/heishia/bluroutine/internal/model"
	"github.com/heishia/bluroutine/internal/repository"
	"github.com/heishia/bluroutine/pkg/config"
	"github.com/heishia/bluroutine/pkg/metrics"
	"github.com/heishia/bluroutine/pkg/util"
)

// LoginLimiter throttles repeated failed logins per email. A nil limiter
// disables throttling.
type LoginLimiter interface {
	Blocked(ctx context.Context, email string) bool
	RecordFailure(ctx context.Context, email string)
	Reset(ctx context.Context, email string)
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	Token string
	User  *model.User
}

type AuthService struct {
	users   *repository.UserRepository
	jwt     config.JWTConfig
	limiter LoginLimiter
	events  EventPublisher
	log     *zap.Logger
}

func NewAuthService(users *repository.UserRepository, jwt config.JWTConfig, limiter LoginLimiter, events EventPublisher, log *zap.Logger) *AuthService {
	return &AuthService{
		users:   users,
		jwt:     jwt,
		limiter: limiter,
		events:  events,
		log:     log,
	}
}

// Register creates a new user and signs them in.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*AuthResult, error) {
	hash, err := util.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &model.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
	}
	if err := s.users.CreateUser(ctx, u); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, fmt.Errorf("email %s: %w", email, ErrConflict)
		}
		return nil, err
	}

	token, err := s.IssueToken(u.Email)
	if err != nil {
		return nil, err
	}

	metrics.IncrementMutation("user", "create")
	s.log.Info("user registered", zap.String("user_id", u.ID))
	publish(s.log, s.events, mq.UserRegistered, mq.UserRegisteredPayload{
		UserID:     u.ID,
		Email:      u.Email,
		OccurredAt: u.CreatedAt,
	})

	return &AuthResult{Token: token, User: u}, nil
}

// Login checks credentials and returns a fresh token. Unknown email and
// wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if s.limiter != nil && s.limiter.Blocked(ctx, email) {
		metrics.IncrementAuthFailure("throttled")
		s.log.Warn("login throttled")
		return nil, ErrTooManyAttempts
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil || !util.CheckPassword(password, u.PasswordHash) {
		if s.limiter != nil {
			s.limiter.RecordFailure(ctx, email)
		}
		metrics.IncrementAuthFailure("bad_credentials")
		s.log.Warn("login rejected")
		return nil, ErrUnauthorized
	}

	if s.limiter != nil {
		s.limiter.Reset(ctx, email)
	}

	token, err := s.IssueToken(u.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: u}, nil
}

// IssueToken signs a token whose only claim is the subject email.
func (s *AuthService) IssueToken(email string) (string, error) {
	token, err := util.GenerateJWT(email, s.jwt.Secret, s.ttl())
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// ResolveToken verifies token and returns the live user it names.
func (s *AuthService) ResolveToken(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		metrics.IncrementAuthFailure("missing_token")
		return nil, ErrUnauthorized
	}

	email, err := util.ParseJWT(token, s.jwt.Secret)
	if err != nil {
		metrics.IncrementAuthFailure("invalid_token")
		return nil, ErrUnauthorized
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		metrics.IncrementAuthFailure("unknown_subject")
		return nil, ErrUnauthorized
	}
	return u, nil
}

func (s *AuthService) ttl() time.Duration {
	if s.jwt.TTL <= 0 {
		return 7 * 24 * time.Hour
	}
	return s.jwt.TTL
}
