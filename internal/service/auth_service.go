package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"jobboard/internal/metrics"
	"jobboard/internal/model"
	"jobboard/internal/repository"
	"jobboard/internal/utils"
)

var (
	// ErrInvalidCredentials is returned for an unknown email and for a wrong password alike.
	ErrInvalidCredentials = &model.AppError{Kind: model.KindAuthentication, Message: "invalid email or password"}
	ErrEmailTaken         = model.NewValidationError("email already in use")
	ErrUserNotFound       = model.NewNotFoundError("user not found")
)

const (
	eventSignup = "signup"
	eventLogin  = "login"
)

// AuthService provides authentication related services
type AuthService interface {
	Signup(ctx context.Context, req model.SignupRequest) (*model.User, string, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.User, string, error)
	Profile(ctx context.Context, userID string) (*model.User, error)
}

type authService struct {
	userRepo     repository.UserRepository
	jwtUtil      *utils.JWTUtil
	metrics      metrics.Recorder
	storeTimeout time.Duration
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil, rec metrics.Recorder, storeTimeout time.Duration) AuthService {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &authService{
		userRepo:     userRepo,
		jwtUtil:      jwtUtil,
		metrics:      rec,
		storeTimeout: storeTimeout,
	}
}

// Signup validates the request, creates the account and issues a session token
func (s *authService) Signup(ctx context.Context, req model.SignupRequest) (*model.User, string, error) {
	user, token, err := s.signup(ctx, req)
	s.metrics.RecordAuthEvent(eventSignup, outcome(err))
	return user, token, err
}

func (s *authService) signup(ctx context.Context, req model.SignupRequest) (*model.User, string, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	dob, err := time.Parse(model.DateLayout, req.DateOfBirth)
	if err != nil {
		return nil, "", model.NewValidationError("date_of_birth must be a date in YYYY-MM-DD format")
	}

	if policy := utils.CheckPasswordPolicy(req.Password); !policy.Valid {
		return nil, "", model.NewValidationError(policy.Reason.Message())
	}

	existing, err := s.findByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, "", model.NewInternalError("internal server error", fmt.Errorf("failed to check existing user: %w", err))
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, "", model.NewInternalError("internal server error", err)
	}

	user := &model.User{
		Name:             req.Name,
		Email:            req.Email,
		PasswordHash:     hashedPassword,
		PhoneNumber:      req.PhoneNumber,
		Gender:           req.Gender,
		DateOfBirth:      dob,
		MembershipStatus: req.MembershipStatus,
		CreatedAt:        time.Now().UTC(),
	}

	storeCtx, cancel := storeContext(ctx, s.storeTimeout)
	defer cancel()
	if err := s.userRepo.Create(storeCtx, user); err != nil {
		// Lost a race with a concurrent signup for the same email.
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", model.NewInternalError("internal server error", fmt.Errorf("failed to create user in repository: %w", err))
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Email)
	if err != nil {
		slog.ErrorContext(ctx, "user created, but failed to generate token",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return user, "", model.NewInternalError("internal server error", err)
	}

	return user, token, nil
}

// Login authenticates a user and returns a fresh session token
func (s *authService) Login(ctx context.Context, req model.LoginRequest) (*model.User, string, error) {
	user, token, err := s.login(ctx, req)
	s.metrics.RecordAuthEvent(eventLogin, outcome(err))
	return user, token, err
}

func (s *authService) login(ctx context.Context, req model.LoginRequest) (*model.User, string, error) {
	req.Email = model.NormalizeEmail(req.Email)
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	user, err := s.findByEmail(ctx, req.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", model.NewInternalError("internal server error", fmt.Errorf("error finding user by email: %w", err))
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate token", slog.String("user_id", user.ID), slog.Any("error", err))
		return nil, "", model.NewInternalError("internal server error", err)
	}

	return user, token, nil
}

// Profile returns the account behind an authenticated session
func (s *authService) Profile(ctx context.Context, userID string) (*model.User, error) {
	userID, err := model.CanonicalID(userID)
	if err != nil {
		return nil, err
	}

	storeCtx, cancel := storeContext(ctx, s.storeTimeout)
	defer cancel()

	user, err := s.userRepo.FindByID(storeCtx, userID)
	if err != nil {
		return nil, translateStoreError(err, ErrUserNotFound.Message)
	}
	return user, nil
}

func (s *authService) findByEmail(ctx context.Context, email string) (*model.User, error) {
	storeCtx, cancel := storeContext(ctx, s.storeTimeout)
	defer cancel()
	return s.userRepo.FindByEmail(storeCtx, email)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case model.KindOf(err) == model.KindInternal:
		return metrics.OutcomeError
	default:
		return metrics.OutcomeRejected
	}
}
