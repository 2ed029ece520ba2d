package users

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/foodhub/internal/common"
	"github.com/dmitrijs2005/foodhub/internal/server/auth"
	"github.com/dmitrijs2005/foodhub/internal/server/config"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUserExists is returned by SignUp for a taken email.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned by SignIn for an unknown email or a
	// wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnknownProvider is returned by OAuth for a provider it does not know.
	ErrUnknownProvider = errors.New("unknown provider")
	// ErrPasswordTooLong is returned by SignUp for passwords bcrypt cannot hash.
	ErrPasswordTooLong = errors.New("password too long")
)

type Service struct {
	repo          Repository
	jwtSecret     []byte
	tokenValidity time.Duration
	bcryptCost    int
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:          repo,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidity,
		bcryptCost:    bcrypt.DefaultCost,
	}
}

// SignUp creates a password account and returns its first token.
func (s *Service) SignUp(ctx context.Context, name, email, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, &User{Name: name, Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return "", ErrUserExists
		}
		return "", fmt.Errorf("error creating user: %w", err)
	}

	return s.issue(user)
}

// SignIn checks the password and returns a fresh token.
func (s *Service) SignIn(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("error loading user: %w", err)
	}

	if len(user.PasswordHash) == 0 {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.issue(user)
}

// OAuth trusts the provider token as is, finds or creates the matching
// account and returns a token for it. The dev backend does not call the
// providers, so any non-empty token is accepted.
func (s *Service) OAuth(ctx context.Context, provider, providerToken string) (string, error) {
	if provider != common.ProviderGoogle && provider != common.ProviderFacebook {
		return "", ErrUnknownProvider
	}
	if strings.TrimSpace(providerToken) == "" {
		return "", common.ErrInvalidToken
	}

	subject, email, name := identify(providerToken)
	identity := provider + ":" + subject

	user, err := s.repo.GetUserByIdentity(ctx, identity)
	if errors.Is(err, common.ErrNotFound) {
		user, err = s.createSocial(ctx, identity, email, name)
	}
	if err != nil {
		return "", fmt.Errorf("error resolving social user: %w", err)
	}

	return s.issue(user)
}

// createSocial never links to an existing account by email: the provider
// token is not verified here, so its email claim proves nothing.
func (s *Service) createSocial(ctx context.Context, identity, email, name string) (*User, error) {
	u, err := s.repo.Create(ctx, &User{Name: name, Email: email, Identity: identity})
	if !errors.Is(err, common.ErrAlreadyExists) {
		return u, err
	}

	// A concurrent exchange for the same identity may have won.
	if u, err := s.repo.GetUserByIdentity(ctx, identity); err == nil {
		return u, nil
	}

	return s.repo.Create(ctx, &User{Name: name, Identity: identity})
}

func (s *Service) issue(user *User) (string, error) {
	subject := user.Email
	if subject == "" {
		subject = user.Identity
	}
	token, err := auth.GenerateToken(user.ID, subject, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}

// identify extracts a stable subject from a provider token. Google id_tokens
// are JWTs and carry sub, email and name; anything else is identified by a
// digest of the token.
func identify(token string) (subject, email, name string) {
	var claims struct {
		jwt.RegisteredClaims
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err == nil && claims.Subject != "" {
		return claims.Subject, claims.Email, claims.Name
	}

	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:8]), "", ""
}
