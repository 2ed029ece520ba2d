package users

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/foodhub/internal/common"
	"github.com/dmitrijs2005/foodhub/internal/server/auth"
	"github.com/dmitrijs2005/foodhub/internal/server/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testSecret = []byte("test-secret")

func newTestService(repo Repository) *Service {
	s := NewService(repo, &config.Config{SecretKey: string(testSecret), TokenValidity: time.Hour})
	s.bcryptCost = bcrypt.MinCost
	return s
}

func subjectOf(t *testing.T, token string) string {
	t.Helper()
	claims := &auth.Claims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)
	return claims.Subject
}

func TestSignUpThenSignIn(t *testing.T) {
	ctx := context.Background()
	s := newTestService(NewMemoryRepository())

	tok, err := s.SignUp(ctx, "Ann", "ann@example.com", "secret")
	require.NoError(t, err)
	uid, err := auth.GetUserIDFromToken(tok, testSecret)
	require.NoError(t, err)
	assert.NotEmpty(t, uid)
	assert.Equal(t, "ann@example.com", subjectOf(t, tok))

	tok2, err := s.SignIn(ctx, "ANN@example.com", "secret")
	require.NoError(t, err)
	uid2, err := auth.GetUserIDFromToken(tok2, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uid, uid2)
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s := newTestService(NewMemoryRepository())

	_, err := s.SignUp(ctx, "Ann", "ann@example.com", "secret")
	require.NoError(t, err)

	_, err = s.SignUp(ctx, "Other Ann", "Ann@Example.com", "x")
	require.ErrorIs(t, err, ErrUserExists)
}

func TestSignIn_InvalidCredentials(t *testing.T) {
	ctx := context.Background()
	s := newTestService(NewMemoryRepository())
	_, err := s.SignUp(ctx, "Ann", "ann@example.com", "secret")
	require.NoError(t, err)

	_, err = s.SignIn(ctx, "ann@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.SignIn(ctx, "nobody@example.com", "secret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignIn_SocialAccountHasNoPassword(t *testing.T) {
	ctx := context.Background()
	s := newTestService(NewMemoryRepository())

	idToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "g-1", "email": "ann@example.com", "name": "Ann",
	}).SignedString([]byte("google"))
	require.NoError(t, err)

	_, err = s.OAuth(ctx, "google", idToken)
	require.NoError(t, err)

	_, err = s.SignIn(ctx, "ann@example.com", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestOAuth_SameIdentitySameUser(t *testing.T) {
	ctx := context.Background()
	s := newTestService(NewMemoryRepository())

	first, err := s.OAuth(ctx, "facebook", "fb-access-token")
	require.NoError(t, err)
	second, err := s.OAuth(ctx, "facebook", "fb-access-token")
	require.NoError(t, err)

	u1, err := auth.GetUserIDFromToken(first, testSecret)
	require.NoError(t, err)
	u2, err := auth.GetUserIDFromToken(second, testSecret)
	require.NoError(t, err)
	assert.Equal(t, u1, u2)
	assert.Contains(t, subjectOf(t, first), "facebook:")

	other, err := s.OAuth(ctx, "google", "fb-access-token")
	require.NoError(t, err)
	u3, err := auth.GetUserIDFromToken(other, testSecret)
	require.NoError(t, err)
	assert.NotEqual(t, u1, u3)
}

func TestOAuth_EmailClaimDoesNotReachPasswordAccount(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	s := newTestService(repo)

	signUpTok, err := s.SignUp(ctx, "Ann", "ann@example.com", "secret")
	require.NoError(t, err)

	// Signed with an arbitrary key; the backend cannot tell it from a real one.
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "attacker", "email": "ANN@example.com",
	}).SignedString([]byte("anything"))
	require.NoError(t, err)

	oauthTok, err := s.OAuth(ctx, "facebook", forged)
	require.NoError(t, err)

	owner, err := auth.GetUserIDFromToken(signUpTok, testSecret)
	require.NoError(t, err)
	social, err := auth.GetUserIDFromToken(oauthTok, testSecret)
	require.NoError(t, err)
	assert.NotEqual(t, owner, social)
	assert.Equal(t, "facebook:attacker", subjectOf(t, oauthTok))

	u, err := repo.GetUserByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, owner, u.ID)
	assert.Empty(t, u.Identity)

	again, err := s.OAuth(ctx, "facebook", forged)
	require.NoError(t, err)
	repeat, err := auth.GetUserIDFromToken(again, testSecret)
	require.NoError(t, err)
	assert.Equal(t, social, repeat)

	_, err = s.SignIn(ctx, "ann@example.com", "secret")
	require.NoError(t, err)
}

func TestSignUp_PasswordBeyondBcryptLimit(t *testing.T) {
	ctx := context.Background()
	s := newTestService(NewMemoryRepository())

	// 40 runes, 80 bytes.
	_, err := s.SignUp(ctx, "Ann", "ann@example.com", strings.Repeat("é", 40))
	require.ErrorIs(t, err, ErrPasswordTooLong)

	_, err = s.SignIn(ctx, "ann@example.com", "x")
	require.ErrorIs(t, err, ErrInvalidCredentials, "no account is created")
}

func TestOAuth_Rejections(t *testing.T) {
	s := newTestService(NewMemoryRepository())

	_, err := s.OAuth(context.Background(), "github", "t")
	require.ErrorIs(t, err, ErrUnknownProvider)

	_, err = s.OAuth(context.Background(), "google", "  ")
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

type brokenRepo struct{}

func (brokenRepo) Create(context.Context, *User) (*User, error) { return nil, errors.New("db down") }
func (brokenRepo) GetUserByEmail(context.Context, string) (*User, error) {
	return nil, errors.New("db down")
}
func (brokenRepo) GetUserByIdentity(context.Context, string) (*User, error) {
	return nil, errors.New("db down")
}

func TestRepositoryErrorsAreWrapped(t *testing.T) {
	s := newTestService(brokenRepo{})
	ctx := context.Background()

	_, err := s.SignUp(ctx, "a", "a@b.c", "p")
	require.ErrorContains(t, err, "db down")
	require.NotErrorIs(t, err, ErrUserExists)

	_, err = s.SignIn(ctx, "a@b.c", "p")
	require.ErrorContains(t, err, "db down")
	require.NotErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.OAuth(ctx, "google", "t")
	require.ErrorContains(t, err, "db down")
}
