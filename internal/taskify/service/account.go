package service

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/taskify/internal/taskify/domain"
	"github.com/aussiebroadwan/taskify/internal/taskify/store"
	"github.com/aussiebroadwan/taskify/pkg/cryptox"
	"github.com/aussiebroadwan/taskify/pkg/idx"
	"github.com/aussiebroadwan/taskify/pkg/jwtx"
	"github.com/aussiebroadwan/taskify/pkg/slogx"
)

// DefaultResetTTL is how long a password reset link stays valid.
const DefaultResetTTL = time.Hour

// Session is the result of a successful register or login.
type Session struct {
	User        domain.User
	AccessToken string
	ExpiresAt   time.Time
}

type AccountService struct {
	Store      store.Store
	KeyManager *jwtx.KeyManager
	Issuer     string
	AccessTTL  time.Duration
	ResetTTL   time.Duration

	// PublicURL prefixes the reset link written to the log.
	PublicURL string
}

var (
	dummyHashOnce sync.Once
	dummyHash     string
)

// burnPasswordCheck spends the same time as a real verification so a login
// for an unknown email is indistinguishable from a wrong password.
func burnPasswordCheck(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = cryptox.HashPassword("taskify-dummy-password")
	})
	_ = cryptox.VerifyPassword(password, dummyHash)
}

// normalizeEmail is the one form emails are stored and looked up in.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account and signs the caller in.
func (s *AccountService) Register(ctx context.Context, email, name, password string) (Session, error) {
	log := slogx.FromContext(ctx)
	email = normalizeEmail(email)

	// 1. Hash the password before touching the store
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return Session{}, err
	}

	// 2. Insert; the unique email index catches duplicates
	now := time.Now().UTC()
	u := domain.User{
		ID:           idx.NewString(),
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Info("registration with existing email")
			return Session{}, conflict("an account with this email already exists")
		}
		log.Error("failed to create user", slog.Any("error", err))
		return Session{}, err
	}

	log.Info("user registered", slog.String("user_id", u.ID))

	// 3. Issue a session token
	return s.issue(u, now)
}

// Login verifies credentials. Every failure reads the same to the caller.
func (s *AccountService) Login(ctx context.Context, email, password string) (Session, error) {
	log := slogx.FromContext(ctx)
	email = normalizeEmail(email)

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			burnPasswordCheck(password)
			log.Info("login for unknown email")
			return Session{}, unauthenticated("invalid email or password")
		}
		log.Error("failed to load user", slog.Any("error", err))
		return Session{}, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Error("stored password hash unusable", slog.String("user_id", u.ID), slog.Any("error", err))
		}
		log.Info("login with wrong password", slog.String("user_id", u.ID))
		return Session{}, unauthenticated("invalid email or password")
	}

	return s.issue(u, time.Now().UTC())
}

func (s *AccountService) issue(u domain.User, now time.Time) (Session, error) {
	ttl := s.AccessTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	claims := jwtx.NewAccessClaims(u.ID, u.Email, u.Name, ttl, s.Issuer, nil, now)
	token, err := s.KeyManager.GetSigner().Sign(claims)
	if err != nil {
		return Session{}, err
	}
	return Session{User: u, AccessToken: token, ExpiresAt: now.Add(ttl)}, nil
}

// Me returns the caller's account.
func (s *AccountService) Me(ctx context.Context, caller domain.Caller) (domain.User, error) {
	if caller.IsZero() {
		return domain.User{}, unauthenticated("authentication required")
	}
	u, err := s.Store.Users().GetUserByID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// token outlived the account
			return domain.User{}, unauthenticated("account no longer exists")
		}
		return domain.User{}, err
	}
	return u, nil
}

// UpdateProfile changes the fields that are non-nil.
func (s *AccountService) UpdateProfile(ctx context.Context, caller domain.Caller, name, avatarURL *string) (domain.User, error) {
	u, err := s.Me(ctx, caller)
	if err != nil {
		return domain.User{}, err
	}

	if name != nil {
		u.Name = strings.TrimSpace(*name)
	}
	if avatarURL != nil {
		u.AvatarURL = strings.TrimSpace(*avatarURL)
	}

	if err := s.Store.Users().UpdateProfile(ctx, u.ID, u.Name, u.AvatarURL); err != nil {
		slogx.FromContext(ctx).Error("failed to update profile", slog.Any("error", err))
		return domain.User{}, err
	}
	return s.Store.Users().GetUserByID(ctx, u.ID)
}

// ForgotPassword creates a reset token when the email is registered. It
// never reports whether it was. Mail delivery is out of scope, so the link
// is logged instead.
func (s *AccountService) ForgotPassword(ctx context.Context, email string) error {
	log := slogx.FromContext(ctx)

	u, err := s.Store.Users().GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("password reset requested for unknown email")
			return nil
		}
		return err
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return err
	}

	ttl := s.ResetTTL
	if ttl <= 0 {
		ttl = DefaultResetTTL
	}
	now := time.Now().UTC()
	reset := domain.PasswordReset{
		TokenHash: cryptox.FingerprintToken(token),
		UserID:    u.ID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
	if err := s.Store.PasswordResets().CreatePasswordReset(ctx, reset); err != nil {
		log.Error("failed to store password reset", slog.Any("error", err))
		return err
	}

	log.Info("password reset link issued",
		slog.String("user_id", u.ID),
		slog.String("link", s.resetLink(token)),
		slog.Time("expires_at", reset.ExpiresAt),
	)
	return nil
}

func (s *AccountService) resetLink(token string) string {
	base := strings.TrimRight(s.PublicURL, "/")
	return base + "/reset-password?token=" + url.QueryEscape(token)
}

// ResetPassword consumes a reset token and sets a new password. Other
// outstanding tokens for the same user are discarded too.
func (s *AccountService) ResetPassword(ctx context.Context, token, newPassword string) error {
	log := slogx.FromContext(ctx)
	fp := cryptox.FingerprintToken(token)

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. Look the token up
		reset, err := tx.PasswordResets().GetPasswordReset(ctx, fp)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return invalidState("reset token is invalid or has expired")
			}
			return err
		}
		if time.Now().UTC().After(reset.ExpiresAt) {
			return invalidState("reset token is invalid or has expired")
		}

		// 2. Consume it; a concurrent reset loses here
		if err := tx.PasswordResets().DeletePasswordReset(ctx, fp); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return invalidState("reset token is invalid or has expired")
			}
			return err
		}

		// 3. Store the new hash and drop any other tokens
		if err := tx.Users().UpdatePasswordHash(ctx, reset.UserID, hash); err != nil {
			return err
		}
		if err := tx.PasswordResets().DeleteUserPasswordResets(ctx, reset.UserID); err != nil {
			return err
		}

		log.Info("password reset", slog.String("user_id", reset.UserID))
		return nil
	})
}
