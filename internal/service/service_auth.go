package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shorturl-platform/userservice/internal/logger"
	"github.com/shorturl-platform/userservice/internal/secrets"
	"github.com/shorturl-platform/userservice/internal/store"
	"github.com/shorturl-platform/userservice/internal/token"
	"github.com/shorturl-platform/userservice/internal/utils"
	"github.com/shorturl-platform/userservice/models"
)

// Display attributes of the seeded administrator account.
const (
	adminName  = "Platform Administrator"
	adminEmail = "ops@shorturl.example"
)

// authService is the concrete implementation of AuthService. All state is
// read-only after construction; the store is the only shared mutable
// collaborator, and its per-record version counter is the sole
// mutual-exclusion mechanism between concurrent requests.
type authService struct {
	users       store.UserStore
	initializer store.Initializer
	secrets     secrets.Provider
	tokens      *token.Manager
	logger      *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given collaborators.
func NewAuthService(
	users store.UserStore,
	initializer store.Initializer,
	secretsProvider secrets.Provider,
	tokens *token.Manager,
	logger *logger.Logger,
) AuthService {
	logger.Debug().Msg("creating auth service")
	return &authService{
		users:       users,
		initializer: initializer,
		secrets:     secretsProvider,
		tokens:      tokens,
		logger:      logger,
	}
}

// Signup validates the request, hashes the password, and inserts a fresh
// USER record. A conflicting concurrent signup for the same username loses
// with store.ErrUserAlreadyExists; that outcome is terminal, not a race to
// resolve, so no retry happens here.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) error {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(req.Username) == "" {
		return ErrMissingUsername
	}
	if strings.TrimSpace(req.Password) == "" {
		return ErrMissingPassword
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	user := models.NewUser(req.Username, hash, models.RoleUser, req.Name, req.Email, time.Now())
	if err := a.users.InsertIfAbsent(ctx, user); err != nil {
		if !errors.Is(err, store.ErrUserAlreadyExists) {
			log.Err(err).Str("username", req.Username).Msg("signup insert failed")
		}
		return err
	}

	log.Info().Str("username", req.Username).Msg("user account created")
	return nil
}

// Login verifies the password against the stored hash and stamps lastLogin
// through the bounded read-modify-write protocol. The password is checked on
// the first read only: a retry after a version conflict re-reads the record
// but does not re-verify, since the lastLogin mutation is independent of
// password correctness.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, string, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(req.Username) == "" {
		return models.User{}, "", ErrMissingUsername
	}
	if strings.TrimSpace(req.Password) == "" {
		return models.User{}, "", ErrMissingPassword
	}

	verified := false
	updated, err := store.UpdateWithRetry(ctx, a.users, req.Username, func(user *models.User) error {
		if !verified {
			if !utils.PasswordMatches(req.Password, user.Password) {
				return ErrWrongPassword
			}
			verified = true
		}
		user.LastLogin = time.Now().Format(models.TimestampLayout)
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrWrongPassword) && !errors.Is(err, store.ErrUserNotFound) {
			log.Err(err).Str("username", req.Username).Msg("login update failed")
		}
		return models.User{}, "", err
	}

	signed, err := a.tokens.Issue(updated.Username, updated.Role)
	if err != nil {
		return models.User{}, "", fmt.Errorf("error issuing token: %w", err)
	}

	log.Info().Str("username", updated.Username).Msg("user logged in")
	return updated.Sanitized(), signed, nil
}

// AdminToken mints a bearer token for the administrator account without
// touching the user table. It exists so that operators and sibling services
// can obtain an ADMIN credential from the secrets-held identity alone.
func (a *authService) AdminToken(ctx context.Context) (string, error) {
	adminUsername, err := a.secrets.AdminUsername(ctx)
	if err != nil {
		return "", fmt.Errorf("error reading admin username: %w", err)
	}

	return a.tokens.Issue(adminUsername, models.RoleAdmin)
}

func (a *authService) GetUser(ctx context.Context, caller models.Identity, username string) (models.User, error) {
	if err := requireSelfOrAdmin(caller, username); err != nil {
		return models.User{}, err
	}

	user, err := a.users.Get(ctx, username)
	if err != nil {
		return models.User{}, err
	}

	return user.Sanitized(), nil
}

func (a *authService) GetAllUsers(ctx context.Context, caller models.Identity) ([]models.User, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	users, err := a.users.ScanAll(ctx)
	if err != nil {
		return nil, err
	}

	sanitized := make([]models.User, 0, len(users))
	for _, user := range users {
		sanitized = append(sanitized, user.Sanitized())
	}
	return sanitized, nil
}

// ChangePassword verifies the old password on the first read and writes the
// new hash through the bounded read-modify-write protocol. When the account
// is the administrator's, the new plaintext is also written back to the
// secrets store so that a future bootstrap seeds a matching credential.
func (a *authService) ChangePassword(ctx context.Context, caller models.Identity, req models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(req.Username) == "" {
		return ErrMissingUsername
	}
	if err := requireSelf(caller, req.Username); err != nil {
		return err
	}
	if strings.TrimSpace(req.OldPassword) == "" {
		return ErrMissingOldPassword
	}
	if strings.TrimSpace(req.NewPassword) == "" {
		return ErrMissingNewPassword
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	verified := false
	updated, err := store.UpdateWithRetry(ctx, a.users, req.Username, func(user *models.User) error {
		if !verified {
			if !utils.PasswordMatches(req.OldPassword, user.Password) {
				return ErrWrongPassword
			}
			verified = true
		}
		user.Password = hash
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrWrongPassword) && !errors.Is(err, store.ErrUserNotFound) {
			log.Err(err).Str("username", req.Username).Msg("password change update failed")
		}
		return err
	}

	if updated.Role == models.RoleAdmin {
		if err := a.secrets.SetAdminPassword(ctx, req.NewPassword); err != nil {
			log.Err(err).Msg("error propagating admin password to secrets store")
			return fmt.Errorf("error propagating admin password: %w", err)
		}
	}

	log.Info().Str("username", req.Username).Msg("password changed")
	return nil
}

func (a *authService) DeleteUser(ctx context.Context, caller models.Identity, username string) error {
	log := logger.FromContext(ctx)

	if err := requireSelfOrAdmin(caller, username); err != nil {
		return err
	}

	user, err := a.users.Get(ctx, username)
	if err != nil {
		return err
	}

	if err := a.users.Delete(ctx, user); err != nil {
		return err
	}

	log.Info().Str("username", username).Msg("user account deleted")
	return nil
}

// DeleteAllUsers removes every record except the administrator's. A record
// that disappears between the scan and its delete is treated as already
// done.
func (a *authService) DeleteAllUsers(ctx context.Context, caller models.Identity) error {
	log := logger.FromContext(ctx)

	if err := requireAdmin(caller); err != nil {
		return err
	}

	users, err := a.users.ScanAll(ctx)
	if err != nil {
		return err
	}

	deleted := 0
	for _, user := range users {
		if user.Role == models.RoleAdmin {
			continue
		}
		if err := a.users.Delete(ctx, user); err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				continue
			}
			return err
		}
		deleted++
	}

	log.Info().Int("deleted", deleted).Msg("bulk user deletion completed")
	return nil
}

// InitializeRepository recreates the backing table and seeds the single
// ADMIN record from the secrets-held credentials. This is the one operation
// that runs synchronously to completion: it may be destroying the table
// every other operation depends on.
func (a *authService) InitializeRepository(ctx context.Context) error {
	adminUsername, err := a.secrets.AdminUsername(ctx)
	if err != nil {
		return fmt.Errorf("error reading admin username: %w", err)
	}
	adminPassword, err := a.secrets.AdminPassword(ctx)
	if err != nil {
		return fmt.Errorf("error reading admin password: %w", err)
	}

	if err := a.initializer.Initialize(ctx); err != nil {
		return fmt.Errorf("error initializing user repository: %w", err)
	}

	hash, err := utils.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("error hashing admin password: %w", err)
	}

	admin := models.NewUser(adminUsername, hash, models.RoleAdmin, adminName, adminEmail, time.Now())
	if err := a.users.InsertIfAbsent(ctx, admin); err != nil {
		return fmt.Errorf("error seeding admin account: %w", err)
	}

	a.logger.Info().Str("username", adminUsername).Msg("user repository initialized and admin seeded")
	return nil
}

func (a *authService) SetSimulateExpiredToken(ctx context.Context, caller models.Identity, enabled bool) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}

	a.tokens.SetSimulateExpired(enabled)
	logger.FromContext(ctx).Info().Bool("enabled", enabled).Msg("token expiry simulation toggled")
	return nil
}
