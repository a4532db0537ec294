package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/opendirectory/providerdir/internal/database"
	"github.com/opendirectory/providerdir/internal/lib/job"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt work factor applied to new passwords.
const PasswordHashCost = 10

// ErrInvalidCredentials is returned for a wrong password and for an unknown
// username alike; callers cannot distinguish the two.
var ErrInvalidCredentials = errors.New("invalid username or password")

// CredentialStore is the single-row hash lookup the verifier depends on.
type CredentialStore interface {
	GetPasswordHash(ctx context.Context, username string) (string, error)
}

// UserStore persists new accounts.
type UserStore interface {
	Create(ctx context.Context, username, passwordHash, firstName, lastName, email, occupation, roleType string) (database.Rows, error)
}

// TaskEnqueuer pushes background tasks; satisfied by *asynq.Client.
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// LoginResult is the login response body. It never carries the hash.
type LoginResult struct {
	Exists   bool   `json:"exists"`
	Username string `json:"username"`
}

// AuthService implements credential verification and account creation.
// No session or token is issued on success; callers receive only the
// confirmation payload.
type AuthService struct {
	logger      *zerolog.Logger
	credentials CredentialStore
	users       UserStore
	jobs        TaskEnqueuer
}

func NewAuthService(logger *zerolog.Logger, credentials CredentialStore, users UserStore, jobs TaskEnqueuer) *AuthService {
	return &AuthService{
		logger:      logger,
		credentials: credentials,
		users:       users,
		jobs:        jobs,
	}
}

// Verify checks username/password against the stored bcrypt hash.
//
// Outcomes: a match returns the confirmation payload; a mismatch or an
// unknown username returns ErrInvalidCredentials; a lookup fault is
// returned as-is for the database error mapping. The comparison blocks on
// bcrypt; its result is never assumed.
func (s *AuthService) Verify(ctx context.Context, username, password string) (*LoginResult, error) {
	hash, err := s.credentials.GetPasswordHash(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("credential lookup: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &LoginResult{
		Exists:   true,
		Username: username,
	}, nil
}

// CreateUserParams carries the account creation fields. Password is the
// plaintext; it is hashed here and nowhere else.
type CreateUserParams struct {
	Username   string
	Password   string
	FirstName  string
	LastName   string
	Email      string
	Occupation string
	RoleType   string
}

// CreateUser hashes the password and persists the account via the stored
// routine. Uniqueness is the database's responsibility; a duplicate
// username comes back as a unique violation. On success a welcome email
// task is enqueued best-effort — a queue failure is logged, never surfaced.
func (s *AuthService) CreateUser(ctx context.Context, p CreateUserParams) (database.Rows, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(p.Password), PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	rows, err := s.users.Create(ctx, p.Username, string(hashed),
		p.FirstName, p.LastName, p.Email, p.Occupation, p.RoleType)
	if err != nil {
		return nil, err
	}

	if s.jobs != nil {
		task, err := job.NewWelcomeEmailTask(p.Email, p.FirstName)
		if err == nil {
			_, err = s.jobs.Enqueue(task)
		}
		if err != nil {
			s.logger.Error().Err(err).
				Str("username", p.Username).
				Msg("failed to enqueue welcome email")
		}
	}

	return rows, nil
}
