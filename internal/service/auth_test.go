package service

import (
	"context"
	"errors"
	"testing"

	"github.com/opendirectory/providerdir/internal/database"
	"github.com/opendirectory/providerdir/internal/lib/job"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

type fakeCredentialStore struct {
	hash string
	err  error
}

func (f *fakeCredentialStore) GetPasswordHash(ctx context.Context, username string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.hash, nil
}

type fakeUserStore struct {
	gotUsername string
	gotHash     string
	err         error
}

func (f *fakeUserStore) Create(ctx context.Context, username, passwordHash, firstName, lastName, email, occupation, roleType string) (database.Rows, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.gotUsername = username
	f.gotHash = passwordHash
	return database.Rows{{"person_id": username}}, nil
}

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{}, nil
}

func newTestAuthService(creds CredentialStore, users UserStore, jobs TaskEnqueuer) *AuthService {
	nop := zerolog.Nop()
	return NewAuthService(&nop, creds, users, jobs)
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	return string(hash)
}

func TestVerifyMatch(t *testing.T) {
	creds := &fakeCredentialStore{hash: mustHash(t, "s3cret-pass")}
	svc := newTestAuthService(creds, &fakeUserStore{}, nil)

	result, err := svc.Verify(context.Background(), "jdoe", "s3cret-pass")
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	if !result.Exists {
		t.Error("expected exists=true for a matching password")
	}
	if result.Username != "jdoe" {
		t.Errorf("username = %q, want %q", result.Username, "jdoe")
	}
}

func TestVerifyMismatch(t *testing.T) {
	creds := &fakeCredentialStore{hash: mustHash(t, "s3cret-pass")}
	svc := newTestAuthService(creds, &fakeUserStore{}, nil)

	_, err := svc.Verify(context.Background(), "jdoe", "wrong-pass")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestVerifyUnknownUsername(t *testing.T) {
	// An unknown username must be indistinguishable from a wrong password.
	creds := &fakeCredentialStore{err: pgx.ErrNoRows}
	svc := newTestAuthService(creds, &fakeUserStore{}, nil)

	_, err := svc.Verify(context.Background(), "nobody", "whatever")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestVerifyLookupFault(t *testing.T) {
	lookupErr := errors.New("connection reset")
	creds := &fakeCredentialStore{err: lookupErr}
	svc := newTestAuthService(creds, &fakeUserStore{}, nil)

	_, err := svc.Verify(context.Background(), "jdoe", "s3cret-pass")
	if errors.Is(err, ErrInvalidCredentials) {
		t.Fatal("a lookup fault must not masquerade as bad credentials")
	}
	if !errors.Is(err, lookupErr) {
		t.Fatalf("err = %v, want wrapped %v", err, lookupErr)
	}
}

func TestCreateUserHashesPassword(t *testing.T) {
	users := &fakeUserStore{}
	svc := newTestAuthService(&fakeCredentialStore{}, users, nil)

	_, err := svc.CreateUser(context.Background(), CreateUserParams{
		Username:  "jdoe",
		Password:  "s3cret-pass",
		FirstName: "Jo",
		LastName:  "Doe",
		Email:     "jo@example.com",
		RoleType:  "provider",
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	if users.gotHash == "s3cret-pass" {
		t.Fatal("plaintext password reached the store")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(users.gotHash), []byte("s3cret-pass")); err != nil {
		t.Errorf("stored hash does not verify against the password: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(users.gotHash))
	if err != nil {
		t.Fatalf("reading hash cost: %v", err)
	}
	if cost != PasswordHashCost {
		t.Errorf("hash cost = %d, want %d", cost, PasswordHashCost)
	}
}

func TestCreateUserEnqueuesWelcomeEmail(t *testing.T) {
	jobs := &fakeEnqueuer{}
	svc := newTestAuthService(&fakeCredentialStore{}, &fakeUserStore{}, jobs)

	_, err := svc.CreateUser(context.Background(), CreateUserParams{
		Username:  "jdoe",
		Password:  "s3cret-pass",
		FirstName: "Jo",
		LastName:  "Doe",
		Email:     "jo@example.com",
		RoleType:  "provider",
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	if len(jobs.tasks) != 1 {
		t.Fatalf("enqueued %d tasks, want 1", len(jobs.tasks))
	}
	if got := jobs.tasks[0].Type(); got != job.TaskWelcome {
		t.Errorf("task type = %q, want %q", got, job.TaskWelcome)
	}
}

func TestCreateUserEnqueueFailureIsNotFatal(t *testing.T) {
	jobs := &fakeEnqueuer{err: errors.New("redis down")}
	svc := newTestAuthService(&fakeCredentialStore{}, &fakeUserStore{}, jobs)

	rows, err := svc.CreateUser(context.Background(), CreateUserParams{
		Username:  "jdoe",
		Password:  "s3cret-pass",
		FirstName: "Jo",
		LastName:  "Doe",
		Email:     "jo@example.com",
		RoleType:  "provider",
	})
	if err != nil {
		t.Fatalf("CreateUser failed on queue error: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("rows = %d, want 1", len(rows))
	}
}

func TestCreateUserStoreError(t *testing.T) {
	storeErr := errors.New("duplicate key")
	users := &fakeUserStore{err: storeErr}
	jobs := &fakeEnqueuer{}
	svc := newTestAuthService(&fakeCredentialStore{}, users, jobs)

	_, err := svc.CreateUser(context.Background(), CreateUserParams{
		Username: "jdoe",
		Password: "s3cret-pass",
	})
	if !errors.Is(err, storeErr) {
		t.Fatalf("err = %v, want %v", err, storeErr)
	}
	if len(jobs.tasks) != 0 {
		t.Error("no welcome email should be enqueued when the insert fails")
	}
}
