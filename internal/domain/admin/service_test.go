package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"mentorportal/internal/docstore"
	"mentorportal/internal/logger"
	"mentorportal/internal/pkg/password"
)

/* ==================== MOCKS ==================== */

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FindByUsername(ctx context.Context, username string) (*Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Account), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, account *Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func newTestService(repo Repository) *Service {
	s := NewService(repo, password.NewHasher(bcrypt.MinCost), logger.Nop())
	s.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return s
}

/* ==================== CreateAdmin ==================== */

func TestCreateAdmin_Success(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)

	repo.On("FindByUsername", ctx, "root").Return(nil, ErrNotFound)
	repo.On("Create", ctx, mock.MatchedBy(func(a *Account) bool {
		return a.Username == "root" &&
			a.Email == "root@example.com" &&
			a.PasswordHash != "hunter2" &&
			bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("hunter2")) == nil &&
			a.CreatedAt.Equal(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*Account).ID = "doc-1"
	}).Return(nil)

	account, err := newTestService(repo).CreateAdmin(ctx, CreateInput{
		Username: "  Root ",
		Password: "hunter2",
		Email:    " root@example.com ",
	})

	require.NoError(t, err)
	assert.Equal(t, "doc-1", account.ID)
	repo.AssertExpectations(t)
}

func TestCreateAdmin_EmailDefaultsToEmpty(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)

	repo.On("FindByUsername", ctx, "root").Return(nil, ErrNotFound)
	repo.On("Create", ctx, mock.MatchedBy(func(a *Account) bool {
		return a.Email == ""
	})).Return(nil)

	_, err := newTestService(repo).CreateAdmin(ctx, CreateInput{Username: "root", Password: "pw"})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateAdmin_AlreadyExists(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)

	repo.On("FindByUsername", ctx, "root").Return(&Account{ID: "doc-1", Username: "root"}, nil)

	account, err := newTestService(repo).CreateAdmin(ctx, CreateInput{Username: "ROOT", Password: "pw"})

	assert.Nil(t, account)
	assert.ErrorIs(t, err, ErrAdminExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateAdmin_MissingFieldsSkipStore(t *testing.T) {
	cases := []CreateInput{
		{Username: "", Password: "pw"},
		{Username: "   ", Password: "pw"},
		{Username: "root", Password: ""},
	}

	for _, in := range cases {
		repo := new(MockRepository)
		_, err := newTestService(repo).CreateAdmin(context.Background(), in)

		assert.ErrorIs(t, err, ErrMissingCredentials)
		repo.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
	}
}

func TestCreateAdmin_StoreFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	cfgErr := &docstore.ConfigurationError{Missing: []string{docstore.EnvProjectID}}

	repo.On("FindByUsername", ctx, "root").Return(nil, cfgErr)

	_, err := newTestService(repo).CreateAdmin(ctx, CreateInput{Username: "root", Password: "pw"})

	require.Error(t, err)
	assert.True(t, docstore.IsConfigurationError(err))
}

func TestCreateAdmin_CreateFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	boom := errors.New("deadline exceeded")

	repo.On("FindByUsername", ctx, "root").Return(nil, ErrNotFound)
	repo.On("Create", ctx, mock.Anything).Return(boom)

	_, err := newTestService(repo).CreateAdmin(ctx, CreateInput{Username: "root", Password: "pw"})

	assert.ErrorIs(t, err, boom)
}

/* ==================== Login ==================== */

func storedAccount(t *testing.T, username, plain string) *Account {
	t.Helper()
	hash, err := password.NewHasher(bcrypt.MinCost).Hash(plain)
	require.NoError(t, err)
	return &Account{
		ID:           "doc-1",
		Username:     username,
		PasswordHash: hash,
		Email:        "root@example.com",
		CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("FindByUsername", ctx, "root").Return(storedAccount(t, "root", "hunter2"), nil)

	profile, err := newTestService(repo).Login(ctx, " ROOT", "hunter2")

	require.NoError(t, err)
	assert.Equal(t, Profile{
		ID:        "doc-1",
		Username:  "root",
		Email:     "root@example.com",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}, *profile)
}

func TestLogin_UnknownAndWrongPasswordAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("FindByUsername", ctx, "root").Return(storedAccount(t, "root", "hunter2"), nil)
	repo.On("FindByUsername", ctx, "ghost").Return(nil, ErrNotFound)

	svc := newTestService(repo)

	_, wrongPw := svc.Login(ctx, "root", "wrong")
	_, unknown := svc.Login(ctx, "ghost", "hunter2")

	assert.ErrorIs(t, wrongPw, ErrInvalidCredentials)
	assert.ErrorIs(t, unknown, ErrInvalidCredentials)
	assert.Equal(t, wrongPw, unknown)
}

func TestLogin_MissingFields(t *testing.T) {
	repo := new(MockRepository)

	_, err := newTestService(repo).Login(context.Background(), "root", "")

	assert.ErrorIs(t, err, ErrMissingCredentials)
	repo.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
}

func TestLogin_StoreFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	boom := errors.New("unavailable")
	repo.On("FindByUsername", ctx, "root").Return(nil, boom)

	_, err := newTestService(repo).Login(ctx, "root", "pw")

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
