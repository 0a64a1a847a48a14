package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"simplewallet/internal/errors"
	"simplewallet/internal/models"
	"simplewallet/internal/utils"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestRegister(t *testing.T) {
	repo := new(MockUserRepo)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)

	user, token, err := svc.Register(context.Background(), "alice@example.com", "s3cret-pass", "Alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEmpty(t, token)

	// The stored password is a bcrypt hash, never the plaintext.
	assert.NotEqual(t, "s3cret-pass", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret-pass")))

	claims, err := utils.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	repo.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := new(MockUserRepo)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(errors.ErrEmailExists)

	_, _, err := svc.Register(context.Background(), "alice@example.com", "s3cret-pass", "Alice")
	assert.ErrorIs(t, err, errors.ErrEmailExists)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := models.NewUser("alice@example.com", string(hash), "Alice")

	tests := []struct {
		name     string
		email    string
		password string
		setup    func(*MockUserRepo)
		wantErr  error
	}{
		{
			name:     "successful login",
			email:    "alice@example.com",
			password: "s3cret-pass",
			setup: func(m *MockUserRepo) {
				m.On("GetByEmail", mock.Anything, "alice@example.com").Return(user, nil)
			},
		},
		{
			name:     "wrong password",
			email:    "alice@example.com",
			password: "wrong",
			setup: func(m *MockUserRepo) {
				m.On("GetByEmail", mock.Anything, "alice@example.com").Return(user, nil)
			},
			wantErr: errors.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "bob@example.com",
			password: "s3cret-pass",
			setup: func(m *MockUserRepo) {
				m.On("GetByEmail", mock.Anything, "bob@example.com").Return(nil, errors.ErrUserNotFound)
			},
			wantErr: errors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepo)
			tt.setup(repo)
			svc := NewService(repo)

			got, token, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user.ID, got.ID)
			assert.NotEmpty(t, token)
		})
	}
}
