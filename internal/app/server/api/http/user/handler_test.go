package user

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"estoque/internal/domain/session"
	"estoque/internal/domain/user"
	"estoque/internal/format"
	"estoque/internal/i18n"
	"estoque/internal/infrastructure/storage"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, email, password string) error {
	args := m.Called(ctx, email, password)
	return args.Error(0)
}

func (m *MockService) Authenticate(ctx context.Context, email, password string) (session.Session, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(session.Session), args.Error(1)
}

func (m *MockService) CurrentUser(ctx context.Context) (string, bool, error) {
	args := m.Called(ctx)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockService) SignUp(ctx context.Context, email, password, confirm string) error {
	args := m.Called(ctx, email, password, confirm)
	return args.Error(0)
}

func (m *MockService) Login(ctx context.Context, email, password string) (session.Session, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(session.Session), args.Error(1)
}

func newTestHandler(t *testing.T) (*Handler, *MockService) {
	t.Helper()
	localizer, err := i18n.New(format.LocalePT)
	require.NoError(t, err)

	svc := new(MockService)
	return NewHandler(svc, localizer, slog.Default(), nil), svc
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func TestHandler_Register(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h, svc := newTestHandler(t)
		svc.On("SignUp", mock.Anything, "a@b.com", "pw1", "pw1").Return(nil)

		input := &registerInput{}
		input.Body = registerRequest{Email: "a@b.com", Password: "pw1", ConfirmPassword: "pw1"}

		resp, err := h.register(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, "Ok", resp.Body.Status)
		assert.Equal(t, "a@b.com", resp.Body.Email)
		assert.Equal(t, "Registro realizado com sucesso!", resp.Body.Message)
	})

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "Mismatch", err: user.ErrPasswordMismatch, status: http.StatusUnprocessableEntity},
		{name: "Duplicate", err: user.ErrAlreadyRegistered, status: http.StatusConflict},
		{name: "Storage", err: storage.Wrap("set", "users", assert.AnError), status: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc := newTestHandler(t)
			svc.On("SignUp", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(tt.err)

			_, err := h.register(context.Background(), &registerInput{})
			assert.Equal(t, tt.status, statusOf(t, err))
		})
	}
}

func TestHandler_Login(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h, svc := newTestHandler(t)
		svc.On("Login", mock.Anything, "a@b.com", "pw1").Return(session.New("a@b.com"), nil)

		input := &loginInput{Body: loginRequest{Email: "a@b.com", Password: "pw1"}}
		resp, err := h.login(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", resp.Body.Email)
	})

	t.Run("InvalidCredentials", func(t *testing.T) {
		h, svc := newTestHandler(t)
		svc.On("Login", mock.Anything, "a@b.com", "bad").Return(session.Session{}, user.ErrInvalidCredentials)

		input := &loginInput{Body: loginRequest{Email: "a@b.com", Password: "bad"}}
		_, err := h.login(context.Background(), input)
		assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
		assert.Contains(t, err.Error(), "Login falhou! Verifique suas credenciais.")
	})
}

func TestHandler_Current(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.On("CurrentUser", mock.Anything).Return("", false, nil).Once()

	resp, err := h.current(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, resp.Body.LoggedIn)

	svc.On("CurrentUser", mock.Anything).Return("a@b.com", true, nil).Once()
	resp, err = h.current(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, resp.Body.LoggedIn)
	assert.Equal(t, "a@b.com", resp.Body.Email)
}
