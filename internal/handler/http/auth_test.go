package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-class-reports/internal/app"
	"github.com/MKhiriev/go-class-reports/internal/service"
	"github.com/MKhiriev/go-class-reports/internal/store"
	"github.com/MKhiriev/go-class-reports/internal/validators"
	"github.com/MKhiriev/go-class-reports/models"
)

func TestRegister(t *testing.T) {
	body := `{"username":"alice","email":"alice@example.com","password":"secret123"}`
	input := validators.Input{"username": "alice", "email": "alice@example.com", "password": "secret123"}

	t.Run("created", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.auth.EXPECT().RegisterUser(gomock.Any(), input).Return(models.User{UserID: 7, Username: "alice"}, nil)

		rec := doRequest(t, h.Init(), http.MethodPost, "/users/register", body, nil)

		require.Equal(t, http.StatusCreated, rec.Code)
		data := decodeResponse(t, rec)
		assert.True(t, data.Success)
		assert.Equal(t, app.MsgUserRegistered, data.Message)
		assert.Equal(t, int64(7), data.UserID)
		assert.Empty(t, data.Errors)
	})

	t.Run("validation failed", func(t *testing.T) {
		h, m := newTestHandler(t)
		vErr := &validators.ValidationError{
			Entity: "user",
			Report: validators.Report{Errors: []validators.FieldError{
				{Field: "email", Rule: "email", Message: "E-mail is invalid!"},
			}},
		}
		m.auth.EXPECT().RegisterUser(gomock.Any(), input).Return(models.User{}, vErr)

		rec := doRequest(t, h.Init(), http.MethodPost, "/users/register", body, nil)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		data := decodeResponse(t, rec)
		assert.False(t, data.Success)
		assert.Equal(t, app.MsgValidationFailed, data.Message)
		assert.Equal(t, []string{"E-mail is invalid!"}, data.Errors)
	})

	t.Run("duplicate user", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.auth.EXPECT().RegisterUser(gomock.Any(), input).Return(models.User{}, store.ErrUserAlreadyExists)

		rec := doRequest(t, h.Init(), http.MethodPost, "/users/register", body, nil)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, app.MsgUserAlreadyExists, decodeResponse(t, rec).Message)
	})

	t.Run("body is not an object", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rec := doRequest(t, h.Init(), http.MethodPost, "/users/register", `["alice"]`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, app.MsgInvalidDataProvided, decodeResponse(t, rec).Message)
	})
}

func TestLogin(t *testing.T) {
	body := `{"username":"alice","password":"secret123"}`
	input := validators.Input{"username": "alice", "password": "secret123"}
	user := models.User{UserID: 7, Username: "alice", RoleID: employeeRoleID}

	t.Run("token in header", func(t *testing.T) {
		h, m := newTestHandler(t)
		gomock.InOrder(
			m.auth.EXPECT().Login(gomock.Any(), input).Return(user, nil),
			m.auth.EXPECT().CreateToken(gomock.Any(), user).Return(models.Token{SignedString: "signed.jwt.token"}, nil),
		)

		rec := doRequest(t, h.Init(), http.MethodPost, "/users/login", body, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "signed.jwt.token", rec.Header().Get(authTokenHeader))
		data := decodeResponse(t, rec)
		assert.True(t, data.Success)
		assert.Equal(t, app.MsgUserLoggedIn, data.Message)
		assert.Equal(t, int64(7), data.UserID)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.auth.EXPECT().Login(gomock.Any(), input).Return(models.User{}, service.ErrInvalidCredentials)

		rec := doRequest(t, h.Init(), http.MethodPost, "/users/login", body, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, rec.Header().Get(authTokenHeader))
		assert.Equal(t, app.MsgInvalidLoginPassword, decodeResponse(t, rec).Message)
	})

	t.Run("token creation failed", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.auth.EXPECT().Login(gomock.Any(), input).Return(user, nil)
		m.auth.EXPECT().CreateToken(gomock.Any(), user).
			Return(models.Token{}, errors.Join(service.ErrTokenCreationFailed, errors.New("sign")))

		rec := doRequest(t, h.Init(), http.MethodPost, "/users/login", body, nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, app.MsgInternalServerError, decodeResponse(t, rec).Message)
	})
}
