package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fastfood_backend/internal/models"
	"fastfood_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type fakeAuthService struct {
	users map[string]*models.User
}

func newFakeAuthService() *fakeAuthService {
	return &fakeAuthService{users: make(map[string]*models.User)}
}

func (f *fakeAuthService) Signup(_ context.Context, name, email, phone, _ string) (*models.User, string, error) {
	if _, ok := f.users[email]; ok {
		return nil, "", services.ErrDuplicateEmail
	}
	user := &models.User{
		ID:    uint(len(f.users) + 1),
		Name:  name,
		Email: email,
		Phone: phone,
		Role:  string(models.RoleCustomer),
	}
	f.users[email] = user
	return user, "fake-token", nil
}

func (f *fakeAuthService) Login(_ context.Context, email, password string) (*models.User, string, error) {
	user, ok := f.users[email]
	if !ok || password != "correct" {
		return nil, "", services.ErrInvalidCredentials
	}
	return user, "fake-token", nil
}

func (f *fakeAuthService) GetProfile(_ context.Context, userID uint) (*models.User, error) {
	for _, user := range f.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return nil, services.ErrUserNotFound
}

func (f *fakeAuthService) UpdateProfile(_ context.Context, userID uint, name, email, phone string) error {
	user, err := f.GetProfile(context.Background(), userID)
	if err != nil {
		return err
	}
	user.Name, user.Email, user.Phone = name, email, phone
	return nil
}

func newAuthRouter(svc services.AuthService) *gin.Engine {
	handler := NewAuthHandler(svc)
	router := gin.New()
	router.POST("/api/auth/signup", handler.Signup)
	router.POST("/api/auth/login", handler.Login)
	return router
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSignupHandler(t *testing.T) {
	router := newAuthRouter(newFakeAuthService())

	w := postJSON(router, "/api/auth/signup", gin.H{
		"name":     "Asha",
		"email":    "asha@example.com",
		"phone":    "9876543210",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			User  userResponse `json:"user"`
			Token string       `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "asha@example.com", resp.Data.User.Email)
	require.NotEmpty(t, resp.Data.Token)

	// Duplicate signup is a 400, not a 500.
	w = postJSON(router, "/api/auth/signup", gin.H{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "User already exists")
}

func TestSignupHandlerValidatesBody(t *testing.T) {
	router := newAuthRouter(newFakeAuthService())

	w := postJSON(router, "/api/auth/signup", gin.H{"email": "not-an-email"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginHandler(t *testing.T) {
	svc := newFakeAuthService()
	_, _, err := svc.Signup(context.Background(), "Asha", "asha@example.com", "", "correct")
	require.NoError(t, err)

	router := newAuthRouter(svc)

	w := postJSON(router, "/api/auth/login", gin.H{"email": "asha@example.com", "password": "correct"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "fake-token")

	w = postJSON(router, "/api/auth/login", gin.H{"email": "asha@example.com", "password": "wrong"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid credentials")
}
