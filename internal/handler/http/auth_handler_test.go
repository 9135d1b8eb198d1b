package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	handler "github.com/mikiasgoitom/carkenya/internal/handler/http"
	dto "github.com/mikiasgoitom/carkenya/internal/handler/http/dto"
	"github.com/mikiasgoitom/carkenya/internal/handler/http/middleware"
	mocks "github.com/mikiasgoitom/carkenya/internal/handler/http/mocks"
	"github.com/mikiasgoitom/carkenya/internal/infrastructure/validator"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()
	os.Exit(m.Run())
}

func setupAuthRouter(mockUsecase *mocks.MockAuthUsecase) *gin.Engine {
	h := handler.NewAuthHandler(mockUsecase)
	r := gin.New()
	r.Use(middleware.AuthMiddleWare(mockUsecase))
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	authed := r.Group("/")
	authed.Use(middleware.RequireAuth())
	authed.POST("/logout", h.Logout)
	authed.GET("/me", h.Me)
	return r
}

func doJSON(r http.Handler, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewBuffer(b)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req, _ := http.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRegister(t *testing.T) {
	r := setupAuthRouter(mocks.NewMockAuthUsecase())
	w := doJSON(r, "POST", "/register", "", dto.RegisterRequest{
		Email:    "test@example.com",
		Password: "secret1",
		Name:     "Test User",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "token_mock")
	assert.NotContains(t, w.Body.String(), "password")
}

func TestRegister_Conflict(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	mockUsecase.ShouldFailRegister = true
	r := setupAuthRouter(mockUsecase)
	w := doJSON(r, "POST", "/register", "", dto.RegisterRequest{
		Email:    "test@example.com",
		Password: "secret1",
		Name:     "Test User",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "CONFLICT", resp.Code)
	assert.Equal(t, "email already registered", resp.Error)
}

func TestRegister_Validation(t *testing.T) {
	r := setupAuthRouter(mocks.NewMockAuthUsecase())
	w := doJSON(r, "POST", "/register", "", dto.RegisterRequest{
		Email:    "not-an-email",
		Password: "123",
		Name:     "X",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "INVALID_INPUT", resp.Code)
	assert.Contains(t, resp.Error, "email must be a valid email address")
	assert.Contains(t, resp.Error, "password must be at least 6 characters long")
	assert.Contains(t, resp.Error, "name must be at least 2 characters long")
}

func TestLogin(t *testing.T) {
	r := setupAuthRouter(mocks.NewMockAuthUsecase())
	w := doJSON(r, "POST", "/login", "", dto.LoginRequest{Email: "test@example.com", Password: "secret1"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "token_mock")
}

func TestLogin_Fail(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	mockUsecase.ShouldFailLogin = true
	r := setupAuthRouter(mockUsecase)
	w := doJSON(r, "POST", "/login", "", dto.LoginRequest{Email: "test@example.com", Password: "secret1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "UNAUTHENTICATED", decodeError(t, w).Code)
}

func TestLogin_Deactivated(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	mockUsecase.DeactivatedLogin = true
	r := setupAuthRouter(mockUsecase)
	w := doJSON(r, "POST", "/login", "", dto.LoginRequest{Email: "test@example.com", Password: "secret1"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", decodeError(t, w).Code)
}

func TestLogout(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	r := setupAuthRouter(mockUsecase)

	w := doJSON(r, "POST", "/logout", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, "POST", "/logout", "token_unknown", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, "POST", "/logout", "token_mock", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	assert.Equal(t, []string{"token_mock"}, mockUsecase.LoggedOutTokens)
}

func TestMe(t *testing.T) {
	r := setupAuthRouter(mocks.NewMockAuthUsecase())
	w := doJSON(r, "GET", "/me", "token_mock", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Test User")
}

func TestAuthMiddleware_InternalError(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	mockUsecase.ShouldFailAuthenticate = true
	r := setupAuthRouter(mockUsecase)
	w := doJSON(r, "GET", "/me", "token_mock", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL", decodeError(t, w).Code)
}
