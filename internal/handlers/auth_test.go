package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/elisoft-engineer/todo-api/internal/service"
)

// =============================================================================
// Mock Implementations
// =============================================================================

type mockAuthService struct {
	loginFunc        func(ctx context.Context, email, password string) (*service.LoginResponse, error)
	logoutFunc       func(ctx context.Context, token string) error
	refreshTokenFunc func(ctx context.Context, refreshToken string) (*service.LoginResponse, error)
	verifyTokenFunc  func(token string) (*service.Claims, error)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*service.LoginResponse, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, email, password)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	if m.logoutFunc != nil {
		return m.logoutFunc(ctx, token)
	}
	return errors.New("not implemented")
}

func (m *mockAuthService) RefreshToken(ctx context.Context, refreshToken string) (*service.LoginResponse, error) {
	if m.refreshTokenFunc != nil {
		return m.refreshTokenFunc(ctx, refreshToken)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) VerifyToken(token string) (*service.Claims, error) {
	if m.verifyTokenFunc != nil {
		return m.verifyTokenFunc(token)
	}
	return nil, errors.New("not implemented")
}

// =============================================================================
// Login Handler Tests
// =============================================================================

func TestLogin_Success(t *testing.T) {
	userID := uuid.New()
	handler := NewAuthHandler(&mockAuthService{
		loginFunc: func(ctx context.Context, email, password string) (*service.LoginResponse, error) {
			return &service.LoginResponse{
				AccessToken:  "access_token_123",
				RefreshToken: "refresh_token_456",
				ExpiresIn:    900,
				UserID:       userID,
				Email:        "user@example.com",
				FirstName:    "Test",
				LastName:     "User",
				IsActive:     true,
			}, nil
		},
	})
	w, c := createTestContext("POST", "/api/v1/auth/login", LoginRequest{
		Email:    "user@example.com",
		Password: "password123",
	})

	handler.Login(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var response service.LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if response.AccessToken != "access_token_123" {
		t.Errorf("AccessToken = %q", response.AccessToken)
	}
	if response.ExpiresIn != 900 {
		t.Errorf("ExpiresIn = %d, want 900", response.ExpiresIn)
	}
	if response.UserID != userID {
		t.Errorf("UserID = %s, want %s", response.UserID, userID)
	}
	if response.Email != "user@example.com" {
		t.Errorf("Email = %q", response.Email)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	handler := NewAuthHandler(&mockAuthService{
		loginFunc: func(ctx context.Context, email, password string) (*service.LoginResponse, error) {
			return nil, service.ErrInvalidCredentials
		},
	})
	w, c := createTestContext("POST", "/api/v1/auth/login", LoginRequest{
		Email:    "user@example.com",
		Password: "wrongpassword",
	})

	handler.Login(c)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestLogin_InactiveAccount(t *testing.T) {
	handler := NewAuthHandler(&mockAuthService{
		loginFunc: func(ctx context.Context, email, password string) (*service.LoginResponse, error) {
			return nil, service.ErrInactiveAccount
		},
	})
	w, c := createTestContext("POST", "/api/v1/auth/login", LoginRequest{
		Email:    "disabled@example.com",
		Password: "password123",
	})

	handler.Login(c)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestLogin_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body map[string]string
	}{
		{name: "missing email", body: map[string]string{"password": "password123"}},
		{name: "missing password", body: map[string]string{"email": "user@example.com"}},
	}

	handler := NewAuthHandler(&mockAuthService{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, c := createTestContext("POST", "/api/v1/auth/login", tt.body)
			handler.Login(c)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
			}
		})
	}
}

// =============================================================================
// Refresh Handler Tests
// =============================================================================

func TestRefresh_InvalidToken(t *testing.T) {
	handler := NewAuthHandler(&mockAuthService{
		refreshTokenFunc: func(ctx context.Context, refreshToken string) (*service.LoginResponse, error) {
			return nil, service.ErrInvalidToken
		},
	})
	w, c := createTestContext("POST", "/api/v1/auth/refresh", RefreshRequest{
		RefreshToken: "stale_token",
	})

	handler.Refresh(c)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestRefresh_Success(t *testing.T) {
	handler := NewAuthHandler(&mockAuthService{
		refreshTokenFunc: func(ctx context.Context, refreshToken string) (*service.LoginResponse, error) {
			return &service.LoginResponse{
				AccessToken:  "new_access",
				RefreshToken: "new_refresh",
				ExpiresIn:    900,
			}, nil
		},
	})
	w, c := createTestContext("POST", "/api/v1/auth/refresh", RefreshRequest{
		RefreshToken: "valid_refresh",
	})

	handler.Refresh(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var response service.LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if response.RefreshToken != "new_refresh" {
		t.Errorf("RefreshToken = %q, want rotated token", response.RefreshToken)
	}
}

// =============================================================================
// Verify / Logout Handler Tests
// =============================================================================

func TestVerify(t *testing.T) {
	handler := NewAuthHandler(&mockAuthService{
		verifyTokenFunc: func(token string) (*service.Claims, error) {
			if token == "good" {
				return &service.Claims{UserID: uuid.New(), Email: "user@example.com"}, nil
			}
			return nil, service.ErrInvalidToken
		},
	})

	t.Run("valid token", func(t *testing.T) {
		w, c := createTestContext("POST", "/api/v1/auth/verify", VerifyRequest{Token: "good"})
		handler.Verify(c)
		if w.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
		}
		var response VerifyResponse
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if !response.Valid || response.Email != "user@example.com" {
			t.Errorf("unexpected response: %+v", response)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		w, c := createTestContext("POST", "/api/v1/auth/verify", VerifyRequest{Token: "bad"})
		handler.Verify(c)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
		}
	})
}

func TestLogout_MissingToken(t *testing.T) {
	handler := NewAuthHandler(&mockAuthService{})
	w, c := createTestContext("POST", "/api/v1/auth/logout", nil)

	handler.Logout(c)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestLogout_Success(t *testing.T) {
	revoked := false
	handler := NewAuthHandler(&mockAuthService{
		logoutFunc: func(ctx context.Context, token string) error {
			revoked = true
			return nil
		},
	})
	w, c := createTestContext("POST", "/api/v1/auth/logout", nil)
	c.Request.Header.Set("Authorization", "Bearer some_access_token")

	handler.Logout(c)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if !revoked {
		t.Error("refresh token was not revoked")
	}
}
