package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return signed
}

func adminProtected(t *testing.T) http.Handler {
	t.Helper()
	t.Setenv("ADMIN_JWT_SECRET", "test-secret")
	return AdminAuthMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestAdminAuthMiddleware(t *testing.T) {
	handler := adminProtected(t)

	cases := []struct {
		name       string
		authHeader string
		expectCode int
	}{
		{
			name:       "missing header",
			authHeader: "",
			expectCode: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			authHeader: "Basic dXNlcjpwYXNz",
			expectCode: http.StatusUnauthorized,
		},
		{
			name:       "garbled token",
			authHeader: "Bearer not.a.jwt",
			expectCode: http.StatusUnauthorized,
		},
		{
			name: "wrong secret",
			authHeader: "Bearer " + signToken(t, "other-secret", jwt.MapClaims{
				"role": "admin",
				"exp":  time.Now().Add(time.Hour).Unix(),
			}),
			expectCode: http.StatusUnauthorized,
		},
		{
			name: "expired token",
			authHeader: "Bearer " + signToken(t, "test-secret", jwt.MapClaims{
				"role": "admin",
				"exp":  time.Now().Add(-time.Hour).Unix(),
			}),
			expectCode: http.StatusUnauthorized,
		},
		{
			name: "valid token without admin role",
			authHeader: "Bearer " + signToken(t, "test-secret", jwt.MapClaims{
				"role": "customer",
				"exp":  time.Now().Add(time.Hour).Unix(),
			}),
			expectCode: http.StatusForbidden,
		},
		{
			name: "valid admin token",
			authHeader: "Bearer " + signToken(t, "test-secret", jwt.MapClaims{
				"role": "admin",
				"exp":  time.Now().Add(time.Hour).Unix(),
			}),
			expectCode: http.StatusOK,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/v1/flights", nil)
			if tc.authHeader != "" {
				r.Header.Set("Authorization", tc.authHeader)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, r)

			if rec.Code != tc.expectCode {
				t.Errorf("Expected %d, got %d", tc.expectCode, rec.Code)
			}
		})
	}
}
