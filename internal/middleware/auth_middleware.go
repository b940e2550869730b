package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/projectpulse/projectpulse-api/internal/models"
	"github.com/projectpulse/projectpulse-api/internal/services"
	"github.com/projectpulse/projectpulse-api/internal/utils"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	ContextKeyAuthContext ContextKey = "authContext"
)

// AuthMiddleware handles JWT authentication and sets user context
type AuthMiddleware struct {
	jwtSecret   []byte
	authService *services.AuthService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(secret []byte, as *services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtSecret:   secret,
		authService: as,
	}
}

// JWTAuth verifies the JWT token and populates AuthContext in the request
// context. requiredPermission is the permission needed to pass; an empty
// string means only authentication is required.
func (m *AuthMiddleware) JWTAuth(next http.HandlerFunc, requiredPermission string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			utils.RespondWithError(w, http.StatusUnauthorized, "Missing authorization header")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.jwtSecret, nil
		})
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid or expired token: "+err.Error())
			return
		}
		if !token.Valid {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid token claims")
			return
		}

		uid, ok := claims["uid"].(string)
		if !ok || uid == "" {
			utils.RespondWithError(w, http.StatusUnauthorized, "User ID claim missing or invalid")
			return
		}

		// Resolve the user and their role permissions fresh on every request
		// so role changes take effect without re-login.
		authContext, err := m.authService.AuthenticatedUserContext(uid)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Failed to resolve user authentication context: "+err.Error())
			return
		}

		if requiredPermission != "" && !authContext.HasPermission(requiredPermission) {
			utils.RespondWithError(w, http.StatusForbidden, "You do not have sufficient permissions to access this resource")
			return
		}

		ctx := context.WithValue(r.Context(), ContextKeyAuthContext, authContext)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// GetAuthContext retrieves the AuthContext from the request's context
func GetAuthContext(r *http.Request) (*models.AuthContext, error) {
	val := r.Context().Value(ContextKeyAuthContext)
	authContext, ok := val.(*models.AuthContext)
	if !ok || authContext == nil {
		return nil, fmt.Errorf("authentication context not found or invalid in request")
	}
	return authContext, nil
}
