package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/invayl-academya/Ai-chatbot/internal/models"
)

type contextKey string

const UserKey contextKey = "current_user"

// UserLoader resolves the principal referenced by a token. Tokens signed for
// users that no longer exist are rejected.
type UserLoader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

type JWTAuth struct {
	Secret []byte
	TTL    time.Duration
	users  UserLoader
}

func NewJWTAuth(secret string, expireMinutes int, users UserLoader) *JWTAuth {
	return &JWTAuth{
		Secret: []byte(secret),
		TTL:    time.Duration(expireMinutes) * time.Minute,
		users:  users,
	}
}

// GenerateAccessToken creates a signed token with the user's email as
// subject and the user id in the uid claim.
func (j *JWTAuth) GenerateAccessToken(userID int64, email string) (string, error) {
	claims := jwt.MapClaims{
		"sub": email,
		"uid": userID,
		"exp": time.Now().Add(j.TTL).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

// Middleware validates the bearer token (Authorization header, falling back
// to the access_token cookie), loads the user it references, and attaches
// the user to the request context.
func (j *JWTAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var tokenStr string
		if authHeader := r.Header.Get("Authorization"); authHeader != "" {
			// Must be Bearer format
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid authorization format", r)
				return
			}
			tokenStr = parts[1]
		} else if cookie, err := r.Cookie("access_token"); err == nil {
			tokenStr = cookie.Value
		}

		if tokenStr == "" {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing authorization token", r)
			return
		}

		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return j.Secret, nil
		})

		if err != nil {
			if strings.Contains(err.Error(), "expired") {
				writeError(w, http.StatusUnauthorized, "TOKEN_EXPIRED", "Token has expired", r)
			} else {
				writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token", r)
			}
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !token.Valid {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token claims", r)
			return
		}

		email, _ := claims["sub"].(string)
		uid, uidOK := claims["uid"].(float64)
		if email == "" || !uidOK {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing token claims", r)
			return
		}

		user, err := j.users.GetByID(r.Context(), int64(uid))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "User not found", r)
			return
		}

		ctx := context.WithValue(r.Context(), UserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUser extracts the authenticated principal from the request context.
func GetUser(ctx context.Context) *models.User {
	user, _ := ctx.Value(UserKey).(*models.User)
	return user
}

func writeError(w http.ResponseWriter, status int, code, message string, r *http.Request) {
	requestID := r.Header.Get("X-Request-ID")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]interface{}{
			"code":       code,
			"message":    message,
			"request_id": requestID,
		},
	})
}
