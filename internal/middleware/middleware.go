package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ashurar25/FoodOrder-sub000/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

// SetJWTSecret installs the HMAC key used to validate bearer tokens.
// Must be called once at startup before any request is served.
func SetJWTSecret(secret string) {
	jwtSecret = []byte(secret)
}

// JWTAuth validates Bearer JWTs (RFC 6750 header extraction, RFC 7519
// claim checks) and loads the principal into the Gin context. Both browser
// logins and device tokens pass through here; they differ only in role.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			respondWithAuthError(c, http.StatusUnauthorized, "authorization_required",
				"Missing Authorization header. A valid Bearer token is required.")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			respondWithAuthError(c, http.StatusUnauthorized, "invalid_request",
				"Authorization header must use Bearer scheme. Format: 'Bearer <token>'")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			respondWithAuthError(c, http.StatusUnauthorized, "invalid_token",
				"Bearer token is empty")
			return
		}

		claims, err := parseAndValidateJWT(tokenString, jwtSecret)
		if err != nil {
			respondWithAuthError(c, http.StatusUnauthorized, "invalid_token", err.Error())
			return
		}

		if err := extractAndSetClaims(c, claims); err != nil {
			respondWithAuthError(c, http.StatusUnauthorized, "invalid_token", err.Error())
			return
		}

		c.Next()
	}
}

// respondWithAuthError responds with RFC 6750 compliant error format
func respondWithAuthError(c *gin.Context, status int, errorCode, description string) {
	c.JSON(status, gin.H{
		"error":             errorCode,
		"error_description": description,
	})
	c.Abort()
}

// parseJWTToken validates and parses a JWT token using HMAC signing method
// Returns the claims if valid, error otherwise
func parseJWTToken(tokenString string, secret []byte) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the signing method to prevent algorithm confusion attacks
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v. Expected HMAC", token.Header["alg"])
		}
		return secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("token parsing failed: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims format")
	}

	return claims, nil
}

// parseAndValidateJWT parses the JWT and performs strict validation
func parseAndValidateJWT(tokenString string, secret []byte) (jwt.MapClaims, error) {
	claims, err := parseJWTToken(tokenString, secret)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	// Validate token expiration (exp claim)
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("invalid exp claim: %w", err)
	}
	if exp != nil && exp.Before(now) {
		return nil, fmt.Errorf("token has expired")
	}

	// Validate not before (nbf claim) if present
	nbf, err := claims.GetNotBefore()
	if err != nil {
		return nil, fmt.Errorf("invalid nbf claim: %w", err)
	}
	if nbf != nil && nbf.After(now) {
		return nil, fmt.Errorf("token not yet valid")
	}

	// Validate issued at (iat claim) - prevents using tokens issued in the future
	iat, err := claims.GetIssuedAt()
	if err != nil {
		return nil, fmt.Errorf("invalid iat claim: %w", err)
	}
	if iat != nil && iat.After(now) {
		return nil, fmt.Errorf("token issued in the future")
	}

	return claims, nil
}

// extractAndSetClaims extracts the principal from JWT claims and sets it in
// the Gin context. uid is the user uuid for browser logins and the device
// client id for kiosk tokens.
func extractAndSetClaims(c *gin.Context, claims jwt.MapClaims) error {
	uid, ok := claims["uid"].(string)
	if !ok || uid == "" {
		return fmt.Errorf("token missing required 'uid' claim. This token is not valid for this API")
	}
	c.Set("userID", uid)

	role, err := extractRole(claims)
	if err != nil {
		return err
	}
	c.Set("userRole", role)

	// Fixed table assignment for kiosk devices
	if table, ok := claims["table"].(string); ok && table != "" {
		c.Set("tableNumber", table)
	}

	// Extract optional scope claim
	if scope, ok := claims["scope"].(string); ok && scope != "" {
		c.Set("scopes", scope)
	}

	// Extract and validate audience claim (aud) - set for device tokens
	if aud, ok := claims["aud"].(string); ok && aud != "" {
		c.Set("clientID", aud)
		c.Set("auth_type", "device")
	} else {
		c.Set("auth_type", "jwt")
	}

	return nil
}

// extractRole extracts and validates the role from JWT claims
// All tokens must have an explicit role claim - no defaults are provided
func extractRole(claims jwt.MapClaims) (string, error) {
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return "", fmt.Errorf("token missing required 'role' claim. Tokens must explicitly specify roles")
	}

	allowedRoles := map[string]bool{
		models.RoleAdmin:    true,
		models.RoleCustomer: true,
		"kiosk":             true,
	}

	if !allowedRoles[role] {
		return "", fmt.Errorf("invalid role '%s'. Allowed roles: admin, customer, kiosk", role)
	}

	return role, nil
}
