package jwt

import (
	"testing"
	"time"

	"clinic-appointment-system/config"

	"github.com/google/uuid"
)

func testService(secret string) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        secret,
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := testService("test-secret")
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "doc@clinic.test", 2)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if tokenID == "" {
		t.Fatal("expected non-empty token ID")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("user ID = %s, want %s", claims.UserID, userID)
	}
	if claims.Email != "doc@clinic.test" {
		t.Errorf("email = %s, want doc@clinic.test", claims.Email)
	}
	if claims.RoleID != 2 {
		t.Errorf("role ID = %d, want 2", claims.RoleID)
	}
	if claims.TokenType != AccessToken {
		t.Errorf("token type = %s, want %s", claims.TokenType, AccessToken)
	}
	if claims.TokenID != tokenID {
		t.Errorf("token ID = %s, want %s", claims.TokenID, tokenID)
	}
}

func TestRefreshTokenType(t *testing.T) {
	svc := testService("test-secret")

	token, _, err := svc.GenerateRefreshToken(uuid.New(), "pat@clinic.test", 3)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.TokenType != RefreshToken {
		t.Errorf("token type = %s, want %s", claims.TokenType, RefreshToken)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := testService("secret-a").GenerateAccessToken(uuid.New(), "x@clinic.test", 1)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := testService("secret-b").ValidateToken(token); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	if _, err := testService("s").ValidateToken("not.a.token"); err == nil {
		t.Error("expected validation to fail for malformed token")
	}
}
