package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := int64(123)
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, userID, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}

	// Verify claims
	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != "123" {
		t.Errorf("expected subject '123', got %s", claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := int64(456)
	key := "secret-key"

	genToken, _ := GenerateJWTToken(issuer, userID, 5*time.Minute, key)

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.UserID != userID {
		t.Errorf("expected userID %d, got %d", userID, parsedToken.UserID)
	}
}

func TestValidateAndParseJWTToken_Rejections(t *testing.T) {
	key := "correct-key"
	issuer := "real-issuer"

	valid, _ := GenerateJWTToken(issuer, 1, time.Hour, key)
	expired, _ := GenerateJWTToken(issuer, 1, -time.Second, key)
	wrongIssuer, _ := GenerateJWTToken("fake-issuer", 1, time.Hour, key)

	tests := []struct {
		name  string
		token string
		key   string
	}{
		{"wrong key", valid.SignedString, "wrong-key"},
		{"expired", expired.SignedString, key},
		{"wrong issuer", wrongIssuer.SignedString, key},
		{"garbage", "not.a.token", key},
		{"empty", "", key},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, issuer)
			if err == nil {
				t.Error("expected rejection, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RejectsAlgNone(t *testing.T) {
	// unsigned token with alg=none must never pass, whatever its claims say
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &jwt.RegisteredClaims{
		Issuer:    "real-issuer",
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("failed to build none-alg token: %v", err)
	}

	if _, err = ValidateAndParseJWTToken(tokenString, "key", "real-issuer"); err == nil {
		t.Error("expected rejection of alg=none token, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"missing token", "Bearer", "", true},
		{"empty token", "Bearer ", "", true},
		{"empty header", "", "", true},
		{"too many parts", "Bearer abc def", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTokenIsExpired(t *testing.T) {
	fresh, _ := GenerateJWTToken("iss", 1, time.Hour, "key")
	stale, _ := GenerateJWTToken("iss", 1, -time.Second, "key")

	if TokenIsExpired(fresh.SignedString) {
		t.Error("fresh token reported as expired")
	}
	if !TokenIsExpired(stale.SignedString) {
		t.Error("stale token reported as valid")
	}
	if !TokenIsExpired("garbage") {
		t.Error("unparseable token must count as expired")
	}
}

func TestParseUserIDFromJWT(t *testing.T) {
	token, _ := GenerateJWTToken("iss", 42, time.Hour, "key")

	userID, err := ParseUserIDFromJWT(token.SignedString)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != 42 {
		t.Errorf("expected userID 42, got %d", userID)
	}

	if _, err = ParseUserIDFromJWT("garbage"); err == nil {
		t.Error("expected error for unparseable token")
	}
}
