package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/pcaproject/timesheet-server/internal/app/models"
)

func testJWTService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "timesheet-server",
	})
}

func testEmployee() *models.Employee {
	return &models.Employee{
		ID:         1,
		EmployeeID: "jsmith300",
		Role:       models.RoleEmployee,
	}
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := testJWTService(time.Hour)

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(testEmployee())
	if err != nil {
		t.Fatalf("GenerateTokenPair returned error: %v", err)
	}
	if accessToken == "" || refreshToken == "" {
		t.Fatal("expected non-empty tokens")
	}
	if expiresIn != int(time.Hour.Seconds()) {
		t.Errorf("expiresIn = %d, want %d", expiresIn, int(time.Hour.Seconds()))
	}
	if refreshExpiresIn != int((24 * time.Hour).Seconds()) {
		t.Errorf("refreshExpiresIn = %d, want %d", refreshExpiresIn, int((24*time.Hour).Seconds()))
	}

	claims, err := svc.ValidateAndExtractClaims(accessToken)
	if err != nil {
		t.Fatalf("ValidateAndExtractClaims returned error: %v", err)
	}
	if claims.EmployeeID != "jsmith300" {
		t.Errorf("EmployeeID = %q, want %q", claims.EmployeeID, "jsmith300")
	}
	if claims.Role != string(models.RoleEmployee) {
		t.Errorf("Role = %q, want %q", claims.Role, models.RoleEmployee)
	}
	if claims.Subject != "jsmith300" {
		t.Errorf("Subject = %q, want %q", claims.Subject, "jsmith300")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := testJWTService(-time.Minute)

	accessToken, _, _, _, err := svc.GenerateTokenPair(testEmployee())
	if err != nil {
		t.Fatalf("GenerateTokenPair returned error: %v", err)
	}

	if _, err := svc.ValidateToken(accessToken); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("ValidateToken error = %v, want ErrExpiredToken", err)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	accessToken, _, _, _, err := testJWTService(time.Hour).GenerateTokenPair(testEmployee())
	if err != nil {
		t.Fatalf("GenerateTokenPair returned error: %v", err)
	}

	other := NewJWTService(JWTConfig{
		SecretKey:       "different-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "timesheet-server",
	})
	if _, err := other.ValidateToken(accessToken); err == nil {
		t.Error("token signed with a different secret validated")
	}
}

func TestValidateAndExtractClaimsRejectsGarbage(t *testing.T) {
	svc := testJWTService(time.Hour)

	if _, err := svc.ValidateAndExtractClaims(""); err == nil {
		t.Error("empty token validated")
	}
	if _, err := svc.ValidateAndExtractClaims("not.a.jwt"); err == nil {
		t.Error("malformed token validated")
	}
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc123")
	if err != nil || token != "abc123" {
		t.Errorf("ExtractBearerToken = (%q, %v), want (%q, nil)", token, err, "abc123")
	}

	// A bare token is accepted without the prefix.
	token, err = ExtractBearerToken("abc123")
	if err != nil || token != "abc123" {
		t.Errorf("ExtractBearerToken = (%q, %v), want (%q, nil)", token, err, "abc123")
	}

	if _, err := ExtractBearerToken(""); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("empty header error = %v, want ErrInvalidFormat", err)
	}
}
