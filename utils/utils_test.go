package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestJWTRoundTrip(t *testing.T) {
	tokenStr, err := GenerateJWT("user@example.com")
	if err != nil {
		t.Fatal(err)
	}

	token, err := ValidateJWT(tokenStr)
	if err != nil {
		t.Fatal(err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("unexpected claims type %T", token.Claims)
	}
	if claims["email"] != "user@example.com" {
		t.Fatalf("email claim = %v", claims["email"])
	}
	if claims["type"] != "access" {
		t.Fatalf("type claim = %v", claims["type"])
	}
}

func TestRefreshTokenCarriesSession(t *testing.T) {
	tokenStr, err := GenerateRefreshToken("user@example.com", "session-123")
	if err != nil {
		t.Fatal(err)
	}
	token, err := ValidateJWT(tokenStr)
	if err != nil {
		t.Fatal(err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if claims["type"] != "refresh" {
		t.Fatalf("type claim = %v", claims["type"])
	}
	if claims["sessionId"] != "session-123" {
		t.Fatalf("sessionId claim = %v", claims["sessionId"])
	}
}

func TestValidateJWTRejectsTampering(t *testing.T) {
	tokenStr, err := GenerateJWT("user@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ValidateJWT(tokenStr + "x"); err == nil {
		t.Fatal("expected a tampered token to fail validation")
	}
	if _, err := ValidateJWT("not-a-token"); err == nil {
		t.Fatal("expected garbage input to fail validation")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("password stored in the clear")
	}
	if !ValidatePassword(hash, "correct horse battery staple") {
		t.Fatal("correct password rejected")
	}
	if ValidatePassword(hash, "wrong password") {
		t.Fatal("wrong password accepted")
	}
}
