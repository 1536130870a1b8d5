package integration

import (
	"net/http"
	"testing"
)

func TestAuthFlow_RegisterLoginProfile(t *testing.T) {
	app := setupApp(t)

	// Step 1: Register
	token, userID := app.registerUser(t, "Alice", "alice@test.com", "password123")
	if token == "" {
		t.Fatal("expected non-empty token from registration")
	}
	if userID == 0 {
		t.Fatal("expected non-zero user ID")
	}

	// Step 2: Login with same credentials
	loginToken := app.loginUser(t, "alice@test.com", "password123")
	if loginToken == "" {
		t.Fatal("expected non-empty token from login")
	}

	// Step 3: Access profile with login token
	rec := app.request("GET", "/api/profile", "", loginToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	if user["email"] != "alice@test.com" {
		t.Errorf("expected email alice@test.com, got %v", user["email"])
	}
	if user["name"] != "Alice" {
		t.Errorf("expected name Alice, got %v", user["name"])
	}
	if _, hasPassword := user["password"]; hasPassword {
		t.Error("password must never appear in a response")
	}
}

func TestAuthFlow_RegisterDuplicateEmail(t *testing.T) {
	app := setupApp(t)

	app.registerUser(t, "Dup", "dup@test.com", "password123")

	// Try to register again with same email
	rec := app.request("POST", "/api/auth/register",
		`{"name":"Dup Again","email":"dup@test.com","password":"password456"}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate email, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["error"] == nil || result["error"] == "" {
		t.Errorf("expected flat error message, got %v", result)
	}
}

func TestAuthFlow_LoginFailuresAreIndistinguishable(t *testing.T) {
	app := setupApp(t)

	app.registerUser(t, "Wrong", "wrong@test.com", "password123")

	wrongPassword := app.request("POST", "/api/auth/login",
		`{"email":"wrong@test.com","password":"wrongpassword"}`, "")
	unknownEmail := app.request("POST", "/api/auth/login",
		`{"email":"nobody@test.com","password":"password123"}`, "")

	if wrongPassword.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", wrongPassword.Code)
	}
	if unknownEmail.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown email, got %d", unknownEmail.Code)
	}
	if wrongPassword.Body.String() != unknownEmail.Body.String() {
		t.Errorf("failure responses must not reveal whether the email exists: %q vs %q",
			wrongPassword.Body.String(), unknownEmail.Body.String())
	}
}

func TestAuthFlow_RegisterMissingFields(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/auth/register",
		`{"email":"incomplete@test.com"}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthFlow_ProfileWithoutAuth(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/profile", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthFlow_ProfileWithInvalidToken(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/profile", "", "invalid-token")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestHealthCheck(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	if result["status"] != "ok" {
		t.Errorf("expected status ok, got %v", result["status"])
	}
}
