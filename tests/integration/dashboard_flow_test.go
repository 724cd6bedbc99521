package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestDashboardFlow_Summary(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "dashboard@test.com", "password123")
	accountID := app.createAccount(t, token, "Checking", "checking", 0)

	app.createTransaction(t, token, accountID, "income", 500000, "Salary")
	app.createTransaction(t, token, accountID, "expense", 120000, "Rent")
	app.createGoal(t, token, "Emergency Fund", 100000)

	rec := app.request("GET", "/api/v1/dashboard/summary", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)

	if result["period"] != "this_month" {
		t.Errorf("expected default period this_month, got %v", result["period"])
	}
	txSummary := result["transactions"].(map[string]interface{})
	if txSummary["income"].(float64) != 500000 {
		t.Errorf("expected income=500000, got %v", txSummary["income"])
	}
	if txSummary["expenses"].(float64) != 120000 {
		t.Errorf("expected expenses=120000, got %v", txSummary["expenses"])
	}
	if txSummary["balance"].(float64) != 380000 {
		t.Errorf("expected balance=380000, got %v", txSummary["balance"])
	}
	accounts := result["accounts"].(map[string]interface{})
	if accounts["total_balance"].(float64) != 380000 {
		t.Errorf("expected total_balance=380000, got %v", accounts["total_balance"])
	}
	goals := result["goals"].(map[string]interface{})
	if goals["active_count"].(float64) != 1 {
		t.Errorf("expected active_count=1, got %v", goals["active_count"])
	}
	recent := result["recent_transactions"].([]interface{})
	if len(recent) != 2 {
		t.Errorf("expected 2 recent transactions, got %d", len(recent))
	}
}

func TestDashboardFlow_CustomPeriod(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "dashcustom@test.com", "password123")
	accountID := app.createAccount(t, token, "Checking", "checking", 0)

	app.createTransaction(t, token, accountID, "expense", 5000, "Lunch")

	from := time.Now().UTC().AddDate(0, 0, -7).Format("2006-01-02")
	to := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
	path := fmt.Sprintf("/api/v1/dashboard/summary?period=custom&from=%s&to=%s", from, to)

	rec := app.request("GET", path, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["period"] != "custom" {
		t.Errorf("expected custom period, got %v", result["period"])
	}
	txSummary := result["transactions"].(map[string]interface{})
	if txSummary["expenses"].(float64) != 5000 {
		t.Errorf("expected expenses=5000, got %v", txSummary["expenses"])
	}

	// Window that excludes everything.
	path = fmt.Sprintf("/api/v1/dashboard/summary?period=custom&from=%s&to=%s", "2020-01-01", "2020-01-31")
	rec = app.request("GET", path, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	txSummary = parseJSON(t, rec)["transactions"].(map[string]interface{})
	if txSummary["count"].(float64) != 0 {
		t.Errorf("expected no transactions in 2020, got %v", txSummary["count"])
	}
}

func TestDashboardFlow_UnknownPeriodFallsBackToAllTime(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "dashall@test.com", "password123")
	accountID := app.createAccount(t, token, "Checking", "checking", 0)
	app.createTransaction(t, token, accountID, "income", 1000, "Tip")

	rec := app.request("GET", "/api/v1/dashboard/summary?period=fortnight", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["period"] != "all" {
		t.Errorf("expected all-time fallback, got %v", result["period"])
	}
}

func TestDashboardFlow_InvalidCustomRange(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "dashbad@test.com", "password123")

	rec := app.request("GET", "/api/v1/dashboard/summary?period=custom&from=2024-06-30&to=2024-01-01", "", token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	errObj := parseJSON(t, rec)["error"].(map[string]interface{})
	if errObj["code"] != "INVALID_PERIOD" {
		t.Errorf("expected INVALID_PERIOD, got %v", errObj["code"])
	}
}

func TestSettingsFlow_DefaultsAndUpdate(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "settings@test.com", "password123")

	rec := app.request("GET", "/api/v1/settings", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["currency"] != "USD" || result["theme"] != "system" {
		t.Errorf("unexpected defaults: %v", result)
	}
	if !result["notify_email"].(bool) {
		t.Error("expected notify_email on by default")
	}
	if result["notify_reports"].(bool) {
		t.Error("expected notify_reports off by default")
	}

	rec = app.request("PUT", "/api/v1/settings",
		`{"currency":"EUR","theme":"dark","notify_push":false}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result = parseJSON(t, rec)
	if result["currency"] != "EUR" || result["theme"] != "dark" {
		t.Errorf("update not applied: %v", result)
	}
	if result["notify_push"].(bool) {
		t.Error("expected notify_push off")
	}
	if !result["notify_transactions"].(bool) {
		t.Error("expected notify_transactions untouched")
	}

	// Changes persist across reads.
	rec = app.request("GET", "/api/v1/settings", "", token)
	if parseJSON(t, rec)["currency"] != "EUR" {
		t.Error("expected updated currency on re-read")
	}
}
