package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"fintrack/internal/report"
	"fintrack/internal/services"
)

// --- mock dashboard service ---

type mockDashboardService struct {
	getOverviewFn func(userID string, period report.Period) (*services.Overview, error)
}

func (m *mockDashboardService) GetOverview(userID string, period report.Period) (*services.Overview, error) {
	if m.getOverviewFn != nil {
		return m.getOverviewFn(userID, period)
	}
	return &services.Overview{Period: period.Kind}, nil
}

// verify interface compliance
var _ services.DashboardServicer = (*mockDashboardService)(nil)

func setupDashboardRouter(handler *DashboardHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.GET("/dashboard/summary", handler.GetSummary)
	return r
}

func TestDashboardHandler_GetSummary(t *testing.T) {
	t.Run("defaults to this month", func(t *testing.T) {
		var captured report.Period
		dashSvc := &mockDashboardService{
			getOverviewFn: func(_ string, period report.Period) (*services.Overview, error) {
				captured = period
				return &services.Overview{Period: period.Kind}, nil
			},
		}
		handler := NewDashboardHandler(dashSvc)
		r := setupDashboardRouter(handler)

		rec := doRequest(r, "GET", "/dashboard/summary", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if captured.Kind != report.PeriodThisMonth {
			t.Errorf("expected this_month, got %s", captured.Kind)
		}
	})

	t.Run("passes a named period", func(t *testing.T) {
		var captured report.Period
		dashSvc := &mockDashboardService{
			getOverviewFn: func(_ string, period report.Period) (*services.Overview, error) {
				captured = period
				return &services.Overview{Period: period.Kind}, nil
			},
		}
		handler := NewDashboardHandler(dashSvc)
		r := setupDashboardRouter(handler)

		rec := doRequest(r, "GET", "/dashboard/summary?period=last_7_days", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if captured.Kind != report.PeriodLast7Days {
			t.Errorf("expected last_7_days, got %s", captured.Kind)
		}
	})

	t.Run("unknown label falls back to all time", func(t *testing.T) {
		var captured report.Period
		dashSvc := &mockDashboardService{
			getOverviewFn: func(_ string, period report.Period) (*services.Overview, error) {
				captured = period
				return &services.Overview{Period: period.Kind}, nil
			},
		}
		handler := NewDashboardHandler(dashSvc)
		r := setupDashboardRouter(handler)

		rec := doRequest(r, "GET", "/dashboard/summary?period=fortnight", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if captured.Kind != report.PeriodAllTime {
			t.Errorf("expected all, got %s", captured.Kind)
		}
	})

	t.Run("builds a custom period from bounds", func(t *testing.T) {
		var captured report.Period
		dashSvc := &mockDashboardService{
			getOverviewFn: func(_ string, period report.Period) (*services.Overview, error) {
				captured = period
				return &services.Overview{Period: period.Kind}, nil
			},
		}
		handler := NewDashboardHandler(dashSvc)
		r := setupDashboardRouter(handler)

		rec := doRequest(r, "GET", "/dashboard/summary?period=custom&from=2024-01-01&to=2024-06-30", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if captured.Kind != report.PeriodCustom {
			t.Fatalf("expected custom, got %s", captured.Kind)
		}
		if captured.Start.Year() != 2024 || captured.End.Month() != 6 {
			t.Errorf("unexpected bounds: %v .. %v", captured.Start, captured.End)
		}
	})

	t.Run("bare from and to imply a custom period", func(t *testing.T) {
		var captured report.Period
		dashSvc := &mockDashboardService{
			getOverviewFn: func(_ string, period report.Period) (*services.Overview, error) {
				captured = period
				return &services.Overview{Period: period.Kind}, nil
			},
		}
		handler := NewDashboardHandler(dashSvc)
		r := setupDashboardRouter(handler)

		rec := doRequest(r, "GET", "/dashboard/summary?from=2024-01-01&to=2024-01-31", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if captured.Kind != report.PeriodCustom {
			t.Errorf("expected custom, got %s", captured.Kind)
		}
	})

	t.Run("returns 400 on custom period missing a bound", func(t *testing.T) {
		handler := NewDashboardHandler(&mockDashboardService{})
		r := setupDashboardRouter(handler)

		rec := doRequest(r, "GET", "/dashboard/summary?period=custom&from=2024-01-01", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_PERIOD")
	})

	t.Run("returns 400 on inverted custom range", func(t *testing.T) {
		handler := NewDashboardHandler(&mockDashboardService{})
		r := setupDashboardRouter(handler)

		rec := doRequest(r, "GET", "/dashboard/summary?period=custom&from=2024-06-30&to=2024-01-01", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_PERIOD")
	})

	t.Run("returns 401 without auth", func(t *testing.T) {
		handler := NewDashboardHandler(&mockDashboardService{})
		r := gin.New()
		r.GET("/dashboard/summary", handler.GetSummary)

		rec := doRequest(r, "GET", "/dashboard/summary", "")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}
