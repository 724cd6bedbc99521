package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/report"
	"fintrack/internal/services"
)

// DashboardHandler handles dashboard summary requests.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// dashboardQuery holds the query parameters of the dashboard summary
// endpoint. A custom period is requested with period=custom plus from
// and to bounds. The period label has no binding rule: unknown labels
// resolve to all-time instead of failing.
type dashboardQuery struct {
	Period string `form:"period"`
	From   string `form:"from"`
	To     string `form:"to"`
}

// resolvePeriod builds the report period from the query parameters.
func (q *dashboardQuery) resolvePeriod() (report.Period, error) {
	if q.Period == string(report.PeriodCustom) || (q.Period == "" && (q.From != "" || q.To != "")) {
		if q.From == "" || q.To == "" {
			return report.Period{}, apperrors.WithMessage(apperrors.ErrInvalidPeriod, "Custom period requires from and to")
		}
		from, err := parseFlexibleTime(q.From)
		if err != nil {
			return report.Period{}, apperrors.WithMessage(apperrors.ErrInvalidPeriod, err.Error())
		}
		to, err := parseFlexibleTime(q.To)
		if err != nil {
			return report.Period{}, apperrors.WithMessage(apperrors.ErrInvalidPeriod, err.Error())
		}
		period := report.Custom(from, to)
		if err := period.Validate(); err != nil {
			return report.Period{}, apperrors.WithMessage(apperrors.ErrInvalidPeriod, err.Error())
		}
		return period, nil
	}
	return report.ParsePeriod(q.Period), nil
}

// GetSummary returns the dashboard overview for a period
// @Summary     Dashboard summary
// @Description Get income/expense totals, category breakdown, account and goal summaries, and recent transactions for a period
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       period query string false "Period" Enums(today, last_7_days, this_month, last_month, last_3_months, this_year, all, custom) default(this_month)
// @Param       from query string false "Custom period start (RFC3339 or YYYY-MM-DD)"
// @Param       to query string false "Custom period end (RFC3339 or YYYY-MM-DD)"
// @Success     200 {object} services.Overview "Overview"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query dashboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidPeriod, err.Error()))
		return
	}
	if query.Period == "" && query.From == "" && query.To == "" {
		query.Period = string(report.PeriodThisMonth)
	}

	period, err := query.resolvePeriod()
	if err != nil {
		respondWithError(c, err)
		return
	}

	overview, err := h.dashboardService.GetOverview(userID, period)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}
