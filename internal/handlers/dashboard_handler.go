// internal/handlers/dashboard_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/chia199712/Fitness-Web-sub000/internal/config"
	"github.com/chia199712/Fitness-Web-sub000/internal/model"
	"github.com/chia199712/Fitness-Web-sub000/internal/service"
	"github.com/chia199712/Fitness-Web-sub000/internal/webutil"
)

type DashboardHandler struct {
	service service.DashboardService
	cfg     *config.Config
	logger  *slog.Logger
}

func NewDashboardHandler(s service.DashboardService, cfg *config.Config, logger *slog.Logger) *DashboardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardHandler{service: s, cfg: cfg, logger: logger}
}

func (h *DashboardHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetOverview"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}

	overview, err := h.service.GetOverview(r.Context(), userID)
	if err != nil {
		logger.Error("Error building overview in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, overview, logger)
}

func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStats"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}

	stats, err := h.service.GetStats(r.Context(), userID, r.URL.Query().Get("period"))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}

func (h *DashboardHandler) GetRecentWorkouts(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetRecentWorkouts"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}

	limit := h.cfg.App.RecentWorkoutsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			appErr := model.NewAppError("INVALID_INPUT", "limit must be a positive integer.", "limit", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		limit = n
	}

	workouts, err := h.service.GetRecentWorkouts(r.Context(), userID, limit)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, workouts, logger)
}

func (h *DashboardHandler) GetPersonalRecords(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetPersonalRecords"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}

	records, err := h.service.GetPersonalRecords(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, records, logger)
}

// GetCalendar defaults to the current month when year/month are absent.
func (h *DashboardHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCalendar"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}

	now := time.Now()
	year, month := now.Year(), int(now.Month())
	q := r.URL.Query()
	if raw := q.Get("year"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			appErr := model.NewAppError("INVALID_INPUT", "year must be an integer.", "year", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		year = n
	}
	if raw := q.Get("month"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			appErr := model.NewAppError("INVALID_INPUT", "month must be an integer.", "month", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		month = n
	}

	calendar, err := h.service.GetCalendar(r.Context(), userID, year, month)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, calendar, logger)
}

func (h *DashboardHandler) GetAchievements(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetAchievements"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}

	achievements, err := h.service.GetAchievements(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, achievements, logger)
}

func (h *DashboardHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetProgress"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}

	q := r.URL.Query()
	period := q.Get("period")
	if period == "" {
		period = model.PeriodMonth
	}
	metric := q.Get("metric")
	if metric == "" {
		metric = model.MetricVolume
	}
	var start, end *time.Time
	if raw := q.Get("start_date"); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			appErr := model.NewAppError("INVALID_INPUT", "start_date must be formatted as YYYY-MM-DD.", "start_date", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		start = &t
	}
	if raw := q.Get("end_date"); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			appErr := model.NewAppError("INVALID_INPUT", "end_date must be formatted as YYYY-MM-DD.", "end_date", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		end = &t
	}

	progress, err := h.service.GetProgress(r.Context(), userID, period, metric, start, end)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
}

func (h *DashboardHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetInsights"))

	userID, ok := requireUserID(w, r, logger)
	if !ok {
		return
	}

	q := r.URL.Query()
	filter := model.InsightFilter{
		Type:     model.InsightType(q.Get("type")),
		Priority: model.InsightPriority(q.Get("priority")),
	}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			appErr := model.NewAppError("INVALID_INPUT", "limit must be a positive integer.", "limit", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		filter.Limit = n
	}

	insights, err := h.service.GetInsights(r.Context(), userID, filter)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, insights, logger)
}
