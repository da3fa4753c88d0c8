// Package server exposes stored reports and insights over a small JSON API,
// intended for local dashboards and scripting rather than public exposure.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"daytrack/internal/constants"
	"daytrack/internal/insights"
	"daytrack/internal/logger"
	"daytrack/internal/models"
	"daytrack/internal/score"
	"daytrack/internal/storage"
	"daytrack/internal/utils"
	"daytrack/internal/validation"
)

type Server struct {
	store storage.Provider
	http  *http.Server
}

func New(store storage.Provider, addr string) *Server {
	s := &Server{store: store}
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/reports", s.handleListReports)
		r.Post("/reports", s.handleSaveReport)
		r.Get("/reports/{date}", s.handleGetReport)
		r.Delete("/reports/{date}", s.handleDeleteReport)
		r.Get("/insights", s.handleInsights)
		r.Get("/goals", s.handleListGoals)
		r.Get("/goals/{id}/progress", s.handleGoalProgress)
		r.Get("/missions", s.handleListMissions)
	})
	return r
}

// ListenAndServe blocks until the context is canceled or the listener fails.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", s.http.Addr)
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Handler returns the route tree, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := s.store.GetRecentReports(parseIntQuery(r, "limit", 0))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, reports)
}

func (s *Server) handleSaveReport(w http.ResponseWriter, r *http.Request) {
	var report models.DailyReport
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	report.Tasks = score.NormalizeWeights(report.Tasks)
	if res := validation.ValidateReport(report); !res.Valid() {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error": res.FormatReport(),
		})
		return
	}

	if err := s.store.SaveReport(report); err != nil {
		writeError(w, http.StatusConflict, err)
		return
	}

	saved, err := s.store.GetReport(report.Date)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if err := utils.ValidateDateFormat(date); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	report, err := s.store.GetReport(date)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleDeleteReport(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if err := utils.ValidateDateFormat(date); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	err := s.store.DeleteReport(date)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type insightsResponse struct {
	CurrentStreak int                      `json:"current_streak"`
	LongestStreak int                      `json:"longest_streak"`
	Threshold     float64                  `json:"threshold"`
	Trend         *insights.TrendResult    `json:"trend,omitempty"`
	TrendLabel    string                   `json:"trend_label,omitempty"`
	Consistency   int                      `json:"consistency"`
	BestWeek      *insights.BestWeekResult `json:"best_week,omitempty"`
	DayOfWeek     [7]insights.DayBucket    `json:"day_of_week"`
	RollingWeeks  []insights.WeekAverage   `json:"rolling_weeks"`
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	asc, err := s.store.GetAllReports()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	desc, err := s.store.GetRecentReports(0)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	threshold := constants.DefaultStreakTarget
	timezone := ""
	if settings, err := s.store.GetSettings(); err == nil {
		if settings.StreakThreshold > 0 {
			threshold = settings.StreakThreshold
		}
		timezone = settings.Timezone
	}
	today := todayIn(timezone)

	resp := insightsResponse{
		CurrentStreak: insights.CurrentStreak(desc, today, threshold),
		LongestStreak: insights.LongestStreak(asc, threshold),
		Threshold:     threshold,
		Trend:         insights.Trend(desc),
		DayOfWeek:     insights.DayOfWeekAverages(asc),
		RollingWeeks:  insights.RollingWeekAverages(desc),
	}
	if resp.Trend != nil {
		resp.TrendLabel = insights.TrendLabel(resp.Trend.Change)
	}
	if len(asc) > 0 {
		resp.Consistency = insights.ConsistencyScore(len(asc), asc[0].Date, today)
	}
	if best, ok := insights.BestWeek(asc); ok {
		resp.BestWeek = &best
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := s.store.GetAllGoals(false)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, goals)
}

func (s *Server) handleGoalProgress(w http.ResponseWriter, r *http.Request) {
	goal, err := s.store.GetGoal(chi.URLParam(r, "id"))
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	reports, err := s.store.GetAllReports()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	timezone := ""
	if settings, err := s.store.GetSettings(); err == nil {
		timezone = settings.Timezone
	}
	today := todayIn(timezone)

	writeJSON(w, http.StatusOK, insights.GoalProgress(goal, reports, today))
}

func (s *Server) handleListMissions(w http.ResponseWriter, r *http.Request) {
	missions, err := s.store.GetAllMissions(r.URL.Query().Get("all") == "true")
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, missions)
}

// todayIn resolves the current calendar date in the given timezone, at the
// midnight-truncated resolution the insight functions expect.
func todayIn(timezone string) time.Time {
	todayStr, err := utils.GetTodayInTimezone(timezone)
	if err != nil {
		return time.Now()
	}
	today, err := utils.ParseDate(todayStr)
	if err != nil {
		return time.Now()
	}
	return today
}

func parseIntQuery(r *http.Request, key string, fallback int) int {
	q := r.URL.Query().Get(key)
	if q == "" {
		return fallback
	}
	v, err := strconv.Atoi(q)
	if err != nil {
		return fallback
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
