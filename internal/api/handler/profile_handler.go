package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/okellojun/HackLab/internal/api/middleware"
	"github.com/okellojun/HackLab/internal/app/service"
	"github.com/okellojun/HackLab/internal/common"
	"go.uber.org/zap"
)

// ProfileHandler serves the caller-scoped views: profile, analytics and
// dashboard. Each needs the principal placed on the context by the auth guard.
type ProfileHandler struct {
	profileService   *service.ProfileService
	analyticsService *service.AnalyticsService
	dashboardService *service.DashboardService
	log              *zap.Logger
}

func NewProfileHandler(
	profileService *service.ProfileService,
	analyticsService *service.AnalyticsService,
	dashboardService *service.DashboardService,
	log *zap.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		profileService:   profileService,
		analyticsService: analyticsService,
		dashboardService: dashboardService,
		log:              log,
	}
}

func (h *ProfileHandler) RegisterRoutes(r chi.Router) {
	r.Get("/profile", h.getProfile)
	r.Get("/analytics", h.getAnalytics)
	r.Get("/dashboard", h.getDashboard)
}

func (h *ProfileHandler) getProfile(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}
	profile, err := h.profileService.GetProfile(r.Context(), p.ID)
	if err != nil {
		common.RespondWithAppError(w, r, h.log, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) getAnalytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.analyticsService.Get(r.Context())
	if err != nil {
		common.RespondWithAppError(w, r, h.log, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, analytics)
}

func (h *ProfileHandler) getDashboard(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}
	dashboard, err := h.dashboardService.Get(r.Context(), p)
	if err != nil {
		common.RespondWithAppError(w, r, h.log, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, dashboard)
}
