package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/okellojun/HackLab/internal/app/service"
	"github.com/okellojun/HackLab/internal/common"
	"go.uber.org/zap"
)

type HackathonHandler struct {
	hackathonService *service.HackathonService
	log              *zap.Logger
}

func NewHackathonHandler(hackathonService *service.HackathonService, log *zap.Logger) *HackathonHandler {
	return &HackathonHandler{hackathonService: hackathonService, log: log}
}

func (h *HackathonHandler) RegisterRoutes(r chi.Router) {
	r.Get("/hackathons", h.listHackathons)
}

func (h *HackathonHandler) listHackathons(w http.ResponseWriter, r *http.Request) {
	hackathons, err := h.hackathonService.List(r.Context())
	if err != nil {
		common.RespondWithAppError(w, r, h.log, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, hackathons)
}
