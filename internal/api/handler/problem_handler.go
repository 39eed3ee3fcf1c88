package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/okellojun/HackLab/internal/app/service"
	"github.com/okellojun/HackLab/internal/common"
	"go.uber.org/zap"
)

type ProblemHandler struct {
	problemService *service.ProblemService
	log            *zap.Logger
}

func NewProblemHandler(problemService *service.ProblemService, log *zap.Logger) *ProblemHandler {
	return &ProblemHandler{problemService: problemService, log: log}
}

func (h *ProblemHandler) RegisterRoutes(r chi.Router) {
	r.Get("/problems", h.listProblems)
}

func (h *ProblemHandler) listProblems(w http.ResponseWriter, r *http.Request) {
	problems, err := h.problemService.ListPublic(r.Context())
	if err != nil {
		common.RespondWithAppError(w, r, h.log, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, problems)
}
