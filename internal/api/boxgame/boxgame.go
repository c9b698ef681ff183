package boxgame

import (
	dto "boxgame_backend/internal/api/dto/boxgame"
	"boxgame_backend/internal/converter"
	"boxgame_backend/internal/service"
	"boxgame_backend/pkg/req"
	"boxgame_backend/pkg/resp"
	"net/http"
	"strconv"
)

type HandlerDeps struct {
	Serv service.BoxGameService
}

type Handler struct {
	serv service.BoxGameService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Play — разыгрывает одну партию по переданным весам токенов
func (h *Handler) Play(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.PlayRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	outcome, err := h.serv.Play(r.Context(), converter.ToPlayInput(payload))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	response := converter.ToPlayResponse(*outcome)

	resp.WriteJSONResponse(w, http.StatusOK, response)
}

// History — последние партии текущего пользователя
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	// Лимит из query параметра, 0 означает лимит по умолчанию
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	games, err := h.serv.History(r.Context(), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameSummaries(games))
}

// Stats — агрегированная статистика по всем партиям
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.serv.Stats(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(*stats))
}
