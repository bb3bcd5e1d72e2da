package handlers

import (
	"net/http"
)

type riotIDQuery struct {
	Name string `validate:"required,min=3,max=16"`
	Tag  string `validate:"required,min=2,max=5"`
}

func (h *Handler) riotIDFromQuery(w http.ResponseWriter, r *http.Request) (riotIDQuery, bool) {
	q := riotIDQuery{
		Name: r.URL.Query().Get("name"),
		Tag:  r.URL.Query().Get("tag"),
	}
	if err := h.validator.Struct(q); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "name and tag query parameters are required")
		return q, false
	}
	return q, true
}

// GetAccount resolves a riot id to an account
// @Summary Resolve Riot ID
// @Tags Account
// @Produce json
// @Param name query string true "Game name"
// @Param tag query string true "Tag line"
// @Success 200 {object} riot.Account
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/account [get]
func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	q, ok := h.riotIDFromQuery(w, r)
	if !ok {
		return
	}

	account, err := h.liveGame.Account(r.Context(), q.Name, q.Tag)
	if err != nil {
		h.logger.Errorw("Failed to resolve account", "error", err, "name", q.Name, "tag", q.Tag)
		h.upstreamError(w, err, "account")
		return
	}

	h.jsonResponse(w, http.StatusOK, account)
}

// GetLiveGame reports game presence with the raw spectator payload
// @Summary Live game presence
// @Tags LiveGame
// @Produce json
// @Param name query string true "Game name"
// @Param tag query string true "Tag line"
// @Success 200 {object} predict.Presence
// @Router /api/live-game [get]
func (h *Handler) GetLiveGame(w http.ResponseWriter, r *http.Request) {
	q, ok := h.riotIDFromQuery(w, r)
	if !ok {
		return
	}

	presence, err := h.liveGame.Presence(r.Context(), q.Name, q.Tag)
	if err != nil {
		h.logger.Errorw("Failed to check live game", "error", err, "name", q.Name, "tag", q.Tag)
		h.upstreamError(w, err, "account")
		return
	}

	h.jsonResponse(w, http.StatusOK, presence)
}

// GetLiveGameHistory returns the analyzed live game with a win prediction
// @Summary Analyzed live game
// @Tags LiveGame
// @Produce json
// @Param name query string true "Game name"
// @Param tag query string true "Tag line"
// @Success 200 {object} predict.LiveGameResult
// @Router /api/live-game-history [get]
func (h *Handler) GetLiveGameHistory(w http.ResponseWriter, r *http.Request) {
	q, ok := h.riotIDFromQuery(w, r)
	if !ok {
		return
	}

	result, err := h.liveGame.LiveGame(r.Context(), q.Name, q.Tag)
	if err != nil {
		h.logger.Errorw("Failed to analyze live game", "error", err, "name", q.Name, "tag", q.Tag)
		h.upstreamError(w, err, "account")
		return
	}

	if !result.InGame {
		h.jsonResponse(w, http.StatusOK, map[string]bool{"in_game": false})
		return
	}
	h.jsonResponse(w, http.StatusOK, result)
}
