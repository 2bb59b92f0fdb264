package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dmarquez/go-mission-log/internal/logger"
	"github.com/dmarquez/go-mission-log/internal/utils"
	"github.com/dmarquez/go-mission-log/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createMission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var mission models.Mission
	if err := json.NewDecoder(r.Body).Decode(&mission); err != nil {
		log.Err(err).Str("func", "*Handler.createMission").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// ownership always comes from the token, never from the body
	mission.CreatedBy = userID

	createdMission, err := h.services.MissionService.CreateMission(ctx, mission)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createMission").Msg("error creating mission")
		http.Error(w, "error creating mission", statusFromError(err))
		return
	}

	utils.WriteJSON(w, createdMission, http.StatusCreated)
}

func (h *Handler) listMissions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	missions, err := h.services.MissionService.ListMissions(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listMissions").Msg("error listing missions")
		http.Error(w, "error listing missions", statusFromError(err))
		return
	}

	utils.WriteJSON(w, missions, http.StatusOK)
}

func (h *Handler) listMissionUpdates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	missionID, err := strconv.ParseInt(chi.URLParam(r, "missionID"), 10, 64)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listMissionUpdates").Msg("invalid mission id")
		http.Error(w, "invalid mission id", http.StatusBadRequest)
		return
	}

	events, err := h.services.ProgressService.ListMissionUpdates(ctx, userID, missionID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listMissionUpdates").Int64("missionID", missionID).Msg("error listing mission updates")
		http.Error(w, "mission not found or error listing updates", statusFromError(err))
		return
	}

	utils.WriteJSON(w, events, http.StatusOK)
}
