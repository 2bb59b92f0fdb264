package http

import (
	"net/http"

	"github.com/dmarquez/go-mission-log/internal/logger"
	"github.com/dmarquez/go-mission-log/internal/utils"
)

func (h *Handler) listDiary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	entries, err := h.services.ProgressService.ListDiary(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listDiary").Msg("error listing diary entries")
		http.Error(w, "error listing diary entries", statusFromError(err))
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}
