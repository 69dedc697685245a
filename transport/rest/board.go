package rest

import (
	"encoding/json"
	"net/http"
)

// boardHandler serves the static board layout so the client can draw squares and connectors.
func (that *Server) boardHandler(w http.ResponseWriter, _ *http.Request) {
	log := that.logger.With("method", "boardHandler")

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(that.board); err != nil {
		log.Error("failed to encode board", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}
