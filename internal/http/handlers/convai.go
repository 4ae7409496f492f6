package handlers

import (
	"net/http"
	"strings"
)

// ConvaiConfig hands the voice-widget agent id to the client-side embed.
func (a *App) ConvaiConfig(w http.ResponseWriter, r *http.Request) {
	agentID := strings.TrimSpace(a.Config.ElevenLabsAgentID)
	if agentID == "" {
		a.fail(w, http.StatusInternalServerError, "ELEVENLABS_AGENT_ID is not configured")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"success": true, "agentId": agentID})
}
