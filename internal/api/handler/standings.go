package handler

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/api/respond"
	"github.com/PutSomBaconOnIt/BasketballSimulator-sub000/internal/cache"
)

// StandingsRow is one team's line in the win/loss table.
type StandingsRow struct {
	TeamID  string  `json:"teamId"`
	Name    string  `json:"name"`
	City    string  `json:"city"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	WinPct  float64 `json:"winPct"`
	Overall int     `json:"overallRating"`
}

// GetStandings returns the league table sorted by win percentage.
// @Summary League standings
// @Description Returns all teams sorted by win percentage then wins. Cached with ETag support.
// @Tags standings
// @Produce json
// @Success 200 {array} StandingsRow
// @Router /standings [get]
func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	const cacheKey = "standings"
	ttl := cache.TTLStandings

	if data, etag, ok := h.cache.Get(cacheKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, ttl, true)
		return
	}

	teams, err := h.store.ListTeams(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}

	rows := make([]StandingsRow, 0, len(teams))
	for _, t := range teams {
		row := StandingsRow{
			TeamID:  t.ID,
			Name:    t.Name,
			City:    t.City,
			Wins:    t.Wins,
			Losses:  t.Losses,
			Overall: t.OverallRating,
		}
		if played := t.Wins + t.Losses; played > 0 {
			row.WinPct = float64(t.Wins) / float64(played)
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].WinPct != rows[j].WinPct {
			return rows[i].WinPct > rows[j].WinPct
		}
		return rows[i].Wins > rows[j].Wins
	})

	data, err := json.Marshal(rows)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", err.Error())
		return
	}
	etag := h.cache.Set(cacheKey, data, ttl)
	respond.WriteJSON(w, data, etag, ttl, false)
}
