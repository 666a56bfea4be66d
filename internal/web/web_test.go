package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/courtside/skillserver/internal/config"
	"github.com/courtside/skillserver/internal/ranking"
	"github.com/courtside/skillserver/internal/service"
	"github.com/courtside/skillserver/internal/storage/memory"
	"github.com/courtside/skillserver/internal/web/webpath"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	l := logrus.New()
	l.SetOutput(io.Discard)
	st := memory.New()
	rs := service.New(st, service.NewLogSink(l), l)
	rk := ranking.New(st, l)
	return New(rs, rk, config.Server{Port: 3000}, l)
}

func postJSON(t *testing.T, s *Server, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.app.Test(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestCreatePlayer(t *testing.T) {
	s := newTestServer()

	resp := postJSON(t, s, webpath.ApiPlayers, map[string]string{
		"name":    "Ana",
		"country": "  argentina ",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var player playerData
	decode(t, resp, &player)
	assert.Equal(t, "Ana", player.Name)
	assert.Equal(t, "Argentina", player.Country)

	resp = postJSON(t, s, webpath.ApiPlayers, map[string]string{"country": "Chile"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestConfirmMatchFlow(t *testing.T) {
	s := newTestServer()

	var ana, bruno playerData
	decode(t, postJSON(t, s, webpath.ApiPlayers, map[string]string{"name": "Ana", "country": "Argentina"}), &ana)
	decode(t, postJSON(t, s, webpath.ApiPlayers, map[string]string{"name": "Bruno", "country": "Argentina"}), &bruno)

	var match matchData
	resp := postJSON(t, s, webpath.ApiMatches, map[string]any{
		"sport":     "padel",
		"playerAId": ana.ID,
		"playerBId": bruno.ID,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &match)
	assert.Equal(t, "AWAITING_BOTH", string(match.State))

	confirmPath := fmt.Sprintf("/api/matches/%s/confirm", match.ID)
	resp = postJSON(t, s, confirmPath, map[string]any{
		"profileId": ana.ID,
		"result":    "WIN",
		"score":     "6-3 6-4",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &match)
	assert.Equal(t, "AWAITING_OPPONENT", string(match.State))

	// Duplicate confirmation from the same side.
	resp = postJSON(t, s, confirmPath, map[string]any{
		"profileId": ana.ID,
		"result":    "WIN",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// An outsider cannot confirm.
	resp = postJSON(t, s, confirmPath, map[string]any{
		"profileId": "b4b4b4b4-0000-0000-0000-000000000000",
		"result":    "WIN",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = postJSON(t, s, confirmPath, map[string]any{
		"profileId": bruno.ID,
		"result":    "LOSS",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &match)
	assert.Equal(t, "RATED", string(match.State))
	require.NotNil(t, match.SideA.EloChange)
	assert.Equal(t, 16, *match.SideA.EloChange)
}

func TestRankingsEndToEnd(t *testing.T) {
	s := newTestServer()

	var ana, bruno playerData
	decode(t, postJSON(t, s, webpath.ApiPlayers, map[string]string{"name": "Ana", "country": "Argentina"}), &ana)
	decode(t, postJSON(t, s, webpath.ApiPlayers, map[string]string{"name": "Bruno", "country": "Chile"}), &bruno)

	for player, score := range map[playerData]float64{ana: 72, bruno: 55} {
		resp := postJSON(t, s, webpath.ApiAnalyses, map[string]any{
			"playerId":  player.ID,
			"sport":     "padel",
			"technique": "volley",
			"score":     score,
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp := postJSON(t, s, webpath.ApiRecomputeRankings, map[string]any{
		"sport":  "padel",
		"period": "2026-08",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, webpath.ApiRankings+"?sport=padel&period=2026-08", nil)
	httpResp, err := s.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, httpResp.StatusCode)
	var rankings rankingData
	decode(t, httpResp, &rankings)
	require.Len(t, rankings.Entries, 2)
	assert.Equal(t, ana.ID, rankings.Entries[0].PlayerID)
	assert.Equal(t, 1, rankings.Entries[0].Rank)
}

func TestImprovementNotFound(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/players/11111111-1111-1111-1111-111111111111/improvement?sport=padel", nil)
	resp, err := s.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
