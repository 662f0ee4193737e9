package server

import (
	"encoding/json"
	"image/gif"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorgonia/goban/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const record = "(;SZ[9];B[cc];W[gg];B[cg];W[gc])"

func newTestServer(t *testing.T) (*httptest.Server, *metrics.Collector) {
	t.Helper()
	m := metrics.New()
	s := New(":0", 200, zaptest.NewLogger(t), m)
	ts := httptest.NewServer(s.Router())
	t.Cleanup(ts.Close)
	return ts, m
}

func post(t *testing.T, ts *httptest.Server, query, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(ts.URL+"/render"+query, "application/x-go-sgf", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestRender_PNG(t *testing.T) {
	ts, m := newTestServer(t)
	resp := post(t, ts, "?theme=light&kifu=true&move=3", record)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.Equal(t, "3", resp.Header.Get("X-Goban-Applied"))
	assert.Equal(t, "4", resp.Header.Get("X-Goban-Total"))

	img, err := png.Decode(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RendersTotal("png", "light", metrics.OutcomeOK)))
}

func TestRender_GIF(t *testing.T) {
	ts, _ := newTestServer(t)
	resp := post(t, ts, "?format=gif", record)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/gif", resp.Header.Get("Content-Type"))
	g, err := gif.DecodeAll(resp.Body)
	require.NoError(t, err)
	assert.Len(t, g.Image, 5)
}

func TestRender_Errors(t *testing.T) {
	ts, m := newTestServer(t)
	for _, tc := range []struct {
		query, body string
		status      int
		kind        string
	}{
		{"", "(;SZ[19];B[aa", http.StatusBadRequest, "parse error"},
		{"", "(;SZ[19];B[zz])", http.StatusUnprocessableEntity, "semantic error"},
		{"", "(;SZ[30])", http.StatusUnprocessableEntity, "configuration error"},
		{"?theme=neon", record, http.StatusUnprocessableEntity, "configuration error"},
		{"?move=x", record, http.StatusBadRequest, "bad request"},
		{"?kifu=maybe", record, http.StatusBadRequest, "bad request"},
		{"?format=bmp", record, http.StatusBadRequest, "bad request"},
	} {
		resp := post(t, ts, tc.query, tc.body)
		assert.Equal(t, tc.status, resp.StatusCode, "%s %s", tc.query, tc.body)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		var er errorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&er))
		assert.Equal(t, tc.kind, er.Kind)
		assert.NotEmpty(t, er.Error)
	}
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RendersTotal("png", "dark", "parse error")))
}

func TestThemesAndHealth(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/themes")
	require.NoError(t, err)
	defer resp.Body.Close()
	var body struct {
		Default string   `json:"default"`
		Themes  []string `json:"themes"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "dark", body.Default)
	assert.Equal(t, []string{"dark", "light", "paper"}, body.Themes)

	resp, err = http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)
	post(t, ts, "", record)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(b), `goban_renders_total{format="png",outcome="ok",theme="dark"} 1`)
	assert.Contains(t, string(b), "goban_applied_moves_count 1")
}
