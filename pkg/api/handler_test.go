package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazyhaar/smartdial/pkg/directory"
	"github.com/hazyhaar/smartdial/pkg/smartdial"
)

func testRegistry(t *testing.T) *directory.Registry {
	t.Helper()
	reg := directory.NewRegistry(t.TempDir(), nil)
	reg.Add(directory.New(&directory.Manifest{ID: "work", Region: "us"}, []directory.Contact{
		{Name: "Anna Marie", Numbers: []string{"555-0100"}},
		{Name: "Jean-Paul", Numbers: []string{"+33 6 12 34 56 78"}},
		{Name: "李红霞", Numbers: []string{"13800138000"}},
	}))
	reg.Add(directory.New(&directory.Manifest{ID: "family", Region: "fr"}, []directory.Contact{
		{Name: "Martin Dupont", Numbers: []string{"06 12 34 56 78"}},
	}))
	return reg
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(NewRouter(testRegistry(t), Options{SearchLimit: 10}, nil))
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, wantCode int, v any) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, wantCode, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func postJSON(t *testing.T, url, body string, wantCode int, v any) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, wantCode, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestTransliterate(t *testing.T) {
	ts := newTestServer(t)

	var got transliterateResponse
	getJSON(t, ts.URL+"/v1/transliterate/"+url.PathEscape("李红霞"), http.StatusOK, &got)
	assert.Equal(t, transliterateResponse{Name: "李红霞", Transliteration: "li hong xia", Script: "ideograph"}, got)

	getJSON(t, ts.URL+"/v1/transliterate/"+url.PathEscape("Zoë Ng"), http.StatusOK, &got)
	assert.Equal(t, "Zoë Ng", got.Transliteration)
	assert.Equal(t, "latin", got.Script)
}

func TestMatch(t *testing.T) {
	ts := newTestServer(t)

	var got matchResponse
	postJSON(t, ts.URL+"/v1/match", `{"name":"李红霞","query":"hong"}`, http.StatusOK, &got)
	assert.True(t, got.Matched)
	assert.Equal(t, "4664", got.Digits)
	assert.Equal(t, []smartdial.Range{{Start: 1, End: 2}}, got.Ranges)
	assert.Equal(t, []string{"红"}, got.Highlights)

	got = matchResponse{}
	postJSON(t, ts.URL+"/v1/match", `{"name":"Jean-Paul","query":"5326"}`, http.StatusOK, &got)
	assert.Equal(t, []string{"Jean"}, got.Highlights)

	got = matchResponse{}
	postJSON(t, ts.URL+"/v1/match", `{"name":"Jean-Paul","query":"999"}`, http.StatusOK, &got)
	assert.False(t, got.Matched)
	assert.Empty(t, got.Ranges)
	assert.NotNil(t, got.Ranges)
}

func TestMatch_BadRequests(t *testing.T) {
	ts := newTestServer(t)

	var e map[string]string
	postJSON(t, ts.URL+"/v1/match", `{"name":"Bob"}`, http.StatusBadRequest, &e)
	assert.Contains(t, e["error"], "missing query")

	postJSON(t, ts.URL+"/v1/match", `not json`, http.StatusBadRequest, &e)
	assert.Equal(t, "invalid JSON body", e["error"])

	getJSON(t, ts.URL+"/v1/match", http.StatusMethodNotAllowed, &e)
}

func TestSearch(t *testing.T) {
	ts := newTestServer(t)

	var got directory.SearchResult
	getJSON(t, ts.URL+"/v1/search?q=612", http.StatusOK, &got)
	require.Len(t, got.Hits, 2)
	assert.Equal(t, "family", got.Hits[0].DirectoryID)
	assert.Equal(t, "work", got.Hits[1].DirectoryID)

	got = directory.SearchResult{}
	getJSON(t, ts.URL+"/v1/search?q=612&dirs=work", http.StatusOK, &got)
	require.Len(t, got.Hits, 1)
	assert.Equal(t, "Jean-Paul", got.Hits[0].Name)

	got = directory.SearchResult{}
	getJSON(t, ts.URL+"/v1/search?q=612&limit=1", http.StatusOK, &got)
	require.Len(t, got.Hits, 1)
	assert.True(t, got.Truncated)

	var e map[string]string
	getJSON(t, ts.URL+"/v1/search", http.StatusBadRequest, &e)
	getJSON(t, ts.URL+"/v1/search?q=1&limit=x", http.StatusBadRequest, &e)
	getJSON(t, ts.URL+"/v1/search?q=1&limit=-3", http.StatusBadRequest, &e)
}

func TestSearchEndpoint_CapsLimit(t *testing.T) {
	ep := searchEndpoint(testRegistry(t), 1)
	opts := &directory.SearchOptions{Limit: 500}
	resp, err := ep(context.Background(), &searchReq{Query: "612", Opts: opts})
	require.NoError(t, err)
	assert.Len(t, resp.(*directory.SearchResult).Hits, 1)
	assert.Equal(t, 1, opts.Limit)
}

func TestDirectoriesAndHealth(t *testing.T) {
	ts := newTestServer(t)

	var dirs directoriesResponse
	getJSON(t, ts.URL+"/v1/directories", http.StatusOK, &dirs)
	require.Len(t, dirs.Directories, 2)
	assert.Equal(t, "family", dirs.Directories[0].ID)

	var health healthResponse
	getJSON(t, ts.URL+"/v1/health", http.StatusOK, &health)
	assert.Equal(t, healthResponse{Status: "ok", Directories: 2, TotalContacts: 4}, health)
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/v1/match", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
