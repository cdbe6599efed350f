package semgraph

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsHandler(t *testing.T) {
	store := newTestStore(t)
	_, err := store.CreateTerminal("1200", "kg")
	require.NoError(t, err)

	server := httptest.NewServer(newMetricsHandler(store))
	defer server.Close()

	resp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := ioutil.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `records{collection="terminals"} 1`), "metrics output:\n%s", body)
	assert.True(t, strings.Contains(string(body), "create_latency_ns_count 1"))
}
