package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_AddDefaultParams(t *testing.T) {
	c, err := NewClient("K")
	require.NoError(t, err)

	params := url.Values{}
	params.Set("foo", "bar")

	got := c.AddDefaultParams(params)

	assert.Equal(t, "bar", got.Get("foo"))
	assert.Equal(t, "K", got.Get("api_key"))
	assert.Equal(t, "json", got.Get("api_responseFormat"))
	assert.Len(t, got, 3)
}

func TestClient_AddDefaultParamsOverwrites(t *testing.T) {
	c, err := NewClient("realkey")
	require.NoError(t, err)

	params := url.Values{}
	params.Set("api_key", "stale")
	params.Set("api_responseFormat", "wddx")

	got := c.AddDefaultParams(params)

	assert.Equal(t, []string{"realkey"}, got["api_key"])
	assert.Equal(t, []string{"json"}, got["api_responseFormat"])
}

func TestNewClient_TimeoutOptionOrder(t *testing.T) {
	custom := &http.Client{}

	// The timeout applies whether it is given before or after the client.
	c, err := NewClient("K", WithTimeout(5*time.Second), WithHTTPClient(custom))
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, c.httpClient.Timeout)

	c, err = NewClient("K", WithHTTPClient(&http.Client{}), WithTimeout(7*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 7*time.Second, c.httpClient.Timeout)
}

func TestNewClient_RequiresKey(t *testing.T) {
	c, err := NewClient("")
	assert.Nil(t, c)
	assert.Error(t, err)
}

func TestClient_Do(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"DATA": [1,2], "ERRORARRAY": [], "ACTION": "test.echo"}`))
	}))
	defer server.Close()

	c, err := NewClient("K", WithBaseURL(server.URL), WithTimeout(5*time.Second))
	require.NoError(t, err)

	resp, err := c.Do(context.Background(), "test.echo", nil)
	require.NoError(t, err)

	// Every request carries the action plus the fixed auth/format params.
	assert.Equal(t, "test.echo", gotQuery.Get("api_action"))
	assert.Equal(t, "K", gotQuery.Get("api_key"))
	assert.Equal(t, "json", gotQuery.Get("api_responseFormat"))

	assert.True(t, resp.Success())
	require.Len(t, resp.Objects, 1)
	assert.JSONEq(t, `[1,2]`, string(resp.Objects[0]))
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
}

func TestClient_DoPreservesCallerParams(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"DATA": {}, "ERRORARRAY": [], "ACTION": "linode.boot"}`))
	}))
	defer server.Close()

	c, err := NewClient("K", WithBaseURL(server.URL))
	require.NoError(t, err)

	params := url.Values{}
	params.Set("LinodeID", "8098")

	_, err = c.Do(context.Background(), "linode.boot", params)
	require.NoError(t, err)
	assert.Equal(t, "8098", gotQuery.Get("LinodeID"))
}

func TestClient_DoAPIFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"DATA": null, "ERRORARRAY": [{"ERRORCODE":4,"ERRORMESSAGE":"Authentication failed"}], "ACTION": "linode.list"}`))
	}))
	defer server.Close()

	c, err := NewClient("badkey", WithBaseURL(server.URL))
	require.NoError(t, err)

	resp, err := c.Do(context.Background(), "linode.list", nil)
	require.Error(t, err)
	assert.True(t, IsInvalidCreds(err))

	// The parsed response is still returned for inspection.
	require.NotNil(t, resp)
	assert.Len(t, resp.Errors, 1)
}

func TestClient_DoMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>502 Bad Gateway</html>`))
	}))
	defer server.Close()

	c, err := NewClient("K", WithBaseURL(server.URL))
	require.NoError(t, err)

	resp, err := c.Do(context.Background(), "linode.list", nil)
	assert.Nil(t, resp)
	require.Error(t, err)
	assert.True(t, IsMalformedResponse(err))
}

func TestClient_DoContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"DATA": [], "ERRORARRAY": [], "ACTION": "x"}`))
	}))
	defer server.Close()

	c, err := NewClient("K", WithBaseURL(server.URL))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = c.Do(ctx, "linode.list", nil)
	assert.ErrorIs(t, err, context.Canceled)
}
