package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCmd_PostsAndPrintsResponse(t *testing.T) {
	// Given: a registry that accepts the registration
	var payload map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &payload)
		_, _ = w.Write([]byte(`{"status":"registered","id":"svc-42"}`))
	}))
	defer srv.Close()

	// When: executing register against it
	cmd := newRegisterCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--endpoint", srv.URL})
	err := cmd.Execute()

	// Then: the identity was posted and the raw response is shown
	require.NoError(t, err)
	assert.Equal(t, "chitty-cli", payload["service"])
	assert.Contains(t, buf.String(), `"id":"svc-42"`)
	assert.Contains(t, buf.String(), "Registered")
}

func TestRegisterCmd_SurfacesRegistryErrors(t *testing.T) {
	// Given: a registry that rejects the registration
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"maintenance"}`))
	}))
	defer srv.Close()

	// When: executing register against it
	cmd := newRegisterCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--endpoint", srv.URL})
	err := cmd.Execute()

	// Then: the failure is an error but the body is still shown
	require.Error(t, err)
	assert.Contains(t, buf.String(), "maintenance")
}
