package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/coderadar/internal/client"
)

func TestStatusError(t *testing.T) {
	assert.NoError(t, statusError(&client.StatusReport{State: client.StateConnected}))
	assert.EqualError(t, statusError(&client.StatusReport{State: client.StateDisconnected}), "backend is disconnected")
	assert.EqualError(t, statusError(&client.StatusReport{State: client.StateError}), "backend is error")
}

func TestStatusCmd_JSONDisconnectedFails(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	prevJSON, prevURL := outputJSON, viper.GetString("SERVER_URL")
	t.Cleanup(func() {
		outputJSON = prevJSON
		viper.Set("SERVER_URL", prevURL)
	})
	outputJSON = true
	viper.Set("SERVER_URL", url)

	var buf bytes.Buffer
	statusCmd.SetOut(&buf)
	statusCmd.SetContext(context.Background())

	err := statusCmd.RunE(statusCmd, nil)
	require.Error(t, err)

	var out statusOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "disconnected", out.State)
	assert.NotEmpty(t, out.Error)
}
