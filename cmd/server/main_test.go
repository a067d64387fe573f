package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerCmdPrintEnv(t *testing.T) {
	cmd := newServerCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--print-env"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "SERVER_PORT")
	assert.Contains(t, out.String(), "ARABDICT_CONFIG")
}

func TestServerCmdMissingConfig(t *testing.T) {
	cmd := newServerCmd()
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config")
}

func TestServerCmdRejectsArgs(t *testing.T) {
	cmd := newServerCmd()
	cmd.SetArgs([]string{"extra"})
	assert.Error(t, cmd.Execute())
}
