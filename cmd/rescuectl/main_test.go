package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rescuedao/rescuedao-api/libs/go/constants"
	"github.com/rescuedao/rescuedao-api/libs/go/logger"
	"github.com/rescuedao/rescuedao-api/libs/go/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	logger.Log = zap.NewNop()
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRoles_FileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roles.json")
	store := []string{"--store", "file", "--path", path}
	donor := "0x00000000000000000000000000000000000000bb"

	out, err := execute(t, append([]string{"roles", "show"}, store...)...)
	require.NoError(t, err)
	assert.Contains(t, out, constants.DefaultAdminAddress)
	assert.Contains(t, out, constants.DefaultShelterName)
	_, err = os.Stat(path)
	require.NoError(t, err, "defaults are persisted on first use")

	out, err = execute(t, append([]string{"roles", "add-donor", strings.ToUpper(donor[2:]), "Ana"}, store...)...)
	require.Error(t, err, "address without 0x prefix is rejected")
	assert.Empty(t, out)

	_, err = execute(t, append([]string{"roles", "add-donor", donor}, store...)...)
	require.Error(t, err, "name is required")

	_, err = execute(t, append([]string{"roles", "add-donor", donor, "Ana"}, store...)...)
	require.NoError(t, err)

	out, err = execute(t, append([]string{"roles", "resolve", donor}, store...)...)
	require.NoError(t, err)
	assert.Equal(t, donor+"\tdonor\n", out)

	out, err = execute(t, append([]string{"roles", "show", "--json"}, store...)...)
	require.NoError(t, err)
	var cfg business.RoleConfig
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, business.RoleEntry{Name: "Ana"}, cfg.Donors[donor])

	_, err = execute(t, append([]string{"roles", "remove-donor", donor}, store...)...)
	require.NoError(t, err)
	out, err = execute(t, append([]string{"roles", "resolve", donor}, store...)...)
	require.NoError(t, err)
	assert.Equal(t, donor+"\tnone\n", out)

	out, err = execute(t, append([]string{"roles", "clear"}, store...)...)
	require.NoError(t, err)
	assert.Equal(t, "Role configuration cleared\n", out)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestRoles_SetAdmin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roles.json")
	admin := "0x00000000000000000000000000000000000000cc"

	out, err := execute(t, "roles", "set-admin", admin, "--store", "file", "--path", path)
	require.NoError(t, err)
	assert.Regexp(t, `admin\s+`+admin, out)

	_, err = execute(t, "roles", "set-admin", "0x12", "--store", "file", "--path", path)
	assert.Error(t, err)
}

func TestRoles_UnknownStore(t *testing.T) {
	_, err := execute(t, "roles", "show", "--store", "etcd")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown role store kind")
}

func TestRoot_LogLevelFlag(t *testing.T) {
	_, err := execute(t, "amounts", "scale", "1", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")

	out, err := execute(t, "amounts", "scale", "1", "--log-level", "debug")
	require.NoError(t, err)
	assert.Equal(t, "1000000\n", out)
	require.NoError(t, logger.SetLevel("warn"))
}

func TestAmounts(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
		wantErr  bool
	}{
		{name: "scale stable token", args: []string{"amounts", "scale", "1.5"}, expected: "1500000\n"},
		{name: "scale with decimals", args: []string{"amounts", "scale", "0.01", "--decimals", "18"}, expected: "10000000000000000\n"},
		{name: "format", args: []string{"amounts", "format", "2500000"}, expected: "2.5\n"},
		{name: "scale rejects garbage", args: []string{"amounts", "scale", "abc"}, wantErr: true},
		{name: "format rejects decimals", args: []string{"amounts", "format", "1.5"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}
