package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func envOf(kv map[string]string) func(string) string {
	return func(k string) string { return kv[k] }
}

var files = []string{"nodes.txt", "edges.txt", "objectives.txt", "out.txt"}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parseConfig(files, envOf(nil), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "nodes.txt", cfg.nodes)
	assert.Equal(t, "out.txt", cfg.output)
	assert.Equal(t, zapcore.WarnLevel, cfg.logLevel)
	assert.False(t, cfg.echo)
	assert.Equal(t, 0, cfg.replanLimit)
	assert.Empty(t, cfg.expect)
}

func TestParseConfig_EnvOverridesDefaults(t *testing.T) {
	env := envOf(map[string]string{
		"FOGNAV_LOG_LEVEL":    "debug",
		"FOGNAV_ECHO":         "true",
		"FOGNAV_REPLAN_LIMIT": "12",
	})
	cfg, err := parseConfig(files, env, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, cfg.logLevel)
	assert.True(t, cfg.echo)
	assert.Equal(t, 12, cfg.replanLimit)
}

func TestParseConfig_FlagsOverrideEnv(t *testing.T) {
	env := envOf(map[string]string{
		"FOGNAV_LOG_LEVEL":    "debug",
		"FOGNAV_ECHO":         "true",
		"FOGNAV_REPLAN_LIMIT": "12",
	})
	args := append([]string{"-log-level", "error", "-echo=false", "-replan-limit", "3", "-expect", "want.txt"}, files...)
	cfg, err := parseConfig(args, env, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, zapcore.ErrorLevel, cfg.logLevel)
	assert.False(t, cfg.echo)
	assert.Equal(t, 3, cfg.replanLimit)
	assert.Equal(t, "want.txt", cfg.expect)
}

func TestParseConfig_MalformedEnvFallsBack(t *testing.T) {
	env := envOf(map[string]string{"FOGNAV_ECHO": "maybe", "FOGNAV_REPLAN_LIMIT": "lots"})
	cfg, err := parseConfig(files, env, io.Discard)
	require.NoError(t, err)
	assert.False(t, cfg.echo)
	assert.Equal(t, 0, cfg.replanLimit)
}

func TestParseConfig_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"MissingFiles", files[:3], nil},
		{"ExtraFiles", append(append([]string{}, files...), "extra"), nil},
		{"UnknownFlag", append([]string{"-fast"}, files...), nil},
		{"BadLevel", append([]string{"-log-level", "loud"}, files...), nil},
		{"BadEnvLevel", files, map[string]string{"FOGNAV_LOG_LEVEL": "loud"}},
		{"NegativeLimit", append([]string{"-replan-limit", "-1"}, files...), nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseConfig(tc.args, envOf(tc.env), io.Discard)
			require.ErrorIs(t, err, errUsage)
		})
	}
}
