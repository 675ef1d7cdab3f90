package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigValue_IgnoreSamples(t *testing.T) {
	v, err := parseConfigValue("ignore_samples", "undetermined*, T_*,control")
	require.NoError(t, err)
	assert.Equal(t, []string{"undetermined*", "T_*", "control"}, v)
}

func TestParseConfigValue_Format(t *testing.T) {
	v, err := parseConfigValue("format", "csv")
	require.NoError(t, err)
	assert.Equal(t, "csv", v)

	_, err = parseConfigValue("format", "xml")
	assert.ErrorContains(t, err, "invalid format")
}

func TestParseConfigValue_UnknownKey(t *testing.T) {
	_, err := parseConfigValue("bogus", "x")
	require.Error(t, err)
	assert.ErrorContains(t, err, "unknown config key")
	assert.ErrorContains(t, err, "ignore_samples")
}
