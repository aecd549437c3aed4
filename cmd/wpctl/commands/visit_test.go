package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitCommand(t *testing.T) {
	cmd := VisitCommand()

	assert.Equal(t, "visit", cmd.Name)
	assert.Equal(t, "<url>", cmd.ArgsUsage)
	assert.NotEmpty(t, cmd.Usage)
}

func TestParseHeaderFlags_ParsesNameValue(t *testing.T) {
	headers, err := parseHeaderFlags([]string{"X-Team-Site: dashboard"})

	require.NoError(t, err)
	assert.Equal(t, "dashboard", headers["X-Team-Site"])
}

func TestParseHeaderFlags_MultipleHeaders(t *testing.T) {
	headers, err := parseHeaderFlags([]string{
		"X-Team-Site:dashboard",
		"Accept-Language:en",
	})

	require.NoError(t, err)
	assert.Len(t, headers, 2)
	assert.Equal(t, "dashboard", headers["X-Team-Site"])
	assert.Equal(t, "en", headers["Accept-Language"])
}

func TestParseHeaderFlags_ValueMayContainColons(t *testing.T) {
	headers, err := parseHeaderFlags([]string{"Referer: http://app.test/form"})

	require.NoError(t, err)
	assert.Equal(t, "http://app.test/form", headers["Referer"])
}

func TestParseHeaderFlags_RejectsMissingColon(t *testing.T) {
	_, err := parseHeaderFlags([]string{"bogus"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid header")
}

func TestParseHeaderFlags_RejectsEmptyName(t *testing.T) {
	_, err := parseHeaderFlags([]string{":value"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid header")
}

func TestVisitAction_RequiresURL(t *testing.T) {
	app := NewApp()

	err := app.Run(context.Background(), []string{"wpctl", "visit"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "target URL is required")
}

func TestVisitAction_RejectsMalformedHeader(t *testing.T) {
	app := NewApp()

	err := app.Run(context.Background(), []string{"wpctl", "visit", "--header", "bogus", "/host"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid header")
}

func TestVisitAction_RefusesRemoteTargetByDefault(t *testing.T) {
	app := NewApp()

	err := app.Run(context.Background(), []string{"wpctl", "visit", "http://far.test/page"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--remote-ok")
}
