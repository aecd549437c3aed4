package commands

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webpilot/cmd/wpctl/output"
)

func TestCheckCommand(t *testing.T) {
	cmd := CheckCommand()

	assert.Equal(t, "check", cmd.Name)
	assert.Equal(t, "<url>", cmd.ArgsUsage)
	assert.NotEmpty(t, cmd.Usage)
}

func TestCheckAction_RequiresURL(t *testing.T) {
	app := NewApp()

	err := app.Run(context.Background(), []string{"wpctl", "check"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "target URL is required")
}

func TestCheckReport_MarshalsCompletedChain(t *testing.T) {
	report := checkReport{
		URL:      "http://app.test/redirect/2/times",
		FinalURL: "http://app.test/redirect/0/times",
		Status:   200,
		Hops:     2,
		Chain: []string{
			"http://app.test/redirect/2/times",
			"http://app.test/redirect/1/times",
			"http://app.test/redirect/0/times",
		},
	}

	jsonOutput, err := output.NewJSONFormatter().Format(report)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(jsonOutput), &parsed))

	assert.Equal(t, "http://app.test/redirect/0/times", parsed["final_url"])
	assert.Equal(t, float64(2), parsed["hops"])
	assert.Len(t, parsed["chain"], 3)
	assert.NotContains(t, parsed, "stopped")
}

func TestCheckReport_StoppedChainOmitsFinalURL(t *testing.T) {
	report := checkReport{
		URL:     "http://app.test/redirect/9/times",
		Hops:    5,
		Chain:   []string{"http://app.test/redirect/9/times"},
		Stopped: true,
	}

	jsonOutput, err := output.NewJSONFormatter().Format(report)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(jsonOutput), &parsed))

	assert.Equal(t, true, parsed["stopped"])
	assert.NotContains(t, parsed, "final_url")
	assert.NotContains(t, parsed, "status")
}
