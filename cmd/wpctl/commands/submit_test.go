package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitCommand(t *testing.T) {
	cmd := SubmitCommand()

	assert.Equal(t, "submit", cmd.Name)
	assert.Equal(t, "<url>", cmd.ArgsUsage)
	assert.NotEmpty(t, cmd.Usage)
}

func TestParseFormData_ParsesFields(t *testing.T) {
	fields, err := parseFormData("name=Alice email=alice@example.test")

	require.NoError(t, err)
	assert.Equal(t, "Alice", fields.Get("name"))
	assert.Equal(t, "alice@example.test", fields.Get("email"))
}

func TestParseFormData_QuotedValues(t *testing.T) {
	fields, err := parseFormData(`name="Alice Smith" city=Pune`)

	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", fields.Get("name"))
	assert.Equal(t, "Pune", fields.Get("city"))
}

func TestParseFormData_RepeatedNames(t *testing.T) {
	fields, err := parseFormData("tag=alpha tag=beta")

	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, fields["tag"])
}

func TestParseFormData_Empty(t *testing.T) {
	fields, err := parseFormData("")

	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestParseFormData_RejectsBareWord(t *testing.T) {
	_, err := parseFormData("name=Alice bogus")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid form field")
}

func TestParseFormData_RejectsUnclosedQuote(t *testing.T) {
	_, err := parseFormData(`name="Alice`)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse form data")
}

func TestSubmitAction_RequiresURL(t *testing.T) {
	app := NewApp()

	err := app.Run(context.Background(), []string{"wpctl", "submit"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "form action URL is required")
}

func TestSubmitAction_RefusesRemoteActionByDefault(t *testing.T) {
	app := NewApp()

	err := app.Run(context.Background(), []string{"wpctl", "submit", "http://far.test/form"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--remote-ok")
}
