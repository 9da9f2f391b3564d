package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateCmd_Subcommands(t *testing.T) {
	cmd := migrateCmd()

	names := make([]string, 0)
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"up", "down"}, names)
}

func TestMigrateDown_RejectsInvalidSteps(t *testing.T) {
	cmd := migrateCmd()
	cmd.SetArgs([]string{"down", "abc"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid steps")
}

func TestCreatorsCreate_RequiresFlags(t *testing.T) {
	cmd := creatorsCmd()
	cmd.SetArgs([]string{"create", "--username", "alice"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user-id")
}
