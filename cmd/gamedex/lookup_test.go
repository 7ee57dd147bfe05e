package main

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/gamedex/pkg/types"
)

func promptCmd(in string) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader(in))
	cmd.SetErr(&strings.Builder{})
	return cmd
}

func TestPromptTitle(t *testing.T) {
	title, err := promptTitle(promptCmd("The Witcher 3\n"))
	require.NoError(t, err)
	assert.Equal(t, "The Witcher 3", title)

	// EOF after usable input (no trailing newline) is not an error.
	title, err = promptTitle(promptCmd("Portal"))
	require.NoError(t, err)
	assert.Equal(t, "Portal", title)

	// EOF with nothing typed.
	_, err = promptTitle(promptCmd(""))
	assert.Equal(t, types.FailEmptyQuery, types.KindOf(err))

	// Whitespace only.
	_, err = promptTitle(promptCmd("   \n"))
	assert.Equal(t, types.FailEmptyQuery, types.KindOf(err))
}

func TestPromptTitleReadError(t *testing.T) {
	readErr := errors.New("stdin went away")
	cmd := &cobra.Command{}
	cmd.SetIn(iotest.ErrReader(readErr))
	cmd.SetErr(&strings.Builder{})

	_, err := promptTitle(cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, readErr)
}
