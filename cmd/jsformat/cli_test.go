package main_test

import (
	"testing"

	"github.com/fwojciec/jsformat"
	main "github.com/fwojciec/jsformat/cmd/jsformat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLI_Input(t *testing.T) {
	t.Parallel()

	t.Run("returns the single positional argument", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{Inputs: []string{"app.js"}}

		input, err := cli.Input()

		require.NoError(t, err)
		assert.Equal(t, "app.js", input)
	})

	t.Run("rejects missing argument", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{}

		_, err := cli.Input()

		require.Error(t, err)
		assert.Equal(t, jsformat.EUSAGE, jsformat.ErrorCode(err))
	})

	t.Run("rejects extra arguments", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{Inputs: []string{"a.js", "b.js"}}

		_, err := cli.Input()

		require.Error(t, err)
		assert.Equal(t, jsformat.EUSAGE, jsformat.ErrorCode(err))
		assert.Contains(t, jsformat.ErrorMessage(err), "got 2")
	})
}

func TestCLI_FormatOptions(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{
		IndentSize:             2,
		IndentChar:             "\t",
		PreserveNewlines:       false,
		MaxPreserveNewlines:    3,
		JSLintHappy:            true,
		BraceStyle:             "end-expand",
		SpaceBeforeConditional: false,
		UnescapeStrings:        true,
		WrapLineLength:         80,
	}

	got := cli.FormatOptions()

	assert.Equal(t, jsformat.FormatOptions{
		IndentSize:             2,
		IndentChar:             "\t",
		PreserveNewlines:       false,
		MaxPreserveNewlines:    3,
		JSLintHappy:            true,
		BraceStyle:             jsformat.BraceEndExpand,
		SpaceBeforeConditional: false,
		UnescapeStrings:        true,
		WrapLineLength:         80,
	}, got)
}

func TestCLI_OutputTarget(t *testing.T) {
	t.Parallel()

	t.Run("stdout without output flag", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{}

		assert.Equal(t, jsformat.Stdout(), cli.OutputTarget())
	})

	t.Run("file with output flag", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{Output: "out.js"}

		assert.Equal(t, jsformat.FileTarget("out.js"), cli.OutputTarget())
	})
}
