package main

import (
	"context"
	"io"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/jsformat"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Source    *jsformat.Source
	Formatter jsformat.Formatter
	Writer    jsformat.Writer
}

// CLI defines the command-line interface structure for Kong.
// Flag names keep the beautifier's underscore spelling.
type CLI struct {
	Inputs []string `arg:"" optional:"" name:"file/url" help:"Local file path or remote URL of the source to format, exactly one is required"`

	IndentSize             int    `name:"indent_size" default:"4" env:"JSFORMAT_INDENT_SIZE" help:"Indentation size"`
	IndentChar             string `name:"indent_char" default:" " env:"JSFORMAT_INDENT_CHAR" help:"Character to indent with"`
	PreserveNewlines       bool   `name:"preserve_newlines" default:"true" negatable:"" env:"JSFORMAT_PRESERVE_NEWLINES" help:"Preserve existing line breaks"`
	MaxPreserveNewlines    int    `name:"max_preserve_newlines" default:"0" env:"JSFORMAT_MAX_PRESERVE_NEWLINES" help:"Maximum line breaks preserved in one chunk, 0 means unlimited"`
	JSLintHappy            bool   `name:"jslint_happy" negatable:"" env:"JSFORMAT_JSLINT_HAPPY" help:"Enforce jslint-stricter mode"`
	BraceStyle             string `name:"brace_style" default:"collapse" env:"JSFORMAT_BRACE_STYLE" help:"Brace placement: collapse, expand or end-expand"`
	SpaceBeforeConditional bool   `name:"space_before_conditional" default:"true" negatable:"" env:"JSFORMAT_SPACE_BEFORE_CONDITIONAL" help:"Put a space before conditions, 'if (true)' vs 'if(true)'. Accepted but currently has no effect, the beautifier always adds the space"`
	UnescapeStrings        bool   `name:"unescape_strings" negatable:"" env:"JSFORMAT_UNESCAPE_STRINGS" help:"Unescape printable characters written as \\xNN in strings. Accepted but currently has no effect, escapes are kept as written"`
	WrapLineLength         int    `name:"wrap_line_length" default:"0" env:"JSFORMAT_WRAP_LINE_LENGTH" help:"Wrap lines after this many characters, 0 means unlimited"`
	Output                 string `name:"output" short:"o" help:"Write the beautified source to this file instead of stdout"`

	Config  kong.ConfigFlag  `name:"config" help:"Load option defaults from a JSON file"`
	Verbose bool             `short:"v" help:"Log each pipeline step to stderr"`
	Version kong.VersionFlag `help:"Print version and exit"`
}

// Input returns the single positional argument.
func (c *CLI) Input() (string, error) {
	switch len(c.Inputs) {
	case 1:
		return c.Inputs[0], nil
	case 0:
		return "", jsformat.Errorf(jsformat.EUSAGE, "missing file/url argument")
	default:
		return "", jsformat.Errorf(jsformat.EUSAGE, "expected exactly one file/url argument, got %d", len(c.Inputs))
	}
}

// FormatOptions copies the parsed flags into a FormatOptions record.
func (c *CLI) FormatOptions() jsformat.FormatOptions {
	return jsformat.FormatOptions{
		IndentSize:             c.IndentSize,
		IndentChar:             c.IndentChar,
		PreserveNewlines:       c.PreserveNewlines,
		MaxPreserveNewlines:    c.MaxPreserveNewlines,
		JSLintHappy:            c.JSLintHappy,
		BraceStyle:             jsformat.BraceStyle(c.BraceStyle),
		SpaceBeforeConditional: c.SpaceBeforeConditional,
		UnescapeStrings:        c.UnescapeStrings,
		WrapLineLength:         c.WrapLineLength,
	}
}

// OutputTarget returns the file named by --output, or stdout.
func (c *CLI) OutputTarget() jsformat.OutputTarget {
	if c.Output == "" {
		return jsformat.Stdout()
	}
	return jsformat.FileTarget(c.Output)
}
