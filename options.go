package jsformat

import "unicode/utf8"

// BraceStyle controls where the beautifier places braces.
type BraceStyle string

// Brace styles understood by the beautifier. Other values are passed
// through unchanged and left to the engine to interpret.
const (
	BraceCollapse  BraceStyle = "collapse"
	BraceExpand    BraceStyle = "expand"
	BraceEndExpand BraceStyle = "end-expand"
)

// FormatOptions configures a single Formatter run.
// Zero values of MaxPreserveNewlines and WrapLineLength mean unlimited.
type FormatOptions struct {
	IndentSize             int
	IndentChar             string
	PreserveNewlines       bool
	MaxPreserveNewlines    int
	JSLintHappy            bool
	BraceStyle             BraceStyle
	SpaceBeforeConditional bool
	UnescapeStrings        bool
	WrapLineLength         int
}

// DefaultFormatOptions returns the options used when no flag overrides them.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		IndentSize:             4,
		IndentChar:             " ",
		PreserveNewlines:       true,
		MaxPreserveNewlines:    0,
		JSLintHappy:            false,
		BraceStyle:             BraceCollapse,
		SpaceBeforeConditional: true,
		UnescapeStrings:        false,
		WrapLineLength:         0,
	}
}

// Validate checks each field against its own domain. Fields are not
// checked against each other and BraceStyle is not checked at all.
func (o FormatOptions) Validate() error {
	if o.IndentSize < 1 {
		return Errorf(EINVALID, "indent_size must be positive, got %d", o.IndentSize)
	}
	if utf8.RuneCountInString(o.IndentChar) != 1 {
		return Errorf(EINVALID, "indent_char must be a single character, got %q", o.IndentChar)
	}
	if o.MaxPreserveNewlines < 0 {
		return Errorf(EINVALID, "max_preserve_newlines must not be negative, got %d", o.MaxPreserveNewlines)
	}
	if o.WrapLineLength < 0 {
		return Errorf(EINVALID, "wrap_line_length must not be negative, got %d", o.WrapLineLength)
	}
	return nil
}

// OutputTarget is where formatted text is emitted: stdout when Path is
// empty, otherwise the file at Path.
type OutputTarget struct {
	Path string
}

// Stdout returns the standard output target.
func Stdout() OutputTarget {
	return OutputTarget{}
}

// FileTarget returns a target that overwrites the file at path.
func FileTarget(path string) OutputTarget {
	return OutputTarget{Path: path}
}

// IsStdout reports whether formatted text goes to standard output.
func (t OutputTarget) IsStdout() bool {
	return t.Path == ""
}

// String describes the target for logs and messages.
func (t OutputTarget) String() string {
	if t.IsStdout() {
		return "stdout"
	}
	return t.Path
}
