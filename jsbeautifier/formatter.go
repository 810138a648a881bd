// Package jsbeautifier implements jsformat.Formatter on top of
// github.com/ditashi/jsbeautifier-go.
package jsbeautifier

import (
	"github.com/ditashi/jsbeautifier-go/jsbeautifier"
	"github.com/fwojciec/jsformat"
)

// Ensure Formatter implements jsformat.Formatter at compile time.
var _ jsformat.Formatter = (*Formatter)(nil)

// Formatter beautifies JavaScript source.
type Formatter struct{}

// NewFormatter creates a new Formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format beautifies source using opts. The engine reports unsupported input
// either as an error or by panicking; both are returned as EINTERNAL errors.
func (f *Formatter) Format(source string, opts jsformat.FormatOptions) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = "", jsformat.Errorf(jsformat.EINTERNAL, "beautifier failed: %v", r)
		}
	}()

	result, err = jsbeautifier.Beautify(&source, engineOptions(opts))
	if err != nil {
		return "", jsformat.Errorf(jsformat.EINTERNAL, "beautifier failed: %s", err)
	}
	return result, nil
}

// engineOptions overlays opts on a copy of the engine defaults so that knobs
// jsformat does not expose keep the engine's own values. DefaultOptions
// returns the engine's shared map, which must not be written to.
//
// The engine never reads space_before_conditional and leaves \xNN escapes
// in place even with unescape_strings set. Both are still passed along.
func engineOptions(opts jsformat.FormatOptions) map[string]interface{} {
	defaults := jsbeautifier.DefaultOptions()
	m := make(map[string]interface{}, len(defaults))
	for k, v := range defaults {
		m[k] = v
	}
	m["indent_size"] = opts.IndentSize
	m["indent_char"] = opts.IndentChar
	m["preserve_newlines"] = opts.PreserveNewlines
	m["max_preserve_newlines"] = opts.MaxPreserveNewlines
	m["jslint_happy"] = opts.JSLintHappy
	m["brace_style"] = string(opts.BraceStyle)
	m["space_before_conditional"] = opts.SpaceBeforeConditional
	m["unescape_strings"] = opts.UnescapeStrings
	m["wrap_line_length"] = opts.WrapLineLength
	return m
}
