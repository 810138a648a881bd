// Package jsformat provides a command-line JavaScript formatter.
// It acquires source code from a local file or a remote URL, passes it
// through a beautifier and writes the result to stdout or a file.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, fs/, jsbeautifier/).
package jsformat
