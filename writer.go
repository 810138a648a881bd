package jsformat

// Writer persists formatted text to a file.
type Writer interface {
	// WriteFile replaces any existing content of the file at path with text.
	WriteFile(path, text string) error
}
