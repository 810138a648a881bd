package jsformat

// Formatter beautifies source text.
type Formatter interface {
	// Format returns source rewritten according to opts.
	// Implementations wrap engine failures in an EINTERNAL error.
	Format(source string, opts FormatOptions) (string, error)
}
