package jsformat

import (
	"regexp"
	"strings"
)

// ReferenceKind tells how a Reference is fetched.
type ReferenceKind int

const (
	// ReferencePath is a local filesystem path.
	ReferencePath ReferenceKind = iota
	// ReferenceURL is a remote address fetched over the network.
	ReferenceURL
)

// String returns a human readable name for the kind.
func (k ReferenceKind) String() string {
	if k == ReferenceURL {
		return "url"
	}
	return "path"
}

// urlPattern is a loose heuristic, not an RFC 3986 parser. It accepts
// scheme-qualified addresses (http://, ftp://, mailto:), www. prefixed hosts
// and user@host forms anywhere in the input. Everything else is a path.
var urlPattern = regexp.MustCompile(
	`((([A-Za-z]{3,9}:(?:\/\/)?)(?:[\-;:&=\+\$,\w]+@)?[A-Za-z0-9\.\-]+|(?:www\.|[\-;:&=\+\$,\w]+@)[A-Za-z0-9\.\-]+)((?:\/[\+~%\/\.\w\-_]*)?\??(?:[\-\+=&;%@\.\w_]*)#?(?:[\.\!\/\\\w]*))?)`,
)

// Reference is the classified form of the positional input argument.
type Reference struct {
	Raw  string
	Kind ReferenceKind
}

// Classify decides whether input names a remote URL or a local path.
// It never touches the network or the filesystem and never fails.
func Classify(input string) Reference {
	if urlPattern.MatchString(input) {
		return Reference{Raw: input, Kind: ReferenceURL}
	}
	return Reference{Raw: input, Kind: ReferencePath}
}

// IsURL reports whether the reference is fetched over the network.
func (r Reference) IsURL() bool {
	return r.Kind == ReferenceURL
}

// URL returns the address to request for a URL reference. Inputs matched
// without an explicit scheme (www.example.com, user@host) default to http.
func (r Reference) URL() string {
	if strings.Contains(r.Raw, "://") {
		return r.Raw
	}
	return "http://" + r.Raw
}

// String returns the reference exactly as the user supplied it.
func (r Reference) String() string {
	return r.Raw
}
