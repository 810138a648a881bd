package jsformat

import "context"

// Fetcher retrieves the full text stored at a location.
// Remote implementations take a URL, local ones a filesystem path.
type Fetcher interface {
	// Fetch performs a single attempt and returns the whole content.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, location string) (string, error)
}

// Source fetches the content behind a Reference, choosing the Remote
// fetcher for URLs and the Local fetcher for paths.
type Source struct {
	Remote Fetcher
	Local  Fetcher
}

// Fetch retrieves the content for ref with exactly one call to the matching
// fetcher. Failures and empty content are reported as EFETCH errors naming
// the reference, whichever kind it is.
func (s *Source) Fetch(ctx context.Context, ref Reference) (string, error) {
	if ref.IsURL() {
		content, err := s.Remote.Fetch(ctx, ref.URL())
		if err != nil {
			return "", Errorf(EFETCH, "failed to fetch %s: %s", ref, causeMessage(err))
		}
		if content == "" {
			return "", Errorf(EFETCH, "failed to fetch %s: empty response body", ref)
		}
		return content, nil
	}

	content, err := s.Local.Fetch(ctx, ref.Raw)
	if err != nil {
		return "", Errorf(EFETCH, "cannot read %s: %s", ref, causeMessage(err))
	}
	if content == "" {
		return "", Errorf(EFETCH, "cannot get file content from %s", ref)
	}
	return content, nil
}
