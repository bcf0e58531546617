// Package upstream holds the three platform clients. Each is a pure
// request/parse function over a single HTTP round trip: no retry, no cache,
// one attempt per call. Base URLs are injectable so tests can point the
// clients at httptest servers.
package upstream

import (
	"fmt"
	"net/http"

	domainerrors "clubtrack/contexts/platform-integration/connector-service/domain/errors"
)

func resolveHTTPClient(client *http.Client) *http.Client {
	if client != nil {
		return client
	}
	return http.DefaultClient
}

func upstreamStatusError(platform string, status string) error {
	return fmt.Errorf("%w: %s returned %s", domainerrors.ErrUpstream, platform, status)
}
