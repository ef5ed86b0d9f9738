package adapter

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for HTTP 200 and a *RemoteCallError for any other
// status. The service signals success with 200 only, so other 2xx codes are
// failures too.
func mapHTTPError(method, path string, resp *resty.Response) error {
	if resp.StatusCode() == http.StatusOK {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return &RemoteCallError{
		Method:     method,
		Path:       path,
		StatusCode: resp.StatusCode(),
		Body:       body,
	}
}
