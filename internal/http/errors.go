package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/fivetwenty-io/xinca/pkg/xinca"
)

const redirectMessage = "Unexpected Redirect"

// errorBody is the error envelope the server uses for rejected requests.
type errorBody struct {
	Errors *[]string `json:"errors"`
}

// classify maps a response to nil (success) or an error. 2xx and 3xx other
// than 302 succeed.
func classify(resp *xinca.Response) error {
	code := resp.StatusCode

	if code == http.StatusFound {
		return &xinca.Error{
			Kind:       xinca.ErrUnexpectedRedirect,
			StatusCode: code,
			Message:    redirectMessage,
			Response:   resp,
		}
	}

	if code >= http.StatusOK && code < http.StatusBadRequest {
		return nil
	}

	message := extractMessage(code, resp.Reason, resp.Body)

	switch {
	case code == http.StatusUnauthorized:
		return &xinca.Error{Kind: xinca.ErrAuthentication, StatusCode: code, Message: message, Response: resp}
	case code == http.StatusForbidden:
		return &xinca.Error{Kind: xinca.ErrAuthorization, StatusCode: code, Message: message, Response: resp}
	case code >= http.StatusBadRequest && code < http.StatusInternalServerError:
		return &xinca.StatusError{StatusCode: code, Message: message, Body: resp.Body, Response: resp}
	default:
		return &xinca.Error{Kind: xinca.ErrServer, StatusCode: code, Message: message, Response: resp}
	}
}

// extractMessage prefers the server's "errors" array, then the reason
// phrase, then "{code}: {body}".
func extractMessage(code int, reason string, body []byte) string {
	var envelope errorBody

	err := json.Unmarshal(body, &envelope)
	if err == nil && envelope.Errors != nil {
		return strings.Join(*envelope.Errors, ",")
	}

	if reason != "" {
		return reason
	}

	return fmt.Sprintf("%d: %s", code, body)
}
