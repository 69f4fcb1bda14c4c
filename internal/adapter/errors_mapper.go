package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/fit-sync/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := responseMessage(resp)

	switch code := resp.StatusCode(); {
	case code == http.StatusBadRequest,
		code == http.StatusRequestEntityTooLarge,
		code == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrMalformedData, body)
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrBinNotFound, body)
	case code == http.StatusTooManyRequests, code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrRemoteServer, code, body)
	case code >= http.StatusBadRequest:
		return fmt.Errorf("%w: http %d: %s", ErrMalformedData, code, body)
	default:
		return fmt.Errorf("%w: unexpected http %d: %s", ErrRemoteServer, code, body)
	}
}

// responseMessage extracts the JSONBin {"message": ...} body, falling back to
// the raw body or the status text.
func responseMessage(resp *resty.Response) string {
	raw := resp.Body()

	var binErr models.BinError
	if err := json.Unmarshal(raw, &binErr); err == nil && binErr.Message != "" {
		return binErr.Message
	}

	body := strings.TrimSpace(string(raw))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return body
}

// mapTransportError classifies an error returned by resty before any response
// arrived. Caller cancellation is passed through unchanged.
func mapTransportError(op string, err error) error {
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrNetworkUnavailable, err)
}
