package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-class-reports/models"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

// mapHTTPError returns nil for 2xx responses. Otherwise it wraps the
// sentinel for the status code with the envelope message and validation
// errors, or with the raw body when it is not an envelope.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	detail := responseDetail(resp.Body())
	if detail == "" {
		detail = http.StatusText(resp.StatusCode())
	}

	if sentinel, ok := statusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", sentinel, detail)
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), detail)
}

func responseDetail(body []byte) string {
	var envelope models.Response
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Data.Message == "" {
		return strings.TrimSpace(string(body))
	}

	if len(envelope.Data.Errors) == 0 {
		return envelope.Data.Message
	}
	return envelope.Data.Message + " " + strings.Join(envelope.Data.Errors, "; ")
}
