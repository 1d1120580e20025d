package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/MKhiriev/go-class-reports/internal/validators"
)

const maxBodyBytes = 1 << 20

// decodeInput reads the request body into a validators.Input.
//
// Form bodies keep every value as a string (the first one per key). JSON
// bodies must be objects; numbers are kept as json.Number. An empty body
// yields an empty Input so that validation reports every required field.
func decodeInput(w http.ResponseWriter, r *http.Request) (validators.Input, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		return decodeForm(r)
	default:
		return decodeJSON(r.Body)
	}
}

func decodeForm(r *http.Request) (validators.Input, error) {
	if err := r.ParseMultipartForm(maxBodyBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}

	input := make(validators.Input, len(r.PostForm))
	for key, values := range r.PostForm {
		if len(values) > 0 {
			input[key] = values[0]
		}
	}

	return input, nil
}

func decodeJSON(body io.Reader) (validators.Input, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return validators.Input{}, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var input validators.Input
	if err = decoder.Decode(&input); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	if input == nil {
		return validators.Input{}, nil
	}

	return input, nil
}
