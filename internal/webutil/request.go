// internal/webutil/request.go
package webutil

import (
	"encoding/json"
	"net/http"

	"github.com/chia199712/Fitness-Web-sub000/internal/model"
)

// DecodeJSONBody decodes the request body into dst. Unknown fields are
// rejected so typos surface as 400s instead of silently dropped input.
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return model.ErrInvalidInput
	}
	return nil
}
