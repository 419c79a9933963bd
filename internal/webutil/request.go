package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"nuna/internal/model"
)

const dateOnly = "2006-01-02"

// DecodeJSONBody はリクエストボディをデコードします
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.NewAppError("INVALID_REQUEST_BODY", "Body permintaan kosong.", "", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return model.NewAppError("INVALID_REQUEST_BODY", "Format JSON tidak valid.", "", fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
	}
	return nil
}

// DecodeAndValidate はデコード後に validate タグで検証します。
func DecodeAndValidate(r *http.Request, dst interface{}) error {
	if err := DecodeJSONBody(r, dst); err != nil {
		return err
	}
	if err := Validator.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return NewValidationErrorResponse(verrs)
		}
		return model.NewAppError("VALIDATION_ERROR", "Data tidak valid.", "", model.ErrInvalidInput)
	}
	return nil
}

// ParseDateParam は RFC3339 か YYYY-MM-DD を受け付けます。
// endOfDay が true で日付のみの場合、その日の最後の瞬間を返す。空なら ok=false。
func ParseDateParam(r *http.Request, name string, endOfDay bool, loc *time.Location) (t time.Time, ok bool, err error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, false, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	d, err := time.ParseInLocation(dateOnly, raw, loc)
	if err != nil {
		return time.Time{}, false, model.NewAppError("INVALID_DATE", "Format tanggal tidak valid (gunakan YYYY-MM-DD atau RFC3339).", name, model.ErrInvalidInput)
	}
	if endOfDay {
		d = d.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return d, true, nil
}

// ParseIntParam は正の整数のクエリパラメータを読みます。空なら def。
func ParseIntParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, model.NewAppError("INVALID_PARAMETER", fmt.Sprintf("Parameter %s harus bilangan bulat positif.", name), name, model.ErrInvalidInput)
	}
	return n, nil
}
