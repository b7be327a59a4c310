package respond

import (
	"context"
	"errors"
	"net"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// classify resolves any error into a kind plus the envelope message and
// errors payload. Tagged *Error values pass through; foreign errors from the
// validator, pgx and the network are recognized; everything else falls back
// to KindInternal with the error's text.
func classify(err error) (Kind, string, any) {
	if err == nil {
		return KindInternal, "", nil
	}

	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged.Kind, tagged.Message, tagged.Detail
	}

	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) {
		return KindValidation, "", fieldErrors(invalid)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return KindNotFound, "", nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505":
			return KindConflict, "Duplicate Entry", pgErr.Detail
		case len(pgErr.Code) >= 2 && pgErr.Code[:2] == "23":
			return KindIntegrity, "", pgErr.Message
		default:
			return KindInternal, "Database Error", pgErr.Message
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout, "", nil
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return KindTimeout, "", nil
		}
		return KindUnavailable, "", err.Error()
	}

	return KindInternal, "", err.Error()
}

// fieldErrors flattens validator output into a field → message map.
func fieldErrors(errs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(errs))
	for _, fe := range errs {
		out[fe.Field()] = validationMessage(fe)
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "value below minimum " + fe.Param()
	case "max":
		return "value above maximum " + fe.Param()
	default:
		return "failed validation rule: " + fe.Tag()
	}
}
