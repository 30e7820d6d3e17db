// Package validators contains domain model validation applied by the
// service layer before any persistence call.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator checks domain models for structural validity.
// Optional field names restrict validation to a subset of fields; when
// omitted, a sensible default set is validated.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
