// Package validation provides input validation that reports failures as
// problem chains.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with failure collection. Every failed field
// travels as a Field attachment on the resulting problem, so callers can
// recover the structured list instead of parsing the message.
//
// # Struct Tag Validation
//
//	type CreateUserCmd struct {
//	    Name  string `validate:"required,min=2"`
//	    Email string `validate:"required,email"`
//	}
//	p := validation.Validate(cmd)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("name", cmd.Name).RequiredUUID("tenant_id", cmd.TenantID)
//	err := v.Give(acc)
package validation
