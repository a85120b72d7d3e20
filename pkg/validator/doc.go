// Package validator provides a composable set of generic, type-safe validation
// helpers and rule-building utilities for string input such as form fields.
//
// The package promotes declarative validation by letting you build small Rule
// values that encapsulate a boolean Check function together with rich,
// translation-friendly error metadata. Rules are evaluated with the Apply
// helper which aggregates any failures into a ValidationErrors slice that
// satisfies the error interface, making it convenient to bubble up multiple
// field-specific problems in a single error return.
//
// # Architecture
//
// Each source file groups a family of rules (`string_rules.go`,
// `pattern_rules.go`). Every
// exported validation function simply constructs and returns a Rule instance;
// there is no hidden global state, therefore the package is completely
// stateless, allocation-light, and goroutine-safe.
//
// Core building blocks:
//   - Rule              – lightweight struct containing Check func and error meta
//   - ValidationError   – describes a single failure and supports i18n keys
//   - ValidationErrors  – slice type that implements the error interface
//   - When              – includes dependent rules only when a condition holds
//
// # Usage
//
//	err := validator.Apply(
//	    validator.RequiredString("email", email),
//	    validator.Matches("email", email, emailRe, "email"),
//	    validator.MinLenString("message", message, 10),
//	)
//	if err != nil {
//	    if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	        // iterate over field-level messages or translate them
//	    }
//	}
//
// # Error Handling
//
// ValidationErrors implements error, so it survives wrapping with %w and can
// be recovered with errors.As while preserving rich details.
// ExtractValidationErrors recovers the slice from a wrapped error so each
// field failure can be classified by its TranslationKey.
//
// # Performance Considerations
//
// All helpers are simple, allocation-free comparisons or pattern checks.
// Long-running or expensive validations (e.g. network calls) should be
// implemented outside this package and adapted into a Rule where appropriate.
//
// # Examples
//
// See the companion *_test.go files for runnable examples covering each rule
// set.
package validator
