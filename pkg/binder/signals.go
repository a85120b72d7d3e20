package binder

import (
	"fmt"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// Signals returns a binder that reads the datastar signal store sent with a
// datastar action. GET requests carry signals in the "datastar" query
// parameter; other methods carry them as a JSON body. Signals are matched to
// fields by their `json` tags.
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if err := datastar.ReadSignals(r, v); err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToReadSignals, err)
		}
		return nil
	}
}
