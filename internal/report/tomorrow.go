package report

import (
	"fmt"

	"golang.org/x/text/cases"

	"git.home.luguber.info/inful/dailyreport/internal/foundation/errors"
)

// DefaultCarry lists the sections copied from a filled report into the next one.
var DefaultCarry = []string{"todo"}

// ErrSectionNotFound is returned when the template declares a carried section that the
// working report no longer has.
var ErrSectionNotFound = errors.NotFoundError("section not found").Build()

// Tomorrow builds the next working report: the template's sections in template order,
// all empty except the carried ones, which take the working report's content. Carried
// names are matched case-insensitively; carry defaults to DefaultCarry.
func Tomorrow(working, template *Document, carry ...string) (*Document, error) {
	if len(carry) == 0 {
		carry = DefaultCarry
	}
	fold := cases.Fold()
	carried := make(map[string]string, len(carry))
	for _, name := range carry {
		carried[fold.String(name)] = name
	}

	next := New()
	for _, key := range template.order {
		want, ok := carried[fold.String(key)]
		if !ok {
			next.Set(key, "")
			continue
		}
		_, body, found := working.Lookup(want)
		if !found {
			return nil, ErrSectionNotFound.
				WithContext("section", key).
				WithContext(errors.HintKey, fmt.Sprintf("Add a %q section to the working report or remove it from the template.", key))
		}
		next.Set(key, body)
	}
	return next, nil
}
