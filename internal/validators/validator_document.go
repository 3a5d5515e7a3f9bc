package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-polip/internal/document"
)

// DocumentValidator checks that protocol documents carry required fields.
// Only presence is checked; a field holding null counts as present.
type DocumentValidator struct {
}

func NewDocumentValidator() Validator {
	return &DocumentValidator{}
}

// Validate implements [Validator]. obj must be a *document.Document. Every
// name in fields is a dot-separated path that must resolve to a present key.
func (v *DocumentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	doc, ok := obj.(*document.Document)
	if !ok || doc == nil {
		return ErrUnsupportedType
	}

	for _, f := range fields {
		if err := requirePath(doc, f); err != nil {
			return err
		}
	}

	return nil
}

func requirePath(doc *document.Document, path string) error {
	if path == "" {
		return ErrUnknownField
	}

	parts := strings.Split(path, ".")
	cur := doc
	for i, p := range parts {
		if !cur.Has(p) {
			return fmt.Errorf("%w: %s", ErrMissingField, path)
		}
		if i == len(parts)-1 {
			break
		}
		next, ok := cur.GetObject(p)
		if !ok {
			return fmt.Errorf("%w: %s", ErrNotAnObject, strings.Join(parts[:i+1], "."))
		}
		cur = next
	}

	return nil
}
