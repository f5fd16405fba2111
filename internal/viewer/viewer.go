// Package viewer carries the identity resolved for the current request.
package viewer

import (
	"context"
	"fmt"

	"fightcard/internal/shared"
)

// Viewer is the identity (or absence thereof) resolved for a request.
// The zero value is the anonymous viewer.
type Viewer struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Anonymous is the viewer of a request without a live session.
var Anonymous = Viewer{}

// IsAnonymous reports whether no identity was resolved.
func (v Viewer) IsAnonymous() bool {
	return v.ID == ""
}

// Require fails with shared.ErrUnauthenticated for anonymous viewers.
func Require(v Viewer) error {
	if v.IsAnonymous() {
		return fmt.Errorf("viewer required: %w", shared.ErrUnauthenticated)
	}
	return nil
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying v.
func NewContext(ctx context.Context, v Viewer) context.Context {
	return context.WithValue(ctx, ctxKey{}, v)
}

// FromContext returns the viewer stored in ctx, or Anonymous.
func FromContext(ctx context.Context) Viewer {
	if v, ok := ctx.Value(ctxKey{}).(Viewer); ok {
		return v
	}
	return Anonymous
}
