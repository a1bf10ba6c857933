// Package location abstracts where the user currently is. The real app
// gets this from the device; the CLI gets it from flags or config.
package location

import (
	"context"
	"errors"
	"log/slog"

	"github.com/zxsa0716/ecoproject/internal/engine"
)

// ErrUnavailable means the position could not be resolved (denied,
// unsupported, or simply not provided).
var ErrUnavailable = errors.New("location unavailable")

// Provider yields the user's current coordinates or an error.
type Provider interface {
	Current(ctx context.Context) (engine.Coordinates, error)
}

// Static always returns a fixed position. Used for flag-supplied
// coordinates and in tests.
type Static struct {
	Coords engine.Coordinates
}

func (s Static) Current(context.Context) (engine.Coordinates, error) {
	return s.Coords, nil
}

// Unavailable models a denied or unsupported geolocation source.
type Unavailable struct{}

func (Unavailable) Current(context.Context) (engine.Coordinates, error) {
	return engine.Coordinates{}, ErrUnavailable
}

// Fallback wraps a provider and substitutes a default position when it
// fails, logging the degradation.
type Fallback struct {
	Inner   Provider
	Default engine.Coordinates
	Log     *slog.Logger
}

func (f Fallback) Current(ctx context.Context) (engine.Coordinates, error) {
	c, err := f.Inner.Current(ctx)
	if err == nil {
		return c, nil
	}
	if f.Log != nil {
		f.Log.Warn("falling back to default location", "error", err)
	}
	return f.Default, nil
}
