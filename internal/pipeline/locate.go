package pipeline

import (
	"context"
	"errors"

	"github.com/AbdulWasayUl/go-weather-widget/models"
)

var ErrPermissionDenied = errors.New("geolocation permission denied")

// Locator answers a single position request.
type Locator interface {
	CurrentPosition(ctx context.Context) (models.Coordinates, error)
}

// StaticLocator always reports the same position, either configured or
// handed over by a browser that already resolved it.
type StaticLocator struct {
	Position models.Coordinates
}

func (l StaticLocator) CurrentPosition(context.Context) (models.Coordinates, error) {
	return l.Position, nil
}

// DeniedLocator stands in for a caller whose position request was refused.
type DeniedLocator struct{}

func (DeniedLocator) CurrentPosition(context.Context) (models.Coordinates, error) {
	return models.Coordinates{}, ErrPermissionDenied
}

// Locate asks loc for the device position and fetches weather for it. A nil
// locator means the capability is missing.
func (p *Pipeline) Locate(ctx context.Context, loc Locator) error {
	if loc == nil {
		return p.showFailure(&FetchError{Kind: KindUnavailable, Message: MsgUnsupported})
	}

	pos, err := loc.CurrentPosition(ctx)
	if err != nil {
		return p.showFailure(&FetchError{Kind: KindPermission, Message: MsgPermissionDenied, Err: err})
	}
	return p.FetchByCoordinates(ctx, pos.Lat, pos.Lon)
}
