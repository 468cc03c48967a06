package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/AbdulWasayUl/go-weather-widget/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocate(t *testing.T) {
	tests := []struct {
		name        string
		locator     Locator
		wantKind    Kind
		wantMsg     string
		wantQueries []string
	}{
		{
			name:     "capability missing",
			locator:  nil,
			wantKind: KindUnavailable,
			wantMsg:  MsgUnsupported,
		},
		{
			name:     "permission denied",
			locator:  DeniedLocator{},
			wantKind: KindPermission,
			wantMsg:  MsgPermissionDenied,
		},
		{
			name:        "position resolved",
			locator:     StaticLocator{Position: models.Coordinates{Lat: 40.4168, Lon: -3.7038}},
			wantQueries: []string{"40.4168,-3.7038"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := okSource()
			rec := &recorder{}
			p := New(src, rec, testOptions())

			err := p.Locate(context.Background(), tt.locator)

			assert.Equal(t, tt.wantQueries, src.currentQueries)
			if tt.wantMsg == "" {
				require.NoError(t, err)
				assert.Len(t, rec.snapshot().cards, 3)
				return
			}

			var fe *FetchError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.wantKind, fe.Kind)
			assert.Equal(t, tt.wantMsg, rec.snapshot().visibleError)
			assert.Empty(t, rec.snapshot().loadingLog, "no fetch was started")
		})
	}
}

func TestDeniedLocator(t *testing.T) {
	_, err := DeniedLocator{}.CurrentPosition(context.Background())
	assert.ErrorIs(t, err, ErrPermissionDenied)
}
