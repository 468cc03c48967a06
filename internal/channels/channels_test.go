package channels_test

import (
	"testing"

	"github.com/AbdulWasayUl/go-weather-widget/internal/channels"
	"github.com/AbdulWasayUl/go-weather-widget/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannels_Table(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{"SingleMessage", "London", "London"},
		{"AnotherMessage", "51.5,-0.12", "51.5,-0.12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := channels.New(0)

			require.NoError(t, ch.Submit(models.Trigger{Query: tt.query}))

			got := (<-ch.Triggers).Query
			ch.WG.Done()

			if got != tt.expected {
				t.Fatalf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestChannels_Full(t *testing.T) {
	ch := channels.New(1)

	require.NoError(t, ch.Submit(models.Trigger{Query: "a"}))
	assert.ErrorIs(t, ch.Submit(models.Trigger{Query: "b"}), channels.ErrQueueFull)

	<-ch.Triggers
	ch.WG.Done()
	ch.WG.Wait()
}

func TestChannels_Closed(t *testing.T) {
	ch := channels.New(2)
	require.NoError(t, ch.Submit(models.Trigger{Query: "queued"}))

	ch.Close()
	ch.Close()

	assert.ErrorIs(t, ch.Submit(models.Trigger{Query: "late"}), channels.ErrClosed)

	got, ok := <-ch.Triggers
	require.True(t, ok)
	assert.Equal(t, "queued", got.Query)
	_, ok = <-ch.Triggers
	assert.False(t, ok)
}
