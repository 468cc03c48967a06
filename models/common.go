package models

import (
	"context"
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/mongo"
)

// TriggerSource names the UI action that produced a Trigger.
type TriggerSource string

const (
	SourceSearch  TriggerSource = "search"
	SourceEnter   TriggerSource = "enter"
	SourceLocate  TriggerSource = "locate"
	SourceStartup TriggerSource = "startup"
	SourceRefresh TriggerSource = "refresh"
)

// Trigger is one queued unit of work for the worker pool.
type Trigger struct {
	Source  TriggerSource
	Query   string
	RunFunc func(ctx context.Context) error
}

type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lon float64 `json:"lon" bson:"lon"`
}

// String formats the pair the way the weather provider expects it in q=.
func (c Coordinates) String() string {
	return fmt.Sprintf("%s,%s",
		strconv.FormatFloat(c.Lat, 'f', -1, 64),
		strconv.FormatFloat(c.Lon, 'f', -1, 64))
}

// Preset is a named place offered as a shortcut and as the startup location.
type Preset struct {
	Name    string  `json:"name" bson:"name"`
	Country string  `json:"country" bson:"country"`
	Lat     float64 `json:"lat" bson:"lat"`
	Lon     float64 `json:"lon" bson:"lon"`
}

type RateLimitSettings struct {
	RequestsPerSecond float64
	Burst             int
}

type Migration struct {
	Name string
	Func func(ctx context.Context, client *mongo.Client) error
}
