package models

import "exploreWithMe/internal/lib/datetime"

type EndpointHit struct {
	ID        int64         `json:"id,omitempty"`
	App       string        `json:"app" validate:"required"`
	URI       string        `json:"uri" validate:"required"`
	IP        string        `json:"ip" validate:"required,ip"`
	Timestamp datetime.Time `json:"timestamp"`
}

type ViewStats struct {
	App  string `json:"app"`
	URI  string `json:"uri"`
	Hits int64  `json:"hits"`
}
