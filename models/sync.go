package models

import "time"

// SyncSnapshot is a complete copy of the inventory list plus the metadata
// used for last-writer-wins adoption. Version is a monotonic counter and
// the only field consulted for ordering; LastUpdated is display metadata.
type SyncSnapshot struct {
	Products    []Product `json:"products"`
	Version     int64     `json:"version"`
	DeviceID    string    `json:"deviceId"`
	LastUpdated time.Time `json:"lastUpdated"`
}
