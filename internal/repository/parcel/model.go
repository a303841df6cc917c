package parcel

import "time"

type ParcelDB struct {
	ID               string
	TrackingID       string
	Receiver         string
	Address          string
	Postcode         string
	WithinZone       bool
	Status           string
	AssignedDriverID *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type ParcelModifyDB struct {
	ID               *string
	TrackingID       *string
	Receiver         *string
	Address          *string
	Postcode         *string
	WithinZone       *bool
	Status           *string
	AssignedDriverID *string
}
