package parcel

import (
	"curior/internal/entities"
)

func ToDomain(p *ParcelDB) *entities.Parcel {
	if p == nil {
		return nil
	}

	return &entities.Parcel{
		ID:               p.ID,
		TrackingID:       p.TrackingID,
		Receiver:         p.Receiver,
		Address:          p.Address,
		Postcode:         p.Postcode,
		WithinZone:       p.WithinZone,
		Status:           entities.ParcelStatusType(p.Status),
		AssignedDriverID: p.AssignedDriverID,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func FromDomainModify(parcelModify *entities.ParcelModify) *ParcelModifyDB {
	if parcelModify == nil {
		return nil
	}
	parcelDB := &ParcelModifyDB{}

	if parcelModify.ID != nil {
		parcelDB.ID = parcelModify.ID
	}
	if parcelModify.TrackingID != nil {
		parcelDB.TrackingID = parcelModify.TrackingID
	}
	if parcelModify.Receiver != nil {
		parcelDB.Receiver = parcelModify.Receiver
	}
	if parcelModify.Address != nil {
		parcelDB.Address = parcelModify.Address
	}
	if parcelModify.Postcode != nil {
		parcelDB.Postcode = parcelModify.Postcode
	}
	if parcelModify.WithinZone != nil {
		parcelDB.WithinZone = parcelModify.WithinZone
	}
	if parcelModify.Status != nil {
		status := parcelModify.Status.String()
		parcelDB.Status = &status
	}
	if parcelModify.AssignedDriverID != nil {
		parcelDB.AssignedDriverID = parcelModify.AssignedDriverID
	}

	return parcelDB
}

func ToDomainList(parcelsDB []ParcelDB) []entities.Parcel {
	if len(parcelsDB) == 0 {
		return []entities.Parcel{}
	}

	result := make([]entities.Parcel, len(parcelsDB))
	for i, parcelDB := range parcelsDB {
		result[i] = *ToDomain(&parcelDB)
	}
	return result
}
