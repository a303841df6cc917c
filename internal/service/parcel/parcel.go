package parcel

import (
	"context"
	"fmt"

	"curior/internal/entities"
	"curior/internal/pkg/geozone"
)

type Parcel struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Parcel {
	return &Parcel{
		repository: repository,
		txManager:  txManager,
	}
}

// CreateParcel registers a new parcel in the created status. The M25
// zone flag is derived from the postcode here, never supplied by the
// caller.
func (s *Parcel) CreateParcel(ctx context.Context, parcelModify entities.ParcelModify, actor entities.RoleType) (*entities.Parcel, error) {
	if actor != entities.RoleMerchant && actor != entities.RoleAdmin {
		return nil, fmt.Errorf("%w: %s may not create parcels", ErrUnauthorized, actor)
	}
	if parcelModify.TrackingID == nil ||
		parcelModify.Receiver == nil ||
		parcelModify.Address == nil ||
		parcelModify.Postcode == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidID(*parcelModify.TrackingID) ||
		!isValidID(*parcelModify.Receiver) ||
		!isValidID(*parcelModify.Address) ||
		!isValidID(*parcelModify.Postcode) {
		return nil, ErrMissingRequiredFields
	}

	status := entities.ParcelCreated
	withinZone := geozone.WithinM25(*parcelModify.Postcode)
	parcelModify.Status = &status
	parcelModify.WithinZone = &withinZone

	created, err := s.repository.Create(ctx, parcelModify)
	if err != nil {
		return nil, fmt.Errorf("create parcel: %w", err)
	}
	return created, nil
}

// UpdateParcel patches receiver, address or postcode. A postcode
// change recomputes the zone flag; status and assignment are not
// touched here, those go through UpdateStatus and AssignDriver.
func (s *Parcel) UpdateParcel(ctx context.Context, parcelModify entities.ParcelModify, actor entities.RoleType) (*entities.Parcel, error) {
	if actor != entities.RoleMerchant && actor != entities.RoleAdmin {
		return nil, fmt.Errorf("%w: %s may not edit parcels", ErrUnauthorized, actor)
	}
	if parcelModify.ID == nil || !isValidID(*parcelModify.ID) {
		return nil, ErrMissingRequiredFields
	}
	if parcelModify.Receiver == nil && parcelModify.Address == nil && parcelModify.Postcode == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	parcelModify.Status = nil
	parcelModify.AssignedDriverID = nil
	if parcelModify.Postcode != nil {
		withinZone := geozone.WithinM25(*parcelModify.Postcode)
		parcelModify.WithinZone = &withinZone
	}

	updated, err := s.repository.Update(ctx, parcelModify)
	if err != nil {
		return nil, fmt.Errorf("update parcel: %w", err)
	}
	return updated, nil
}

func (s *Parcel) GetParcel(ctx context.Context, id string) (*entities.Parcel, error) {
	if !isValidID(id) {
		return nil, ErrMissingRequiredFields
	}

	found, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get parcel: %w", err)
	}
	return found, nil
}

func (s *Parcel) GetParcelByTracking(ctx context.Context, trackingID string) (*entities.Parcel, error) {
	if !isValidID(trackingID) {
		return nil, ErrMissingRequiredFields
	}

	found, err := s.repository.GetByTrackingID(ctx, trackingID)
	if err != nil {
		return nil, fmt.Errorf("get parcel by tracking id: %w", err)
	}
	return found, nil
}

func (s *Parcel) ListParcels(ctx context.Context) ([]entities.Parcel, error) {
	parcels, err := s.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list parcels: %w", err)
	}
	return parcels, nil
}

func (s *Parcel) ListAssignedParcels(ctx context.Context, driverID string) ([]entities.Parcel, error) {
	if !isValidID(driverID) {
		return nil, ErrMissingRequiredFields
	}

	parcels, err := s.repository.ListByDriver(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("list assigned parcels: %w", err)
	}
	return parcels, nil
}

// UpdateStatus applies one lifecycle transition on behalf of the
// actor. The read and the commit share a transaction so a concurrent
// transition on the same parcel cannot interleave.
func (s *Parcel) UpdateStatus(ctx context.Context, id string, target entities.ParcelStatusType, actor entities.RoleType) (*entities.Parcel, error) {
	if !isValidID(id) {
		return nil, ErrMissingRequiredFields
	}
	if !isValidStatus(target) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, target)
	}

	var updated *entities.Parcel
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get parcel: %w", err)
		}

		next, err := NextStatus(*current, target, actor)
		if err != nil {
			return err
		}

		updated, err = s.repository.UpdateStatus(ctx, id, next.Status)
		if err != nil {
			return fmt.Errorf("commit status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ProcessScan applies a transition keyed by tracking id. Scanner
// events carry the barcode, not the parcel id, so the lookup and the
// commit run in one transaction.
func (s *Parcel) ProcessScan(ctx context.Context, trackingID string, target entities.ParcelStatusType, actor entities.RoleType) (*entities.Parcel, error) {
	if !isValidID(trackingID) {
		return nil, ErrMissingRequiredFields
	}
	if !isValidStatus(target) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, target)
	}

	var updated *entities.Parcel
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByTrackingID(ctx, trackingID)
		if err != nil {
			return fmt.Errorf("get parcel by tracking id: %w", err)
		}

		next, err := NextStatus(*current, target, actor)
		if err != nil {
			return err
		}

		updated, err = s.repository.UpdateStatus(ctx, current.ID, next.Status)
		if err != nil {
			return fmt.Errorf("commit status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// AssignDriver is admin-only and legal only before the parcel is in
// motion. Re-assigning the same driver is a no-op success.
func (s *Parcel) AssignDriver(ctx context.Context, id, driverID string, actor entities.RoleType) (*entities.Parcel, error) {
	if !isValidID(id) || !isValidID(driverID) {
		return nil, ErrMissingRequiredFields
	}
	if actor != entities.RoleAdmin {
		return nil, fmt.Errorf("%w: %s may not assign drivers", ErrUnauthorized, actor)
	}

	var updated *entities.Parcel
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get parcel: %w", err)
		}

		if current.Status != entities.ParcelCreated && current.Status != entities.ParcelAtHub {
			return fmt.Errorf("%w: %s", ErrInvalidState, current.Status)
		}

		if current.AssignedDriverID != nil && *current.AssignedDriverID == driverID {
			updated = current
			return nil
		}

		updated, err = s.repository.UpdateAssignment(ctx, id, driverID)
		if err != nil {
			return fmt.Errorf("commit assignment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// StatusCounts reports how many parcels sit in each lifecycle status,
// with zero entries for statuses that have no parcels.
func (s *Parcel) StatusCounts(ctx context.Context) (map[entities.ParcelStatusType]int64, error) {
	counts, err := s.repository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count parcels by status: %w", err)
	}

	full := make(map[entities.ParcelStatusType]int64, len(entities.ParcelStatuses()))
	for _, status := range entities.ParcelStatuses() {
		full[status] = counts[status]
	}
	return full, nil
}
