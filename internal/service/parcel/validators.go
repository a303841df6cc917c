package parcel

import (
	"strings"

	"curior/internal/entities"
)

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidStatus(status entities.ParcelStatusType) bool {
	_, ok := parcelGraph[status]
	return ok
}
