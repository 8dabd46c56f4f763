package service

import "routecast/internal/domain/entity"

// QRCodeService renders saved places as scannable codes.
type QRCodeService interface {
	// GeneratePlaceQR encodes the place as a geo URI and returns a PNG image.
	GeneratePlaceQR(place *entity.FavoritePlace) ([]byte, error)
}
