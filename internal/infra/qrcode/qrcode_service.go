package qrcode

import (
	"fmt"
	"net/url"

	"routecast/config"
	"routecast/internal/domain/entity"
	"routecast/internal/domain/service"
	"routecast/internal/errors"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	return &qrcodeService{
		size:                 cfg.QRCode.Size,
		errorCorrectionLevel: recoveryLevel(cfg.QRCode.ErrorCorrectionLevel),
	}
}

func recoveryLevel(name string) qrcode.RecoveryLevel {
	switch name {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GeneratePlaceQR encodes the place as an RFC 5870 geo URI
func (s *qrcodeService) GeneratePlaceQR(place *entity.FavoritePlace) ([]byte, error) {
	if place == nil {
		return nil, errors.New("place is required")
	}

	qrCode, err := qrcode.New(GeoURI(place), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// GeoURI formats a place as geo:lat,lng with the name as the query label.
func GeoURI(place *entity.FavoritePlace) string {
	uri := fmt.Sprintf("geo:%.6f,%.6f", place.Location.Lat, place.Location.Lng)
	if place.Name != "" {
		uri += "?q=" + url.QueryEscape(place.Name)
	}

	return uri
}
