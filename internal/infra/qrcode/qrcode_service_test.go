package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"routecast/config"
	"routecast/internal/domain/entity"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(size int, level string) *qrcodeService {
	cfg := &config.Config{QRCode: &config.QRCodeConfig{Size: size, ErrorCorrectionLevel: level}}

	return NewQRCodeService(cfg).(*qrcodeService)
}

func TestGeoURI(t *testing.T) {
	place := &entity.FavoritePlace{
		Name:     "Casa Abuela",
		Location: entity.GeoPoint{Lat: 8.9824, Lng: -79.5199},
	}

	assert.Equal(t, "geo:8.982400,-79.519900?q=Casa+Abuela", GeoURI(place))

	place.Name = ""
	assert.Equal(t, "geo:8.982400,-79.519900", GeoURI(place))
}

func TestRecoveryLevel(t *testing.T) {
	tests := map[string]qrcode.RecoveryLevel{
		"L": qrcode.Low,
		"M": qrcode.Medium,
		"Q": qrcode.High,
		"H": qrcode.Highest,
		"":  qrcode.Medium,
		"x": qrcode.Medium,
	}

	for name, expected := range tests {
		assert.Equal(t, expected, recoveryLevel(name), "level %q", name)
	}
}

func TestGeneratePlaceQR(t *testing.T) {
	srv := newTestService(128, "H")

	pngBytes, err := srv.GeneratePlaceQR(&entity.FavoritePlace{
		Name:     "Office",
		Location: entity.GeoPoint{Lat: 9.0, Lng: -79.5},
	})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
	assert.Equal(t, 128, img.Bounds().Dy())
}

func TestGeneratePlaceQR_NilPlace(t *testing.T) {
	_, err := newTestService(128, "M").GeneratePlaceQR(nil)

	assert.Error(t, err)
}
