package qr

import (
	"fmt"
	"net/url"
	"strings"
)

// Builder produces image URLs for an external QR rendering service. The
// encoded payload is a deep link pointing at an equipment detail page.
type Builder struct {
	serviceURL string
	linkBase   string
	size       int
}

func NewBuilder(serviceURL, linkBase string, size int) *Builder {
	if size <= 0 {
		size = 200
	}
	return &Builder{
		serviceURL: serviceURL,
		linkBase:   strings.TrimRight(linkBase, "/"),
		size:       size,
	}
}

// Link returns the deep link encoded into the QR image for an equipment ID.
func (b *Builder) Link(equipmentID int) string {
	return fmt.Sprintf("%s/equipos/%d", b.linkBase, equipmentID)
}

// ImageURL returns the external service URL that renders the QR image.
func (b *Builder) ImageURL(equipmentID int) string {
	query := url.Values{}
	query.Set("size", fmt.Sprintf("%dx%d", b.size, b.size))
	query.Set("data", b.Link(equipmentID))
	return b.serviceURL + "?" + query.Encode()
}
