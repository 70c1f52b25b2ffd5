package config

import (
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
)

// NewCloudinary builds a Cloudinary client from a cloudinary:// URL.
func NewCloudinary(url string) (*cloudinary.Cloudinary, error) {
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("error configuring Cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true
	return cld, nil
}
