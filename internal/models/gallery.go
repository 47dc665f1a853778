package models

import (
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// GalleryCategory enumerates the public gallery sections.
type GalleryCategory string

const (
	CategoryIoT       GalleryCategory = "iot"
	CategoryEVehicles GalleryCategory = "e-vehicles"
	CategoryAI        GalleryCategory = "ai"
	CategoryHardware  GalleryCategory = "hardware"
	CategorySoftware  GalleryCategory = "software"
	CategoryVLSI      GalleryCategory = "vlsi"
)

// AllGalleryCategories lists every known category.
var AllGalleryCategories = []GalleryCategory{
	CategoryIoT,
	CategoryEVehicles,
	CategoryAI,
	CategoryHardware,
	CategorySoftware,
	CategoryVLSI,
}

func (c GalleryCategory) Valid() bool {
	for _, known := range AllGalleryCategories {
		if c == known {
			return true
		}
	}
	return false
}

// GalleryItem represents one curated image on the public site. The
// active flag controls public visibility; the backend enforces it.
type GalleryItem struct {
	ID          string          `json:"_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    GalleryCategory `json:"category"`
	Image       string          `json:"image"`
	IsActive    bool            `json:"isActive"`
}

// GalleryItemInput is the payload for creating a gallery item. Field
// limits mirror what the backend enforces so mistakes fail before any
// network call; the backend remains authoritative.
type GalleryItemInput struct {
	Title       string          `json:"title" validate:"required,max=100"`
	Description string          `json:"description" validate:"required,max=500"`
	Category    GalleryCategory `json:"category" validate:"required,oneof=iot e-vehicles ai hardware software vlsi"`
	Image       string          `json:"image" validate:"required,url"`
	IsActive    bool            `json:"isActive"`
}

// GalleryItemPatch is a partial update; nil fields are left untouched
// by the backend and never appear on the wire.
type GalleryItemPatch struct {
	Title       *string          `json:"title,omitempty" validate:"omitempty,max=100"`
	Description *string          `json:"description,omitempty" validate:"omitempty,max=500"`
	Category    *GalleryCategory `json:"category,omitempty" validate:"omitempty,oneof=iot e-vehicles ai hardware software vlsi"`
	Image       *string          `json:"image,omitempty" validate:"omitempty,url"`
	IsActive    *bool            `json:"isActive,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p GalleryItemPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Category == nil && p.Image == nil && p.IsActive == nil
}

var validate = validator.New()

func (in GalleryItemInput) Validate() error {
	return validate.Struct(in)
}

func (p GalleryItemPatch) Validate() error {
	return validate.Struct(p)
}

// GalleryListParams are the query parameters for the admin gallery
// listing, which includes inactive items.
type GalleryListParams struct {
	Page     int
	Limit    int
	Category GalleryCategory
}

func (p GalleryListParams) Query() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Category != "" {
		q.Set("category", string(p.Category))
	}
	return q
}
