package api

import (
	"context"
	"encoding/json"
	"fmt"

	"mwadmin/internal/models"
)

// GalleryList is the unwrapped gallery listing payload.
type GalleryList struct {
	Items      []models.GalleryItem `json:"galleryItems"`
	Pagination models.Pagination    `json:"pagination"`
}

// ListGalleryItems fetches the full admin gallery listing, inactive
// items included.
func (c *Client) ListGalleryItems(ctx context.Context, params models.GalleryListParams) (*GalleryList, error) {
	body, err := c.get(ctx, "/gallery/admin/all", params.Query())
	if err != nil {
		c.log.Error().Err(err).Msg("failed to fetch gallery items")
		return nil, err
	}

	var list GalleryList
	if err := json.Unmarshal(unwrapData(body), &list); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}
	return &list, nil
}

// CreateGalleryItem creates a new gallery item. Input is validated
// locally before any network call.
func (c *Client) CreateGalleryItem(ctx context.Context, input models.GalleryItemInput) (*models.GalleryItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	body, err := c.post(ctx, "/gallery", input)
	if err != nil {
		c.log.Error().Str("title", input.Title).Err(err).Msg("failed to create gallery item")
		return nil, err
	}
	return decodeGalleryItem(body)
}

// UpdateGalleryItem applies a partial update; only the patch's non-nil
// fields are sent, so everything else stays as it was.
func (c *Client) UpdateGalleryItem(ctx context.Context, id string, patch models.GalleryItemPatch) (*models.GalleryItem, error) {
	if patch.IsEmpty() {
		return nil, fmt.Errorf("nothing to update")
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	body, err := c.patch(ctx, "/gallery/"+id, patch)
	if err != nil {
		c.log.Error().Str("id", id).Err(err).Msg("failed to update gallery item")
		return nil, err
	}
	return decodeGalleryItem(body)
}

// DeleteGalleryItem removes a gallery item.
func (c *Client) DeleteGalleryItem(ctx context.Context, id string) error {
	if _, err := c.delete(ctx, "/gallery/"+id); err != nil {
		c.log.Error().Str("id", id).Err(err).Msg("failed to delete gallery item")
		return err
	}
	return nil
}

// GalleryCategories fetches the category enumeration.
func (c *Client) GalleryCategories(ctx context.Context) ([]models.GalleryCategory, error) {
	body, err := c.get(ctx, "/gallery/categories", nil)
	if err != nil {
		c.log.Error().Err(err).Msg("failed to fetch categories")
		return nil, err
	}

	raw, ok := extractField(body, "categories")
	if !ok {
		return nil, nil
	}
	var categories []models.GalleryCategory
	if err := json.Unmarshal(raw, &categories); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}
	return categories, nil
}

func decodeGalleryItem(body []byte) (*models.GalleryItem, error) {
	var item models.GalleryItem
	var err error
	if raw, ok := extractField(body, "galleryItem"); ok {
		err = json.Unmarshal(raw, &item)
	} else {
		err = json.Unmarshal(unwrapData(body), &item)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}
	return &item, nil
}
