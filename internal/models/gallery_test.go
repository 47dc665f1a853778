package models

import (
	"strings"
	"testing"
)

func TestGalleryItemInputValidate(t *testing.T) {
	t.Parallel()

	valid := GalleryItemInput{
		Title:       "Smart irrigation controller",
		Description: "Field deployment of the v2 controller board",
		Category:    CategoryIoT,
		Image:       "https://cdn.example.com/gallery/irrigation.jpg",
		IsActive:    true,
	}

	cases := []struct {
		name    string
		mutate  func(*GalleryItemInput)
		wantErr bool
	}{
		{name: "valid", mutate: func(in *GalleryItemInput) {}},
		{
			name:    "missing title",
			mutate:  func(in *GalleryItemInput) { in.Title = "" },
			wantErr: true,
		},
		{
			name:    "title over 100 chars",
			mutate:  func(in *GalleryItemInput) { in.Title = strings.Repeat("x", 101) },
			wantErr: true,
		},
		{
			name:    "description over 500 chars",
			mutate:  func(in *GalleryItemInput) { in.Description = strings.Repeat("x", 501) },
			wantErr: true,
		},
		{
			name:    "unknown category",
			mutate:  func(in *GalleryItemInput) { in.Category = "robotics" },
			wantErr: true,
		},
		{
			name:    "image not a URL",
			mutate:  func(in *GalleryItemInput) { in.Image = "not-a-url" },
			wantErr: true,
		},
		{
			name:   "title at exactly 100 chars",
			mutate: func(in *GalleryItemInput) { in.Title = strings.Repeat("x", 100) },
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			in := valid
			tc.mutate(&in)
			err := in.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestGalleryItemPatchValidate(t *testing.T) {
	t.Parallel()

	badCategory := GalleryCategory("robotics")
	goodTitle := "Updated title"
	longTitle := strings.Repeat("x", 101)
	active := false

	cases := []struct {
		name    string
		patch   GalleryItemPatch
		wantErr bool
	}{
		{name: "empty patch is valid", patch: GalleryItemPatch{}},
		{name: "active only", patch: GalleryItemPatch{IsActive: &active}},
		{name: "title only", patch: GalleryItemPatch{Title: &goodTitle}},
		{name: "long title rejected", patch: GalleryItemPatch{Title: &longTitle}, wantErr: true},
		{name: "bad category rejected", patch: GalleryItemPatch{Category: &badCategory}, wantErr: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.patch.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestGalleryItemPatchIsEmpty(t *testing.T) {
	t.Parallel()

	if !(GalleryItemPatch{}).IsEmpty() {
		t.Fatal("IsEmpty() = false for zero patch")
	}
	active := true
	if (GalleryItemPatch{IsActive: &active}).IsEmpty() {
		t.Fatal("IsEmpty() = true for patch with a field set")
	}
}

func TestProjectStatusValid(t *testing.T) {
	t.Parallel()

	for _, status := range AllProjectStatuses {
		if !status.Valid() {
			t.Fatalf("Valid() = false for known status %q", status)
		}
	}
	if ProjectStatus("archived").Valid() {
		t.Fatal("Valid() = true for unknown status")
	}
	if GalleryCategory("robotics").Valid() {
		t.Fatal("Valid() = true for unknown category")
	}
}
