package commands

import (
	"fmt"
	"strings"

	"mwadmin/internal/models"
	"mwadmin/internal/util"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	galleryCategoryFilter string
	galleryPage           int
	galleryLimit          int
	galleryDeleteForce    bool

	galleryTitle       string
	galleryDescription string
	galleryCategory    string
	galleryImage       string
	galleryInactive    bool
	galleryActive      bool
)

var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Curate the public image gallery",
	Long:  "List, create, update, and delete gallery items; the active flag controls public visibility",
}

var galleryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all gallery items, inactive included",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := requireAdmin(cmd)
		if err != nil {
			return err
		}

		params := models.GalleryListParams{Page: galleryPage, Limit: galleryLimit}
		if galleryCategoryFilter != "" && galleryCategoryFilter != "all" {
			category := models.GalleryCategory(galleryCategoryFilter)
			if !category.Valid() {
				return fmt.Errorf("%w: %q (valid: %s)", models.ErrInvalidCategory, galleryCategoryFilter, categoryList())
			}
			params.Category = category
		}

		list, err := client.ListGalleryItems(cmd.Context(), params)
		if err != nil {
			return fmt.Errorf("failed to list gallery items: %w", err)
		}

		if len(list.Items) == 0 {
			fmt.Println("No gallery items found")
			return nil
		}

		fmt.Printf("%-24s  %-30s  %-12s  %-8s\n", "ID", "TITLE", "CATEGORY", "VISIBLE")
		for _, item := range list.Items {
			fmt.Printf("%-24s  %-30s  %-12s  ", item.ID, util.Truncate(item.Title, 30), item.Category)
			if item.IsActive {
				color.Green("yes")
			} else {
				color.Red("no")
			}
		}
		return nil
	},
}

var galleryCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a gallery item",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := requireAdmin(cmd)
		if err != nil {
			return err
		}

		input := models.GalleryItemInput{
			Title:       galleryTitle,
			Description: galleryDescription,
			Category:    models.GalleryCategory(galleryCategory),
			Image:       galleryImage,
			IsActive:    !galleryInactive,
		}

		item, err := client.CreateGalleryItem(cmd.Context(), input)
		if err != nil {
			return fmt.Errorf("failed to create gallery item: %w", err)
		}

		color.Green("Created gallery item %s (%s)", item.ID, item.Title)
		return nil
	},
}

var galleryUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a gallery item",
	Long:  "Only the flags you pass are sent; everything else stays unchanged",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := requireAdmin(cmd)
		if err != nil {
			return err
		}

		var patch models.GalleryItemPatch
		if cmd.Flags().Changed("title") {
			patch.Title = &galleryTitle
		}
		if cmd.Flags().Changed("description") {
			patch.Description = &galleryDescription
		}
		if cmd.Flags().Changed("category") {
			category := models.GalleryCategory(galleryCategory)
			patch.Category = &category
		}
		if cmd.Flags().Changed("image") {
			patch.Image = &galleryImage
		}
		if cmd.Flags().Changed("active") {
			patch.IsActive = &galleryActive
		}

		if patch.IsEmpty() {
			return fmt.Errorf("nothing to update; pass at least one of --title, --description, --category, --image, --active")
		}

		item, err := client.UpdateGalleryItem(cmd.Context(), args[0], patch)
		if err != nil {
			return fmt.Errorf("failed to update gallery item: %w", err)
		}

		color.Green("Updated gallery item %s", item.ID)
		return nil
	},
}

var galleryToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Toggle a gallery item's public visibility",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := requireAdmin(cmd)
		if err != nil {
			return err
		}

		// No single-item endpoint; find the current flag in the listing.
		list, err := client.ListGalleryItems(cmd.Context(), models.GalleryListParams{Limit: 100})
		if err != nil {
			return fmt.Errorf("failed to fetch gallery items: %w", err)
		}

		for _, item := range list.Items {
			if item.ID != args[0] {
				continue
			}
			active := !item.IsActive
			updated, err := client.UpdateGalleryItem(cmd.Context(), item.ID, models.GalleryItemPatch{IsActive: &active})
			if err != nil {
				return fmt.Errorf("failed to toggle gallery item: %w", err)
			}
			if updated.IsActive {
				color.Green("Gallery item %s is now visible", updated.ID)
			} else {
				color.Yellow("Gallery item %s is now hidden", updated.ID)
			}
			return nil
		}

		return fmt.Errorf("gallery item %s not found", args[0])
	},
}

var galleryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a gallery item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !galleryDeleteForce && !confirm(fmt.Sprintf("Delete gallery item %s?", args[0])) {
			fmt.Println("Aborted")
			return nil
		}

		_, client, err := requireAdmin(cmd)
		if err != nil {
			return err
		}

		if err := client.DeleteGalleryItem(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete gallery item: %w", err)
		}

		color.Green("Gallery item %s deleted", args[0])
		return nil
	},
}

var galleryCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List gallery categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := requireAdmin(cmd)
		if err != nil {
			return err
		}

		categories, err := client.GalleryCategories(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch categories: %w", err)
		}

		if len(categories) == 0 {
			// The endpoint is optional; fall back to the known set.
			categories = models.AllGalleryCategories
		}
		for _, c := range categories {
			fmt.Println(c)
		}
		return nil
	},
}

func categoryList() string {
	names := make([]string, len(models.AllGalleryCategories))
	for i, c := range models.AllGalleryCategories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func init() {
	rootCmd.AddCommand(galleryCmd)
	galleryCmd.AddCommand(galleryListCmd)
	galleryCmd.AddCommand(galleryCreateCmd)
	galleryCmd.AddCommand(galleryUpdateCmd)
	galleryCmd.AddCommand(galleryToggleCmd)
	galleryCmd.AddCommand(galleryDeleteCmd)
	galleryCmd.AddCommand(galleryCategoriesCmd)

	galleryListCmd.Flags().StringVar(&galleryCategoryFilter, "category", "", "Filter by category ("+categoryList()+")")
	galleryListCmd.Flags().IntVar(&galleryPage, "page", 0, "Page number")
	galleryListCmd.Flags().IntVar(&galleryLimit, "limit", 100, "Page size")

	galleryCreateCmd.Flags().StringVar(&galleryTitle, "title", "", "Item title (max 100 chars)")
	galleryCreateCmd.Flags().StringVar(&galleryDescription, "description", "", "Item description (max 500 chars)")
	galleryCreateCmd.Flags().StringVar(&galleryCategory, "category", string(models.CategoryIoT), "Category ("+categoryList()+")")
	galleryCreateCmd.Flags().StringVar(&galleryImage, "image", "", "Image URL")
	galleryCreateCmd.Flags().BoolVar(&galleryInactive, "inactive", false, "Create hidden from the public site")
	galleryCreateCmd.MarkFlagRequired("title")
	galleryCreateCmd.MarkFlagRequired("description")
	galleryCreateCmd.MarkFlagRequired("image")

	galleryUpdateCmd.Flags().StringVar(&galleryTitle, "title", "", "New title")
	galleryUpdateCmd.Flags().StringVar(&galleryDescription, "description", "", "New description")
	galleryUpdateCmd.Flags().StringVar(&galleryCategory, "category", "", "New category ("+categoryList()+")")
	galleryUpdateCmd.Flags().StringVar(&galleryImage, "image", "", "New image URL")
	galleryUpdateCmd.Flags().BoolVar(&galleryActive, "active", false, "Set public visibility")

	galleryDeleteCmd.Flags().BoolVarP(&galleryDeleteForce, "force", "f", false, "Skip confirmation")
}
