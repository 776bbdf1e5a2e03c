// internal/cli/get.go
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/cobra"

	"github.com/javajoker/product-catalog/internal/models"
)

func newGetCmd(opts *rootOptions) *cobra.Command {
	var saveDir string

	cmd := &cobra.Command{
		Use:   "get ID",
		Short: "Show a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			product, err := opts.client().GetProduct(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printProduct(out, product)

			if saveDir != "" {
				return saveImages(out, saveDir, product)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&saveDir, "save-images", "", "write the product's inline images to this directory")
	return cmd
}

// saveImages writes each inline image to dir. Images stored as external
// URLs are skipped.
func saveImages(out io.Writer, dir string, p *models.Product) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	for i, img := range p.Images {
		mimeType, data, err := models.DecodeDataURL(img.DataURL)
		if err != nil {
			printWarning(out, "image %d is not inline, skipped", i+1)
			continue
		}

		name := filepath.Base(img.File.Name)
		if name == "" || name == "." || name == string(filepath.Separator) {
			name = fmt.Sprintf("product-%d-image-%d", p.ID, i+1)
			if mt := mimetype.Lookup(mimeType); mt != nil {
				name += mt.Extension()
			}
		}

		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		printSuccess(out, "Saved %s", path)
	}
	return nil
}
