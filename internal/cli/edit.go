// internal/cli/edit.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javajoker/product-catalog/internal/client"
	"github.com/javajoker/product-catalog/internal/models"
)

type productFlags struct {
	name        string
	price       string
	description string
	status      string
	images      []string
}

func (f *productFlags) register(cmd *cobra.Command, defaultStatus string) {
	cmd.Flags().StringVar(&f.name, "name", "", "product name")
	cmd.Flags().StringVar(&f.price, "price", "", "product price")
	cmd.Flags().StringVar(&f.description, "description", "", "product description (may contain markup)")
	cmd.Flags().StringVar(&f.status, "status", defaultStatus, "product status (active or archived)")
	cmd.Flags().StringArrayVar(&f.images, "image", nil, "image file to attach (repeatable)")
}

// apply copies the flags the user set onto form and loads the images.
func (f *productFlags) apply(cmd *cobra.Command, form *client.ProductForm) error {
	flags := cmd.Flags()
	if flags.Changed("name") {
		form.Name = f.name
	}
	if flags.Changed("price") {
		form.Price = f.price
	}
	if flags.Changed("description") {
		form.Description = f.description
	}
	if flags.Changed("status") {
		if !models.ProductStatus(f.status).Known() {
			return fmt.Errorf("unknown status %q (want one of %v)", f.status, models.ProductStatuses)
		}
		form.Status = f.status
	} else if form.Status == "" {
		form.Status = f.status
	}

	for _, path := range f.images {
		img, err := client.LoadImage(path)
		if err != nil {
			return err
		}
		form.Images = append(form.Images, img)
	}
	return nil
}

func newCreateCmd(opts *rootOptions) *cobra.Command {
	flags := &productFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product",
		Long:  "Creates a product; at least one --image is required",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form := &client.ProductForm{}
			if err := flags.apply(cmd, form); err != nil {
				return err
			}

			product, err := opts.client().CreateProduct(cmd.Context(), form)
			if err != nil {
				return err
			}

			printSuccess(cmd.OutOrStdout(), "Created product %d (%s)", product.ID, product.Name)
			return nil
		},
	}

	flags.register(cmd, string(models.ProductStatusActive))
	return cmd
}

func newUpdateCmd(opts *rootOptions) *cobra.Command {
	flags := &productFlags{}

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Edit a product",
		Long:  "Edits a product; unset flags keep their current values and --image appends images",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			c := opts.client()
			current, err := c.GetProduct(cmd.Context(), id)
			if err != nil {
				return err
			}

			form := client.NewEditForm(*current)
			if err := flags.apply(cmd, form); err != nil {
				return err
			}

			product, err := c.UpdateProduct(cmd.Context(), id, form)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printSuccess(out, "Updated product %d", product.ID)
			printProduct(out, product)
			return nil
		},
	}

	flags.register(cmd, "")
	return cmd
}

func newDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := opts.client().DeleteProduct(cmd.Context(), id); err != nil {
				return err
			}

			printSuccess(cmd.OutOrStdout(), "Deleted product %d", id)
			return nil
		},
	}
}
