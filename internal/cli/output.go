// internal/cli/output.go
package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/javajoker/product-catalog/internal/models"
)

var (
	successColor  = color.New(color.FgGreen)
	errorColor    = color.New(color.FgRed)
	warningColor  = color.New(color.FgYellow)
	activeColor   = color.New(color.FgBlue)
	archivedColor = color.New(color.FgYellow)
)

func printSuccess(w io.Writer, msg string, args ...interface{}) {
	successColor.Fprintf(w, "✓ "+msg+"\n", args...)
}

func printError(w io.Writer, msg string, args ...interface{}) {
	errorColor.Fprintf(w, "✗ "+msg+"\n", args...)
}

func printWarning(w io.Writer, msg string, args ...interface{}) {
	warningColor.Fprintf(w, "⚠ "+msg+"\n", args...)
}

func statusLabel(status string) string {
	switch models.ProductStatus(status) {
	case models.ProductStatusActive:
		return activeColor.Sprint(status)
	case models.ProductStatusArchived:
		return archivedColor.Sprint(status)
	default:
		return status
	}
}

func printProduct(w io.Writer, p *models.Product) {
	fmt.Fprintf(w, "ID:          %d\n", p.ID)
	fmt.Fprintf(w, "Name:        %s\n", p.Name)
	fmt.Fprintf(w, "Price:       %s\n", p.Price.String())
	fmt.Fprintf(w, "Status:      %s\n", statusLabel(p.Status))
	fmt.Fprintf(w, "Description: %s\n", p.Description)
	fmt.Fprintf(w, "Images:      %d\n", len(p.Images))
	for i, img := range p.Images {
		if img.File.Name == "" {
			fmt.Fprintf(w, "  %d. %s\n", i+1, img.DataURL)
			continue
		}
		fmt.Fprintf(w, "  %d. %s (%s, %d bytes)\n", i+1, img.File.Name, img.File.Type, img.File.Size)
	}
}
