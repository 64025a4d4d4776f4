package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	catalog "github.com/Ramakant55/Trendora-Boutique/catalog/logic"
)

var collectionFilter string

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List products, optionally within one collection",
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := loadCatalog()
		if err != nil {
			return err
		}
		products := store.ListProducts()
		title := "All Products"
		if collectionFilter != "" {
			products = store.FilterByCollection(collectionFilter)
			title = collectionFilter
		}
		renderProducts(cmd.OutOrStdout(), title, products)
		return nil
	},
}

var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "List collections",
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := loadCatalog()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render("Collections"))
		for _, c := range store.ListCollections() {
			fmt.Fprintf(out, "%s  %s\n", nameStyle.Render(c.Name), categoryStyle.Render(c.Description))
		}
		return nil
	},
}

func init() {
	productsCmd.Flags().StringVar(&collectionFilter, "collection", "", "Only list products in this collection or category")
}

func renderProducts(out io.Writer, title string, products []catalog.Product) {
	fmt.Fprintln(out, titleStyle.Render(title))
	if len(products) == 0 {
		fmt.Fprintln(out, emptyStyle.Render("No products found"))
		return
	}
	for _, p := range products {
		fmt.Fprintf(out, "%3d  %s  %s  %s  %s\n",
			p.ID,
			nameStyle.Render(p.Name),
			categoryStyle.Render(p.Category),
			priceStyle.Render(p.Price.String()),
			starStyle.Render(renderStars(catalog.RatingStars(p.Rating))))
	}
}

func renderStars(s catalog.Stars) string {
	return strings.Repeat("★", s.Full) + strings.Repeat("⯨", s.Half) + strings.Repeat("☆", s.Empty)
}
