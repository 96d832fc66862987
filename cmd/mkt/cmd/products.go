package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	apiclient "github.com/chzzmarket/market-api/internal/api/client"
	domain "github.com/chzzmarket/market-api/pkg/types"
)

func productsCmd() *cobra.Command {
	productsRoot := &cobra.Command{
		Use:     "products",
		Aliases: []string{"p"},
		Short:   "Browse and manage products",
		Long: "Browse pre-registered products and run the owner commands that\n" +
			"create, edit, delete and auction them.",
	}

	productsRoot.AddCommand(
		productsListCmd(),
		productsByOwnerCmd(),
		productsLikedCmd(),
		productsGetCmd(),
		productsCreateCmd(),
		productsUpdateCmd(),
		productsDeleteCmd(),
		productsLikeCmd(),
		productsAuctionCmd(),
	)

	return productsRoot
}

func addPageFlags(cmd *cobra.Command, p *apiclient.PageParams) {
	cmd.Flags().IntVar(&p.Page, "page", 0, "zero-based page number")
	cmd.Flags().IntVar(&p.Size, "size", 0, "page size (server default when 0)")
	cmd.Flags().StringVar(&p.Sort, "sort", "",
		"sort key (product-popularity, product-expensive, product-cheap, product-newest)")
}

func productsListCmd() *cobra.Command {
	var (
		category string
		page     apiclient.PageParams
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pre-registered products in a category",
		Example: `  # Newest electronics
  mkt products list --category electronics

  # Most liked books, second page of 10
  mkt products list --category books_and_media --sort product-popularity --page 1 --size 10`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().ListProducts(cmd.Context(), category, page)
			if err != nil {
				return err
			}
			return printPage(cmd, resp)
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "product category (required)")
	cobra.CheckErr(cmd.MarkFlagRequired("category"))
	addPageFlags(cmd, &page)

	return cmd
}

func productsByOwnerCmd() *cobra.Command {
	var page apiclient.PageParams

	cmd := &cobra.Command{
		Use:     "by-owner <nickname>",
		Short:   "List the pre-registered products of a user",
		Example: `  mkt products by-owner alice --sort product-cheap`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().ListOwnerProducts(cmd.Context(), args[0], page)
			if err != nil {
				return err
			}
			return printPage(cmd, resp)
		},
	}
	addPageFlags(cmd, &page)

	return cmd
}

func productsLikedCmd() *cobra.Command {
	var page apiclient.PageParams

	cmd := &cobra.Command{
		Use:   "liked",
		Short: "List the pre-registered products you liked",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().ListLikedProducts(cmd.Context(), page)
			if err != nil {
				return err
			}
			return printPage(cmd, resp)
		},
	}
	addPageFlags(cmd, &page)

	return cmd
}

func productsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show product details",
		Example: `  mkt products get 42`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			d, err := newClient().GetProduct(cmd.Context(), id)
			if apiclient.IsNotFound(err) {
				fmt.Fprintf(cmd.OutOrStdout(), "Product %d not found.\n", id)
				return nil
			}
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), d)
			}
			return printProductDetail(cmd.OutOrStdout(), d)
		},
	}
}

func addFormFlags(cmd *cobra.Command, f *apiclient.ProductForm) {
	cmd.Flags().StringVar(&f.Name, "name", "", "product name")
	cmd.Flags().StringVar(&f.Description, "description", "", "product description")
	cmd.Flags().StringVar(&f.Category, "category", "", "product category")
	cmd.Flags().IntVar(&f.MinPrice, "min-price", 0, "minimum auction price")
	cmd.Flags().StringSliceVar(&f.Images, "image", nil, "image file to upload (repeatable)")
}

func productsCreateCmd() *cobra.Command {
	var form apiclient.ProductForm

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Pre-register a product",
		Example: `  mkt products create --name "Mechanical keyboard" --category electronics \
    --min-price 30000 --description "Brown switches" --image front.jpg --image back.jpg`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := newClient().CreateProduct(cmd.Context(), &form)
			if err != nil {
				return err
			}
			return printProduct(cmd, "Created", p)
		},
	}
	addFormFlags(cmd, &form)

	return cmd
}

func productsUpdateCmd() *cobra.Command {
	var form apiclient.ProductForm

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a pre-registered product and its images",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			p, err := newClient().UpdateProduct(cmd.Context(), id, &form)
			if err != nil {
				return err
			}
			return printProduct(cmd, "Updated", p)
		},
	}
	addFormFlags(cmd, &form)

	return cmd
}

func productsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one of your pre-registered products",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			d, err := newClient().DeleteProduct(cmd.Context(), id)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), d)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted product %d (%s, %d likes)\n", d.ID, d.Name, d.LikeCount)
			return nil
		},
	}
}

func productsLikeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "like <id>",
		Short: "Like a product, or remove your like",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			s, err := newClient().ToggleLike(cmd.Context(), id)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), s)
			}
			verb := "Unliked"
			if s.IsLiked {
				verb = "Liked"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s product %d (%d likes)\n", verb, s.ProductID, s.LikeCount)
			return nil
		},
	}
}

func productsAuctionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auction <id>",
		Short: "Start the auction of one of your products",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			a, err := newClient().StartAuction(cmd.Context(), id)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), a)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Auction %d started for product %d, ends %s\n",
				a.ID, a.ProductID, a.EndAt.Format(timeLayout))
			return nil
		},
	}
}

func printPage(cmd *cobra.Command, resp *apiclient.ProductPage) error {
	if jsonOutput() {
		return outputJSON(cmd.OutOrStdout(), resp)
	}

	if len(resp.Content) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No products found.")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Page %d of %d (%d products)\n\n",
		resp.PageNumber+1, resp.TotalPages, resp.TotalElements)
	return printListingsTable(cmd.OutOrStdout(), resp.Content)
}

func printProduct(cmd *cobra.Command, verb string, p *domain.Product) error {
	if jsonOutput() {
		return outputJSON(cmd.OutOrStdout(), p)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s product %d (%s)\n", verb, p.ID, p.Name)
	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid product id %q", s)
	}
	return id, nil
}
