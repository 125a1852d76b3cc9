package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"concierge/models"
	"concierge/services/catalog"
	"concierge/services/pages"
	"concierge/utils"

	"github.com/spf13/cobra"
)

func servicesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "services",
		Short: "Inspect the services catalog",
	}
	cmd.AddCommand(servicesListCmd(), servicesGetCmd())
	return cmd
}

func servicesListCmd() *cobra.Command {
	var (
		criteria catalog.Criteria
		limit    int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List services, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			gw, closeGateway, err := openGateway(ctx)
			if err != nil {
				return err
			}
			defer closeGateway()

			view := catalog.NewListingView(gw, utils.GetLogger())
			if limit > 0 {
				view = catalog.NewFeaturedView(gw, utils.GetLogger(), limit)
			}
			view.Mount(ctx)
			defer view.Unmount()
			if err := view.Wait(ctx); err != nil {
				return err
			}
			if err := view.Err(); err != nil {
				return fmt.Errorf("fetch services: %w", err)
			}

			l := view.Apply(criteria)
			printListing(cmd.OutOrStdout(), l)
			return nil
		},
	}
	cmd.Flags().StringVar(&criteria.Search, "search", "", "case-insensitive title or description match")
	cmd.Flags().StringVar(&criteria.Category, "category", catalog.AllCategory, "exact category, or all")
	cmd.Flags().IntVar(&limit, "limit", 0, "fetch at most this many services")
	return cmd
}

func printListing(out io.Writer, l catalog.Listing) {
	if len(l.Items) == 0 {
		fmt.Fprintln(out, l.EmptyMessage)
		return
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tFROM\tDURATION")
	for _, s := range l.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", s.ID, s.DisplayTitle(), dash(s.Category), priceOrDash(s), dash(s.Duration))
	}
	w.Flush()
	fmt.Fprintf(out, "\n%d service(s); categories: %v\n", len(l.Items), l.Categories)
}

func servicesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			gw, closeGateway, err := openGateway(ctx)
			if err != nil {
				return err
			}
			defer closeGateway()

			st, err := loadDetail(ctx, catalog.NewDetailView(gw, utils.GetLogger()), args[0])
			if err != nil {
				return err
			}
			switch st.Status {
			case catalog.DetailFound:
				printService(cmd.OutOrStdout(), st.Service)
				return nil
			case catalog.DetailNotFound:
				return fmt.Errorf("service %q not found", args[0])
			default:
				return fmt.Errorf("service %q unavailable: %w", args[0], st.Err)
			}
		},
	}
}

func loadDetail(ctx context.Context, view *catalog.DetailView, id string) (catalog.DetailState, error) {
	view.Mount(ctx, id)
	defer view.Unmount()
	return view.Wait(ctx)
}

func printService(out io.Writer, s *models.ExclusiveService) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "ID\t%s\n", s.ID)
	fmt.Fprintf(w, "Title\t%s\n", s.DisplayTitle())
	fmt.Fprintf(w, "Category\t%s\n", dash(s.Category))
	fmt.Fprintf(w, "From\t%s\n", priceOrDash(*s))
	fmt.Fprintf(w, "Duration\t%s\n", dash(s.Duration))
	fmt.Fprintf(w, "Image\t%s\n", dash(utils.ImageResolver().Resolve(s.MainImage)))
	w.Flush()
	if s.Description != "" {
		fmt.Fprintf(out, "\n%s\n", s.Description)
	}
}

func priceOrDash(s models.ExclusiveService) string {
	if !s.HasPrice() {
		return "-"
	}
	return pages.PriceLabel(*s.StartingPrice)
}

func dash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
