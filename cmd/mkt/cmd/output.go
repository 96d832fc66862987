package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	domain "github.com/chzzmarket/market-api/pkg/types"
)

const timeLayout = "2006-01-02 15:04:05"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printListingsTable(w io.Writer, listings []domain.ProductListing) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tMIN PRICE\tLIKES\tLIKED\tIMAGE\n")
	for i := range listings {
		l := &listings[i]
		image := "-"
		if l.Thumbnail != nil {
			image = *l.Thumbnail
		}
		tw.writef("%d\t%s\t%d\t%d\t%v\t%s\n",
			l.ID,
			truncate(l.Name, 40),
			l.MinPrice,
			l.LikeCount,
			l.IsLiked,
			image,
		)
	}
	return tw.finish()
}

func printProductDetail(w io.Writer, d *domain.ProductDetails) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%d\n", d.ID)
	tw.writef("Name:\t%s\n", d.Name)
	tw.writef("Owner:\t%s\n", d.OwnerNickname)
	tw.writef("Category:\t%s\n", d.Category)
	tw.writef("Min Price:\t%d\n", d.MinPrice)
	tw.writef("Likes:\t%d\n", d.LikeCount)
	tw.writef("Liked:\t%v\n", d.IsLiked)
	tw.writef("Created:\t%s\n", d.CreatedAt.Format(timeLayout))
	tw.writef("Description:\t%s\n", truncate(d.Description, 80))
	if len(d.ImageURLs) > 0 {
		tw.writef("Images:\t%s\n", strings.Join(d.ImageURLs, "\n\t"))
	}
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
