package terminal

import (
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"fileboard-client/internal/adapters/httpapi"
)

// ListingPrinter shows a fetched directory page as a list of names.
type ListingPrinter struct {
	w      io.Writer
	header *pterm.PrefixPrinter
}

func NewListingPrinter(w io.Writer) *ListingPrinter {
	if w == nil {
		w = os.Stdout
	}
	return &ListingPrinter{
		w:      w,
		header: pterm.Info.WithWriter(w),
	}
}

// Print falls back to the raw body when the page has no list items.
func (p *ListingPrinter) Print(path, body string) {
	if path == "" {
		path = "/"
	}
	p.header.Println(path)

	entries, err := httpapi.ParseListing(body)
	if err != nil {
		logrus.Warnf("Failed to parse listing of %s: %v", path, err)
	}
	if len(entries) == 0 {
		if text := strings.TrimSpace(body); text != "" {
			pterm.Fprintln(p.w, text)
		}
		return
	}
	for _, e := range entries {
		pterm.Fprintln(p.w, "  "+e.Name)
	}
}
