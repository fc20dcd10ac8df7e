package terminal

import (
	"context"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"fileboard-client/internal/domain"
)

// Reloader re-fetches the current listing after a confirmed mutation.
type Reloader struct {
	api     domain.FileAPI
	path    string
	message string
	info    *pterm.PrefixPrinter
	listing *ListingPrinter
}

func NewReloader(api domain.FileAPI, currentPath, message string, w io.Writer) *Reloader {
	if w == nil {
		w = os.Stdout
	}
	return &Reloader{
		api:     api,
		path:    currentPath,
		message: message,
		info:    pterm.Info.WithWriter(w),
		listing: NewListingPrinter(w),
	}
}

func (r *Reloader) OnMutationComplete(ctx context.Context, operation string) {
	log := logrus.WithFields(logrus.Fields{
		"operation": operation,
		"path":      r.path,
	})

	resp, err := r.api.Fetch(ctx, r.path)
	if err != nil {
		log.Warnf("Failed to refresh listing: %v", err)
		return
	}
	if !resp.OK() {
		log.WithField("status", resp.StatusCode).Warn("Listing refresh refused")
		return
	}

	log.WithField("bytes", len(resp.Body)).Debug("Listing refreshed")
	if r.message != "" {
		r.info.Println(r.message)
	}
	r.listing.Print(r.path, resp.Body)
}
