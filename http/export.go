package http

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/blogsmith"
)

// ExportRequest is the body of an export call.
type ExportRequest struct {
	Format  blogsmith.ExportFormat `json:"format"`
	Article *blogsmith.Article     `json:"article"`
	Options *ExportOptions         `json:"options,omitempty"`
}

// ExportOptions mirrors blogsmith.ExportOptions with JSON names.
// Omitted booleans default to true.
type ExportOptions struct {
	IncludeSEO    *bool  `json:"includeSEO,omitempty"`
	IncludeStyles *bool  `json:"includeStyles,omitempty"`
	Filename      string `json:"filename,omitempty"`
}

func (o *ExportOptions) options() blogsmith.ExportOptions {
	opts := blogsmith.ExportOptions{IncludeSEO: true, IncludeStyles: true}
	if o == nil {
		return opts
	}
	if o.IncludeSEO != nil {
		opts.IncludeSEO = *o.IncludeSEO
	}
	if o.IncludeStyles != nil {
		opts.IncludeStyles = *o.IncludeStyles
	}
	opts.Filename = o.Filename
	return opts
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	doc, err := s.Exporter.Export(req.Article, req.Format, req.Options.options())
	if err != nil {
		s.writeError(w, r, err, "Failed to export document.")
		return
	}

	etag := ETag([]byte(doc.Content))
	if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", doc.MIMEType)
	w.Header().Set("Content-Disposition", ContentDisposition(doc.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Content)))
	w.Header().Set("ETag", etag)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc.Content))
}

// ContentDisposition returns an attachment header with the filename
// percent-encoded per RFC 5987.
func ContentDisposition(filename string) string {
	return "attachment; filename*=UTF-8''" + strings.ReplaceAll(url.QueryEscape(filename), "+", "%20")
}

// ETag returns a strong entity tag for b.
func ETag(b []byte) string {
	return `"` + strconv.FormatUint(xxhash.Sum64(b), 16) + `"`
}
