package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/fwojciec/blogsmith"
	bsprom "github.com/fwojciec/blogsmith/prometheus"
	"github.com/prometheus/client_golang/prometheus"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Titles   blogsmith.TitleGenerator
	Articles blogsmith.ArticleGenerator
	Metadata blogsmith.MetadataGenerator
	Exporter blogsmith.Exporter
	Metrics  *bsprom.Metrics
	Gatherer prometheus.Gatherer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	APIKey    string `name:"api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`
	Model     string `env:"BLOGSMITH_MODEL" default:"gemini-2.5-flash" help:"Gemini model name"`
	LogLevel  string `env:"BLOGSMITH_LOG_LEVEL" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`
	LogFormat string `default:"text" enum:"text,json" help:"Log format (text, json)"`

	Serve   ServeCmd   `cmd:"" help:"Run the HTTP server"`
	Titles  TitlesCmd  `cmd:"" help:"Generate title candidates for a keyword"`
	Article ArticleCmd `cmd:"" help:"Generate a full article for a title"`
	SEO     SEOCmd     `cmd:"" name:"seo" help:"Generate SEO metadata for an article"`
	Export  ExportCmd  `cmd:"" help:"Export an article JSON file to Markdown or HTML"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `env:"BLOGSMITH_ADDR" default:":8080" help:"Listen address"`
}

// TitlesCmd is the "titles" subcommand.
type TitlesCmd struct {
	Keyword  string `arg:"" help:"Target keyword"`
	Overview string `short:"o" help:"Short overview of the planned article"`
	JSON     bool   `name:"json" help:"Print JSON instead of a list"`
}

// ArticleCmd is the "article" subcommand.
type ArticleCmd struct {
	Title       string `arg:"" help:"Article title"`
	Keyword     string `arg:"" help:"Target keyword"`
	Description string `short:"d" help:"Angle or summary for the article"`
	Overview    string `short:"o" help:"Overview from the author"`
	NoSEO       bool   `name:"no-seo" help:"Skip SEO metadata generation"`
	BaseURL     string `name:"base-url" help:"Canonical URL of the published article"`
	Out         string `short:"O" type:"path" help:"Write article JSON to this file instead of stdout"`
}

// SEOCmd is the "seo" subcommand.
type SEOCmd struct {
	Title       string `arg:"" help:"Article title"`
	Keyword     string `arg:"" help:"Target keyword"`
	ContentFile string `name:"content-file" type:"existingfile" help:"File with the article body (text, Markdown or HTML)"`
	Description string `short:"d" help:"Article summary"`
	BaseURL     string `name:"base-url" help:"Canonical URL of the published article"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Article  string `arg:"" type:"existingfile" help:"Article JSON file"`
	Format   string `short:"f" default:"markdown" help:"Output format (markdown, html)"`
	NoSEO    bool   `name:"no-seo" help:"Omit SEO metadata"`
	NoStyles bool   `name:"no-styles" help:"Omit the embedded stylesheet (HTML only)"`
	Filename string `help:"Output file name (default: slug of the title)"`
	Out      string `short:"O" type:"existingdir" default:"." help:"Output directory"`
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
