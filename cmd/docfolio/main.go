package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"github.com/docfolio/docfolio"
	"github.com/docfolio/docfolio/internal/config"
)

func main() {
	var (
		inputFile  string
		outputFile string
		pdfFile    string
		configFile string
		verbose    bool
	)

	flag.StringVar(&inputFile, "input", "", "Input document path (.html, .md, .docx)")
	flag.StringVar(&outputFile, "output", "", "Output HTML file path (default: <title>.html)")
	flag.StringVar(&pdfFile, "pdf", "", "Optional PDF export path")
	flag.StringVar(&configFile, "config", "", "Optional YAML configuration file")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	flag.Parse()

	if inputFile == "" {
		fmt.Fprintln(os.Stderr, "Error: input file is required")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(cfg.LogLevel, verbose)
	defer log.Sync()

	session := docfolio.NewWithOptions(sessionOptions(cfg, log))
	if err := session.LoadFile(inputFile); err != nil {
		log.Fatal("failed to load document", zap.String("input", inputFile), zap.Error(err))
	}
	if cfg.Chrome.Title != "" {
		session.SetTitle(cfg.Chrome.Title)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	session.Open(ctx)
	defer session.Close()

	session.Settle(16)
	log.Info("document paginated",
		zap.String("title", session.Title()),
		zap.Int("pages", session.TotalPages()))

	if outputFile == "" {
		outputFile = slug.Make(session.Title()) + ".html"
	}
	out, err := os.Create(outputFile)
	if err != nil {
		log.Fatal("failed to create output file", zap.Error(err))
	}
	defer out.Close()
	if err := session.RenderHTML(out); err != nil {
		log.Fatal("failed to render pages", zap.Error(err))
	}
	log.Info("wrote paginated output", zap.String("output", filepath.Clean(outputFile)))

	if pdfFile != "" {
		if err := session.ExportPDF(pdfFile); err != nil {
			log.Fatal("failed to export pdf", zap.Error(err))
		}
		log.Info("wrote pdf export", zap.String("output", pdfFile))
	}
}

func sessionOptions(cfg config.Config, log *zap.Logger) docfolio.Options {
	opts := docfolio.DefaultOptions()
	opts.PageWidth = cfg.Page.Width
	opts.PageHeight = cfg.Page.Height
	opts.MarginTop = cfg.Page.MarginTop
	opts.MarginRight = cfg.Page.MarginRight
	opts.MarginBottom = cfg.Page.MarginBottom
	opts.MarginLeft = cfg.Page.MarginLeft
	opts.FontSize = cfg.Page.FontSize
	opts.LineHeight = cfg.Page.LineHeight
	opts.Stamp = cfg.Chrome.Stamp
	opts.ReflowInterval = time.Duration(cfg.Reflow.Interval)
	opts.Logger = log
	if cfg.Chrome.Year != 0 {
		opts.Year = cfg.Chrome.Year
	}
	return opts
}

// newLogger builds the console logger at the configured level. The -verbose
// flag lowers the floor to Debug; it never raises the configured level.
func newLogger(level string, verbose bool) *zap.Logger {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		lvl = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	if verbose && lvl.Level() > zap.DebugLevel {
		lvl.SetLevel(zap.DebugLevel)
	}
	c := zap.NewDevelopmentConfig()
	c.Level = lvl
	log, err := c.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	return log
}
