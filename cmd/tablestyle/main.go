// Command tablestyle converts a Markdown table to the wiki table dialect.
//
// Usage:
//
//	tablestyle [-in table.md] [-out table.txt] [-encoding shift_jis] [-copy]
//
// Input defaults to stdin and output to stdout.
package main

import (
	"bytes"
	"context"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/ggtools"
	"github.com/gogpu/ggtools/clip"
	"github.com/gogpu/ggtools/integration/sysclip"
	"github.com/gogpu/ggtools/internal/config"
	"github.com/gogpu/ggtools/tablestyle"
)

func main() {
	var (
		in       = flag.String("in", "", "input file (default stdin)")
		out      = flag.String("out", "", "output file (default stdout)")
		encoding = flag.String("encoding", "", "input encoding, e.g. shift_jis (default from config, then utf-8)")
		copyOut  = flag.Bool("copy", false, "also put the result on the system clipboard")
		cfgPath  = flag.String("config", "", "config file (default $GGTOOLS_CONFIG or user config dir)")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	ggtools.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()})))

	if *encoding == "" {
		*encoding = cfg.Table.Encoding
	}

	var r io.Reader = os.Stdin
	if *in != "" {
		f, err := os.Open(*in)
		if err != nil {
			log.Fatalf("Failed to open input: %v", err)
		}
		defer f.Close()
		r = f
	}

	var result bytes.Buffer
	if err := tablestyle.ConvertReader(r, &result, tablestyle.WithEncoding(*encoding)); err != nil {
		log.Fatalf("Failed to convert: %v", err)
	}

	if *out == "" {
		if _, err := os.Stdout.Write(result.Bytes()); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
	} else if err := os.WriteFile(*out, result.Bytes(), 0o644); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}

	if *copyOut && result.Len() > 0 {
		var w clip.Writer = sysclip.Text{}
		if sys, err := sysclip.New(); err == nil {
			w = sys
		} else {
			ggtools.Logger().Warn("falling back to clipboard tools", "err", err)
		}
		if err := w.Write(context.Background(), clip.TextItem(result.String())); err != nil {
			log.Fatalf("Failed to copy: %v", err)
		}
	}
}
