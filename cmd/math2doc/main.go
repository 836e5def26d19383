// Command math2doc turns a worksheet image (or already-extracted text) into
// a Word document with native math markup, or a spreadsheet in table mode.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/rinojames007/math2doc/docx"
	"github.com/rinojames007/math2doc/extract"
	"github.com/rinojames007/math2doc/xlsx"
)

func main() {
	var (
		in      = flag.String("in", "", "input image, or a text file with -text")
		out     = flag.String("out", "", "output file (.docx for doc mode, .xlsx for table mode)")
		mode    = flag.String("mode", "doc", "output mode: doc or table")
		asText  = flag.Bool("text", false, "input is already-extracted text, skip the AI call")
		cfgPath = flag.String("config", "", "config file (default ~/.config/math2doc/config.json)")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(context.Background(), *in, *out, *mode, *asText, *cfgPath); err != nil {
		slog.Error("math2doc failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, in, out, mode string, asText bool, cfgPath string) error {
	if in == "" || out == "" {
		return errors.New("both -in and -out are required")
	}

	var requestMode extract.Mode
	switch mode {
	case "doc":
		requestMode = extract.ModeDocument
	case "table":
		requestMode = extract.ModeTable
	default:
		return fmt.Errorf("unknown mode %q, expected doc or table", mode)
	}

	blob, err := load(ctx, in, asText, requestMode, cfgPath)
	if err != nil {
		return err
	}

	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	if err := write(file, requestMode, blob); err != nil {
		file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}

	slog.Info("output written", "path", out)
	return nil
}

func load(ctx context.Context, in string, asText bool, mode extract.Mode, cfgPath string) (string, error) {
	if asText {
		data, err := os.ReadFile(in)
		if err != nil {
			return "", fmt.Errorf("read input text: %w", err)
		}

		return string(data), nil
	}

	cfg, err := extract.LoadConfig(cfgPath)
	if err != nil {
		return "", err
	}

	if cfg.APIKey == "" {
		return "", fmt.Errorf("no API key configured, set %s or the config file", extract.EnvAPIKey)
	}

	return extract.NewExtractor(cfg).Extract(ctx, extract.Request{Mode: mode, ImagePath: in})
}

func write(file *os.File, mode extract.Mode, blob string) error {
	if mode == extract.ModeTable {
		rows, err := xlsx.Decode([]byte(blob))
		if err != nil {
			return err
		}

		return xlsx.Write(file, rows)
	}

	doc := docx.New()
	doc.AddText(blob)
	return doc.Write(file)
}
