// Package extract calls an OpenAI-compatible model to turn worksheet images
// into text the document pipeline can consume: freeform text with inline
// math in document mode, a JSON array of arrays in table mode.
package extract

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path/filepath"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// Mode selects what the model is asked to produce.
type Mode int

const (
	// ModeDocument asks for freeform text with $...$ math and ## headings
	ModeDocument Mode = iota
	// ModeTable asks for a JSON array of arrays
	ModeTable
)

// Request is one extraction call. ImagePath attaches the file as an image
// part; when it is empty Text is sent as the user message instead (useful
// for reprocessing already-extracted material).
type Request struct {
	Mode      Mode
	Text      string
	ImagePath string
}

type chatModel interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

type Extractor struct {
	cfg      *Config
	newModel func(ctx context.Context, name string) (chatModel, error)
}

func NewExtractor(cfg *Config) *Extractor {
	return &Extractor{
		cfg: cfg,
		newModel: func(ctx context.Context, name string) (chatModel, error) {
			return openai.NewChatModel(ctx, &openai.ChatModelConfig{
				Model:   name,
				APIKey:  cfg.APIKey,
				BaseURL: cfg.BaseURL,
			})
		},
	}
}

// Extract runs the request against the configured models in priority order
// and returns the first successful text blob. Once every model has failed
// the last error is returned as a hard failure, there is no partial result.
func (e *Extractor) Extract(ctx context.Context, req Request) (string, error) {
	if len(e.cfg.Models) == 0 {
		return "", errors.New("no extraction models configured")
	}

	messages, err := e.messages(req)
	if err != nil {
		return "", err
	}

	var last error
	for _, name := range e.cfg.Models {
		cm, err := e.newModel(ctx, name)
		if err != nil {
			slog.Warn("chat model unavailable", "model", name, "error", err)
			last = err
			continue
		}

		resp, err := cm.Generate(ctx, messages)
		if err != nil {
			slog.Warn("extraction attempt failed", "model", name, "error", err)
			last = err
			continue
		}

		slog.Info("extraction succeeded", "model", name, "chars", len(resp.Content))
		return resp.Content, nil
	}

	return "", fmt.Errorf("all %d extraction models failed, last error: %w", len(e.cfg.Models), last)
}

func (e *Extractor) messages(req Request) ([]*schema.Message, error) {
	system := schema.SystemMessage(documentPrompt)
	if req.Mode == ModeTable {
		system = schema.SystemMessage(tablePrompt)
	}

	if req.ImagePath == "" {
		return []*schema.Message{system, schema.UserMessage(req.Text)}, nil
	}

	uri, err := imageDataURI(req.ImagePath)
	if err != nil {
		return nil, err
	}

	user := &schema.Message{
		Role: schema.User,
		MultiContent: []schema.ChatMessagePart{
			{Type: schema.ChatMessagePartTypeText, Text: imageInstruction},
			{Type: schema.ChatMessagePartTypeImageURL, ImageURL: &schema.ChatMessageImageURL{URL: uri}},
		},
	}

	return []*schema.Message{system, user}, nil
}

// imageDataURI encodes the image as a base64 data URL so it can be attached
// without hosting.
func imageDataURI(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "image/png"
	}

	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
