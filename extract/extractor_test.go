package extract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/google/go-cmp/cmp"
)

type fakeModel struct {
	output string
	err    error
}

func (f *fakeModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	if f.err != nil {
		return nil, f.err
	}

	return schema.AssistantMessage(f.output, nil), nil
}

func TestExtractFallsBackOverModels(t *testing.T) {
	var attempts []string

	models := map[string]struct {
		construct error
		model     *fakeModel
	}{
		"first":  {model: &fakeModel{err: errors.New("rate limited")}},
		"second": {construct: errors.New("unknown model")},
		"third":  {model: &fakeModel{output: "## Question 1"}},
	}

	e := &Extractor{
		cfg: &Config{Models: []string{"first", "second", "third"}},
		newModel: func(ctx context.Context, name string) (chatModel, error) {
			attempts = append(attempts, name)
			m := models[name]
			return m.model, m.construct
		},
	}

	out, err := e.Extract(context.Background(), Request{Text: "anything"})
	if err != nil {
		t.Fatal(err)
	}

	if out != "## Question 1" {
		t.Errorf("Extract() = %q, want %q", out, "## Question 1")
	}

	if diff := cmp.Diff([]string{"first", "second", "third"}, attempts); diff != "" {
		t.Errorf("model priority order not respected:\n%s", diff)
	}
}

func TestExtractFailsHardWhenExhausted(t *testing.T) {
	last := errors.New("server exploded")

	e := &Extractor{
		cfg: &Config{Models: []string{"only"}},
		newModel: func(ctx context.Context, name string) (chatModel, error) {
			return &fakeModel{err: last}, nil
		},
	}

	_, err := e.Extract(context.Background(), Request{Text: "anything"})
	if err == nil {
		t.Fatal("expected error after exhausting the model list")
	}

	if !errors.Is(err, last) {
		t.Errorf("error should wrap the last attempt failure, got: %v", err)
	}
}

func TestExtractRequiresModels(t *testing.T) {
	e := NewExtractor(&Config{})

	if _, err := e.Extract(context.Background(), Request{Text: "anything"}); err == nil {
		t.Fatal("expected error with an empty model list")
	}
}

func TestMessages(t *testing.T) {
	e := NewExtractor(&Config{Models: DefaultModels})

	t.Run("text request", func(t *testing.T) {
		messages, err := e.messages(Request{Mode: ModeDocument, Text: "reprocess this"})
		if err != nil {
			t.Fatal(err)
		}

		if len(messages) != 2 {
			t.Fatalf("expected system + user message, got %d", len(messages))
		}

		if messages[0].Content != documentPrompt {
			t.Errorf("document mode must use the document prompt")
		}

		if messages[1].Content != "reprocess this" {
			t.Errorf("user message = %q", messages[1].Content)
		}
	})

	t.Run("table mode switches the prompt", func(t *testing.T) {
		messages, err := e.messages(Request{Mode: ModeTable, Text: "reprocess this"})
		if err != nil {
			t.Fatal(err)
		}

		if messages[0].Content != tablePrompt {
			t.Errorf("table mode must use the table prompt")
		}
	})

	t.Run("image request attaches a data url", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "page.png")
		if err := os.WriteFile(path, []byte{0x89, 'P', 'N', 'G'}, 0644); err != nil {
			t.Fatal(err)
		}

		messages, err := e.messages(Request{Mode: ModeDocument, ImagePath: path})
		if err != nil {
			t.Fatal(err)
		}

		parts := messages[1].MultiContent
		if len(parts) != 2 {
			t.Fatalf("expected instruction + image parts, got %d", len(parts))
		}

		if parts[1].Type != schema.ChatMessagePartTypeImageURL {
			t.Errorf("second part should be an image url")
		}

		if !strings.HasPrefix(parts[1].ImageURL.URL, "data:image/png;base64,") {
			t.Errorf("image url should be a png data url, got %.40q", parts[1].ImageURL.URL)
		}
	})
}
