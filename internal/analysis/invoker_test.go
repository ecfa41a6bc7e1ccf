package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"stonkie-backend/internal/llm"
	"stonkie-backend/internal/shared/storage/object/local"
)

func TestInvokeSuccessPersistsArtifact(t *testing.T) {
	artifacts := local.New(t.TempDir())
	gen := &recordingGenerator{text: "  Revenue grew 20%.  "}
	inv := &Invoker{Generator: gen, Artifacts: artifacts}

	res := inv.Invoke(context.Background(), "tsla", Assemble("tsla", nil))
	if !res.Succeeded || res.Text != "Revenue grew 20%." {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.ArtifactKey != "analyses/tsla_analysis.txt" {
		t.Fatalf("unexpected artifact key %q", res.ArtifactKey)
	}
	data, err := artifacts.Read(context.Background(), res.ArtifactKey)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if string(data) != "Revenue grew 20%." {
		t.Fatalf("unexpected artifact %q", data)
	}
	if gen.last().System == "" || len(gen.last().Parts) != 2 {
		t.Fatalf("unexpected request %+v", gen.last())
	}
}

func TestInvokeTimeout(t *testing.T) {
	inv := &Invoker{Generator: blockingGenerator(), Timeout: 20 * time.Millisecond}

	res := inv.Invoke(context.Background(), "tsla", Assemble("tsla", nil))
	if res.Succeeded {
		t.Fatalf("expected failure on timeout")
	}
	if !strings.Contains(res.Error, "timed out") {
		t.Fatalf("unexpected error %q", res.Error)
	}
	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("result is not well-formed JSON: %v", err)
	}
	if decoded["succeeded"] != false {
		t.Fatalf("unexpected JSON %s", raw)
	}
}

func TestInvokeFailures(t *testing.T) {
	tests := []struct {
		name    string
		gen     llm.Generator
		wantErr string
	}{
		{name: "empty text", gen: &recordingGenerator{text: "   "}, wantErr: "no analysis generated"},
		{name: "provider error", gen: &recordingGenerator{err: errors.New("quota exceeded")}, wantErr: "quota exceeded"},
		{name: "not configured", gen: llm.PlaceholderGenerator{}, wantErr: llm.ErrNotConfigured.Error()},
		{
			name: "panic",
			gen: llm.GeneratorFunc(func(ctx context.Context, req llm.Request) (string, error) {
				panic("boom")
			}),
			wantErr: "generator panic: boom",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			artifacts := local.New(t.TempDir())
			inv := &Invoker{Generator: tt.gen, Artifacts: artifacts}
			res := inv.Invoke(context.Background(), "tsla", Assemble("tsla", nil))
			if res.Succeeded {
				t.Fatalf("expected failure")
			}
			if res.Error != tt.wantErr {
				t.Fatalf("expected error %q, got %q", tt.wantErr, res.Error)
			}
			if ok, _ := artifacts.Exists(context.Background(), ArtifactKey("tsla")); ok {
				t.Fatalf("artifact written for failed analysis")
			}
		})
	}
}

func TestInvokeArtifactWriteFailureIsSoft(t *testing.T) {
	inv := &Invoker{
		Generator: &recordingGenerator{text: "ok"},
		Artifacts: failingWriter{local.New(t.TempDir())},
	}
	res := inv.Invoke(context.Background(), "tsla", Assemble("tsla", nil))
	if !res.Succeeded || res.ArtifactKey != "" {
		t.Fatalf("unexpected result %+v", res)
	}
}
