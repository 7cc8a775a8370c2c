package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/allometrik/clm-platform-sub000/config"
)

func TestAssistantGenerateActions(t *testing.T) {
	svc := NewAssistantService(&config.AssistantConfig{DelayMs: 0})
	ctx := context.Background()
	text := "Las partes mantendrán confidencialidad. Esta obligación sobrevive al contrato."

	improved, err := svc.Generate(ctx, text, ActionImprove)
	if err != nil {
		t.Fatalf("improve failed: %v", err)
	}
	if !strings.HasPrefix(improved, text) || improved == text {
		t.Errorf("Expected improve to extend the text, got %q", improved)
	}

	simplified, err := svc.Generate(ctx, text, ActionSimplify)
	if err != nil {
		t.Fatalf("simplify failed: %v", err)
	}
	if simplified != "Las partes mantendrán confidencialidad." {
		t.Errorf("Expected first sentence only, got %q", simplified)
	}

	expanded, err := svc.Generate(ctx, text, ActionExpand)
	if err != nil {
		t.Fatalf("expand failed: %v", err)
	}
	if len(expanded) <= len(text) {
		t.Error("Expected expand to lengthen the text")
	}

	translated, err := svc.Generate(ctx, text, ActionTranslate)
	if err != nil {
		t.Fatalf("translate failed: %v", err)
	}
	if !strings.HasPrefix(translated, "[EN] ") {
		t.Errorf("Expected translation marker, got %q", translated)
	}
}

func TestAssistantGenerateUnknownAction(t *testing.T) {
	svc := NewAssistantService(&config.AssistantConfig{})

	if _, err := svc.Generate(context.Background(), "texto", "summon"); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("Expected ErrUnknownAction, got %v", err)
	}
}

func TestAssistantGenerateCancellable(t *testing.T) {
	svc := NewAssistantService(&config.AssistantConfig{DelayMs: 5000})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := svc.Generate(ctx, "texto", ActionImprove)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Error("Cancellation should not wait for the full delay")
	}
}
