package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/allometrik/clm-platform-sub000/config"
)

// AssistantService produces revised clause text for a requested action.
// The rewriting is a deterministic mock transform; there is no model
// behind it. The configured delay simulates generation latency and is
// cancellable through the request context.
type AssistantService struct {
	delay time.Duration
}

// Assistant actions
const (
	ActionImprove   = "improve"
	ActionSimplify  = "simplify"
	ActionExpand    = "expand"
	ActionTranslate = "translate"
)

var ErrUnknownAction = errors.New("unknown assistant action")

func NewAssistantService(cfg *config.AssistantConfig) *AssistantService {
	return &AssistantService{
		delay: time.Duration(cfg.DelayMs) * time.Millisecond,
	}
}

// Generate returns revised text for the action, honoring context
// cancellation during the simulated delay.
func (s *AssistantService) Generate(ctx context.Context, text, action string) (string, error) {
	revised, err := transform(text, action)
	if err != nil {
		return "", err
	}

	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(s.delay):
		}
	}

	return revised, nil
}

func transform(text, action string) (string, error) {
	switch action {
	case ActionImprove:
		return fmt.Sprintf("%s Las partes acuerdan que esta obligación se interpretará de buena fe y conforme a la práctica habitual del sector.", text), nil
	case ActionSimplify:
		// Keep only the first sentence.
		if idx := strings.Index(text, "."); idx >= 0 {
			return text[:idx+1], nil
		}
		return text, nil
	case ActionExpand:
		return fmt.Sprintf("%s Asimismo, las partes se obligan a documentar por escrito cualquier excepción a lo aquí previsto y a notificarla a la otra parte sin demora indebida.", text), nil
	case ActionTranslate:
		return fmt.Sprintf("[EN] %s", text), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
}
