// Package enhancer rewrites menu item descriptions with a generative model.
// Every failure degrades to returning the description unchanged.
package enhancer

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Enhancer turns a plain dish description into a polished one.
type Enhancer interface {
	Enhance(ctx context.Context, itemName, description string) string
}

// Noop returns descriptions untouched. Used when no API key is configured.
type Noop struct{}

func (Noop) Enhance(_ context.Context, _, description string) string {
	return description
}

type generator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Gemini calls Google's Gemini API.
type Gemini struct {
	client    *genai.Client
	model     generator
	storeName string
	timeout   time.Duration
}

// NewGemini dials the Gemini API. Close releases the client.
func NewGemini(ctx context.Context, apiKey, modelName, storeName string, timeout time.Duration) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("enhancer: create gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.7)

	return &Gemini{
		client:    client,
		model:     model,
		storeName: storeName,
		timeout:   timeout,
	}, nil
}

// Close releases the underlying client.
func (g *Gemini) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

// Enhance never fails: on timeout, API error or an empty answer it returns
// description as given.
func (g *Gemini) Enhance(ctx context.Context, itemName, description string) string {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(g.prompt(itemName, description)))
	if err != nil {
		log.Printf("enhancer: generate description for %q: %v", itemName, err)
		return description
	}

	text := strings.TrimSpace(firstText(resp))
	if text == "" {
		return description
	}
	return text
}

func (g *Gemini) prompt(itemName, description string) string {
	return fmt.Sprintf(
		"Transforme o nome do prato %q e a descrição básica %q em uma descrição gourmet elegante "+
			"para o restaurante de alto padrão %q. Use um tom sofisticado, destaque ingredientes nordestinos "+
			"e responda apenas com a nova descrição.",
		itemName, description, g.storeName,
	)
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String()
}
