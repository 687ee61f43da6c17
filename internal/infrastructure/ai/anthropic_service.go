package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nicklcsdev/inventario-api/internal/application/dto"
	"github.com/nicklcsdev/inventario-api/internal/application/ports"
)

// Verificar en tiempo de compilación que AnthropicService implementa LLMService.
var _ ports.LLMService = (*AnthropicService)(nil)

const (
	anthropicBaseURL = "https://api.anthropic.com/v1"
	anthropicVersion = "2023-06-01"
)

// AnthropicService adaptador que implementa LLMService usando la API REST de Anthropic.
// No ofrece transcripción: con AI_PROVIDER=anthropic el alta por voz queda deshabilitada.
type AnthropicService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewAnthropicService construye el adaptador. baseURL vacío usa el endpoint público.
func NewAnthropicService(apiKey, model, baseURL string) *AnthropicService {
	if baseURL == "" {
		baseURL = anthropicBaseURL
	}
	return &AnthropicService{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 25 * time.Second,
		},
	}
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *apiError `json:"error"`
}

// GenerarDescripcion usa el mismo prompt de copywriting que el resto de proveedores.
func (s *AnthropicService) GenerarDescripcion(ctx context.Context, nombre, caracteristicas string) (string, error) {
	text, err := s.messages(ctx, anthropicRequest{
		Model:     s.model,
		MaxTokens: 256,
		Messages: []anthropicMessage{
			{Role: "user", Content: fmt.Sprintf(descripcionPrompt, nombre, caracteristicas)},
		},
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// ExtraerProducto parsea el JSON aunque Claude lo envuelva en markdown.
func (s *AnthropicService) ExtraerProducto(ctx context.Context, texto string) (*dto.ProductoBorrador, error) {
	text, err := s.messages(ctx, anthropicRequest{
		Model:     s.model,
		MaxTokens: 1024,
		System:    extraccionSystemPrompt,
		Messages:  []anthropicMessage{{Role: "user", Content: texto}},
	})
	if err != nil {
		return nil, err
	}
	return parseBorrador(text)
}

func (s *AnthropicService) messages(ctx context.Context, payload anthropicRequest) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: %w (ANTHROPIC_API_KEY)", ports.ErrAINoConfigurada)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	var anthResp anthropicResponse
	if resp.StatusCode != http.StatusOK {
		if jsonErr := json.Unmarshal(rawBody, &anthResp); jsonErr == nil && anthResp.Error != nil {
			return "", fmt.Errorf("AI: Anthropic error (%s): %s", anthResp.Error.Type, anthResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Anthropic HTTP %d: %s", resp.StatusCode, string(rawBody))
	}
	if err := json.Unmarshal(rawBody, &anthResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Anthropic: %w", err)
	}
	if len(anthResp.Content) == 0 {
		return "", fmt.Errorf("AI: Claude devolvió respuesta vacía")
	}
	return anthResp.Content[0].Text, nil
}
