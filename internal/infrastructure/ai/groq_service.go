package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/nicklcsdev/inventario-api/internal/application/dto"
	"github.com/nicklcsdev/inventario-api/internal/application/ports"
)

// Verificar en tiempo de compilación que GroqService implementa los puertos.
var (
	_ ports.LLMService  = (*GroqService)(nil)
	_ ports.Transcriber = (*GroqService)(nil)
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// GroqService adaptador sobre la API compatible con OpenAI de Groq: chat completions y transcripción (Whisper).
type GroqService struct {
	apiKey             string
	model              string
	transcriptionModel string
	baseURL            string
	httpClient         *http.Client
}

// GroqOption personaliza el adaptador.
type GroqOption func(*GroqService)

// WithGroqBaseURL apunta el adaptador a otro endpoint (proxy o servidor de pruebas).
func WithGroqBaseURL(url string) GroqOption {
	return func(s *GroqService) { s.baseURL = strings.TrimRight(url, "/") }
}

// NewGroqService construye el adaptador. model suele ser "llama-3.3-70b-versatile" y
// transcriptionModel "whisper-large-v3". Sin apiKey las llamadas devuelven error descriptivo.
func NewGroqService(apiKey, model, transcriptionModel string, opts ...GroqOption) *GroqService {
	s := &GroqService{
		apiKey:             apiKey,
		model:              model,
		transcriptionModel: transcriptionModel,
		baseURL:            groqBaseURL,
		httpClient: &http.Client{
			// Timeout de red; el use case impone además su propio context.WithTimeout.
			Timeout: 60 * time.Second,
		},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// ── Protocolo chat completions ───────────────────────────────────────────────

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float64       `json:"temperature"`
	ResponseFormat *struct {
		Type string `json:"type"`
	} `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *apiError `json:"error"`
}

type transcriptionResponse struct {
	Text  string    `json:"text"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ── Implementación de los puertos ────────────────────────────────────────────

// GenerarDescripcion pide al modelo una descripción comercial de máximo 40 palabras.
func (s *GroqService) GenerarDescripcion(ctx context.Context, nombre, caracteristicas string) (string, error) {
	text, err := s.chat(ctx, chatRequest{
		Model:       s.model,
		Temperature: 0.7,
		Messages: []chatMessage{
			{Role: "user", Content: fmt.Sprintf(descripcionPrompt, nombre, caracteristicas)},
		},
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// ExtraerProducto pide al modelo el borrador en modo JSON.
func (s *GroqService) ExtraerProducto(ctx context.Context, texto string) (*dto.ProductoBorrador, error) {
	req := chatRequest{
		Model:       s.model,
		Temperature: 0,
		Messages: []chatMessage{
			{Role: "system", Content: extraccionSystemPrompt},
			{Role: "user", Content: texto},
		},
	}
	req.ResponseFormat = &struct {
		Type string `json:"type"`
	}{Type: "json_object"}

	text, err := s.chat(ctx, req)
	if err != nil {
		return nil, err
	}
	return parseBorrador(text)
}

// Transcribir envía el audio al endpoint de transcripción como multipart/form-data.
func (s *GroqService) Transcribir(ctx context.Context, audio io.Reader, filename string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: %w (GROQ_API_KEY)", ports.ErrAINoConfigurada)
	}
	if filename == "" {
		filename = "audio.webm"
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("AI: crear multipart: %w", err)
	}
	if _, err := io.Copy(part, audio); err != nil {
		return "", fmt.Errorf("AI: copiar audio: %w", err)
	}
	_ = w.WriteField("model", s.transcriptionModel)
	_ = w.WriteField("language", "es")
	_ = w.WriteField("response_format", "json")
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("AI: cerrar multipart: %w", err)
	}

	raw, err := s.post(ctx, "/audio/transcriptions", w.FormDataContentType(), &body)
	if err != nil {
		return "", err
	}
	var tr transcriptionResponse
	if err := json.Unmarshal(raw, &tr); err != nil {
		return "", fmt.Errorf("AI: deserializar transcripción: %w", err)
	}
	return tr.Text, nil
}

func (s *GroqService) chat(ctx context.Context, payload chatRequest) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: %w (GROQ_API_KEY)", ports.ErrAINoConfigurada)
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}
	raw, err := s.post(ctx, "/chat/completions", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	var cr chatResponse
	if err := json.Unmarshal(raw, &cr); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Groq: %w", err)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("AI: Groq devolvió respuesta vacía")
	}
	return cr.Choices[0].Message.Content, nil
}

func (s *GroqService) post(ctx context.Context, path, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return nil, fmt.Errorf("AI: leer respuesta: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			Error *apiError `json:"error"`
		}
		if jsonErr := json.Unmarshal(raw, &errResp); jsonErr == nil && errResp.Error != nil {
			return nil, fmt.Errorf("AI: Groq error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return nil, fmt.Errorf("AI: Groq HTTP %d: %s", resp.StatusCode, string(raw))
	}
	return raw, nil
}
