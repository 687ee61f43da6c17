package di

import (
	"github.com/nicklcsdev/inventario-api/internal/application/ports"
	"github.com/nicklcsdev/inventario-api/internal/application/reporte"
	"github.com/nicklcsdev/inventario-api/internal/application/usecase"
	"github.com/nicklcsdev/inventario-api/internal/infrastructure/ai"
	"github.com/nicklcsdev/inventario-api/internal/infrastructure/email"
	"github.com/nicklcsdev/inventario-api/pkg/config"
	"github.com/nicklcsdev/inventario-api/pkg/logger"
)

// NewAIUseCase elige el proveedor por AI_PROVIDER. Groq cubre texto y transcripción;
// Anthropic solo texto, así que el dictado por voz queda deshabilitado.
// Las descripciones se cachean si AI_CACHE_TTL_MINUTES > 0.
func NewAIUseCase(cfg config.AIConfig, log *logger.Logger) *usecase.AIUseCase {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("di")

	var (
		llm ports.LLMService
		stt ports.Transcriber
	)
	switch cfg.Provider {
	case config.AIProviderAnthropic:
		llm = ai.NewAnthropicService(cfg.AnthropicAPIKey, cfg.AnthropicModel, "")
		if cfg.AnthropicAPIKey == "" {
			log.Warn().Msg("ANTHROPIC_API_KEY vacío: el asistente de IA responderá 503")
		}
	default:
		groq := ai.NewGroqService(cfg.GroqAPIKey, cfg.GroqModel, cfg.TranscriptionModel)
		llm, stt = groq, groq
		if cfg.GroqAPIKey == "" {
			log.Warn().Msg("GROQ_API_KEY vacío: el asistente de IA responderá 503")
		}
	}

	if ttl := cfg.CacheTTL(); ttl > 0 {
		llm = ai.NewCachedLLM(llm, ttl)
	}
	return usecase.NewAIUseCase(llm, stt)
}

// NewEmailSender devuelve el sender SMTP o nil si SMTP_HOST no está configurado.
func NewEmailSender(cfg config.SMTPConfig, log *logger.Logger) reporte.EmailSender {
	if !cfg.Enabled() {
		if log != nil {
			log.Component("di").Warn().Msg("SMTP_HOST vacío: el envío del reporte por correo está deshabilitado")
		}
		return nil
	}
	return email.NewSMTPSender(cfg, log)
}
