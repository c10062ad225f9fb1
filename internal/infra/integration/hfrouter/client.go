package hfrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/genieops/leadmagnet-api/internal/infra/http/middleware"
)

const systemPrompt = "You are a helpful assistant that generates structured content in JSON format when requested."

// Parâmetros fixos de amostragem.
const (
	temperature = 0.7
	topP        = 0.9
)

// modelLoadingDelay é quanto esperamos antes da única retentativa
// quando o modelo ainda está carregando (503 no router).
const modelLoadingDelay = 20 * time.Second

var (
	// ErrUnauthorized: API key inválida. Não adianta retentar.
	ErrUnauthorized = errors.New("hfrouter: invalid API key")
	// ErrRateLimited: 429 do router. Falha sem retentativa.
	ErrRateLimited = errors.New("hfrouter: rate limited")
	// ErrModelLoading: modelo ainda carregando (503).
	ErrModelLoading = errors.New("hfrouter: model is loading")
)

type Client struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client

	// sleep é injetável para os testes não esperarem 20s de verdade.
	sleep func(time.Duration)
}

func NewClient(apiKey, baseURL, model string) *Client {
	if baseURL == "" {
		baseURL = "https://router.huggingface.co/v1"
	}
	if model == "" {
		model = "deepseek-ai/DeepSeek-V3.2"
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		http:    &http.Client{Timeout: 60 * time.Second},
		sleep:   time.Sleep,
	}
}

// Generate envia o prompt e devolve o texto gerado. Em 503 (modelo
// carregando) espera e retenta exatamente uma vez; 401 e 429 falham
// direto. Quem resolve a falha em conteúdo de fallback é o chamador.
func (c *Client) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	text, err := c.complete(ctx, prompt, maxTokens)
	if err == nil {
		return text, nil
	}
	middleware.RecordIntegrationError("hf_router")

	if errors.Is(err, ErrUnauthorized) {
		log.Printf("❌ HF Router: API key inválida, confira o .env")
		return "", err
	}
	if errors.Is(err, ErrRateLimited) {
		log.Printf("❌ HF Router: rate limit atingido")
		return "", err
	}
	if !errors.Is(err, ErrModelLoading) {
		return "", err
	}

	// Modelo carregando: uma retentativa após espera fixa.
	log.Printf("⏳ HF Router: modelo carregando, aguardando %s para retentar...", modelLoadingDelay)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}
	c.sleep(modelLoadingDelay)

	return c.complete(ctx, prompt, maxTokens)
}

func (c *Client) complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	payload := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
		TopP:        topP,
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("erro ao marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro na conexão com o HF router: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return "", classifyError(resp.StatusCode, body)
	}

	var response chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("erro ao decodificar resposta do router: %w", err)
	}
	if response.Error != nil {
		return "", fmt.Errorf("hfrouter: %s", response.Error.Message)
	}
	if len(response.Choices) == 0 {
		return "", errors.New("hfrouter: resposta sem choices")
	}

	text := strings.TrimSpace(response.Choices[0].Message.Content)
	log.Printf("✅ HF Router: %d caracteres gerados", len(text))
	return text, nil
}

func classifyError(status int, body []byte) error {
	msg := strings.ToLower(string(body))
	switch {
	case status == http.StatusUnauthorized:
		return ErrUnauthorized
	case status == http.StatusTooManyRequests:
		return ErrRateLimited
	case status == http.StatusServiceUnavailable || strings.Contains(msg, "loading"):
		return ErrModelLoading
	default:
		return fmt.Errorf("hfrouter: status %d: %s", status, strings.TrimSpace(string(body)))
	}
}
