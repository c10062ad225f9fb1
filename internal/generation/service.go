package generation

import (
	"context"
	"log"

	"github.com/genieops/leadmagnet-api/internal/entity"
)

// TextGenerator é o contrato com o modelo de linguagem. A implementação
// real fica em infra/integration/hfrouter.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// Service monta os prompts por kind, chama o modelo e normaliza a
// resposta. Falha de geração nunca sobe para o chamador: o caminho de
// erro resolve para o fallback do kind pedido.
type Service struct {
	llm TextGenerator
}

func NewService(llm TextGenerator) *Service {
	return &Service{llm: llm}
}

// GenerateIdeas devolve até 3 ideias validadas de lead magnet.
func (s *Service) GenerateIdeas(ctx context.Context, ideaCtx IdeaContext) []Idea {
	raw, err := s.llm.Generate(ctx, ideasPrompt(ideaCtx), tokensIdeas)
	if err != nil {
		log.Printf("⚠️ Geração de ideias falhou (%v), usando fallback", err)
		return FallbackIdeas(ideaCtx.PainPoints, ideaCtx.OfferType)
	}
	return NormalizeIdeas(raw, ideaCtx.PainPoints, ideaCtx.OfferType)
}

// GenerateContent gera o conteúdo estruturado do kind do lead magnet.
func (s *Service) GenerateContent(ctx context.Context, magnet *entity.LeadMagnet, painPoints []string) *entity.Content {
	prompt, maxTokens := contentPrompt(magnet.Kind, magnet.Title, painPoints)
	raw, err := s.llm.Generate(ctx, prompt, maxTokens)
	if err != nil {
		log.Printf("⚠️ Geração de conteúdo %s falhou (%v), usando fallback", magnet.Kind, err)
		return FallbackContent(magnet.Kind, magnet.Title)
	}
	return NormalizeContent(raw, magnet.Kind, magnet.Title)
}

// GenerateLandingCopy gera o copy da landing page do lead magnet.
func (s *Service) GenerateLandingCopy(ctx context.Context, magnet *entity.LeadMagnet) LandingCopy {
	raw, err := s.llm.Generate(ctx, landingPagePrompt(magnet), tokensLanding)
	if err != nil {
		log.Printf("⚠️ Geração de landing page falhou (%v), usando fallback", err)
		return FallbackLandingCopy(magnet)
	}
	return NormalizeLandingCopy(raw, magnet)
}

// GenerateEmailSequence gera a sequência de nutrição com numEmails
// emails (pode voltar menos, se o modelo produzir menos objetos válidos).
func (s *Service) GenerateEmailSequence(ctx context.Context, magnet *entity.LeadMagnet, numEmails int) []EmailCopy {
	raw, err := s.llm.Generate(ctx, emailSequencePrompt(magnet, numEmails), tokensEmails)
	if err != nil {
		log.Printf("⚠️ Geração da sequência de emails falhou (%v), usando fallback", err)
		return FallbackEmailSequence(numEmails)
	}
	return NormalizeEmailSequence(raw, numEmails)
}
