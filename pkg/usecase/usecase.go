package usecase

import (
	"github.com/tribu-ai/tribuai/pkg/domain/interfaces"
	"github.com/tribu-ai/tribuai/pkg/domain/types"
	"github.com/tribu-ai/tribuai/pkg/service/extract"
	"github.com/tribu-ai/tribuai/pkg/service/taste"
)

type UseCases struct {
	repo      interfaces.Repository
	extractor extract.Service
	taste     taste.Service
	prompts   map[types.Category]CategoryPrompt

	Conversation *ConversationUseCase
}

type Option func(*UseCases)

func WithExtractService(svc extract.Service) Option {
	return func(uc *UseCases) {
		uc.extractor = svc
	}
}

func WithTasteService(svc taste.Service) Option {
	return func(uc *UseCases) {
		uc.taste = svc
	}
}

func WithPrompts(prompts map[types.Category]CategoryPrompt) Option {
	return func(uc *UseCases) {
		uc.prompts = prompts
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	convOpts := []ConversationOption{}
	if uc.extractor != nil {
		convOpts = append(convOpts, WithExtractor(uc.extractor))
	}
	if uc.taste != nil {
		convOpts = append(convOpts, WithTaste(uc.taste))
	}
	if uc.prompts != nil {
		convOpts = append(convOpts, WithCategoryPrompts(uc.prompts))
	}
	uc.Conversation = NewConversation(repo, convOpts...)

	return uc
}

// Taste exposes the taste-graph service for health probes
func (uc *UseCases) Taste() taste.Service {
	return uc.taste
}
