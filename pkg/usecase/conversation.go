package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tribu-ai/tribuai/pkg/domain/interfaces"
	"github.com/tribu-ai/tribuai/pkg/domain/model"
	"github.com/tribu-ai/tribuai/pkg/domain/types"
	"github.com/tribu-ai/tribuai/pkg/service/extract"
	"github.com/tribu-ai/tribuai/pkg/service/taste"
	"github.com/tribu-ai/tribuai/pkg/utils/errutil"
	"github.com/tribu-ai/tribuai/pkg/utils/logging"
)

// Terms passed to contextual retrieval sample the profile the same way as
// matching: at most 2 per category, 12 total.
const (
	retrievalTermsPerCategory = 2
	retrievalTermsMax         = 12
)

// ConversationUseCase drives one conversation turn at a time: extract entities
// from raw text, merge them into the session profile, and either ask for the
// first missing category or run the profile, recommendation and matching
// pipeline. It is the sole writer of session state.
type ConversationUseCase struct {
	repo      interfaces.Repository
	extractor extract.Service
	taste     taste.Service
	matcher   *Matcher
	prompts   map[types.Category]CategoryPrompt

	mu     sync.Mutex
	inTurn map[types.SessionID]struct{}
}

// ConversationOption configures a ConversationUseCase
type ConversationOption func(*ConversationUseCase)

// WithExtractor sets the entity extractor. Without one, every turn uses the
// fallback entity list.
func WithExtractor(svc extract.Service) ConversationOption {
	return func(uc *ConversationUseCase) {
		uc.extractor = svc
	}
}

// WithTaste sets the taste-graph service used for recommendation and matching
func WithTaste(svc taste.Service) ConversationOption {
	return func(uc *ConversationUseCase) {
		uc.taste = svc
		if svc != nil {
			uc.matcher = &Matcher{taste: svc}
		}
	}
}

// WithCategoryPrompts overrides the question prompts for the given categories
func WithCategoryPrompts(prompts map[types.Category]CategoryPrompt) ConversationOption {
	return func(uc *ConversationUseCase) {
		for cat, p := range prompts {
			uc.prompts[cat] = p
		}
	}
}

// NewConversation creates a conversation use case backed by the given
// repository.
func NewConversation(repo interfaces.Repository, opts ...ConversationOption) *ConversationUseCase {
	uc := &ConversationUseCase{
		repo:    repo,
		prompts: defaultCategoryPrompts(),
		inTurn:  make(map[types.SessionID]struct{}),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// HandleTurn processes one piece of user input for the session and returns the
// full turn result. An empty session ID starts a new session. Concurrent turns
// for the same session are rejected with ErrSessionBusy; a failed pipeline
// node degrades its own output and annotates ErrorMessage instead of aborting
// the turn. The session profile is never rolled back.
func (uc *ConversationUseCase) HandleTurn(ctx context.Context, sessionID types.SessionID, text string) (*model.TurnResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, goerr.Wrap(ErrEmptyInput, "turn input must not be empty")
	}
	if sessionID == "" {
		sessionID = types.NewSessionID()
	}

	if !uc.acquire(sessionID) {
		return nil, goerr.Wrap(ErrSessionBusy, "turn rejected", goerr.V("session_id", sessionID))
	}
	defer uc.release(sessionID)

	sess, err := uc.repo.Session().GetOrCreate(ctx, sessionID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load session", goerr.V("session_id", sessionID))
	}
	sess.AppendHistory(text, time.Now().UTC())

	result := &model.TurnResult{
		SessionID:       sessionID,
		Recommendations: model.NewRecommendationSet(),
	}

	logger := logging.From(ctx)
	st := State{Node: NodeParsing}
	for st.Node != NodeTurnEnd {
		var ev Event
		switch st.Node {
		case NodeParsing:
			ev = uc.runParsing(ctx, sess, result, text)
		case NodeAskField:
			ev = uc.runAskField(sess, result, st.AskCategory)
		case NodeProfileGeneration:
			ev = uc.runProfileGeneration(sess, result)
		case NodeRecommendation:
			ev = uc.runRecommendation(ctx, sess, result)
		case NodeMatching:
			ev = uc.runMatching(ctx, sess, result)
		default:
			st = State{Node: NodeTurnEnd}
			continue
		}
		st = Transition(st, ev)
	}

	if err := uc.repo.Session().Put(ctx, sess); err != nil {
		return nil, goerr.Wrap(err, "failed to store session", goerr.V("session_id", sessionID))
	}

	logger.Debug("turn completed",
		"session_id", sessionID,
		"profile_complete", result.ProfileComplete,
		"error_message", result.ErrorMessage,
	)

	return result, nil
}

func (uc *ConversationUseCase) runParsing(ctx context.Context, sess *model.Session, result *model.TurnResult, text string) Event {
	var entities []*model.Entity
	if uc.extractor != nil {
		var err error
		entities, err = uc.extractor.Extract(ctx, text)
		if err != nil {
			errutil.Handle(ctx, err, "entity extraction failed, using fallback entities")
			recordError(result, "entity extraction failed")
			entities = fallbackEntities()
		}
	} else {
		entities = fallbackEntities()
	}

	sess.Profile.Merge(entities)
	sess.CurrentContext = sess.Profile.ContextSummary()
	sess.ProfileComplete = sess.Profile.Complete()
	result.ProfileComplete = sess.ProfileComplete

	if !sess.ProfileComplete {
		return EventParsed{FirstMissing: sess.Profile.Missing()[0]}
	}
	return EventParsed{Complete: true}
}

func (uc *ConversationUseCase) runAskField(sess *model.Session, result *model.TurnResult, cat types.Category) Event {
	result.AssistantMessage = uc.questionFor(cat, sess.CurrentContext)
	return EventAsked{}
}

func (uc *ConversationUseCase) runProfileGeneration(sess *model.Session, result *model.TurnResult) Event {
	cp := model.BuildCulturalProfile(sess.Profile)
	result.CulturalProfile = cp
	result.AssistantMessage = fmt.Sprintf(
		"Your cultural profile is complete! As a %s, here are brands and places tuned to your taste.",
		cp.Identity,
	)
	return EventProfileBuilt{}
}

func (uc *ConversationUseCase) runRecommendation(ctx context.Context, sess *model.Session, result *model.TurnResult) Event {
	set, err := uc.retrieve(ctx, sess.Profile, sess.CurrentContext, len(sess.History))
	if err != nil {
		errutil.Handle(ctx, err, "recommendation retrieval failed")
		recordError(result, "recommendation retrieval failed")
		set = model.NewRecommendationSet()
	}
	result.Recommendations = set
	sess.LastRecommendations = set.Clone()
	return EventRecommended{}
}

func (uc *ConversationUseCase) runMatching(ctx context.Context, sess *model.Session, result *model.TurnResult) Event {
	if uc.matcher == nil {
		recordError(result, "matching unavailable")
		return EventMatched{}
	}
	match, err := uc.matcher.Match(ctx, sess.Profile)
	if err != nil {
		errutil.Handle(ctx, err, "audience matching failed")
		recordError(result, "audience matching failed")
		return EventMatched{}
	}
	result.Matching = match
	sess.LastMatching = match.Clone()
	return EventMatched{}
}

// retrieve dispatches to the retrieval strategy chosen for the current
// conversation progress.
func (uc *ConversationUseCase) retrieve(ctx context.Context, p model.Profile, conversationContext string, historyLen int) (*model.RecommendationSet, error) {
	if uc.taste == nil {
		return nil, goerr.New("taste service is not configured")
	}

	switch SelectRetrieval(p, historyLen) {
	case RetrievalBasic:
		return uc.taste.RecommendBasic(ctx, conversationContext)
	case RetrievalContextual:
		terms := p.Terms(retrievalTermsPerCategory, retrievalTermsMax)
		return uc.taste.RecommendContextual(ctx, terms, conversationContext)
	default:
		return uc.taste.RecommendComprehensive(ctx, p.Narrative())
	}
}

// ListSessions returns all sessions known to the repository
func (uc *ConversationUseCase) ListSessions(ctx context.Context) ([]*model.Session, error) {
	return uc.repo.Session().List(ctx)
}

func (uc *ConversationUseCase) acquire(id types.SessionID) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, busy := uc.inTurn[id]; busy {
		return false
	}
	uc.inTurn[id] = struct{}{}
	return true
}

func (uc *ConversationUseCase) release(id types.SessionID) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.inTurn, id)
}

func recordError(result *model.TurnResult, msg string) {
	if result.ErrorMessage == "" {
		result.ErrorMessage = msg
		return
	}
	result.ErrorMessage += "; " + msg
}
