package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/tribu-ai/tribuai/pkg/domain/types"
	"github.com/tribu-ai/tribuai/pkg/usecase"
)

func TestTransition(t *testing.T) {
	t.Run("parsing routes to ask field when incomplete", func(t *testing.T) {
		next := usecase.Transition(
			usecase.State{Node: usecase.NodeParsing},
			usecase.EventParsed{FirstMissing: types.CategoryArt},
		)
		gt.Value(t, next.Node).Equal(usecase.NodeAskField)
		gt.Value(t, next.AskCategory).Equal(types.CategoryArt)
	})

	t.Run("parsing routes to profile generation when complete", func(t *testing.T) {
		next := usecase.Transition(
			usecase.State{Node: usecase.NodeParsing},
			usecase.EventParsed{Complete: true},
		)
		gt.Value(t, next.Node).Equal(usecase.NodeProfileGeneration)
	})

	t.Run("ask field terminates the turn", func(t *testing.T) {
		next := usecase.Transition(
			usecase.State{Node: usecase.NodeAskField, AskCategory: types.CategoryMusic},
			usecase.EventAsked{},
		)
		gt.Value(t, next.Node).Equal(usecase.NodeTurnEnd)
	})

	t.Run("profile generation routes to recommendation", func(t *testing.T) {
		next := usecase.Transition(
			usecase.State{Node: usecase.NodeProfileGeneration},
			usecase.EventProfileBuilt{},
		)
		gt.Value(t, next.Node).Equal(usecase.NodeRecommendation)
	})

	t.Run("recommendation routes to matching", func(t *testing.T) {
		next := usecase.Transition(
			usecase.State{Node: usecase.NodeRecommendation},
			usecase.EventRecommended{},
		)
		gt.Value(t, next.Node).Equal(usecase.NodeMatching)
	})

	t.Run("matching terminates the turn", func(t *testing.T) {
		next := usecase.Transition(
			usecase.State{Node: usecase.NodeMatching},
			usecase.EventMatched{},
		)
		gt.Value(t, next.Node).Equal(usecase.NodeTurnEnd)
	})

	t.Run("mismatched event terminates the turn", func(t *testing.T) {
		next := usecase.Transition(
			usecase.State{Node: usecase.NodeParsing},
			usecase.EventMatched{},
		)
		gt.Value(t, next.Node).Equal(usecase.NodeTurnEnd)
	})
}
