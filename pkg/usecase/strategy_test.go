package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/tribu-ai/tribuai/pkg/domain/model"
	"github.com/tribu-ai/tribuai/pkg/domain/types"
	"github.com/tribu-ai/tribuai/pkg/usecase"
)

func TestSelectRetrieval(t *testing.T) {
	completeProfile := func() model.Profile {
		p := model.NewProfile()
		for _, c := range types.AllCategories() {
			p[c] = []string{"something"}
		}
		return p
	}

	t.Run("empty profile selects basic regardless of history", func(t *testing.T) {
		gt.Value(t, usecase.SelectRetrieval(model.NewProfile(), 0)).Equal(usecase.RetrievalBasic)
		gt.Value(t, usecase.SelectRetrieval(model.NewProfile(), 10)).Equal(usecase.RetrievalBasic)
	})

	t.Run("partial profile selects contextual", func(t *testing.T) {
		p := model.NewProfile()
		p[types.CategoryMusic] = []string{"Indie Rock"}
		p[types.CategoryFashion] = []string{"Acne Studios"}

		gt.Value(t, usecase.SelectRetrieval(p, 1)).Equal(usecase.RetrievalContextual)
		gt.Value(t, usecase.SelectRetrieval(p, 5)).Equal(usecase.RetrievalContextual)
	})

	t.Run("complete profile with short history stays contextual", func(t *testing.T) {
		gt.Value(t, usecase.SelectRetrieval(completeProfile(), 2)).Equal(usecase.RetrievalContextual)
	})

	t.Run("complete profile with longer history selects comprehensive", func(t *testing.T) {
		gt.Value(t, usecase.SelectRetrieval(completeProfile(), 5)).Equal(usecase.RetrievalComprehensive)
	})
}
