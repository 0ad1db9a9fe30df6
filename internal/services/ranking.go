package services

import (
	"sort"

	"github.com/sbilibin2017/gw-usecase-explorer/internal/models"
)

// TopUseCasesLimit is the number of entries in the ranking.
const TopUseCasesLimit = 10

// RankUseCases scores every use case by the summed weight of its evaluations
// and returns at most limit entries, highest score first. Equal scores keep
// the input order.
func RankUseCases(useCases []models.UseCaseWithValues, limit int) []models.RankedUseCase {
	ranked := make([]models.RankedUseCase, 0, len(useCases))
	for _, uc := range useCases {
		score := 0
		for _, v := range uc.Values {
			score += v.Weight()
		}
		ranked = append(ranked, models.RankedUseCase{
			UseCaseDB:       uc.UseCaseDB,
			TotalScore:      score,
			EvaluationCount: len(uc.Values),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalScore > ranked[j].TotalScore
	})

	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}
