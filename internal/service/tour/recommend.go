package tour

import (
	"math"
	"sort"

	"github.com/smarttravel/SmartTravelTour/internal/model/entity"
)

type scoredOption struct {
	Option entity.TourOption
	Score  float64
}

// budgetCloseness is 1 minus the relative difference of the two normalized
// budgets: 1 for identical affordability, approaching 0 as they diverge.
func budgetCloseness(norm, userNorm float64) float64 {
	return 1 - math.Abs(norm-userNorm)/(norm+userNorm+epsilon)
}

// scoreOptions scores a candidate set against the request's normalized
// budget. When any candidate carries a rating the score is the 50/50 blend
// of budget closeness and rating/10 (missing ratings count as 0); otherwise
// budget closeness alone.
func scoreOptions(options []entity.TourOption, userNorm float64) []scoredOption {
	hasRating := false
	for i := range options {
		if options[i].Rating != nil {
			hasRating = true
			break
		}
	}

	scored := make([]scoredOption, 0, len(options))
	for i := range options {
		o := options[i]
		norm := normalizedBudget(o.TargetBudget, o.GuestCount, o.DurationDays)
		score := budgetCloseness(norm, userNorm)
		if hasRating {
			rating := 0.0
			if o.Rating != nil {
				rating = *o.Rating
			}
			score = 0.5*score + 0.5*(rating/10)
		}
		scored = append(scored, scoredOption{Option: o, Score: score})
	}
	return scored
}

// topOptions sorts descending by score (stable), deduplicates by option id
// and returns the first n options.
func topOptions(scored []scoredOption, n int) []entity.TourOption {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	seen := make(map[int]struct{}, len(scored))
	result := make([]entity.TourOption, 0, n)
	for _, s := range scored {
		if _, ok := seen[s.Option.OptionID]; ok {
			continue
		}
		seen[s.Option.OptionID] = struct{}{}
		result = append(result, s.Option)
		if len(result) == n {
			break
		}
	}
	return result
}

// recommendExisting reuses the user's own history: every prior option at
// the requested destination is scored by the blend of budget closeness and
// rating, best first. ErrNoHistoryFound when the user has no options at
// all, or none at the destination.
func (s *TourService) recommendExisting(request *entity.TourRequest, topN int) ([]entity.TourOption, error) {
	options, err := s.catalogRepo.GetOptionsByUser(request.UserID)
	if err != nil {
		return nil, catalogErr("listing options for user", err)
	}
	if len(options) == 0 {
		return nil, ErrNoHistoryFound
	}

	userNorm := normalizedBudget(request.TargetBudget, request.GuestCount, request.DurationDays)

	atDestination := options[:0:0]
	for i := range options {
		if request.DestinationCityID != nil && options[i].DestinationCityID != nil &&
			*options[i].DestinationCityID == *request.DestinationCityID {
			atDestination = append(atDestination, options[i])
		}
	}
	if len(atDestination) == 0 {
		return nil, ErrNoHistoryFound
	}

	// The existing strategy always blends rating in, absent ratings as 0.
	scored := make([]scoredOption, 0, len(atDestination))
	for _, option := range atDestination {
		rating := 0.0
		if option.Rating != nil {
			rating = *option.Rating
		}
		norm := normalizedBudget(option.TargetBudget, option.GuestCount, option.DurationDays)
		scored = append(scored, scoredOption{
			Option: option,
			Score:  0.5*budgetCloseness(norm, userNorm) + 0.5*(rating/10),
		})
	}
	return topOptions(scored, topN), nil
}

// recommendColdStart serves requests without usable personal history.
// Missing request fields are imputed from the entire option catalog
// (unfiltered by destination; the subsequent neighbor search is
// destination-gated). The fallback chain when neighbors or their options
// are missing is: options at the destination, then any options at all,
// then ErrEmptyCatalog.
func (s *TourService) recommendColdStart(request *entity.TourRequest, k, topN int) ([]entity.TourOption, error) {
	allOptions, err := s.catalogRepo.GetAllOptions()
	if err != nil {
		return nil, catalogErr("listing all options", err)
	}

	imputeAllFields(request, allOptions)
	if request.TargetBudget == nil {
		imputeBudget(request, allOptions)
	}

	var neighbors []neighbor
	if request.DestinationCityID != nil {
		candidates, err := s.catalogRepo.GetOptionsByDestination(*request.DestinationCityID, request.UserID)
		if err != nil {
			return nil, catalogErr("listing options by destination", err)
		}
		neighbors = topKNeighbors(request, candidates, k)
	}

	userNorm := normalizedBudget(request.TargetBudget, request.GuestCount, request.DurationDays)

	if len(neighbors) == 0 {
		return s.fallbackOptions(request, userNorm, topN)
	}

	neighborOptions, err := s.catalogRepo.GetOptionsByUserIDs(uniqueUserIDs(neighbors))
	if err != nil {
		return nil, catalogErr("listing neighbor options", err)
	}
	if len(neighborOptions) == 0 {
		return s.fallbackOptions(request, userNorm, topN)
	}

	scored := scoreOptions(neighborOptions, userNorm)

	filtered := scored[:0:0]
	for _, sc := range scored {
		if request.DestinationCityID != nil && sc.Option.DestinationCityID != nil &&
			*sc.Option.DestinationCityID == *request.DestinationCityID {
			filtered = append(filtered, sc)
		}
	}
	// Destination filtering can empty the set; rescore the unfiltered
	// neighbor options instead of failing.
	if len(filtered) == 0 {
		filtered = scored
	}
	return topOptions(filtered, topN), nil
}

// fallbackOptions is the two-tier cold-start fallback: the first topN
// options at the destination, then the first topN options anywhere. Both
// tiers empty means the catalog has nothing to recommend.
func (s *TourService) fallbackOptions(request *entity.TourRequest, userNorm float64, topN int) ([]entity.TourOption, error) {
	var options []entity.TourOption
	if request.DestinationCityID != nil {
		byDestination, err := s.catalogRepo.GetOptionsByDestination(*request.DestinationCityID, "")
		if err != nil {
			return nil, catalogErr("listing options by destination", err)
		}
		options = byDestination
	}
	if len(options) == 0 {
		all, err := s.catalogRepo.GetAllOptions()
		if err != nil {
			return nil, catalogErr("listing all options", err)
		}
		options = all
	}
	if len(options) == 0 {
		return nil, ErrEmptyCatalog
	}
	if len(options) > topN {
		options = options[:topN]
	}
	return topOptions(scoreOptions(options, userNorm), topN), nil
}

func uniqueUserIDs(neighbors []neighbor) []string {
	seen := make(map[string]struct{}, len(neighbors))
	ids := make([]string, 0, len(neighbors))
	for _, n := range neighbors {
		if _, ok := seen[n.UserID]; ok {
			continue
		}
		seen[n.UserID] = struct{}{}
		ids = append(ids, n.UserID)
	}
	return ids
}
