// Package catalog implements the pure filter/sort pipeline that reduces the
// startup catalog to a displayed subset. Apply never mutates its input and
// has no store coupling; callers pass a snapshot.
package catalog

import (
	"sort"
	"strings"

	"launchpad/internal/models"
)

// Tab selects the explore sub-feed.
type Tab string

const (
	TabAll       Tab = "all"
	TabTrending  Tab = "trending"
	TabNew       Tab = "new"
	TabFollowing Tab = "following"
)

// SortOrder selects the final ordering of the displayed list.
type SortOrder string

const (
	SortLatest   SortOrder = "latest"
	SortPopular  SortOrder = "popular"
	SortTrending SortOrder = "trending"
	SortFunding  SortOrder = "funding"
)

// Location filter tokens.
const (
	LocationRemote = "remote"
	LocationLocal  = "local"
	LocationGlobal = "global"
)

// DefaultFundingRange bounds the funding slider.
var DefaultFundingRange = [2]float64{0, 2_000_000}

// SizeBucket is a named team-size interval, inclusive on both ends.
type SizeBucket struct {
	ID    string `mapstructure:"id" yaml:"id"`
	Label string `mapstructure:"label" yaml:"label"`
	Min   int    `mapstructure:"min" yaml:"min"`
	Max   int    `mapstructure:"max" yaml:"max"`
}

// Config is the filter configuration record. Empty selections pass through;
// within a multi-select, elements compose with OR; distinct options compose
// with AND.
type Config struct {
	SearchQuery        string
	ActiveTab          Tab
	SelectedCategories []string
	SelectedStages     []string
	SelectedLocations  []string
	SelectedTeamSizes  []string
	FundingRange       [2]float64
	SortBy             SortOrder
}

// DefaultConfig returns the pass-through configuration: no query, all tab,
// empty selections, full funding range, latest ordering.
func DefaultConfig() Config {
	return Config{
		ActiveTab:    TabAll,
		FundingRange: DefaultFundingRange,
		SortBy:       SortLatest,
	}
}

// Pipeline carries the host-provided rule sets the predicates need: the
// local-city set for the "local" token and the named team-size buckets.
type Pipeline struct {
	localCities map[string]bool
	buckets     map[string]SizeBucket
}

// New builds a Pipeline from the host-provided local cities and size buckets.
func New(localCities []string, buckets []SizeBucket) *Pipeline {
	p := &Pipeline{
		localCities: make(map[string]bool, len(localCities)),
		buckets:     make(map[string]SizeBucket, len(buckets)),
	}
	for _, city := range localCities {
		p.localCities[city] = true
	}
	for _, b := range buckets {
		p.buckets[b.ID] = b
	}
	return p
}

// Apply reduces the catalog snapshot to the ordered, displayed list. Given
// identical inputs it returns an equal-valued list. An empty catalog yields
// an empty result.
func (p *Pipeline) Apply(startups []models.Startup, cfg Config) []models.Startup {
	filtered := make([]models.Startup, 0, len(startups))
	for _, st := range startups {
		if p.matches(&st, cfg) {
			filtered = append(filtered, st)
		}
	}
	sortStartups(filtered, cfg.SortBy)
	return filtered
}

func (p *Pipeline) matches(st *models.Startup, cfg Config) bool {
	if q := strings.ToLower(strings.TrimSpace(cfg.SearchQuery)); q != "" {
		if !matchesQuery(st, q) {
			return false
		}
	}

	switch cfg.ActiveTab {
	case TabTrending:
		if !st.IsTrending {
			return false
		}
	case TabNew:
		if !st.IsNew {
			return false
		}
	case TabFollowing:
		if !st.IsFollowing {
			return false
		}
	}

	if len(cfg.SelectedCategories) > 0 && !contains(cfg.SelectedCategories, st.Category) {
		return false
	}
	if len(cfg.SelectedStages) > 0 && !contains(cfg.SelectedStages, st.Stage) {
		return false
	}
	if len(cfg.SelectedLocations) > 0 && !p.matchesLocation(st, cfg.SelectedLocations) {
		return false
	}
	if len(cfg.SelectedTeamSizes) > 0 && !p.matchesTeamSize(st, cfg.SelectedTeamSizes) {
		return false
	}

	raised := st.FundingRaisedValue()
	if raised < cfg.FundingRange[0] || raised > cfg.FundingRange[1] {
		return false
	}
	return true
}

// matchesQuery is a case-insensitive substring match against name,
// description, category, and tags. Any hit satisfies.
func matchesQuery(st *models.Startup, q string) bool {
	if strings.Contains(strings.ToLower(st.Name), q) ||
		strings.Contains(strings.ToLower(st.Description), q) ||
		strings.Contains(strings.ToLower(st.Category), q) {
		return true
	}
	for _, tag := range st.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// matchesLocation passes when any selected token matches: "remote" checks
// the remote flag, "local" checks membership in the host's local-city set,
// and "global" passes unconditionally.
func (p *Pipeline) matchesLocation(st *models.Startup, tokens []string) bool {
	for _, token := range tokens {
		switch token {
		case LocationRemote:
			if st.IsRemote {
				return true
			}
		case LocationLocal:
			if p.localCities[st.Location] {
				return true
			}
		case LocationGlobal:
			return true
		}
	}
	return false
}

func (p *Pipeline) matchesTeamSize(st *models.Startup, ids []string) bool {
	for _, id := range ids {
		b, ok := p.buckets[id]
		if !ok {
			continue
		}
		if st.TeamSize >= b.Min && st.TeamSize <= b.Max {
			return true
		}
	}
	return false
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// sortStartups applies a stable descending sort; ties preserve catalog order.
func sortStartups(list []models.Startup, order SortOrder) {
	switch order {
	case SortPopular:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Followers > list[j].Followers
		})
	case SortTrending:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].GrowthValue() > list[j].GrowthValue()
		})
	case SortFunding:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].FundingRaisedValue() > list[j].FundingRaisedValue()
		})
	default: // SortLatest
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].FoundedTime().After(list[j].FoundedTime())
		})
	}
}
