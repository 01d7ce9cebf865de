package main

import (
	"fmt"
	"log"
	"log/slog"

	"launchpad/internal/catalog"
	"launchpad/internal/config"
	"launchpad/internal/logging"
	"launchpad/internal/seed"
	"launchpad/internal/store"
	"launchpad/internal/view"
)

// Demo entry point: loads configuration and the seed dataset, bootstraps the
// store, and walks through the explore pipeline and a few mutations.
func main() {
	cfg := config.LoadConfig()
	logging.Init(cfg.LogLevel)

	dataset, err := seed.LoadFile(cfg.SeedFile)
	if err != nil {
		log.Fatalf("failed to load seed dataset: %v", err)
	}

	s := store.New(dataset)
	pipeline := catalog.New(cfg.LocalCities, cfg.TeamSizeBuckets)

	disposer := s.Subscribe(store.TopicAll, func(topic store.Topic) {
		logging.Logger.Debug("change committed", slog.String("topic", string(topic)))
	})
	defer disposer()

	explore := pipeline.Apply(s.ListStartups(), catalog.Config{
		ActiveTab:    catalog.TabTrending,
		FundingRange: [2]float64{cfg.FundingMin, cfg.FundingMax},
		SortBy:       catalog.SortPopular,
	})
	fmt.Println("Trending startups by followers:")
	for _, st := range explore {
		fmt.Printf("  %-14s %-16s %6d followers  %.0f%% funded\n",
			st.Name, st.Category, st.Followers, st.FundingProgress()*100)
	}

	if err := s.ToggleLike(1); err != nil {
		log.Fatalf("toggle like: %v", err)
	}
	if st, ok := s.GetStartup(1); ok {
		fmt.Printf("\nLiked %s, now at %d likes\n", st.Name, st.Likes)
	}

	fmt.Printf("Unread notifications: %d, unread messages: %d\n",
		view.UnreadNotifications(s), view.UnreadMessages(s))
}
