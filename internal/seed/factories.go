package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"launchpad/internal/models"
	"launchpad/internal/store"
)

var (
	factoryCategories = []string{
		"Technology", "Healthcare", "Finance", "Sustainability",
		"Education", "Food Delivery", "Data Analytics", "AI & ML",
	}
	factoryStages = []string{"Pre-Seed", "Seed", "Series A", "Series B"}
	factoryCities = []string{
		"San Francisco, CA", "Boston, MA", "New York, NY",
		"Portland, OR", "Austin, TX", "Remote",
	}
)

// Factory fabricates demo entities. It is intended for development datasets
// and tests, not for the bootstrap seed.
type Factory struct {
	r      *rand.Rand
	nextID int
}

// NewFactory creates a Factory producing ids starting after the given floor.
func NewFactory(seed int64, idFloor int) *Factory {
	gofakeit.Seed(seed)
	return &Factory{r: rand.New(rand.NewSource(seed)), nextID: idFloor + 1}
}

// Startup builds a plausible catalog record with randomized descriptive
// fields and counters.
func (f *Factory) Startup(overrides ...func(*models.Startup)) models.Startup {
	location := factoryCities[f.r.Intn(len(factoryCities))]
	founded := time.Now().AddDate(0, -f.r.Intn(48), -f.r.Intn(28))
	goal := float64((f.r.Intn(19) + 1)) * 100_000
	st := models.Startup{
		ID:          f.nextID,
		Name:        gofakeit.Company(),
		Description: gofakeit.Sentence(12),
		Category:    factoryCategories[f.r.Intn(len(factoryCategories))],
		Stage:       factoryStages[f.r.Intn(len(factoryStages))],
		Location:    location,
		Founded:     founded.Format("2006-01-02"),
		Tags:        []string{gofakeit.BuzzWord(), gofakeit.BuzzWord()},
		Logo:        fmt.Sprintf("https://picsum.photos/seed/%s/80/80", gofakeit.UUID()),
		CoverImage:  fmt.Sprintf("https://picsum.photos/seed/%s/600/400", gofakeit.UUID()),
		Founder: models.Founder{
			Name:   gofakeit.Name(),
			Avatar: fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", gofakeit.Username()),
		},
		Likes:         f.r.Intn(300),
		Comments:      f.r.Intn(60),
		Shares:        f.r.Intn(30),
		Followers:     f.r.Intn(4000),
		TeamSize:      f.r.Intn(40) + 1,
		FundingRaised: goal * f.r.Float64(),
		FundingGoal:   goal,
		Growth:        fmt.Sprintf("+%d%%", f.r.Intn(50)),
		IsTrending:    f.r.Float32() < 0.3,
		IsNew:         f.r.Float32() < 0.2,
		IsRemote:      location == "Remote",
		RequestStatus: models.RequestStatusNone,
	}
	f.nextID++
	for _, override := range overrides {
		override(&st)
	}
	return st
}

// Post builds a feed item attributed to the given startup.
func (f *Factory) Post(st models.Startup) models.Post {
	post := models.Post{
		ID: f.nextID,
		Startup: models.PostStartup{
			Name:     st.Name,
			Logo:     st.Logo,
			Category: st.Category,
		},
		Content:  gofakeit.Paragraph(1, 2, 8, " "),
		PostedAt: time.Now().Add(-time.Duration(f.r.Intn(96)) * time.Hour),
		Likes:    f.r.Intn(80),
		Comments: f.r.Intn(20),
	}
	if f.r.Float32() < 0.3 {
		post.Image = fmt.Sprintf("https://picsum.photos/seed/%s/500/300", gofakeit.UUID())
	}
	f.nextID++
	return post
}

// Extend appends n fabricated startups, each with a feed post, to a dataset.
func (f *Factory) Extend(ds store.Dataset, n int) store.Dataset {
	for i := 0; i < n; i++ {
		st := f.Startup()
		ds.Startups = append(ds.Startups, st)
		ds.Posts = append(ds.Posts, f.Post(st))
	}
	return ds
}
