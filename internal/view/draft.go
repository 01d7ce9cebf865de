package view

import (
	"strings"

	"launchpad/internal/models"
	"launchpad/internal/store"
)

// StartupForm carries the fields collected by the create-startup wizard.
// Everything the form does not ask for is defaulted by Draft.
type StartupForm struct {
	Name          string
	Description   string
	Industry      string
	Stage         string
	Location      string
	TeamSize      int
	FundingGoal   float64
	FundingRaised float64
	Tags          []string
	Logo          string
	CoverImage    string
	Founded       string
}

// Draft assembles a Startup draft with defaulted fields: counters zeroed,
// growth "+0%", new flag set, viewer flags cleared, and the remote flag
// derived from the location string. The id is never set here; the store
// assigns it.
func (f StartupForm) Draft() models.Startup {
	return models.Startup{
		Name:          f.Name,
		Description:   f.Description,
		Category:      f.Industry,
		Stage:         f.Stage,
		Location:      f.Location,
		Founded:       f.Founded,
		Tags:          f.Tags,
		Logo:          f.Logo,
		CoverImage:    f.CoverImage,
		TeamSize:      f.TeamSize,
		FundingGoal:   f.FundingGoal,
		FundingRaised: f.FundingRaised,
		Growth:        "+0%",
		IsNew:         true,
		IsRemote:      strings.Contains(strings.ToLower(f.Location), "remote"),
		RequestStatus: models.RequestStatusNone,
	}
}

// Submit assembles the draft and passes it to the store, which validates
// required fields, assigns the id, and inserts at the front of the catalog.
func (f StartupForm) Submit(s *store.Store) (models.Startup, error) {
	return s.CreateStartup(f.Draft())
}
