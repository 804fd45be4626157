package profile

import (
	"fmt"

	"github.com/jonathan/placement-portal/internal/config"
	"github.com/jonathan/placement-portal/internal/types"
)

// Completion scores how complete a student profile is, 0 to 100.
type Completion interface {
	Score(user *types.User) int
}

// Seeded keeps the seeded percentage regardless of field coverage.
type Seeded struct{}

// Score returns the stored value clamped to 0..100.
func (Seeded) Score(user *types.User) int {
	return max(0, min(100, user.ProfileCompletion))
}

// Derived counts populated required fields plus non-empty skills and certifications.
type Derived struct{}

// Score returns the populated share of the ten checks, rounded down.
func (Derived) Score(user *types.User) int {
	checks := []bool{
		user.DisplayName != "",
		user.Email != "",
		user.Phone != "",
		user.RollNumber != "",
		user.Address != "",
		user.Department != "",
		user.Year != "",
		user.CGPA > 0,
		len(user.Skills) >= 1,
		len(user.Certifications) >= 1,
	}
	populated := 0
	for _, ok := range checks {
		if ok {
			populated++
		}
	}
	return populated * 100 / len(checks)
}

// CompletionFor maps a configured mode to its policy.
func CompletionFor(mode string) (Completion, error) {
	switch mode {
	case config.CompletionSeeded, "":
		return Seeded{}, nil
	case config.CompletionDerived:
		return Derived{}, nil
	default:
		return nil, fmt.Errorf("unknown completion mode %q", mode)
	}
}
