// Package skills provides the skill catalog, skill-gap analysis, and the resume parse simulation.
package skills

import (
	"fmt"
	"slices"
)

// targetSkills is the fixed list a profile is measured against, in recommendation order.
var targetSkills = []string{"Kubernetes", "Docker", "AWS", "TypeScript", "GraphQL"}

// TargetSkills returns a copy of the fixed target-skill list.
func TargetSkills() []string {
	return slices.Clone(targetSkills)
}

// AnalyzeSkillGap returns the target skills missing from current, preserving target order.
// Membership is exact and case-sensitive.
func AnalyzeSkillGap(current []string) []string {
	missing := make([]string, 0, len(targetSkills))
	for _, target := range targetSkills {
		if !slices.Contains(current, target) {
			missing = append(missing, target)
		}
	}
	return missing
}

// Roadmap is the rendered result of a skill-gap analysis.
type Roadmap struct {
	Missing []string `json:"missing"`
	Steps   []string `json:"steps"`
	Summary string   `json:"summary"`
}

// BuildRoadmap turns missing skills into roadmap steps.
func BuildRoadmap(missing []string) Roadmap {
	if len(missing) == 0 {
		return Roadmap{Missing: []string{}, Steps: []string{}, Summary: "You are all set! Great job."}
	}
	steps := make([]string, 0, len(missing))
	for _, skill := range missing {
		steps = append(steps, fmt.Sprintf("Add %s to enhance your profile", skill))
	}
	return Roadmap{
		Missing: slices.Clone(missing),
		Steps:   steps,
		Summary: fmt.Sprintf("%d skills recommended", len(missing)),
	}
}
