package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeSkillGap_AllMissing(t *testing.T) {
	missing := AnalyzeSkillGap([]string{"Python", "JavaScript"})
	assert.Equal(t, []string{"Kubernetes", "Docker", "AWS", "TypeScript", "GraphQL"}, missing)
}

func TestAnalyzeSkillGap_PreservesTargetOrder(t *testing.T) {
	missing := AnalyzeSkillGap([]string{"GraphQL", "Docker"})
	assert.Equal(t, []string{"Kubernetes", "AWS", "TypeScript"}, missing)
}

func TestAnalyzeSkillGap_NoneMissing(t *testing.T) {
	missing := AnalyzeSkillGap(TargetSkills())
	assert.Empty(t, missing)
}

func TestAnalyzeSkillGap_CaseSensitive(t *testing.T) {
	missing := AnalyzeSkillGap([]string{"docker"})
	assert.Contains(t, missing, "Docker")
}

func TestAnalyzeSkillGap_NilInput(t *testing.T) {
	assert.Len(t, AnalyzeSkillGap(nil), 5)
}

func TestTargetSkills_ReturnsCopy(t *testing.T) {
	targets := TargetSkills()
	targets[0] = "COBOL"
	assert.Equal(t, "Kubernetes", TargetSkills()[0])
}

func TestBuildRoadmap(t *testing.T) {
	tests := []struct {
		name      string
		missing   []string
		wantSteps []string
		summary   string
	}{
		{
			name:      "empty",
			missing:   nil,
			wantSteps: []string{},
			summary:   "You are all set! Great job.",
		},
		{
			name:      "two missing",
			missing:   []string{"Docker", "AWS"},
			wantSteps: []string{"Add Docker to enhance your profile", "Add AWS to enhance your profile"},
			summary:   "2 skills recommended",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roadmap := BuildRoadmap(tt.missing)
			require.NotNil(t, roadmap.Steps)
			assert.Equal(t, tt.wantSteps, roadmap.Steps)
			assert.Equal(t, tt.summary, roadmap.Summary)
		})
	}
}
