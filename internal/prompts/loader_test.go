package prompts

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get(ChatbotFile, "fallback")
	require.NoError(t, err)
	assert.Equal(t, "Thanks for reaching out! Our AI module will be enhanced soon.", prompt)
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get(NoticesFile, "nonexistent-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() { MustGet("nonexistent.json", "some-key") })
	assert.NotPanics(t, func() { assert.NotEmpty(t, MustGet(ChatbotFile, "skills")) })
}

func TestFormat(t *testing.T) {
	got := Format("Hello {{.Name}}, you have {{.Count}} {{.Name}}", map[string]string{"Name": "Arjun", "Count": "2"})
	assert.Equal(t, "Hello Arjun, you have 2 Arjun", got)
	assert.Equal(t, "no {{.Missing}}", Format("no {{.Missing}}", nil))
}

func TestNotice(t *testing.T) {
	title, body, err := Notice("welcome", map[string]string{"Name": "Arjun Sharma"})
	require.NoError(t, err)
	assert.Equal(t, "Welcome", title)
	assert.Equal(t, "Hello Arjun Sharma!", body)

	_, _, err = Notice("missing", nil)
	assert.Error(t, err)
}

func TestValidateNotices(t *testing.T) {
	assert.NoError(t, ValidateNotices())

	keys, err := List(NoticesFile)
	require.NoError(t, err)
	assert.True(t, slices.IsSorted(keys))
	assert.Contains(t, keys, "welcome.title")
}

func TestCheckNoticeKeys(t *testing.T) {
	tests := []struct {
		name    string
		keys    []string
		wantErr bool
	}{
		{name: "complete", keys: []string{"applied.body", "applied.title"}},
		{name: "empty", keys: nil},
		{name: "missing body", keys: []string{"applied.title"}, wantErr: true},
		{name: "missing title", keys: []string{"applied.body", "saved.body", "saved.title"}, wantErr: true},
		{name: "no field", keys: []string{"applied"}, wantErr: true},
		{name: "unknown field", keys: []string{"applied.title", "applied.body", "applied.icon"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkNoticeKeys(tt.keys)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
