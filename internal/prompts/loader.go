// Package prompts provides the user-facing text of the portal: transient notices
// and chatbot replies. Texts are stored as JSON files and embedded at compile time.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

// Embedded prompt files
const (
	NoticesFile = "notices.json"
	ChatbotFile = "chatbot.json"
)

// cache stores parsed prompt files to avoid repeated JSON parsing
var (
	cache   = make(map[string]map[string]string)
	cacheMu sync.RWMutex
)

// Get retrieves a prompt by filename and key.
func Get(filename, key string) (string, error) {
	prompts, err := loadFile(filename)
	if err != nil {
		return "", err
	}

	prompt, exists := prompts[key]
	if !exists {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return prompt, nil
}

// MustGet retrieves a prompt by filename and key, panicking if not found.
// Use this for prompts that are required at initialization time.
func MustGet(filename, key string) string {
	prompt, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return prompt
}

// Format replaces template placeholders in the form {{.Key}} with values from data.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		result = strings.ReplaceAll(result, "{{."+key+"}}", value)
	}
	return result
}

// Notice returns the title and formatted body of the notice named key.
func Notice(key string, data map[string]string) (title, body string, err error) {
	if title, err = Get(NoticesFile, key+".title"); err != nil {
		return "", "", err
	}
	if body, err = Get(NoticesFile, key+".body"); err != nil {
		return "", "", err
	}
	return title, Format(body, data), nil
}

// loadFile loads and caches a prompt file.
func loadFile(filename string) (map[string]string, error) {
	cacheMu.RLock()
	if prompts, exists := cache[filename]; exists {
		cacheMu.RUnlock()
		return prompts, nil
	}
	cacheMu.RUnlock()

	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}

	var prompts map[string]string
	if err := json.Unmarshal(data, &prompts); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	cacheMu.Lock()
	cache[filename] = prompts
	cacheMu.Unlock()

	return prompts, nil
}

// ClearCache clears the prompt cache. Useful for testing.
func ClearCache() {
	cacheMu.Lock()
	cache = make(map[string]map[string]string)
	cacheMu.Unlock()
}

// List returns all prompt keys in a file, sorted.
func List(filename string) ([]string, error) {
	prompts, err := loadFile(filename)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(prompts))
	for key := range prompts {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys, nil
}

// ValidateNotices checks that every notice in NoticesFile has exactly a title
// and a body.
func ValidateNotices() error {
	keys, err := List(NoticesFile)
	if err != nil {
		return err
	}
	return checkNoticeKeys(keys)
}

func checkNoticeKeys(keys []string) error {
	fields := make(map[string][]string)
	for _, key := range keys {
		name, field, ok := strings.Cut(key, ".")
		if !ok || (field != "title" && field != "body") {
			return fmt.Errorf("notice key %q must be <name>.title or <name>.body", key)
		}
		fields[name] = append(fields[name], field)
	}
	for name, got := range fields {
		if len(got) != 2 {
			return fmt.Errorf("notice %q needs both a title and a body, has %v", name, got)
		}
	}
	return nil
}
