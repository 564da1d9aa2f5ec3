package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("cv.json", "extract-system")
	require.NoError(t, err)
	assert.Contains(t, prompt, "CV extractor")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get("cv.json", "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
}

func TestFormat(t *testing.T) {
	template := "Hello {{.Name}}, welcome to {{.Company}}!"
	data := map[string]string{
		"Name":    "Alice",
		"Company": "Acme Corp",
	}

	result := Format(template, data)
	assert.Equal(t, "Hello Alice, welcome to Acme Corp!", result)
}

func TestFormat_ValuesAreNotExpanded(t *testing.T) {
	template := "Text: {{.FreeText}} Job: {{.JobText}}"
	data := map[string]string{
		"FreeText": "I wrote {{.JobText}} once",
		"JobText":  "Go developer",
	}

	result := Format(template, data)
	assert.Equal(t, "Text: I wrote {{.JobText}} once Job: Go developer", result)
}

func TestFormat_EmptyData(t *testing.T) {
	template := "Hello {{.Name}}"

	result := Format(template, map[string]string{})
	assert.Equal(t, template, result) // Placeholder remains
}

func TestRender(t *testing.T) {
	ClearCache()

	prompt, err := Render("cv.json", "seed-user", map[string]string{
		"Name":  "Ada",
		"Title": "Engineer",
		"Bio":   "Builds engines",
	})
	require.NoError(t, err)
	assert.Equal(t, "Name: Ada\nTitle: Engineer\nBio: Builds engines\n", prompt)
}

func TestCVPromptKeys(t *testing.T) {
	ClearCache()

	for _, key := range []string{
		"extract-system", "extract-user",
		"improve-system", "improve-user",
		"seed-system", "seed-user",
	} {
		prompt, err := Get("cv.json", key)
		require.NoError(t, err, key)
		assert.NotEmpty(t, prompt, key)
	}
}

func TestCaching(t *testing.T) {
	ClearCache()

	prompt1, err := Get("cv.json", "improve-user")
	require.NoError(t, err)

	prompt2, err := Get("cv.json", "improve-user")
	require.NoError(t, err)

	assert.Equal(t, prompt1, prompt2)
}
