package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello World":               "hello-world",
		"  Spaces  Everywhere  ":    "spaces-everywhere",
		"Already-slugged":           "already-slugged",
		"Learn English in 30 Days!": "learn-english-in-30-days",
		"Why? Because... Grammar!!": "why-because-grammar",
		"éàü unicode stripped":      "unicode-stripped",
		"---":                       "",
	}
	for in, want := range cases {
		assert.Equal(t, want, slugify(in), in)
	}
}

func TestFeaturesJSON(t *testing.T) {
	out, err := featuresJSON(json.RawMessage(`["a","b"]`))
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, out)

	out, err = featuresJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, `[]`, out)

	_, err = featuresJSON(json.RawMessage(`{"not":"an array"}`))
	assert.Error(t, err)
}
