package morse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, PolicyError, cfg.Unknown)
	assert.Equal(t, "?", cfg.Replacement)
	assert.False(t, cfg.PreserveCase)
	assert.Equal(t, " ", cfg.LetterDelimiter)
	assert.Equal(t, " / ", cfg.WordDelimiter)
}

func TestConfigOptions(t *testing.T) {
	cfg := DefaultConfig(
		WithPolicy(PolicyReplace),
		WithReplacement("#"),
		WithPreserveCase(true),
		WithLetterDelimiter(""),
		WithWordDelimiter("|"),
	)
	assert.Equal(t, PolicyReplace, cfg.Unknown)
	assert.Equal(t, "#", cfg.Replacement)
	assert.True(t, cfg.PreserveCase)
	assert.Equal(t, "", cfg.LetterDelimiter)
	assert.Equal(t, "|", cfg.WordDelimiter)
}

func TestUnknownPolicyValid(t *testing.T) {
	for _, p := range AllPolicies {
		if !p.Valid() {
			t.Fatalf("%q should be valid", p)
		}
	}
	if UnknownPolicy("drop").Valid() {
		t.Fatal("arbitrary strings are not policies")
	}
	if UnknownPolicy("").Valid() {
		t.Fatal("empty policy is not valid")
	}
}
