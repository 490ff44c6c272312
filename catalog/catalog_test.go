package catalog_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alestormoody/design-pattern/catalog"
)

// TestUnits_Complete verifies the index covers all eleven patterns in
// canonical order, each with a summary and a demo.
func TestUnits_Complete(t *testing.T) {
	wantOrder := []string{
		"singleton", "factory", "observer", "strategy", "decorator",
		"adapter", "command", "proxy", "facade", "composite", "builder",
	}

	units := catalog.Units()
	require.Len(t, units, len(wantOrder))
	for i, u := range units {
		assert.Equal(t, wantOrder[i], u.Name)
		assert.NotEmpty(t, u.Summary, "%s needs a summary", u.Name)
		assert.NotNil(t, u.Demo, "%s needs a demo", u.Name)
	}
}

// TestUnits_DemosWriteTranscripts verifies every registered demo produces a
// non-empty transcript.
func TestUnits_DemosWriteTranscripts(t *testing.T) {
	for _, u := range catalog.Units() {
		t.Run(u.Name, func(t *testing.T) {
			var buf bytes.Buffer
			u.Demo(&buf)
			assert.NotEmpty(t, buf.String())
		})
	}
}

// TestLookup_CaseInsensitive verifies lookup normalizes case and surrounding
// space.
func TestLookup_CaseInsensitive(t *testing.T) {
	for _, name := range []string{"proxy", "Proxy", "PROXY", "  proxy "} {
		u, err := catalog.Lookup(name)
		require.NoError(t, err, "Lookup(%q)", name)
		assert.Equal(t, "proxy", u.Name)
	}
}

// TestLookup_Unknown verifies unknown names fail with the sentinel, naming
// the offender.
func TestLookup_Unknown(t *testing.T) {
	_, err := catalog.Lookup("flyweight")

	require.ErrorIs(t, err, catalog.ErrUnknownPattern)
	assert.Contains(t, err.Error(), `"flyweight"`)
}

// TestMarshalIndex verifies the YAML shape carries names and summaries but
// never the demo functions.
func TestMarshalIndex(t *testing.T) {
	out, err := catalog.MarshalIndex()
	require.NoError(t, err)

	var decoded []struct {
		Name    string `yaml:"name"`
		Summary string `yaml:"summary"`
	}
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	require.Len(t, decoded, 11)
	assert.Equal(t, "singleton", decoded[0].Name)
	assert.NotEmpty(t, decoded[0].Summary)
	assert.NotContains(t, string(out), "demo")
}
