package schema_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/nfa/internal/testutils"
	"github.com/aretw0/nfa/pkg/schema"
)

func TestDecode_YAML(t *testing.T) {
	def, err := schema.Decode([]byte(testutils.TwoStateYAML), schema.FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "two-state", def.Name)
	assert.Equal(t, []string{"0", "1"}, def.Sigma)
	assert.Equal(t, []string{"a", "b"}, def.States)
	assert.Equal(t, "a", def.Start)
	assert.Equal(t, []string{"b"}, def.Final)
	require.Len(t, def.Transitions, 3)
	assert.Equal(t, schema.Transition{From: "b", Epsilon: true, To: []string{"a"}}, def.Transitions[2])
}

func TestDecode_JSON(t *testing.T) {
	doc := `{
		"name": "fork",
		"sigma": ["a", "b"],
		"states": ["x", "y", "z"],
		"start": "x",
		"final": ["z"],
		"transitions": [
			{"from": "x", "on": "a", "to": ["y", "z"]},
			{"from": "y", "on": "b", "to": ["z"]}
		]
	}`
	def, err := schema.Decode([]byte(doc), schema.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []string{"y", "z"}, def.Transitions[0].To)
}

func TestDecode_WeakTyping(t *testing.T) {
	doc := `
sigma: [0, 1]
states: [a, b]
start: a
final: b
transitions:
  - {from: a, on: 1, to: b}
`
	def, err := schema.Decode([]byte(doc), schema.FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, []string{"0", "1"}, def.Sigma)
	assert.Equal(t, []string{"b"}, def.Final)
	assert.Equal(t, "1", def.Transitions[0].On)
	assert.Equal(t, []string{"b"}, def.Transitions[0].To)
}

func TestDecode_Errors(t *testing.T) {
	t.Run("Unknown key", func(t *testing.T) {
		_, err := schema.Decode([]byte("states: [a]\nbogus: 1\n"), schema.FormatYAML)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bogus")
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		_, err := schema.Decode([]byte("{"), schema.FormatJSON)
		assert.ErrorContains(t, err, "failed to parse json definition")
	})

	t.Run("Empty document", func(t *testing.T) {
		_, err := schema.Decode([]byte(""), schema.FormatYAML)
		assert.Error(t, err)
	})
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, schema.FormatJSON, schema.FormatOf("a/b/nfa.JSON"))
	assert.Equal(t, schema.FormatYAML, schema.FormatOf("nfa.yml"))
	assert.Equal(t, schema.FormatYAML, schema.FormatOf("nfa"))
}

func TestValidate(t *testing.T) {
	def := &schema.Definition{
		Sigma:  []string{"0", "ab"},
		States: []string{"a", "a", ""},
		Start:  "ghost",
		Final:  []string{"a", "nope"},
		Transitions: []schema.Transition{
			{From: "a", On: "0", To: []string{"a"}},
			{From: "a", On: "1", To: []string{"a"}},
			{From: "a", On: "0", Epsilon: true, To: []string{"a"}},
			{From: "zz", To: nil},
		},
	}

	err := def.Validate()
	require.Error(t, err)

	fields := map[string]string{}
	for _, e := range schema.ValidationErrors(err) {
		var verr *schema.ValidationError
		require.ErrorAs(t, e, &verr)
		fields[verr.Field] = verr.Reason
	}

	assert.Equal(t, "symbol must be exactly one character", fields["sigma[1]"])
	assert.Equal(t, "duplicate state", fields["states[1]"])
	assert.Equal(t, "state name is required", fields["states[2]"])
	assert.Equal(t, "unknown state", fields["start"])
	assert.Equal(t, "unknown state", fields["final[1]"])
	assert.Equal(t, "symbol is not declared in sigma", fields["transitions[1].on"])
	assert.Equal(t, "use either on or epsilon, not both", fields["transitions[2]"])
	assert.Equal(t, "unknown state", fields["transitions[3].from"])
	assert.Equal(t, "on or epsilon is required", fields["transitions[3]"])
	assert.Equal(t, "at least one target is required", fields["transitions[3].to"])
	assert.NotContains(t, fields, "transitions[0].on")
	assert.Len(t, fields, 10)

	assert.Contains(t, err.Error(), "10 validation errors")
}

func TestValidate_SingleErrorMessage(t *testing.T) {
	def := &schema.Definition{States: []string{"a"}, Start: "b"}
	err := def.Validate()
	assert.EqualError(t, err, `start: unknown state (got "b")`)
}

func TestCompile(t *testing.T) {
	def, err := schema.Decode([]byte(testutils.TwoStateYAML), schema.FormatYAML)
	require.NoError(t, err)

	n, err := schema.Compile(def)
	require.NoError(t, err)

	assert.Equal(t, "two-state", n.Name())
	assert.True(t, n.Accepts("1"))
	assert.False(t, n.Accepts("0"))
	assert.True(t, n.Accepts("101"))
	assert.Equal(t, 2, n.MaxCopies("1"))
	assert.False(t, n.IsDFA())
}

func TestCompile_RejectsInvalid(t *testing.T) {
	n, err := schema.Compile(&schema.Definition{States: []string{"a"}, Final: []string{"b"}})
	assert.Nil(t, n)
	assert.NotEmpty(t, schema.ValidationErrors(err))
}

func TestOpen(t *testing.T) {
	doc := `sigma: [a]
states: [x]
start: x
final: [x]
transitions:
  - {from: x, on: a, to: [x]}
`
	path := testutils.WriteFile(t, "loop.yaml", doc)

	n, err := schema.Open(path)
	require.NoError(t, err)
	assert.Equal(t, "loop", n.Name(), "name falls back to the file name")
	assert.True(t, n.Accepts("aaa"))
	assert.True(t, n.IsDFA())
}

func TestOpen_Errors(t *testing.T) {
	_, err := schema.Open(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read definition")

	path := testutils.WriteFile(t, "bad.json", `{"states": ["a"], "start": "b"}`)
	_, err = schema.Open(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.Len(t, schema.ValidationErrors(err), 1)
}

func TestExport(t *testing.T) {
	n := testutils.TwoState.Build(t)
	def := schema.Export(n)

	assert.Equal(t, "two-state", def.Name)
	assert.Equal(t, []string{"0", "1"}, def.Sigma)
	assert.Equal(t, []string{"a", "b"}, def.States)
	assert.Equal(t, "a", def.Start)
	assert.Equal(t, []string{"b"}, def.Final)
	assert.Equal(t, []schema.Transition{
		{From: "a", On: "0", To: []string{"a"}},
		{From: "a", On: "1", To: []string{"b"}},
		{From: "b", Epsilon: true, To: []string{"a"}},
	}, def.Transitions)
	assert.Equal(t, "ε", def.Transitions[2].Symbol())
	assert.NoError(t, def.Validate())
}

func TestExport_CompilesToSameBehaviour(t *testing.T) {
	for _, fx := range testutils.All {
		t.Run(fx.Name, func(t *testing.T) {
			original := fx.Build(t)
			copied, err := schema.Compile(schema.Export(original))
			require.NoError(t, err)

			for _, in := range []string{"", "0", "1", "01", "101", "###", "ab", "xy", "1111"} {
				assert.Equal(t, original.Simulate(in), copied.Simulate(in), "%q", in)
			}
			assert.Equal(t, original.IsDFA(), copied.IsDFA())
		})
	}
}
