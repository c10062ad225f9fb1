package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidates_JSONFenceComesFirst(t *testing.T) {
	raw := "intro ```json\n{\"a\": 1}\n``` outro {\"b\": 2}"

	out := candidates(raw, shapeObject)

	assert.NotEmpty(t, out)
	assert.Equal(t, `{"a": 1}`, out[0])
}

func TestCandidates_PlainFence(t *testing.T) {
	raw := "```\n[1, 2]\n```"

	out := candidates(raw, shapeArray)

	assert.Equal(t, "[1, 2]", out[0])
}

func TestCandidates_DelimitedScanUsesShape(t *testing.T) {
	raw := `prose [ {"x": 1} ] more prose`

	objOut := candidates(raw, shapeObject)
	arrOut := candidates(raw, shapeArray)

	assert.Equal(t, `{"x": 1}`, objOut[0])
	assert.Equal(t, `[ {"x": 1} ]`, arrOut[0])
}

func TestCandidates_RawIsLastResort(t *testing.T) {
	out := candidates("  plain text  ", shapeObject)

	assert.Equal(t, []string{"plain text"}, out)
}

func TestCandidates_EmptyInput(t *testing.T) {
	assert.Empty(t, candidates("   ", shapeObject))
}
