package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContent_MarshalIncludesTypeDiscriminator(t *testing.T) {
	content := NewChecklistContent(ChecklistContent{
		Title: "C",
		Steps: []ChecklistStep{{Step: 1, Title: "S", Description: "d"}},
	})

	data, err := json.Marshal(content)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "checklist", m["type"])
	assert.NotNil(t, m["steps"])
}

func TestContent_RoundTrip(t *testing.T) {
	original := NewCalculatorContent(CalculatorContent{
		Title:   "ROI",
		Inputs:  []CalculatorInput{{Name: "a", Label: "A", Type: "number"}},
		Formula: "a * 2",
		Output:  CalculatorOutput{Label: "Result", Unit: "$"},
	})

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Content
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, KindCalculator, decoded.Kind)
	require.NotNil(t, decoded.Calculator)
	assert.Equal(t, "a * 2", decoded.Calculator.Formula)
	assert.Equal(t, "$", decoded.Calculator.Output.Unit)
}

func TestContent_UnmarshalUnknownTypeFails(t *testing.T) {
	var c Content
	err := json.Unmarshal([]byte(`{"type": "webinar"}`), &c)
	assert.Error(t, err)
}

func TestContent_MarshalWithoutVariantFails(t *testing.T) {
	c := Content{Kind: KindChecklist}
	_, err := json.Marshal(&c)
	assert.Error(t, err)
}

func TestLeadMagnet_Validate(t *testing.T) {
	_, err := NewLeadMagnet("", KindChecklist, "", 5)
	assert.Error(t, err)

	_, err = NewLeadMagnet("T", "webinar", "", 5)
	assert.Error(t, err)

	_, err = NewLeadMagnet("T", KindChecklist, "", 11)
	assert.Error(t, err)

	m, err := NewLeadMagnet("T", KindReport, "promise", 8)
	require.NoError(t, err)
	assert.Nil(t, m.Content)
}

func TestLead_Validate(t *testing.T) {
	_, err := NewLead("Ana", "not-an-email", 1)
	assert.Error(t, err)

	_, err = NewLead("Ana", "ana@example.com", 0)
	assert.Error(t, err)

	lead, err := NewLead("Ana", "ana@example.com", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), lead.LeadMagnetID)
}
