package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKpiJSONFieldNames(t *testing.T) {
	kpi := NewKpi("New Users", "1,250", IconUsers, ColorIndigo)

	jsonData, err := json.Marshal(kpi)
	require.NoError(t, err)

	assert.JSONEq(t, `{"title":"New Users","value":"1,250","icon":"Users","color":"indigo"}`, string(jsonData))
}

func TestKpiEmptyFieldsAreStillPresent(t *testing.T) {
	jsonData, err := json.Marshal(Kpi{})
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(jsonData, &result))

	for _, field := range []string{"title", "value", "icon", "color"} {
		value, ok := result[field]
		assert.True(t, ok, "field %s should be present", field)
		assert.IsType(t, "", value)
	}
}

func TestIconValid(t *testing.T) {
	tests := []struct {
		icon Icon
		want bool
	}{
		{IconUsers, true},
		{IconBarChart, true},
		{IconCheckCircle, true},
		{IconAlertCircle, true},
		{"users", false},
		{"", false},
		{"Layout", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.icon), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.icon.Valid())
		})
	}
}

func TestColorValid(t *testing.T) {
	tests := []struct {
		color Color
		want  bool
	}{
		{ColorIndigo, true},
		{ColorEmerald, true},
		{ColorBlue, true},
		{ColorRed, true},
		{"Red", false},
		{"amber", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.color), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.color.Valid())
		})
	}
}
