package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_PlannerRequest(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name      string
		req       PlannerSummaryRequest
		wantField string
		wantMsg   string
	}{
		{"valid", PlannerSummaryRequest{Items: []PlannerItemRequest{{CropID: "ancient-fruit", Quantity: 3}}}, "", ""},
		{"empty plan is valid", PlannerSummaryRequest{Items: []PlannerItemRequest{}}, "", ""},
		{"missing items", PlannerSummaryRequest{}, "items", "This field is required"},
		{"missing crop id", PlannerSummaryRequest{Items: []PlannerItemRequest{{Quantity: 1}}}, "items[0].cropId", "This field is required"},
		{"bad crop id", PlannerSummaryRequest{Items: []PlannerItemRequest{{CropID: "Ancient Fruit", Quantity: 1}}}, "items[0].cropId", "Invalid crop id"},
		{"zero quantity", PlannerSummaryRequest{Items: []PlannerItemRequest{{CropID: "corn", Quantity: 0}}}, "items[0].quantity", "Must be at least 1"},
		{"huge quantity", PlannerSummaryRequest{Items: []PlannerItemRequest{{CropID: "corn", Quantity: 100001}}}, "items[0].quantity", "Must be at most 100000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.req)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			fields := FormatValidationError(err)
			assert.Equal(t, tt.wantMsg, fields[tt.wantField], "fields: %v", fields)
		})
	}
}

func TestFormatValidationError_NonValidationError(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(errors.New("boom")))
}
