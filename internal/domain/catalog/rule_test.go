//go:build unit

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRuleSide(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    map[string]int
		wantErr error
	}{
		{
			name: "valid payload",
			raw:  `{"model_name_to_qty": {"XLR-Cable": 1, "Mic-Stand": 2}}`,
			want: map[string]int{"XLR-Cable": 1, "Mic-Stand": 2},
		},
		{
			name: "empty string is an empty side",
			raw:  "",
			want: map[string]int{},
		},
		{
			name: "whitespace only is an empty side",
			raw:  "   \n\t",
			want: map[string]int{},
		},
		{
			name: "empty mapping",
			raw:  `{"model_name_to_qty": {}}`,
			want: map[string]int{},
		},
		{
			name: "missing key is an empty side",
			raw:  `{"something_else": 1}`,
			want: map[string]int{},
		},
		{
			name:    "malformed json",
			raw:     `{"model_name_to_qty": {`,
			want:    map[string]int{},
			wantErr: ErrInvalidRuleData,
		},
		{
			name:    "zero quantity",
			raw:     `{"model_name_to_qty": {"XLR-Cable": 0}}`,
			want:    map[string]int{},
			wantErr: ErrInvalidRuleData,
		},
		{
			name:    "negative quantity",
			raw:     `{"model_name_to_qty": {"XLR-Cable": -3}}`,
			want:    map[string]int{},
			wantErr: ErrInvalidRuleData,
		},
		{
			name:    "non-numeric quantity",
			raw:     `{"model_name_to_qty": {"XLR-Cable": "two"}}`,
			want:    map[string]int{},
			wantErr: ErrInvalidRuleData,
		},
		{
			name:    "blank model name",
			raw:     `{"model_name_to_qty": {"  ": 1}}`,
			want:    map[string]int{},
			wantErr: ErrInvalidRuleData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			side, err := ParseRuleSide(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, side.IsEmpty())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, side.Scaled(1))
		})
	}
}

func TestRuleSideScaled(t *testing.T) {
	side, err := ParseRuleSide(`{"model_name_to_qty": {"XLR-Cable": 1, "Power-Cable": 2}}`)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"XLR-Cable": 3, "Power-Cable": 6}, side.Scaled(3))
	assert.Empty(t, side.Scaled(0))
	assert.Empty(t, side.Scaled(-1))

	once := side.Scaled(1)
	twice := side.Scaled(2)
	for name, qty := range once {
		assert.Equal(t, qty*2, twice[name])
	}
}

func TestItemUsable(t *testing.T) {
	assert.True(t, Item{ID: 1, ModelID: 1, Condition: ConditionOK}.Usable())
	assert.False(t, Item{ID: 2, ModelID: 1, Condition: "NEEDS_REPAIR"}.Usable())
	assert.False(t, Item{ID: 3, ModelID: 1, Condition: "ok"}.Usable())
	assert.False(t, Item{ID: 4, ModelID: 1, Condition: ""}.Usable())
}
