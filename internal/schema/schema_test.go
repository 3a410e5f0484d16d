package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/pa2/internal/field"
)

func currencySchema() RecordSchema {
	return RecordSchema{
		Tag:  "T ",
		Name: "CurrencyConversion",
		Fields: []FieldSpec{
			{Name: "from_iso", Start: 2, Stop: 5, Kind: field.KindString},
			{Name: "from_code", Start: 5, Stop: 6, Kind: field.KindString},
			{Name: "to_iso", Start: 6, Stop: 9, Kind: field.KindString},
			{Name: "to_code", Start: 9, Stop: 10, Kind: field.KindString},
			{Name: "rate", Start: 10, Stop: 20, Kind: field.KindFloat, Scale: 1e-6},
		},
	}
}

func TestFieldSpecDecodeDispatch(t *testing.T) {
	line := "T CLPCUSD$0000001063"
	rs := currencySchema()

	got, err := rs.Fields[0].Decode(line)
	require.NoError(t, err)
	assert.Equal(t, field.Str("CLP"), got)

	got, err = rs.Fields[4].Decode(line)
	require.NoError(t, err)
	assert.Equal(t, field.Float(0.001063), got)
}

func TestFieldNamesDeclarationOrder(t *testing.T) {
	rs := currencySchema()
	assert.Equal(t, []string{"from_iso", "from_code", "to_iso", "to_code", "rate"}, rs.FieldNames())
}

func TestNewRegistry(t *testing.T) {
	reg, err := NewRegistry([]RecordSchema{currencySchema()})
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Len())

	rs, ok := reg.Lookup("T ")
	require.True(t, ok)
	assert.Equal(t, "CurrencyConversion", rs.Name)

	_, ok = reg.Lookup("Q ")
	assert.False(t, ok)

	assert.Equal(t, []string{"T "}, reg.Tags())
}

func TestNewRegistryRejectsDuplicateTag(t *testing.T) {
	_, err := NewRegistry([]RecordSchema{currencySchema(), currencySchema()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrDuplicateTag)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*RecordSchema)
		wantCode string
	}{
		{"one_char_tag", func(rs *RecordSchema) { rs.Tag = "T" }, ErrTagWidth},
		{"empty_name", func(rs *RecordSchema) { rs.Name = "" }, ErrRecordName},
		{"empty_field_name", func(rs *RecordSchema) { rs.Fields[0].Name = "" }, ErrFieldName},
		{"duplicate_field", func(rs *RecordSchema) { rs.Fields[1].Name = "from_iso" }, ErrDuplicateField},
		{"inverted_range", func(rs *RecordSchema) { rs.Fields[0].Stop = 1 }, ErrRangeInvalid},
		{"negative_start", func(rs *RecordSchema) { rs.Fields[0].Start = -1 }, ErrRangeInvalid},
		{"zero_scale", func(rs *RecordSchema) { rs.Fields[4].Scale = 0 }, ErrScaleInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := currencySchema()
			tt.mutate(&rs)
			errs := Validate(&rs)
			require.NotEmpty(t, errs)
			assert.Equal(t, tt.wantCode, errs[0].Code)
		})
	}
}

func TestValidateGroupAndChunkWidths(t *testing.T) {
	rs := RecordSchema{
		Tag:  "5 ",
		Name: "CommodityGroup",
		Fields: []FieldSpec{
			{Name: "commodities", Start: 12, Stop: 72, Step: 7, Kind: field.KindStringGroup},
			{Name: "tiers", Start: 10, Stop: 65, Kind: field.KindSpans},
			{Name: "risk", Start: 54, Stop: 100, Kind: field.KindRisk},
			{Name: "business_date", Start: 23, Stop: 30, Kind: field.KindDate},
			{Name: "business_time", Start: 19, Stop: 22, Kind: field.KindTime},
		},
	}
	errs := Validate(&rs)
	codes := make([]string, len(errs))
	for i, e := range errs {
		codes[i] = e.Code
	}
	assert.ElementsMatch(t, []string{
		ErrStepInvalid, ErrChunkInvalid, ErrChunkInvalid, ErrWidthInvalid, ErrWidthInvalid,
	}, codes)
}

func TestValidateCollectsAll(t *testing.T) {
	rs := currencySchema()
	rs.Tag = "T"
	rs.Fields[0].Stop = 0
	errs := Validate(&rs)
	assert.GreaterOrEqual(t, len(errs), 2)
}
