package model_test

import (
	"testing"

	"github.com/gnames/pandata/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDParts(t *testing.T) {
	tests := []struct {
		msg string
		id  string
		res map[string]int
	}{
		{
			msg: "matrix column",
			id:  "col13.ds10866878.param7387",
			res: map[string]int{"col": 13, "ds": 10866878, "param": 7387},
		},
		{
			msg: "geocode",
			id:  "col1.ds123.geocode1599",
			res: map[string]int{"col": 1, "ds": 123, "geocode": 1599},
		},
		{
			msg: "author",
			id:  "dataset.author12",
			res: map[string]int{"author": 12},
		},
		{
			msg: "repeated tag",
			id:  "a1.a2",
			res: map[string]int{"a": 2},
		},
		{msg: "empty", id: "", res: map[string]int{}},
		{msg: "no digits", id: "dataset.author", res: map[string]int{}},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, model.IDParts(v.id), v.msg)
	}
}

func TestIDPart(t *testing.T) {
	assert.Equal(t, 42, *model.IDPart("event42", "event"))
	assert.Nil(t, model.IDPart("event42", "method"))
}

func TestParamsOrder(t *testing.T) {
	ps := model.NewParams()
	ps.Set("Date/Time", &model.Parameter{ShortName: "Date/Time"})
	ps.Set("TEMP", &model.Parameter{ShortName: "TEMP"})
	ps.Set("TEMP_2", &model.Parameter{ShortName: "TEMP"})

	assert.Equal(t, []string{"Date/Time", "TEMP", "TEMP_2"}, ps.Keys())
	assert.Equal(t, 3, ps.Len())

	ps.Set("TEMP", &model.Parameter{ShortName: "TEMP", Unit: "°C"})
	assert.Equal(t, []string{"Date/Time", "TEMP", "TEMP_2"}, ps.Keys())
	p, ok := ps.Get("TEMP")
	require.True(t, ok)
	assert.Equal(t, "°C", p.Unit)

	assert.True(t, ps.Delete("TEMP"))
	assert.False(t, ps.Delete("TEMP"))
	assert.Equal(t, []string{"Date/Time", "TEMP_2"}, ps.Keys())

	assert.True(t, ps.Rename("TEMP_2", "Temp"))
	assert.False(t, ps.Rename("none", "x"))
	assert.False(t, ps.Rename("Temp", "Date/Time"))
	assert.Equal(t, []string{"Date/Time", "Temp"}, ps.Keys())

	var keys []string
	ps.Each(func(k string, _ *model.Parameter) bool {
		keys = append(keys, k)
		return false
	})
	assert.Equal(t, []string{"Date/Time"}, keys)
}

func TestParamType(t *testing.T) {
	tests := []struct {
		tag string
		res model.ParamType
	}{
		{"numeric", model.TypeNumeric},
		{"String", model.TypeString},
		{"datetime", model.TypeDateTime},
		{"geocode", model.TypeGeocode},
		{"qc", model.TypeQC},
		{"gqc", model.TypeGQC},
		{"blob", model.TypeUnknown},
	}
	for _, v := range tests {
		res := model.NewParamType(v.tag)
		assert.Equal(t, v.res, res, v.tag)
	}
	assert.True(t, model.TypeNumeric.IsQualified())
	assert.True(t, model.TypeDateTime.IsQualified())
	assert.False(t, model.TypeString.IsQualified())
	assert.Equal(t, "gqc", model.TypeGQC.String())
}

func TestSource(t *testing.T) {
	assert.Equal(t, model.SourceData, model.NewSource("data"))
	assert.Equal(t, model.SourceGeocode, model.NewSource("geocode"))
	assert.Equal(t, model.SourceEvent, model.NewSource("event"))
	assert.Equal(t, model.SourceUnknown, model.NewSource(""))
}

func TestSynonyms(t *testing.T) {
	p := model.Parameter{ShortName: "TEMP"}
	assert.Nil(t, p.Synonym.Get(model.NsCF))

	p.AddSynonym(model.NsCF, model.SynonymEntry{
		Name: "sea_water_temperature",
		Unit: "degree_Celsius",
	})
	cf := p.Synonym.Get(model.NsCF)
	require.NotNil(t, cf)
	assert.Equal(t, "sea_water_temperature", cf.Name)
	assert.Nil(t, p.Synonym.Get(model.NsSD))
	assert.Equal(t, "SD", model.NsSD.String())
}

func TestAuthorFullName(t *testing.T) {
	assert.Equal(t, "Doe, Jane",
		model.Author{LastName: "Doe", FirstName: "Jane"}.FullName())
	assert.Equal(t, "Doe", model.Author{LastName: "Doe"}.FullName())
}
