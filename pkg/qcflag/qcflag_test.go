package qcflag_test

import (
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/pandata/pkg/errcode"
	"github.com/gnames/pandata/pkg/frame"
	"github.com/gnames/pandata/pkg/model"
	"github.com/gnames/pandata/pkg/qcflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode(t *testing.T) {
	tests := []struct {
		cell string
		code int
		ok   bool
	}{
		{"?3.5", qcflag.CodeQuestionable, true},
		{"/12", qcflag.CodeNotValid, true},
		{"*2019-01-01", qcflag.CodeUnknown, true},
		{"3.5", 0, false},
		{"#7", 0, false},
		{"<0.1", 0, false},
		{"?", 0, false},
		{"", 0, false},
	}
	for _, v := range tests {
		code, ok := qcflag.Code(v.cell)
		assert.Equal(t, v.code, code, v.cell)
		assert.Equal(t, v.ok, ok, v.cell)
	}
}

func TestStrip(t *testing.T) {
	tests := []struct{ in, out string }{
		{"?3.5", "3.5"},
		{"/1", "1"},
		{"*x", "x"},
		{"#2", "2"},
		{"<0.1", "0.1"},
		{">9", "9"},
		{"??1", "?1"},
		{"1?", "1?"},
		{"", ""},
	}
	for _, v := range tests {
		assert.Equal(t, v.out, qcflag.Strip(v.in), v.in)
	}
}

func data(t *testing.T) (*frame.Frame, *model.Params) {
	f, err := frame.FromRecords(
		[]string{"Event", "Depth water", "TEMP", "Date/Time"},
		[][]string{
			{"A", "1", "?3.5", "2019-01-01"},
			{"A", "2", "4.0", "2019-01-02"},
			{"A", "/3", "*4.5", "2019-01-03"},
		},
	)
	require.Nil(t, err)

	ps := model.NewParams()
	ps.Set("Event", &model.Parameter{ShortName: "Event", Type: model.TypeString})
	ps.Set("Depth water", &model.Parameter{
		ID: model.Ptr(1619), Name: "DEPTH, water", ShortName: "Depth water",
		Type: model.TypeNumeric, Source: model.SourceGeocode,
	})
	ps.Set("TEMP", &model.Parameter{
		ID: model.Ptr(717), Name: "Temperature", ShortName: "TEMP",
		Type: model.TypeNumeric, Source: model.SourceData,
	})
	ps.Set("Date/Time", &model.Parameter{
		ShortName: "Date/Time", Type: model.TypeDateTime, Source: model.SourceGeocode,
	})
	return f, ps
}

func TestDerive(t *testing.T) {
	f, ps := data(t)
	qc := qcflag.Derive(f, ps)

	assert.False(t, qc.Empty())
	assert.Equal(t, []int{0, 2}, qc.Rows)
	assert.Equal(t, []string{"Depth water", "TEMP", "Date/Time"}, qc.Frame.Names())

	temp, ok := qc.Frame.Column("TEMP")
	require.True(t, ok)
	assert.Equal(t, []float64{1, 3}, temp.Num)

	code, ok := qc.Lookup(0, "TEMP")
	assert.True(t, ok)
	assert.Equal(t, 1.0, code)
	code, ok = qc.Lookup(1, "TEMP")
	assert.True(t, ok)
	assert.Equal(t, 0.0, code)
	code, _ = qc.Lookup(2, "Depth water")
	assert.Equal(t, 2.0, code)
	_, ok = qc.Lookup(0, "Event")
	assert.False(t, ok)
}

func TestDeriveNoFlags(t *testing.T) {
	f, err := frame.FromRecords([]string{"TEMP"}, [][]string{{"1"}, {"2"}})
	require.Nil(t, err)
	ps := model.NewParams()
	ps.Set("TEMP", &model.Parameter{Type: model.TypeNumeric})

	qc := qcflag.Derive(f, ps)
	assert.True(t, qc.Empty())
	assert.Equal(t, []string{"TEMP"}, qc.Frame.Names())
	code, ok := qc.Lookup(1, "TEMP")
	assert.True(t, ok)
	assert.Equal(t, 0.0, code)
}

func TestMerge(t *testing.T) {
	f, ps := data(t)
	qc := qcflag.Derive(f, ps)

	added, err := qcflag.Merge(f, ps, qc, "_QC", []string{"Date/Time"})
	require.Nil(t, err)
	assert.Equal(t, []string{"Depth water_QC", "TEMP_QC"}, added)
	assert.Equal(t,
		[]string{"Event", "Depth water", "TEMP", "Date/Time", "Depth water_QC", "TEMP_QC"},
		f.Names(),
	)

	col, _ := f.Column("TEMP_QC")
	assert.Equal(t, []float64{1, 0, 3}, col.Num)

	par, ok := ps.Get("TEMP_QC")
	require.True(t, ok)
	assert.Equal(t, model.TypeQC, par.Type)
	assert.Equal(t, model.SourceGenerated, par.Source)
	assert.Equal(t, 717+qcflag.IDOffset, *par.ID)
	assert.Equal(t, "TEMP_QC", par.ShortName)
	assert.Equal(t, "Temperature_QC", par.Name)

	gpar, _ := ps.Get("Depth water_QC")
	assert.Equal(t, model.TypeGQC, gpar.Type)

	_, err = qcflag.Merge(f, ps, qc, "_QC", nil)
	require.NotNil(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.QCColumnExistsError, gnErr.Code)
	assert.Equal(t, 6, f.Width())
}
