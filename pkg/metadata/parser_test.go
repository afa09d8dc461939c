package metadata_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/pandata/pkg/errcode"
	"github.com/gnames/pandata/pkg/metadata"
	"github.com/gnames/pandata/pkg/model"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFile(t *testing.T, name string) *metadata.Metadata {
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.Nil(t, err)
	md, err := metadata.Parse(data)
	require.Nil(t, err)
	return md
}

func TestParseScalars(t *testing.T) {
	assert := assert.New(t)
	md := parseFile(t, "full.xml")

	assert.True(md.IsValid())
	assert.False(md.IsRestricted())
	assert.False(md.IsCollection)
	assert.Equal("published", md.Status)
	assert.Equal("registered", md.DOIRegistryStatus)
	assert.Equal("2020-01-02T03:04:05", md.LastModified)
	assert.Equal("2021-01-01", md.MoratoriumUntil)
	assert.Equal("Temperature profiles at Stat1", md.Title)
	assert.Equal("Water temperature.", md.Abstract)
	assert.Equal("2019", md.Year)
	assert.Equal("2019-05-01T10:00:00", md.Date)
	assert.Equal("https://doi.org/10.1594/PANGAEA.123456", md.URI)
	assert.Equal("Basic curation", md.CurationLevel)
	assert.Equal("Processed data", md.ProcessingLevel)
	assert.Equal("Some comment.", md.Comment)
	assert.Equal("vertical profile", md.TopoType)
	assert.Equal([]string{"ocean", "temperature"}, md.Keywords)

	geo := md.Extent.Geographic
	assert.Equal(20.0, *geo.West)
	assert.Equal(21.5, *geo.East)
	assert.Equal(10.0, *geo.South)
	assert.Equal(11.0, *geo.North)
	assert.Equal(10.5, *geo.MeanLat)
	assert.Equal(20.75, *geo.MeanLon)
	assert.Equal("2018-01-01T00:00:00", md.Extent.MinDateTime)
	assert.Equal("2018-12-31T00:00:00", md.Extent.MaxDateTime)
}

func TestParseCitationParts(t *testing.T) {
	md := parseFile(t, "full.xml")

	authors := []model.Author{
		{
			LastName:     "Doe",
			FirstName:    "Jane",
			ORCID:        "0000-0001-2345-6789",
			ID:           model.Ptr(42),
			Affiliations: []int{7, 11},
		},
		{LastName: "Roe", ID: model.Ptr(43)},
	}
	if diff := cmp.Diff(authors, md.Authors); diff != "" {
		t.Errorf("authors mismatch (-want +got):\n%s", diff)
	}

	projects := []model.Project{{
		Label:    "FRAM",
		Name:     "Frontiers in Arctic marine Monitoring",
		URL:      "https://www.awi.de/fram",
		AwardURI: "https://cordis.europa.eu/project/id/1",
		ID:       model.Ptr(4094),
	}}
	if diff := cmp.Diff(projects, md.Projects); diff != "" {
		t.Errorf("projects mismatch (-want +got):\n%s", diff)
	}

	require.NotNil(t, md.Licence)
	assert.Equal(t, "CC-BY-4.0", md.Licence.Label)
	assert.Equal(t, "https://creativecommons.org/licenses/by/4.0/", md.Licence.URI)

	refs := []model.Reference{{
		ID:           "ref100",
		Title:        "Older data",
		URI:          "https://doi.org/10.1594/PANGAEA.1",
		RelationType: "References",
	}}
	if diff := cmp.Diff(refs, md.References); diff != "" {
		t.Errorf("references mismatch (-want +got):\n%s", diff)
	}

	require.NotNil(t, md.SupplementTo)
	assert.Equal(t, model.SupplementTo{
		ID:    "ref99",
		Title: "A study of temperature",
		URI:   "https://doi.org/10.1000/xyz",
		Year:  "2020",
	}, *md.SupplementTo)
}

func TestParseParameters(t *testing.T) {
	assert := assert.New(t)
	md := parseFile(t, "full.xml")

	assert.Equal(
		[]string{"Date/Time", "Depth water", "TEMP", "TEMP_2", "Depth water_2"},
		md.ShortNames(),
	)

	temp2, ok := md.Params.Get("TEMP_2")
	require.True(t, ok)
	assert.Equal("TEMP", temp2.ShortName)
	assert.Equal(4, temp2.ColNo)
	assert.Nil(temp2.Method)

	temp, ok := md.Params.Get("TEMP")
	require.True(t, ok)
	want := &model.Parameter{
		ID:         model.Ptr(717),
		Name:       "Temperature, water",
		ShortName:  "TEMP",
		Type:       model.TypeNumeric,
		Source:     model.SourceData,
		Unit:       "°C",
		Format:     "#0.00",
		Comment:    "primary sensor",
		DataSeries: model.Ptr(123456),
		ColNo:      3,
		Terms: []model.Term{{
			ID: 43972, Name: "temperature", SemanticURI: "urn:x:temp", OntologyID: 1,
		}},
		PI: &model.PI{
			ID: model.Ptr(42), FullName: "Doe, Jane", LastName: "Doe", FirstName: "Jane",
		},
		Method: &model.Method{
			ID:    model.Ptr(53),
			Name:  "CTD, Sea-Bird",
			Terms: []model.Term{{ID: 1, Name: "CTD", OntologyID: 21}},
		},
	}
	if diff := cmp.Diff(want, temp); diff != "" {
		t.Errorf("TEMP mismatch (-want +got):\n%s", diff)
	}

	dt, _ := md.Params.Get("Date/Time")
	assert.Equal(1599, *dt.ID)
	assert.Equal(model.TypeDateTime, dt.Type)
	assert.Equal(model.SourceGeocode, dt.Source)

	assert.False(md.EventInMatrix)
	assert.False(md.AllowArrayExport)
	assert.Equal([]string{"Depth water"}, md.DuplicateGeocodes)
}

func TestParseEvents(t *testing.T) {
	md := parseFile(t, "full.xml")
	require.Len(t, md.Events, 1)

	want := model.Event{
		Label:      "Stat1",
		ID:         model.Ptr(2660377),
		Latitude:   model.Ptr(10.0),
		Longitude:  model.Ptr(20.0),
		Latitude2:  model.Ptr(11.0),
		Longitude2: model.Ptr(21.5),
		DateTime:   "2018-01-01T00:00:00",
		DateTime2:  "2018-12-31T00:00:00",
		Location:   "Fram Strait",
		Basis: &model.Basis{
			Name:      "Polarstern",
			URI:       "https://www.awi.de/polarstern",
			CallSign:  "DBLK",
			IMONumber: "8013132",
		},
		Campaign: &model.Campaign{
			Name:              "PS121",
			URI:               "https://example.org/PS121",
			Start:             "2019-08-10",
			End:               "2019-09-11",
			StartLocation:     "Bremerhaven",
			EndLocation:       "Tromsø",
			BSHID:             "20190005",
			ExpeditionProgram: "https://example.org/PS121.pdf",
		},
		Method: &model.Method{
			ID:    model.Ptr(37),
			Name:  "CTD/Rosette",
			Terms: []model.Term{{ID: 5, Name: "rosette", OntologyID: 21}},
		},
	}
	if diff := cmp.Diff(want, md.Events[0]); diff != "" {
		t.Errorf("event mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, md.Events[0].Elevation)
	assert.Equal(t, "CTD/Rosette", md.Events[0].Device())
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		msg        string
		info       string
		valid      bool
		restricted bool
		collection bool
	}{
		{
			msg:  "deleted",
			info: `<md:entry key="status" value="deleted"/>`,
		},
		{
			msg:  "no status",
			info: `<md:entry key="loginOption" value="unrestricted"/>`,
		},
		{
			msg:   "published without login option",
			info:  `<md:entry key="status" value="published"/>`,
			valid: true,
		},
		{
			msg: "restricted",
			info: `<md:entry key="status" value="published"/>
			<md:entry key="loginOption" value="restricted"/>`,
			valid:      true,
			restricted: true,
		},
		{
			msg: "collection",
			info: `<md:entry key="status" value="published"/>
			<md:entry key="collectionType" value="parent"/>`,
			valid:      true,
			collection: true,
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			doc := `<md:MetaData xmlns:md="http://www.pangaea.de/MetaData">
			<md:citation><md:title>T</md:title></md:citation>
			<md:technicalInfo>` + v.info + `</md:technicalInfo>
			</md:MetaData>`
			md, err := metadata.Parse([]byte(doc))
			require.Nil(t, err)
			assert.Equal(t, v.valid, md.IsValid())
			assert.Equal(t, v.restricted, md.IsRestricted())
			assert.Equal(t, v.collection, md.IsCollection)
			if !v.valid {
				assert.Empty(t, md.Title)
				assert.Equal(t, 0, md.Params.Len())
			}
		})
	}
}

func TestParseEventColumn(t *testing.T) {
	doc := `<md:MetaData xmlns:md="http://www.pangaea.de/MetaData">
	<md:citation><md:title>T</md:title></md:citation>
	<md:matrixColumn source="geocode" type="string" col="1">
	  <md:parameter id="col1.ds1.param0">
	    <md:name>Event label</md:name><md:shortName>Event</md:shortName>
	  </md:parameter>
	</md:matrixColumn>
	<md:matrixColumn source="data" type="numeric" col="2">
	  <md:parameter id="col2.ds1.param55"><md:name>Salinity</md:name></md:parameter>
	</md:matrixColumn>
	<md:event><md:label>A</md:label><md:latitude>n/a</md:latitude></md:event>
	<md:technicalInfo><md:entry key="status" value="published"/></md:technicalInfo>
	</md:MetaData>`

	md, err := metadata.Parse([]byte(doc))
	require.Nil(t, err)
	assert.True(t, md.EventInMatrix)
	assert.Equal(t, []string{"Event", "Salinity"}, md.ShortNames())
	sal, _ := md.Params.Get("Salinity")
	assert.Empty(t, sal.ShortName)
	require.Len(t, md.Events, 1)
	assert.Nil(t, md.Events[0].Latitude)
	assert.Nil(t, md.Events[0].ID)
}

func TestParseTakenKey(t *testing.T) {
	doc := `<md:MetaData xmlns:md="http://www.pangaea.de/MetaData">
	<md:citation><md:title>T</md:title></md:citation>
	<md:matrixColumn source="data" type="numeric" col="1">
	  <md:parameter><md:name>Temperature</md:name><md:shortName>TEMP</md:shortName></md:parameter>
	</md:matrixColumn>
	<md:matrixColumn source="data" type="numeric" col="2">
	  <md:parameter><md:name>Temperature</md:name><md:shortName>TEMP</md:shortName></md:parameter>
	</md:matrixColumn>
	<md:matrixColumn source="data" type="numeric" col="3">
	  <md:parameter><md:name>Temperature 2</md:name><md:shortName>TEMP_2</md:shortName></md:parameter>
	</md:matrixColumn>
	<md:matrixColumn source="data" type="numeric" col="4">
	  <md:parameter><md:name>Temperature</md:name><md:shortName>TEMP</md:shortName></md:parameter>
	</md:matrixColumn>
	<md:technicalInfo><md:entry key="status" value="published"/></md:technicalInfo>
	</md:MetaData>`

	md, err := metadata.Parse([]byte(doc))
	require.Nil(t, err)
	assert := assert.New(t)
	assert.Equal([]string{"TEMP", "TEMP_2", "TEMP_2_2", "TEMP_3"}, md.Params.Keys())

	tests := []struct {
		key, short string
		colNo      int
	}{
		{"TEMP", "TEMP", 1},
		{"TEMP_2", "TEMP", 2},
		{"TEMP_2_2", "TEMP_2", 3},
		{"TEMP_3", "TEMP", 4},
	}
	for _, v := range tests {
		par, ok := md.Params.Get(v.key)
		require.True(t, ok, v.key)
		assert.Equal(v.short, par.ShortName, v.key)
		assert.Equal(v.colNo, par.ColNo, v.key)
	}
}

func TestParseErrors(t *testing.T) {
	t.Run("malformed", func(t *testing.T) {
		_, err := metadata.Parse([]byte("<md:MetaData><unclosed>"))
		require.NotNil(t, err)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok)
		assert.Equal(t, errcode.MetadataParseError, gnErr.Code)
	})

	t.Run("missing title", func(t *testing.T) {
		doc := `<md:MetaData xmlns:md="http://www.pangaea.de/MetaData">
		<md:technicalInfo><md:entry key="status" value="published"/></md:technicalInfo>
		</md:MetaData>`
		md, err := metadata.Parse([]byte(doc))
		require.NotNil(t, err)
		assert.NotNil(t, md)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok)
		assert.Equal(t, errcode.MetadataMissingFieldError, gnErr.Code)
		assert.Equal(t, []any{"citation/title"}, gnErr.Vars)
	})
}
