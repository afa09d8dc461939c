package metadata

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gnames/pandata/pkg/model"
)

var affiliationRe = regexp.MustCompile(`\.inst([0-9]+)$`)

// Parse converts a metadata document to Metadata. It returns ParseError
// for malformed XML and MissingFieldError when a valid dataset has no
// title. Deleted datasets and datasets of unknown status are not an
// error, check IsValid.
func Parse(data []byte) (*Metadata, error) {
	var doc xmlMetaData
	dec := xml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return nil, ParseError(err)
	}

	res := &Metadata{
		LoginOption:      LoginUnrestricted,
		AllowArrayExport: true,
		Params:           model.NewParams(),
	}
	setTechnicalInfo(res, doc.TechnicalInfo)
	if !res.IsValid() {
		return res, nil
	}

	if doc.Citation.Title == nil {
		return res, MissingFieldError("citation/title")
	}
	res.Title = text(doc.Citation.Title)
	res.Abstract = text(doc.Abstract)
	res.Year = text(doc.Citation.Year)
	res.Date = text(doc.Citation.DateTime)
	res.URI = text(doc.Citation.URI)
	res.CurationLevel = text(doc.Status.CurationLevel)
	res.ProcessingLevel = text(doc.Status.ProcessingLevel)
	res.Comment = text(doc.Comment)
	if res.LastModified == "" {
		res.LastModified = res.Date
	}

	setExtent(res, doc.Extent)
	res.Authors = authors(doc.Citation.Authors)
	res.Projects = projects(doc.Projects)
	res.Licence = licence(doc.License)
	res.References = references(doc.References)
	res.SupplementTo = supplementTo(doc.Citation.SupplementTo)
	for _, v := range doc.Keywords {
		if kw := strings.TrimSpace(v); kw != "" {
			res.Keywords = append(res.Keywords, kw)
		}
	}

	setParameters(res, doc.MatrixColumns)
	res.Events = events(doc.Events)
	return res, nil
}

func setTechnicalInfo(res *Metadata, entries []xmlEntry) {
	for _, v := range entries {
		switch v.Key {
		case "status":
			res.Status = v.Value
		case "loginOption":
			if v.Value != "" {
				res.LoginOption = v.Value
			}
		case "lastModified":
			res.LastModified = v.Value
		case "DOIRegistryStatus":
			res.DOIRegistryStatus = v.Value
		case "moratoriumUntil":
			res.MoratoriumUntil = v.Value
		case "collectionType":
			res.CollectionType = v.Value
			res.IsCollection = true
		}
	}
}

func setExtent(res *Metadata, ext xmlExtent) {
	res.Extent = Extent{
		MinDateTime: text(ext.MinDateTime),
		MaxDateTime: text(ext.MaxDateTime),
		Geographic: GeoExtent{
			West:    float(ext.West),
			East:    float(ext.East),
			South:   float(ext.South),
			North:   float(ext.North),
			MeanLon: float(ext.MeanLon),
			MeanLat: float(ext.MeanLat),
		},
	}
	res.TopoType = text(ext.TopoType)
}

func authors(xas []xmlAuthor) []model.Author {
	var res []model.Author
	for _, v := range xas {
		a := model.Author{
			LastName:  text(v.LastName),
			FirstName: text(v.FirstName),
			ORCID:     text(v.ORCID),
			ID:        model.IDPart(v.ID, "author"),
		}
		for _, af := range v.Affiliations {
			m := affiliationRe.FindStringSubmatch(af.ID)
			if m == nil {
				continue
			}
			if n, err := strconv.Atoi(m[1]); err == nil {
				a.Affiliations = append(a.Affiliations, n)
			}
		}
		res = append(res, a)
	}
	return res
}

func projects(xps []xmlProject) []model.Project {
	var res []model.Project
	for _, v := range xps {
		res = append(res, model.Project{
			Label:    text(v.Label),
			Name:     text(v.Name),
			URL:      text(v.URI),
			AwardURI: text(v.AwardURI),
			ID:       model.IDPart(v.ID, "project"),
		})
	}
	return res
}

func licence(xl *xmlLicense) *model.Licence {
	if xl == nil {
		return nil
	}
	return &model.Licence{
		Label: text(xl.Label),
		Name:  text(xl.Name),
		URI:   text(xl.URI),
	}
}

func references(xrs []xmlReference) []model.Reference {
	var res []model.Reference
	for _, v := range xrs {
		res = append(res, model.Reference{
			ID:           v.ID,
			Title:        text(v.Title),
			URI:          text(v.URI),
			RelationType: v.RelationType,
		})
	}
	return res
}

func supplementTo(xs *xmlSupplementTo) *model.SupplementTo {
	if xs == nil {
		return nil
	}
	return &model.SupplementTo{
		ID:    xs.ID,
		Title: text(xs.Title),
		URI:   text(xs.URI),
		Year:  text(xs.Year),
	}
}

// setParameters fills Params in matrix column order. A repeated short
// name is stored under "<short>_N" for its Nth occurrence, or the next
// free N when that key is taken. The ShortName field keeps the original
// text.
func setParameters(res *Metadata, cols []xmlMatrixColumn) {
	seen := make(map[string]int)
	geocodes := make(map[string]struct{})

	for _, col := range cols {
		xp := col.Parameter
		idParts := model.IDParts(xp.ID)

		par := &model.Parameter{
			Name:      strings.TrimSpace(xp.Name),
			ShortName: text(xp.ShortName),
			Type:      model.NewParamType(col.Type),
			Source:    model.NewSource(col.Source),
			Unit:      text(xp.Unit),
			Format:    col.Format,
			Comment:   text(col.Comment),
			Method:    method(col.Method),
			PI:        pi(col.PI),
		}
		if n, ok := idParts["param"]; ok {
			par.ID = &n
		} else if n, ok := idParts["geocode"]; ok {
			par.ID = &n
		}
		if n, ok := idParts["ds"]; ok {
			par.DataSeries = &n
		}
		if n, err := strconv.Atoi(strings.TrimSpace(col.Col)); err == nil {
			par.ColNo = n
		}
		for _, v := range xp.Terms {
			par.Terms = append(par.Terms, term(v))
		}

		base := par.ShortName
		if base == "" {
			base = par.Name
		}
		key := base
		n := seen[base] + 1
		if n > 1 {
			key = fmt.Sprintf("%s_%d", base, n)
		}
		for res.Params.Has(key) {
			n++
			key = fmt.Sprintf("%s_%d", base, n)
		}
		seen[base] = n
		res.Params.Set(key, par)

		if par.ShortName == EventKey {
			res.EventInMatrix = true
		}

		if par.Type == model.TypeGeocode || par.Source == model.SourceGeocode {
			if _, ok := geocodes[par.ShortName]; ok {
				res.AllowArrayExport = false
				res.DuplicateGeocodes = append(res.DuplicateGeocodes, par.ShortName)
			} else {
				geocodes[par.ShortName] = struct{}{}
			}
		}
	}
}

func events(xes []xmlEvent) []model.Event {
	var res []model.Event
	for _, v := range xes {
		ev := model.Event{
			Label:      text(v.Label),
			ID:         model.IDPart(v.ID, "event"),
			Latitude:   float(v.Latitude),
			Longitude:  float(v.Longitude),
			Latitude2:  float(v.Latitude2),
			Longitude2: float(v.Longitude2),
			Elevation:  float(v.Elevation),
			DateTime:   text(v.DateTime),
			DateTime2:  text(v.DateTime2),
			Location:   text(v.Location),
			Method:     method(v.Method),
		}
		if b := v.Basis; b != nil {
			ev.Basis = &model.Basis{
				Name:      text(b.Name),
				URI:       text(b.URI),
				CallSign:  text(b.CallSign),
				IMONumber: text(b.IMONumber),
			}
		}
		if c := v.Campaign; c != nil {
			ev.Campaign = &model.Campaign{
				Name:              text(c.Name),
				URI:               text(c.URI),
				Start:             text(c.Start),
				End:               text(c.End),
				StartLocation:     attribute(c.Attributes, "Start location"),
				EndLocation:       attribute(c.Attributes, "End location"),
				BSHID:             attribute(c.Attributes, "BSH ID"),
				ExpeditionProgram: attribute(c.Attributes, "Expedition Program"),
			}
		}
		res = append(res, ev)
	}
	return res
}

func method(xm *xmlMethod) *model.Method {
	if xm == nil {
		return nil
	}
	res := &model.Method{
		ID:   model.IDPart(xm.ID, "method"),
		Name: text(xm.Name),
	}
	for _, v := range xm.Terms {
		res.Terms = append(res.Terms, term(v))
	}
	return res
}

func pi(xp *xmlPerson) *model.PI {
	if xp == nil {
		return nil
	}
	res := &model.PI{
		ID:        model.IDPart(xp.ID, "pi"),
		FirstName: text(xp.FirstName),
		LastName:  text(xp.LastName),
	}
	res.FullName = model.Author{
		LastName:  res.LastName,
		FirstName: res.FirstName,
	}.FullName()
	return res
}

func term(xt xmlTerm) model.Term {
	res := model.Term{
		Name:        text(xt.Name),
		SemanticURI: xt.SemanticURI,
	}
	if n := model.IDPart(xt.ID, "term"); n != nil {
		res.ID = *n
	}
	if n, err := strconv.Atoi(strings.TrimSpace(xt.TerminologyID)); err == nil {
		res.OntologyID = n
	}
	return res
}

func attribute(attrs []xmlAttribute, name string) string {
	for _, v := range attrs {
		if v.Name == name {
			return strings.TrimSpace(v.Value)
		}
	}
	return ""
}

func text(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// float returns nil for absent or non-numeric nodes.
func float(s *string) *float64 {
	if s == nil {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(*s), 64)
	if err != nil {
		return nil
	}
	return &f
}
