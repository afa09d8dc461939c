package metadata

import "encoding/xml"

// Optional text nodes are pointers, nil means the node is absent.

type xmlMetaData struct {
	XMLName       xml.Name          `xml:"MetaData"`
	Citation      xmlCitation       `xml:"citation"`
	Abstract      *string           `xml:"abstract"`
	Status        xmlStatus         `xml:"status"`
	License       *xmlLicense       `xml:"license"`
	Extent        xmlExtent         `xml:"extent"`
	Projects      []xmlProject      `xml:"project"`
	MatrixColumns []xmlMatrixColumn `xml:"matrixColumn"`
	Events        []xmlEvent        `xml:"event"`
	Keywords      []string          `xml:"keywords>keyword"`
	References    []xmlReference    `xml:"reference"`
	Comment       *string           `xml:"comment"`
	TechnicalInfo []xmlEntry        `xml:"technicalInfo>entry"`
}

type xmlEntry struct {
	Key   string `xml:"key,attr"`
	Value string `xml:"value,attr"`
}

type xmlCitation struct {
	Title        *string          `xml:"title"`
	Year         *string          `xml:"year"`
	DateTime     *string          `xml:"dateTime"`
	URI          *string          `xml:"URI"`
	Authors      []xmlAuthor      `xml:"author"`
	SupplementTo *xmlSupplementTo `xml:"supplementTo"`
}

type xmlAuthor struct {
	ID           string   `xml:"id,attr"`
	LastName     *string  `xml:"lastName"`
	FirstName    *string  `xml:"firstName"`
	ORCID        *string  `xml:"orcid"`
	Affiliations []xmlRef `xml:"affiliation"`
}

type xmlRef struct {
	ID string `xml:"id,attr"`
}

type xmlSupplementTo struct {
	ID    string  `xml:"id,attr"`
	Year  *string `xml:"year"`
	Title *string `xml:"title"`
	URI   *string `xml:"URI"`
}

type xmlStatus struct {
	CurationLevel   *string `xml:"curationLevel>name"`
	ProcessingLevel *string `xml:"processingLevel>name"`
}

type xmlLicense struct {
	Label *string `xml:"label"`
	Name  *string `xml:"name"`
	URI   *string `xml:"URI"`
}

type xmlExtent struct {
	MinDateTime *string `xml:"temporal>minDateTime"`
	MaxDateTime *string `xml:"temporal>maxDateTime"`
	West        *string `xml:"geographic>westBoundLongitude"`
	East        *string `xml:"geographic>eastBoundLongitude"`
	South       *string `xml:"geographic>southBoundLatitude"`
	North       *string `xml:"geographic>northBoundLatitude"`
	MeanLon     *string `xml:"geographic>meanLongitude"`
	MeanLat     *string `xml:"geographic>meanLatitude"`
	TopoType    *string `xml:"topoType"`
}

type xmlProject struct {
	ID       string  `xml:"id,attr"`
	Label    *string `xml:"label"`
	Name     *string `xml:"name"`
	URI      *string `xml:"URI"`
	AwardURI *string `xml:"award>URI"`
}

type xmlMatrixColumn struct {
	Col       string       `xml:"col,attr"`
	Type      string       `xml:"type,attr"`
	Source    string       `xml:"source,attr"`
	Format    string       `xml:"format,attr"`
	Parameter xmlParameter `xml:"parameter"`
	Comment   *string      `xml:"comment"`
	Method    *xmlMethod   `xml:"method"`
	PI        *xmlPerson   `xml:"PI"`
}

type xmlParameter struct {
	ID        string    `xml:"id,attr"`
	Name      string    `xml:"name"`
	ShortName *string   `xml:"shortName"`
	Unit      *string   `xml:"unit"`
	Terms     []xmlTerm `xml:"term"`
}

type xmlTerm struct {
	ID            string  `xml:"id,attr"`
	TerminologyID string  `xml:"terminologyId,attr"`
	SemanticURI   string  `xml:"semanticURI,attr"`
	Name          *string `xml:"name"`
}

type xmlMethod struct {
	ID    string    `xml:"id,attr"`
	Name  *string   `xml:"name"`
	Terms []xmlTerm `xml:"term"`
}

type xmlPerson struct {
	ID        string  `xml:"id,attr"`
	FirstName *string `xml:"firstName"`
	LastName  *string `xml:"lastName"`
}

type xmlEvent struct {
	ID         string       `xml:"id,attr"`
	Label      *string      `xml:"label"`
	Elevation  *string      `xml:"elevation"`
	DateTime   *string      `xml:"dateTime"`
	DateTime2  *string      `xml:"dateTime2"`
	Latitude   *string      `xml:"latitude"`
	Longitude  *string      `xml:"longitude"`
	Latitude2  *string      `xml:"latitude2"`
	Longitude2 *string      `xml:"longitude2"`
	Location   *string      `xml:"location>name"`
	Method     *xmlMethod   `xml:"method"`
	Basis      *xmlBasis    `xml:"basis"`
	Campaign   *xmlCampaign `xml:"campaign"`
}

type xmlBasis struct {
	Name      *string `xml:"name"`
	URI       *string `xml:"URI"`
	CallSign  *string `xml:"callSign"`
	IMONumber *string `xml:"IMOnumber"`
}

type xmlCampaign struct {
	Name       *string        `xml:"name"`
	URI        *string        `xml:"URI"`
	Start      *string        `xml:"start"`
	End        *string        `xml:"end"`
	Attributes []xmlAttribute `xml:"attribute"`
}

type xmlAttribute struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

type xmlReference struct {
	ID           string  `xml:"id,attr"`
	RelationType string  `xml:"relationType,attr"`
	URI          *string `xml:"URI"`
	Title        *string `xml:"title"`
}
