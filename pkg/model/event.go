package model

// Basis is a platform used during an event, for example a ship.
type Basis struct {
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	URI       string `json:"uri,omitempty" yaml:"uri,omitempty"`
	CallSign  string `json:"callSign,omitempty" yaml:"call_sign,omitempty"`
	IMONumber string `json:"imoNumber,omitempty" yaml:"imo_number,omitempty"`
}

// Campaign during which an event took place, for example a cruise.
type Campaign struct {
	Name          string `json:"name,omitempty" yaml:"name,omitempty"`
	URI           string `json:"uri,omitempty" yaml:"uri,omitempty"`
	Start         string `json:"start,omitempty" yaml:"start,omitempty"`
	End           string `json:"end,omitempty" yaml:"end,omitempty"`
	StartLocation string `json:"startLocation,omitempty" yaml:"start_location,omitempty"`
	EndLocation   string `json:"endLocation,omitempty" yaml:"end_location,omitempty"`
	BSHID         string `json:"bshId,omitempty" yaml:"bsh_id,omitempty"`

	// ExpeditionProgram is the URL of the campaign report.
	ExpeditionProgram string `json:"expeditionProgram,omitempty" yaml:"expedition_program,omitempty"`
}

// Event is a named sampling occasion. Coordinates and elevation are nil
// when absent, they never default to zero.
type Event struct {
	// Label is unique within a dataset.
	Label string `json:"label" yaml:"label"`

	ID *int `json:"id,omitempty" yaml:"id,omitempty"`

	Latitude   *float64 `json:"latitude,omitempty" yaml:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty" yaml:"longitude,omitempty"`
	Latitude2  *float64 `json:"latitude2,omitempty" yaml:"latitude2,omitempty"`
	Longitude2 *float64 `json:"longitude2,omitempty" yaml:"longitude2,omitempty"`
	Elevation  *float64 `json:"elevation,omitempty" yaml:"elevation,omitempty"`

	// DateTime is the start of the event as given in metadata.
	DateTime string `json:"dateTime,omitempty" yaml:"date_time,omitempty"`
	// DateTime2 is the end of the event.
	DateTime2 string `json:"dateTime2,omitempty" yaml:"date_time2,omitempty"`

	Location string    `json:"location,omitempty" yaml:"location,omitempty"`
	Basis    *Basis    `json:"basis,omitempty" yaml:"basis,omitempty"`
	Campaign *Campaign `json:"campaign,omitempty" yaml:"campaign,omitempty"`
	Method   *Method   `json:"method,omitempty" yaml:"method,omitempty"`
}

// Device returns the name of the method used during the event.
func (e Event) Device() string {
	if e.Method == nil {
		return ""
	}
	return e.Method.Name
}
