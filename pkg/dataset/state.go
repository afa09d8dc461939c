package dataset

// State of a dataset load.
type State int

const (
	StateUninitialized State = iota
	StateMetadataLoaded
	// StateDataLoaded is the terminal success state.
	StateDataLoaded
	// StateInvalid is entered on not-found, deleted, unparsable metadata
	// or a bad identifier.
	StateInvalid
	// StateRestrictedOrCollection means metadata is loaded but data is
	// intentionally not fetched.
	StateRestrictedOrCollection
)

var stateNames = []string{
	"uninitialized",
	"metadata-loaded",
	"data-loaded",
	"invalid",
	"restricted-or-collection",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
