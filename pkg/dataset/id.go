package dataset

import (
	"regexp"
	"strconv"
	"strings"
)

var doiRe = regexp.MustCompile(`(?i)10\.1594/PANGAEA\.([0-9]+)$`)

// ParseID accepts a numeric dataset ID or a DOI of the form
// 10.1594/PANGAEA.<n>, with or without a resolver prefix.
func ParseID(s string) (int, error) {
	s = strings.TrimSpace(s)
	if m := doiRe.FindStringSubmatch(s); m != nil {
		s = m[1]
	}
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, InvalidIDError(s)
	}
	return id, nil
}
