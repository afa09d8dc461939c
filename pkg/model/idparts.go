package model

import (
	"regexp"
	"strconv"
)

var idPartsRe = regexp.MustCompile(`([a-z]+)([0-9]+)`)

// IDParts splits a composite ID string into tag/number pairs.
// For example "col13.ds10866878.param7387" becomes
// {"col": 13, "ds": 10866878, "param": 7387}. When a tag repeats, the
// last value wins. Numbers that do not fit into int are skipped.
func IDParts(s string) map[string]int {
	res := make(map[string]int)
	for _, m := range idPartsRe.FindAllStringSubmatch(s, -1) {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		res[m[1]] = n
	}
	return res
}

// IDPart returns the number of the given tag in a composite ID,
// or nil if the tag is absent.
func IDPart(s, tag string) *int {
	if n, ok := IDParts(s)[tag]; ok {
		return &n
	}
	return nil
}
