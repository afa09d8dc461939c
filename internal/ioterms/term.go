package ioterms

import (
	"encoding/json"
	"errors"
)

var errNoSource = errors.New("term document has no _source")

type termDoc struct {
	Source *termSource `json:"_source"`
}

type termSource struct {
	Name       string `json:"name"`
	MainTopics topics `json:"main_topics"`
	Topics     topics `json:"topics"`
}

func (s *termSource) classification() []string {
	res := make([]string, 0, len(s.MainTopics)+len(s.Topics))
	res = append(res, s.MainTopics...)
	return append(res, s.Topics...)
}

// topics is a single string or a list of strings in term documents.
type topics []string

func (t *topics) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = list
		return nil
	}
	var one string
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	if one != "" {
		*t = topics{one}
	}
	return nil
}
