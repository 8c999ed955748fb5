package domain

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrUnrecognizedShape is returned when a catalogue file is neither a flat
// paint array nor a {range, name, paints} wrapper object.
var ErrUnrecognizedShape = errors.New("unrecognized catalogue format")

// Catalogue holds one catalogue file in a single in-memory shape regardless
// of which of the two on-disk forms it came from. Wrapped records the source
// form so a merge round-trips the file byte-compatibly.
type Catalogue struct {
	Wrapped bool
	Range   string
	Name    string
	Paints  []Paint
}

type catalogueWrapper struct {
	Range  string  `json:"range"`
	Name   string  `json:"name"`
	Paints []Paint `json:"paints"`
}

func (c *Catalogue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return ErrUnrecognizedShape
	}

	switch trimmed[0] {
	case '[':
		c.Wrapped = false
		c.Range = ""
		c.Name = ""
		return json.Unmarshal(data, &c.Paints)
	case '{':
		var w catalogueWrapper
		if err := json.Unmarshal(data, &w); err != nil {
			return err
		}
		if w.Paints == nil {
			return ErrUnrecognizedShape
		}
		c.Wrapped = true
		c.Range = w.Range
		c.Name = w.Name
		c.Paints = w.Paints
		return nil
	default:
		return ErrUnrecognizedShape
	}
}

func (c Catalogue) MarshalJSON() ([]byte, error) {
	if !c.Wrapped {
		return json.Marshal(c.Paints)
	}
	return json.Marshal(catalogueWrapper{
		Range:  c.Range,
		Name:   c.Name,
		Paints: c.Paints,
	})
}
