package challenge

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Set is a name-keyed collection of challenges that keeps insertion order,
// both in memory and in its JSON object form.
type Set struct {
	order []*Challenge
	index map[string]*Challenge
}

// NewSet builds a set from definitions, each starting with zero progress.
func NewSet(specs ...Spec) *Set {
	s := &Set{}
	for _, sp := range specs {
		s.Put(New(sp))
	}
	return s
}

// Len returns the number of challenges.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Get looks up a challenge by name.
func (s *Set) Get(name string) (*Challenge, bool) {
	if s == nil || s.index == nil {
		return nil, false
	}
	c, ok := s.index[name]
	return c, ok
}

// Put inserts c, or replaces the challenge with the same name in place.
func (s *Set) Put(c *Challenge) {
	if s.index == nil {
		s.index = make(map[string]*Challenge)
	}
	if old, ok := s.index[c.Name]; ok {
		for i := range s.order {
			if s.order[i] == old {
				s.order[i] = c
				break
			}
		}
	} else {
		s.order = append(s.order, c)
	}
	s.index[c.Name] = c
}

// All returns the challenges in insertion order. The slice is a copy but the
// challenges are shared.
func (s *Set) All() []*Challenge {
	if s == nil {
		return nil
	}
	return append([]*Challenge(nil), s.order...)
}

// Names returns challenge names in insertion order.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, len(s.order))
	for i, c := range s.order {
		names[i] = c.Name
	}
	return names
}

// Clear removes every challenge.
func (s *Set) Clear() {
	s.order = nil
	s.index = nil
}

// Clone returns a deep copy.
func (s *Set) Clone() *Set {
	out := &Set{}
	if s == nil {
		return out
	}
	for _, c := range s.order {
		cp := *c
		out.Put(&cp)
	}
	return out
}

// MarshalJSON writes the set as an object keyed by challenge name.
func (s *Set) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if s != nil {
		for i, c := range s.order {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(c.Name)
			if err != nil {
				return nil, err
			}
			val, err := json.Marshal(c)
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(val)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object keyed by challenge name, keeping key order.
func (s *Set) UnmarshalJSON(b []byte) error {
	s.Clear()
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("challenges: expected object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("challenges: expected name, got %v", tok)
		}
		c := &Challenge{}
		if err := dec.Decode(c); err != nil {
			return fmt.Errorf("challenges: %q: %w", name, err)
		}
		c.Name = name
		s.Put(c)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
