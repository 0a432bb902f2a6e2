package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// Account is a WeChat public account the user follows.
// ID is the upstream fakeid; Name is display only.
//
// Records read from the store keep a null id as a nil ID and carry any keys
// other than name and id in Extra, so writing them back loses nothing.
type Account struct {
	Name  string
	ID    *string
	Extra map[string]json.RawMessage
}

func NewAccount(name, id string) Account {
	return Account{Name: name, ID: &id}
}

// FakeID returns the id, or "" when the record has none.
func (a Account) FakeID() string {
	if a.ID == nil {
		return ""
	}
	return *a.ID
}

func (a *Account) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*a = Account{}
	for key, value := range fields {
		switch key {
		case "name":
			if err := json.Unmarshal(value, &a.Name); err != nil {
				return fmt.Errorf("account name: %w", err)
			}
		case "id":
			if err := json.Unmarshal(value, &a.ID); err != nil {
				return fmt.Errorf("account id: %w", err)
			}
		default:
			if a.Extra == nil {
				a.Extra = map[string]json.RawMessage{}
			}
			a.Extra[key] = value
		}
	}

	return nil
}

// MarshalJSON writes name and id first, then the extra keys in sorted order.
func (a Account) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	write := func(key string, value any) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		if err := encodeUnescaped(&buf, key); err != nil {
			return err
		}
		buf.WriteByte(':')
		return encodeUnescaped(&buf, value)
	}

	if err := write("name", a.Name); err != nil {
		return nil, err
	}
	if err := write("id", a.ID); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(a.Extra))
	for key := range a.Extra {
		if key != "name" && key != "id" {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)
	for _, key := range keys {
		if err := write(key, a.Extra[key]); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encodeUnescaped leaves <, > and & alone; the outer encoder decides whether
// to escape them.
func encodeUnescaped(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}
