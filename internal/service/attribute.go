package service

import (
	"bytes"
	"encoding/json"
	"strings"
)

// AttributeKind is the shape an attribute decoded to
type AttributeKind int

const (
	KindNull AttributeKind = iota
	KindString
	KindNumber
	KindBool
	KindList
	KindUnknown
)

// AttributeValue is one field of a remote recipe record. The recommendation
// service sends either plain JSON values or values wrapped in a single-key
// type envelope ({"S": "..."}, {"N": "..."}, {"SS": [...]}, {"L": [...]}).
// Both decode to the same variant so every field is unwrapped the same way.
// Decoding never fails on shape; anything unrecognised becomes KindUnknown.
type AttributeValue struct {
	Kind   AttributeKind
	Str    string
	List   []AttributeValue
	Tagged bool
}

func (a *AttributeValue) UnmarshalJSON(data []byte) error {
	*a = decodeAttribute(data)
	return nil
}

func decodeAttribute(data []byte) AttributeValue {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return AttributeValue{Kind: KindNull}
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			return AttributeValue{Kind: KindString, Str: s}
		}
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err == nil {
			list := make([]AttributeValue, 0, len(items))
			for _, item := range items {
				list = append(list, decodeAttribute(item))
			}
			return AttributeValue{Kind: KindList, List: list}
		}
	case '{':
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(data, &envelope); err == nil && len(envelope) == 1 {
			for tag, inner := range envelope {
				if v, ok := decodeTagged(tag, inner); ok {
					return v
				}
			}
		}
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err == nil {
			return AttributeValue{Kind: KindBool, Str: string(data)}
		}
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err == nil {
			return AttributeValue{Kind: KindNumber, Str: n.String()}
		}
	}

	return AttributeValue{Kind: KindUnknown}
}

func decodeTagged(tag string, inner json.RawMessage) (AttributeValue, bool) {
	switch tag {
	case "S", "N":
		var s string
		if err := json.Unmarshal(inner, &s); err != nil {
			return AttributeValue{}, false
		}
		kind := KindString
		if tag == "N" {
			kind = KindNumber
		}
		return AttributeValue{Kind: kind, Str: s, Tagged: true}, true
	case "BOOL":
		var b bool
		if err := json.Unmarshal(inner, &b); err != nil {
			return AttributeValue{}, false
		}
		str := "false"
		if b {
			str = "true"
		}
		return AttributeValue{Kind: KindBool, Str: str, Tagged: true}, true
	case "NULL":
		return AttributeValue{Kind: KindNull, Tagged: true}, true
	case "SS", "NS":
		var items []string
		if err := json.Unmarshal(inner, &items); err != nil {
			return AttributeValue{}, false
		}
		list := make([]AttributeValue, 0, len(items))
		for _, s := range items {
			list = append(list, AttributeValue{Kind: KindString, Str: s})
		}
		return AttributeValue{Kind: KindList, List: list, Tagged: true}, true
	case "L":
		v := decodeAttribute(inner)
		if v.Kind != KindList {
			return AttributeValue{}, false
		}
		v.Tagged = true
		return v, true
	}
	return AttributeValue{}, false
}

// String unwraps a scalar. Lists, nulls and unknown shapes yield "".
func (a AttributeValue) String() string {
	switch a.Kind {
	case KindString, KindNumber, KindBool:
		return a.Str
	default:
		return ""
	}
}

// Strings unwraps a list field. A string (plain or tagged) is split on sep;
// a list is unwrapped element by element. Empty entries are dropped and the
// result is never nil.
func (a AttributeValue) Strings(sep string) []string {
	out := []string{}
	switch a.Kind {
	case KindString:
		for _, part := range strings.Split(a.Str, sep) {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	case KindList:
		for _, item := range a.List {
			if s := strings.TrimSpace(item.String()); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
