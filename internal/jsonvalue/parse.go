package jsonvalue

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Parse decodes data into a Value, per spec §4.2. It relies on
// encoding/json's tokenizer as the vetted JSON codec (spec §1 places the
// codec itself out of the core's scope) but implements the DOM shape,
// duplicate-key rejection, and trailing-content rejection here.
func Parse(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	val, err := decodeValue(dec)
	if err != nil {
		return Value{}, err
	}

	// Reject trailing content: anything left after the first value.
	if _, err := dec.Token(); err != io.EOF {
		return Value{}, errMalformed("trailing content after JSON value")
	}

	return val, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, errMalformed("unexpected end of JSON: " + err.Error())
	}
	return decodeFromToken(dec, tok)
}

func decodeFromToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Value{}, errMalformed("invalid JSON number: " + string(t))
		}
		return Number(f), nil
	case string:
		return String(t), nil
	case json.Delim:
		switch t {
		case '[':
			return decodeArray(dec)
		case '{':
			return decodeObject(dec)
		default:
			return Value{}, errMalformed(fmt.Sprintf("unexpected delimiter %q", t))
		}
	default:
		return Value{}, errMalformed("unrecognized JSON token")
	}
}

func decodeArray(dec *json.Decoder) (Value, error) {
	var items []Value
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		items = append(items, v)
	}
	if _, err := dec.Token(); err != nil { // consume ']'
		return Value{}, errMalformed("unterminated JSON array")
	}
	if items == nil {
		items = []Value{}
	}
	return Array(items), nil
}

func decodeObject(dec *json.Decoder) (Value, error) {
	obj := map[string]Value{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Value{}, errMalformed("malformed object key")
		}
		key, ok := keyTok.(string)
		if !ok {
			return Value{}, errMalformed("object key is not a string")
		}
		if _, exists := obj[key]; exists {
			return Value{}, errMalformed("duplicate JSON key: " + key)
		}

		v, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		obj[key] = v
	}
	if _, err := dec.Token(); err != nil { // consume '}'
		return Value{}, errMalformed("unterminated JSON object")
	}
	return Object(obj), nil
}
