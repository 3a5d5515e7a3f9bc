package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrDecode is returned when a body is not valid JSON.
	ErrDecode = errors.New("document decode failed")
	// ErrNotObject is returned when a body is valid JSON but not an object.
	ErrNotObject = errors.New("document is not a json object")
	// ErrEncode is returned when a document holds a value that has no JSON form.
	ErrEncode = errors.New("document encode failed")
)

// Encode renders d as compact JSON in insertion order. HTML characters are
// not escaped.
func (d *Document) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.encodeTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler.
func (d *Document) MarshalJSON() ([]byte, error) {
	return d.Encode()
}

// Decode replaces the contents of d with the object in data. On failure d
// is left empty.
func (d *Document) Decode(data []byte) error {
	d.Clear()

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrNotObject
	}
	if err = decodeObject(dec, d); err != nil {
		d.Clear()
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if _, err = dec.Token(); !errors.Is(err, io.EOF) {
		d.Clear()
		return fmt.Errorf("%w: trailing data after object", ErrDecode)
	}

	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Document) UnmarshalJSON(data []byte) error {
	return d.Decode(data)
}

// Parse decodes data into a new document.
func Parse(data []byte) (*Document, error) {
	d := New()
	if err := d.Decode(data); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Document) encodeTo(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeString(buf, k); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := encodeValue(buf, d.values[k]); err != nil {
			return fmt.Errorf("key %q: %w", k, err)
		}
	}
	buf.WriteByte('}')
	return nil
}

func encodeValue(buf *bytes.Buffer, v any) error {
	switch x := v.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		if x {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case string:
		return encodeString(buf, x)
	case json.Number:
		if x == "" {
			buf.WriteByte('0')
			return nil
		}
		if !json.Valid([]byte(x)) {
			return fmt.Errorf("%w: invalid number %q", ErrEncode, string(x))
		}
		buf.WriteString(string(x))
	case *Document:
		return x.encodeTo(buf)
	case []any:
		buf.WriteByte('[')
		for i, e := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeValue(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrEncode, v)
	}
	return nil
}

func encodeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}

func decodeObject(dec *json.Decoder, d *Document) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected object key %v", tok)
		}
		v, err := decodeValue(dec)
		if err != nil {
			return err
		}
		d.setRaw(key, v)
	}
	// closing '}'
	_, err := dec.Token()
	return err
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			child := New()
			if err = decodeObject(dec, child); err != nil {
				return nil, err
			}
			return child, nil
		case '[':
			arr := make([]any, 0)
			for dec.More() {
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, v)
			}
			if _, err = dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %v", t)
		}
	default:
		return t, nil
	}
}

func decodeValueBytes(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return decodeValue(dec)
}
