// Package document implements the ordered, mutable JSON object used as the
// request/response container of the device protocol.
//
// Key order matters: the integrity tag is an HMAC over the compact encoding,
// so a document must encode byte-for-byte the same way on both ends. Keys
// keep their insertion order, overwriting a key keeps its position, and
// decoding preserves the order found on the wire at every nesting level.
//
// Leaf values are string, bool, nil and json.Number. Nested objects are
// *Document, arrays are []any.
package document

import (
	"encoding/json"
	"math"
	"reflect"
	"sort"
	"strconv"
)

// Document is an ordered JSON object. The zero value is ready to use.
type Document struct {
	keys   []string
	values map[string]any
}

// New returns an empty document.
func New() *Document {
	return &Document{}
}

// Len returns the number of top-level keys.
func (d *Document) Len() int {
	return len(d.keys)
}

// Keys returns a copy of the top-level keys in order.
func (d *Document) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Has reports whether key is present, including keys holding null.
func (d *Document) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// Get returns the raw value stored under key.
func (d *Document) Get(key string) (any, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Set stores v under key. See the package comment for accepted types; other
// values are normalized through encoding/json, and values that cannot be
// marshaled are stored as null.
func (d *Document) Set(key string, v any) {
	d.setRaw(key, normalize(v))
}

// SetObject stores a fresh nested object under key and returns it.
func (d *Document) SetObject(key string) *Document {
	child := New()
	d.setRaw(key, child)
	return child
}

// Delete removes key. Missing keys are ignored.
func (d *Document) Delete(key string) {
	if _, ok := d.values[key]; !ok {
		return
	}
	delete(d.values, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
}

// Clear removes every key while keeping allocated capacity.
func (d *Document) Clear() {
	d.keys = d.keys[:0]
	clear(d.values)
}

// GetString returns the string stored under key.
func (d *Document) GetString(key string) (string, bool) {
	s, ok := d.values[key].(string)
	return s, ok
}

// GetBool returns the bool stored under key.
func (d *Document) GetBool(key string) (bool, bool) {
	b, ok := d.values[key].(bool)
	return b, ok
}

// GetInt64 returns the integer stored under key.
func (d *Document) GetInt64(key string) (int64, bool) {
	n, ok := d.values[key].(json.Number)
	if !ok {
		return 0, false
	}
	i, err := n.Int64()
	if err != nil {
		return 0, false
	}
	return i, true
}

// GetUint32 returns the integer stored under key when it fits in uint32.
func (d *Document) GetUint32(key string) (uint32, bool) {
	i, ok := d.GetInt64(key)
	if !ok || i < 0 || i > math.MaxUint32 {
		return 0, false
	}
	return uint32(i), true
}

// GetObject returns the nested object stored under key.
func (d *Document) GetObject(key string) (*Document, bool) {
	o, ok := d.values[key].(*Document)
	return o, ok
}

// GetArray returns the array stored under key.
func (d *Document) GetArray(key string) ([]any, bool) {
	a, ok := d.values[key].([]any)
	return a, ok
}

// IsNull reports whether key is present and holds null.
func (d *Document) IsNull(key string) bool {
	v, ok := d.values[key]
	return ok && v == nil
}

// Clone returns a deep copy.
func (d *Document) Clone() *Document {
	out := New()
	for _, k := range d.keys {
		out.setRaw(k, cloneValue(d.values[k]))
	}
	return out
}

// Merge copies every top-level key of src into d. Nested objects present
// on both sides are merged recursively, anything else is overwritten.
func (d *Document) Merge(src *Document) {
	if src == nil {
		return
	}
	for _, k := range src.keys {
		sv := src.values[k]
		if so, ok := sv.(*Document); ok {
			if do, ok := d.values[k].(*Document); ok {
				do.Merge(so)
				continue
			}
		}
		d.setRaw(k, cloneValue(sv))
	}
}

// String returns the compact encoding, or an empty string if encoding fails.
func (d *Document) String() string {
	b, err := d.Encode()
	if err != nil {
		return ""
	}
	return string(b)
}

func (d *Document) setRaw(key string, v any) {
	if d.values == nil {
		d.values = make(map[string]any)
	}
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = v
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case *Document:
		return x.Clone()
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

func normalize(v any) any {
	switch x := v.(type) {
	case nil, string, bool, json.Number:
		return x
	case *Document:
		if x == nil {
			return nil
		}
		return x
	case Document:
		return x.Clone()
	case int:
		return json.Number(strconv.FormatInt(int64(x), 10))
	case int8:
		return json.Number(strconv.FormatInt(int64(x), 10))
	case int16:
		return json.Number(strconv.FormatInt(int64(x), 10))
	case int32:
		return json.Number(strconv.FormatInt(int64(x), 10))
	case int64:
		return json.Number(strconv.FormatInt(x, 10))
	case uint:
		return json.Number(strconv.FormatUint(uint64(x), 10))
	case uint8:
		return json.Number(strconv.FormatUint(uint64(x), 10))
	case uint16:
		return json.Number(strconv.FormatUint(uint64(x), 10))
	case uint32:
		return json.Number(strconv.FormatUint(uint64(x), 10))
	case uint64:
		return json.Number(strconv.FormatUint(x, 10))
	case float32:
		return normalizeFloat(float64(x))
	case float64:
		return normalizeFloat(x)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = normalize(e)
		}
		return out
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		child := New()
		for _, k := range keys {
			child.Set(k, x[k])
		}
		return child
	}

	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	decoded, err := decodeValueBytes(raw)
	if err != nil {
		return nil
	}
	return decoded
}

func normalizeFloat(f float64) any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return json.Number(strconv.FormatFloat(f, 'g', -1, 64))
}
