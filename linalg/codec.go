// SPDX-License-Identifier: MIT

// Package linalg: JSON form of Vector4 and Matrix4.
//
// Both types serialize as a single object with a flat "values" array:
//
//	{"values": [x, y, z, w]}            // Vector4, exactly 4 numbers
//	{"values": [v0, v1, ..., v15]}      // Matrix4, exactly 16 numbers, row-major
//
// Numbers are decoded as float64 and narrowed to float32. Writers emit the
// same layout with float32 formatting, so store→load is exact.
package linalg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
)

const (
	vector4Len = 4
	matrix4Len = 16
)

// valuesKey is the only key a document must carry. It is matched exactly,
// not with encoding/json's case-insensitive field matching.
const valuesKey = "values"

var jsonNull = []byte("null")

type valuesOut struct {
	Values []float32 `json:"values"`
}

// ---------- Vector4 ----------

// LoadVector4 reads a Vector4 from the JSON file at path.
// Errors: ErrRead if the file cannot be read, ErrFormat if it is not a
// {"values": [4 numbers]} document, ErrNaNInf under WithRejectNonFinite.
func LoadVector4(path string, opts ...LoadOption) (Vector4, error) {
	trace(typeVector4, "json")
	o := gatherLoadOptions(opts...)
	data, err := readSource(o, path)
	if err != nil {
		return Vector4{}, fmt.Errorf("LoadVector4(%q): %w", path, err)
	}
	vals, err := decodeValues(data, vector4Len, o)
	if err != nil {
		return Vector4{}, fmt.Errorf("LoadVector4(%q): %w", path, err)
	}

	return Vector4{data: [4]float32(vals)}, nil
}

// ReadVector4 decodes a Vector4 document from r. Options other than
// WithRejectNonFinite have no effect here.
func ReadVector4(r io.Reader, opts ...LoadOption) (Vector4, error) {
	trace(typeVector4, "reader")
	data, err := io.ReadAll(r)
	if err != nil {
		return Vector4{}, fmt.Errorf("ReadVector4: %w: %w", ErrRead, err)
	}
	vals, err := decodeValues(data, vector4Len, gatherLoadOptions(opts...))
	if err != nil {
		return Vector4{}, linalgErrorf("ReadVector4", err)
	}

	return Vector4{data: [4]float32(vals)}, nil
}

// WriteVector4 encodes v to w as {"values": [x, y, z, w]}.
func WriteVector4(w io.Writer, v Vector4) error {
	return writeValues(w, v.data[:])
}

// SaveVector4 writes v to the file at path, creating or truncating it.
func SaveVector4(path string, v Vector4) error {
	return saveValues(path, v.data[:])
}

// MarshalJSON implements json.Marshaler.
func (v Vector4) MarshalJSON() ([]byte, error) {
	return json.Marshal(valuesOut{Values: v.data[:]})
}

// UnmarshalJSON implements json.Unmarshaler with the default load options.
// A JSON null leaves v unchanged.
func (v *Vector4) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		return nil
	}
	vals, err := decodeValues(data, vector4Len, gatherLoadOptions())
	if err != nil {
		return linalgErrorf("Vector4.UnmarshalJSON", err)
	}
	v.data = [4]float32(vals)

	return nil
}

// ---------- Matrix4 ----------

// LoadMatrix4 reads a Matrix4 from the JSON file at path; values are row-major.
// Errors as for LoadVector4, with 16 entries expected.
func LoadMatrix4(path string, opts ...LoadOption) (Matrix4, error) {
	trace(typeMatrix4, "json")
	o := gatherLoadOptions(opts...)
	data, err := readSource(o, path)
	if err != nil {
		return Matrix4{}, fmt.Errorf("LoadMatrix4(%q): %w", path, err)
	}
	vals, err := decodeValues(data, matrix4Len, o)
	if err != nil {
		return Matrix4{}, fmt.Errorf("LoadMatrix4(%q): %w", path, err)
	}

	return matrix4FromValues([16]float32(vals)), nil
}

// ReadMatrix4 decodes a Matrix4 document from r.
func ReadMatrix4(r io.Reader, opts ...LoadOption) (Matrix4, error) {
	trace(typeMatrix4, "reader")
	data, err := io.ReadAll(r)
	if err != nil {
		return Matrix4{}, fmt.Errorf("ReadMatrix4: %w: %w", ErrRead, err)
	}
	vals, err := decodeValues(data, matrix4Len, gatherLoadOptions(opts...))
	if err != nil {
		return Matrix4{}, linalgErrorf("ReadMatrix4", err)
	}

	return matrix4FromValues([16]float32(vals)), nil
}

// WriteMatrix4 encodes m to w as a flat row-major "values" array.
func WriteMatrix4(w io.Writer, m Matrix4) error {
	vals := m.Values()
	return writeValues(w, vals[:])
}

// SaveMatrix4 writes m to the file at path, creating or truncating it.
func SaveMatrix4(path string, m Matrix4) error {
	vals := m.Values()
	return saveValues(path, vals[:])
}

// MarshalJSON implements json.Marshaler.
func (m Matrix4) MarshalJSON() ([]byte, error) {
	vals := m.Values()
	return json.Marshal(valuesOut{Values: vals[:]})
}

// UnmarshalJSON implements json.Unmarshaler with the default load options.
// A JSON null leaves m unchanged.
func (m *Matrix4) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		return nil
	}
	vals, err := decodeValues(data, matrix4Len, gatherLoadOptions())
	if err != nil {
		return linalgErrorf("Matrix4.UnmarshalJSON", err)
	}
	*m = matrix4FromValues([16]float32(vals))

	return nil
}

// ---------- shared helpers ----------

// readSource reads path from the configured filesystem.
func readSource(o loadOptions, path string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if o.fsys != nil {
		data, err = fs.ReadFile(o.fsys, path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	return data, nil
}

// decodeValues parses a {"values": [...]} document holding exactly want
// numbers and narrows them to float32. The returned slice has length want.
func decodeValues(data []byte, want int, o loadOptions) ([]float32, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	field, ok := doc[valuesKey]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q key", ErrFormat, valuesKey)
	}
	// Pointer elements tell a null entry apart from a literal 0.
	var raw []*float64
	if err := json.Unmarshal(field, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	if len(raw) != want {
		return nil, fmt.Errorf("%w: want %d values, got %d", ErrFormat, want, len(raw))
	}

	out := make([]float32, want)
	for i, p := range raw {
		if p == nil {
			return nil, fmt.Errorf("%w: values[%d] is null", ErrFormat, i)
		}
		f := *p
		v := float32(f)
		if o.rejectNonFinite && math.IsInf(float64(v), 0) {
			return nil, fmt.Errorf("%w: values[%d]=%g overflows float32", ErrNaNInf, i, f)
		}
		out[i] = v
	}

	return out, nil
}

func writeValues(w io.Writer, vals []float32) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(valuesOut{Values: vals}); err != nil {
		return fmt.Errorf("linalg: encode values: %w", err)
	}
	return nil
}

func saveValues(path string, vals []float32) error {
	var buf bytes.Buffer
	if err := writeValues(&buf, vals); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("linalg: save %q: %w", path, err)
	}
	return nil
}
