// Package serial provides serialization utilities.
package serial

import (
	"encoding"
	"encoding/binary"
	"fmt"
	"io"
	"reflect"
)

// TryMarshal attempts to marshal an object if it implements BinaryMarshaler.
// It handles both pointer and value receiver implementations.
func TryMarshal(v any) ([]byte, error) {
	if marshaler, ok := v.(encoding.BinaryMarshaler); ok {
		return marshaler.MarshalBinary()
	}
	pv := reflect.ValueOf(v)
	if pv.CanAddr() {
		if marshaler, ok := pv.Addr().Interface().(encoding.BinaryMarshaler); ok {
			return marshaler.MarshalBinary()
		}
	}
	return nil, fmt.Errorf("type %T (or pointer) does not implement encoding.BinaryMarshaler", v)
}

// TryUnmarshal attempts to unmarshal data into a pointer if it implements BinaryUnmarshaler.
// v must be a non-nil pointer to the target object.
func TryUnmarshal(v any, data []byte) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("TryUnmarshal target must be a non-nil pointer, got %T", v)
	}
	if unmarshaler, ok := v.(encoding.BinaryUnmarshaler); ok {
		return unmarshaler.UnmarshalBinary(data)
	}
	return fmt.Errorf("type %T does not implement encoding.BinaryUnmarshaler", v)
}

// WriteRecord marshals v and writes it to w with a uint32 length prefix.
func WriteRecord(w io.Writer, v any) error {
	data, err := TryMarshal(v)
	if err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(data))); err != nil {
		return fmt.Errorf("failed to write record length: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// ReadRecord reads one length-prefixed record from r into v.
// Records longer than maxLen are rejected. Returns io.EOF only when r is
// exhausted before the length prefix.
func ReadRecord(r io.Reader, v any, maxLen uint32) error {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		if err == io.EOF {
			return io.EOF
		}
		return fmt.Errorf("failed to read record length: %w", err)
	}
	if n > maxLen {
		return fmt.Errorf("record length %d exceeds limit %d", n, maxLen)
	}
	data := make([]byte, n)
	if _, err := io.ReadFull(r, data); err != nil {
		return fmt.Errorf("failed to read record: %w", err)
	}
	return TryUnmarshal(v, data)
}
