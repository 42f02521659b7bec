package command

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
)

type (
	action interface {
		Name() byte
	}

	// paginator re-renders the same command at another page.
	paginator[T any] struct {
		Options T
		Page    Page
	}
	// followUp answers with a fresh message from the command.
	followUp[T any] struct {
		Options T
	}
	// revisit replaces the clicked message with the command's response.
	revisit[T any] struct {
		Options T
	}
)

func (paginator[T]) Name() byte {
	return 'p'
}

func (followUp[T]) Name() byte {
	return 'f'
}

func (revisit[T]) Name() byte {
	return 'r'
}

const (
	customIDSeparator = ":"
	maxCustomIDLength = 100
	nonceLength       = 4
)

var (
	ErrCustomIDTooLong = errors.New("custom id exceeds discord limit")
	ErrMalformedID     = errors.New("malformed custom id")
)

// customID encodes a button action for cmdName. Buttons on one message must
// have distinct ids, so a random nonce is appended after the state.
func customID(a action, cmdName string) (string, error) {
	var buf bytes.Buffer
	buf.WriteByte(a.Name())

	enc := encoder{&buf}
	err := enc.encode(a)
	if err != nil {
		return "", fmt.Errorf("failed to marshal button data: %w", err)
	}

	var nonce [nonceLength]byte
	_, err = rand.Read(nonce[:])
	if err != nil {
		return "", fmt.Errorf("failed to generate button nonce: %w", err)
	}
	buf.Write(nonce[:])

	id := cmdName + customIDSeparator + base64.RawURLEncoding.EncodeToString(buf.Bytes())
	if len(id) > maxCustomIDLength {
		return "", fmt.Errorf("button for command %q needs %d characters: %w", cmdName, len(id), ErrCustomIDTooLong)
	}

	return id, nil
}

// ParseCustomID splits a button id into the command it belongs to and a
// reader over the encoded action.
func ParseCustomID(id string) (string, io.Reader, error) {
	name, payload, ok := strings.Cut(id, customIDSeparator)
	if !ok || name == "" {
		return "", nil, fmt.Errorf("missing command name in %q: %w", id, ErrMalformedID)
	}

	data, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("could not decode button state for command %q: %w", name, errors.Join(ErrMalformedID, err))
	}

	return name, bytes.NewReader(data), nil
}

func buttonState[T action](reader io.Reader) (*T, error) {
	var state T
	dec := decoder{Reader: reader}
	err := dec.decode(&state)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal button state: %w", err)
	}

	return &state, nil
}

var ErrEncodeOptions = errors.New("error while encoding options")

type encoder struct {
	Writer io.Writer
}

func (e *encoder) encode(structure any) error {
	return e.encodeValue(reflect.ValueOf(structure))
}

func (e *encoder) encodeValue(value reflect.Value) error {
	switch value.Kind() {
	case reflect.Int:
		err := binary.Write(e.Writer, binary.BigEndian, int32(value.Int()))
		if err != nil {
			return fmt.Errorf("failed to write int value: %w", err)
		}
	case reflect.Bool:
		err := binary.Write(e.Writer, binary.BigEndian, value.Bool())
		if err != nil {
			return fmt.Errorf("failed to write boolean value: %w", err)
		}
	case reflect.String:
		b := []byte(value.String())
		if len(b) > 255 {
			return fmt.Errorf("string of length %d does not fit: %w", len(b), ErrEncodeOptions)
		}
		err := binary.Write(e.Writer, binary.BigEndian, uint8(len(b)))
		if err != nil {
			return fmt.Errorf("failed to write length for string value: %w", err)
		}

		_, err = e.Writer.Write(b)
		if err != nil {
			return fmt.Errorf("failed to write string value: %w", err)
		}
	case reflect.Pointer:
		err := binary.Write(e.Writer, binary.BigEndian, !value.IsNil())
		if err != nil {
			return fmt.Errorf("failed to write nil marker for pointer: %w", err)
		}

		if !value.IsNil() {
			err = e.encodeValue(value.Elem())
			if err != nil {
				return fmt.Errorf("error while encoding element for pointer: %w", err)
			}
		}
	case reflect.Struct:
		for i := 0; i < value.NumField(); i++ {
			err := e.encodeValue(value.Field(i))
			if err != nil {
				return fmt.Errorf("error while encoding field %q: %w", value.Type().Field(i).Name, err)
			}
		}
	default:
		return fmt.Errorf("unsupported kind %v in options: %w", value.Kind(), ErrEncodeOptions)
	}

	return nil
}

type decoder struct {
	Reader io.Reader
}

func (d *decoder) decodeValue(value reflect.Value) error {
	if !value.CanSet() {
		return fmt.Errorf("cannot set fields for value of type %q: %w", value.Type().String(), ErrDecodeOption)
	}

	switch value.Kind() {
	case reflect.Int:
		var v int32
		err := binary.Read(d.Reader, binary.BigEndian, &v)
		if err != nil {
			return fmt.Errorf("failed to read int value: %w", err)
		}

		value.SetInt(int64(v))
	case reflect.Bool:
		var v bool
		err := binary.Read(d.Reader, binary.BigEndian, &v)
		if err != nil {
			return fmt.Errorf("failed to read boolean value: %w", err)
		}

		value.SetBool(v)
	case reflect.String:
		var l uint8
		err := binary.Read(d.Reader, binary.BigEndian, &l)
		if err != nil {
			return fmt.Errorf("failed to read length for string value: %w", err)
		}

		buf := make([]byte, l)
		_, err = io.ReadFull(d.Reader, buf)
		if err != nil {
			return fmt.Errorf("failed to read string value: %w", err)
		}

		value.SetString(string(buf))
	case reflect.Pointer:
		var present bool
		err := binary.Read(d.Reader, binary.BigEndian, &present)
		if err != nil {
			return fmt.Errorf("failed to check if pointer is nil: %w", err)
		}

		if !present {
			value.Set(reflect.Zero(value.Type()))
			return nil
		}

		ptr := reflect.New(value.Type().Elem())
		err = d.decodeValue(ptr.Elem())
		if err != nil {
			return fmt.Errorf("error while decoding options for pointer element: %w", err)
		}
		value.Set(ptr)
	case reflect.Struct:
		for i := 0; i < value.NumField(); i++ {
			err := d.decodeValue(value.Field(i))
			if err != nil {
				return fmt.Errorf("error while decoding options for struct field: %w", err)
			}
		}
	default:
		return fmt.Errorf("unsupported kind %v in options: %w", value.Kind(), ErrDecodeOption)
	}

	return nil
}

func (d *decoder) decode(pointer any) error {
	value := reflect.ValueOf(pointer)
	if value.Kind() != reflect.Pointer || value.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("attempted decode into non-struct pointer %T: %w", pointer, ErrDecodeOption)
	}

	return d.decodeValue(value.Elem())
}
