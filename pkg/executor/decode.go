package executor

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/luizaranda/go-request/pkg/request"
)

// Parsed is a decoded response body together with the response it came from.
type Parsed[T any] struct {
	Body     T
	Response *Response
}

// UnmarshalFunc decodes data into v, like json.Unmarshal.
type UnmarshalFunc func(data []byte, v any) error

// Decoder executes requests and decodes their response bodies. It owns its
// codec, so different decoders can use different formats side by side. It is
// safe for concurrent use.
type Decoder struct {
	executor  Executor
	unmarshal UnmarshalFunc
	validate  *validator.Validate
}

// DecoderOption configures a Decoder.
type DecoderOption func(d *Decoder)

// WithUnmarshaler sets the body codec. Default is json.Unmarshal.
func WithUnmarshaler(fn UnmarshalFunc) DecoderOption {
	return func(d *Decoder) {
		d.unmarshal = fn
	}
}

// WithValidator validates decoded struct values with v, using their
// `validate` tags. A validation failure is a decoding failure.
func WithValidator(v *validator.Validate) DecoderOption {
	return func(d *Decoder) {
		d.validate = v
	}
}

// NewDecoder returns a Decoder running requests with e.
func NewDecoder(e Executor, opts ...DecoderOption) *Decoder {
	d := &Decoder{
		executor:  e,
		unmarshal: json.Unmarshal,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Decode executes req and decodes the response body into v, which must be a
// pointer. The response is returned even when decoding fails.
//
// Errors from Execute are returned as is. A response without data, which is
// the case of every transport failure, or a body that does not decode fails
// with ErrUnableToDecodeBody.
func (d *Decoder) Decode(ctx context.Context, req *request.Request, v any) (*Response, error) {
	res, err := d.executor.Execute(ctx, req)
	if err != nil {
		return nil, err
	}

	if res.Data == nil {
		if res.Err != nil {
			return res, fmt.Errorf("%w: %w", ErrUnableToDecodeBody, res.Err)
		}
		return res, ErrUnableToDecodeBody
	}

	if err := d.unmarshal(res.Data, v); err != nil {
		return res, fmt.Errorf("%w: %w", ErrUnableToDecodeBody, err)
	}

	if sv, ok := structPointer(v); ok && d.validate != nil {
		if err := d.validate.Struct(sv); err != nil {
			return res, fmt.Errorf("%w: %w", ErrUnableToDecodeBody, err)
		}
	}

	return res, nil
}

// DecodeAs executes req with d and decodes the body into a T.
func DecodeAs[T any](ctx context.Context, d *Decoder, req *request.Request) (*Parsed[T], error) {
	var body T
	res, err := d.Decode(ctx, req, &body)
	if err != nil {
		return nil, err
	}

	return &Parsed[T]{Body: body, Response: res}, nil
}

// structPointer unwraps v down to a non nil pointer to a struct, the only
// input validator.Validate.Struct accepts.
func structPointer(v any) (any, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr && rv.Elem().Kind() == reflect.Ptr {
		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, false
	}
	return rv.Interface(), true
}
