package main

import (
	"encoding/json"
	"io"
	"math"

	"github.com/iov-one/tagupdater/errors"
	"github.com/iov-one/tagupdater/tag"
	yaml "gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// recordCodec reads and writes a stream of records.
type recordCodec interface {
	Read() (tag.Compound, error)
	Write(tag.Compound) error
}

func newRecordCodec(format string, r io.Reader, w io.Writer) (recordCodec, error) {
	switch format {
	case formatJSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		return &jsonCodec{dec: dec, enc: json.NewEncoder(w)}, nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return &yamlCodec{dec: yaml.NewDecoder(r), enc: enc}, nil
	}
	return nil, errors.Wrapf(errors.ErrInput, "unknown record format %q", format)
}

type jsonCodec struct {
	dec *json.Decoder
	enc *json.Encoder
}

func (c *jsonCodec) Read() (tag.Compound, error) {
	var raw map[string]interface{}
	if err := c.dec.Decode(&raw); err != nil {
		return tag.Compound{}, err
	}
	fields, err := toTag(raw)
	if err != nil {
		return tag.Compound{}, err
	}
	return tag.NewCompound(fields.(map[string]interface{})), nil
}

func (c *jsonCodec) Write(rec tag.Compound) error {
	return c.enc.Encode(rec)
}

type yamlCodec struct {
	dec *yaml.Decoder
	enc *yaml.Encoder
}

func (c *yamlCodec) Read() (tag.Compound, error) {
	var raw map[string]interface{}
	if err := c.dec.Decode(&raw); err != nil {
		return tag.Compound{}, err
	}
	fields, err := toTag(raw)
	if err != nil {
		return tag.Compound{}, err
	}
	return tag.NewCompound(fields.(map[string]interface{})), nil
}

func (c *yamlCodec) Write(rec tag.Compound) error {
	return c.enc.Encode(map[string]interface{}(rec.ToMutable()))
}

// toTag converts a decoded document into tag values. Integers become int32
// when they fit, int64 otherwise.
func toTag(v interface{}) (interface{}, error) {
	switch n := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(n))
		for k, v := range n {
			tv, err := toTag(v)
			if err != nil {
				return nil, errors.Wrap(err, k)
			}
			m[k] = tv
		}
		return m, nil
	case []interface{}:
		s := make([]interface{}, len(n))
		for i, v := range n {
			tv, err := toTag(v)
			if err != nil {
				return nil, errors.Wrapf(err, "%d", i)
			}
			s[i] = tv
		}
		return s, nil
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return intTag(i), nil
		}
		f, err := n.Float64()
		if err != nil {
			return nil, errors.Wrap(errors.ErrInput, err.Error())
		}
		return f, nil
	case int:
		return intTag(int64(n)), nil
	case int64:
		return intTag(n), nil
	case uint64:
		if n > math.MaxInt64 {
			return nil, errors.Wrapf(errors.ErrOverflow, "integer %d", n)
		}
		return intTag(int64(n)), nil
	case string, bool, float64, nil:
		return n, nil
	}
	return nil, errors.WithType(errors.ErrType, v)
}

func intTag(i int64) interface{} {
	if i >= math.MinInt32 && i <= math.MaxInt32 {
		return int32(i)
	}
	return i
}
