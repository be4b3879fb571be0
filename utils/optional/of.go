package optional

import (
	"bytes"
	"database/sql"
	"database/sql/driver"
	"encoding"
	"fmt"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// Of 無効になりうる値Tのラッパー
type Of[T any] struct {
	V     T
	Valid bool
}

func From[T any](v T) Of[T] {
	return New(v, true)
}

func New[T any](v T, valid bool) Of[T] {
	return Of[T]{V: v, Valid: valid}
}

// ValueOrZero 有効ならば値を、無効ならばTのゼロ値を返します
func (o Of[T]) ValueOrZero() T {
	if o.Valid {
		return o.V
	}
	var zero T
	return zero
}

func (o *Of[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		var zero T
		o.V, o.Valid = zero, false
		return nil
	}

	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &o.V); err != nil {
		return err
	}

	o.Valid = true
	return nil
}

func (o Of[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(o.V)
}

func (o *Of[T]) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" || s == "null" {
		var zero T
		o.V, o.Valid = zero, false
		return nil
	}
	if err := assign(&o.V, s); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o Of[T]) MarshalText() ([]byte, error) {
	if !o.Valid {
		return []byte{}, nil
	}
	if tm, ok := any(o.V).(encoding.TextMarshaler); ok {
		return tm.MarshalText()
	}
	return []byte(fmt.Sprint(o.V)), nil
}

// Scan sql.Scannerの実装
func (o *Of[T]) Scan(src any) error {
	if src == nil {
		var zero T
		o.V, o.Valid = zero, false
		return nil
	}

	// uuid.UUID等、自身がsql.Scannerを実装している型はそれに任せる
	if sc, ok := any(&o.V).(sql.Scanner); ok {
		if err := sc.Scan(src); err != nil {
			return err
		}
		o.Valid = true
		return nil
	}

	switch v := src.(type) {
	case string:
		if err := assign(&o.V, v); err != nil {
			return err
		}
	case []byte:
		if err := assign(&o.V, string(v)); err != nil {
			return err
		}
	case int64:
		switch dst := any(&o.V).(type) {
		case *int:
			*dst = int(v)
		case *int64:
			*dst = v
		case *float64:
			*dst = float64(v)
		case *bool:
			*dst = v != 0
		default:
			return fmt.Errorf("optional: cannot scan int64 into %T", o.V)
		}
	case float64:
		dst, ok := any(&o.V).(*float64)
		if !ok {
			return fmt.Errorf("optional: cannot scan float64 into %T", o.V)
		}
		*dst = v
	case bool:
		dst, ok := any(&o.V).(*bool)
		if !ok {
			return fmt.Errorf("optional: cannot scan bool into %T", o.V)
		}
		*dst = v
	case time.Time:
		dst, ok := any(&o.V).(*time.Time)
		if !ok {
			return fmt.Errorf("optional: cannot scan time.Time into %T", o.V)
		}
		*dst = v
	default:
		return fmt.Errorf("optional: cannot scan %T into %T", src, o.V)
	}
	o.Valid = true
	return nil
}

// Value driver.Valuerの実装
func (o Of[T]) Value() (driver.Value, error) {
	if !o.Valid {
		return nil, nil
	}
	switch v := any(o.V).(type) {
	case driver.Valuer:
		return v.Value()
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	default:
		return o.V, nil
	}
}

// assign 文字列表現sを*Tに代入します
func assign[T any](dst *T, s string) error {
	if tu, ok := any(dst).(encoding.TextUnmarshaler); ok {
		return tu.UnmarshalText([]byte(s))
	}
	switch dst := any(dst).(type) {
	case *string:
		*dst = s
	case *bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		*dst = b
	case *int:
		n, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*dst = n
	case *int64:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		*dst = n
	case *float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*dst = f
	default:
		return fmt.Errorf("optional: unsupported type %T", dst)
	}
	return nil
}
