package users

import (
	"errors"
	"reflect"
	"time"

	"go.appointy.com/gqlcore/schemabuilder"
)

// RegisterScalars registers DateTime, an RFC3339-string-backed scalar
// exposing its format via @specifiedBy.
func RegisterScalars(sb *schemabuilder.Schema) {
	typ := reflect.TypeOf(time.Time{})
	if err := schemabuilder.RegisterScalar(typ, "DateTime", func(value interface{}, dest reflect.Value) error {
		v, ok := value.(string)
		if !ok {
			return errors.New("invalid type expected string")
		}

		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return err
		}

		dest.Set(reflect.ValueOf(t))

		return nil
	}, "https://tools.ietf.org/html/rfc3339"); err != nil {
		panic(err)
	}
}
