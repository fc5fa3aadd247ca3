package common

import (
	"errors"
	"reflect"
)

// GetFieldValues flattens a write-shape struct into positional query args,
// in field declaration order. Upsert shapes in models keep their field
// order aligned with the insert column list for this reason.
func GetFieldValues(i interface{}) ([]interface{}, error) {
	entity := reflect.ValueOf(i)
	if entity.Kind() != reflect.Struct {
		return nil, errors.New("invalid entity for get field values")
	}

	values := make([]interface{}, entity.NumField())
	for n := 0; n < entity.NumField(); n++ {
		values[n] = entity.Field(n).Interface()
	}
	return values, nil
}
