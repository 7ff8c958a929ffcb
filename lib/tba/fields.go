package tba

import (
	"reflect"
	"strings"
)

// fieldByTag resolves mapping-style access over a record's field set: name
// is matched against json tags, so lookups use the same names the API wire
// format does.
func fieldByTag(record any, name string) (any, bool) {
	v := reflect.ValueOf(record)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, false
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		tag, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if tag == name {
			return v.Field(i).Interface(), true
		}
	}
	return nil, false
}
