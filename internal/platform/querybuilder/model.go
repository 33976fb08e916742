package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

type modelField struct {
	index  int
	column string
}

var modelFields sync.Map // reflect.Type -> []modelField

// InsertModel builds an INSERT from the exported `db`-tagged fields of model.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return "", nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return "", nil, fmt.Errorf("model must be struct, got %s", value.Kind())
	}

	fields := fieldsOf(value.Type())
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("model %s has no db columns", value.Type())
	}

	columns := make([]string, len(fields))
	values := make([]any, len(fields))
	for i, f := range fields {
		columns[i] = f.column
		values[i] = value.Field(f.index).Interface()
	}

	return InsertInto(table).Columns(columns...).Values(values...).Suffix(suffix).ToSQL()
}

func fieldsOf(typ reflect.Type) []modelField {
	if cached, ok := modelFields.Load(typ); ok {
		return cached.([]modelField)
	}

	fields := make([]modelField, 0, typ.NumField())
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		column, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		column = strings.TrimSpace(column)
		if column == "" || column == "-" {
			continue
		}
		fields = append(fields, modelField{index: i, column: column})
	}

	modelFields.Store(typ, fields)
	return fields
}
