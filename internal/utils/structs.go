package utils

import "reflect"

var ColumnTag = "db"

// StructTagValues lists the column names of a db-tagged struct in field
// order. Untagged embedded structs are flattened into the parent.
func StructTagValues(input any, omit ...string) []string {

	targetValue := reflect.ValueOf(input)
	if targetValue.Kind() == reflect.Ptr {
		targetValue = targetValue.Elem()
	}

	if targetValue.Kind() != reflect.Struct {
		panic("input must be a pointer to a struct or a struct")
	}

	result := make([]string, 0, targetValue.NumField())
	walkColumns(targetValue, func(tag string, _ reflect.Value) {
		for _, o := range omit {
			if o == tag {
				return
			}
		}
		result = append(result, tag)
	})

	return result

}

// StructToMap maps column name to field value for a db-tagged struct.
func StructToMap(input any) map[string]any {

	result := make(map[string]any)

	itemValue := reflect.ValueOf(input)
	if itemValue.Kind() == reflect.Ptr {
		itemValue = itemValue.Elem()
	}

	if itemValue.Kind() != reflect.Struct {
		panic("input must be a pointer to a struct or a struct")
	}

	walkColumns(itemValue, func(tag string, field reflect.Value) {
		result[tag] = field.Interface()
	})

	return result

}

func walkColumns(value reflect.Value, fn func(tag string, field reflect.Value)) {
	valueType := value.Type()

	for i := 0; i < value.NumField(); i++ {
		structField := valueType.Field(i)

		if structField.PkgPath != "" {
			continue
		}

		tagValue := structField.Tag.Get(ColumnTag)
		if tagValue == "-" {
			continue
		}

		if tagValue == "" {
			if structField.Anonymous && structField.Type.Kind() == reflect.Struct {
				walkColumns(value.Field(i), fn)
			}
			continue
		}

		fn(tagValue, value.Field(i))
	}
}
