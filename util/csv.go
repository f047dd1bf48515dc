package util

import (
	"encoding/csv"
	"io"
	"os"
	"reflect"
	"strconv"
)

type csvField struct {
	index int
	row   int
	kind  reflect.Kind
}

// ReadCSVFromFile iterates typed records from a CSV file. Struct fields
// are matched to columns through their `csv` tag and the header row;
// untagged fields and unknown columns are ignored, unparsable cells
// keep the zero value. Rows with a wrong field count are skipped.
func ReadCSVFromFile[T any](filename string, delimiter rune) func(yield func(T) bool) {
	return func(yield func(T) bool) {
		file, err := os.Open(filename)
		if err != nil {
			panic(err)
		}
		defer file.Close()

		reader := csv.NewReader(file)
		reader.Comma = delimiter
		header, err := reader.Read()
		if err != nil {
			panic(err)
		}
		name_row_mapping := make(map[string]int, len(header))
		for i, name := range header {
			name_row_mapping[name] = i
		}

		var val T
		typ := reflect.TypeOf(val)
		fields := make([]csvField, 0, typ.NumField())
		for i := 0; i < typ.NumField(); i++ {
			field := typ.Field(i)
			tag := field.Tag.Get("csv")
			if tag == "" {
				continue
			}
			row, ok := name_row_mapping[tag]
			if !ok {
				continue
			}
			switch field.Type.Kind() {
			case reflect.Bool:
				fields = append(fields, csvField{i, row, reflect.Bool})
			case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
				fields = append(fields, csvField{i, row, reflect.Int})
			case reflect.Float32, reflect.Float64:
				fields = append(fields, csvField{i, row, reflect.Float64})
			case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
				fields = append(fields, csvField{i, row, reflect.Uint})
			case reflect.String:
				fields = append(fields, csvField{i, row, reflect.String})
			}
		}
		for {
			record, err := reader.Read()
			if err == io.EOF {
				break
			} else if err != nil {
				continue
			}
			t := reflect.New(typ).Elem()
			for _, field := range fields {
				if field.row >= len(record) {
					continue
				}
				value := record[field.row]
				if value == "" {
					continue
				}
				f := t.Field(field.index)
				switch field.kind {
				case reflect.Bool:
					num, _ := strconv.ParseBool(value)
					f.SetBool(num)
				case reflect.Int:
					num, _ := strconv.ParseInt(value, 10, 64)
					f.SetInt(num)
				case reflect.Uint:
					num, _ := strconv.ParseUint(value, 10, 64)
					f.SetUint(num)
				case reflect.Float64:
					num, _ := strconv.ParseFloat(value, 64)
					f.SetFloat(num)
				case reflect.String:
					f.SetString(value)
				}
			}
			if !yield(t.Interface().(T)) {
				break
			}
		}
	}
}
