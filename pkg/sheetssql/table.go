package sheetssql

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// DecodeTable maps the rows of a sheet table onto structs of type T. The first row holds the
// column headers; fields are matched through their ssql_header tag, ignoring case and
// surrounding spaces. Rows with no cells are skipped.
func DecodeTable[T any](values [][]interface{}) ([]T, error) {
	var model T
	t := reflect.TypeOf(model)
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("sheetssql: %T is not a struct", model)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("table has no header row")
	}

	columnIndexes := make(map[string]int)
	for i, header := range values[0] {
		columnIndexes[normalizeHeader(cellString(header))] = i
	}

	fieldIndexes := make(map[int]int)
	for i := 0; i < t.NumField(); i++ {
		columnName := t.Field(i).Tag.Get("ssql_header")
		if columnName == "" {
			continue
		}
		col, ok := columnIndexes[normalizeHeader(columnName)]
		if !ok {
			return nil, fmt.Errorf("table is missing column %q", columnName)
		}
		fieldIndexes[i] = col
	}

	results := make([]T, 0, len(values)-1)
	for rowIdx, row := range values[1:] {
		if emptyRow(row) {
			continue
		}

		result := reflect.New(t).Elem()
		for fieldIdx, colIdx := range fieldIndexes {
			if colIdx >= len(row) || row[colIdx] == nil {
				continue
			}
			if err := setFieldValue(result.Field(fieldIdx), cellString(row[colIdx])); err != nil {
				// +2 for the header row and 1-based sheet rows
				return nil, fmt.Errorf("row %d, column %s: %w", rowIdx+2, t.Field(fieldIdx).Tag.Get("ssql_header"), err)
			}
		}

		results = append(results, result.Interface().(T))
	}

	return results, nil
}

// setFieldValue converts a cell to the field's type and sets it
func setFieldValue(field reflect.Value, cell string) error {
	if !field.CanSet() {
		return fmt.Errorf("field cannot be set")
	}

	cell = strings.TrimSpace(cell)

	switch field.Kind() {
	case reflect.String:
		field.SetString(cell)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if cell == "" {
			field.SetInt(0)
			return nil
		}
		intVal, err := strconv.ParseInt(cell, 10, 64)
		if err != nil {
			return fmt.Errorf("failed to parse int: %w", err)
		}
		field.SetInt(intVal)

	case reflect.Float32, reflect.Float64:
		if cell == "" {
			field.SetFloat(0)
			return nil
		}
		floatVal, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return fmt.Errorf("failed to parse float: %w", err)
		}
		field.SetFloat(floatVal)

	case reflect.Bool:
		if cell == "" {
			field.SetBool(false)
			return nil
		}
		boolVal, err := strconv.ParseBool(cell)
		if err != nil {
			return fmt.Errorf("failed to parse bool: %w", err)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}

// cellString renders a cell the way the sheet displays it; numbers arrive as float64
func cellString(v interface{}) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	default:
		return fmt.Sprint(c)
	}
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

func emptyRow(row []interface{}) bool {
	for _, v := range row {
		if strings.TrimSpace(cellString(v)) != "" {
			return false
		}
	}
	return true
}
