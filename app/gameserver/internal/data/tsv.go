package data

import (
	"encoding/csv"
	"reflect"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// decodeTSV 解析制表符分隔的模板表。
// 首行为列名，列名与结构体 `tsv` 标签对应，未声明的列忽略。
func decodeTSV[T any](data string, out *[]T) error {
	reader := csv.NewReader(strings.NewReader(data))
	reader.Comma = '\t'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return errors.Wrap(err, "read tsv")
	}
	if len(records) == 0 {
		return nil
	}

	header := records[0]
	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		colIndex[strings.TrimSpace(name)] = i
	}

	t := reflect.TypeOf(*new(T))
	type binding struct {
		field int
		col   int
	}
	bindings := make([]binding, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("tsv")
		if tag == "" {
			continue
		}
		col, ok := colIndex[tag]
		if !ok {
			continue
		}
		bindings = append(bindings, binding{field: i, col: col})
	}

	for _, record := range records[1:] {
		var row T
		rv := reflect.ValueOf(&row).Elem()
		for _, b := range bindings {
			if b.col >= len(record) {
				continue
			}
			if err := setField(rv.Field(b.field), record[b.col]); err != nil {
				return errors.Wrapf(err, "column %s", header[b.col])
			}
		}
		*out = append(*out, row)
	}
	return nil
}

// setField 宽容解析：空值与格式错误按零值处理，与表格导出工具的脏数据兼容。
func setField(fv reflect.Value, raw string) error {
	raw = strings.TrimSpace(raw)
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(raw)
	case reflect.Bool:
		fv.SetBool(raw == "TRUE" || raw == "true" || raw == "1")
	case reflect.Int32, reflect.Int64, reflect.Int:
		n, _ := strconv.ParseInt(raw, 10, 64)
		fv.SetInt(n)
	case reflect.Float64, reflect.Float32:
		f, _ := strconv.ParseFloat(raw, 64)
		fv.SetFloat(f)
	case reflect.Slice:
		return setSequence(fv, raw)
	default:
		return errors.Newf("unsupported field kind %s", fv.Kind())
	}
	return nil
}

// setSequence 解析逗号分隔序列，如 "1,2,3"。
func setSequence(fv reflect.Value, raw string) error {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := reflect.MakeSlice(fv.Type(), 0, len(parts))
	for _, part := range parts {
		ev := reflect.New(fv.Type().Elem()).Elem()
		switch ev.Kind() {
		case reflect.String:
			ev.SetString(strings.TrimSpace(part))
		case reflect.Int32, reflect.Int64, reflect.Int:
			n, _ := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			ev.SetInt(n)
		case reflect.Float64:
			f, _ := strconv.ParseFloat(strings.TrimSpace(part), 64)
			ev.SetFloat(f)
		default:
			return errors.Newf("unsupported sequence element kind %s", ev.Kind())
		}
		out = reflect.Append(out, ev)
	}
	fv.Set(out)
	return nil
}
