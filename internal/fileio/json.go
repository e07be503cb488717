package fileio

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// readJSON читает массив плоских объектов. Числа сохраняются в кратчайшей
// записи, чтобы обратный парсинг дал то же самое значение float64.
func readJSON(r io.Reader) ([]map[string]string, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw []map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}

	out := make([]map[string]string, 0, len(raw))
	for _, obj := range raw {
		m := make(map[string]string, len(obj))
		for k, v := range obj {
			m[k] = jsonScalar(v)
		}
		out = append(out, m)
	}
	return out, nil
}

func jsonScalar(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return normalizeCell(t)
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}
