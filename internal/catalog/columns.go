package catalog

import (
	"regexp"
	"strings"
)

// Заголовки исходного JSON: Height(H), Width(W), Unit, Color, Size(HxW), Amazon Link.
// Через "|" — допустимые альтернативы, первая основная.
const (
	wantHeight = "Height(H)|Height"
	wantWidth  = "Width(W)|Width"
	wantUnit   = "Unit|Units"
	wantColor  = "Color|Colour"
	wantSize   = "Size(HxW)|Size|Display Size"
	wantLink   = "Amazon Link|Purchase Link|Link|URL"
)

type columns struct {
	height, width, unit, color, size, link string
}

func resolveColumns(rec map[string]string) columns {
	return columns{
		height: resolveKey(rec, wantHeight),
		width:  resolveKey(rec, wantWidth),
		unit:   resolveKey(rec, wantUnit),
		color:  resolveKey(rec, wantColor),
		size:   resolveKey(rec, wantSize),
		link:   resolveKey(rec, wantLink),
	}
}

var rxNonAlnum = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// нормализуем имя колонки: нижний регистр, без служебных символов и лишних пробелов
func normHeaderKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = rxNonAlnum.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// ищем реальный ключ в записи по желаемому имени
func resolveKey(rec map[string]string, want string) string {
	alts := strings.Split(want, "|")
	for i := range alts {
		alts[i] = strings.TrimSpace(alts[i])
	}

	// 1) как есть
	for _, a := range alts {
		if _, ok := rec[a]; ok {
			return a
		}
	}

	// 2) по нормализованному имени
	norm := make([]string, len(alts))
	for i, a := range alts {
		norm[i] = normHeaderKey(a)
	}
	for k := range rec {
		nk := normHeaderKey(k)
		for _, n := range norm {
			if nk == n {
				return k
			}
		}
	}

	// 3) ключ начинается с основного слова: "height in feet" → height.
	// Короткие слова не берём, иначе "w" найдётся где угодно.
	primary := strings.Fields(norm[0])
	if len(primary) == 0 || len(primary[0]) < 3 {
		return ""
	}
	best := ""
	for k := range rec {
		nk := normHeaderKey(k)
		if strings.HasPrefix(nk, primary[0]) && (best == "" || k < best) {
			best = k
		}
	}
	return best
}
