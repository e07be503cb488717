package service

import (
	"fmt"
	"strings"

	"netsize-service/internal/sizing/model"
	"netsize-service/internal/utils"
)

// ExactHit — найденная позиция и, для дюймов, пояснение о пересчёте.
type ExactHit struct {
	Entry model.CatalogEntry
	Note  string
	Via   string // имя сработавшей стратегии
}

// exactStrategy — одна ступень поиска точного совпадения.
type exactStrategy struct {
	name    string
	applies func(unit model.Unit) bool
	find    func(entries []model.CatalogEntry, h, w float64, color model.Color, unit model.Unit) (ExactHit, bool)
}

// Порядок важен: футы, дюймы как футы, затем сантиметры для любой единицы.
var exactStrategies = []exactStrategy{
	{
		name:    "feet",
		applies: func(u model.Unit) bool { return u == model.Feet },
		find: func(entries []model.CatalogEntry, h, w float64, color model.Color, _ model.Unit) (ExactHit, bool) {
			e, ok := findSized(entries, model.Feet, h, w, color)
			return ExactHit{Entry: e}, ok
		},
	},
	{
		name:    "inch-as-feet",
		applies: func(u model.Unit) bool { return u == model.Inch },
		find: func(entries []model.CatalogEntry, h, w float64, color model.Color, _ model.Unit) (ExactHit, bool) {
			hf, wf := InchesToFeet(h, w)
			e, ok := findSized(entries, model.Feet, hf, wf, color)
			if !ok {
				return ExactHit{}, false
			}
			return ExactHit{Entry: e, Note: inchNote(h, w)}, true
		},
	},
	{
		name:    "cm",
		applies: func(model.Unit) bool { return true },
		find: func(entries []model.CatalogEntry, h, w float64, color model.Color, unit model.Unit) (ExactHit, bool) {
			hc, wc := NormalizeToCm(h, w, unit)
			e, ok := findSized(entries, model.Cm, hc, wc, color)
			return ExactHit{Entry: e}, ok
		},
	},
}

// FindExactMatch ищет позицию каталога, совпадающую с запросом точно
// (без эпсилона) с точностью до поворота. Первая сработавшая стратегия побеждает.
func FindExactMatch(entries []model.CatalogEntry, h, w float64, color model.Color, unit model.Unit) (ExactHit, bool) {
	color = canonColor(color)
	for _, s := range exactStrategies {
		if !s.applies(unit) {
			continue
		}
		if hit, ok := s.find(entries, h, w, color, unit); ok {
			hit.Via = s.name
			return hit, true
		}
	}
	return ExactHit{}, false
}

// findSized — первая в порядке каталога позиция нужной единицы и цвета с размером h×w или w×h.
func findSized(entries []model.CatalogEntry, unit model.Unit, h, w float64, color model.Color) (model.CatalogEntry, bool) {
	for _, e := range entries {
		if e.Unit != unit || canonColor(e.Color) != color {
			continue
		}
		if sameSize(e.Height, e.Width, h, w) {
			return e, true
		}
	}
	return model.CatalogEntry{}, false
}

func inchNote(h, w float64) string {
	return fmt.Sprintf("(Original: %s x %s Inches, 12 Inches = 1 Foot)", utils.FormatFloat(h), utils.FormatFloat(w))
}

func canonColor(c model.Color) model.Color {
	return model.Color(strings.ToUpper(string(c)))
}
