// Package catalog держит неизменяемый список производимых размеров сетки
// и умеет загрузить его из файла или по URL.
package catalog

import (
	"fmt"
	"slices"

	"netsize-service/internal/sizing/model"
	"netsize-service/internal/utils"
)

// Catalog неизменяем после New: наружу отдаются только копии.
type Catalog struct {
	entries []model.CatalogEntry
}

// New копирует entries; порядок сохраняется, он важен для матчинга.
func New(entries []model.CatalogEntry) *Catalog {
	return &Catalog{entries: slices.Clone(entries)}
}

// Entries возвращает копию позиций в порядке каталога.
func (c *Catalog) Entries() []model.CatalogEntry {
	if c == nil {
		return nil
	}
	return slices.Clone(c.entries)
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Skip — строка источника, не попавшая в каталог.
type Skip struct {
	Row    int    `json:"row"` // 1-based среди записей данных
	Reason string `json:"reason"`
}

// Stats — итог разбора источника.
type Stats struct {
	Rows    int
	Entries int
	Skipped []Skip
}

// FromRecords собирает каталог из плоских записей (как их отдаёт fileio).
// Записи с неположительными размерами, неизвестной единицей или цветом пропускаются.
func FromRecords(recs []map[string]string) (*Catalog, Stats) {
	st := Stats{Rows: len(recs)}
	entries := make([]model.CatalogEntry, 0, len(recs))
	for i, rec := range recs {
		e, err := entryFromRecord(rec)
		if err != nil {
			st.Skipped = append(st.Skipped, Skip{Row: i + 1, Reason: err.Error()})
			continue
		}
		entries = append(entries, e)
	}
	st.Entries = len(entries)
	return &Catalog{entries: entries}, st
}

func entryFromRecord(rec map[string]string) (model.CatalogEntry, error) {
	cols := resolveColumns(rec)

	h, okH := utils.ParseFloatLoose(rec[cols.height])
	w, okW := utils.ParseFloatLoose(rec[cols.width])
	if !okH || !okW || h <= 0 || w <= 0 {
		return model.CatalogEntry{}, fmt.Errorf("%w: %q x %q", model.ErrInvalidDimension, rec[cols.height], rec[cols.width])
	}

	unit, err := model.ParseUnit(rec[cols.unit])
	if err != nil {
		return model.CatalogEntry{}, err
	}
	if unit == model.Inch {
		// в каталоге бывают только футы и сантиметры
		return model.CatalogEntry{}, fmt.Errorf("%w: %q", model.ErrUnknownUnit, rec[cols.unit])
	}

	color, err := model.ParseColor(rec[cols.color])
	if err != nil {
		return model.CatalogEntry{}, err
	}

	display := rec[cols.size]
	if display == "" {
		display = utils.FormatFloat(h) + " x " + utils.FormatFloat(w)
	}

	return model.CatalogEntry{
		Height:       h,
		Width:        w,
		Unit:         unit,
		Color:        color,
		DisplaySize:  display,
		PurchaseLink: rec[cols.link],
	}, nil
}
