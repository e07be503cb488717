package service

import (
	"fmt"
	"math"
	"reflect"

	"netsize-service/internal/sizing/model"
)

// Catalog — источник позиций для расчёта.
type Catalog interface {
	Entries() []model.CatalogEntry
}

// Evaluate сопоставляет каждую дверь с каталогом. Порядок результатов совпадает
// с порядком запросов, на каждый запрос ровно один результат. Невалидный запрос
// не прерывает пачку. Без каталога не считается ничего.
func Evaluate(requests []model.DoorRequest, cat Catalog) ([]model.Outcome, error) {
	if isNilCatalog(cat) {
		return nil, fmt.Errorf("evaluate: %w", model.ErrCatalogUnavailable)
	}
	entries := cat.Entries()

	out := make([]model.Outcome, 0, len(requests))
	for _, req := range requests {
		out = append(out, evaluateOne(entries, req))
	}
	return out, nil
}

func evaluateOne(entries []model.CatalogEntry, req model.DoorRequest) model.Outcome {
	req.Color = canonColor(req.Color)
	o := model.Outcome{Request: req}

	if !validDimension(req.Height) || !validDimension(req.Width) {
		o.Kind = model.KindInvalid
		o.Err = fmt.Errorf("door %d: %w", req.Index, model.ErrInvalidDimension)
		return o
	}

	hc, wc := NormalizeToCm(req.Height, req.Width, req.Unit)

	if hit, ok := FindExactMatch(entries, req.Height, req.Width, req.Color, req.Unit); ok {
		e := hit.Entry
		o.Kind = model.KindExact
		o.Entry = &e
		o.Note = hit.Note
		o.HeightCm, o.WidthCm = hc, wc
		return o
	}

	if !WithinEnvelope(hc, wc) {
		o.Kind = model.KindExceeded
		o.HeightCm, o.WidthCm = RoundHalf(hc), RoundHalf(wc)
		return o
	}

	hit, ok := FindClosestMatch(entries, req.Height, req.Width, req.Color, req.Unit)
	if !ok {
		o.Kind = model.KindNoMatch
		o.HeightCm, o.WidthCm = hc, wc
		return o
	}
	return closestOutcome(o, hc, wc, hit)
}

// closestOutcome повторно проверяет габарит, но уже по округлённому размеру.
func closestOutcome(o model.Outcome, hc, wc float64, hit ClosestHit) model.Outcome {
	e := hit.Entry
	o.Entry = &e
	o.HeightCm, o.WidthCm = hc, wc
	o.Converted = hit.Converted
	o.ConvertedHeight, o.ConvertedWidth = hit.ConvertedHeight, hit.ConvertedWidth

	if !WithinEnvelope(hit.ConvertedHeight, hit.ConvertedWidth) {
		o.Kind = model.KindClosestExceeded
		return o
	}
	o.Kind = model.KindClosest
	o.ShowConverted = o.Request.Unit == model.Feet || o.Request.Unit == model.Inch
	return o
}

func validDimension(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// (*catalog.Catalog)(nil) в интерфейсе — тоже отсутствие каталога.
func isNilCatalog(cat Catalog) bool {
	if cat == nil {
		return true
	}
	v := reflect.ValueOf(cat)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
