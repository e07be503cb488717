package service

import (
	"fmt"
	"math"

	"netsize-service/internal/sizing/model"
	"netsize-service/internal/utils"
)

const (
	// допуск по каждому измерению, см
	closestTolerance = 4.0
	// насколько позиция может быть уже проёма и всё ещё считаться предпочтительной, см
	narrowTolerance = 1.0
)

// ClosestHit — ближайшая позиция и размер запроса в см, округлённый до 0.5.
type ClosestHit struct {
	Entry           model.CatalogEntry
	Converted       string // "212 x 116 cm"
	ConvertedHeight float64
	ConvertedWidth  float64
}

type candidate struct {
	entry model.CatalogEntry
	dims  dims
	diff  float64
}

// FindClosestMatch ищет ближайшую сантиметровую позицию нужного цвета в пределах
// допуска 4 см по каждой стороне. Позиции не уже проёма (или уже не более чем на 1 см)
// предпочтительнее; среди равных выигрывает меньшая суммарная разница, при равенстве — первая.
func FindClosestMatch(entries []model.CatalogEntry, h, w float64, color model.Color, unit model.Unit) (ClosestHit, bool) {
	hc, wc := NormalizeToCm(h, w, unit)
	userH, userW := math.Max(hc, wc), math.Min(hc, wc)
	color = canonColor(color)

	var acceptable []candidate
	for _, e := range entries {
		if e.Unit != model.Cm || canonColor(e.Color) != color {
			continue
		}
		for _, o := range orientations(e.Height, e.Width) {
			dh := math.Abs(o.h - userH)
			dw := math.Abs(o.w - userW)
			if dh <= closestTolerance && dw <= closestTolerance {
				acceptable = append(acceptable, candidate{entry: e, dims: o, diff: dh + dw})
			}
		}
	}
	if len(acceptable) == 0 {
		return ClosestHit{}, false
	}

	preferred := make([]candidate, 0, len(acceptable))
	for _, c := range acceptable {
		if c.dims.w >= userW || userW-c.dims.w <= narrowTolerance {
			preferred = append(preferred, c)
		}
	}

	pool := acceptable
	if len(preferred) > 0 {
		pool = preferred
	}
	best := pool[0]
	for _, c := range pool[1:] {
		if c.diff < best.diff {
			best = c
		}
	}

	rh, rw := RoundHalf(userH), RoundHalf(userW)
	return ClosestHit{
		Entry:           best.entry,
		Converted:       fmt.Sprintf("%s x %s cm", utils.FormatFloat(rh), utils.FormatFloat(rw)),
		ConvertedHeight: rh,
		ConvertedWidth:  rw,
	}, true
}
