package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"netsize-service/internal/catalog"
	"netsize-service/internal/config"
	"netsize-service/internal/middleware"
	"netsize-service/internal/sizing/model"
	"netsize-service/internal/sizing/present"
	"netsize-service/internal/sizing/service"
)

// maxDoors — верхняя граница числа дверей в одном расчёте.
const maxDoors = 50

type doorInput struct {
	Height flexFloat `json:"height"`
	Width  flexFloat `json:"width"`
	Color  string    `json:"color"`
	Unit   string    `json:"unit,omitempty"` // переопределяет общую единицу
}

type calculateRequest struct {
	Unit      string      `json:"unit"`
	PriceType string      `json:"priceType,omitempty"`
	Doors     []doorInput `json:"doors"`
}

type doorResult struct {
	Door          int                 `json:"door"`
	Kind          model.Kind          `json:"kind"`
	Display       present.Display     `json:"display"`
	LineItem      string              `json:"lineItem"`
	Entry         *model.CatalogEntry `json:"entry,omitempty"`
	Note          string              `json:"note,omitempty"`
	ConvertedSize string              `json:"convertedSize,omitempty"`
	Error         string              `json:"error,omitempty"`
}

type calculateResponse struct {
	Results        []doorResult      `json:"results"`
	Exceeded       bool              `json:"exceeded"`
	Orders         []model.OrderLine `json:"orders"`
	SupportMessage string            `json:"supportMessage,omitempty"`
	SupportLink    string            `json:"supportLink,omitempty"`
	Quote          present.Quote     `json:"quote"`
}

// Calculate возвращает http.HandlerFunc для r.Post("/calculate", ...).
func Calculate(cfg config.Config, logger zerolog.Logger, holder *catalog.Holder) http.HandlerFunc {
	pr := present.New(cfg.SupportTeam)

	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := logger.With().Str("req_id", middleware.GetRequestID(r)).Logger()

		var body calculateRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&body); err != nil {
			var tooBig *http.MaxBytesError
			if errors.As(err, &tooBig) {
				writeError(w, http.StatusRequestEntityTooLarge, "body too large", err)
				return
			}
			writeError(w, http.StatusBadRequest, "bad json", err)
			return
		}

		reqs, err := toDoorRequests(body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad request", err)
			return
		}

		// каталог проверяем до матчинга: без него пачка не считается
		cat, err := holder.Require()
		if err != nil {
			log.Warn().Err(err).Msg("calculate without catalog")
			writeError(w, http.StatusServiceUnavailable, "catalog unavailable", err)
			return
		}

		outcomes, err := service.Evaluate(reqs, cat)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, model.ErrCatalogUnavailable) {
				status = http.StatusServiceUnavailable
			}
			writeError(w, status, "evaluate failed", err)
			return
		}
		batch := service.Summarize(outcomes)

		priceType := firstNonEmpty(body.PriceType, cfg.DefaultPriceType)
		resp := calculateResponse{
			Results:  make([]doorResult, 0, len(outcomes)),
			Exceeded: batch.Exceeded,
			Orders:   batch.Orders,
			Quote:    present.NewQuote(batch.Orders, priceType),
		}
		items := make([]string, 0, len(outcomes))
		kinds := make(map[model.Kind]int)
		for _, o := range outcomes {
			res := doorResult{
				Door:          o.Request.Index,
				Kind:          o.Kind,
				Display:       pr.Render(o),
				LineItem:      pr.LineItem(o),
				Entry:         o.Entry,
				Note:          o.Note,
				ConvertedSize: o.Converted,
			}
			if o.Err != nil {
				res.Error = o.Err.Error()
			}
			resp.Results = append(resp.Results, res)
			items = append(items, res.LineItem)
			kinds[o.Kind]++
		}
		resp.SupportMessage = present.SupportMessage(cfg.SupportTeam, items, batch.Exceeded)
		resp.SupportLink = present.SupportLink(cfg.SupportPhone, resp.SupportMessage)

		if err := writeJSON(w, http.StatusOK, resp); err != nil {
			log.Error().Err(err).Msg("write json")
			return
		}

		log.Info().
			Int("doors", len(reqs)).
			Int("exact", kinds[model.KindExact]).
			Int("closest", kinds[model.KindClosest]).
			Int("exceeded", kinds[model.KindExceeded]+kinds[model.KindClosestExceeded]).
			Int("no_match", kinds[model.KindNoMatch]).
			Int("invalid", kinds[model.KindInvalid]).
			Dur("elapsed", time.Since(start)).
			Msg("calculate done")
	}
}

// toDoorRequests: разбор единиц и цветов. Размеры здесь не проверяются —
// это делает Evaluate, чтобы одна плохая дверь не ломала всю пачку.
func toDoorRequests(body calculateRequest) ([]model.DoorRequest, error) {
	if len(body.Doors) == 0 {
		return nil, errors.New("no doors")
	}
	if len(body.Doors) > maxDoors {
		return nil, fmt.Errorf("too many doors: %d > %d", len(body.Doors), maxDoors)
	}

	out := make([]model.DoorRequest, 0, len(body.Doors))
	for i, d := range body.Doors {
		unit, err := model.ParseUnit(firstNonEmpty(d.Unit, body.Unit))
		if err != nil {
			return nil, fmt.Errorf("door %d: %w", i+1, err)
		}
		color, err := model.ParseColor(d.Color)
		if err != nil {
			return nil, fmt.Errorf("door %d: %w", i+1, err)
		}
		out = append(out, model.DoorRequest{
			Index:  i + 1,
			Height: float64(d.Height),
			Width:  float64(d.Width),
			Unit:   unit,
			Color:  color,
		})
	}
	return out, nil
}

type catalogResponse struct {
	Count   int                  `json:"count"`
	Entries []model.CatalogEntry `json:"entries"`
}

// Catalog отдаёт позиции каталога; ?unit= и ?color= фильтруют выдачу.
func Catalog(logger zerolog.Logger, holder *catalog.Holder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat, err := holder.Require()
		if err != nil {
			writeError(w, http.StatusServiceUnavailable, "catalog unavailable", err)
			return
		}

		var (
			unit  model.Unit
			color model.Color
		)
		if s := r.URL.Query().Get("unit"); s != "" {
			if unit, err = model.ParseUnit(s); err != nil {
				writeError(w, http.StatusBadRequest, "bad request", err)
				return
			}
		}
		if s := r.URL.Query().Get("color"); s != "" {
			if color, err = model.ParseColor(s); err != nil {
				writeError(w, http.StatusBadRequest, "bad request", err)
				return
			}
		}

		entries := make([]model.CatalogEntry, 0, cat.Len())
		for _, e := range cat.Entries() {
			if unit != "" && e.Unit != unit {
				continue
			}
			if color != "" && e.Color != color {
				continue
			}
			entries = append(entries, e)
		}
		if err := writeJSON(w, http.StatusOK, catalogResponse{Count: len(entries), Entries: entries}); err != nil {
			logger.Error().Err(err).Str("req_id", middleware.GetRequestID(r)).Msg("write json")
		}
	}
}
