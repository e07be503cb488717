package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netsize-service/internal/catalog"
	"netsize-service/internal/config"
	"netsize-service/internal/sizing/model"
)

var testCfg = config.Config{SupportPhone: "917304692553", SupportTeam: "ArmorX", DefaultPriceType: "Selling Price"}

func loadedHolder() *catalog.Holder {
	h := catalog.NewHolder()
	h.Set(catalog.New([]model.CatalogEntry{
		{Height: 7, Width: 3.5, Unit: model.Feet, Color: model.Grey, DisplaySize: "7 x 3.5", PurchaseLink: "https://shop/grey-7"},
		{Height: 210, Width: 115, Unit: model.Cm, Color: model.Black, DisplaySize: "210 x 115", PurchaseLink: "https://shop/black-210"},
		{Height: 210, Width: 115, Unit: model.Cm, Color: model.Brown, DisplaySize: "210 x 115", PurchaseLink: "https://shop/brown-210"},
	}))
	return h
}

func postCalculate(t *testing.T, h *catalog.Holder, body string) (*httptest.ResponseRecorder, calculateResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/calculate", strings.NewReader(body))
	Calculate(testCfg, zerolog.Nop(), h)(rec, req)

	var resp calculateResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestCalculate(t *testing.T) {
	rec, resp := postCalculate(t, loadedHolder(), `{
		"unit": "cm",
		"priceType": "Event Price",
		"doors": [
			{"height": 210, "width": 115, "color": "Black"},
			{"height": "212", "width": "116", "color": "brown"},
			{"height": "", "width": 100, "color": "Grey"},
			{"height": 7, "width": 3.5, "color": "Grey", "unit": "Feet"}
		]
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Len(t, resp.Results, 4)

	assert.Equal(t, model.KindExact, resp.Results[0].Kind)
	assert.Equal(t, "https://shop/black-210", resp.Results[0].Entry.PurchaseLink)

	assert.Equal(t, model.KindClosest, resp.Results[1].Kind)
	assert.Equal(t, "212 x 116 cm", resp.Results[1].ConvertedSize)
	assert.Equal(t, "CLOSEST MATCH FOUND: ORDER Using Below Link", resp.Results[1].Display.Headline)

	assert.Equal(t, model.KindInvalid, resp.Results[2].Kind)
	assert.Contains(t, resp.Results[2].Error, "invalid dimension")

	assert.Equal(t, model.KindExact, resp.Results[3].Kind)
	assert.Equal(t, "https://shop/grey-7", resp.Results[3].Entry.PurchaseLink)

	assert.False(t, resp.Exceeded)
	assert.Len(t, resp.Orders, 3)
	assert.Equal(t, 799.0, resp.Quote.UnitPrice)
	assert.Equal(t, 3, resp.Quote.Doors)

	assert.True(t, strings.HasPrefix(resp.SupportMessage, "Hello Team ARMORX,\n\nPlease make note of my order:"))
	u, err := url.Parse(resp.SupportLink)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", u.Host)
	assert.Equal(t, resp.SupportMessage, u.Query().Get("text"))
}

func TestCalculate_Exceeded(t *testing.T) {
	rec, resp := postCalculate(t, loadedHolder(), `{"unit":"cm","doors":[{"height":300,"width":300,"color":"black"}]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Exceeded)
	assert.Equal(t, model.KindExceeded, resp.Results[0].Kind)
	assert.Contains(t, resp.SupportMessage, "exceeds the standard size limit")
	assert.Equal(t, 880.0, resp.Quote.UnitPrice, "default price type from config")
}

func TestCalculate_BadRequests(t *testing.T) {
	cases := map[string]string{
		"broken json":   `{"unit":`,
		"no doors":      `{"unit":"cm","doors":[]}`,
		"unknown unit":  `{"unit":"yards","doors":[{"height":1,"width":1,"color":"black"}]}`,
		"unknown color": `{"unit":"cm","doors":[{"height":1,"width":1,"color":"white"}]}`,
		"unknown field": `{"unit":"cm","windows":2}`,
		"bad number":    `{"unit":"cm","doors":[{"height":true,"width":1,"color":"black"}]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec, _ := postCalculate(t, loadedHolder(), body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCalculate_TooManyDoors(t *testing.T) {
	doors := strings.Repeat(`{"height":210,"width":115,"color":"black"},`, maxDoors+1)
	body := `{"unit":"cm","doors":[` + strings.TrimSuffix(doors, ",") + `]}`
	rec, _ := postCalculate(t, loadedHolder(), body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCalculate_CatalogUnavailable(t *testing.T) {
	rec, _ := postCalculate(t, catalog.NewHolder(), `{"unit":"cm","doors":[{"height":210,"width":115,"color":"black"}]}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "catalog unavailable", body.Error)
}

func TestCatalogHandler(t *testing.T) {
	get := func(h *catalog.Holder, target string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		Catalog(zerolog.Nop(), h)(rec, httptest.NewRequest(http.MethodGet, target, nil))
		return rec
	}

	rec := get(loadedHolder(), "/catalog")
	require.Equal(t, http.StatusOK, rec.Code)
	var all catalogResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Equal(t, 3, all.Count)

	rec = get(loadedHolder(), "/catalog?unit=cm&color=brown")
	require.Equal(t, http.StatusOK, rec.Code)
	var filtered catalogResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &filtered))
	require.Equal(t, 1, filtered.Count)
	assert.Equal(t, "https://shop/brown-210", filtered.Entries[0].PurchaseLink)

	assert.Equal(t, http.StatusBadRequest, get(loadedHolder(), "/catalog?color=pink").Code)
	assert.Equal(t, http.StatusServiceUnavailable, get(catalog.NewHolder(), "/catalog").Code)
}

func TestFlexFloat(t *testing.T) {
	var v struct {
		A flexFloat `json:"a"`
		B flexFloat `json:"b"`
		C flexFloat `json:"c"`
		D flexFloat `json:"d"`
	}
	require.NoError(t, json.NewDecoder(io.NopCloser(strings.NewReader(`{"a":210.5,"b":"210,5","c":null,"d":"x"}`))).Decode(&v))
	assert.Equal(t, flexFloat(210.5), v.A)
	assert.Equal(t, flexFloat(210.5), v.B)
	assert.Zero(t, v.C)
	assert.Zero(t, v.D)
}
