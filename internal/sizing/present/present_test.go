package present

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netsize-service/internal/sizing/model"
)

var p = New("ArmorX")

func entry(h, w float64, u model.Unit, c model.Color) *model.CatalogEntry {
	return &model.CatalogEntry{
		Height: h, Width: w, Unit: u, Color: c,
		DisplaySize:  strings.TrimSpace(pair(h, w)),
		PurchaseLink: "https://shop/item",
	}
}

func TestRender_Exact(t *testing.T) {
	o := model.Outcome{
		Kind:    model.KindExact,
		Request: model.DoorRequest{Index: 1, Height: 84, Width: 42, Unit: model.Inch, Color: model.Grey},
		Entry:   entry(7, 3.5, model.Feet, model.Grey),
		Note:    "(Original: 84 x 42 Inches, 12 Inches = 1 Foot)",
	}
	d := p.Render(o)
	assert.Equal(t, "Door 1", d.Title)
	assert.Equal(t, ToneSuccess, d.Tone)
	assert.Equal(t, []string{
		"Size Needed (HxW): 84 x 42 Inches (12 Inches = 1 Foot)",
		"Size To Order (HxW): 7 x 3.5 Feet",
		"Color: Grey",
	}, d.Lines)
	assert.Equal(t, "https://shop/item", d.Link)

	assert.Equal(t,
		"Door 1: Exact Match Found: No Customization Needed\n- Size: 7 x 3.5 Feet\n- Color: Grey\n- Link: https://shop/item\n(Original: 84 x 42 Inches, 12 Inches = 1 Foot)",
		p.LineItem(o))
}

func TestLineItem_ExactWithoutNote(t *testing.T) {
	o := model.Outcome{
		Kind:    model.KindExact,
		Request: model.DoorRequest{Index: 2, Height: 210, Width: 115, Unit: model.Cm, Color: model.Black},
		Entry:   entry(210, 115, model.Cm, model.Black),
	}
	assert.Equal(t,
		"Door 2: Exact Match Found: No Customization Needed\n- Size: 210 x 115 cm\n- Color: Black\n- Link: https://shop/item",
		p.LineItem(o))
	assert.Contains(t, p.Render(o).Lines, "Size Needed (HxW): 210 x 115 cm")
}

func TestRender_Exceeded(t *testing.T) {
	o := model.Outcome{
		Kind:     model.KindExceeded,
		Request:  model.DoorRequest{Index: 3, Height: 300, Width: 300, Unit: model.Cm, Color: model.Brown},
		HeightCm: 300, WidthCm: 300,
	}
	d := p.Render(o)
	assert.Equal(t, "SIZE LIMIT EXCEEDED: CONTACT Team ArmorX", d.Headline)
	assert.Contains(t, d.Lines, "Custom Size Needed in Cm: 300 x 300 Cm")
	assert.Contains(t, d.Footer, "exceeds the maximum allowable dimensions")
	assert.Empty(t, d.Link)

	assert.Equal(t,
		"Door 3: Size exceeds limit.\n- Custom Size: 300 x 300 cm\n- Custom Size in Cm: 300 x 300 Cm\n- Color: Brown",
		p.LineItem(o))
}

func TestRender_Closest(t *testing.T) {
	o := model.Outcome{
		Kind:            model.KindClosest,
		Request:         model.DoorRequest{Index: 4, Height: 6.9, Width: 3.8, Unit: model.Feet, Color: model.Black},
		Entry:           entry(210, 115, model.Cm, model.Black),
		Converted:       "210.5 x 116 cm",
		ConvertedHeight: 210.5, ConvertedWidth: 116,
		ShowConverted: true,
	}
	d := p.Render(o)
	assert.Equal(t, "CLOSEST MATCH FOUND: ORDER Using Below Link", d.Headline)
	assert.Equal(t, []string{
		"Custom Size Needed (HxW):",
		"= 6.9 x 3.8 Feet",
		"= 210.5 x 116 cm",
		"Closest Size To Order (HxW):",
		"= 210 x 115 Cm",
		"Color: Black",
	}, d.Lines)
	assert.Equal(t, "CLICK HERE: To Order Closest Size on Amazon", d.LinkLabel)

	assert.Equal(t,
		"Door 4: Closest Match Found: Customization Needed\n- Custom Size Needed: 6.9 x 3.8 Feet\n- Custom Size in Cm: 210.5 x 116 cm\n- Closest Size Ordered: 210 x 115 Cm\n- Color: Black\n- Link: https://shop/item",
		p.LineItem(o))

	o.ShowConverted = false
	assert.NotContains(t, p.Render(o).Lines, "= 210.5 x 116 cm")
}

func TestRender_ClosestExceeded(t *testing.T) {
	o := model.Outcome{
		Kind:            model.KindClosestExceeded,
		Request:         model.DoorRequest{Index: 5, Height: 217.2, Width: 117, Unit: model.Cm, Color: model.Grey},
		Entry:           entry(215, 117, model.Cm, model.Grey),
		ConvertedHeight: 217.5, ConvertedWidth: 117,
	}
	d := p.Render(o)
	assert.Equal(t, "CLOSEST MATCH NOT FOUND: FREE Customization Available", d.Headline)
	assert.Empty(t, d.Link, "closest entry is not offered")
	assert.Contains(t, d.Lines, "Custom Size Needed in Cm: 217.5 x 117 Cm")
	assert.True(t, strings.HasPrefix(d.Footer, "This is X-Large size."))
	assert.Contains(t, p.LineItem(o), "Door 5: Size exceeds limit")
}

func TestRender_NoMatchAndInvalid(t *testing.T) {
	o := model.Outcome{
		Kind:    model.KindNoMatch,
		Request: model.DoorRequest{Index: 6, Height: 150, Width: 60, Unit: model.Cm, Color: model.Black},
	}
	d := p.Render(o)
	assert.Equal(t, ToneError, d.Tone)
	assert.Equal(t, "No suitable match found for Door 6.", d.Headline)
	assert.Equal(t, []string{"Size needed: 150 x 60 cm."}, d.Lines)
	assert.Equal(t,
		"Door 6: No suitable match found.\nSize needed: 150 x 60 cm.\nPlease WhatsApp your door size for a free customization request.",
		p.LineItem(o))

	inv := model.Outcome{Kind: model.KindInvalid, Request: model.DoorRequest{Index: 7}}
	assert.Equal(t, "Invalid dimensions for Door 7. Please enter valid values.", p.Render(inv).Headline)
	assert.Equal(t, "Door 7: Invalid dimensions. Please enter valid values.", p.LineItem(inv))
}

func TestDisplayText(t *testing.T) {
	d := Display{Title: "Door 1", Headline: "H", Lines: []string{"a", "b"}, Link: "https://x", LinkLabel: "Buy", Footer: "f"}
	assert.Equal(t, "Door 1\nH\na\nb\nBuy: https://x\nf", d.Text())
	assert.Equal(t, "Door 2\nH", Display{Title: "Door 2", Headline: "H"}.Text())
}

func TestColorName(t *testing.T) {
	assert.Equal(t, "Black", ColorName(model.Black))
	assert.Equal(t, "Grey", ColorName("grey"))
	assert.Equal(t, "Brown", ColorName(model.Brown))
	assert.Equal(t, "Unknown", ColorName("PINK"))
}

func TestSupportMessage(t *testing.T) {
	assert.Empty(t, SupportMessage("ArmorX", nil, false))

	msg := SupportMessage("ArmorX", []string{"Door 1: a", "Door 2: b"}, false)
	assert.Equal(t, "Hello Team ARMORX,\n\nPlease make note of my order:\n\nDoor 1: a\n\nDoor 2: b\n\nThank you.", msg)

	msg = SupportMessage("ArmorX", []string{"Door 1: a"}, true)
	assert.Contains(t, msg, "My Door size exceeds the standard size limit.")
}

func TestSupportLink(t *testing.T) {
	msg := "Hello Team ARMORX,\n\nDoor 1: 7 x 3.5 Feet & more"
	link := SupportLink("917304692553", msg)
	require.True(t, strings.HasPrefix(link, "https://wa.me/917304692553?text="))
	assert.NotContains(t, link, "+")
	assert.Contains(t, link, "%20")

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, msg, u.Query().Get("text"))

	assert.Empty(t, SupportLink("917304692553", ""))
}

func TestQuote(t *testing.T) {
	orders := []model.OrderLine{{DoorNumber: 1, Size: "210 x 115 cm"}, {DoorNumber: 2, Size: "7 x 3.5 Feet"}}

	q := NewQuote(orders, "Deal Price")
	assert.Equal(t, 826.0, q.UnitPrice)
	assert.Equal(t, 2, q.Doors)
	assert.Equal(t, 1652.0, q.Total)

	assert.Equal(t, 799.0, DoorNetPrice("Event Price"))
	assert.Equal(t, 880.0, DoorNetPrice("whatever"))
}
