// Package present превращает результаты сопоставления в текст для экрана
// и строки для сообщения в поддержку.
package present

import (
	"fmt"
	"strings"

	"netsize-service/internal/sizing/model"
	"netsize-service/internal/utils"
)

type Tone string

const (
	ToneSuccess Tone = "success"
	ToneInfo    Tone = "info"
	ToneError   Tone = "error"
)

// Display — фрагмент для показа пользователю, без разметки.
type Display struct {
	Title     string   `json:"title"`
	Headline  string   `json:"headline"`
	Tone      Tone     `json:"tone"`
	Lines     []string `json:"lines,omitempty"`
	Link      string   `json:"link,omitempty"`
	LinkLabel string   `json:"linkLabel,omitempty"`
	Footer    string   `json:"footer,omitempty"`
}

// Text — плоский многострочный вид, для CLI и логов.
func (d Display) Text() string {
	var b strings.Builder
	b.WriteString(d.Title)
	b.WriteString("\n")
	b.WriteString(d.Headline)
	for _, l := range d.Lines {
		b.WriteString("\n")
		b.WriteString(l)
	}
	if d.Link != "" {
		fmt.Fprintf(&b, "\n%s: %s", d.LinkLabel, d.Link)
	}
	if d.Footer != "" {
		b.WriteString("\n")
		b.WriteString(d.Footer)
	}
	return b.String()
}

// Presenter знает только имя команды поддержки, которое подставляется в тексты.
type Presenter struct {
	Team string
}

func New(team string) Presenter { return Presenter{Team: team} }

// Render строит фрагмент по виду результата.
func (p Presenter) Render(o model.Outcome) Display {
	switch o.Kind {
	case model.KindExact:
		return p.exact(o)
	case model.KindExceeded:
		return p.exceeded(o)
	case model.KindClosest:
		return p.closest(o)
	case model.KindClosestExceeded:
		return p.closestExceeded(o)
	case model.KindNoMatch:
		return p.noMatch(o)
	default:
		return p.invalid(o)
	}
}

// LineItem — одна запись для сообщения в поддержку.
func (p Presenter) LineItem(o model.Outcome) string {
	r := o.Request
	i := r.Index
	color := ColorName(r.Color)

	switch o.Kind {
	case model.KindExact:
		s := fmt.Sprintf("Door %d: Exact Match Found: No Customization Needed\n- Size: %s %s\n- Color: %s\n- Link: %s",
			i, o.Entry.DisplaySize, o.Entry.Unit, color, o.Entry.PurchaseLink)
		if o.Note != "" {
			s += "\n" + o.Note
		}
		return s
	case model.KindExceeded:
		return fmt.Sprintf("Door %d: Size exceeds limit.\n- Custom Size: %s\n- Custom Size in Cm: %s Cm\n- Color: %s",
			i, r.Size(), pair(o.HeightCm, o.WidthCm), color)
	case model.KindClosest:
		return fmt.Sprintf("Door %d: Closest Match Found: Customization Needed\n- Custom Size Needed: %s\n- Custom Size in Cm: %s\n- Closest Size Ordered: %s Cm\n- Color: %s\n- Link: %s",
			i, r.Size(), o.Converted, pair(o.Entry.Height, o.Entry.Width), color, o.Entry.PurchaseLink)
	case model.KindClosestExceeded:
		return fmt.Sprintf("Door %d: Size exceeds limit: Customization Needed\n- Custom Size Needed: %s\n- Custom Size in Cm: %s Cm\n- Color: %s",
			i, r.Size(), pair(o.ConvertedHeight, o.ConvertedWidth), color)
	case model.KindNoMatch:
		return fmt.Sprintf("Door %d: No suitable match found.\nSize needed: %s.\nPlease WhatsApp your door size for a free customization request.",
			i, r.Size())
	default:
		return fmt.Sprintf("Door %d: Invalid dimensions. Please enter valid values.", i)
	}
}

func (p Presenter) exact(o model.Outcome) Display {
	r := o.Request
	needed := r.Size()
	if r.Unit == model.Inch {
		needed = fmt.Sprintf("%s Inches (12 Inches = 1 Foot)", pair(r.Height, r.Width))
	}
	return Display{
		Title:    doorTitle(r),
		Headline: "CONGRATULATIONS! YOUR EXACT SIZE IS AVAILABLE ✅",
		Tone:     ToneSuccess,
		Lines: []string{
			"Size Needed (HxW): " + needed,
			fmt.Sprintf("Size To Order (HxW): %s %s", pair(o.Entry.Height, o.Entry.Width), o.Entry.Unit),
			"Color: " + ColorName(r.Color),
		},
		Link:      o.Entry.PurchaseLink,
		LinkLabel: "CLICK HERE: To Order Directly on Amazon",
	}
}

func (p Presenter) exceeded(o model.Outcome) Display {
	r := o.Request
	return Display{
		Title:    doorTitle(r),
		Headline: "SIZE LIMIT EXCEEDED: CONTACT Team " + p.Team,
		Tone:     ToneInfo,
		Lines: []string{
			"Custom Size Needed (HxW): " + r.Size(),
			fmt.Sprintf("Custom Size Needed in Cm: %s Cm", pair(o.HeightCm, o.WidthCm)),
			"Color: " + ColorName(r.Color),
		},
		Footer: "This size exceeds the maximum allowable dimensions. " + p.shareRequest(),
	}
}

func (p Presenter) closest(o model.Outcome) Display {
	r := o.Request
	lines := []string{"Custom Size Needed (HxW):", "= " + r.Size()}
	if o.ShowConverted {
		lines = append(lines, "= "+o.Converted)
	}
	lines = append(lines,
		"Closest Size To Order (HxW):",
		fmt.Sprintf("= %s Cm", pair(o.Entry.Height, o.Entry.Width)),
		"Color: "+ColorName(r.Color),
	)
	return Display{
		Title:     doorTitle(r),
		Headline:  "CLOSEST MATCH FOUND: ORDER Using Below Link",
		Tone:      ToneInfo,
		Lines:     lines,
		Link:      o.Entry.PurchaseLink,
		LinkLabel: "CLICK HERE: To Order Closest Size on Amazon",
		Footer: fmt.Sprintf("NEED HELP & SUPPORT: Tap the WhatsApp button below to confirm your door size with Team %s "+
			"to make sure CLOSEST MATCH is a perfect fit for your door frame.", p.Team),
	}
}

func (p Presenter) closestExceeded(o model.Outcome) Display {
	r := o.Request
	return Display{
		Title:    doorTitle(r),
		Headline: "CLOSEST MATCH NOT FOUND: FREE Customization Available",
		Tone:     ToneInfo,
		Lines: []string{
			"Custom Size Needed (HxW): " + r.Size(),
			fmt.Sprintf("Custom Size Needed in Cm: %s Cm", pair(o.ConvertedHeight, o.ConvertedWidth)),
			"Color: " + ColorName(r.Color),
		},
		Footer: "This is X-Large size. " + p.shareRequest(),
	}
}

func (p Presenter) noMatch(o model.Outcome) Display {
	r := o.Request
	return Display{
		Title:    doorTitle(r),
		Headline: fmt.Sprintf("No suitable match found for Door %d.", r.Index),
		Tone:     ToneError,
		Lines:    []string{fmt.Sprintf("Size needed: %s.", r.Size())},
		Footer:   p.shareRequest(),
	}
}

func (p Presenter) invalid(o model.Outcome) Display {
	return Display{
		Title:    doorTitle(o.Request),
		Headline: fmt.Sprintf("Invalid dimensions for Door %d. Please enter valid values.", o.Request.Index),
		Tone:     ToneError,
	}
}

func (p Presenter) shareRequest() string {
	return fmt.Sprintf("Tap the WhatsApp icon below to share your customization request with Team %s. Thanks!", p.Team)
}

// ColorName — название цвета для людей.
func ColorName(c model.Color) string {
	switch model.Color(strings.ToUpper(string(c))) {
	case model.Black:
		return "Black"
	case model.Grey:
		return "Grey"
	case model.Brown:
		return "Brown"
	default:
		return "Unknown"
	}
}

func doorTitle(r model.DoorRequest) string { return fmt.Sprintf("Door %d", r.Index) }

func pair(h, w float64) string {
	return utils.FormatFloat(h) + " x " + utils.FormatFloat(w)
}
