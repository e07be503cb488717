package model

import (
	"fmt"
	"strings"

	"netsize-service/internal/utils"
)

// Unit — единица измерения запроса или позиции каталога.
type Unit string

const (
	Feet Unit = "Feet"
	Inch Unit = "Inch"
	Cm   Unit = "cm"
)

// ParseUnit принимает "feet"/"ft", "inch"/"in"/"inches", "cm" в любом регистре.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "feet", "foot", "ft":
		return Feet, nil
	case "inch", "inches", "in":
		return Inch, nil
	case "cm", "centimeter", "centimeters":
		return Cm, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
}

// Color хранится в верхнем регистре.
type Color string

const (
	Black Color = "BLACK"
	Grey  Color = "GREY"
	Brown Color = "BROWN"
)

func ParseColor(s string) (Color, error) {
	switch c := Color(strings.ToUpper(strings.TrimSpace(s))); c {
	case Black, Grey, Brown:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
}

// CatalogEntry — один производимый размер сетки.
type CatalogEntry struct {
	Height       float64 `json:"height"`
	Width        float64 `json:"width"`
	Unit         Unit    `json:"unit"` // Feet | cm
	Color        Color   `json:"color"`
	DisplaySize  string  `json:"displaySize"`
	PurchaseLink string  `json:"purchaseLink"`
}

// DoorRequest — одна строка формы.
type DoorRequest struct {
	Index  int     `json:"door"` // 1-based
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
	Unit   Unit    `json:"unit"`
	Color  Color   `json:"color"`
}

// Size — "h x w unit" в единицах запроса.
func (r DoorRequest) Size() string {
	return fmt.Sprintf("%s x %s %s", utils.FormatFloat(r.Height), utils.FormatFloat(r.Width), r.Unit)
}

type Kind string

const (
	KindInvalid         Kind = "invalid"
	KindExact           Kind = "exact"
	KindExceeded        Kind = "exceeded"
	KindClosest         Kind = "closest"
	KindClosestExceeded Kind = "closest_exceeded"
	KindNoMatch         Kind = "no_match"
)

// Outcome — результат сопоставления одного DoorRequest. Поля заполняются по Kind:
//
//	KindInvalid         Err
//	KindExact           Entry, Note
//	KindExceeded        HeightCm, WidthCm (округлены до 0.5)
//	KindClosest         Entry, Converted*, ShowConverted
//	KindClosestExceeded Entry, Converted*
//	KindNoMatch         —
type Outcome struct {
	Request DoorRequest
	Kind    Kind

	Entry *CatalogEntry
	Note  string

	HeightCm float64
	WidthCm  float64

	Converted       string
	ConvertedHeight float64
	ConvertedWidth  float64
	ShowConverted   bool

	Err error
}

// OrderLine — строка заказа для валидной двери.
type OrderLine struct {
	DoorNumber int    `json:"doorNumber"`
	Size       string `json:"size"`
}

// Batch — свёртка результатов одного расчёта.
type Batch struct {
	Outcomes []Outcome
	Exceeded bool
	Orders   []OrderLine
}
