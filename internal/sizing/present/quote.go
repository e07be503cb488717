package present

import "netsize-service/internal/sizing/model"

// Фиксированные цены на дверную сетку, по типу цены.
var doorNetPrices = map[string]float64{
	"Selling Price": 880,
	"Deal Price":    826,
	"Event Price":   799,
}

const defaultDoorNetPrice = 880

// DoorNetPrice — цена за дверь; неизвестный тип цены даёт обычную цену.
func DoorNetPrice(priceType string) float64 {
	if p, ok := doorNetPrices[priceType]; ok {
		return p
	}
	return defaultDoorNetPrice
}

// Quote — предварительный расчёт стоимости заказа.
type Quote struct {
	PriceType string            `json:"priceType"`
	UnitPrice float64           `json:"unitPrice"`
	Doors     int               `json:"doors"`
	Total     float64           `json:"total"`
	Lines     []model.OrderLine `json:"lines"`
}

func NewQuote(orders []model.OrderLine, priceType string) Quote {
	unit := DoorNetPrice(priceType)
	return Quote{
		PriceType: priceType,
		UnitPrice: unit,
		Doors:     len(orders),
		Total:     unit * float64(len(orders)),
		Lines:     orders,
	}
}
