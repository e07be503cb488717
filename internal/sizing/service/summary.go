package service

import "netsize-service/internal/sizing/model"

// Summarize сворачивает результаты пачки: был ли превышен габарит
// и строки заказа для всех валидных дверей.
func Summarize(outcomes []model.Outcome) model.Batch {
	b := model.Batch{Outcomes: outcomes}
	for _, o := range outcomes {
		if o.Kind == model.KindInvalid {
			continue
		}
		if o.Kind == model.KindExceeded {
			b.Exceeded = true
		}
		b.Orders = append(b.Orders, model.OrderLine{
			DoorNumber: o.Request.Index,
			Size:       o.Request.Size(),
		})
	}
	return b
}
