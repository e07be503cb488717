package service

import (
	"math"

	"netsize-service/internal/sizing/model"
)

const (
	cmPerInch     = 2.54
	cmPerFoot     = 30.48
	inchesPerFoot = 12
)

// NormalizeToCm переводит пару размеров в сантиметры.
func NormalizeToCm(h, w float64, unit model.Unit) (float64, float64) {
	switch unit {
	case model.Inch:
		return h * cmPerInch, w * cmPerInch
	case model.Feet:
		return h * cmPerFoot, w * cmPerFoot
	default:
		return h, w
	}
}

// InchesToFeet — футовый эквивалент для поиска по футовым позициям каталога.
func InchesToFeet(h, w float64) (float64, float64) {
	return h / inchesPerFoot, w / inchesPerFoot
}

// RoundHalf округляет до ближайших 0.5; половины вверх.
func RoundHalf(v float64) float64 {
	return math.Floor(v*2+0.5) / 2
}
