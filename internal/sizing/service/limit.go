package service

// Габарит: рама должна помещаться в 117×217 см в любой ориентации.
const (
	envelopeShort = 117.0
	envelopeLong  = 217.0
)

func WithinEnvelope(h, w float64) bool {
	return (w <= envelopeShort && h <= envelopeLong) || (w <= envelopeLong && h <= envelopeShort)
}
