package service

// dims — пара (высота, ширина) в одних единицах.
type dims struct {
	h, w float64
}

// orientations возвращает обе ориентации пары: (a,b) и (b,a).
// Единственное место, где учитывается поворот рамы.
func orientations(a, b float64) [2]dims {
	return [2]dims{{h: a, w: b}, {h: b, w: a}}
}

// sameSize — точное равенство с точностью до перестановки H/W.
func sameSize(entryH, entryW, h, w float64) bool {
	for _, o := range orientations(entryH, entryW) {
		if o.h == h && o.w == w {
			return true
		}
	}
	return false
}
