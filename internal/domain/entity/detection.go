package entity

// Detection — один сырой результат детектора: класс, уверенность и область на снимке
type Detection struct {
	ClassID    int     // индекс класса модели
	Confidence float64 // уверенность модели, 0..1
	Box        Box     // область на снимке
}

// Box представляет прямоугольную область на снимке
type Box struct {
	X      int // координата X левого верхнего угла
	Y      int // координата Y левого верхнего угла
	Width  int // ширина области в пикселях
	Height int // высота области в пикселях
}

// Center возвращает координаты центра области
func (b Box) Center() (x, y int) {
	return b.X + b.Width/2, b.Y + b.Height/2
}
