// pkg/utils/math.go
package utils

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Chebyshev возвращает дистанцию Чебышёва между клетками сетки:
// max(|dx|, |dy|). Диагональный сосед считается так же близким, как
// ортогональный.
func Chebyshev(dx, dy int) int {
	dx, dy = Abs(dx), Abs(dy)
	if dx > dy {
		return dx
	}
	return dy
}
