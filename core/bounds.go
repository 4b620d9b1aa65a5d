package core

// Bounds is the viewport extent consumed by wrap-around, supplied once per session
type Bounds struct {
	Width, Height float64
}
