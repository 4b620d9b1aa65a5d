package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions per ink
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbShip       = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbProjectile = tcell.NewRGBColor(50, 255, 50)   // Bright Green
	RgbAsteroid   = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbDebris     = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbStatusBar  = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbStatusBg   = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbShipDeadBg = tcell.NewRGBColor(200, 50, 50)   // Red when the ship is lost
)

// inkStyle returns the cell style for an ink over the default background
func inkStyle(ink Ink) tcell.Style {
	base := tcell.StyleDefault.Background(RgbBackground)
	switch ink {
	case InkShip:
		return base.Foreground(RgbShip)
	case InkProjectile:
		return base.Foreground(RgbProjectile)
	case InkAsteroid:
		return base.Foreground(RgbAsteroid)
	case InkDebris:
		return base.Foreground(RgbDebris)
	case InkStatus:
		return tcell.StyleDefault.Foreground(RgbStatusBar).Background(RgbStatusBg)
	case InkAlert:
		return tcell.StyleDefault.Foreground(RgbStatusBar).Background(RgbShipDeadBg)
	default:
		return base
	}
}
