package render

import (
	"github.com/lixenwraith/vi-asteroids/entity"
)

// ShipSides is the polygon the ship is drawn as
const ShipSides = 3

// DrawEntity issues exactly one primitive for e according to its kind
func DrawEntity(s Surface, e entity.Entity) {
	b := e.Body()
	inker, _ := s.(Inker)

	switch e.Kind() {
	case entity.KindShip:
		angle := 0.0
		if f, ok := e.(entity.Facer); ok {
			angle = f.Heading()
		}
		if inker != nil {
			inker.SetInk(InkShip)
		}
		s.DrawPolygon(ShipSides, b.Pos.X, b.Pos.Y, b.Radius, angle)

	case entity.KindProjectile:
		if inker != nil {
			inker.SetInk(InkProjectile)
		}
		s.DrawCircle(b.Pos.X, b.Pos.Y, b.Radius)

	case entity.KindDebris:
		if inker != nil {
			inker.SetInk(InkDebris)
		}
		s.DrawCircle(b.Pos.X, b.Pos.Y, b.Radius)

	case entity.KindAsteroid:
		if inker != nil {
			inker.SetInk(InkAsteroid)
		}
		s.DrawArc(b.Pos.X, b.Pos.Y, b.Radius)
	}
}
