package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/ladderfall/grid"
	"github.com/milk9111/ladderfall/movement"
	"github.com/milk9111/ladderfall/tile"
)

var (
	backgroundColor = color.RGBA{R: 24, G: 26, B: 34, A: 255}
	solidColor      = color.RGBA{R: 110, G: 110, B: 130, A: 255}
	platformColor   = color.RGBA{R: 150, G: 120, B: 80, A: 255}
	ladderColor     = color.RGBA{R: 200, G: 170, B: 90, A: 255}
	otherColor      = color.RGBA{R: 90, G: 160, B: 110, A: 255}
	playerColor     = color.RGBA{R: 230, G: 90, B: 80, A: 255}
	gridColor       = color.RGBA{R: 255, G: 255, B: 255, A: 24}
	destColor       = color.RGBA{R: 80, G: 200, B: 255, A: 160}
)

// toScreen maps a y-up tile coordinate to screen pixels around the camera.
func (g *Game) toScreen(x, y float64) (float32, float32) {
	sx := (x-g.camX)*tileSize + baseWidth/2
	sy := (g.camY-y)*tileSize + baseHeight/2
	return float32(sx), float32(sy)
}

// cellRect returns the screen rectangle of cell p, whose centre is (p.X, p.Y).
func (g *Game) cellRect(x, y float64) (float32, float32, float32) {
	sx, sy := g.toScreen(x-0.5, y+0.5)
	return sx, sy, tileSize
}

func tileColor(def tile.Definition) (color.Color, bool) {
	switch {
	case def.Climbable:
		return ladderColor, true
	case def.CollidesHorizontally():
		return solidColor, true
	case def.ProvidesPlatform():
		return platformColor, true
	case def.Name == "air":
		return nil, false
	default:
		return otherColor, true
	}
}

func (g *Game) drawTiles(screen *ebiten.Image) {
	tiles := g.sim.Tiles
	b := tiles.Bounds()
	for y := b.Y; y < b.Y+b.Height; y++ {
		for x := b.X; x < b.X+b.Width; x++ {
			p := grid.Pos{X: x, Y: y}
			sx, sy, size := g.cellRect(float64(x), float64(y))
			if g.opts.Debug {
				vector.StrokeRect(screen, sx, sy, size, size, 1, gridColor, false)
			}
			def := tiles.Get(p)
			clr, ok := tileColor(def)
			if !ok {
				continue
			}
			if def.Climbable {
				vector.StrokeLine(screen, sx+size*0.25, sy, sx+size*0.25, sy+size, 2, clr, false)
				vector.StrokeLine(screen, sx+size*0.75, sy, sx+size*0.75, sy+size, 2, clr, false)
				vector.StrokeLine(screen, sx+size*0.25, sy+size*0.5, sx+size*0.75, sy+size*0.5, 2, clr, false)
				continue
			}
			if !def.CollidesHorizontally() && def.ProvidesPlatform() {
				vector.DrawFilledRect(screen, sx, sy, size, size*0.25, clr, false)
				continue
			}
			vector.DrawFilledRect(screen, sx, sy, size, size, clr, false)
		}
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image) {
	steering := g.sim.Steering()
	pos := g.sim.Body().Position
	w := float32(steering.Dimens.X) * tileSize
	h := float32(steering.Dimens.Y) * tileSize
	sx, sy := g.toScreen(pos.X-0.5, pos.Y-0.5+float64(steering.Dimens.Y))
	vector.DrawFilledRect(screen, sx, sy, w, h, playerColor, false)

	if g.opts.Debug {
		dx, dy, size := g.cellRect(float64(steering.Destination.X), float64(steering.Destination.Y))
		vector.StrokeRect(screen, dx, dy, size, size, 2, destColor, false)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %.1f  tick: %d", ebiten.ActualTPS(), g.sim.Tick()))
	if !g.opts.Debug {
		return
	}
	s := g.sim.Steering()
	text := fmt.Sprintf("mode: %s  pos: %v  dest: %v  facing: %s",
		s.Mode.Kind, s.Pos, s.Destination, s.Facing.X)
	if s.Mode.Kind == movement.Jumping || s.Mode.Kind == movement.Falling {
		text += fmt.Sprintf("\nx: %s  startY: %.3f  elapsed: %.3f", s.Mode.XMovement, s.Mode.StartingY, s.Mode.Elapsed)
	}
	text += fmt.Sprintf("\nhistory: %d  sounds: %v", g.sim.History.Len(), g.lastSounds)
	ebitenutil.DebugPrintAt(screen, text, 0, 20)
}
