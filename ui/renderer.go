package ui

import (
	"fmt"

	"snake-engine/game"
	"snake-engine/game/manager"
	"snake-engine/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	maxScores     = 50 // Maximum number of scores to show in graph
	borderPadding = 10
)

var (
	colorBody = rl.Color{R: 46, G: 160, B: 67, A: 255}
	colorHead = rl.Color{R: 60, G: 208, B: 87, A: 255}
	colorFood = rl.Red
)

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	graphHeight     int32
	graphWidth      int32
	gameWidth       int32
	statsPanel      int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.resize(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
}

// resize splits the window into the board area and a stats panel on the right.
func (r *Renderer) resize(width, height int32) {
	r.screenWidth = width
	r.screenHeight = height

	r.statsPanel = width / 4
	r.gameWidth = width - r.statsPanel

	r.graphWidth = r.statsPanel - 20
	r.graphHeight = height / 5
}

// layout fits a size x size board into the game area, centred vertically.
func (r *Renderer) layout(size int) {
	if size < 1 {
		size = 1
	}
	availableWidth := r.gameWidth - borderPadding*2
	availableHeight := r.screenHeight - borderPadding*2

	r.cellSize = max(min(availableWidth/int32(size), availableHeight/int32(size)), 1)
	r.totalGridWidth = r.cellSize * int32(size)
	r.totalGridHeight = r.cellSize * int32(size)

	r.offsetX = borderPadding
	r.offsetY = (r.screenHeight - r.totalGridHeight) / 2
}

// cellOrigin is the top-left pixel of a board cell.
func (r *Renderer) cellOrigin(p types.Point) (int32, int32) {
	return r.offsetX + int32(p.X)*r.cellSize, r.offsetY + int32(p.Y)*r.cellSize
}

// Draw renders one snapshot plus the session stats panel.
func (r *Renderer) Draw(snap game.Snapshot, stats *manager.StateManager) {
	r.UpdateDimensions()
	r.layout(snap.Size())

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := max(min(r.screenHeight/45, r.statsPanel/15), 10)
	lineHeight := max(min(r.screenHeight/35, r.statsPanel/12), 12)

	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)

	for y, row := range snap.Cells {
		for x, tag := range row {
			px, py := r.cellOrigin(types.Point{X: x, Y: y})
			switch tag {
			case game.CellFood:
				rl.DrawRectangle(px, py, r.cellSize, r.cellSize, colorFood)
			case game.CellBody:
				rl.DrawRectangle(px, py, r.cellSize, r.cellSize, colorBody)
			case game.CellHead:
				rl.DrawRectangle(px, py, r.cellSize, r.cellSize, colorHead)
				v1, v2, v3 := headTriangle(px, py, r.cellSize, snap.Heading)
				rl.DrawTriangle(v1, v2, v3, rl.Yellow)
			default:
				rl.DrawRectangleLines(px, py, r.cellSize, r.cellSize, rl.Gray)
			}
		}
	}

	if snap.GameOver {
		r.drawCentered("Game Over! Press R to restart", fontSize*2, rl.Red)
	} else if snap.Paused {
		r.drawCentered("Paused", fontSize*2, rl.White)
	} else if snap.BoardFull {
		r.drawCentered("Board full!", fontSize*2, rl.Gold)
	}

	r.drawStatsPanel(snap, stats, fontSize, lineHeight)
	rl.EndDrawing()
}

func (r *Renderer) drawCentered(text string, fontSize int32, color rl.Color) {
	textWidth := int32(rl.MeasureText(text, fontSize))
	rl.DrawText(text,
		r.offsetX+(r.totalGridWidth-textWidth)/2,
		r.offsetY+(r.totalGridHeight-fontSize)/2,
		fontSize, color)
}

func (r *Renderer) drawStatsPanel(snap game.Snapshot, stats *manager.StateManager, fontSize, lineHeight int32) {
	statsX := r.gameWidth + 5
	statsY := int32(10)

	rl.DrawRectangle(statsX-5, 0, r.statsPanel+5, r.screenHeight, rl.DarkGray)

	stateColor := rl.Green
	if !snap.Running {
		stateColor = rl.Orange
	}
	if snap.GameOver {
		stateColor = rl.Red
	}

	rl.DrawText(fmt.Sprintf("Score: %d", snap.Score), statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	rl.DrawText(snap.Status(), statsX, statsY, fontSize, stateColor)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Length: %d", snap.Length), statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Tick: %d", snap.Tick), statsX, statsY, fontSize, rl.White)
	statsY += lineHeight * 3 / 2

	rl.DrawText("Session:", statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("High: %d", stats.GetHighScore()), statsX+5, statsY, fontSize, rl.Green)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Games: %d", stats.GetGamesPlayed()), statsX+5, statsY, fontSize, rl.White)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Avg: %.1f  Median: %.1f", stats.GetAverageScore(), stats.GetMedianScore()), statsX+5, statsY, fontSize, rl.Green)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Avg Duration: %.1fs", stats.GetAverageDuration().Seconds()), statsX+5, statsY, fontSize, rl.Purple)
	statsY += lineHeight * 3 / 2

	rl.DrawText("Arrows/WASD move", statsX, statsY, fontSize, rl.LightGray)
	statsY += lineHeight
	rl.DrawText("Space pause, R restart", statsX, statsY, fontSize, rl.LightGray)
	statsY += lineHeight
	rl.DrawText("Q quit", statsX, statsY, fontSize, rl.LightGray)

	r.drawScoreGraph(stats.GetScoreHistory(), stats.GetAverageScore(), statsX, fontSize)
}

func (r *Renderer) drawScoreGraph(scores []int, avgScore float64, graphX, fontSize int32) {
	graphY := r.screenHeight - r.graphHeight - fontSize*2

	rl.DrawRectangleLines(graphX, graphY, r.graphWidth, r.graphHeight, rl.White)
	rl.DrawText("Scores", graphX, graphY-fontSize-5, fontSize, rl.White)

	points := graphPoints(scores, graphX, graphY, r.graphWidth, r.graphHeight)
	for i := 1; i < len(points); i++ {
		rl.DrawLineV(points[i-1], points[i], rl.SkyBlue)
	}

	if len(scores) > 1 {
		// Dashed average line
		avgY := graphY + r.graphHeight - int32(float64(r.graphHeight)*avgScore/float64(maxScore(scores)))
		avgY = max(avgY, graphY)
		for x := graphX; x < graphX+r.graphWidth; x += 5 {
			rl.DrawLine(x, avgY, x+2, avgY, rl.Green)
		}
	}
}

// graphPoints maps the most recent maxScores scores onto the graph box,
// scaled so the best score touches the top edge.
func graphPoints(scores []int, x, y, width, height int32) []rl.Vector2 {
	if len(scores) > maxScores {
		scores = scores[len(scores)-maxScores:]
	}
	top := maxScore(scores)

	points := make([]rl.Vector2, len(scores))
	for i, s := range scores {
		points[i] = rl.Vector2{
			X: float32(x) + float32(width)*float32(i)/float32(maxScores),
			Y: float32(y+height) - float32(height)*float32(s)/float32(top),
		}
	}
	return points
}

func maxScore(scores []int) int {
	top := 1
	for _, s := range scores {
		if s > top {
			top = s
		}
	}
	return top
}

// headTriangle is the heading indicator drawn over the head cell at (x, y).
// Vertices are counter-clockwise, as raylib expects.
func headTriangle(x, y, cell int32, dir types.Direction) (rl.Vector2, rl.Vector2, rl.Vector2) {
	half := cell / 2
	v := func(px, py int32) rl.Vector2 {
		return rl.Vector2{X: float32(px), Y: float32(py)}
	}
	switch dir {
	case types.Right:
		return v(x+cell, y+half), v(x+half, y), v(x+half, y+cell)
	case types.Left:
		return v(x, y+half), v(x+half, y+cell), v(x+half, y)
	case types.Down:
		return v(x+half, y+cell), v(x+cell, y+half), v(x, y+half)
	default:
		return v(x+half, y), v(x, y+half), v(x+cell, y+half)
	}
}
