package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// CheckBounds reports whether the body's center has left the playable band:
// below the ground line (screenHeight - groundMargin) or above the top edge.
// Points exactly on either limit are still inside.
func CheckBounds(center core.Vec, screenHeight, groundMargin float64) bool {
	return center.Y > screenHeight-groundMargin || center.Y < 0
}

// CheckObstacles reports whether the body's center lies inside any rectangle.
// Only the center point is tested, not the body's box, so the bird may clip a
// pipe visually without dying; edges count as a hit.
func CheckObstacles(center core.Vec, rects ...core.RectF) bool {
	for _, r := range rects {
		if r.ContainsPoint(center) {
			return true
		}
	}
	return false
}
