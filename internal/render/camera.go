package render

// Camera translates between board coordinates and screen coordinates.
// Board X (rows) maps to screen rows; board Y (columns) maps to screen
// columns, doubled because emoji occupy 2 terminal columns.
type Camera struct {
	OffsetX    int // first board row shown
	OffsetY    int // first board column shown
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera centered on board cell (cx, cy).
func NewCamera(cx, cy, viewW, viewH int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	c.Center(cx, cy)
	return c
}

// Center repositions the camera so that cell (cx, cy) is in the middle,
// never scrolling past the top-left corner.
func (c *Camera) Center(cx, cy int) {
	c.OffsetX = max(0, cx-c.ViewHeight/2)
	c.OffsetY = max(0, cy-(c.ViewWidth/2)/2)
}

// BoardToScreen converts board (bx, by) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) BoardToScreen(bx, by int) (sx, sy int, visible bool) {
	sx = (by - c.OffsetY) * 2
	sy = bx - c.OffsetX
	visible = sx >= 0 && sx+1 < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToBoard converts screen (sx, sy) to board coordinates.
func (c *Camera) ScreenToBoard(sx, sy int) (int, int) {
	return sy + c.OffsetX, sx/2 + c.OffsetY
}
