package preview

import "math"

// Camera is a flat 2D viewport over the contact sheet.
type Camera struct {
	X, Y    float64 // sheet position at the viewport centre
	Zoom    float64 // 1.0 = one sheet pixel per screen pixel
	MinZoom float64
	MaxZoom float64
	ScreenW int
	ScreenH int
	Speed   float64 // pan speed (screen pixels per second)
}

// NewCamera creates a camera with default settings
func NewCamera(screenW, screenH int) *Camera {
	return &Camera{
		Zoom:    1.0,
		MinZoom: 0.25,
		MaxZoom: 8.0,
		ScreenW: screenW,
		ScreenH: screenH,
		Speed:   500,
	}
}

// Pan moves the camera by a screen-pixel delta
func (c *Camera) Pan(dx, dy float64) {
	c.X += dx / c.Zoom
	c.Y += dy / c.Zoom
}

// SetZoom sets zoom level with clamping
func (c *Camera) SetZoom(z float64) {
	c.Zoom = math.Max(c.MinZoom, math.Min(c.MaxZoom, z))
}

// ZoomAt zooms by delta while keeping the sheet point under the cursor fixed.
func (c *Camera) ZoomAt(delta float64, screenX, screenY int) {
	wx, wy := c.ScreenToWorld(screenX, screenY)
	c.SetZoom(c.Zoom + delta)
	wx2, wy2 := c.ScreenToWorld(screenX, screenY)
	c.X += wx - wx2
	c.Y += wy - wy2
}

// CenterOn centres the camera on a sheet position
func (c *Camera) CenterOn(wx, wy float64) {
	c.X, c.Y = wx, wy
}

// Fit centres a w x h sheet and picks the largest zoom that shows all of it.
func (c *Camera) Fit(w, h int) {
	c.CenterOn(float64(w)/2, float64(h)/2)
	c.SetZoom(math.Min(float64(c.ScreenW)/float64(w), float64(c.ScreenH)/float64(h)))
}

// WorldToScreen converts a sheet position to screen pixels
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	sx := (wx-c.X)*c.Zoom + float64(c.ScreenW)/2
	sy := (wy-c.Y)*c.Zoom + float64(c.ScreenH)/2
	return sx, sy
}

// ScreenToWorld converts screen pixels to a sheet position
func (c *Camera) ScreenToWorld(sx, sy int) (float64, float64) {
	wx := (float64(sx)-float64(c.ScreenW)/2)/c.Zoom + c.X
	wy := (float64(sy)-float64(c.ScreenH)/2)/c.Zoom + c.Y
	return wx, wy
}

// Transform returns the scale and translation that map sheet pixels onto
// the screen, in the order a GeoM applies them.
func (c *Camera) Transform() (scale, tx, ty float64) {
	tx, ty = c.WorldToScreen(0, 0)
	return c.Zoom, tx, ty
}
