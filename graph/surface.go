package graph

// Surface is the 1-bit drawing capability a chart renders through.
//
// Coordinates follow the usual framebuffer convention (origin top-left, Y down).
// Draw colour 1 sets pixels, 0 clears them; text is drawn transparently in the
// current draw colour with its baseline at the cursor.
type Surface interface {
	SetDrawColor(c uint8)

	DrawPixel(x, y int16)
	DrawLine(x0, y0, x1, y1 int16)
	DrawHLine(x, y, w int16)
	DrawVLine(x, y, h int16)
	DrawBox(x, y, w, h int16)

	// SetClipWindow confines drawing to [x0, x1) x [y0, y1).
	SetClipWindow(x0, y0, x1, y1 int16)
	SetMaxClipWindow()

	SetCursor(x, y int16)
	Print(s string)
	StrWidth(s string) int16
}
