package ui

const (
	minCols = 44
	minRows = 16
)

func DetermineLayoutMode(cols, rows int) LayoutMode {
	if cols < minCols || rows < minRows {
		return LayoutTooSmall
	}
	if cols >= 80 && rows >= 22 {
		return LayoutWide
	}
	return LayoutCompact
}
