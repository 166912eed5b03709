package pdf

import (
	"fmt"

	"github.com/go-pdf/fpdf"
)

// row is one label/value line of a key/value table. Both strings are already
// encoded for the core font.
type row struct {
	label string
	value string
}

// layout is the flowing cursor over one document. The first layout error is
// kept in err and stops further drawing.
type layout struct {
	pdf   *fpdf.Fpdf
	theme Theme
	enc   *textEncoder
	err   error
}

func (l *layout) ok() bool {
	return l.err == nil && l.enc.err == nil
}

func (l *layout) setText(style string, size float64, c Color) {
	l.pdf.SetFont(l.theme.FontFamily, style, size)
	l.pdf.SetTextColor(c.R, c.G, c.B)
}

// bottom returns the y coordinate of the page break trigger.
func (l *layout) bottom() float64 {
	_, h := l.pdf.GetPageSize()
	_, _, _, b := l.pdf.GetMargins()
	return h - b
}

// ensureRoom starts a new page unless h points of vertical space remain.
func (l *layout) ensureRoom(h float64) {
	if l.pdf.GetY()+h > l.bottom() {
		l.pdf.AddPage()
	}
}

func (l *layout) space(h float64) {
	if !l.ok() {
		return
	}
	l.pdf.Ln(h)
}

func (l *layout) title(text string) {
	if !l.ok() {
		return
	}
	s := l.theme.Title
	l.setText(s.FontStyle, s.Size, s.Color)
	l.pdf.CellFormat(0, s.LineHeight, text, "", 1, "C", false, 0, "")
	l.pdf.Ln(s.SpaceAfter)
}

// heading writes a section heading and keeps it on the same page as at least
// one line of the content that follows.
func (l *layout) heading(text string) {
	if !l.ok() {
		return
	}
	s := l.theme.Heading
	t := l.theme.Table
	l.ensureRoom(s.SpaceBefore + s.LineHeight + s.SpaceAfter + t.PaddingTop + t.LineHeight + t.PaddingBottom)
	if s.SpaceBefore > 0 {
		l.pdf.Ln(s.SpaceBefore)
	}
	l.setText(s.FontStyle, s.Size, s.Color)
	l.pdf.CellFormat(0, s.LineHeight, text, "", 1, "L", false, 0, "")
	l.pdf.Ln(s.SpaceAfter)
}

// paragraph writes wrapped body text, breaking pages as needed. An empty
// string still advances the cursor by one line.
func (l *layout) paragraph(text string) {
	if !l.ok() {
		return
	}
	s := l.theme.Body
	l.setText(s.FontStyle, s.Size, s.Color)
	l.pdf.MultiCell(0, s.LineHeight, text, "", "L", false)
	l.pdf.Ln(s.SpaceAfter)
}

// table draws a centered two-column key/value table. With grid set, label
// cells are shaded and every cell is outlined. A row that fits on one page is
// never split; a row taller than a page continues line by line on the pages
// that follow.
func (l *layout) table(rows []row, grid bool) {
	if !l.ok() {
		return
	}
	t := l.theme.Table
	pageW, _ := l.pdf.GetPageSize()
	x := (pageW - t.LabelWidth - t.ValueWidth) / 2

	l.setText("", t.FontSize, t.TextColor)
	_, top, _, _ := l.pdf.GetMargins()
	usable := l.bottom() - top
	if l.linesFitting(usable) < 1 {
		l.err = fmt.Errorf("table line of %.0fpt does not fit a %.0fpt page", l.rowHeight(1), usable)
		return
	}

	for _, r := range rows {
		labelLines := l.pdf.SplitLines([]byte(r.label), t.LabelWidth)
		valueLines := l.pdf.SplitLines([]byte(r.value), t.ValueWidth)
		n := max(len(labelLines), len(valueLines), 1)

		if h := l.rowHeight(n); h <= usable {
			l.ensureRoom(h)
			l.row(x, labelLines, valueLines, n, grid)
			continue
		}

		for first := 0; first < n; {
			free := l.linesFitting(l.bottom() - l.pdf.GetY())
			if free < 1 {
				l.pdf.AddPage()
				continue
			}
			last := min(first+free, n)
			l.row(x, window(labelLines, first, last), window(valueLines, first, last), last-first, grid)
			first = last
		}
	}
}

func (l *layout) rowHeight(lines int) float64 {
	t := l.theme.Table
	return t.PaddingTop + float64(lines)*t.LineHeight + t.PaddingBottom
}

// linesFitting returns how many text lines of a padded row fit in h points.
func (l *layout) linesFitting(h float64) int {
	t := l.theme.Table
	return int((h - t.PaddingTop - t.PaddingBottom) / t.LineHeight)
}

// row draws one table row of n lines at the cursor and moves below it.
func (l *layout) row(x float64, labelLines, valueLines [][]byte, n int, grid bool) {
	t := l.theme.Table
	h := l.rowHeight(n)
	y := l.pdf.GetY()

	if grid {
		l.pdf.SetFillColor(t.LabelFill.R, t.LabelFill.G, t.LabelFill.B)
		l.pdf.Rect(x, y, t.LabelWidth, h, "F")
		l.pdf.SetDrawColor(t.GridColor.R, t.GridColor.G, t.GridColor.B)
		l.pdf.SetLineWidth(t.GridWidth)
		l.pdf.Rect(x, y, t.LabelWidth, h, "D")
		l.pdf.Rect(x+t.LabelWidth, y, t.ValueWidth, h, "D")
	}

	l.cellLines(x, y+t.PaddingTop, t.LabelWidth, labelLines)
	l.cellLines(x+t.LabelWidth, y+t.PaddingTop, t.ValueWidth, valueLines)

	l.pdf.SetY(y + h)
}

func window(lines [][]byte, first, last int) [][]byte {
	if first >= len(lines) {
		return nil
	}
	return lines[first:min(last, len(lines))]
}

func (l *layout) cellLines(x, y, w float64, lines [][]byte) {
	lh := l.theme.Table.LineHeight
	for i, line := range lines {
		l.pdf.SetXY(x, y+float64(i)*lh)
		l.pdf.CellFormat(w, lh, string(line), "", 0, "L", false, 0, "")
	}
}
