package workbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Fill colours of the day schedule
const (
	ColorTitle  = "A3A3A3"
	ColorHeader = "99CCFF"
	ColorName   = "FFE6B3"
	ColorFree   = "C0C0C0"
	ColorLunch  = "FFFFCC"
)

type styles struct {
	title       int
	header      int
	headerTotal int
	shiftTime   int
	name        int
	phone       int
	free        int
	work        int
	lunch       int
	total       int
}

var thinBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
}

func solid(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
}

var centered = &excelize.Alignment{Horizontal: "center"}

func newStyles(f *excelize.File) (styles, error) {
	durationFormat := DurationFormat
	var st styles
	defs := []struct {
		id    *int
		name  string
		style *excelize.Style
	}{
		{id: &st.title, name: "title", style: &excelize.Style{
			Fill:      solid(ColorTitle),
			Font:      &excelize.Font{Size: 20, Color: "FFFFFF"},
			Alignment: centered,
		}},
		{id: &st.header, name: "header", style: &excelize.Style{
			Fill:   solid(ColorHeader),
			Border: thinBorder,
			Font:   &excelize.Font{Bold: true},
		}},
		{id: &st.headerTotal, name: "header total", style: &excelize.Style{
			Fill:         solid(ColorHeader),
			Border:       thinBorder,
			Font:         &excelize.Font{Bold: true},
			CustomNumFmt: &durationFormat,
		}},
		{id: &st.shiftTime, name: "shift time", style: &excelize.Style{
			Border: thinBorder,
			Font:   &excelize.Font{Bold: true},
		}},
		{id: &st.name, name: "name", style: &excelize.Style{
			Fill:   solid(ColorName),
			Border: thinBorder,
			Font:   &excelize.Font{Bold: true},
		}},
		{id: &st.phone, name: "phone", style: &excelize.Style{
			Border:    thinBorder,
			Font:      &excelize.Font{Bold: true},
			Alignment: centered,
		}},
		{id: &st.free, name: "free", style: &excelize.Style{
			Fill:      solid(ColorFree),
			Border:    thinBorder,
			Alignment: centered,
		}},
		{id: &st.work, name: "work", style: &excelize.Style{
			Border:    thinBorder,
			Alignment: centered,
		}},
		{id: &st.lunch, name: "lunch", style: &excelize.Style{
			Fill:      solid(ColorLunch),
			Border:    thinBorder,
			Alignment: centered,
		}},
		{id: &st.total, name: "total", style: &excelize.Style{
			Border:       thinBorder,
			Alignment:    centered,
			CustomNumFmt: &durationFormat,
		}},
	}

	for _, def := range defs {
		id, err := f.NewStyle(def.style)
		if err != nil {
			return styles{}, fmt.Errorf("failed to create %s style: %w", def.name, err)
		}
		*def.id = id
	}
	return st, nil
}
