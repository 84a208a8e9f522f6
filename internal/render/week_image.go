// Package render рисует недельную сетку доступности репетитора в PNG.
package render

import (
	"bytes"
	"image/color"
	"strconv"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/v7s7/DaresniCheckUpdated/internal/availability"
	"github.com/v7s7/DaresniCheckUpdated/internal/model"
)

// Константы размеров и отступов
const (
	ImageWidth       = 1000
	ImageHeight      = 760
	headerHeight     = 70
	leftLabelsWidth  = 70
	legendHeight     = 40
	dayPaddingX      = 6
	slotBorderRadius = 5.0
	shadowOffset     = 2.0
)

// Цветовая схема
var (
	bgColor        = color.RGBA{245, 246, 248, 255}
	textColor      = color.RGBA{80, 85, 90, 255}
	hourLabelColor = color.RGBA{110, 115, 120, 255}
	hourLineColor  = color.NRGBA{150, 150, 150, 255}
	evenDayColor   = color.NRGBA{240, 240, 240, 255}
	oddDayColor    = color.NRGBA{220, 220, 220, 255}

	slotFreeColor     = color.RGBA{133, 193, 85, 255}
	slotSelectedColor = color.RGBA{66, 133, 244, 255}
	slotTextColor     = color.RGBA{20, 24, 28, 255}
	slotShadowColor   = color.RGBA{0, 0, 0, 20}
)

// hourRange диапазон часов для отображения
type hourRange struct {
	start int
	end   int // не включительно
}

func (h hourRange) total() int {
	return h.end - h.start
}

// Layout геометрия сетки; нужна и для отрисовки, и для проверки пикселей в тестах
type Layout struct {
	hours      hourRange
	dayWidth   float64
	cellHeight float64
}

// NewLayout считает геометрию: сетка редактора, расширенная под слоты вне её
func NewLayout(slots []model.AvailabilitySlot) Layout {
	hours := calculateHourRange(slots)
	gridHeight := float64(ImageHeight - headerHeight - legendHeight)
	return Layout{
		hours:      hours,
		dayWidth:   float64(ImageWidth-leftLabelsWidth) / float64(model.DaysInWeek),
		cellHeight: gridHeight / float64(hours.total()),
	}
}

// CellCenter координаты центра часовой ячейки
func (l Layout) CellCenter(weekday model.Weekday, hour int) (float64, float64) {
	x := float64(leftLabelsWidth) + float64(weekday)*l.dayWidth + l.dayWidth/2
	y := float64(headerHeight) + float64(hour-l.hours.start)*l.cellHeight + l.cellHeight/2
	return x, y
}

// GenerateWeekImage рисует недельную доступность.
// Свободное время зелёное, выбранные студентом часы синие.
func GenerateWeekImage(title string, slots []model.AvailabilitySlot, selection *availability.Selection) ([]byte, error) {
	layout := NewLayout(slots)

	dc := createCanvas()
	dc.SetFontFace(basicfont.Face7x13)

	drawHeader(dc, title)
	drawHourLabels(dc, layout)
	for day := model.Monday; day <= model.Sunday; day++ {
		x := float64(leftLabelsWidth) + float64(day)*layout.dayWidth
		drawDayBackground(dc, x, layout, int(day))
		drawDayHeader(dc, day, x, layout)
		drawHourLines(dc, x, layout)
	}
	for _, slot := range slots {
		drawSlot(dc, slot, layout)
	}
	drawSelection(dc, selection, layout)
	drawLegend(dc)

	return encodeImage(dc)
}

// calculateHourRange определяет диапазон часов для отображения
func calculateHourRange(slots []model.AvailabilitySlot) hourRange {
	r := hourRange{start: availability.FirstHour, end: availability.LastHour + 1}

	for _, slot := range slots {
		startH := slot.StartMinutes / model.MinutesPerHour
		endH := (slot.EndMinutes + model.MinutesPerHour - 1) / model.MinutesPerHour
		if startH < r.start {
			r.start = startH
		}
		if endH > r.end {
			r.end = endH
		}
	}

	return r
}

// createCanvas создает новый контекст рисования с фоном
func createCanvas() *gg.Context {
	dc := gg.NewContext(ImageWidth, ImageHeight)
	dc.SetColor(bgColor)
	dc.Clear()
	return dc
}

func drawHeader(dc *gg.Context, title string) {
	dc.SetColor(textColor)
	dc.DrawStringAnchored(title, float64(ImageWidth)/2, float64(headerHeight)/4, 0.5, 0.5)
}

// drawHourLabels рисует колонку с часами слева
func drawHourLabels(dc *gg.Context, l Layout) {
	dc.SetColor(hourLabelColor)
	for h := l.hours.start; h < l.hours.end; h++ {
		y := float64(headerHeight) + float64(h-l.hours.start)*l.cellHeight
		dc.DrawStringAnchored(formatHourLabel(h), float64(leftLabelsWidth)-8, y, 1, 0.5)
	}
}

// drawDayBackground рисует фон дня
func drawDayBackground(dc *gg.Context, x float64, l Layout, dayIndex int) {
	if dayIndex%2 == 0 {
		dc.SetColor(evenDayColor)
	} else {
		dc.SetColor(oddDayColor)
	}
	dc.DrawRectangle(x, float64(headerHeight), l.dayWidth, float64(l.hours.total())*l.cellHeight)
	dc.Fill()
}

// drawDayHeader рисует короткое название дня
func drawDayHeader(dc *gg.Context, day model.Weekday, x float64, l Layout) {
	dc.SetColor(textColor)
	dc.DrawStringAnchored(weekdayShort(day), x+l.dayWidth/2, float64(headerHeight)-14, 0.5, 0.5)
}

// drawHourLines рисует горизонтальные линии часов
func drawHourLines(dc *gg.Context, x float64, l Layout) {
	dc.SetLineWidth(0.3)
	dc.SetColor(hourLineColor)
	for i := 0; i <= l.hours.total(); i++ {
		y := float64(headerHeight) + float64(i)*l.cellHeight
		dc.DrawLine(x, y, x+l.dayWidth, y)
		dc.Stroke()
	}
}

func drawSlot(dc *gg.Context, slot model.AvailabilitySlot, l Layout) {
	x := float64(leftLabelsWidth) + float64(slot.Weekday)*l.dayWidth
	startHour := float64(slot.StartMinutes) / model.MinutesPerHour
	endHour := float64(slot.EndMinutes) / model.MinutesPerHour

	y := float64(headerHeight) + (startHour-float64(l.hours.start))*l.cellHeight
	height := (endHour - startHour) * l.cellHeight
	width := l.dayWidth - dayPaddingX*2

	// Тень
	dc.SetColor(slotShadowColor)
	dc.DrawRoundedRectangle(x+dayPaddingX+shadowOffset, y+1+shadowOffset, width, height-2, slotBorderRadius)
	dc.Fill()

	dc.SetColor(slotFreeColor)
	dc.DrawRoundedRectangle(x+dayPaddingX, y+1, width, height-2, slotBorderRadius)
	dc.Fill()

	// Рамка
	dc.SetColor(darkenColor(slotFreeColor, 0.8))
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(x+dayPaddingX, y+1, width, height-2, slotBorderRadius)
	dc.Stroke()

	if height > 16 {
		dc.SetColor(slotTextColor)
		label := formatMinutes(slot.StartMinutes) + "-" + formatMinutes(slot.EndMinutes)
		dc.DrawStringAnchored(label, x+dayPaddingX+6, y+12, 0, 0)
	}
}

// drawSelection закрашивает выбранные часы поверх доступности
func drawSelection(dc *gg.Context, selection *availability.Selection, l Layout) {
	if selection.Len() == 0 {
		return
	}

	dc.SetColor(slotSelectedColor)
	for day := model.Monday; day <= model.Sunday; day++ {
		for h := l.hours.start; h < l.hours.end; h++ {
			if !selection.IsSelected(day, h) {
				continue
			}
			x := float64(leftLabelsWidth) + float64(day)*l.dayWidth
			y := float64(headerHeight) + float64(h-l.hours.start)*l.cellHeight
			dc.DrawRoundedRectangle(x+dayPaddingX, y+1, l.dayWidth-dayPaddingX*2, l.cellHeight-2, slotBorderRadius)
			dc.Fill()
		}
	}
}

// drawLegend рисует легенду внизу
func drawLegend(dc *gg.Context) {
	items := []struct {
		label string
		clr   color.Color
	}{
		{"Свободно", slotFreeColor},
		{"Выбрано", slotSelectedColor},
	}

	x := float64(leftLabelsWidth)
	y := float64(ImageHeight-legendHeight) + 12
	for _, item := range items {
		dc.SetColor(item.clr)
		dc.DrawRoundedRectangle(x, y, 20, 14, 3)
		dc.Fill()

		dc.SetColor(textColor)
		dc.DrawStringAnchored(item.label, x+28, y+7, 0, 0.5)
		x += 140
	}
}

// darkenColor затемняет цвет на указанный множитель
func darkenColor(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// encodeImage кодирует изображение в PNG
func encodeImage(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// формат числа с двумя цифрами
func formatTwoDigits(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func formatHourLabel(h int) string {
	return formatTwoDigits(h) + ":00"
}

func formatMinutes(m int) string {
	return formatTwoDigits(m/model.MinutesPerHour) + ":" + formatTwoDigits(m%model.MinutesPerHour)
}

// короткие дни недели
func weekdayShort(day model.Weekday) string {
	return [...]string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"}[day]
}
