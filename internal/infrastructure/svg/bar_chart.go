// Package svg dibuja especificaciones de gráficos como documentos SVG.
package svg

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/jhoicas/wallet-dashboard/internal/application/analytics"
	"github.com/jhoicas/wallet-dashboard/internal/application/dto"
)

const (
	width        = 720
	height       = 420
	marginLeft   = 80
	marginRight  = 20
	marginTop    = 48
	marginBottom = 120
	barColor     = "#1f77b4"
	axisColor    = "#444444"
	fontFamily   = "Helvetica, Arial, sans-serif"
)

// BarChartRenderer implementa analytics.ChartRenderer con etree.
type BarChartRenderer struct{}

// NewBarChartRenderer construye el renderer.
func NewBarChartRenderer() *BarChartRenderer { return &BarChartRenderer{} }

// RenderBarChart devuelve el SVG del gráfico. Con NoData dibuja solo el título y el mensaje.
func (r *BarChartRenderer) RenderBarChart(spec dto.BarChartSpecDTO) ([]byte, error) {
	if len(spec.XLabels) != len(spec.YValues) {
		return nil, fmt.Errorf("svg.RenderBarChart: %d etiquetas para %d valores", len(spec.XLabels), len(spec.YValues))
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("svg")
	root.CreateAttr("xmlns", "http://www.w3.org/2000/svg")
	root.CreateAttr("width", itoa(width))
	root.CreateAttr("height", itoa(height))
	root.CreateAttr("viewBox", fmt.Sprintf("0 0 %d %d", width, height))
	root.CreateAttr("font-family", fontFamily)

	bg := root.CreateElement("rect")
	bg.CreateAttr("width", "100%")
	bg.CreateAttr("height", "100%")
	bg.CreateAttr("fill", "#ffffff")

	text(root, width/2, 28, spec.Title, "16", "middle").CreateAttr("class", "title")

	if spec.NoData || len(spec.YValues) == 0 {
		msg := spec.Message
		if msg == "" {
			msg = analytics.NoDataMessage
		}
		text(root, width/2, height/2, msg, "14", "middle").CreateAttr("class", "no-data")
		return write(doc)
	}

	plotW := float64(width - marginLeft - marginRight)
	plotH := float64(height - marginTop - marginBottom)
	peak := 0.0
	for _, v := range spec.YValues {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	// ── Ejes ──
	line(root, marginLeft, marginTop, marginLeft, marginTop+plotH)
	line(root, marginLeft, marginTop+plotH, marginLeft+plotW, marginTop+plotH)
	text(root, marginLeft+plotW/2, height-12, spec.XAxisLabel, "12", "middle")
	yl := text(root, 18, marginTop+plotH/2, spec.YAxisLabel, "12", "middle")
	yl.CreateAttr("transform", fmt.Sprintf("rotate(-90 18 %s)", ftoa(marginTop+plotH/2)))

	// ── Barras ──
	slot := plotW / float64(len(spec.YValues))
	barW := slot * 0.7
	for i, v := range spec.YValues {
		h := v / peak * plotH
		x := marginLeft + float64(i)*slot + (slot-barW)/2
		y := marginTop + plotH - h

		bar := root.CreateElement("rect")
		bar.CreateAttr("class", "bar")
		bar.CreateAttr("x", ftoa(x))
		bar.CreateAttr("y", ftoa(y))
		bar.CreateAttr("width", ftoa(barW))
		bar.CreateAttr("height", ftoa(h))
		bar.CreateAttr("fill", barColor)
		bar.CreateElement("title").SetText(fmt.Sprintf("%s: %.2f", spec.XLabels[i], v))

		cx := x + barW/2
		cy := marginTop + plotH + 14
		lbl := text(root, cx, cy, spec.XLabels[i], "10", "end")
		lbl.CreateAttr("transform", fmt.Sprintf("rotate(%d %s %s)", spec.TickAngle, ftoa(cx), ftoa(cy)))
	}

	return write(doc)
}

func text(parent *etree.Element, x, y float64, s, size, anchor string) *etree.Element {
	t := parent.CreateElement("text")
	t.CreateAttr("x", ftoa(x))
	t.CreateAttr("y", ftoa(y))
	t.CreateAttr("font-size", size)
	t.CreateAttr("text-anchor", anchor)
	t.SetText(s)
	return t
}

func line(parent *etree.Element, x1, y1, x2, y2 float64) {
	l := parent.CreateElement("line")
	l.CreateAttr("x1", ftoa(x1))
	l.CreateAttr("y1", ftoa(y1))
	l.CreateAttr("x2", ftoa(x2))
	l.CreateAttr("y2", ftoa(y2))
	l.CreateAttr("stroke", axisColor)
}

func write(doc *etree.Document) ([]byte, error) {
	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("svg: serializar: %w", err)
	}
	return out, nil
}

func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) }
func itoa(i int) string     { return strconv.Itoa(i) }

var _ analytics.ChartRenderer = (*BarChartRenderer)(nil)
