package ui

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"strconv"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/platecad/platecad/pkg/drawing"
	"github.com/platecad/platecad/pkg/export"
	"github.com/platecad/platecad/pkg/plate"
	"github.com/platecad/platecad/pkg/units"
)

// paramControl binds one plate parameter to its slider and measurement
// entry. Slider positions are normalized 0..1 over the base-unit range.
type paramControl struct {
	field plate.Field
	label string
	min   float64
	max   float64

	slider widget.Float
	editor widget.Editor
}

// App drives the Gio editor window.
type App struct {
	Window *app.Window
	Theme  *material.Theme

	store *plate.Store
	view  drawing.ViewConfig

	ops op.Ops

	params []*paramControl

	unitEnum      widget.Enum
	precisionEnum widget.Enum
	zoomSlider    widget.Float
	showDims      widget.Bool

	exportSVGBtn  widget.Clickable
	exportPDFBtn  widget.Clickable
	exportJSONBtn widget.Clickable

	saveIcon *widget.Icon

	viewport viewportState

	status string
}

// New wires the Gio window, theme, store, and persisted view settings
// together.
func New(window *app.Window, store *plate.Store) *App {
	theme := material.NewTheme()
	theme.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	theme.Palette = material.Palette{
		Bg:         color.NRGBA{R: 245, G: 246, B: 252, A: 255},
		Fg:         color.NRGBA{R: 34, G: 37, B: 49, A: 255},
		ContrastBg: color.NRGBA{R: 64, G: 110, B: 220, A: 255},
		ContrastFg: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}

	a := &App{
		Window: window,
		Theme:  theme,
		store:  store,
		view:   LoadViewConfig(),
		params: []*paramControl{
			{field: plate.FieldWidth, label: "Width", min: plate.MinWidth, max: plate.MaxWidth},
			{field: plate.FieldThickness, label: "Thickness", min: plate.MinThickness, max: plate.MaxThickness},
			{field: plate.FieldSlotWidth, label: "Slot width", min: plate.MinSlotWidth, max: plate.SlotWidthRatio * plate.MaxWidth},
		},
	}

	if icon, err := widget.NewIcon(icons.ContentSave); err == nil {
		a.saveIcon = icon
	} else {
		log.Printf("ui: failed to load save icon: %v", err)
	}

	for _, pc := range a.params {
		pc.editor.SingleLine = true
		pc.editor.Submit = true
	}

	a.unitEnum.Value = a.view.Unit.String()
	a.precisionEnum.Value = strconv.Itoa(a.view.Precision)
	a.showDims.Value = a.view.ShowDimensions
	a.refreshEditors()
	return a
}

// Run processes Gio events until the window is closed.
func (a *App) Run() error {
	for {
		e := a.Window.Event()
		switch ev := e.(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&a.ops, ev)
			a.update(gtx)
			a.layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}

// update applies pending widget events to the store and view before
// the frame is laid out.
func (a *App) update(gtx layout.Context) {
	for _, pc := range a.params {
		if pc.slider.Update(gtx) {
			base := pc.min + float64(pc.slider.Value)*(pc.max-pc.min)
			a.store.Set(pc.field, base)
			a.refreshEditors()
		}
		for {
			ev, ok := pc.editor.Update(gtx)
			if !ok {
				break
			}
			if _, ok := ev.(widget.SubmitEvent); ok {
				a.store.Update(pc.field, pc.editor.Text(), a.view.Unit)
				a.refreshEditors()
			}
		}
	}

	if a.unitEnum.Update(gtx) {
		a.view.Unit = units.Imperial
		if a.unitEnum.Value == units.Metric.String() {
			a.view.Unit = units.Metric
		}
		a.refreshEditors()
		a.saveView()
	}
	if a.precisionEnum.Update(gtx) {
		if p, err := strconv.Atoi(a.precisionEnum.Value); err == nil {
			a.view.Precision = units.ClampPrecision(p)
			a.saveView()
		}
	}
	if a.zoomSlider.Update(gtx) {
		a.view.Zoom = drawing.ClampZoom(drawing.MinZoom +
			float64(a.zoomSlider.Value)*(drawing.MaxZoom-drawing.MinZoom))
		a.saveView()
	}
	if a.showDims.Update(gtx) {
		a.view.ShowDimensions = a.showDims.Value
		a.saveView()
	}

	if a.exportSVGBtn.Clicked(gtx) {
		a.exportFile("plate.svg", func(s drawing.Scene) ([]byte, error) {
			return export.SVG(s), nil
		})
	}
	if a.exportPDFBtn.Clicked(gtx) {
		a.exportFile("plate.pdf", export.PDF)
	}
	if a.exportJSONBtn.Clicked(gtx) {
		data, err := plate.MarshalParams(a.store.Current())
		if err != nil {
			a.status = fmt.Sprintf("export failed: %v", err)
			return
		}
		a.writeExport("plate.json", data)
	}

	// Sliders track the clamped store values unless being dragged.
	p := a.store.Current()
	values := []float64{p.Width, p.Thickness, p.SlotWidth}
	for i, pc := range a.params {
		if !pc.slider.Dragging() {
			pc.slider.Value = float32((values[i] - pc.min) / (pc.max - pc.min))
		}
	}
	if !a.zoomSlider.Dragging() {
		a.zoomSlider.Value = float32((a.view.Zoom - drawing.MinZoom) / (drawing.MaxZoom - drawing.MinZoom))
	}
}

func (a *App) exportFile(name string, build func(drawing.Scene) ([]byte, error)) {
	scene := drawing.BuildScene(a.store.Current(), a.view)
	data, err := build(scene)
	if err != nil {
		a.status = fmt.Sprintf("export failed: %v", err)
		return
	}
	a.writeExport(name, data)
}

func (a *App) writeExport(name string, data []byte) {
	if err := os.WriteFile(name, data, 0644); err != nil {
		a.status = fmt.Sprintf("export failed: %v", err)
		return
	}
	a.status = fmt.Sprintf("wrote %s (%d bytes)", name, len(data))
	log.Printf("ui: wrote %s (%d bytes)", name, len(data))
}

// refreshEditors rewrites the entry text from the current snapshot in
// the current display unit.
func (a *App) refreshEditors() {
	p := a.store.Current()
	values := []float64{p.Width, p.Thickness, p.SlotWidth}
	for i, pc := range a.params {
		display := units.ToDisplay(values[i], a.view.Unit)
		pc.editor.SetText(strconv.FormatFloat(display, 'f', -1, 64))
	}
}

func (a *App) saveView() {
	if err := SaveViewConfig(a.view); err != nil {
		log.Printf("ui: failed to save settings: %v", err)
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min.X = gtx.Dp(300)
			gtx.Constraints.Max.X = gtx.Dp(300)
			return a.layoutPanel(gtx)
		}),
		layout.Flexed(1, a.layoutViewport),
	)
}

func (a *App) layoutPanel(gtx layout.Context) layout.Dimensions {
	inset := layout.UniformInset(unit.Dp(12))
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		var children []layout.FlexChild

		children = append(children,
			layout.Rigid(material.H6(a.Theme, "Plate").Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
		)

		p := a.store.Current()
		values := []float64{p.Width, p.Thickness, p.SlotWidth}
		for i, pc := range a.params {
			pc := pc
			formatted := units.FormatDecimal(values[i], a.view.Unit, a.view.Precision)
			children = append(children,
				layout.Rigid(material.Body2(a.Theme, fmt.Sprintf("%s: %s", pc.label, formatted)).Layout),
				layout.Rigid(material.Slider(a.Theme, &pc.slider).Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					ed := material.Editor(a.Theme, &pc.editor, pc.label)
					ed.TextSize = unit.Sp(13)
					border := layout.UniformInset(unit.Dp(4))
					return border.Layout(gtx, ed.Layout)
				}),
				layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			)
		}

		children = append(children,
			layout.Rigid(material.H6(a.Theme, "View").Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(4)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
					layout.Rigid(material.RadioButton(a.Theme, &a.unitEnum, units.Imperial.String(), "Imperial").Layout),
					layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
					layout.Rigid(material.RadioButton(a.Theme, &a.unitEnum, units.Metric.String(), "Metric").Layout),
				)
			}),
			layout.Rigid(material.Body2(a.Theme, "Precision").Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				var radios []layout.FlexChild
				for prec := units.MinPrecision; prec <= units.MaxPrecision; prec++ {
					key := strconv.Itoa(prec)
					radios = append(radios,
						layout.Rigid(material.RadioButton(a.Theme, &a.precisionEnum, key, key).Layout))
				}
				return layout.Flex{Axis: layout.Horizontal}.Layout(gtx, radios...)
			}),
			layout.Rigid(material.Body2(a.Theme, fmt.Sprintf("Zoom: %.1fx", a.view.Zoom)).Layout),
			layout.Rigid(material.Slider(a.Theme, &a.zoomSlider).Layout),
			layout.Rigid(material.CheckBox(a.Theme, &a.showDims, "Show dimensions").Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						if a.saveIcon == nil {
							return layout.Dimensions{}
						}
						gtx.Constraints.Max.X = gtx.Dp(18)
						return a.saveIcon.Layout(gtx, a.Theme.Palette.Fg)
					}),
					layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
					layout.Rigid(material.H6(a.Theme, "Export").Layout),
				)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(4)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
					layout.Rigid(material.Button(a.Theme, &a.exportSVGBtn, "SVG").Layout),
					layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
					layout.Rigid(material.Button(a.Theme, &a.exportPDFBtn, "PDF").Layout),
					layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
					layout.Rigid(material.Button(a.Theme, &a.exportJSONBtn, "JSON").Layout),
				)
			}),
		)

		if a.status != "" {
			children = append(children,
				layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
				layout.Rigid(material.Caption(a.Theme, a.status).Layout),
			)
		}

		return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
	})
}
