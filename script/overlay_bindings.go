package script

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dop251/goja"

	"github.com/scrimui/scrim/geom"
	"github.com/scrimui/scrim/overlay"
)

// OverlayBinder exposes the presentation engine to scripts as the global
// scrim object. Presenting from script runs the whole pipeline: the entry
// is created, its entrance is animated, popovers are placed, and sheets get
// their swipe handler.
type OverlayBinder struct {
	runtime *Runtime
	coord   *overlay.Coordinator
}

// NewOverlayBinder installs the scrim global into the runtime.
func NewOverlayBinder(rt *Runtime, coord *overlay.Coordinator) *OverlayBinder {
	b := &OverlayBinder{runtime: rt, coord: coord}
	b.setup()
	return b
}

// Coordinator returns the bound presentation engine.
func (b *OverlayBinder) Coordinator() *overlay.Coordinator {
	return b.coord
}

func (b *OverlayBinder) setup() {
	vm := b.runtime.vm
	obj := vm.NewObject()

	obj.Set("present", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			panic(vm.NewTypeError("present requires a presentation kind"))
		}
		kind := call.Arguments[0].String()

		var options *goja.Object
		if len(call.Arguments) > 1 && !goja.IsUndefined(call.Arguments[1]) && !goja.IsNull(call.Arguments[1]) {
			options = call.Arguments[1].ToObject(vm)
		}

		id, err := b.present(kind, options)
		if err != nil {
			panic(vm.NewTypeError(err.Error()))
		}
		return vm.ToValue(string(id))
	})

	obj.Set("dismiss", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) > 0 {
			b.coord.Dismiss(overlay.ID(call.Arguments[0].String()))
		}
		return goja.Undefined()
	})

	obj.Set("remove", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) > 0 {
			b.coord.Remove(overlay.ID(call.Arguments[0].String()))
		}
		return goja.Undefined()
	})

	obj.Set("dismissTopmost", func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(b.coord.DismissTopmost())
	})

	obj.Set("activeCount", func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(b.coord.ActiveCount())
	})

	obj.Set("active", func(call goja.FunctionCall) goja.Value {
		entries := b.coord.Active()
		out := make([]interface{}, 0, len(entries))
		for _, e := range entries {
			out = append(out, map[string]interface{}{
				"id":         string(e.ID()),
				"kind":       e.Kind().String(),
				"zIndex":     e.ZIndex(),
				"dismissing": e.Dismissing(),
			})
		}
		return vm.ToValue(out)
	})

	obj.Set("positionPopover", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) > 0 {
			b.coord.PositionPopover(overlay.ID(call.Arguments[0].String()))
		}
		return goja.Undefined()
	})

	obj.Set("outerHTML", func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(b.coord.Doc().Root().OuterHTML())
	})

	vm.Set("scrim", obj)
}

// present maps a kind string and options object onto the engine's API.
func (b *OverlayBinder) present(kind string, options *goja.Object) (overlay.ID, error) {
	var p overlay.Presentation
	switch strings.ToLower(kind) {
	case "sheet":
		p = b.sheetOptions(options)
	case "alert":
		p = b.alertOptions(options)
	case "popover":
		p = b.popoverOptions(options)
	case "cover", "fullscreen":
		p = overlay.FullScreenCover{}
	case "confirmation":
		p = b.confirmationOptions(options)
	default:
		return "", fmt.Errorf("unknown presentation kind %q", kind)
	}

	id := b.coord.Present(p, contentOption(options), b.presentOptions(options)...)
	b.coord.AnimatePresentation(id)

	switch p.(type) {
	case overlay.Popover:
		b.coord.PositionPopover(id)
	case overlay.Sheet:
		b.coord.AttachSwipe(id)
	}
	return id, nil
}

func (b *OverlayBinder) sheetOptions(o *goja.Object) overlay.Sheet {
	s := overlay.Sheet{InteractiveDismissDisabled: optBool(o, "interactiveDismissDisabled")}
	if o == nil {
		return s
	}
	v := o.Get("detents")
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return s
	}

	arr := v.ToObject(b.runtime.vm)
	n := arrayLength(arr)
	for i := 0; i < n; i++ {
		item := arr.Get(strconv.Itoa(i))
		if item == nil || goja.IsUndefined(item) || goja.IsNull(item) {
			continue
		}
		switch strings.ToLower(item.String()) {
		case "medium":
			s.Detents = append(s.Detents, overlay.DetentMedium)
		case "large":
			s.Detents = append(s.Detents, overlay.DetentLarge)
		default:
			// Numbers up to 1 are fractions, anything larger a pixel
			// height.
			f := item.ToFloat()
			if f != f || f <= 0 {
				continue
			}
			if f <= 1 {
				s.Detents = append(s.Detents, overlay.DetentFraction(f))
			} else {
				s.Detents = append(s.Detents, overlay.DetentHeight(f))
			}
		}
	}
	return s
}

func (b *OverlayBinder) alertOptions(o *goja.Object) overlay.Alert {
	return overlay.Alert{
		Title:   optString(o, "title"),
		Message: optString(o, "message"),
		Buttons: b.buttonOptions(o),
	}
}

func (b *OverlayBinder) confirmationOptions(o *goja.Object) overlay.ConfirmationDialog {
	return overlay.ConfirmationDialog{
		Title:        optString(o, "title"),
		TitleVisible: optBool(o, "titleVisible"),
		Buttons:      b.buttonOptions(o),
	}
}

func (b *OverlayBinder) popoverOptions(o *goja.Object) overlay.Popover {
	p := overlay.Popover{PreferredEdge: parseEdge(optString(o, "edge"))}
	anchor := optObject(b.runtime.vm, o, "anchor")
	if anchor == nil {
		return p
	}

	x, _ := optFloat(anchor, "x")
	y, _ := optFloat(anchor, "y")
	w, hasW := optFloat(anchor, "width")
	h, hasH := optFloat(anchor, "height")
	if hasW || hasH {
		p.Anchor = overlay.RectAnchor(geom.Rect{X: x, Y: y, Width: w, Height: h})
	} else {
		p.Anchor = overlay.PointAnchor(geom.Pt(x, y))
	}
	return p
}

// buttonOptions parses the buttons array shared by alerts and confirmation
// dialogs. Script actions become Go callbacks that run through the
// runtime's error capture.
func (b *OverlayBinder) buttonOptions(o *goja.Object) []overlay.Button {
	if o == nil {
		return nil
	}
	v := o.Get("buttons")
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil
	}

	arr := v.ToObject(b.runtime.vm)
	n := arrayLength(arr)
	buttons := make([]overlay.Button, 0, n)
	for i := 0; i < n; i++ {
		item := arr.Get(strconv.Itoa(i))
		if item == nil || goja.IsUndefined(item) || goja.IsNull(item) {
			continue
		}
		obj := item.ToObject(b.runtime.vm)

		btn := overlay.Button{Label: optString(obj, "label")}
		switch strings.ToLower(optString(obj, "role")) {
		case "cancel":
			btn.Role = overlay.RoleCancel
		case "destructive":
			btn.Role = overlay.RoleDestructive
		}
		if av := obj.Get("action"); av != nil {
			if action, ok := goja.AssertFunction(av); ok {
				btn.Action = func() { b.runtime.callFunction(action) }
			}
		}
		buttons = append(buttons, btn)
	}
	return buttons
}

// presentOptions parses the options shared by every kind: the dismiss
// callback and the source element for anchoring.
func (b *OverlayBinder) presentOptions(o *goja.Object) []overlay.PresentOption {
	if o == nil {
		return nil
	}
	var opts []overlay.PresentOption
	if v := o.Get("onDismiss"); v != nil {
		if fn, ok := goja.AssertFunction(v); ok {
			opts = append(opts, overlay.WithOnDismiss(func() { b.runtime.callFunction(fn) }))
		}
	}
	if id := optString(o, "sourceId"); id != "" {
		if el := b.coord.Doc().GetElementByID(id); el != nil {
			opts = append(opts, overlay.WithSource(el))
		}
	}
	return opts
}

func contentOption(o *goja.Object) overlay.Content {
	if s := optString(o, "content"); s != "" {
		return s
	}
	return nil
}

func parseEdge(s string) geom.Edge {
	switch strings.ToLower(s) {
	case "bottom":
		return geom.EdgeBottom
	case "leading":
		return geom.EdgeLeading
	case "trailing":
		return geom.EdgeTrailing
	}
	return geom.EdgeTop
}

func arrayLength(arr *goja.Object) int {
	v := arr.Get("length")
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return 0
	}
	return int(v.ToInteger())
}

func optString(o *goja.Object, key string) string {
	if o == nil {
		return ""
	}
	v := o.Get(key)
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return ""
	}
	return v.String()
}

func optBool(o *goja.Object, key string) bool {
	if o == nil {
		return false
	}
	v := o.Get(key)
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return false
	}
	return v.ToBoolean()
}

func optFloat(o *goja.Object, key string) (float64, bool) {
	if o == nil {
		return 0, false
	}
	v := o.Get(key)
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return 0, false
	}
	f := v.ToFloat()
	if f != f {
		return 0, false
	}
	return f, true
}

func optObject(vm *goja.Runtime, o *goja.Object, key string) *goja.Object {
	if o == nil {
		return nil
	}
	v := o.Get(key)
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil
	}
	return v.ToObject(vm)
}
