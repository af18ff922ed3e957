package button

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/a-h/templ"
	"github.com/samber/lo"

	"github.com/networkteam/uikit/icon"
	"github.com/networkteam/uikit/loader"
	"github.com/networkteam/uikit/theme"
)

// Env holds the collaborators and ambient settings of a render.
// Zero fields use the defaults of the theme, icon and loader packages.
type Env struct {
	Theme    *theme.Theme
	DarkMode bool
	Icons    icon.Provider
	Loaders  loader.Provider
}

func (e Env) withDefaults() Env {
	if e.Theme == nil {
		e.Theme = theme.Default()
	}
	if e.Icons == nil {
		e.Icons = icon.Default()
	}
	if e.Loaders == nil {
		e.Loaders = loader.New(e.Theme)
	}
	return e
}

const classButton = "uikit-button"

// View is a rendered button: the props with defaults applied and everything derived from them.
// It renders as a templ component and handles activation.
type View struct {
	Props    Props
	Style    Style
	DarkMode bool
	// Disabled is the effective disabled state.
	Disabled bool
	IconSize icon.Size

	// Leading, Trailing and Loader are nil when the slot is not rendered.
	Leading  templ.Component
	Trailing templ.Component
	Loader   templ.Component
}

// Render resolves the props against the environment.
func Render(props Props, env Env) *View {
	props = props.withDefaults()
	env = env.withDefaults()

	v := &View{
		Props:    props,
		DarkMode: env.DarkMode,
		Disabled: props.EffectiveDisabled(),
		IconSize: IconSize(props.Size),
	}
	v.Style = ResolveStyle(StyleInput{
		Size:            props.Size,
		Variant:         props.Variant,
		Loading:         props.Loading,
		Disabled:        v.Disabled,
		HasLeadingIcon:  props.LeadingIcon != "",
		HasTrailingIcon: props.TrailingIcon != "",
		DarkMode:        env.DarkMode,
	}, env.Theme)

	if props.LeadingIcon != "" {
		v.Leading = env.Icons.Icon(props.LeadingIcon, v.IconSize)
	}
	if props.TrailingIcon != "" {
		v.Trailing = env.Icons.Icon(props.TrailingIcon, v.IconSize)
	}
	if props.Loading {
		v.Loader = env.Loaders.Loader(LoaderVariant(props.Variant), v.IconSize)
	}

	if props.Ref != nil {
		props.Ref.View = v
	}
	return v
}

// Render writes the button element.
func (v *View) Render(ctx context.Context, w io.Writer) error {
	return element(v).Render(ctx, w)
}

// Activate runs the click handler. A disabled or loading button returns ErrDisabled and the
// handler is not called.
func (v *View) Activate(ctx context.Context) error {
	if v.Disabled {
		return ErrDisabled
	}
	if v.Props.OnClick == nil {
		return nil
	}
	return v.Props.OnClick(ctx)
}

// Classes returns the class list of the button element, passthrough classes last.
func (v *View) Classes() []string {
	classes := []string{
		classButton,
		classButton + "--" + string(v.Props.Size),
		classButton + "--" + string(v.Props.Variant),
	}
	if v.Props.Loading {
		classes = append(classes, classButton+"--loading")
	}
	if v.DarkMode {
		classes = append(classes, classButton+"--dark")
	}
	if class, ok := v.Props.Attrs["class"].(string); ok {
		classes = append(classes, strings.Fields(class)...)
	}
	return classes
}

// reservedAttrs are written by the template or computed from props and never passed through.
var reservedAttrs = []string{"class", "style", "disabled"}

// Attributes returns the attributes of the button element except class, style and disabled.
// Computed attributes come first and win over passthrough attributes of the same name.
// Passthrough attributes follow in name order; names that are not valid attribute names are
// dropped.
func (v *View) Attributes() templ.OrderedAttributes {
	p := v.Props
	attrs := templ.OrderedAttributes{
		templ.KV[string, any]("type", string(p.Type)),
		templ.KV[string, any]("role", string(p.Role)),
	}
	if p.ID != "" {
		attrs = append(attrs, templ.KV[string, any]("id", p.ID))
	}
	if p.Form != "" {
		attrs = append(attrs, templ.KV[string, any]("form", p.Form))
	}
	if len(p.Tags) > 0 {
		attrs = append(attrs, templ.KV[string, any]("data-tags", strings.Join(p.Tags, " ")))
	}
	if p.Loading {
		attrs = append(attrs, templ.KV[string, any]("aria-busy", "true"))
	}

	computed := lo.Map(attrs, func(kv templ.KeyValue[string, any], _ int) string { return kv.Key })
	names := lo.Keys(p.Attrs)
	slices.Sort(names)
	for _, name := range names {
		if slices.Contains(reservedAttrs, name) || slices.Contains(computed, name) || !validAttrName(name) {
			continue
		}
		switch value := p.Attrs[name].(type) {
		case string, bool:
			attrs = append(attrs, templ.KV[string, any](name, value))
		default:
			attrs = append(attrs, templ.KV[string, any](name, fmt.Sprint(value)))
		}
	}
	return attrs
}

// Styles returns the inline style of the button element: the resolved style followed by a
// passthrough style attribute.
func (v *View) Styles() []any {
	styles := []any{v.Style.Inline()}
	if style, ok := v.Props.Attrs["style"].(string); ok {
		styles = append(styles, style)
	}
	return styles
}

// validAttrName reports whether name can be written as an attribute name without escaping.
func validAttrName(name string) bool {
	if name == "" {
		return false
	}
	return !strings.ContainsFunc(name, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\f', '\r', '"', '\'', '>', '<', '/', '=', '`', '&':
			return true
		}
		return r < 0x20 || (r >= 0x7f && r <= 0x9f)
	})
}

type envKeyType struct{}

var envKey = envKeyType{}

// WithEnv returns a new context carrying the render environment used by Button.
func WithEnv(ctx context.Context, env Env) context.Context {
	return context.WithValue(ctx, envKey, env)
}

// EnvFromContext returns the render environment of the context.
// Theme and dark mode fall back to the values set with the theme package.
func EnvFromContext(ctx context.Context) Env {
	env, _ := ctx.Value(envKey).(Env)
	if env.Theme == nil {
		env.Theme = theme.FromContext(ctx)
	}
	if theme.DarkModeFromContext(ctx) {
		env.DarkMode = true
	}
	return env
}
