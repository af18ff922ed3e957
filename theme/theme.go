package theme

// Color is a CSS colour value, usually a hex triplet. Transparent is allowed.
type Color string

const Transparent Color = "transparent"

// Scale is a colour ramp indexed by shade (50, 100, ..., 900).
type Scale map[int]Color

type OverlayPair struct {
	Light Color
	Dark  Color
}

type DisabledColors struct {
	Overlay    OverlayPair
	Foreground Color
}

type StateColors struct {
	// Overlay is the state layer colour blended over light surfaces on interaction.
	// Dark surfaces are lightened with White instead.
	Overlay  Color
	Disabled DisabledColors
}

type Palette struct {
	Primary Scale
	Grey    Scale
	White   Color
	Black   Color
	States  StateColors
}

// Spacing holds the spacing tokens as CSS lengths.
type Spacing struct {
	XXXS string
	XXS  string
	XS   string
	S    string
	M    string
	L    string
	XL   string
}

// Typography describes a text style.
type Typography struct {
	FontSize      string
	LineHeight    string
	LetterSpacing string
	FontWeight    int
}

type TypeScale struct {
	LabelLarge  Typography
	LabelMedium Typography
	LabelSmall  Typography
}

type Transition struct {
	Fast string
}

// Theme bundles all design tokens used by components.
type Theme struct {
	FontFamily string
	Colors     Palette
	Spacing    Spacing
	Typography TypeScale
	// Elevation holds box-shadow values, index 0 is flat.
	Elevation  []string
	Transition Transition
}

// Default returns the built-in theme.
// Each call returns a new value that may be modified by the caller.
func Default() *Theme {
	return &Theme{
		FontFamily: `"Noto Sans", system-ui, sans-serif`,
		Colors: Palette{
			Primary: Scale{
				50:  "#eef7e8",
				100: "#d5ecc6",
				200: "#b9e0a1",
				300: "#9cd37b",
				400: "#318500",
				500: "#276a00",
				600: "#1f5500",
				700: "#174000",
				800: "#0f2b00",
				900: "#081600",
			},
			Grey: Scale{
				50:  "#fbfbfb",
				100: "#f2f2f1",
				200: "#e3e3e1",
				300: "#c9c9c6",
				400: "#a3a39f",
				500: "#7c7c78",
				600: "#5c5c59",
				700: "#3d3d3a",
				800: "#262625",
				900: "#181817",
			},
			White: "#ffffff",
			Black: "#000000",
			States: StateColors{
				Overlay: "#276a00",
				Disabled: DisabledColors{
					Overlay: OverlayPair{
						Light: "#e3e3e1",
						Dark:  "#c9c9c6",
					},
					Foreground: "#7c7c78",
				},
			},
		},
		Spacing: Spacing{
			XXXS: "0.2rem",
			XXS:  "0.4rem",
			XS:   "0.8rem",
			S:    "1.2rem",
			M:    "1.6rem",
			L:    "2.4rem",
			XL:   "3.2rem",
		},
		Typography: TypeScale{
			LabelLarge: Typography{
				FontSize:      "1.6rem",
				LineHeight:    "2.4rem",
				LetterSpacing: "0.01rem",
				FontWeight:    700,
			},
			LabelMedium: Typography{
				FontSize:      "1.4rem",
				LineHeight:    "2rem",
				LetterSpacing: "0.01rem",
				FontWeight:    700,
			},
			LabelSmall: Typography{
				FontSize:      "1.2rem",
				LineHeight:    "1.6rem",
				LetterSpacing: "0.05rem",
				FontWeight:    700,
			},
		},
		Elevation: []string{
			"none",
			"0 0.1rem 0.2rem rgba(61, 61, 58, 0.3), 0 0.1rem 0.3rem 0.1rem rgba(61, 61, 58, 0.1)",
			"0 0.1rem 0.2rem rgba(61, 61, 58, 0.3), 0 0.2rem 0.6rem 0.2rem rgba(61, 61, 58, 0.15)",
		},
		Transition: Transition{
			Fast: "150ms ease-in-out",
		},
	}
}

// ElevationLevel returns the box-shadow for the given level, clamped to the defined levels.
func (t *Theme) ElevationLevel(level int) string {
	if len(t.Elevation) == 0 {
		return ""
	}
	level = max(0, min(level, len(t.Elevation)-1))
	return t.Elevation[level]
}
