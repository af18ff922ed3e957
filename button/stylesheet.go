package button

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/networkteam/uikit/theme"
)

// CSS returns the shared stylesheet for buttons. Rendered buttons set custom properties that
// these rules consume; properties a button does not set fall back to the unstyled base look.
func CSS(t *theme.Theme) string {
	if t == nil {
		t = theme.Default()
	}
	return fmt.Sprintf(`.uikit-button {
  align-items: center;
  background-color: var(%[2]s);
  border: 0.1rem solid var(%[3]s, transparent);
  border-radius: 10rem;
  box-shadow: var(%[4]s, none);
  box-sizing: border-box;
  color: var(%[5]s);
  display: flex;
  font-family: %[1]s;
  font-size: var(%[6]s);
  font-weight: var(%[7]s);
  height: var(%[8]s);
  justify-content: center;
  letter-spacing: var(%[9]s);
  line-height: var(%[10]s);
  padding: 0 var(%[11]s, 0) 0 var(%[12]s, 0);
  position: relative;
  transition: background-color %[13]s;
  white-space: nowrap;
}
.uikit-button:hover {
  cursor: pointer;
  background-color: var(%[14]s, var(%[2]s));
  color: var(%[15]s, var(%[5]s));
}
.uikit-button:focus {
  outline: none;
}
.uikit-button:focus-visible {
  background-color: var(%[16]s, var(%[2]s));
  color: var(%[17]s, var(%[5]s));
}
.uikit-button:active {
  background-color: var(%[18]s, var(%[2]s));
  color: var(%[19]s, var(%[5]s));
}
.uikit-button:disabled {
  cursor: default;
  background-color: var(%[20]s, var(%[2]s));
  color: var(%[21]s, var(%[5]s));
  opacity: var(%[22]s, 1);
}
.uikit-button__icon {
  align-items: center;
  display: flex;
  justify-content: center;
}
.uikit-button__icon--leading {
  margin-right: var(%[23]s);
}
.uikit-button__icon--trailing {
  margin-left: var(%[23]s);
}
.uikit-button__loader {
  align-items: center;
  bottom: 0;
  display: flex;
  justify-content: center;
  left: 0;
  position: absolute;
  right: 0;
  top: 0;
  z-index: 1;
}
.uikit-loader {
  animation: uikit-spin 0.8s linear infinite;
}
@keyframes uikit-spin {
  to {
    transform: rotate(360deg);
  }
}
@media (prefers-reduced-motion: reduce) {
  .uikit-loader {
    animation: none;
  }
}
`,
		t.FontFamily,
		varBg,
		varBorder,
		varShadow,
		varFg,
		varFontSize,
		varFontWeight,
		varHeight,
		varLetterSpacing,
		varLineHeight,
		varPaddingRight,
		varPaddingLeft,
		t.Transition.Fast,
		varHoverBg,
		varHoverFg,
		varFocusBg,
		varFocusFg,
		varActiveBg,
		varActiveFg,
		varDisabledBg,
		varDisabledFg,
		varDisabledOpacity,
		varIconGap,
	)
}

// Stylesheet writes the button CSS wrapped in a style element.
func Stylesheet(t *theme.Theme) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, s := range []string{"<style>", CSS(t), "</style>"} {
			if _, err := io.WriteString(w, s); err != nil {
				return err
			}
		}
		return nil
	})
}
