// Package overlay draws the on-screen help and status text.
package overlay

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"orrery/internal/scene"
)

// Help lists the controls.
var Help = []string{
	"Controls:",
	"    1-9 = lock onto planet",
	"    0 = unlock from planet",
	"    -/= = decrease/increase orbit speed",
	"      (of currently selected planet)",
	"    d = stare at sun",
	"    s = toggle animation",
	"    t = toggle drawing trajectories",
	"    a = toggle drawing axes",
	"    n/w = decrease/increase fov",
	"    r = reset camera",
	"    arrow keys = angle camera",
	"    ijkmuo = camera",
	"    q = quit",
}

// State is everything the overlay reports.
type State struct {
	Options  scene.Options
	Staring  bool
	Fov      float64
	Selected *scene.Body // nil when detached
	Tick     int
	Clock    Clock
}

// OptionsLine renders the active toggles, e.g.
// "options: spinning trajectories axes fov:75".
func OptionsLine(st State) string {
	var sb strings.Builder
	sb.WriteString("options: ")
	if st.Options.Spinning {
		sb.WriteString("spinning ")
	}
	if st.Staring {
		sb.WriteString("staring ")
	}
	if st.Options.Trajectories {
		sb.WriteString("trajectories ")
	}
	if st.Options.Axes {
		sb.WriteString("axes ")
	}
	sb.WriteString("fov:")
	sb.WriteString(strconv.FormatFloat(st.Fov, 'g', -1, 64))
	return sb.String()
}

// Lines returns the left (help) and right (status) columns.
func Lines(st State) (left, right []string) {
	left = append(append([]string{}, Help...), OptionsLine(st))

	if st.Selected == nil {
		right = append(right, "satellite: none")
	} else {
		right = append(right, strings.Split(strings.TrimRight(st.Selected.Stats(), "\n"), "\n")...)
	}
	right = append(right, fmt.Sprintf("tick %d  JD %.4f", st.Tick, st.Clock.JD(st.Tick)))
	right = append(right, st.Clock.At(st.Tick).UTC().Format("2006-01-02 15:04 MST"))
	return left, right
}

const (
	margin     = 8
	lineHeight = 14
)

// Draw writes the overlay text in white onto dst.
func Draw(dst draw.Image, st State) {
	left, right := Lines(st)
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.White),
		Face: face,
	}

	width := 0
	for _, l := range left {
		if w := d.MeasureString(l).Ceil(); w > width {
			width = w
		}
	}

	b := dst.Bounds()
	column(d, b.Min.X+margin, b.Min.Y+margin, left)
	column(d, b.Min.X+max(b.Dx()/5, width+3*margin), b.Min.Y+margin, right)
}

func column(d *font.Drawer, x, y int, lines []string) {
	ascent := d.Face.Metrics().Ascent.Ceil()
	for i, l := range lines {
		d.Dot = fixed.P(x, y+ascent+i*lineHeight)
		d.DrawString(l)
	}
}
