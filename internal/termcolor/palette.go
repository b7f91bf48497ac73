package termcolor

// Palette styles diagnostic text for one stream.
type Palette struct {
	Enabled bool
	Profile Profile
}

func NewPalette(enabled bool, env map[string]string) Palette {
	return Palette{Enabled: enabled, Profile: DetectProfile(env)}
}

func (p Palette) Header(s string) string {
	return Apply(Style{Bold: true, Underline: true}, s, p.Enabled)
}

func (p Palette) Error(s string) string {
	return Apply(p.pick(1, 196, true), s, p.Enabled)
}

func (p Palette) Category(s string) string {
	return Apply(p.pick(6, 37, false), s, p.Enabled)
}

func (p Palette) Dim(s string) string {
	return Apply(Style{Dim: true}, s, p.Enabled)
}

func (p Palette) pick(basic, ansi256 int, bold bool) Style {
	if p.Profile == ProfileANSI256 {
		return Style{Bold: bold, FG256: &ansi256}
	}
	return Style{Bold: bold, FGBasic: &basic}
}
