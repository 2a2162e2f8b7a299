package animate

// VisibilityAt gates an avatar's caption bubble on its cycle phase. The
// bubble shows only during the dwell at the far end of the path, never at
// the origin dwell. Because this is a pure function of Phase, the caption
// and the movement pause cannot drift apart: they are the same modulo
// arithmetic.
func VisibilityAt(phase Phase, label string) DialogState {
	return DialogState{
		Visible: phase == PhaseDwellEnd,
		Label:   label,
	}
}
