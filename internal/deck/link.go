package deck

// Link fills in the navigation fields of every slide. Order and membership
// are unchanged; all slides share one read-only filename list.
func Link(slides []Slide) []Slide {
	all := make([]string, len(slides))
	for i, s := range slides {
		all[i] = s.Head().Filename
	}

	for i, s := range slides {
		nav := Nav{Index: i, Total: len(slides), All: all}
		if i > 0 {
			nav.Prev = all[i-1]
		}
		if i < len(slides)-1 {
			nav.Next = all[i+1]
		}
		s.Head().Nav = nav
	}
	return slides
}
