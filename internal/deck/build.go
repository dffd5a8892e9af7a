package deck

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/dgallion1/orgdeck/internal/extract"
	"github.com/dgallion1/orgdeck/internal/outline"
	"github.com/dgallion1/orgdeck/internal/slug"
)

// IndexFilename is reserved for the deck index page.
const IndexFilename = "index.html"

// Options controls how a heading tree is turned into slides.
type Options struct {
	Marker       Marker
	DeepHeadings DeepHeadings
	Logger       *slog.Logger // nil discards
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Marker:       DefaultMarker,
		DeepHeadings: DeepIgnore,
	}
}

// filenames is the ordered set of names handed out so far.
type filenames struct {
	seen  map[string]struct{}
	order []string
}

func newFilenames(reserved ...string) *filenames {
	f := &filenames{seen: make(map[string]struct{})}
	for _, r := range reserved {
		f.seen[r] = struct{}{}
	}
	return f
}

func (f *filenames) has(name string) bool {
	_, ok := f.seen[name]
	return ok
}

func (f *filenames) add(name string) {
	f.seen[name] = struct{}{}
	f.order = append(f.order, name)
}

type builder struct {
	opts   Options
	log    *slog.Logger
	annot  *regexp.Regexp
	slides []Slide
	names  *filenames
}

// Build walks the level-1 and level-2 headings of doc in document order and
// returns one slide per classified node, each with a unique filename.
// Navigation fields are left empty; see Link.
func Build(doc *outline.Document, opts Options) ([]Slide, error) {
	if opts.DeepHeadings == "" {
		opts.DeepHeadings = DeepIgnore
	}
	if err := validate(doc, opts.DeepHeadings); err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	b := &builder{
		opts:  opts,
		log:   log,
		annot: opts.Marker.pattern(),
		names: newFilenames(IndexFilename),
	}

	for _, n := range doc.Children {
		if err := b.top(n); err != nil {
			return nil, err
		}
	}
	if b.slides == nil {
		b.slides = []Slide{}
	}
	return b.slides, nil
}

func (b *builder) top(n *outline.Node) error {
	heading := display(n.Heading, b.annot)
	path := []string{heading}
	k := classify(n, 1, b.opts.Marker)
	b.log.Debug("classified heading", "heading", heading, "kind", k.String())

	var s Slide
	switch k {
	case kindTitle:
		s = b.titleMarker(n)
	case kindTitleProp:
		lines := extract.Lines(n.Body)
		t := &TitleSlide{Header: Header{Title: heading, Slug: slug.Make(heading)}, Content: []string{}}
		if len(lines) > 0 {
			t.Subtitle = lines[0]
			t.Content = lines[1:]
		}
		s = t
	case kindEvolution, kindGrid, kindRichText:
		s = propertySlide(k, n, Header{Title: heading, Slug: slug.Make(heading)})
	case kindSection:
		if bullets := extract.Bullets(n.Body); len(bullets) > 0 {
			s = &BulletsSlide{Header: Header{Title: heading, Slug: slug.Make(heading)}, Content: bullets}
		}
	case kindLeaf:
		s = &BulletsSlide{Header: Header{Title: heading, Slug: slug.Make(heading)}, Content: extract.Bullets(n.Body)}
	case kindSkip:
		b.log.Debug("skipping empty heading", "heading", heading)
	}

	if s != nil {
		if err := b.add(s, n, path); err != nil {
			return err
		}
	}

	parentSlug := slug.Make(heading)
	for _, c := range n.Children {
		if err := b.child(c, heading, parentSlug, path); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) child(n *outline.Node, parent, parentSlug string, parentPath []string) error {
	heading := display(n.Heading, b.annot)
	path := append(parentPath[:len(parentPath):len(parentPath)], heading)

	for _, deep := range n.Children {
		b.log.Debug("ignoring deep heading", "path", strings.Join(path, " > "), "heading", deep.Heading, "level", deep.Level)
	}

	h := Header{Title: parent, Subtitle: heading, Slug: slug.Join(parentSlug, heading)}
	k := classify(n, 2, b.opts.Marker)
	b.log.Debug("classified heading", "heading", heading, "kind", k.String())

	var s Slide
	switch k {
	case kindTitle:
		s = b.titleMarker(n)
	case kindTitleProp:
		s = &TitleSlide{Header: h, Content: nonNil(extract.Lines(n.Body))}
	case kindEvolution, kindGrid, kindRichText:
		s = propertySlide(k, n, h)
	default:
		if blocks := extract.CodeBlocks(n.Body); len(blocks) > 0 {
			s = &CodeSlide{Header: h, Blocks: blocks}
		} else {
			s = &BulletsSlide{Header: h, Content: extract.Bullets(n.Body)}
		}
	}
	if s == nil {
		b.log.Debug("skipping empty heading", "heading", heading)
		return nil
	}
	return b.add(s, n, path)
}

// titleMarker reads the body as title, subtitle and extra lines, or as a
// centered install command. An empty body yields no slide.
func (b *builder) titleMarker(n *outline.Node) Slide {
	lines := extract.Lines(n.Body)
	if len(lines) == 0 {
		return nil
	}
	if isInstallCommand(lines[0]) {
		return &CenteredCodeSlide{
			Header: Header{Slug: slug.Make(lines[0])},
			Code:   strings.Join(lines, "\n"),
		}
	}
	t := &TitleSlide{Header: Header{Title: lines[0], Slug: slug.Make(lines[0])}, Content: []string{}}
	if len(lines) > 1 {
		t.Subtitle = lines[1]
	}
	if len(lines) > 2 {
		t.Content = lines[2:]
	}
	return t
}

func propertySlide(k kind, n *outline.Node, h Header) Slide {
	switch k {
	case kindEvolution:
		return &EvolutionSlide{Header: h, Entries: extract.Timeline(n.Body)}
	case kindGrid:
		return &GridSlide{Header: h, Items: extract.Grid(n.Body)}
	default:
		return &DefaultSlide{Header: h, HTML: extract.RichText(n.Body)}
	}
}

// add attaches images, assigns the filename and appends the slide. A name
// already in use gets the slide's position appended; if that is taken too the
// build fails.
func (b *builder) add(s Slide, n *outline.Node, path []string) error {
	h := s.Head()

	if v, ok := n.Property("IMAGES"); ok && s.Template() != TemplateTitle {
		h.Images = extract.Images(v)
	}

	index := len(b.slides)
	base := h.Slug
	if base == "" {
		base = fmt.Sprintf("slide-%d", index)
	}
	name := base + ".html"
	if b.names.has(name) {
		name = fmt.Sprintf("%s-%d.html", base, index)
		b.log.Debug("filename collision", "slug", base, "filename", name)
		if b.names.has(name) {
			return &AssemblyError{Path: path, Filename: name}
		}
	}
	h.Filename = name
	b.names.add(name)
	b.slides = append(b.slides, s)
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
