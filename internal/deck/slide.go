package deck

import "github.com/dgallion1/orgdeck/internal/extract"

// Template names the rendering template a slide is assigned to.
type Template string

const (
	TemplateTitle        Template = "title"
	TemplateBullets      Template = "bullets"
	TemplateCode         Template = "code"
	TemplateCodeCentered Template = "code_centered"
	TemplateGrid         Template = "grid"
	TemplateEvolution    Template = "evolution"
	TemplateDefault      Template = "default"
)

// Templates lists every template a deck can reference.
var Templates = []Template{
	TemplateTitle, TemplateBullets, TemplateCode, TemplateCodeCentered,
	TemplateGrid, TemplateEvolution, TemplateDefault,
}

// Nav is filled in by Link once every slide has its filename.
type Nav struct {
	Prev  string   `json:"prev,omitempty"`
	Next  string   `json:"next,omitempty"`
	Index int      `json:"current_index"`
	Total int      `json:"total_slides"`
	All   []string `json:"all_slides"` // shared by every slide, do not modify
}

// Header holds the fields every slide has. Empty strings mean absent.
type Header struct {
	Title    string          `json:"title,omitempty"`
	Subtitle string          `json:"subtitle,omitempty"`
	Slug     string          `json:"slug"`
	Filename string          `json:"filename"`
	Images   []extract.Image `json:"images,omitempty"`
	Nav      Nav             `json:"nav"`
}

// Slide is implemented by one struct per template.
type Slide interface {
	Template() Template
	Head() *Header
}

type TitleSlide struct {
	Header
	Content []string `json:"content"`
}

type BulletsSlide struct {
	Header
	Content []string `json:"content"`
}

type CodeSlide struct {
	Header
	Blocks []extract.CodeBlock `json:"code_blocks"`
}

// CenteredCodeSlide shows a single command, typically an install line.
type CenteredCodeSlide struct {
	Header
	Code string `json:"code"`
}

type GridSlide struct {
	Header
	Items []extract.GridItem `json:"items"`
}

type EvolutionSlide struct {
	Header
	Entries []extract.TimelineEntry `json:"entries"`
}

// DefaultSlide carries a rendered HTML fragment.
type DefaultSlide struct {
	Header
	HTML string `json:"html"`
}

func (s *TitleSlide) Template() Template        { return TemplateTitle }
func (s *BulletsSlide) Template() Template      { return TemplateBullets }
func (s *CodeSlide) Template() Template         { return TemplateCode }
func (s *CenteredCodeSlide) Template() Template { return TemplateCodeCentered }
func (s *GridSlide) Template() Template         { return TemplateGrid }
func (s *EvolutionSlide) Template() Template    { return TemplateEvolution }
func (s *DefaultSlide) Template() Template      { return TemplateDefault }

func (h *Header) Head() *Header { return h }
