package extract

import "strings"

// Image is one entry of an IMAGES property.
type Image struct {
	Src     string `json:"src"`
	Alt     string `json:"alt"`
	Caption string `json:"caption_main"`
	Italic  bool   `json:"caption_italic"`
	Sub     string `json:"caption_sub,omitempty"` // empty when absent
}

// Images parses a property value of the form
//
//	src|caption[|sub][;src|caption[|sub]...]
//
// A caption wrapped in double quotes is rendered in italics. Specs without a
// source or a caption are dropped.
func Images(value string) []Image {
	images := []Image{}
	for _, spec := range strings.Split(value, ";") {
		parts := strings.Split(spec, "|")
		if len(parts) < 2 {
			continue
		}
		src := strings.TrimSpace(parts[0])
		caption := strings.TrimSpace(parts[1])
		if src == "" || caption == "" {
			continue
		}

		img := Image{Src: src}
		if len(caption) >= 2 && strings.HasPrefix(caption, `"`) && strings.HasSuffix(caption, `"`) {
			caption = strings.TrimSpace(caption[1 : len(caption)-1])
			img.Italic = true
		}
		img.Caption = caption
		img.Alt = caption
		if len(parts) > 2 {
			img.Sub = strings.TrimSpace(strings.Join(parts[2:], "|"))
		}
		images = append(images, img)
	}
	return images
}
