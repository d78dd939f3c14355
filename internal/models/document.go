package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DocumentVersion is written into every exported document.
const DocumentVersion = 1

// SectionKind selects a section's content shape and renderer pair.
type SectionKind string

const (
	KindHero         SectionKind = "hero"
	KindFeatures     SectionKind = "features"
	KindPricing      SectionKind = "pricing"
	KindTestimonials SectionKind = "testimonials"
	KindStats        SectionKind = "stats"
	KindVideo        SectionKind = "video"
	KindGallery      SectionKind = "gallery"
	KindLogos        SectionKind = "logos"
	KindFAQ          SectionKind = "faq"
	KindCTA          SectionKind = "cta"
	KindContact      SectionKind = "contact"
	KindFooter       SectionKind = "footer"
	KindDivider      SectionKind = "divider"
	KindSpacer       SectionKind = "spacer"
	KindCustom       SectionKind = "custom"
)

var sectionKinds = []SectionKind{
	KindHero, KindFeatures, KindPricing, KindTestimonials, KindStats,
	KindVideo, KindGallery, KindLogos, KindFAQ, KindCTA,
	KindContact, KindFooter, KindDivider, KindSpacer, KindCustom,
}

// SectionKinds returns every known kind in catalogue order.
func SectionKinds() []SectionKind {
	kinds := make([]SectionKind, len(sectionKinds))
	copy(kinds, sectionKinds)
	return kinds
}

// ParseSectionKind normalises the value and reports whether it is a known kind.
func ParseSectionKind(value string) (SectionKind, bool) {
	kind := SectionKind(strings.TrimSpace(strings.ToLower(value)))
	for _, known := range sectionKinds {
		if known == kind {
			return kind, true
		}
	}
	return kind, false
}

// IsDark reports whether the kind defaults to a dark background.
func (k SectionKind) IsDark() bool {
	switch k {
	case KindHero, KindCTA, KindFooter, KindStats:
		return true
	}
	return false
}

// Section is one ordered, independently styled block of the document.
type Section struct {
	ID      string         `json:"id"`
	Kind    SectionKind    `json:"kind"`
	Content SectionContent `json:"content"`
	Style   SectionStyle   `json:"style"`
}

type sectionJSON struct {
	ID      string          `json:"id"`
	Kind    SectionKind     `json:"kind"`
	Content json.RawMessage `json:"content"`
	Style   SectionStyle    `json:"style"`
}

// UnmarshalJSON decodes the content into the variant selected by kind.
func (s *Section) UnmarshalJSON(data []byte) error {
	var raw sectionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	content, err := DecodeContent(raw.Kind, raw.Content)
	if err != nil {
		return fmt.Errorf("section %s: %w", raw.ID, err)
	}
	s.ID = raw.ID
	s.Kind = raw.Kind
	s.Content = content
	s.Style = raw.Style
	return nil
}

// Clone returns a deep copy of the section.
func (s Section) Clone() Section {
	cloned := s
	cloned.Content = CloneContent(s.Content)
	return cloned
}

// GlobalStyles is the theme layer consulted when a section keeps its kind default.
type GlobalStyles struct {
	PrimaryColor    string `json:"primaryColor" validate:"css_color"`
	SecondaryColor  string `json:"secondaryColor" validate:"css_color"`
	AccentColor     string `json:"accentColor" validate:"css_color"`
	BackgroundColor string `json:"backgroundColor" validate:"css_color"`
	TextColor       string `json:"textColor" validate:"css_color"`
	HeadingFont     string `json:"headingFont" validate:"required"`
	BodyFont        string `json:"bodyFont" validate:"required"`
	BorderRadius    int    `json:"borderRadius" validate:"gte=0"`
	BaseSpacing     int    `json:"baseSpacing" validate:"gte=0"`
}

// GlobalStylesPatch is a partial GlobalStyles.
type GlobalStylesPatch struct {
	PrimaryColor    *string `json:"primaryColor,omitempty"`
	SecondaryColor  *string `json:"secondaryColor,omitempty"`
	AccentColor     *string `json:"accentColor,omitempty"`
	BackgroundColor *string `json:"backgroundColor,omitempty"`
	TextColor       *string `json:"textColor,omitempty"`
	HeadingFont     *string `json:"headingFont,omitempty"`
	BodyFont        *string `json:"bodyFont,omitempty"`
	BorderRadius    *int    `json:"borderRadius,omitempty"`
	BaseSpacing     *int    `json:"baseSpacing,omitempty"`
}

// PageMeta holds head metadata and operator supplied head/CSS snippets.
type PageMeta struct {
	Description string `json:"description"`
	Favicon     string `json:"favicon"`
	OGImage     string `json:"ogImage"`
	ThemeColor  string `json:"themeColor"`
	Lang        string `json:"lang"`
	CustomHead  string `json:"customHead"`
	CustomCSS   string `json:"customCSS"`
}

// PageMetaPatch is a partial PageMeta.
type PageMetaPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Favicon     *string `json:"favicon,omitempty"`
	OGImage     *string `json:"ogImage,omitempty"`
	ThemeColor  *string `json:"themeColor,omitempty"`
	Lang        *string `json:"lang,omitempty"`
	CustomHead  *string `json:"customHead,omitempty"`
	CustomCSS   *string `json:"customCSS,omitempty"`
}

// Document is the aggregate edited, rendered and exported as a whole.
type Document struct {
	Version      int          `json:"version"`
	PageTitle    string       `json:"pageTitle"`
	Meta         PageMeta     `json:"meta"`
	GlobalStyles GlobalStyles `json:"globalStyles"`
	Sections     []Section    `json:"sections"`
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	cloned := d
	if d.Sections != nil {
		cloned.Sections = make([]Section, len(d.Sections))
		for i, section := range d.Sections {
			cloned.Sections[i] = section.Clone()
		}
	}
	return cloned
}

// IndexOf returns the position of the section with the id, or -1.
func (d Document) IndexOf(id string) int {
	for i, section := range d.Sections {
		if section.ID == id {
			return i
		}
	}
	return -1
}

// Section returns the section with the id.
func (d Document) Section(id string) (Section, bool) {
	if i := d.IndexOf(id); i >= 0 {
		return d.Sections[i], true
	}
	return Section{}, false
}
