package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SectionContent is the kind-tagged payload of a section. Every variant is a
// value type whose Kind matches the section it belongs to.
type SectionContent interface {
	Kind() SectionKind
}

// HeroContent is the payload of a hero banner.
type HeroContent struct {
	Title            string `json:"title"`
	Subtitle         string `json:"subtitle"`
	CTAText          string `json:"ctaText"`
	CTALink          string `json:"ctaLink"`
	SecondaryCTAText string `json:"secondaryCtaText"`
	SecondaryCTALink string `json:"secondaryCtaLink"`
	Image            string `json:"image"`
}

// FeatureItem is one entry of a features grid.
type FeatureItem struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// FeaturesContent is the payload of a features grid.
type FeaturesContent struct {
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Items    []FeatureItem `json:"items"`
}

// PricingPlan is one plan of a pricing table.
type PricingPlan struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Period      string   `json:"period"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	CTAText     string   `json:"ctaText"`
	CTALink     string   `json:"ctaLink"`
	IsPopular   bool     `json:"isPopular"`
}

// PricingContent is the payload of a pricing table.
type PricingContent struct {
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Plans    []PricingPlan `json:"plans"`
}

// Testimonial is one customer quote.
type Testimonial struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Company string `json:"company"`
	Content string `json:"content"`
	Avatar  string `json:"avatar"`
	Rating  int    `json:"rating"`
}

// TestimonialsContent is the payload of a testimonials grid.
type TestimonialsContent struct {
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Items    []Testimonial `json:"items"`
}

// StatItem is one figure of a stats band.
type StatItem struct {
	ID    string `json:"id"`
	Value string `json:"value"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// StatsContent is the payload of a stats band.
type StatsContent struct {
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle"`
	Items    []StatItem `json:"items"`
}

// VideoContent embeds a single video.
type VideoContent struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	VideoURL    string `json:"videoUrl"`
	AspectRatio string `json:"aspectRatio"`
}

// GalleryImage is one image of a gallery.
type GalleryImage struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

// GalleryContent is the payload of an image gallery.
type GalleryContent struct {
	Title       string         `json:"title"`
	Subtitle    string         `json:"subtitle"`
	Images      []GalleryImage `json:"images"`
	AspectRatio string         `json:"aspectRatio"`
}

// Logo is one partner or customer logo.
type Logo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// LogosContent is the payload of a logo strip.
type LogosContent struct {
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Logos     []Logo `json:"logos"`
	Grayscale bool   `json:"grayscale"`
}

// FAQItem is one question and answer.
type FAQItem struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQContent is the payload of a FAQ list.
type FAQContent struct {
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Items    []FAQItem `json:"items"`
}

// CTAContent is the payload of a call-to-action band.
type CTAContent struct {
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle"`
	ButtonText    string `json:"buttonText"`
	ButtonLink    string `json:"buttonLink"`
	SecondaryText string `json:"secondaryText"`
	SecondaryLink string `json:"secondaryLink"`
}

// FormField is one input of a contact form.
type FormField struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Label       string   `json:"label"`
	Placeholder string   `json:"placeholder"`
	Options     []string `json:"options"`
	Required    bool     `json:"required"`
	Width       string   `json:"width"`
}

// ContactContent is the payload of a contact form.
type ContactContent struct {
	Title      string      `json:"title"`
	Subtitle   string      `json:"subtitle"`
	Fields     []FormField `json:"fields"`
	SubmitText string      `json:"submitText"`
	Action     string      `json:"action"`
}

// FooterLink is one navigation link of a footer group.
type FooterLink struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// LinkGroup is a titled column of footer links.
type LinkGroup struct {
	ID    string       `json:"id"`
	Title string       `json:"title"`
	Links []FooterLink `json:"links"`
}

// SocialLink points at a social profile.
type SocialLink struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// FooterContent is the payload of a page footer.
type FooterContent struct {
	CompanyName string       `json:"companyName"`
	Description string       `json:"description"`
	Logo        string       `json:"logo"`
	LinkGroups  []LinkGroup  `json:"linkGroups"`
	Social      []SocialLink `json:"social"`
	Copyright   string       `json:"copyright"`
}

// DividerContent draws a horizontal rule.
type DividerContent struct {
	Style  string `json:"style"`
	Color  string `json:"color"`
	Height int    `json:"height"`
	Width  string `json:"width"`
}

// SpacerContent adds vertical whitespace.
type SpacerContent struct {
	Height int `json:"height"`
}

// CustomContent embeds operator supplied HTML or markdown.
type CustomContent struct {
	Format string `json:"format"`
	Body   string `json:"body"`
}

// UnknownContent keeps the payload of a kind without a registered shape so
// that it survives import and export untouched.
type UnknownContent struct {
	SectionKind SectionKind     `json:"-"`
	Raw         json.RawMessage `json:"-"`
}

func (HeroContent) Kind() SectionKind         { return KindHero }
func (FeaturesContent) Kind() SectionKind     { return KindFeatures }
func (PricingContent) Kind() SectionKind      { return KindPricing }
func (TestimonialsContent) Kind() SectionKind { return KindTestimonials }
func (StatsContent) Kind() SectionKind        { return KindStats }
func (VideoContent) Kind() SectionKind        { return KindVideo }
func (GalleryContent) Kind() SectionKind      { return KindGallery }
func (LogosContent) Kind() SectionKind        { return KindLogos }
func (FAQContent) Kind() SectionKind          { return KindFAQ }
func (CTAContent) Kind() SectionKind          { return KindCTA }
func (ContactContent) Kind() SectionKind      { return KindContact }
func (FooterContent) Kind() SectionKind       { return KindFooter }
func (DividerContent) Kind() SectionKind      { return KindDivider }
func (SpacerContent) Kind() SectionKind       { return KindSpacer }
func (CustomContent) Kind() SectionKind       { return KindCustom }
func (c UnknownContent) Kind() SectionKind    { return c.SectionKind }

// MarshalJSON writes the preserved payload back out.
func (c UnknownContent) MarshalJSON() ([]byte, error) {
	if len(c.Raw) == 0 {
		return []byte("null"), nil
	}
	return c.Raw, nil
}

func decodeInto[T SectionContent](raw []byte) (SectionContent, error) {
	var value T
	if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return value, nil
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, err
	}
	return value, nil
}

var contentDecoders = map[SectionKind]func([]byte) (SectionContent, error){
	KindHero:         decodeInto[HeroContent],
	KindFeatures:     decodeInto[FeaturesContent],
	KindPricing:      decodeInto[PricingContent],
	KindTestimonials: decodeInto[TestimonialsContent],
	KindStats:        decodeInto[StatsContent],
	KindVideo:        decodeInto[VideoContent],
	KindGallery:      decodeInto[GalleryContent],
	KindLogos:        decodeInto[LogosContent],
	KindFAQ:          decodeInto[FAQContent],
	KindCTA:          decodeInto[CTAContent],
	KindContact:      decodeInto[ContactContent],
	KindFooter:       decodeInto[FooterContent],
	KindDivider:      decodeInto[DividerContent],
	KindSpacer:       decodeInto[SpacerContent],
	KindCustom:       decodeInto[CustomContent],
}

// DecodeContent decodes raw JSON into the content variant of kind. Unknown
// kinds yield an UnknownContent carrying the raw payload.
func DecodeContent(kind SectionKind, raw json.RawMessage) (SectionContent, error) {
	decode, ok := contentDecoders[kind]
	if !ok {
		preserved := make(json.RawMessage, len(raw))
		copy(preserved, raw)
		return UnknownContent{SectionKind: kind, Raw: preserved}, nil
	}
	content, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s content: %w", kind, err)
	}
	return content, nil
}

// CloneContent deep copies a content value through its JSON form.
func CloneContent(content SectionContent) SectionContent {
	if content == nil {
		return nil
	}
	raw, err := json.Marshal(content)
	if err != nil {
		return content
	}
	cloned, err := DecodeContent(content.Kind(), raw)
	if err != nil {
		return content
	}
	return cloned
}
