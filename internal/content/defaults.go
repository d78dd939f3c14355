package content

import (
	"github.com/google/uuid"

	"landing-builder-backend/internal/models"
)

// NewID generates ids for sections and list items.
var NewID = uuid.NewString

// DefaultContent returns the starting payload of a new section of kind.
// List items receive fresh ids on every call.
func DefaultContent(kind models.SectionKind) models.SectionContent {
	switch kind {
	case models.KindHero:
		return models.HeroContent{
			Title:            "Build pages that convert",
			Subtitle:         "Launch a polished landing page in minutes, no code required.",
			CTAText:          "Get started",
			CTALink:          "#",
			SecondaryCTAText: "Learn more",
			SecondaryCTALink: "#features",
		}
	case models.KindFeatures:
		return models.FeaturesContent{
			Title:    "Features",
			Subtitle: "Everything you need to ship faster",
			Items: []models.FeatureItem{
				{ID: NewID(), Icon: "⚡", Title: "Fast", Description: "Pages load in a blink on every device."},
				{ID: NewID(), Icon: "🛡", Title: "Secure", Description: "Hardened defaults keep visitors safe."},
				{ID: NewID(), Icon: "🎨", Title: "Flexible", Description: "Tune every colour, font and spacing."},
			},
		}
	case models.KindPricing:
		return models.PricingContent{
			Title:    "Pricing",
			Subtitle: "Simple plans that grow with you",
			Plans: []models.PricingPlan{
				{ID: NewID(), Name: "Starter", Price: "$0", Period: "/month", Description: "For side projects",
					Features: []string{"1 page", "Basic analytics", "Community support"}, CTAText: "Start free", CTALink: "#"},
				{ID: NewID(), Name: "Pro", Price: "$29", Period: "/month", Description: "For growing teams",
					Features: []string{"Unlimited pages", "Advanced analytics", "Priority support"}, CTAText: "Start trial", CTALink: "#", IsPopular: true},
				{ID: NewID(), Name: "Enterprise", Price: "Custom", Period: "", Description: "For large organisations",
					Features: []string{"Dedicated manager", "SLA", "SSO"}, CTAText: "Contact sales", CTALink: "#contact"},
			},
		}
	case models.KindTestimonials:
		return models.TestimonialsContent{
			Title:    "What our customers say",
			Subtitle: "Trusted by teams around the world",
			Items: []models.Testimonial{
				{ID: NewID(), Name: "Alex Kim", Role: "CEO", Company: "Northwind", Content: "We launched our product page in a single afternoon.", Rating: 5},
				{ID: NewID(), Name: "Sam Rivera", Role: "Marketing Lead", Company: "Contoso", Content: "Conversion went up the week we switched.", Rating: 5},
				{ID: NewID(), Name: "Jordan Lee", Role: "Founder", Company: "Fabrikam", Content: "The export is clean enough to host anywhere.", Rating: 4},
			},
		}
	case models.KindStats:
		return models.StatsContent{
			Items: []models.StatItem{
				{ID: NewID(), Value: "10K+", Label: "Customers"},
				{ID: NewID(), Value: "99.9%", Label: "Uptime"},
				{ID: NewID(), Value: "24/7", Label: "Support"},
				{ID: NewID(), Value: "50+", Label: "Countries"},
			},
		}
	case models.KindVideo:
		return models.VideoContent{
			Title:       "See it in action",
			Subtitle:    "A two minute tour",
			VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
			AspectRatio: "16/9",
		}
	case models.KindGallery:
		return models.GalleryContent{
			Title:       "Gallery",
			AspectRatio: "4/3",
			Images: []models.GalleryImage{
				{ID: NewID(), URL: "https://picsum.photos/seed/lp1/800/600", Caption: ""},
				{ID: NewID(), URL: "https://picsum.photos/seed/lp2/800/600", Caption: ""},
				{ID: NewID(), URL: "https://picsum.photos/seed/lp3/800/600", Caption: ""},
			},
		}
	case models.KindLogos:
		return models.LogosContent{
			Title:     "Trusted by",
			Grayscale: true,
			Logos: []models.Logo{
				{ID: NewID(), Name: "Northwind", URL: "https://placehold.co/160x48?text=Northwind"},
				{ID: NewID(), Name: "Contoso", URL: "https://placehold.co/160x48?text=Contoso"},
				{ID: NewID(), Name: "Fabrikam", URL: "https://placehold.co/160x48?text=Fabrikam"},
				{ID: NewID(), Name: "Tailspin", URL: "https://placehold.co/160x48?text=Tailspin"},
				{ID: NewID(), Name: "Litware", URL: "https://placehold.co/160x48?text=Litware"},
			},
		}
	case models.KindFAQ:
		return models.FAQContent{
			Title:    "Frequently asked questions",
			Subtitle: "",
			Items: []models.FAQItem{
				{ID: NewID(), Question: "Can I cancel anytime?", Answer: "Yes. Plans are billed monthly and can be cancelled at any time."},
				{ID: NewID(), Question: "Do you offer a free trial?", Answer: "Every paid plan starts with a 14 day trial."},
				{ID: NewID(), Question: "Can I export my page?", Answer: "Export a self-contained HTML file and host it anywhere."},
			},
		}
	case models.KindCTA:
		return models.CTAContent{
			Title:         "Ready to get started?",
			Subtitle:      "Join thousands of teams building with us.",
			ButtonText:    "Start now",
			ButtonLink:    "#",
			SecondaryText: "Talk to sales",
			SecondaryLink: "#contact",
		}
	case models.KindContact:
		return models.ContactContent{
			Title:      "Contact us",
			Subtitle:   "We usually reply within one business day.",
			SubmitText: "Send message",
			Fields: []models.FormField{
				{ID: NewID(), Type: "text", Label: "Name", Placeholder: "Your name", Required: true, Width: "half"},
				{ID: NewID(), Type: "email", Label: "Email", Placeholder: "you@example.com", Required: true, Width: "half"},
				{ID: NewID(), Type: "textarea", Label: "Message", Placeholder: "How can we help?", Required: true, Width: "full"},
			},
		}
	case models.KindFooter:
		return models.FooterContent{
			CompanyName: "Your Company",
			Description: "Landing pages made simple.",
			LinkGroups: []models.LinkGroup{
				{ID: NewID(), Title: "Product", Links: []models.FooterLink{
					{ID: NewID(), Label: "Features", URL: "#features"},
					{ID: NewID(), Label: "Pricing", URL: "#pricing"},
				}},
				{ID: NewID(), Title: "Company", Links: []models.FooterLink{
					{ID: NewID(), Label: "About", URL: "#"},
					{ID: NewID(), Label: "Contact", URL: "#contact"},
				}},
			},
			Social: []models.SocialLink{
				{ID: NewID(), Platform: "twitter", URL: "https://twitter.com"},
				{ID: NewID(), Platform: "github", URL: "https://github.com"},
			},
			Copyright: "© Your Company. All rights reserved.",
		}
	case models.KindDivider:
		return models.DividerContent{Style: "solid", Color: "#e5e7eb", Height: 1, Width: "100%"}
	case models.KindSpacer:
		return models.SpacerContent{Height: 80}
	case models.KindCustom:
		return models.CustomContent{Format: FormatHTML, Body: "<div style=\"text-align:center\"><p>Custom HTML</p></div>"}
	}
	return models.UnknownContent{SectionKind: kind}
}

// Custom section formats.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

var itemLists = map[models.SectionKind][]string{
	models.KindFeatures:     {"items"},
	models.KindPricing:      {"plans"},
	models.KindTestimonials: {"items"},
	models.KindStats:        {"items"},
	models.KindGallery:      {"images"},
	models.KindLogos:        {"logos"},
	models.KindFAQ:          {"items"},
	models.KindContact:      {"fields"},
	models.KindFooter:       {"linkGroups", "social"},
}

// Lists returns the names of the item lists a kind carries.
func Lists(kind models.SectionKind) []string {
	lists := itemLists[kind]
	out := make([]string, len(lists))
	copy(out, lists)
	return out
}

// HasList reports whether kind carries the named list.
func HasList(kind models.SectionKind, list string) bool {
	for _, candidate := range itemLists[kind] {
		if candidate == list {
			return true
		}
	}
	return false
}

// NewItem returns the default fields of a new item of the list, without an id.
func NewItem(kind models.SectionKind, list string) map[string]interface{} {
	switch {
	case kind == models.KindFeatures:
		return map[string]interface{}{"icon": "✨", "title": "New feature", "description": "Describe this feature."}
	case kind == models.KindPricing:
		return map[string]interface{}{"name": "New plan", "price": "$0", "period": "/month", "description": "",
			"features": []interface{}{"Feature"}, "ctaText": "Choose plan", "ctaLink": "#", "isPopular": false}
	case kind == models.KindTestimonials:
		return map[string]interface{}{"name": "Customer", "role": "", "company": "", "content": "Share what they said.", "rating": 5}
	case kind == models.KindStats:
		return map[string]interface{}{"value": "0", "label": "Metric"}
	case kind == models.KindGallery:
		return map[string]interface{}{"url": "https://picsum.photos/800/600", "caption": ""}
	case kind == models.KindLogos:
		return map[string]interface{}{"name": "Logo", "url": "https://placehold.co/160x48?text=Logo"}
	case kind == models.KindFAQ:
		return map[string]interface{}{"question": "New question?", "answer": "Answer."}
	case kind == models.KindContact:
		return map[string]interface{}{"type": "text", "label": "Field", "placeholder": "", "required": false, "width": "full"}
	case kind == models.KindFooter && list == "linkGroups":
		return map[string]interface{}{"title": "Links", "links": []interface{}{
			map[string]interface{}{"id": NewID(), "label": "Link", "url": "#"},
		}}
	case kind == models.KindFooter && list == "social":
		return map[string]interface{}{"platform": "website", "url": "#"}
	}
	return map[string]interface{}{}
}
