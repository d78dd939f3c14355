package templates

// Built-in preset ids.
const (
	BlankID    = "blank"
	SaaSID     = "saas"
	CoachingID = "coaching"
)

type m = map[string]interface{}

func gradient(from, to string) m {
	return m{"background": m{"type": "gradient", "gradient": m{"from": from, "to": to, "angle": 135}}}
}

func builtinDefs() []presetDef {
	return []presetDef{
		{
			ID:          BlankID,
			Name:        "Blank",
			Description: "Start from an empty page",
			Icon:        "plus",
		},
		{
			ID:          SaaSID,
			Name:        "SaaS",
			Description: "Software product launch page",
			Icon:        "sparkles",
			Sections: []sectionDef{
				{
					Kind: "hero",
					Content: m{
						"title":    "Make your team ten times more productive",
						"subtitle": "An AI-powered platform that removes busywork from every workflow",
					},
					Style: gradient("#0f172a", "#1e3a5f"),
				},
				{
					Kind:  "logos",
					Style: m{"background": m{"color": "#f8fafc"}, "padding": m{"top": 60, "bottom": 60}},
				},
				{Kind: "features"},
				{Kind: "stats", Style: gradient("#0ea5e9", "#8b5cf6")},
				{Kind: "pricing"},
				{Kind: "testimonials", Style: m{"background": m{"color": "#f8fafc"}}},
				{Kind: "faq"},
				{Kind: "cta", Style: gradient("#0ea5e9", "#8b5cf6")},
				{Kind: "footer"},
			},
		},
		{
			ID:          CoachingID,
			Name:        "Coaching",
			Description: "Personal service or consulting page",
			Icon:        "users",
			Sections: []sectionDef{
				{
					Kind: "hero",
					Content: m{
						"title":    "Unlock your full potential",
						"subtitle": "A coach with over ten years of experience helps you reach your goals",
						"ctaText":  "Book a free session",
					},
					Style: gradient("#1e3a5f", "#0f172a"),
				},
				{
					Kind: "stats",
					Content: m{"items": []interface{}{
						m{"id": "clients", "value": "500+", "label": "Clients coached"},
						m{"id": "success", "value": "95%", "label": "Goals reached"},
						m{"id": "years", "value": "10+", "label": "Years of experience"},
					}},
					Style: m{"background": m{"color": "#ffffff"}, "textColor": "#1f2937"},
				},
				{
					Kind: "features",
					Content: m{
						"title":    "Programmes",
						"subtitle": "Three programmes that support your growth",
					},
				},
				{Kind: "testimonials", Style: m{"background": m{"color": "#f8fafc"}}},
				{Kind: "pricing", Content: m{"title": "Courses"}},
				{
					Kind:    "contact",
					Content: m{"title": "Book a free session"},
					Style:   m{"background": m{"color": "#0f172a"}, "textColor": "#ffffff"},
				},
				{Kind: "footer"},
			},
		},
	}
}
