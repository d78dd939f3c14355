package sections

// DefaultRegistry returns a registry pre-populated with the built-in section renderers.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	RegisterDefaults(reg)
	return reg
}

// RegisterDefaults adds the built-in section renderers to the provided registry.
func RegisterDefaults(reg *Registry) {
	if reg == nil {
		return
	}

	// Marketing
	reg.MustRegister(heroDescriptor())
	reg.MustRegister(ctaDescriptor())

	// Content
	reg.MustRegister(featuresDescriptor())
	reg.MustRegister(faqDescriptor())

	// Social proof
	reg.MustRegister(testimonialsDescriptor())
	reg.MustRegister(statsDescriptor())
	reg.MustRegister(logosDescriptor())

	// Conversion
	reg.MustRegister(pricingDescriptor())
	reg.MustRegister(contactDescriptor())

	// Media
	reg.MustRegister(videoDescriptor())
	reg.MustRegister(galleryDescriptor())

	// Layout and navigation
	reg.MustRegister(footerDescriptor())
	reg.MustRegister(dividerDescriptor())
	reg.MustRegister(spacerDescriptor())
	reg.MustRegister(customDescriptor())
}
