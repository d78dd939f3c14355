package sections

import (
	"net/url"
	"strings"

	"landing-builder-backend/internal/constants"
	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/theme"
)

func videoDescriptor() *SectionDescriptor {
	return describe[models.VideoContent](SectionMetadata{
		Kind:        models.KindVideo,
		Name:        "Video",
		Description: "Embedded YouTube, Vimeo or direct video",
		Category:    "media",
		Icon:        "play",
	}, renderVideo)
}

func galleryDescriptor() *SectionDescriptor {
	return describe[models.GalleryContent](SectionMetadata{
		Kind:        models.KindGallery,
		Name:        "Gallery",
		Description: "Image grid with optional captions",
		Category:    "media",
		Icon:        "image",
	}, renderGallery)
}

func logosDescriptor() *SectionDescriptor {
	return describe[models.LogosContent](SectionMetadata{
		Kind:        models.KindLogos,
		Name:        "Logo cloud",
		Description: "Row of partner or customer logos",
		Category:    "social-proof",
		Icon:        "award",
	}, renderLogos)
}

func renderVideo(m *markup, c models.VideoContent, r theme.Resolved) {
	m.header(r, c.Title, c.Subtitle)
	src := strings.TrimSpace(c.VideoURL)
	if src == "" {
		return
	}
	m.open("div", m.class("frame"), []theme.Declaration{
		decl("position", "relative"),
		decl("aspect-ratio", aspectRatio(c.AspectRatio)),
		decl("border-radius", r.CardRadius),
		decl("overflow", "hidden"),
		decl("background", "#000000"),
	}, m.field("videoUrl"))
	fill := []theme.Declaration{
		decl("position", "absolute"),
		decl("inset", "0"),
		decl("width", "100%"),
		decl("height", "100%"),
		decl("border", "0"),
	}
	if embed, ok := videoEmbedURL(src); ok {
		m.open("iframe", m.class("player"), fill,
			attr("src", embed),
			attr("title", c.Title),
			`allow="accelerometer; autoplay; encrypted-media; picture-in-picture"`,
			"allowfullscreen",
		)
		m.close("iframe")
	} else {
		m.open("video", m.class("player"), fill, attr("src", safeHref(src)), "controls", `preload="metadata"`)
		m.close("video")
	}
	m.close("div")
}

func renderGallery(m *markup, c models.GalleryContent, r theme.Resolved) {
	m.header(r, c.Title, c.Subtitle)
	m.openList("div", m.class("grid"), r.GridDeclarations(r.Columns), "images")
	for _, image := range c.Images {
		m.openItem("figure", m.class("item"), []theme.Declaration{decl("margin", "0")}, "images", image.ID)
		m.void("img", m.class("image"), []theme.Declaration{
			decl("width", "100%"),
			decl("aspect-ratio", aspectRatio(c.AspectRatio)),
			decl("object-fit", "cover"),
			decl("border-radius", r.CardRadius),
			decl("display", "block"),
		}, attr("src", image.URL), attr("alt", image.Caption), `loading="lazy"`)
		m.itemText("figcaption", m.class("caption"), []theme.Declaration{
			decl("margin-top", "8px"),
			decl("opacity", "0.8"),
			decl("font-size", r.Text(constants.SmallTextScale)),
		}, image.Caption, "images", image.ID, "caption")
		m.close("figure")
	}
	m.close("div")
}

func renderLogos(m *markup, c models.LogosContent, r theme.Resolved) {
	m.header(r, c.Title, c.Subtitle)
	logoStyle := []theme.Declaration{
		decl("max-height", "40px"),
		decl("max-width", "140px"),
		decl("object-fit", "contain"),
	}
	if c.Grayscale {
		logoStyle = with(logoStyle, decl("filter", "grayscale(100%)"), decl("opacity", "0.7"))
	}
	m.openList("div", m.class("row"), []theme.Declaration{
		decl("display", "flex"),
		decl("flex-wrap", "wrap"),
		decl("align-items", "center"),
		decl("justify-content", r.JustifyContent),
		decl("gap", r.Gap),
	}, "logos")
	for _, logo := range c.Logos {
		m.openItem("div", m.class("item"), nil, "logos", logo.ID)
		if strings.TrimSpace(logo.URL) != "" {
			m.void("img", m.class("image"), logoStyle, attr("src", logo.URL), attr("alt", logo.Name))
		} else {
			m.itemText("span", m.class("name"), []theme.Declaration{
				decl("font-family", r.HeadingFont),
				decl("font-weight", "700"),
				decl("font-size", r.Text(constants.CardTitleScale)),
				decl("opacity", "0.7"),
			}, logo.Name, "logos", logo.ID, "name")
		}
		m.close("div")
	}
	m.close("div")
}

// videoEmbedURL maps YouTube and Vimeo page links to their player URL.
func videoEmbedURL(raw string) (string, bool) {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return "", false
	}
	host := strings.TrimPrefix(strings.ToLower(parsed.Host), "www.")
	switch host {
	case "youtube.com", "m.youtube.com":
		if strings.HasPrefix(parsed.Path, "/embed/") {
			return raw, true
		}
		if id := parsed.Query().Get("v"); id != "" {
			return "https://www.youtube.com/embed/" + url.PathEscape(id), true
		}
	case "youtu.be":
		if id := strings.Trim(parsed.Path, "/"); id != "" {
			return "https://www.youtube.com/embed/" + url.PathEscape(id), true
		}
	case "vimeo.com":
		if id := strings.Trim(parsed.Path, "/"); id != "" {
			return "https://player.vimeo.com/video/" + url.PathEscape(id), true
		}
	case "player.vimeo.com":
		return raw, true
	}
	return "", false
}

func aspectRatio(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "16 / 9"
	}
	if left, right, ok := strings.Cut(value, ":"); ok {
		return strings.TrimSpace(left) + " / " + strings.TrimSpace(right)
	}
	return value
}
