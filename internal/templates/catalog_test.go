package templates

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/sections"
	"landing-builder-backend/internal/theme"
)

func newCatalog(t *testing.T) *Catalog {
	t.Helper()
	catalog, err := NewCatalog(sections.DefaultRegistry())
	require.NoError(t, err)
	return catalog
}

func kinds(preset Preset) []models.SectionKind {
	out := make([]models.SectionKind, 0, len(preset.Sections))
	for _, section := range preset.Sections {
		out = append(out, section.Kind)
	}
	return out
}

func TestBuiltinPresets(t *testing.T) {
	catalog := newCatalog(t)

	list := catalog.List()
	require.Len(t, list, 3)
	require.Equal(t, BlankID, list[0].ID)
	require.Equal(t, SaaSID, list[1].ID)
	require.Equal(t, CoachingID, list[2].ID)

	blank, err := catalog.Get(BlankID)
	require.NoError(t, err)
	require.Empty(t, blank.Sections)

	saas, err := catalog.Get(SaaSID)
	require.NoError(t, err)
	require.Equal(t, []models.SectionKind{
		models.KindHero, models.KindLogos, models.KindFeatures, models.KindStats, models.KindPricing,
		models.KindTestimonials, models.KindFAQ, models.KindCTA, models.KindFooter,
	}, kinds(saas))

	hero := saas.Sections[0]
	require.Equal(t, "gradient", hero.Style.Background.Type)
	require.Equal(t, "#0f172a", hero.Style.Background.Gradient.From)
	require.Equal(t, theme.DefaultStyle(models.KindHero).Padding, hero.Style.Padding)
	require.Equal(t, "Make your team ten times more productive", hero.Content.(models.HeroContent).Title)
	require.NotEmpty(t, hero.Content.(models.HeroContent).CTAText)

	logos := saas.Sections[1]
	require.Equal(t, 60, logos.Style.Padding.Top)
	require.Equal(t, theme.DefaultStyle(models.KindLogos).Padding.Left, logos.Style.Padding.Left)
}

func TestCoachingOverridesItems(t *testing.T) {
	catalog := newCatalog(t)
	coaching, err := catalog.Get(CoachingID)
	require.NoError(t, err)

	stats := coaching.Sections[1].Content.(models.StatsContent)
	require.Len(t, stats.Items, 3)
	require.Equal(t, "500+", stats.Items[0].Value)
	for _, item := range stats.Items {
		require.NotEmpty(t, item.ID)
	}
	require.NotEqual(t, stats.Items[0].ID, stats.Items[1].ID)
	require.Equal(t, "#1f2937", coaching.Sections[1].Style.TextColor)
}

func TestGetReturnsCopies(t *testing.T) {
	catalog := newCatalog(t)
	first, err := catalog.Get(SaaSID)
	require.NoError(t, err)
	first.Sections[0].Style.Columns = 6

	second, err := catalog.Get(SaaSID)
	require.NoError(t, err)
	require.NotEqual(t, 6, second.Sections[0].Style.Columns)
}

func TestGetUnknownTemplate(t *testing.T) {
	catalog := newCatalog(t)
	_, err := catalog.Get("portfolio")
	require.True(t, errors.Is(err, ErrTemplateNotFound))
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	preset := `
name: Product launch
description: Short launch page
icon: rocket
globalStyles:
  primaryColor: "#ff5500"
  borderRadius: 4
sections:
  - kind: hero
    content:
      title: Launching soon
    style:
      padding:
        top: 200
  - kind: cta
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "launch.yaml"), []byte(preset), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	catalog := newCatalog(t)
	loaded, err := catalog.LoadDir(dir)
	require.NoError(t, err)
	require.Equal(t, []string{"launch"}, loaded)

	launch, err := catalog.Get("launch")
	require.NoError(t, err)
	require.Equal(t, "Product launch", launch.Name)
	require.Equal(t, "#ff5500", launch.GlobalStyles.PrimaryColor)
	require.Equal(t, 4, launch.GlobalStyles.BorderRadius)
	require.Equal(t, theme.DefaultGlobalStyles().SecondaryColor, launch.GlobalStyles.SecondaryColor)
	require.Equal(t, []models.SectionKind{models.KindHero, models.KindCTA}, kinds(launch))
	require.Equal(t, 200, launch.Sections[0].Style.Padding.Top)
	require.Equal(t, "Launching soon", launch.Sections[0].Content.(models.HeroContent).Title)

	list := catalog.List()
	require.Len(t, list, 4)
	require.Equal(t, "launch", list[3].ID)
	require.Equal(t, 2, list[3].Sections)
}

func TestParseRejectsUnknownKind(t *testing.T) {
	catalog := newCatalog(t)
	_, err := catalog.Parse([]byte("id: broken\nsections:\n  - kind: carousel\n"))
	require.Error(t, err)

	_, err = catalog.Parse([]byte("sections: []\n"))
	require.ErrorIs(t, err, errMissingID)
}
