package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
	"github.com/salem59915-web/rex-backend/internal/domain/repositories"
)

// The shared create/update/delete mechanics are covered by the model
// repository tests; these exercise the List filters specific to the
// remaining catalogs.

func TestContentCreatorRepositoryListFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewContentCreatorRepository(db)
	ctx := context.Background()

	fixtures := []*entities.ContentCreator{
		{Name: "نورة السالم", Platforms: []string{"instagram", "tiktok"}, ContentTypes: []string{"أزياء"}, IsActive: true},
		{Name: "فهد العتيبي", Platforms: []string{"youtube"}, ContentTypes: []string{"تقنية"}, IsActive: true},
		{Name: "ريم الدوسري", Platforms: []string{"instagram"}, ContentTypes: []string{"طبخ"}, IsActive: true},
	}
	for _, c := range fixtures {
		require.NoError(t, repo.Create(ctx, c))
		time.Sleep(2 * time.Millisecond)
	}

	hidden := &entities.ContentCreator{Name: "مخفي", Platforms: []string{"youtube"}, IsActive: false}
	require.NoError(t, repo.Create(ctx, hidden))
	require.NoError(t, repo.Update(ctx, hidden.ID, repositories.ContentCreatorPatch{IsActive: boolPtr(false)}))

	cases := []struct {
		name    string
		filters repositories.ContentCreatorFilters
		want    []string
	}{
		{"no filters", repositories.ContentCreatorFilters{}, []string{"نورة السالم", "فهد العتيبي", "ريم الدوسري"}},
		{"all sentinel", repositories.ContentCreatorFilters{Platform: repositories.FilterAll, ContentType: repositories.FilterAll}, []string{"نورة السالم", "فهد العتيبي", "ريم الدوسري"}},
		{"by platform", repositories.ContentCreatorFilters{Platform: "instagram"}, []string{"نورة السالم", "ريم الدوسري"}},
		{"hidden row excluded even when its platform matches", repositories.ContentCreatorFilters{Platform: "youtube"}, []string{"فهد العتيبي"}},
		{"by content type", repositories.ContentCreatorFilters{ContentType: "طبخ"}, []string{"ريم الدوسري"}},
		{"no match", repositories.ContentCreatorFilters{Platform: "twitch"}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			creators, err := repo.List(ctx, tc.filters)
			require.NoError(t, err)
			assert.Equal(t, tc.want, creatorNames(creators))
		})
	}
}

func TestVoiceArtistRepositoryListFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewVoiceArtistRepository(db)
	ctx := context.Background()

	fixtures := []*entities.VoiceArtist{
		{Name: "عبدالرحمن الشهري", Gender: entities.GenderMale, VoiceType: "deep", Languages: []string{"العربية"}, IsActive: true},
		{Name: "لمى الحربي", Gender: entities.GenderFemale, VoiceType: "soft", Languages: []string{"العربية", "English"}, IsActive: true},
		{Name: "سلطان القحطاني", Gender: entities.GenderMale, VoiceType: "soft", Languages: []string{"English"}, IsActive: true},
	}
	for _, a := range fixtures {
		require.NoError(t, repo.Create(ctx, a))
		time.Sleep(2 * time.Millisecond)
	}

	cases := []struct {
		name    string
		filters repositories.VoiceArtistFilters
		want    []string
	}{
		{"no filters", repositories.VoiceArtistFilters{}, []string{"عبدالرحمن الشهري", "لمى الحربي", "سلطان القحطاني"}},
		{"by gender", repositories.VoiceArtistFilters{Gender: "female"}, []string{"لمى الحربي"}},
		{"by voice type", repositories.VoiceArtistFilters{VoiceType: "soft"}, []string{"لمى الحربي", "سلطان القحطاني"}},
		{"language substring", repositories.VoiceArtistFilters{Language: "العربية"}, []string{"عبدالرحمن الشهري", "لمى الحربي"}},
		{"combined", repositories.VoiceArtistFilters{Gender: "male", VoiceType: "soft"}, []string{"سلطان القحطاني"}},
		{"all sentinel per field", repositories.VoiceArtistFilters{Gender: repositories.FilterAll, VoiceType: repositories.FilterAll, Language: repositories.FilterAll}, []string{"عبدالرحمن الشهري", "لمى الحربي", "سلطان القحطاني"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			artists, err := repo.List(ctx, tc.filters)
			require.NoError(t, err)
			assert.Equal(t, tc.want, artistNames(artists))
		})
	}
}

func TestVideoProductionRepositoryListFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewVideoProductionRepository(db)
	ctx := context.Background()

	fixtures := []*entities.VideoProduction{
		{Title: "إعلان مطعم", ProductionType: "commercial", VideoURL: "https://player.vimeo.com/video/100?h=&badge=0&autopause=0&player_id=0&app_id=58479", IsActive: true},
		{Title: "فيلم وثائقي", ProductionType: "documentary", IsActive: true},
		{Title: "إعلان عطور", ProductionType: "commercial", IsActive: true},
	}
	for _, v := range fixtures {
		require.NoError(t, repo.Create(ctx, v))
		time.Sleep(2 * time.Millisecond)
	}

	t.Run("by production type", func(t *testing.T) {
		videos, err := repo.List(ctx, repositories.VideoProductionFilters{ProductionType: "commercial"})
		require.NoError(t, err)
		require.Len(t, videos, 2)
		assert.Equal(t, "إعلان مطعم", videos[0].Title)
		assert.Equal(t, "إعلان عطور", videos[1].Title)
	})

	t.Run("all sentinel", func(t *testing.T) {
		videos, err := repo.List(ctx, repositories.VideoProductionFilters{ProductionType: repositories.FilterAll})
		require.NoError(t, err)
		assert.Len(t, videos, 3)
	})

	t.Run("exact match only", func(t *testing.T) {
		videos, err := repo.List(ctx, repositories.VideoProductionFilters{ProductionType: "comm"})
		require.NoError(t, err)
		assert.Empty(t, videos)
	})

	t.Run("video url survives the round trip", func(t *testing.T) {
		videos, err := repo.List(ctx, repositories.VideoProductionFilters{ProductionType: "commercial"})
		require.NoError(t, err)
		require.NotEmpty(t, videos)
		assert.Contains(t, videos[0].VideoURL, "player.vimeo.com/video/100")
	})
}

func TestContentWritingRepositoryListFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewContentWritingRepository(db)
	ctx := context.Background()

	fixtures := []*entities.ContentWriting{
		{Title: "مقال تقني", ContentType: "article", WordCount: 800, IsActive: true},
		{Title: "نص إعلاني", ContentType: "ad_copy", WordCount: 120, IsActive: true},
		{Title: "مقال صحي", ContentType: "article", WordCount: 650, IsActive: true},
	}
	for _, w := range fixtures {
		require.NoError(t, repo.Create(ctx, w))
		time.Sleep(2 * time.Millisecond)
	}

	t.Run("by content type", func(t *testing.T) {
		samples, err := repo.List(ctx, repositories.ContentWritingFilters{ContentType: "article"})
		require.NoError(t, err)
		require.Len(t, samples, 2)
		assert.Equal(t, "مقال تقني", samples[0].Title)
		assert.Equal(t, 800, samples[0].WordCount)
	})

	t.Run("all sentinel", func(t *testing.T) {
		samples, err := repo.List(ctx, repositories.ContentWritingFilters{ContentType: repositories.FilterAll})
		require.NoError(t, err)
		assert.Len(t, samples, 3)
	})

	t.Run("no match", func(t *testing.T) {
		samples, err := repo.List(ctx, repositories.ContentWritingFilters{ContentType: "poetry"})
		require.NoError(t, err)
		assert.Empty(t, samples)
	})
}

func creatorNames(creators []*entities.ContentCreator) []string {
	names := make([]string, 0, len(creators))
	for _, c := range creators {
		names = append(names, c.Name)
	}
	return names
}

func artistNames(artists []*entities.VoiceArtist) []string {
	names := make([]string, 0, len(artists))
	for _, a := range artists {
		names = append(names, a.Name)
	}
	return names
}
