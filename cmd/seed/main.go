// Command seed loads the demo catalog into the database. Every insert
// runs inside one transaction so a half-seeded catalog never survives.
package main

import (
	"context"
	"log"

	"github.com/salem59915-web/rex-backend/internal/domain/entities"
	"github.com/salem59915-web/rex-backend/internal/infrastructure/config"
	"github.com/salem59915-web/rex-backend/internal/infrastructure/logging"
	"github.com/salem59915-web/rex-backend/internal/infrastructure/persistence/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger := logging.NewSlogLogger(cfg.Logging.Level)

	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if err := postgres.RunMigrations(db, logger); err != nil {
		logger.Error("failed to run migrations", "error", err)
		log.Fatal(err)
	}

	modelRepo := postgres.NewModelRepository(db)
	creatorRepo := postgres.NewContentCreatorRepository(db)
	videoRepo := postgres.NewVideoProductionRepository(db)
	voiceRepo := postgres.NewVoiceArtistRepository(db)
	writingRepo := postgres.NewContentWritingRepository(db)
	uow := postgres.NewUnitOfWork(db)

	ctx := context.Background()

	err = uow.WithTransaction(ctx, func(txCtx context.Context) error {
		for _, model := range demoModels() {
			if err := modelRepo.Create(txCtx, model); err != nil {
				return err
			}
		}
		logger.Info("models seeded")

		for _, creator := range demoContentCreators() {
			if err := creatorRepo.Create(txCtx, creator); err != nil {
				return err
			}
		}
		logger.Info("content creators seeded")

		for _, video := range demoVideoProductions() {
			if err := videoRepo.Create(txCtx, video); err != nil {
				return err
			}
		}
		logger.Info("video productions seeded")

		for _, artist := range demoVoiceArtists() {
			if err := voiceRepo.Create(txCtx, artist); err != nil {
				return err
			}
		}
		logger.Info("voice artists seeded")

		for _, sample := range demoContentWriting() {
			if err := writingRepo.Create(txCtx, sample); err != nil {
				return err
			}
		}
		logger.Info("content writing samples seeded")

		return nil
	})
	if err != nil {
		logger.Error("seeding failed, rolled back", "error", err)
		log.Fatal(err)
	}

	logger.Info("demo catalog seeded")
}

func demoModels() []*entities.Model {
	return []*entities.Model{
		{
			Name:         "أحمد محمد",
			Age:          25,
			Gender:       entities.GenderMale,
			Bio:          "مودل محترف متخصص في الإعلانات التجارية والأزياء",
			ProfileImage: "/models-service.jpg",
			Height:       180,
			Experience:   "5 سنوات خبرة في مجال عرض الأزياء",
			Specialties:  []string{"أزياء", "إعلانات تجارية"},
			IsActive:     true,
		},
		{
			Name:         "سارة أحمد",
			Age:          23,
			Gender:       entities.GenderFemale,
			Bio:          "مودل متخصصة في التصوير التجاري ومنتجات التجميل",
			ProfileImage: "/models-service.jpg",
			Height:       170,
			Experience:   "3 سنوات خبرة",
			Specialties:  []string{"جمال", "إعلانات تجارية"},
			IsActive:     true,
		},
		{
			Name:         "خالد عبدالله",
			Age:          30,
			Gender:       entities.GenderMale,
			Bio:          "مودل رياضي متخصص في إعلانات اللياقة البدنية",
			ProfileImage: "/models-service.jpg",
			Height:       185,
			Experience:   "7 سنوات خبرة",
			Specialties:  []string{"لياقة بدنية", "رياضة"},
			IsActive:     true,
		},
	}
}

func demoContentCreators() []*entities.ContentCreator {
	return []*entities.ContentCreator{
		{
			Name:         "محمد الصانع",
			Bio:          "صانع محتوى متخصص في المحتوى الترفيهي والتعليمي",
			ProfileImage: "/content-creators.jpg",
			PortfolioURL: "https://example.com/portfolio",
			Platforms:    []string{"instagram", "youtube", "tiktok"},
			ContentTypes: []string{"video", "photo", "reels"},
			SampleWorks:  []string{"/content-creators.jpg"},
			IsActive:     true,
		},
		{
			Name:         "فاطمة علي",
			Bio:          "صانعة محتوى متخصصة في الطبخ والحياة اليومية",
			ProfileImage: "/content-creators.jpg",
			PortfolioURL: "https://example.com/portfolio2",
			Platforms:    []string{"instagram", "snapchat"},
			ContentTypes: []string{"video", "photo", "stories"},
			SampleWorks:  []string{"/content-creators.jpg"},
			IsActive:     true,
		},
	}
}

func demoVideoProductions() []*entities.VideoProduction {
	return []*entities.VideoProduction{
		{
			Title:          "إعلان تجاري - شركة تقنية",
			Description:    "إنتاج إعلان تجاري احترافي لشركة تقنية رائدة",
			VideoURL:       "/video-production.jpg",
			ThumbnailURL:   "/video-production.jpg",
			ProductionType: "commercial",
			ClientName:     "شركة التقنية المتقدمة",
			Duration:       60,
			IsActive:       true,
		},
		{
			Title:          "فيديو ترويجي - منتج جديد",
			Description:    "فيديو ترويجي لإطلاق منتج جديد في السوق",
			VideoURL:       "/video-production.jpg",
			ThumbnailURL:   "/video-production.jpg",
			ProductionType: "promotional",
			ClientName:     "شركة المنتجات الذكية",
			Duration:       90,
			IsActive:       true,
		},
	}
}

func demoVoiceArtists() []*entities.VoiceArtist {
	return []*entities.VoiceArtist{
		{
			Name:         "عمر الصوت",
			Bio:          "معلق صوتي محترف بصوت عميق ومميز",
			ProfileImage: "/voiceover-studio.jpg",
			Gender:       entities.GenderMale,
			VoiceType:    "deep",
			Languages:    []string{"العربية", "الإنجليزية"},
			Accents:      []string{"سعودي", "خليجي"},
			SampleAudios: []string{},
			IsActive:     true,
		},
		{
			Name:         "ليلى الصوت",
			Bio:          "معلقة صوتية بصوت ناعم ومريح",
			ProfileImage: "/voiceover-studio.jpg",
			Gender:       entities.GenderFemale,
			VoiceType:    "soft",
			Languages:    []string{"العربية"},
			Accents:      []string{"مصري", "شامي"},
			SampleAudios: []string{},
			IsActive:     true,
		},
	}
}

func demoContentWriting() []*entities.ContentWriting {
	return []*entities.ContentWriting{
		{
			Title:       "مقال تقني عن الذكاء الاصطناعي",
			Description: "مقال شامل يشرح أساسيات الذكاء الاصطناعي وتطبيقاته",
			ContentType: "blog",
			SampleText:  "الذكاء الاصطناعي هو أحد أهم التقنيات في العصر الحديث...",
			ClientName:  "مدونة التقنية",
			WordCount:   1500,
			IsActive:    true,
		},
		{
			Title:       "محتوى تسويقي لمنصات التواصل",
			Description: "محتوى جذاب ومبتكر لمنصات التواصل الاجتماعي",
			ContentType: "social_media",
			SampleText:  "اكتشف عالماً جديداً من الإبداع والتميز...",
			ClientName:  "شركة التسويق الرقمي",
			WordCount:   300,
			IsActive:    true,
		},
	}
}
