package i18n

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// setupTestLocales writes temporary locale files for the tests.
func setupTestLocales(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()

	arContent := `{
  "error.not_found.detail": "{{.Resource}} المطلوب غير موجود",
  "error.internal.title": "خطأ في الخادم",
  "service_request.received": "تم استلام طلبك بنجاح"
}`
	if err := os.WriteFile(filepath.Join(tmpDir, "ar.json"), []byte(arContent), 0644); err != nil { //nolint:gosec
		t.Fatalf("failed to create ar.json: %v", err)
	}

	enContent := `{
  "error.not_found.detail": "The requested {{.Resource}} was not found",
  "error.internal.title": "Server error",
  "service_request.received": "Your request has been received"
}`
	if err := os.WriteFile(filepath.Join(tmpDir, "en.json"), []byte(enContent), 0644); err != nil { //nolint:gosec
		t.Fatalf("failed to create en.json: %v", err)
	}

	return tmpDir
}

func TestNewService(t *testing.T) {
	t.Run("loads translations", func(t *testing.T) {
		tmpDir := setupTestLocales(t)

		service, err := NewService(tmpDir, "ar")
		if err != nil {
			t.Fatalf("expected success, got error: %v", err)
		}

		if service.GetDefaultLanguage() != "ar" {
			t.Errorf("expected default language 'ar', got '%s'", service.GetDefaultLanguage())
		}

		supportedLangs := service.GetSupportedLanguages()
		if len(supportedLangs) != 2 {
			t.Errorf("expected 2 supported languages, got %d", len(supportedLangs))
		}
	})

	t.Run("error when directory does not exist", func(t *testing.T) {
		_, err := NewService("/nonexistent/locales", "ar")
		if err == nil {
			t.Error("expected error, got success")
		}
	})

	t.Run("error when default language is missing", func(t *testing.T) {
		tmpDir := setupTestLocales(t)

		_, err := NewService(tmpDir, "fr")
		if err == nil {
			t.Error("expected error for missing default language, got success")
		}
	})
}

func TestService_T(t *testing.T) {
	tmpDir := setupTestLocales(t)
	service, err := NewService(tmpDir, "ar")
	if err != nil {
		t.Fatalf("failed to initialize service: %v", err)
	}

	t.Run("translates plain message in arabic", func(t *testing.T) {
		result := service.T("ar", "error.internal.title")
		expected := "خطأ في الخادم"
		if result != expected {
			t.Errorf("expected '%s', got '%s'", expected, result)
		}
	})

	t.Run("translates plain message in english", func(t *testing.T) {
		result := service.T("en", "error.internal.title")
		expected := "Server error"
		if result != expected {
			t.Errorf("expected '%s', got '%s'", expected, result)
		}
	})

	t.Run("interpolates parameters", func(t *testing.T) {
		result := service.T("en", "error.not_found.detail", map[string]interface{}{"Resource": "Model"})
		expected := "The requested Model was not found"
		if result != expected {
			t.Errorf("expected '%s', got '%s'", expected, result)
		}
	})

	t.Run("falls back to default language for unsupported language", func(t *testing.T) {
		result := service.T("fr", "service_request.received")
		expected := "تم استلام طلبك بنجاح"
		if result != expected {
			t.Errorf("expected '%s', got '%s'", expected, result)
		}
	})

	t.Run("returns the key when translation is missing", func(t *testing.T) {
		result := service.T("ar", "missing.key")
		expected := "missing.key"
		if result != expected {
			t.Errorf("expected '%s', got '%s'", expected, result)
		}
	})
}

func TestService_IsLanguageSupported(t *testing.T) {
	tmpDir := setupTestLocales(t)
	service, err := NewService(tmpDir, "ar")
	if err != nil {
		t.Fatalf("failed to initialize service: %v", err)
	}

	tests := []struct {
		lang     string
		expected bool
	}{
		{"ar", true},
		{"en", true},
		{"fr", false},
		{"pt-BR", false},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			result := service.IsLanguageSupported(tt.lang)
			if result != tt.expected {
				t.Errorf("for language '%s', expected %v, got %v", tt.lang, tt.expected, result)
			}
		})
	}
}

func TestService_ThreadSafety(t *testing.T) {
	tmpDir := setupTestLocales(t)
	service, err := NewService(tmpDir, "ar")
	if err != nil {
		t.Fatalf("failed to initialize service: %v", err)
	}

	var wg sync.WaitGroup
	iterations := 100

	for i := 0; i < iterations; i++ {
		wg.Add(3)

		go func() {
			defer wg.Done()
			_ = service.T("ar", "error.not_found.detail", map[string]interface{}{"Resource": "Banner"})
		}()

		go func() {
			defer wg.Done()
			_ = service.T("en", "error.internal.title")
		}()

		go func() {
			defer wg.Done()
			_ = service.IsLanguageSupported("ar")
		}()
	}

	// Fails under -race if the service is not safe for concurrent use.
	wg.Wait()
}
