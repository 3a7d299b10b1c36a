package seeds

import (
	"fmt"
	"log"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
	"github.com/wellnest-app/wellnest-backend/internal/admin"
	"github.com/wellnest-app/wellnest-backend/internal/cms"
	"github.com/wellnest-app/wellnest-backend/internal/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedData struct {
	Admins []struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"admins"`
	Posts []struct {
		Slug      string `yaml:"slug"`
		Title     string `yaml:"title"`
		Body      string `yaml:"body"`
		Published bool   `yaml:"published"`
	} `yaml:"posts"`
}

// SeedAll loads the YAML seed file and inserts anything not already present.
// Safe to run repeatedly.
func SeedAll(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", path, err)
	}

	var data seedData
	if err := yaml.Unmarshal(file, &data); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := seedAdmins(data); err != nil {
		return err
	}
	return seedPosts(data)
}

func seedAdmins(data seedData) error {
	for _, a := range data.Admins {
		var existing admin.AdminUser
		err := db.DB.First(&existing, "username = ?", a.Username).Error

		if err == nil {
			log.Printf("Admin exists, skipping: %s", a.Username)
			continue
		} else if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("DB error on admin %s: %w", a.Username, err)
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hashing password for %s: %w", a.Username, err)
		}

		record := admin.AdminUser{
			AdminID:        uuid.NewString(),
			Username:       a.Username,
			HashedPassword: string(hashed),
			Active:         true,
		}
		if err := db.DB.Create(&record).Error; err != nil {
			return fmt.Errorf("creating admin %s: %w", a.Username, err)
		}
		log.Printf("Seeded admin: %s", a.Username)
	}
	return nil
}

func seedPosts(data seedData) error {
	for _, p := range data.Posts {
		var existing cms.Post
		err := db.DB.First(&existing, "slug = ?", p.Slug).Error

		if err == nil {
			log.Printf("Post exists, skipping: %s", p.Slug)
			continue
		} else if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("DB error on post %s: %w", p.Slug, err)
		}

		record := cms.Post{
			ID:        uuid.NewString(),
			Slug:      p.Slug,
			Title:     p.Title,
			Body:      p.Body,
			Published: p.Published,
		}
		if err := db.DB.Create(&record).Error; err != nil {
			return fmt.Errorf("creating post %s: %w", p.Slug, err)
		}
		log.Printf("Seeded post: %s", p.Slug)
	}
	return nil
}
