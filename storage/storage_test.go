package storage

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"aeropartner/database"
	"aeropartner/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupStorage opens a per-test in-memory database with the full schema.
func setupStorage(t *testing.T) *Storage {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return New(db)
}

// gormModelWithCreatedAt backdates a row for ordering assertions.
func gormModelWithCreatedAt(ts time.Time) gorm.Model {
	return gorm.Model{CreatedAt: ts}
}

func seedUser(t *testing.T, st *Storage, id string) *models.User {
	t.Helper()
	email := id + "@example.com"
	user, err := st.UpsertUser(models.User{ID: id, Email: &email, FirstName: "Test"})
	require.NoError(t, err)
	return user
}

func seedPartner(t *testing.T, st *Storage, userID, utmTag string) *models.Partner {
	t.Helper()
	seedUser(t, st, userID)
	partner := &models.Partner{
		UserID:         userID,
		Company:        "Partner " + utmTag,
		Classification: models.ClassificationBronze,
		UtmTag:         utmTag,
	}
	require.NoError(t, st.CreatePartner(partner))
	return partner
}

func seedStudent(t *testing.T, st *Storage, partnerID uint, name string) *models.Student {
	t.Helper()
	student := &models.Student{
		PartnerID: partnerID,
		Name:      name,
		Email:     strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com",
	}
	require.NoError(t, st.CreateStudent(student))
	return student
}

func seedCourse(t *testing.T, st *Storage, name string, active bool) *models.Course {
	t.Helper()
	course := &models.Course{
		Name:        name,
		Description: "Course " + name,
		Duration:    40,
		Level:       models.LevelBeginner,
		IsActive:    active,
	}
	require.NoError(t, st.CreateCourse(course))
	return course
}
