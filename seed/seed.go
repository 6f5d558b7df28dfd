// Package seed populates reference data for an empty database: the two
// roles, the park catalog and the initial admin accounts.
package seed

import (
	"errors"
	"os"

	"gorm.io/gorm"

	"wwa-backend/models"
)

// Status reports what Run did.
type Status int

const (
	Seeded Status = iota
	AlreadySeeded
)

var admins = []struct {
	Name     string
	LastName string
	Email    string
}{
	{"Morticia", "Addams", "admin1@example.com"},
	{"Gomez", "Addams", "admin2@example.com"},
}

// Run seeds roles, parks and admin users exactly once per empty database.
// If any role or park row already exists it performs no writes and reports
// AlreadySeeded. Admin passwords come from SEED_ADMIN_PASSWORD; seeding
// fails before any write when the variable is missing.
func Run(db *gorm.DB) (Status, error) {
	var roleCount, parkCount int64
	if err := db.Model(&models.Role{}).Count(&roleCount).Error; err != nil {
		return 0, err
	}
	if err := db.Model(&models.Park{}).Count(&parkCount).Error; err != nil {
		return 0, err
	}
	if roleCount > 0 || parkCount > 0 {
		return AlreadySeeded, nil
	}

	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		return 0, errors.New("SEED_ADMIN_PASSWORD environment variable must be set to seed admin accounts")
	}

	adminRole := models.Role{Name: "admin"}
	customerRole := models.Role{Name: "customer"}
	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&adminRole).Error; err != nil {
			return err
		}
		return tx.Create(&customerRole).Error
	}); err != nil {
		return 0, err
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		for _, park := range parks() {
			if err := tx.Create(park).Error; err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return 0, err
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		for _, a := range admins {
			admin := models.User{
				Name:     a.Name,
				LastName: a.LastName,
				Email:    a.Email,
				Password: adminPassword, // hashed by the model hook
				RoleID:   &adminRole.ID,
			}
			if err := tx.Create(&admin).Error; err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return 0, err
	}

	return Seeded, nil
}

func parks() []*models.Park {
	return []*models.Park{
		{
			Name:     "Witches' Park",
			Location: "Dublin",
			Description: "Deep in the hills outside Dublin, Witches' Park winds through " +
				"crooked woods, cauldron gardens and a moonlit broom course. Guided " +
				"covens run every hour and the Grand Hex Show closes each night.",
			ShortDescription: "Crooked woods, cauldron gardens and the nightly Grand Hex Show.",
			Slug:             "park-1-dublin",
			Difficulty:       "Moderate",
			MinAge:           10,
			Hours:            "10:00 AM - 8:00 PM",
			Price:            "Starting at $39.99",
			Folder:           "park1",
		},
		{
			Name:     "Spider Park",
			Location: "London",
			Description: "Spider Park suspends its visitors on silk bridges and web nets " +
				"high above the Thames marshes. The Arachnid Drop and the Venom Maze " +
				"are not for the faint-hearted, and neither are the residents.",
			ShortDescription: "Silk bridges, web nets and the infamous Arachnid Drop.",
			Slug:             "park-2-london",
			Difficulty:       "Hard",
			MinAge:           14,
			Hours:            "11:00 AM - 10:00 PM",
			Price:            "Starting at $49.99",
			Folder:           "park2",
		},
		{
			Name:     "Haunted House",
			Location: "Berlin",
			Description: "A sprawling manor on the edge of Berlin where every corridor " +
				"creaks on cue. Family-friendly ghosts roam the ballroom by day and " +
				"the candlelit cellar tour runs after dark for the brave.",
			ShortDescription: "A creaking manor of family-friendly ghosts and cellar tours.",
			Slug:             "park-3-berlin",
			Difficulty:       "Easy",
			MinAge:           8,
			Hours:            "9:00 AM - 6:00 PM",
			Price:            "Starting at $29.99",
			Folder:           "park3",
		},
	}
}
