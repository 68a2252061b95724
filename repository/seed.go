package repository

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/meCodeKo/siverek-depo/models"
)

var defaultCategories = []struct {
	Name        string
	Description string
}{
	{"Computers and Hardware", "Desktop computers, laptops and core hardware"},
	{"Network Equipment", "Switches, routers, access points and network gear"},
	{"Printers and Scanners", "Printing and document scanning devices"},
	{"Software and Licenses", "Licensed software and subscription keys"},
	{"Cables and Accessories", "Cabling, adapters and small accessories"},
	{"Security Systems", "Cameras, access control and alarm components"},
	{"Spare Parts", "Replacement parts kept for repairs"},
}

var defaultLocations = []struct {
	Name        string
	Description string
	Building    string
	Floor       string
}{
	{"Main Warehouse", "Primary equipment storage", "Municipality Main Building", "B1"},
	{"Spare Parts Warehouse", "Storage for repair parts", "Technical Services Building", "1"},
	{"Archive Warehouse", "Long term storage for retired equipment", "Municipality Main Building", "B2"},
}

// SeedDefaults populates empty collections with the baseline categories,
// locations and the initial admin account. Existing data is never touched.
func SeedDefaults(log *zap.Logger) error {
	if n, err := CountCategories(); err != nil {
		return err
	} else if n == 0 {
		for _, c := range defaultCategories {
			id, err := GenerateID("category")
			if err != nil {
				return err
			}
			cat := &models.Category{
				ID:          id,
				Name:        c.Name,
				Description: c.Description,
				IsActive:    true,
				CreatedAt:   time.Now(),
			}
			if err := CreateCategory(cat); err != nil {
				return err
			}
		}
		log.Info("seeded default categories", zap.Int("count", len(defaultCategories)))
	}

	if n, err := CountLocations(); err != nil {
		return err
	} else if n == 0 {
		for _, l := range defaultLocations {
			id, err := GenerateID("location")
			if err != nil {
				return err
			}
			loc := &models.Location{
				ID:          id,
				Name:        l.Name,
				Description: l.Description,
				Building:    l.Building,
				Floor:       l.Floor,
				IsActive:    true,
				CreatedAt:   time.Now(),
			}
			if err := CreateLocation(loc); err != nil {
				return err
			}
		}
		log.Info("seeded default locations", zap.Int("count", len(defaultLocations)))
	}

	n, err := CountUsers()
	if err != nil {
		return err
	}
	if n == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), 12)
		if err != nil {
			return err
		}
		id, err := GenerateID("user")
		if err != nil {
			return err
		}
		admin := &models.User{
			ID:        id,
			Username:  "admin",
			Password:  string(hash),
			FullName:  "System Administrator",
			Role:      models.RoleAdmin,
			IsActive:  true,
			CreatedAt: time.Now(),
		}
		if err := CreateUser(admin); err != nil {
			return err
		}
		log.Warn("created default admin account, change its password",
			zap.String("username", "admin"))
	}
	return nil
}
