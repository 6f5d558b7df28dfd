package seed

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"wwa-backend/models"
	"wwa-backend/utils"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Park{},
		&models.Booking{},
		&models.Message{},
		&models.ReminderLog{},
	))
	return db
}

func TestRunCreatesRoles(t *testing.T) {
	db := openTestDB(t)
	t.Setenv("SEED_ADMIN_PASSWORD", "test_admin_pass")

	status, err := Run(db)
	require.NoError(t, err)
	require.Equal(t, Seeded, status)

	var roles []models.Role
	require.NoError(t, db.Find(&roles).Error)
	require.Len(t, roles, 2)

	names := []string{roles[0].Name, roles[1].Name}
	assert.Contains(t, names, "admin")
	assert.Contains(t, names, "customer")
}

func TestRunCreatesAdminUsers(t *testing.T) {
	db := openTestDB(t)
	password := "secure_admin_password_123"
	t.Setenv("SEED_ADMIN_PASSWORD", password)

	_, err := Run(db)
	require.NoError(t, err)

	var adminRole models.Role
	require.NoError(t, db.Where("name = ?", "admin").First(&adminRole).Error)

	var adminUsers []models.User
	require.NoError(t, db.Where("role_id = ?", adminRole.ID).Order("id").Find(&adminUsers).Error)
	require.Len(t, adminUsers, 2)
	assert.Equal(t, "admin1@example.com", adminUsers[0].Email)
	assert.Equal(t, "admin2@example.com", adminUsers[1].Email)

	// Passwords are stored hashed and verify against the seed secret only
	for _, admin := range adminUsers {
		assert.NotEqual(t, password, admin.Password)
		assert.True(t, utils.CheckPasswordHash(password, admin.Password))
		assert.False(t, utils.CheckPasswordHash("wrong_password", admin.Password))
	}
}

func TestRunCreatesThreeParks(t *testing.T) {
	db := openTestDB(t)
	t.Setenv("SEED_ADMIN_PASSWORD", "test_pass")

	_, err := Run(db)
	require.NoError(t, err)

	var parks []models.Park
	require.NoError(t, db.Find(&parks).Error)
	require.Len(t, parks, 3)

	names := make([]string, 0, len(parks))
	for _, p := range parks {
		names = append(names, p.Name)
	}
	assert.Contains(t, names, "Witches' Park")
	assert.Contains(t, names, "Spider Park")
	assert.Contains(t, names, "Haunted House")
}

func TestRunParkDetails(t *testing.T) {
	db := openTestDB(t)
	t.Setenv("SEED_ADMIN_PASSWORD", "test_pass")

	_, err := Run(db)
	require.NoError(t, err)

	var witches models.Park
	require.NoError(t, db.Where("name = ?", "Witches' Park").First(&witches).Error)
	assert.Equal(t, "Dublin", witches.Location)
	assert.Equal(t, "park-1-dublin", witches.Slug)
	assert.Equal(t, "Moderate", witches.Difficulty)
	assert.Equal(t, 10, witches.MinAge)
	assert.Equal(t, "10:00 AM - 8:00 PM", witches.Hours)
	assert.Equal(t, "Starting at $39.99", witches.Price)

	var spider models.Park
	require.NoError(t, db.Where("name = ?", "Spider Park").First(&spider).Error)
	assert.Equal(t, "London", spider.Location)
	assert.Equal(t, "Hard", spider.Difficulty)
	assert.Equal(t, 14, spider.MinAge)

	var haunted models.Park
	require.NoError(t, db.Where("name = ?", "Haunted House").First(&haunted).Error)
	assert.Equal(t, "Berlin", haunted.Location)
	assert.Equal(t, "Easy", haunted.Difficulty)
	assert.Equal(t, 8, haunted.MinAge)
}

func TestRunParksHaveDescriptionsAndUniqueSlugs(t *testing.T) {
	db := openTestDB(t)
	t.Setenv("SEED_ADMIN_PASSWORD", "test_pass")

	_, err := Run(db)
	require.NoError(t, err)

	var parks []models.Park
	require.NoError(t, db.Find(&parks).Error)

	slugs := map[string]bool{}
	for _, park := range parks {
		assert.Greater(t, len(park.Description), 50)
		assert.Greater(t, len(park.ShortDescription), 10)
		assert.Less(t, len(park.ShortDescription), len(park.Description))
		assert.Contains(t, []string{"Easy", "Moderate", "Hard"}, park.Difficulty)
		assert.Positive(t, park.MinAge)
		assert.False(t, slugs[park.Slug], "duplicate slug %s", park.Slug)
		slugs[park.Slug] = true
	}
	assert.True(t, slugs["park-1-dublin"])
	assert.True(t, slugs["park-2-london"])
	assert.True(t, slugs["park-3-berlin"])
}

func TestRunIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	t.Setenv("SEED_ADMIN_PASSWORD", "test_pass")

	status, err := Run(db)
	require.NoError(t, err)
	require.Equal(t, Seeded, status)

	count := func(model interface{}) int64 {
		var n int64
		require.NoError(t, db.Model(model).Count(&n).Error)
		return n
	}
	roleCount := count(&models.Role{})
	parkCount := count(&models.Park{})
	userCount := count(&models.User{})

	for i := 0; i < 3; i++ {
		status, err = Run(db)
		require.NoError(t, err)
		assert.Equal(t, AlreadySeeded, status)
	}

	assert.Equal(t, roleCount, count(&models.Role{}))
	assert.Equal(t, parkCount, count(&models.Park{}))
	assert.Equal(t, userCount, count(&models.User{}))
	assert.Equal(t, int64(2), roleCount)
	assert.Equal(t, int64(3), parkCount)
	assert.Equal(t, int64(2), userCount)
}

func TestRunRequiresAdminPassword(t *testing.T) {
	db := openTestDB(t)
	t.Setenv("SEED_ADMIN_PASSWORD", "")

	_, err := Run(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SEED_ADMIN_PASSWORD")

	// Nothing may have been written
	var roleCount, parkCount, userCount int64
	require.NoError(t, db.Model(&models.Role{}).Count(&roleCount).Error)
	require.NoError(t, db.Model(&models.Park{}).Count(&parkCount).Error)
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	assert.Zero(t, roleCount)
	assert.Zero(t, parkCount)
	assert.Zero(t, userCount)
}

func TestRunAdminsCarryAdminRole(t *testing.T) {
	db := openTestDB(t)
	t.Setenv("SEED_ADMIN_PASSWORD", "test_pass")

	_, err := Run(db)
	require.NoError(t, err)

	var admin models.User
	require.NoError(t, db.Preload("Role").Where("email = ?", "admin1@example.com").First(&admin).Error)
	require.NotNil(t, admin.Role)
	assert.Equal(t, "admin", admin.Role.Name)
	assert.True(t, admin.HasRole("admin"))
	assert.False(t, admin.HasRole("customer"))
}

func TestRunCustomerRoleStartsEmpty(t *testing.T) {
	db := openTestDB(t)
	t.Setenv("SEED_ADMIN_PASSWORD", "test_pass")

	_, err := Run(db)
	require.NoError(t, err)

	var customerRole models.Role
	require.NoError(t, db.Where("name = ?", "customer").First(&customerRole).Error)

	var customerCount int64
	require.NoError(t, db.Model(&models.User{}).Where("role_id = ?", customerRole.ID).Count(&customerCount).Error)
	assert.Zero(t, customerCount)
}

func TestSeededDataAllowsRegistration(t *testing.T) {
	db := openTestDB(t)
	t.Setenv("SEED_ADMIN_PASSWORD", "test_pass")

	_, err := Run(db)
	require.NoError(t, err)

	var customerRole models.Role
	require.NoError(t, db.Where("name = ?", "customer").First(&customerRole).Error)

	newUser := models.User{
		Name:     "New",
		LastName: "Customer",
		Email:    "customer@example.com",
		Password: "customer_pass",
		RoleID:   &customerRole.ID,
	}
	require.NoError(t, db.Create(&newUser).Error)

	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	assert.Equal(t, int64(3), userCount) // 2 admins + 1 customer
}
