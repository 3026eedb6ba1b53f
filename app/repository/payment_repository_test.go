package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"paydeck/app/models"
)

func setupTestRepo(t *testing.T) PaymentRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Payment{}))

	return NewPaymentRepository(db)
}

func TestPaymentRepository_CreateAndListRoundTrip(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t)

	payment := &models.Payment{ID: "20260828-K3A", Amount: 12.5, Status: models.StatusProcessing, Email: "a@b.com"}
	require.NoError(t, repo.Create(payment))

	records, err := repo.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, *payment, records[0])

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestPaymentRepository_CreateRejectsInvalidStatus(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t)

	tests := []struct {
		status string
		valid  bool
	}{
		{models.StatusPending, true},
		{models.StatusProcessing, true},
		{models.StatusSuccess, true},
		{models.StatusFailed, true},
		{"Pending", false},
		{"pending ", false},
		{"done", false},
		{"", false},
	}

	for i, tt := range tests {
		payment := &models.Payment{
			ID:     "A" + string(rune('0'+i)),
			Amount: 10,
			Status: tt.status,
			Email:  "a@b.com",
		}
		err := repo.Create(payment)

		if tt.valid {
			assert.NoError(t, err, "status %q", tt.status)
			continue
		}

		var invalid *models.InvalidStatusError
		require.ErrorAs(t, err, &invalid, "status %q", tt.status)
		assert.Equal(t, tt.status, invalid.Status)
	}

	// nothing outside the allowed set was persisted
	records, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, records, 4)
	for _, r := range records {
		assert.True(t, models.IsValidStatus(r.Status))
	}
}

func TestPaymentRepository_InvalidStatusErrorMessage(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t)

	err := repo.Create(&models.Payment{ID: "A1", Amount: 1, Status: "done", Email: "a@b.com"})
	require.Error(t, err)
	assert.Equal(t, "Status invalid: done. Must be one of pending, processing, success, failed", err.Error())
}

func TestPaymentRepository_DeleteRemovesRecord(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t)

	require.NoError(t, repo.Create(&models.Payment{ID: "A1", Amount: 100, Status: models.StatusPending, Email: "a@b.com"}))

	records, err := repo.List()
	require.NoError(t, err)
	require.Len(t, records, 1)

	require.NoError(t, repo.Delete("A1"))

	records, err = repo.List()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestPaymentRepository_DeleteMissingReturnsNotFound(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t)

	err := repo.Delete("20990101-ZZZ")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPaymentRepository_GetByID(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t)

	require.NoError(t, repo.Create(&models.Payment{ID: "A1", Amount: 5, Status: models.StatusFailed, Email: "a@b.com"}))

	payment, err := repo.GetByID("A1")
	require.NoError(t, err)
	assert.Equal(t, "A1", payment.ID)

	_, err = repo.GetByID("A2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPaymentRepository_RecreateAfterDelete(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t)

	original := &models.Payment{ID: "A1", Amount: 12.5, Status: models.StatusProcessing, Email: "a@b.com"}
	require.NoError(t, repo.Create(original))
	require.NoError(t, repo.Delete("A1"))

	// the store permits re-insertion with the caller-supplied id
	require.NoError(t, repo.Create(original))

	payment, err := repo.GetByID("A1")
	require.NoError(t, err)
	assert.Equal(t, *original, *payment)
}

func TestPaymentRepository_SearchByEmailSubstring(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t)

	require.NoError(t, repo.Create(&models.Payment{ID: "A1", Amount: 1, Status: models.StatusPending, Email: "ken99@example.com"}))
	require.NoError(t, repo.Create(&models.Payment{ID: "A2", Amount: 2, Status: models.StatusSuccess, Email: "abe45@example.com"}))

	records, err := repo.Search("ken")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "A1", records[0].ID)
}
