package repositories

import (
	"errors"
	"testing"

	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err, "failed to create mock database")
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)

	return NewUserRepository(gormDB), mock
}

func TestCreate_DuplicateEmail(t *testing.T) {
	t.Parallel()

	repo, mock := setupMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).
			AddRow("user-1", "pris@test.fr"))

	err := repo.Create(&models.User{Email: "pris@test.fr"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failed duplicate lookup must surface, not fall through to the
// insert: otherwise an outage during the check could create a second
// account for the same email.
func TestCreate_LookupFailureDoesNotInsert(t *testing.T) {
	t.Parallel()

	repo, mock := setupMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnError(errors.New("pq: connection refused"))

	err := repo.Create(&models.User{Email: "injoignable@test.fr"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserAlreadyExists)
	assert.ErrorContains(t, err, "connection refused")
	// No insert was attempted.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_InsertsWhenEmailFree(t *testing.T) {
	t.Parallel()

	repo, mock := setupMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("user-1"))
	mock.ExpectCommit()

	user := &models.User{Email: "libre@test.fr"}
	require.NoError(t, repo.Create(user))
	assert.Equal(t, "user-1", user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
