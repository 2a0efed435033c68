package mysql_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/snapfeed-app/snapfeed-backend/domain"
	"github.com/snapfeed-app/snapfeed-backend/internal/repository/mysql"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gdb, mock
}

func userColumns() []string {
	return []string{"id", "name", "email", "avatar", "following", "followers", "posts", "created_at", "updated_at"}
}

func TestUserGetByID(t *testing.T) {
	gdb, mock := setupMockDB(t)
	now := time.Now()

	rows := sqlmock.NewRows(userColumns()).
		AddRow("u1", "Alice", "alice@example.com", "avatar.png", []byte(`["u2","u3"]`), int64(5), int64(2), now, now)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `user` WHERE id = ?")).
		WillReturnRows(rows)

	repo := mysql.NewUserRepository(gdb)
	user, err := repo.GetByID(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, []string{"u2", "u3"}, user.Following)
	assert.Equal(t, int64(5), user.Followers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserGetByIDNotFound(t *testing.T) {
	gdb, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `user` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	repo := mysql.NewUserRepository(gdb)
	_, err := repo.GetByID(context.Background(), "ghost")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserInsert(t *testing.T) {
	gdb, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `user`")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	repo := mysql.NewUserRepository(gdb)
	err := repo.Insert(context.Background(), &domain.User{
		ID:    "u1",
		Name:  "Alice",
		Email: "alice@example.com",
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserUpdateWritesZeroValues(t *testing.T) {
	gdb, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `user` SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := mysql.NewUserRepository(gdb)
	// a zeroed counter and an emptied following list must still land
	err := repo.Update(context.Background(), &domain.User{
		ID:        "u1",
		Name:      "Alice",
		Email:     "alice@example.com",
		Following: []string{},
		Followers: 0,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserSearchByNamePeeksNextPage(t *testing.T) {
	gdb, mock := setupMockDB(t)
	now := time.Now()

	// limit+1 rows returned means one more page exists
	rows := sqlmock.NewRows(userColumns()).
		AddRow("u1", "Alice", "a@example.com", "", []byte(`[]`), int64(0), int64(0), now, now).
		AddRow("u2", "Alicia", "b@example.com", "", []byte(`[]`), int64(0), int64(0), now, now).
		AddRow("u3", "Malice", "c@example.com", "", []byte(`[]`), int64(0), int64(0), now, now)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `user` WHERE name LIKE ?")).
		WillReturnRows(rows)

	repo := mysql.NewUserRepository(gdb)
	users, nextID, err := repo.SearchByName(context.Background(), "ali", "", 2)

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "u2", nextID)
}

func TestUserSearchByNameLastPage(t *testing.T) {
	gdb, mock := setupMockDB(t)
	now := time.Now()

	rows := sqlmock.NewRows(userColumns()).
		AddRow("u5", "Alice", "a@example.com", "", []byte(`[]`), int64(0), int64(0), now, now)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `user` WHERE name LIKE ? AND id > ?")).
		WillReturnRows(rows)

	repo := mysql.NewUserRepository(gdb)
	users, nextID, err := repo.SearchByName(context.Background(), "ali", "u3", 2)

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Empty(t, nextID)
}
