package checks

import (
	"testing"

	"uniform-manager/feature/uniform/models"
	"uniform-manager/feature/uniform/store/storetest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func stockColumns() *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	rows.AddRow("id", "bigint unsigned", "NO", "PRI", nil, "auto_increment")
	rows.AddRow("category", "varchar(64)", "NO", "MUL", nil, "")
	rows.AddRow("type", "varchar(128)", "NO", "", nil, "")
	rows.AddRow("size", "varchar(32)", "NO", "", "", "")
	rows.AddRow("quantity", "int(11)", "NO", "", "0", "")
	rows.AddRow("status", "varchar(32)", "NO", "", nil, "")
	rows.AddRow("created_at", "datetime(3)", "YES", "", nil, "")
	rows.AddRow("updated_at", "datetime(3)", "YES", "", nil, "")
	return rows
}

func TestCheckServerIntegrity_NilDB(t *testing.T) {
	report, err := CheckServerIntegrity(nil, models.All())
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckServerIntegrity_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SHOW COLUMNS FROM `stock_records`").WillReturnRows(stockColumns())

	report, err := CheckServerIntegrity(db, []any{&models.StockRecord{}})
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Equal(t, "mysql", report.Driver)
	assert.Equal(t, "ok", report.Tables["stock_records"].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckServerIntegrity_MissingColumn(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	rows.AddRow("id", "bigint unsigned", "NO", "PRI", nil, "auto_increment")
	rows.AddRow("member_id", "varchar(64)", "NO", "UNI", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `uniform_records`").WillReturnRows(rows)

	report, err := CheckServerIntegrity(db, []any{&models.UniformRecord{}})
	require.NoError(t, err)
	assert.False(t, report.Matched)

	tbl := report.Tables["uniform_records"]
	assert.Equal(t, "error", tbl.Status)
	assert.Contains(t, tbl.MissingColumns, "version")
	assert.Contains(t, tbl.MissingColumns, "created_at")
}

func TestCheckServerIntegrity_TypeMismatch(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	rows.AddRow("id", "bigint unsigned", "NO", "PRI", nil, "auto_increment")
	rows.AddRow("category", "varchar(64)", "NO", "MUL", nil, "")
	rows.AddRow("type", "varchar(128)", "NO", "", nil, "")
	rows.AddRow("size", "varchar(32)", "NO", "", "", "")
	rows.AddRow("quantity", "varchar(10)", "NO", "", "0", "")
	rows.AddRow("status", "varchar(32)", "NO", "", nil, "")
	rows.AddRow("created_at", "datetime(3)", "YES", "", nil, "")
	rows.AddRow("updated_at", "datetime(3)", "YES", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `stock_records`").WillReturnRows(rows)

	report, err := CheckServerIntegrity(db, []any{models.StockRecord{}})
	require.NoError(t, err)
	assert.False(t, report.Matched)

	tbl := report.Tables["stock_records"]
	require.Len(t, tbl.TypeMismatches, 1)
	assert.Contains(t, tbl.TypeMismatches[0], "quantity")
}

func TestCheckServerIntegrity_TableMissing(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SHOW COLUMNS FROM `issued_items`").
		WillReturnRows(sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}))

	report, err := CheckServerIntegrity(db, []any{&models.IssuedItem{}})
	require.NoError(t, err)
	assert.False(t, report.Matched)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "issued_items does not exist")
}

func TestCheckServerIntegrity_MigratedSQLite(t *testing.T) {
	s := storetest.New(t)

	report, err := CheckServerIntegrity(s.DB(), models.All())
	require.NoError(t, err)
	assert.Equal(t, "sqlite", report.Driver)
	assert.True(t, report.Matched, "errors: %v tables: %v", report.Errors, report.Tables)
	assert.Len(t, report.Tables, 3)
}

func TestParseGormTags(t *testing.T) {
	tag := "column:size;type:varchar(32);not null;default:''"
	assert.Equal(t, "size", parseGormColumn(tag))
	assert.Equal(t, "varchar(32)", parseGormType(tag))
	assert.Empty(t, parseGormType("column:received_date"))
}
