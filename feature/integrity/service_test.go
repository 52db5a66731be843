package integrity

import (
	"context"
	"testing"

	"uniform-manager/core/storage/mocks"
	"uniform-manager/feature/uniform/store/storetest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for testing.
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

func TestService_Structure(t *testing.T) {
	mockClient := new(mocks.Client)
	logger := zap.NewNop()
	svc := NewService(mockClient, "test-bucket", logger, nil)

	t.Run("CheckStructure", func(t *testing.T) {
		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)

		ch := make(chan minio.ObjectInfo)
		close(ch)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

		missing, err := svc.CheckStructure(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []string{"forecast"}, missing)
	})

	t.Run("FixStructure", func(t *testing.T) {
		mockClient.On("PutObject", mock.Anything, "test-bucket", "forecast/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)
		err := svc.FixStructure(context.Background(), []string{"forecast"})
		assert.NoError(t, err)
	})
}

func TestService_StorageDisabled(t *testing.T) {
	svc := NewService(nil, "test-bucket", zap.NewNop(), nil)

	_, err := svc.CheckStructure(context.Background())
	assert.ErrorIs(t, err, ErrStorageDisabled)
	assert.ErrorIs(t, svc.FixStructure(context.Background(), []string{"forecast"}), ErrStorageDisabled)
}

func TestService_Server(t *testing.T) {
	t.Run("Migrated", func(t *testing.T) {
		svc := NewService(nil, "", zap.NewNop(), storetest.New(t).DB())

		report, err := svc.CheckServer()
		require.NoError(t, err)
		assert.True(t, report.Matched)
	})

	t.Run("Empty Schema", func(t *testing.T) {
		db, sqlMock := setupMockDB(t)
		empty := []string{"Field", "Type", "Null", "Key", "Default", "Extra"}
		sqlMock.ExpectQuery("SHOW COLUMNS FROM `stock_records`").WillReturnRows(sqlmock.NewRows(empty))
		sqlMock.ExpectQuery("SHOW COLUMNS FROM `uniform_records`").WillReturnRows(sqlmock.NewRows(empty))
		sqlMock.ExpectQuery("SHOW COLUMNS FROM `issued_items`").WillReturnRows(sqlmock.NewRows(empty))

		svc := NewService(nil, "", zap.NewNop(), db)
		report, err := svc.CheckServer()
		require.NoError(t, err)
		assert.False(t, report.Matched)
		assert.Len(t, report.Errors, 3)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("No Database", func(t *testing.T) {
		svc := NewService(nil, "", zap.NewNop(), nil)
		_, err := svc.CheckServer()
		assert.Error(t, err)
	})
}
