package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"my-diary-be/internal/repository/unitofwork"
	"my-diary-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.DiaryRepository())
	assert.NotNil(t, uow.PhotoRepository())
	assert.NotNil(t, uow.ChatTurnRepository())

	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Diary Repository", func(t *testing.T) {
		count, err := uow.DiaryRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Diary count: %d", count)
	})

	t.Run("Check Chat Turn Repository", func(t *testing.T) {
		count, err := uow.ChatTurnRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Chat turn count: %d", count)
	})
}
