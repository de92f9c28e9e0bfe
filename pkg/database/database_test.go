package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type note struct {
	ID   uint `gorm:"primaryKey"`
	Body string
}

func openMemory(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&note{}))
	return db
}

func countNotes(t *testing.T, db *gorm.DB) int64 {
	var n int64
	require.NoError(t, db.Model(&note{}).Count(&n).Error)
	return n
}

func TestInTxCommits(t *testing.T) {
	db := openMemory(t)
	tx := NewTransactor(db)

	err := tx.InTx(context.Background(), func(tx *gorm.DB) error {
		return tx.Create(&note{Body: "kept"}).Error
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, countNotes(t, db))
}

func TestInTxRollsBackOnError(t *testing.T) {
	db := openMemory(t)
	tx := NewTransactor(db)
	boom := errors.New("boom")

	err := tx.InTx(context.Background(), func(tx *gorm.DB) error {
		if err := tx.Create(&note{Body: "discarded"}).Error; err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.EqualValues(t, 0, countNotes(t, db))
}

func TestInTxRollsBackOnPanic(t *testing.T) {
	db := openMemory(t)
	tx := NewTransactor(db)

	assert.Panics(t, func() {
		_ = tx.InTx(context.Background(), func(tx *gorm.DB) error {
			tx.Create(&note{Body: "discarded"})
			panic("unexpected")
		})
	})
	assert.EqualValues(t, 0, countNotes(t, db))
}
