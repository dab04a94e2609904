package db

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type auditEntry struct {
	ID   int
	Note string
}

func newClientTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&auditEntry{}); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return conn
}

func TestWithTxCommitsOnNilError(t *testing.T) {
	conn := newClientTestDB(t)
	client := &Client{conn: conn}

	err := client.WithTx(context.Background(), func(tx *gorm.DB) error {
		return tx.Create(&auditEntry{Note: "kept"}).Error
	})
	if err != nil {
		t.Fatalf("WithTx: %v", err)
	}

	var count int64
	if err := conn.Model(&auditEntry{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 row after commit, got %d", count)
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	conn := newClientTestDB(t)
	client := &Client{conn: conn}

	err := client.WithTx(context.Background(), func(tx *gorm.DB) error {
		if err := tx.Create(&auditEntry{Note: "discarded"}).Error; err != nil {
			return err
		}
		return errors.New("boom")
	})
	if err == nil {
		t.Fatal("expected WithTx to surface the callback error")
	}

	var count int64
	if err := conn.Model(&auditEntry{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected rollback to leave 0 rows, got %d", count)
	}
}

func TestPing(t *testing.T) {
	client := &Client{conn: newClientTestDB(t)}
	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}
