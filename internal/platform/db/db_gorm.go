package db

import (
	"log"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "stockr/internal/feature/auth/domain/entity"
	quoteadapters "stockr/internal/feature/quotes/adapters"
	watchlistadapters "stockr/internal/feature/watchlist/adapters"
)

const defaultDBPath = "stockr.db"

// Config はSQLiteデータベースの設定です。
type Config struct {
	Path          string // データベースファイルのパス（":memory:"も可）
	RunMigrations bool
}

// LoadConfigFromEnv は環境変数からデータベース設定を読み込みます。
// STOCKR_DBでパスを上書きできます。マイグレーションは
// RUN_MIGRATIONS=false のときのみ無効になります。
func LoadConfigFromEnv() Config {
	path := os.Getenv("STOCKR_DB")
	if path == "" {
		path = defaultDBPath
	}
	return Config{
		Path:          path,
		RunMigrations: os.Getenv("RUN_MIGRATIONS") != "false",
	}
}

// Open は指定された設定でSQLiteデータベースを開きます。
func Open(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if cfg.RunMigrations {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Migrate はスキーママイグレーションを実行します（User, Quote, Watchlist）。
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&authentity.User{},
		&quoteadapters.QuoteModel{},
		&watchlistadapters.WatchlistModel{},
	)
}

// OpenDB は環境変数の設定でデータベースを開きます。失敗時は起動を中断します。
func OpenDB() *gorm.DB {
	db, err := Open(LoadConfigFromEnv())
	if err != nil {
		log.Fatalf("DB open failed: %v", err)
	}
	return db
}
