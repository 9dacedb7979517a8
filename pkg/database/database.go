package database

import (
	"fmt"
	"log"

	"planner_backend/internal/config"
	"planner_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Models 返回需要迁移的全部表
func Models() []interface{} {
	return []interface{}{
		&model.User{},
		&model.ActivityEntry{},
		&model.Badge{},
		&model.Habit{},
		&model.Event{},
		&model.WellnessLog{},
		&model.JournalEntry{},
		&model.VisionItem{},
		&model.Preferences{},
	}
}

// Dialector 根据配置的驱动构造 gorm 方言
func Dialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "", "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
			cfg.User,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName,
			cfg.Charset,
			cfg.ParseTime,
		)
		return mysql.Open(dsn), nil
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
			cfg.Host,
			cfg.User,
			cfg.Password,
			cfg.DBName,
			cfg.Port,
		)
		return postgres.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(cfg.SQLitePath), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func Open(cfg *config.DatabaseConfig, mode string) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Warn
	if mode == "debug" {
		logLevel = logger.Info
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

func InitDB(cfg *config.DatabaseConfig, mode string, migrate bool) (*gorm.DB, error) {
	db, err := Open(cfg, mode)
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// release 模式默认跳过迁移，除非显式指定
	if mode == "release" && !migrate {
		return db, nil
	}

	if err := AutoMigrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")
	return db, nil
}
