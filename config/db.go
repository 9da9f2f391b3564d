package config

import (
	"fmt"
	"net/url"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func (db *DB) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		db.HOST, db.USER, db.PASSWORD, db.NAME, db.PORT, db.SSLMODE,
	)
}

// URL returns the connection string in the URL form golang-migrate expects.
func (db *DB) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(db.USER, db.PASSWORD),
		Host:     fmt.Sprintf("%s:%s", db.HOST, db.PORT),
		Path:     db.NAME,
		RawQuery: "sslmode=" + db.SSLMODE,
	}
	return u.String()
}

func (db *DB) GormConnect() (*gorm.DB, error) {
	return gorm.Open(postgres.Open(db.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}
