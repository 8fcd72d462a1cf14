// Package database provides the MySQL connection management for the portal.
package database

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"mednews/internal/config"
)

// tlsConfigName is the driver-level registration key for the custom trust
// anchor supplied via config.
const tlsConfigName = "mednews-ca"

// Open opens a MySQL connection pool using the provided config. The
// connection itself is lazy: an unreachable server surfaces on the first
// query, which flows through the store's retry path rather than failing
// startup.
func Open(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	mysqlCfg := mysql.NewConfig()
	mysqlCfg.User = cfg.Username
	mysqlCfg.Passwd = cfg.Password
	mysqlCfg.Net = "tcp"
	mysqlCfg.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	mysqlCfg.DBName = cfg.Database
	mysqlCfg.ParseTime = true

	if cfg.TLS {
		mysqlCfg.TLSConfig = resolveTLSConfig(cfg.TLSCACert)
	}

	db, err := sqlx.Open("mysql", mysqlCfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("open database connection: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
	}

	return db, nil
}

// resolveTLSConfig registers the CA certificate at caPath with the driver
// and returns the TLS config name to put in the DSN. A missing or unusable
// CA file must not crash the process: it logs a warning and falls back to
// the system trust store, so a bad handshake surfaces as an ordinary
// connection failure on the first query.
func resolveTLSConfig(caPath string) string {
	if caPath == "" {
		return "true"
	}

	pem, err := os.ReadFile(caPath)
	if err != nil {
		log.Printf("Warning: could not read TLS CA certificate %s: %v, using system trust store", caPath, err)
		return "true"
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		log.Printf("Warning: no usable certificates in %s, using system trust store", caPath)
		return "true"
	}

	if err := mysql.RegisterTLSConfig(tlsConfigName, &tls.Config{RootCAs: pool}); err != nil {
		log.Printf("Warning: could not register TLS config: %v, using system trust store", err)
		return "true"
	}

	return tlsConfigName
}
