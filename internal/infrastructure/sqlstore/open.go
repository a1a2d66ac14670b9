package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"os/user"

	"github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/zjrosen/gridline/internal/log"
)

// Conn describes how to reach the database. DSN wins when set; otherwise
// it is built from the individual fields.
type Conn struct {
	Driver   string `mapstructure:"driver" yaml:"driver"`
	DSN      string `mapstructure:"dsn" yaml:"dsn,omitempty"`
	Host     string `mapstructure:"host" yaml:"host,omitempty"`
	Port     string `mapstructure:"port" yaml:"port,omitempty"`
	User     string `mapstructure:"user" yaml:"user,omitempty"`
	Password string `mapstructure:"password" yaml:"password,omitempty"`
	Database string `mapstructure:"database" yaml:"database,omitempty"`
}

// DataSource returns the driver-specific connection string.
func (c Conn) DataSource() (Dialect, string, error) {
	d, err := ParseDialect(c.Driver)
	if err != nil {
		return "", "", err
	}
	if c.DSN != "" {
		return d, c.DSN, nil
	}
	if c.Database == "" {
		return d, "", fmt.Errorf("%s: database or dsn required", d)
	}

	username := c.User
	if username == "" {
		if u, err := user.Current(); err == nil {
			username = u.Username
		}
	}

	switch d {
	case Postgres:
		u := url.URL{Scheme: "postgres", Path: "/" + c.Database, RawQuery: "sslmode=disable"}
		host := c.Host
		if host == "" {
			host = "localhost"
		}
		if c.Port != "" {
			host = net.JoinHostPort(host, c.Port)
		}
		u.Host = host
		if c.Password != "" {
			u.User = url.UserPassword(username, c.Password)
		} else {
			u.User = url.User(username)
		}
		return d, u.String(), nil
	case MySQL:
		cfg := mysql.NewConfig()
		cfg.User = username
		cfg.Passwd = c.Password
		cfg.Net = "tcp"
		host, port := c.Host, c.Port
		if host == "" {
			host = "localhost"
		}
		if port == "" {
			port = "3306"
		}
		cfg.Addr = net.JoinHostPort(host, port)
		cfg.DBName = c.Database
		// Count matched rather than changed rows, so rewriting a value
		// is not mistaken for a missing record.
		cfg.ClientFoundRows = true
		return d, cfg.FormatDSN(), nil
	default:
		return d, c.Database, nil
	}
}

// Open connects and pings the database.
func Open(ctx context.Context, c Conn) (*sql.DB, Dialect, error) {
	d, dsn, err := c.DataSource()
	if err != nil {
		return nil, "", err
	}
	db, err := sql.Open(d.DriverName(), dsn)
	if err != nil {
		return nil, d, fmt.Errorf("open %s: %w", d, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, d, fmt.Errorf("ping %s: %w", d, err)
	}
	log.Info(log.CatDB, "connected", "dialect", d)
	return db, d, nil
}
