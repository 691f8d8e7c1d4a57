package database

import (
	"net"
	"net/url"
)

type PostgresSettings struct {
	// URL, when set, is used as is and the other fields are ignored.
	URL string

	User       string
	Password   string
	Host       string
	Port       string
	DBName     string
	SSlEnabled bool
}

func (s PostgresSettings) GetURL() string {
	if s.URL != "" {
		return s.URL
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(s.User, s.Password),
		Host:   net.JoinHostPort(s.Host, s.Port),
		Path:   s.DBName,
	}

	if !s.SSlEnabled {
		u.RawQuery = "sslmode=disable"
	}

	return u.String()
}
