package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
)

// ErrInvalidCredentials is the single failure surfaced for a rejected login.
var ErrInvalidCredentials = errors.New("username atau kode akses salah")

// UserAccount is one allow-list entry.
type UserAccount struct {
	Username  string `json:"username" mapstructure:"username"`
	AccessKey string `json:"access_key" mapstructure:"access_key"`
	Name      string `json:"name" mapstructure:"name"`
}

type Credentials struct {
	Username  string `json:"username"`
	AccessKey string `json:"accessKey"`
}

type Principal struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Provider verifies credentials and yields the authenticated principal.
// The static allow-list below is one implementation; a real identity backend
// can replace it without touching callers.
type Provider interface {
	Verify(ctx context.Context, creds Credentials) (Principal, error)
}

type AllowlistProvider struct {
	users []UserAccount
}

func NewAllowlistProvider(users []UserAccount) *AllowlistProvider {
	if len(users) == 0 {
		users = DefaultAllowlist()
	}
	return &AllowlistProvider{users: users}
}

// Verify matches the username case-insensitively and the access key exactly.
func (p *AllowlistProvider) Verify(_ context.Context, creds Credentials) (Principal, error) {
	username := strings.ToLower(strings.TrimSpace(creds.Username))
	for _, u := range p.users {
		if strings.ToLower(u.Username) != username {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(u.AccessKey), []byte(creds.AccessKey)) == 1 {
			return Principal{Username: u.Username, Name: u.Name}, nil
		}
		return Principal{}, ErrInvalidCredentials
	}
	return Principal{}, ErrInvalidCredentials
}

// DefaultAllowlist is the built-in license list used when no users are
// configured.
func DefaultAllowlist() []UserAccount {
	return []UserAccount{
		{Username: "admin", AccessKey: "RPM-2025-SUPER", Name: "Administrator"},
		{Username: "user01", AccessKey: "RPM-EB-001-XYZ", Name: "Pengguna Perdana 01"},
		{Username: "user02", AccessKey: "RPM-EB-002-ABC", Name: "Pengguna Perdana 02"},
		{Username: "user03", AccessKey: "RPM-EB-003-DEF", Name: "Pengguna Perdana 03"},
		{Username: "user04", AccessKey: "RPM-EB-004-GHI", Name: "Pengguna Perdana 04"},
		{Username: "user05", AccessKey: "RPM-EB-005-JKL", Name: "Pengguna Perdana 05"},
		{Username: "user06", AccessKey: "RPM-EB-006-MNO", Name: "Pengguna Perdana 06"},
		{Username: "user07", AccessKey: "RPM-EB-007-PQR", Name: "Pengguna Perdana 07"},
		{Username: "user08", AccessKey: "RPM-EB-008-STU", Name: "Pengguna Perdana 08"},
		{Username: "user09", AccessKey: "RPM-EB-009-VWX", Name: "Pengguna Perdana 09"},
		{Username: "user10", AccessKey: "RPM-EB-010-YZA", Name: "Pengguna Perdana 10"},
	}
}
