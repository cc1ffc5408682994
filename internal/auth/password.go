package auth

import (
	"errors"
	"strings"

	"github.com/GehirnInc/crypt"
	"github.com/GehirnInc/crypt/md5_crypt"
	"github.com/GehirnInc/crypt/sha256_crypt"
	"github.com/GehirnInc/crypt/sha512_crypt"

	"github.com/identops/sysid/internal/hostfs"
	"github.com/identops/sysid/internal/sysid"
	"github.com/identops/sysid/internal/userdb"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserLocked         = errors.New("user is locked")
	ErrUnsupportedHash    = errors.New("unsupported password hash")
)

// VerifyPassword checks a password against the host shadow database.
// Hash formats crypt(3) can verify are checked directly; anything else
// (yescrypt and friends) falls back to su(1) behind a PTY.
func VerifyPassword(username, password string) error {
	path, err := hostfs.Path(hostfs.EtcShadowRel)
	if err != nil {
		return err
	}
	sh, err := userdb.LoadShadow(path)
	if err != nil {
		return err
	}
	se := sh.Find(username)
	if se == nil {
		return ErrInvalidCredentials
	}
	if se.Hash == "" || strings.HasPrefix(se.Hash, "!") || strings.HasPrefix(se.Hash, "*") {
		return ErrUserLocked
	}
	if ok, err := verifyCrypt(se.Hash, password); err != nil {
		if errors.Is(err, ErrUnsupportedHash) {
			ok2, err2 := verifyWithSu(username, password)
			if err2 != nil {
				return err2
			}
			if !ok2 {
				return ErrInvalidCredentials
			}
			return nil
		}
		return err
	} else if !ok {
		return ErrInvalidCredentials
	}
	return nil
}

func verifyCrypt(hash, password string) (bool, error) {
	// Supported crypt formats: $1$ (md5), $5$ (sha256), $6$ (sha512).
	var crypters []crypt.Crypter
	crypters = append(crypters, sha512_crypt.New())
	crypters = append(crypters, sha256_crypt.New())
	crypters = append(crypters, md5_crypt.New())

	for _, c := range crypters {
		if err := c.Verify(hash, []byte(password)); err == nil {
			return true, nil
		}
	}

	// Detect an obviously unsupported hash prefix (yescrypt, scrypt,
	// bcrypt) so the caller can fall back to system authentication.
	if strings.HasPrefix(hash, "$y$") || strings.HasPrefix(hash, "$7$") || strings.HasPrefix(hash, "$2") {
		return false, ErrUnsupportedHash
	}
	return false, nil
}

// IsAdmin derives admin from sudo-capable group membership, looked up
// through the identity accessor.
func IsAdmin(username string) (bool, error) {
	for _, gname := range []string{"sudo", "wheel"} {
		g, err := sysid.LookupGroupName(gname)
		if err != nil {
			return false, err
		}
		if g == nil {
			continue
		}
		for _, m := range g.Members {
			if m == username {
				return true, nil
			}
		}
	}
	return false, nil
}
