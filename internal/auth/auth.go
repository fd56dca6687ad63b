package auth

import "encoding/base64"

// HashPassword returns the stand-in password digest used by the seed catalog
// and credential validation. It is base64, not a real hash: validation matches
// stored digests by string equality, so the scheme must stay deterministic.
// A salted hash (bcrypt et al.) cannot be dropped in without changing the
// lookup contract.
func HashPassword(pw string) string {
	return base64.StdEncoding.EncodeToString([]byte(pw))
}

// CheckPassword reports whether pw digests to hash.
func CheckPassword(hash, pw string) bool {
	return HashPassword(pw) == hash
}
