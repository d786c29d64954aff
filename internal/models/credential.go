package models

import "strings"

// CredentialKind tags how a stored password secret is encoded.
type CredentialKind int

const (
	// CredentialBcrypt marks a modern bcrypt hash.
	CredentialBcrypt CredentialKind = iota
	// CredentialLegacy marks a plaintext secret awaiting migration.
	CredentialLegacy
)

// Credential is the stored password secret classified once at read time,
// replacing ad-hoc prefix sniffing at every comparison site.
type Credential struct {
	Kind   CredentialKind
	Secret string
}

// bcrypt hashes start with a fixed-format version prefix.
var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// ParseCredential classifies a stored password value.
func ParseCredential(stored string) Credential {
	for _, prefix := range bcryptPrefixes {
		if strings.HasPrefix(stored, prefix) {
			return Credential{Kind: CredentialBcrypt, Secret: stored}
		}
	}
	return Credential{Kind: CredentialLegacy, Secret: stored}
}
