package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content hashes. The version suffix allows the
// document shape to change without colliding with old fingerprints.
const (
	DomainCatalog = "gatecat/catalog/v1"
	DomainReport  = "gatecat/report/v1"
)

// hashWithDomain returns hex(SHA256(domain || 0x00 || data)).
// The null byte keeps the domain/data boundary unambiguous.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// CatalogFingerprint identifies the content of a catalog document.
// Two processes agree on the fingerprint exactly when their catalogs
// describe the same gates.
func CatalogFingerprint(doc CatalogDoc) (string, error) {
	canonical, err := MarshalCanonical(doc.Canonical())
	if err != nil {
		return "", fmt.Errorf("CatalogFingerprint: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainCatalog, canonical), nil
}

// ReportDigest hashes an already canonical report object.
func ReportDigest(report IRObject) (string, error) {
	canonical, err := MarshalCanonical(report)
	if err != nil {
		return "", fmt.Errorf("ReportDigest: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainReport, canonical), nil
}

// MustCatalogFingerprint is like CatalogFingerprint but panics on error.
// Use only in tests or when doc is known to be valid.
func MustCatalogFingerprint(doc CatalogDoc) string {
	fp, err := CatalogFingerprint(doc)
	if err != nil {
		panic(err)
	}
	return fp
}
