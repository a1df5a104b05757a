package identity

import (
	"path"
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// DocumentUUID identifies a converted Markdown file by its slash separated
// path, so "./docs/a.md" and "docs/a.md" share an ID.
func DocumentUUID(filePath string) uuid.UUID {
	trimmed := strings.TrimSpace(filePath)
	if trimmed == "" {
		return uuid.Nil
	}
	clean := path.Clean(strings.ReplaceAll(trimmed, "\\", "/"))
	return UUID("md2adf:document:" + clean)
}
