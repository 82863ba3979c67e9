package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// BackupFile copies src into backupDir under a timestamped name and returns
// the backup path. It is called once per pass that rewrites the local file,
// before the rewrite. Backups are never pruned here; retention is the
// operator's concern.
//
// A missing src returns ("", nil): the first pull onto a fresh machine has
// nothing to preserve.
func BackupFile(src, backupDir string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("open log file for backup: %w", err)
	}
	defer in.Close()

	if err = os.MkdirAll(backupDir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	name := fmt.Sprintf("%s.%s.%s.bak",
		filepath.Base(src),
		time.Now().UTC().Format("20060102-150405"),
		shortID(),
	)
	dst := filepath.Join(backupDir, name)

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return "", fmt.Errorf("create backup file: %w", err)
	}

	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return "", fmt.Errorf("copy log file to backup: %w", err)
	}
	if err = out.Close(); err != nil {
		return "", fmt.Errorf("close backup file: %w", err)
	}

	return dst, nil
}

// shortID returns a short unique suffix so two backups within the same
// second never collide.
func shortID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return id.String()[:8]
}
