package resource

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/encoding/simplifiedchinese"

	"svinstall/internal/paths"
)

// FindArchive returns the first zip file in dir whose name contains the
// keyword. Matching is case-sensitive to mirror the bundled archive names.
func FindArchive(dir, keyword string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+keyword+"*.zip"))
	if err != nil {
		return "", fmt.Errorf("scan resource dir: %w", err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no zip archive matching %q in %s", keyword, dir)
	}
	sort.Strings(matches)
	return matches[0], nil
}

// ExtractArchive unpacks a zip archive into a sibling directory named
// destName. If the destination already exists extraction is skipped and the
// existing path returned, matching the installer's idempotent behaviour.
func ExtractArchive(archivePath, destName string) (string, error) {
	dest := filepath.Join(filepath.Dir(archivePath), destName)
	exists, err := paths.DirExists(dest)
	if err != nil {
		return "", fmt.Errorf("check extract destination: %w", err)
	}
	if exists {
		return dest, nil
	}
	if err := ExtractZip(archivePath, dest); err != nil {
		return "", err
	}
	return dest, nil
}

// ExtractZip unpacks a zip archive into dest, repairing legacy-encoded entry
// names and refusing entries that would escape the destination.
func ExtractZip(archivePath, dest string) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("open zip: %w", err)
	}
	defer reader.Close()

	if err := os.MkdirAll(dest, 0o755); err != nil {
		return fmt.Errorf("prepare extract dir: %w", err)
	}

	for _, file := range reader.File {
		name := entryName(file)
		target := filepath.Join(dest, filepath.FromSlash(name))
		if !withinDir(dest, target) {
			return fmt.Errorf("zip entry escapes destination: %s", file.Name)
		}
		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("create dir %s: %w", target, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("prepare file %s: %w", target, err)
		}
		rc, err := file.Open()
		if err != nil {
			return fmt.Errorf("open zip entry %s: %w", file.Name, err)
		}
		out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, file.Mode())
		if err != nil {
			rc.Close()
			return fmt.Errorf("create file %s: %w", target, err)
		}
		if _, err := io.Copy(out, rc); err != nil {
			rc.Close()
			out.Close()
			return fmt.Errorf("copy file %s: %w", target, err)
		}
		rc.Close()
		if err := out.Close(); err != nil {
			return fmt.Errorf("close file %s: %w", target, err)
		}
	}
	return nil
}

// entryName repairs zip entry names written by legacy tools. Archives
// produced without the UTF-8 flag carry raw bytes that are usually GBK for
// the bundled Chinese mod packs.
func entryName(file *zip.File) string {
	if file.NonUTF8 {
		if decoded, err := simplifiedchinese.GBK.NewDecoder().String(file.Name); err == nil {
			return decoded
		}
	}
	return file.Name
}

func withinDir(dir, target string) bool {
	rel, err := filepath.Rel(dir, target)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// CopyTree recursively copies the directory tree rooted at src into dst.
// dst must not already exist.
func CopyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	source, err := os.Open(src)
	if err != nil {
		return err
	}
	defer source.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	dest, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer dest.Close()

	if _, err := io.Copy(dest, source); err != nil {
		return err
	}
	return nil
}
