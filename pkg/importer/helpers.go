package importer

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hazyhaar/smartdial/pkg/directory"
)

// downloadFile downloads url to dest with retries and timeout.
func downloadFile(ctx context.Context, url, dest string) error {
	client := &http.Client{Timeout: 10 * time.Minute}

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt)) * time.Second
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}

		resp, err := client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			lastErr = fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
			continue
		}

		f, err := os.Create(dest)
		if err != nil {
			resp.Body.Close()
			return fmt.Errorf("create file: %w", err)
		}

		_, copyErr := io.Copy(f, resp.Body)
		resp.Body.Close()
		closeErr := f.Close()

		if copyErr != nil {
			lastErr = copyErr
			continue
		}
		if closeErr != nil {
			return closeErr
		}
		return nil
	}
	return fmt.Errorf("download %s failed after 3 attempts: %w", url, lastErr)
}

func isRemote(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

// localPath strips a file:// scheme.
func localPath(url string) string {
	return strings.TrimPrefix(url, "file://")
}

// fetch makes the source available as a local file under dlDir and returns
// its path. Remote URLs are downloaded; ZIP archives are unpacked and the
// first entry with extension ext is returned.
func fetch(ctx context.Context, url, dlDir, ext string) (string, error) {
	path := localPath(url)
	if isRemote(url) {
		path = filepath.Join(dlDir, "download")
		if err := downloadFile(ctx, url, path); err != nil {
			return "", fmt.Errorf("download: %w", err)
		}
	}

	if !isZip(path) {
		return path, nil
	}
	files, err := unzipFile(path, dlDir)
	if err != nil {
		return "", fmt.Errorf("unzip: %w", err)
	}
	for _, f := range files {
		if strings.EqualFold(filepath.Ext(f), ext) {
			return f, nil
		}
	}
	return "", fmt.Errorf("no %s file in archive %s", ext, url)
}

func isZip(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	magic := make([]byte, 4)
	if _, err := io.ReadFull(f, magic); err != nil {
		return false
	}
	return string(magic) == "PK\x03\x04"
}

// unzipFile extracts a ZIP archive to destDir and returns the list of extracted file paths.
func unzipFile(src, destDir string) ([]string, error) {
	r, err := zip.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	defer r.Close()

	var paths []string
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}

		destPath := filepath.Join(destDir, filepath.Base(f.Name))
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open zip entry %s: %w", f.Name, err)
		}

		out, err := os.Create(destPath)
		if err != nil {
			rc.Close()
			return nil, fmt.Errorf("create %s: %w", destPath, err)
		}

		if _, err := io.Copy(out, rc); err != nil {
			rc.Close()
			out.Close()
			return nil, fmt.Errorf("extract %s: %w", f.Name, err)
		}
		rc.Close()
		out.Close()
		paths = append(paths, destPath)
	}
	return paths, nil
}

// writeDirectory stores contacts as outputDir/<src.DirectoryID>/data.gob
// with a manifest describing src.
func writeDirectory(src Source, outputDir string, contacts []directory.Contact) error {
	dir := filepath.Join(outputDir, src.DirectoryID)
	if err := ensureDir(dir); err != nil {
		return err
	}
	if err := directory.SaveGob(contacts, filepath.Join(dir, "data.gob")); err != nil {
		return fmt.Errorf("save gob: %w", err)
	}
	return directory.WriteManifest(dir, &directory.Manifest{
		ID:        src.DirectoryID,
		Version:   time.Now().UTC().Format("2006-01-02"),
		Region:    src.Region,
		Source:    src.Description,
		SourceURL: src.SourceURL,
		License:   src.License,
		DataFile:  "data.gob",
		Format:    directory.FormatSpec{Normalize: "keypad"},
	})
}

// ensureDir creates a directory if it doesn't exist.
func ensureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// withDownloadDir runs fn with a scratch directory under outputDir that is
// removed afterwards.
func withDownloadDir(outputDir string, fn func(dlDir string) error) error {
	if err := ensureDir(outputDir); err != nil {
		return err
	}
	dlDir, err := os.MkdirTemp(outputDir, "_download-")
	if err != nil {
		return fmt.Errorf("create download dir: %w", err)
	}
	defer os.RemoveAll(dlDir)
	return fn(dlDir)
}
