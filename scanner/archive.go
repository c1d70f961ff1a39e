package scanner

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golift.io/xtractr"
)

type extractFunc func(*xtractr.XFile) (int64, []string, error)

// extractors is checked in order against the lower-cased file name.
var extractors = []struct {
	suffix  string
	extract extractFunc
}{
	{".tar.gz", xtractr.ExtractTarGzip},
	{".tgz", xtractr.ExtractTarGzip},
	{".tar", xtractr.ExtractTar},
	{".zip", xtractr.ExtractZIP},
}

func archiveExtractor(path string) (extractFunc, bool) {
	name := strings.ToLower(filepath.Base(path))
	for _, e := range extractors {
		if strings.HasSuffix(name, e.suffix) {
			return e.extract, true
		}
	}
	return nil, false
}

func isArchive(path string) bool {
	_, ok := archiveExtractor(path)
	return ok
}

// ExtractArchive extracts a tar, tar.gz or zip archive below destDir and
// returns the paths of the regular files it contained. Entries that would
// land outside destDir fail the whole archive.
func ExtractArchive(archivePath, destDir string) ([]string, error) {
	extract, ok := archiveExtractor(archivePath)
	if !ok {
		return nil, errors.Errorf("%s is not a supported archive", archivePath)
	}
	destDir = filepath.Clean(destDir)
	_, _, err := extract(&xtractr.XFile{
		FilePath:  archivePath,
		OutputDir: destDir,
		FileMode:  0o644,
		DirMode:   0o755,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to extract %s", archivePath)
	}

	var files []string
	err = filepath.WalkDir(destDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	return files, errors.Wrapf(err, "failed to list %s", destDir)
}
