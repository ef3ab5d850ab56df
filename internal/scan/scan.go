package scan

import (
	"bufio"
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"namesim/internal/errs"
	"namesim/internal/logging"
)

// Entry is one file considered by the ranker. Name is the base name the
// similarity vectors are built from; Size feeds the combined-size output
// column and is zero for entries that never touched the filesystem.
type Entry struct {
	Path string
	Name string
	Size int64
}

// Options controls directory walking.
type Options struct {
	// Pattern restricts walked file names. Nil matches everything.
	Pattern *regexp.Regexp
	// IncludeHidden keeps dot-files and descends into dot-directories.
	IncludeHidden bool
	Logger        *slog.Logger
}

// Roots resolves each root into entries. Directories are walked, regular
// files are included as-is, and "-" reads base names from stdin. Entries are
// deduplicated by path; returned order follows discovery order so callers
// own the final sort.
func Roots(ctx context.Context, roots []string, stdin io.Reader, opts Options) ([]Entry, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	var entries []Entry
	seen := make(map[string]struct{})
	add := func(e Entry) {
		if _, ok := seen[e.Path]; ok {
			return
		}
		seen[e.Path] = struct{}{}
		entries = append(entries, e)
	}

	for _, root := range roots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if root == "-" {
			names, err := readNames(stdin)
			if err != nil {
				return nil, err
			}
			for _, name := range names {
				add(Entry{Path: name, Name: name})
			}
			continue
		}

		info, err := os.Stat(root)
		if err != nil {
			return nil, errs.Wrap(errs.ErrInput, "scan", "stat", root, err)
		}

		if !info.IsDir() {
			add(Entry{Path: root, Name: filepath.Base(root), Size: info.Size()})
			continue
		}

		logger.Info("scanning root", logging.String("root", root))
		if err := walkRoot(ctx, root, opts, logger, add); err != nil {
			return nil, err
		}
	}

	return entries, nil
}

func walkRoot(ctx context.Context, root string, opts Options, logger *slog.Logger, add func(Entry)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			// Unreadable subtrees are skipped, matching the best-effort
			// walk semantics of the rest of the pipeline.
			logger.Warn("skipping unreadable path",
				logging.String("path", path),
				logging.Error(err),
			)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		name := d.Name()
		hidden := strings.HasPrefix(name, ".") && path != root
		if d.IsDir() {
			if hidden && !opts.IncludeHidden {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if hidden && !opts.IncludeHidden {
			return nil
		}
		if opts.Pattern != nil && !opts.Pattern.MatchString(name) {
			return nil
		}

		var size int64
		if info, infoErr := d.Info(); infoErr == nil {
			size = info.Size()
		}
		logger.Debug("found file", logging.String("path", path))
		add(Entry{Path: path, Name: name, Size: size})
		return nil
	})
}

// readNames splits reader content into one base name per non-blank line.
// A read failure is an input error: partial lists must not pass silently.
func readNames(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, nil
	}
	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errs.Wrap(errs.ErrInput, "scan", "read names", "stdin", err)
	}
	return names, nil
}

// FromNames builds entries directly from explicit base names, preserving
// duplicates at distinct positions only once per identical string.
func FromNames(names []string) []Entry {
	entries := make([]Entry, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		entries = append(entries, Entry{Path: name, Name: name})
	}
	return entries
}
