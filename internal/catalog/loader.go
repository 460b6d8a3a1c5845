package catalog

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/CaseBox_Go/internal/domain"
	"github.com/osse101/CaseBox_Go/internal/logger"
	"github.com/osse101/CaseBox_Go/internal/metrics"
)

// Loader parses case directories into domain.Case values.
type Loader struct {
	validate *validator.Validate
	// sprites memoizes sprite existence keyed by path and the sprites
	// directory mtime, so adding or removing a sprite invalidates naturally.
	sprites *lru.Cache[string, bool]
}

// NewLoader creates a new Loader
func NewLoader() *Loader {
	// lru.New only fails for a non-positive size.
	cache, _ := lru.New[string, bool](SpriteCacheSize)
	return &Loader{
		validate: validator.New(),
		sprites:  cache,
	}
}

// LoadAll loads every case directory under root. Broken cases are skipped and
// reported; they never stop the rest of the catalog from loading. A missing
// root is created and yields an empty catalog.
func (l *Loader) LoadAll(ctx context.Context, root string) (*Catalog, []error) {
	log := logger.FromContext(ctx)

	entries, err := os.ReadDir(root)
	if errors.Is(err, fs.ErrNotExist) {
		if mkErr := os.MkdirAll(root, CatalogDirPermission); mkErr != nil {
			return New(nil), []error{fmt.Errorf(ErrMsgCreateRootFailed, mkErr)}
		}
		log.Info(LogMsgRootCreated, LogFieldDir, root)
		metrics.CatalogCasesLoaded.Set(0)
		return New(nil), nil
	}
	if err != nil {
		return New(nil), []error{fmt.Errorf(ErrMsgReadRootFailed, err)}
	}

	var (
		cases []domain.Case
		errs  []error
		seen  = make(map[string]bool)
	)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(root, entry.Name())

		c, err := l.LoadCase(ctx, dir)
		if err == nil && seen[c.Name] {
			err = fmt.Errorf("%w: %s", domain.ErrMalformedCatalogEntry, fmt.Sprintf(ErrMsgDuplicateCase, c.Name))
		}
		if err != nil {
			log.Warn(LogMsgCaseSkipped, LogFieldDir, dir, LogFieldError, err)
			metrics.CatalogCasesSkipped.Inc()
			errs = append(errs, fmt.Errorf("%s: %w", dir, err))
			continue
		}

		seen[c.Name] = true
		cases = append(cases, c)
	}

	metrics.CatalogCasesLoaded.Set(float64(len(cases)))
	log.Info(LogMsgCatalogLoaded, LogFieldDir, root, LogFieldLoaded, len(cases), LogFieldSkipped, len(errs))
	return New(cases), errs
}

// LoadCase parses one case directory. Every failure wraps
// domain.ErrMalformedCatalogEntry.
func (l *Loader) LoadCase(ctx context.Context, dir string) (domain.Case, error) {
	log := logger.FromContext(ctx)

	name, price, err := readMetadata(filepath.Join(dir, MetadataFileName))
	if err != nil {
		return domain.Case{}, malformed(err)
	}

	imagePath := filepath.Join(dir, ImageFileName)
	if !fileExists(imagePath) {
		return domain.Case{}, malformed(fmt.Errorf(ErrMsgMissingFile, ImageFileName))
	}

	items, err := l.readItems(ctx, dir)
	if err != nil {
		return domain.Case{}, malformed(err)
	}
	if len(items) == 0 {
		return domain.Case{}, malformed(domain.ErrEmptyCase)
	}

	c := domain.Case{
		Name:     name,
		Price:    price,
		ImageRef: imagePath,
		Items:    items,
	}
	if err := l.validate.Struct(c); err != nil {
		return domain.Case{}, malformed(fmt.Errorf(ErrMsgValidationFailed, err))
	}

	log.Debug(LogMsgCaseLoaded, LogFieldCase, name, LogFieldItems, len(items))
	return c, nil
}

func malformed(err error) error {
	if errors.Is(err, domain.ErrMalformedCatalogEntry) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrMalformedCatalogEntry, err)
}

func readMetadata(path string) (string, float64, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", 0, fmt.Errorf(ErrMsgMissingFile, MetadataFileName)
	}
	if err != nil {
		return "", 0, fmt.Errorf(ErrMsgReadFileFailed, MetadataFileName, err)
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	if len(lines) < 2 {
		return "", 0, fmt.Errorf(ErrMsgShortMetadata, MetadataFileName)
	}

	name := strings.TrimSpace(lines[0])
	if name == "" {
		return "", 0, errors.New(ErrMsgEmptyName)
	}
	price, err := parsePrice(lines[1])
	if err != nil {
		return "", 0, err
	}
	return name, price, nil
}

func (l *Loader) readItems(ctx context.Context, dir string) ([]domain.Item, error) {
	log := logger.FromContext(ctx)
	path := filepath.Join(dir, ItemsFileName)

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf(ErrMsgMissingFile, ItemsFileName)
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadFileFailed, ItemsFileName, err)
	}
	defer f.Close()

	spriteStamp := l.spriteDirStamp(dir)

	var items []domain.Item
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		item, reason := parseItemLine(line)
		if reason != "" {
			log.Warn(LogMsgItemLineSkipped, LogFieldDir, dir, LogFieldLine, lineNo, LogFieldReason, reason)
			continue
		}
		item.SpriteRef = l.resolveSprite(dir, spriteStamp, item)
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgReadFileFailed, ItemsFileName, err)
	}
	return items, nil
}

// parseItemLine returns the item or a non-empty reason it was rejected.
// Fields beyond the fourth are ignored.
func parseItemLine(line string) (domain.Item, string) {
	fields := strings.Split(line, ItemFieldSeparator)
	if len(fields) < ItemFieldCount {
		return domain.Item{}, fmt.Sprintf("expected %d fields, got %d", ItemFieldCount, len(fields))
	}

	itemName := strings.TrimSpace(fields[0])
	skinName := strings.TrimSpace(fields[1])
	if itemName == "" || skinName == "" {
		return domain.Item{}, "empty item or skin name"
	}

	price, err := parsePrice(fields[2])
	if err != nil {
		return domain.Item{}, err.Error()
	}

	return domain.Item{
		ItemName: itemName,
		SkinName: skinName,
		Price:    price,
		Rarity:   domain.ParseRarity(fields[3]),
	}, ""
}

func parsePrice(s string) (float64, error) {
	s = strings.TrimSpace(s)
	p, err := strconv.ParseFloat(s, 64)
	if err != nil || p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, fmt.Errorf(ErrMsgInvalidPrice, s)
	}
	return p, nil
}

// spriteDirStamp identifies the current contents of the sprites directory,
// or "" when there is none.
func (l *Loader) spriteDirStamp(dir string) string {
	info, err := os.Stat(filepath.Join(dir, SpritesDirName))
	if err != nil || !info.IsDir() {
		return ""
	}
	return strconv.FormatInt(info.ModTime().UnixNano(), 10)
}

// resolveSprite finds sprites/{item}_{skin}.png; a missing sprite is not an error.
func (l *Loader) resolveSprite(dir, stamp string, item domain.Item) string {
	if stamp == "" {
		return ""
	}
	path := filepath.Join(dir, SpritesDirName, item.ItemName+"_"+item.SkinName+SpriteExtension)
	key := path + "@" + stamp

	exists, ok := l.sprites.Get(key)
	if !ok {
		exists = fileExists(path)
		l.sprites.Add(key, exists)
	}
	if !exists {
		return ""
	}
	return path
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
