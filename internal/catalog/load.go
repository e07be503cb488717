package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strconv"
	"strings"
	"time"

	"netsize-service/internal/fileio"
)

// maxRemoteBytes — с запасом: каталог это несколько сотен строк.
const maxRemoteBytes = 8 << 20

// Load читает каталог из локального файла или по http(s) URL.
// Формат определяется по расширению; URL без расширения считается JSON.
func Load(ctx context.Context, source string, headerRow int) (*Catalog, Stats, error) {
	var (
		recs []map[string]string
		err  error
	)
	if isURL(source) {
		recs, err = fetchRemote(ctx, http.DefaultClient, source, headerRow)
	} else {
		recs, err = readLocal(source, headerRow)
	}
	if err != nil {
		return nil, Stats{}, fmt.Errorf("load catalog %s: %w", source, err)
	}
	cat, st := FromRecords(recs)
	return cat, st, nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func readLocal(p string, headerRow int) ([]map[string]string, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return fileio.ReadAnyMaps(f, p, headerRow)
}

func fetchRemote(ctx context.Context, client *http.Client, raw string, headerRow int) ([]map[string]string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	// ?v=<ms> — обход кэша CDN, как делала страница калькулятора
	q := u.Query()
	q.Set("v", strconv.FormatInt(time.Now().UnixMilli(), 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http status %d", resp.StatusCode)
	}

	name := path.Base(u.Path)
	if path.Ext(name) == "" {
		name += ".json"
	}
	return fileio.ReadAnyMaps(io.LimitReader(resp.Body, maxRemoteBytes), name, headerRow)
}
