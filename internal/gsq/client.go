package gsq

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/gsqget/gsq-downloader/internal/geo"
	"github.com/gsqget/gsq-downloader/internal/model"
)

const (
	// DefaultBaseURL is the GSQ open-data portal action API.
	DefaultBaseURL = "https://geoscience.data.qld.gov.au/api/3/action"

	// DefaultPageSize is how many records each package_search page requests.
	DefaultPageSize = 100

	defaultTimeout = 5 * time.Minute

	dirPermissions = 0o755
)

// Client talks to a CKAN-compatible open-data portal.
type Client struct {
	baseURL  string
	http     *http.Client
	log      zerolog.Logger
	pageSize int
}

var _ Searcher = (*Client)(nil)

// NewClient creates a portal client. An empty baseURL selects the GSQ portal.
func NewClient(baseURL string, logger zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: defaultTimeout},
		log:      logger.With().Str("component", "gsq-client").Logger(),
		pageSize: DefaultPageSize,
	}
}

// Search pages through package_search until maxResults datasets are collected
// or the portal runs out of records. The polygon's bounding box constrains
// the query server-side; with precise enabled, records whose representative
// point falls outside the polygon are dropped client-side.
func (c *Client) Search(ctx context.Context, polygon model.Polygon, query string, filters []string,
	maxResults int, precise bool) (*model.ResultSet, error) {

	if polygon.VertexCount() < geo.MinPolygonVertices {
		return nil, fmt.Errorf("polygon needs at least %d vertices", geo.MinPolygonVertices)
	}
	if maxResults < 1 {
		return nil, fmt.Errorf("max results must be positive, got %d", maxResults)
	}

	c.log.Info().Str("query", query).Int("max_results", maxResults).Bool("precise", precise).
		Msg("searching datasets in polygon")

	set := &model.ResultSet{}
	dropped := 0

	for start := 0; len(set.Results) < maxResults; {
		page, err := c.searchPage(ctx, polygon, query, filters, start)
		if err != nil {
			return nil, err
		}

		set.Total = page.Count
		if len(page.Results) == 0 {
			break
		}

		for _, record := range page.Results {
			ds := record.toDataset()
			if precise && ds.HasPoint && !geo.Contains(polygon, ds.Lon, ds.Lat) {
				dropped++
				continue
			}
			set.Results = append(set.Results, ds)
			if len(set.Results) == maxResults {
				break
			}
		}

		start += len(page.Results)
		if start >= page.Count {
			break
		}
	}

	c.log.Info().Int("matched", len(set.Results)).Int("dropped", dropped).Int("portal_total", set.Total).
		Msg("polygon search finished")

	return set, nil
}

// SearchAndDownload performs Search and downloads the matching resources into
// destDir, one subdirectory per dataset. Resource failures are counted, not
// fatal; context cancellation aborts the run with the context error.
func (c *Client) SearchAndDownload(ctx context.Context, polygon model.Polygon, query string, filters []string,
	maxDatasets int, destDir string, formats []string, precise bool) (*model.DownloadReport, error) {

	if destDir == "" {
		return nil, fmt.Errorf("destination directory is required")
	}

	set, err := c.Search(ctx, polygon, query, filters, maxDatasets, precise)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(destDir, dirPermissions); err != nil {
		return nil, fmt.Errorf("failed to create destination directory: %w", err)
	}

	report := &model.DownloadReport{
		DatasetsFound: len(set.Results),
		OutputDir:     destDir,
		Results:       set.Results,
	}

	for _, ds := range set.Results {
		datasetDir := filepath.Join(destDir, sanitizeName(ds.Title, ds.ID))

		for _, res := range ds.Resources {
			if !formatMatches(res.Format, formats) {
				continue
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			report.ResourcesAttempted++
			if err := c.downloadResource(ctx, res, datasetDir); err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				c.log.Warn().Err(err).Str("resource", res.Name).Str("dataset", ds.Title).
					Msg("resource download failed")
				continue
			}
			report.ResourcesSaved++
		}
	}

	c.log.Info().Int("datasets", report.DatasetsFound).
		Int("attempted", report.ResourcesAttempted).Int("saved", report.ResourcesSaved).
		Str("dir", destDir).Msg("download finished")

	return report, nil
}

// searchPage issues one package_search request.
func (c *Client) searchPage(ctx context.Context, polygon model.Polygon, query string, filters []string,
	start int) (*searchPayload, error) {

	minLon, minLat, maxLon, maxLat := polygon.BoundingBox()

	params := url.Values{}
	params.Set("q", query)
	if len(filters) > 0 {
		params.Set("fq", strings.Join(filters, " "))
	}
	params.Set("rows", strconv.Itoa(c.pageSize))
	params.Set("start", strconv.Itoa(start))
	params.Set("ext_bbox", fmt.Sprintf("%g,%g,%g,%g", minLon, minLat, maxLon, maxLat))

	reqURL := c.baseURL + "/package_search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("portal request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("portal returned status %d", resp.StatusCode)
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode portal response: %w", err)
	}
	if !decoded.Success {
		msg := "unknown error"
		if decoded.Error != nil && decoded.Error.Message != "" {
			msg = decoded.Error.Message
		}
		return nil, fmt.Errorf("portal rejected search: %s", msg)
	}

	return &decoded.Result, nil
}

// downloadResource fetches one resource into dir, creating it on demand.
func (c *Client) downloadResource(ctx context.Context, res model.Resource, dir string) error {
	if res.URL == "" {
		return fmt.Errorf("resource %s has no download URL", res.ID)
	}

	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("failed to create dataset directory: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, res.URL, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("download request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download returned status %d", resp.StatusCode)
	}

	target := filepath.Join(dir, resourceFilename(res))
	out, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", target, err)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(target)
		return fmt.Errorf("failed to write %s: %w", target, err)
	}

	return out.Close()
}

// resourceFilename derives the on-disk name from the URL path, falling back
// to the resource name plus its format extension.
func resourceFilename(res model.Resource) string {
	if u, err := url.Parse(res.URL); err == nil {
		if base := path.Base(u.Path); base != "" && base != "." && base != "/" {
			return sanitizeName(base, res.ID)
		}
	}

	name := sanitizeName(res.Name, res.ID)
	if res.Format != "" && !strings.Contains(name, ".") {
		name += "." + strings.ToLower(res.Format)
	}
	return name
}

// formatMatches reports whether the resource format passes the filter.
// An empty filter accepts everything.
func formatMatches(format string, formats []string) bool {
	if len(formats) == 0 {
		return true
	}
	for _, f := range formats {
		if strings.EqualFold(format, f) {
			return true
		}
	}
	return false
}

// sanitizeName makes a string safe to use as a file or directory name,
// falling back to the given ID when nothing printable remains.
func sanitizeName(name, fallback string) string {
	name = strings.TrimSpace(name)
	replacer := strings.NewReplacer(
		"/", "_", "\\", "_", ":", "_", "*", "_",
		"?", "_", "\"", "_", "<", "_", ">", "_", "|", "_",
	)
	name = replacer.Replace(name)
	name = strings.Trim(name, ". ")

	const maxNameLength = 120
	if len(name) > maxNameLength {
		name = name[:maxNameLength]
	}
	if name == "" {
		return fallback
	}
	return name
}
