package external

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"

	_ "modernc.org/sqlite"
)

// DefaultZipcodeCSVURL is the public US ZIP dataset used to provision the table
const DefaultZipcodeCSVURL = "https://raw.githubusercontent.com/midwire/free_zipcode_data/develop/all_us_zipcodes.csv"

var (
	zipcodePattern   = regexp.MustCompile(`^(\d{5})(?:-\d{4})?$`)
	cityStatePattern = regexp.MustCompile(`^([A-Za-z .'-]+),\s*([A-Za-z]{2})$`)
)

// ZipcodeProviderAdapter implements GeocodingProvider with an offline SQLite
// table of US ZIP codes. Queries that are neither a ZIP nor "City, ST" are
// reported as not found without touching the database.
type ZipcodeProviderAdapter struct {
	db     *sql.DB
	logger ports.Logger
}

// OpenZipcodeDatabase opens the SQLite file, provisioning the zipcodes table
// from csvURL when it does not exist yet
func OpenZipcodeDatabase(ctx context.Context, path, csvURL string, client HTTPClient, logger ports.Logger) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, errors.NewConfigurationError("failed to create zipcode data directory", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to open zipcode database", err)
	}
	db.SetMaxOpenConns(1)

	exists, err := zipcodeTableExists(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if exists {
		return db, nil
	}

	if csvURL == "" {
		csvURL = DefaultZipcodeCSVURL
	}
	logger.Info("Zipcode table not found, provisioning", ports.F("source", csvURL))

	body, err := downloadZipcodeCSV(ctx, newHTTPClient(client), csvURL)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	defer func() {
		if closeErr := body.Close(); closeErr != nil {
			logger.Warn("Failed to close zipcode CSV body", ports.F("error", closeErr))
		}
	}()

	count, err := ProvisionZipcodeTable(ctx, db, body)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	logger.Info("Zipcode table provisioned", ports.F("rows", count))
	return db, nil
}

func zipcodeTableExists(ctx context.Context, db *sql.DB) (bool, error) {
	var count int
	err := db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='zipcodes'").Scan(&count)
	if err != nil {
		return false, errors.NewDatabaseError("failed to inspect zipcode database", err)
	}
	return count > 0, nil
}

func downloadZipcodeCSV(ctx context.Context, client HTTPClient, csvURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, csvURL, nil)
	if err != nil {
		return nil, errors.NewConfigurationError("invalid zipcode CSV URL", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.NewProviderUnavailableError("failed to download zipcode CSV", err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, errors.NewProviderUnavailableError(
			fmt.Sprintf("zipcode CSV download returned status %d", resp.StatusCode), nil)
	}
	return resp.Body, nil
}

// ProvisionZipcodeTable creates the zipcodes table and loads rows from r. The
// CSV layout is Zipcode,ZipCodeType,City,State,LocationType,Lat,Long with a
// header row; malformed rows are skipped.
func ProvisionZipcodeTable(ctx context.Context, db *sql.DB, r io.Reader) (int, error) {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS zipcodes (
			zipcode TEXT PRIMARY KEY,
			city TEXT NOT NULL,
			state TEXT NOT NULL,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL
		)`)
	if err != nil {
		return 0, errors.NewDatabaseError("failed to create zipcodes table", err)
	}
	if _, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_zipcodes_city_state ON zipcodes(city, state)`); err != nil {
		return 0, errors.NewDatabaseError("failed to create zipcodes index", err)
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	if _, err := reader.Read(); err != nil {
		return 0, errors.NewDatabaseError("failed to read zipcode CSV header", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.NewDatabaseError("failed to begin zipcode import", err)
	}
	stmt, err := tx.PrepareContext(ctx,
		"INSERT OR IGNORE INTO zipcodes (zipcode, city, state, latitude, longitude) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		_ = tx.Rollback()
		return 0, errors.NewDatabaseError("failed to prepare zipcode insert", err)
	}
	defer stmt.Close()

	count := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil || len(record) < 7 {
			continue
		}

		lat, err := strconv.ParseFloat(record[5], 64)
		if err != nil {
			continue
		}
		lon, err := strconv.ParseFloat(record[6], 64)
		if err != nil {
			continue
		}

		if _, err := stmt.ExecContext(ctx, record[0], record[2], record[3], lat, lon); err != nil {
			continue
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.NewDatabaseError("failed to commit zipcode import", err)
	}
	return count, nil
}

// NewZipcodeProviderAdapter creates a geocoding provider over a provisioned database
func NewZipcodeProviderAdapter(db *sql.DB, logger ports.Logger) *ZipcodeProviderAdapter {
	return &ZipcodeProviderAdapter{db: db, logger: logger}
}

// Search resolves a US ZIP code or a "City, ST" pair
func (p *ZipcodeProviderAdapter) Search(ctx context.Context, query string) (*ports.GeocodeResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.NewValidationError("query cannot be empty")
	}

	var (
		row     *sql.Row
		zipcode string
		city    string
		state   string
		lat     float64
		lon     float64
	)
	if m := zipcodePattern.FindStringSubmatch(query); m != nil {
		row = p.db.QueryRowContext(ctx,
			"SELECT zipcode, city, state, latitude, longitude FROM zipcodes WHERE zipcode = ?", m[1])
	} else if m := cityStatePattern.FindStringSubmatch(query); m != nil {
		row = p.db.QueryRowContext(ctx,
			`SELECT zipcode, city, state, latitude, longitude FROM zipcodes
			 WHERE city = ? COLLATE NOCASE AND state = ? COLLATE NOCASE ORDER BY zipcode LIMIT 1`,
			strings.TrimSpace(m[1]), strings.ToUpper(m[2]))
	} else {
		return nil, errors.NewNotFoundError("query is not a US ZIP code or city/state pair")
	}

	err := row.Scan(&zipcode, &city, &state, &lat, &lon)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("no ZIP entry for %q", query))
	}
	if err != nil {
		return nil, errors.NewProviderUnavailableError("zipcode lookup failed", err)
	}

	return &ports.GeocodeResult{
		Latitude:  lat,
		Longitude: lon,
		Components: ports.AddressComponents{
			City:    titleCase(city),
			State:   state,
			Country: "United States",
		},
		FormattedAddress: fmt.Sprintf("%s, %s %s", titleCase(city), state, zipcode),
	}, nil
}

// GetProviderName returns the name of this geocoding provider
func (p *ZipcodeProviderAdapter) GetProviderName() string {
	return "zipcode"
}

// Close releases the database handle
func (p *ZipcodeProviderAdapter) Close() error {
	return p.db.Close()
}

// the dataset stores city names in upper case
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
