// Package listings provides the SQL repositories for listing records,
// payment sessions and proposals.
package listings

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/raulbellosom/travel-sub004/internal/domain/entities/listing"
	"github.com/raulbellosom/travel-sub004/internal/domain/repositories"
	"github.com/raulbellosom/travel-sub004/internal/infrastructure/caching/interfaces"
	"github.com/raulbellosom/travel-sub004/internal/infrastructure/observability/logging"
)

const listingColumns = `id, resource_kind, category, title, description, commercial_mode,
	booking_type, pricing_model, price, currency, address, city, state, postal_code,
	lat, lng, media, tags, attributes, status, created, changed`

type ListingRepository struct {
	db     *sql.DB
	cache  interfaces.ListingCache
	logger *logging.ChanneledLogger
}

func NewListingRepository(db *sql.DB, cache interfaces.ListingCache, logger *logging.ChanneledLogger) *ListingRepository {
	return &ListingRepository{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

func (r *ListingRepository) FindByID(id string) (*listing.Record, error) {
	if record, found := r.cache.GetListing(id); found {
		return record, nil
	}

	record, err := r.loadFromDB(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}

	r.cache.SetListing(record)
	return record, nil
}

func (r *ListingRepository) FindByIDs(ids []string) ([]*listing.Record, error) {
	var result []*listing.Record
	var missingIDs []string

	for _, id := range ids {
		if record, found := r.cache.GetListing(id); found {
			result = append(result, record)
		} else {
			missingIDs = append(missingIDs, id)
		}
	}

	if len(missingIDs) > 0 {
		missing, err := r.loadMultipleFromDB(missingIDs)
		if err != nil {
			return nil, err
		}

		for _, record := range missing {
			r.cache.SetListing(record)
			result = append(result, record)
		}
	}

	return result, nil
}

func (r *ListingRepository) FindAllIDs() ([]string, error) {
	if ids, found := r.cache.GetAllListingIDs(); found {
		return ids, nil
	}

	ids, err := r.loadAllIDsFromDB()
	if err != nil {
		return nil, err
	}

	r.cache.SetAllListingIDs(ids)
	return ids, nil
}

func (r *ListingRepository) FindByKind(kind string) ([]*listing.Record, error) {
	return r.FindByFilters(repositories.ListingFilters{ResourceKind: kind})
}

func (r *ListingRepository) FindByCategory(category string) ([]*listing.Record, error) {
	return r.FindByFilters(repositories.ListingFilters{Category: category})
}

func (r *ListingRepository) FindByFilters(filters repositories.ListingFilters) ([]*listing.Record, error) {
	var conditions []string
	var args []any

	if filters.ResourceKind != "" {
		conditions = append(conditions, "resource_kind = ?")
		args = append(args, filters.ResourceKind)
	}
	if filters.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, filters.Category)
	}
	if filters.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, filters.Status)
	}
	if filters.City != "" {
		conditions = append(conditions, "city = ?")
		args = append(args, filters.City)
	}

	query := `SELECT ` + listingColumns + ` FROM listings`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created DESC"

	start := time.Now()
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()
	r.logger.LogSlowQuery(query, time.Since(start))

	records, err := scanListings(rows)
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		r.cache.SetListing(record)
	}
	return records, nil
}

func (r *ListingRepository) Store(record *listing.Record) error {
	mediaJSON, _ := json.Marshal(record.Media)
	tagsJSON, _ := json.Marshal(record.Tags)

	query := `INSERT INTO listings (` + listingColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.Exec(query, record.ID, record.ResourceKind, record.Category,
		record.Title, record.Description, record.CommercialMode, record.BookingType,
		record.PricingModel, record.Price, record.Currency, record.Address,
		record.City, record.State, record.PostalCode, record.Lat, record.Lng,
		string(mediaJSON), string(tagsJSON), record.Attributes, record.Status,
		record.Created, record.Changed)
	if err != nil {
		return fmt.Errorf("failed to insert listing: %w", err)
	}

	r.cache.InvalidateListing(record.ID)
	r.cache.SetListing(record)
	return nil
}

func (r *ListingRepository) Update(record *listing.Record) error {
	mediaJSON, _ := json.Marshal(record.Media)
	tagsJSON, _ := json.Marshal(record.Tags)

	query := `UPDATE listings SET resource_kind = ?, category = ?, title = ?,
		description = ?, commercial_mode = ?, booking_type = ?, pricing_model = ?,
		price = ?, currency = ?, address = ?, city = ?, state = ?, postal_code = ?,
		lat = ?, lng = ?, media = ?, tags = ?, attributes = ?, status = ?, changed = ?
		WHERE id = ?`

	_, err := r.db.Exec(query, record.ResourceKind, record.Category, record.Title,
		record.Description, record.CommercialMode, record.BookingType, record.PricingModel,
		record.Price, record.Currency, record.Address, record.City, record.State,
		record.PostalCode, record.Lat, record.Lng, string(mediaJSON), string(tagsJSON),
		record.Attributes, record.Status, record.Changed, record.ID)
	if err != nil {
		return fmt.Errorf("failed to update listing: %w", err)
	}

	r.cache.SetListing(record)
	return nil
}

func (r *ListingRepository) Delete(id string) error {
	query := `DELETE FROM listings WHERE id = ?`

	if _, err := r.db.Exec(query, id); err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}

	r.cache.InvalidateListing(id)
	return nil
}

func (r *ListingRepository) loadAllIDsFromDB() ([]string, error) {
	query := `SELECT id FROM listings ORDER BY created DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan listing ID: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return ids, nil
}

func (r *ListingRepository) loadFromDB(id string) (*listing.Record, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = ?`

	start := time.Now()
	row := r.db.QueryRow(query, id)
	r.logger.LogSlowQuery(query, time.Since(start))

	record, err := scanListing(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *ListingRepository) loadMultipleFromDB(ids []string) ([]*listing.Record, error) {
	if len(ids) == 0 {
		return []*listing.Record{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}

	query := `SELECT ` + listingColumns + ` FROM listings WHERE id IN (` +
		strings.Join(placeholders, ",") + `)`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()

	return scanListings(rows)
}

func scanListings(rows *sql.Rows) ([]*listing.Record, error) {
	var records []*listing.Record
	for rows.Next() {
		record, err := scanListing(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return records, nil
}

func scanListing(scan func(dest ...any) error) (*listing.Record, error) {
	var record listing.Record
	var description, commercialMode, bookingType, pricingModel sql.NullString
	var currency, address, city, state, postalCode sql.NullString
	var category, mediaStr, tagsStr, attributesStr sql.NullString
	var price, lat, lng sql.NullFloat64
	var createdStr string
	var changed sql.NullString

	err := scan(&record.ID, &record.ResourceKind, &category, &record.Title,
		&description, &commercialMode, &bookingType, &pricingModel, &price,
		&currency, &address, &city, &state, &postalCode, &lat, &lng,
		&mediaStr, &tagsStr, &attributesStr, &record.Status, &createdStr, &changed)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan listing: %w", err)
	}

	record.Category = category.String
	record.Description = description.String
	record.CommercialMode = commercialMode.String
	record.BookingType = bookingType.String
	record.PricingModel = pricingModel.String
	record.Currency = currency.String
	record.Address = address.String
	record.City = city.String
	record.State = state.String
	record.PostalCode = postalCode.String
	if price.Valid {
		record.Price = &price.Float64
	}
	if lat.Valid {
		record.Lat = &lat.Float64
	}
	if lng.Valid {
		record.Lng = &lng.Float64
	}
	record.Attributes = attributesStr.String

	if mediaStr.Valid && mediaStr.String != "" {
		if err := json.Unmarshal([]byte(mediaStr.String), &record.Media); err != nil {
			return nil, fmt.Errorf("failed to parse media payload: %w", err)
		}
	}
	if tagsStr.Valid && tagsStr.String != "" {
		if err := json.Unmarshal([]byte(tagsStr.String), &record.Tags); err != nil {
			return nil, fmt.Errorf("failed to parse tags payload: %w", err)
		}
	}

	if created, err := time.Parse("2006-01-02 15:04:05", createdStr); err == nil {
		record.Created = created
	}
	if changed.Valid {
		if changedTime, err := time.Parse("2006-01-02 15:04:05", changed.String); err == nil {
			record.Changed = &changedTime
		}
	}

	return &record, nil
}
