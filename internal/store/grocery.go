package store

import (
	"crypto/rand"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/dukerupert/hearth/internal/model"
)

type GroceryStore struct {
	db *sql.DB
}

func NewGroceryStore(db *sql.DB) *GroceryStore {
	return &GroceryStore{db: db}
}

func newItemID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

func normalizeCategory(category string) string {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return model.CategoryOther
	}
	return category
}

func normalizeQuantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}

// --- List methods ---

func scanList(scanner interface{ Scan(...any) error }) (*model.GroceryList, error) {
	var l model.GroceryList
	err := scanner.Scan(&l.ID, &l.Name, &l.SortOrder, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

const listCols = `id, name, sort_order, created_at`

func (s *GroceryStore) CreateList(name string) (*model.GroceryList, error) {
	result, err := s.db.Exec(
		`INSERT INTO grocery_lists (name, sort_order) VALUES (?, (SELECT COALESCE(MAX(sort_order), -1) + 1 FROM grocery_lists))`,
		name,
	)
	if err != nil {
		return nil, fmt.Errorf("insert list: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetList(id)
}

func (s *GroceryStore) GetList(id int64) (*model.GroceryList, error) {
	row := s.db.QueryRow(`SELECT `+listCols+` FROM grocery_lists WHERE id = ?`, id)
	l, err := scanList(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get list: %w", err)
	}
	return l, nil
}

func (s *GroceryStore) GetDefaultList() (*model.GroceryList, error) {
	row := s.db.QueryRow(`SELECT ` + listCols + ` FROM grocery_lists ORDER BY sort_order ASC LIMIT 1`)
	l, err := scanList(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get default list: %w", err)
	}
	return l, nil
}

func (s *GroceryStore) ListLists() ([]model.GroceryList, error) {
	rows, err := s.db.Query(`SELECT ` + listCols + ` FROM grocery_lists ORDER BY sort_order ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list lists: %w", err)
	}
	defer rows.Close()

	var lists []model.GroceryList
	for rows.Next() {
		l, err := scanList(rows)
		if err != nil {
			return nil, fmt.Errorf("scan list: %w", err)
		}
		lists = append(lists, *l)
	}
	return lists, rows.Err()
}

// DeleteList removes a list together with its items and section visits.
func (s *GroceryStore) DeleteList(id int64) error {
	_, err := s.db.Exec(`DELETE FROM grocery_lists WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	return nil
}

// --- Item methods ---

func scanItem(scanner interface{ Scan(...any) error }) (*model.CartItem, error) {
	var item model.CartItem
	var checkedAt sql.NullTime
	var checked int

	err := scanner.Scan(
		&item.ID, &item.ListID, &item.Name, &item.CategorySlug, &item.Quantity,
		&checked, &checkedAt, &item.SortOrder, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.Checked = checked != 0
	if checkedAt.Valid {
		item.CheckedAt = &checkedAt.Time
	}
	return &item, nil
}

const itemCols = `id, list_id, name, category_slug, quantity, checked, checked_at, sort_order, created_at`

func (s *GroceryStore) GetItem(id string) (*model.CartItem, error) {
	row := s.db.QueryRow(`SELECT `+itemCols+` FROM cart_items WHERE id = ?`, id)
	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// CreateItem appends an item to the end of a list. An empty category is
// stored as "other" and a quantity below 1 as 1.
func (s *GroceryStore) CreateItem(listID int64, name, category string, quantity int) (*model.CartItem, error) {
	id := newItemID()
	_, err := s.db.Exec(
		`INSERT INTO cart_items (id, list_id, name, category_slug, quantity, sort_order)
		 VALUES (?, ?, ?, ?, ?, (SELECT COALESCE(MAX(sort_order), -1) + 1 FROM cart_items WHERE list_id = ?))`,
		id, listID, name, normalizeCategory(category), normalizeQuantity(quantity), listID,
	)
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	return s.GetItem(id)
}

// ListItemsByList returns a list's items in the order they were added.
func (s *GroceryStore) ListItemsByList(listID int64) ([]model.CartItem, error) {
	rows, err := s.db.Query(
		`SELECT `+itemCols+` FROM cart_items WHERE list_id = ? ORDER BY sort_order ASC, created_at ASC`,
		listID,
	)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []model.CartItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (s *GroceryStore) UpdateItem(id, name, category string, quantity int) (*model.CartItem, error) {
	_, err := s.db.Exec(
		`UPDATE cart_items SET name = ?, category_slug = ?, quantity = ? WHERE id = ?`,
		name, normalizeCategory(category), normalizeQuantity(quantity), id,
	)
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	return s.GetItem(id)
}

func (s *GroceryStore) DeleteItem(id string) error {
	_, err := s.db.Exec(`DELETE FROM cart_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func (s *GroceryStore) ToggleChecked(id string) (*model.CartItem, error) {
	item, err := s.GetItem(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	if item.Checked {
		// Uncheck
		_, err = s.db.Exec(`UPDATE cart_items SET checked = 0, checked_at = NULL WHERE id = ?`, id)
	} else {
		// Check
		_, err = s.db.Exec(`UPDATE cart_items SET checked = 1, checked_at = ? WHERE id = ?`, time.Now().UTC(), id)
	}
	if err != nil {
		return nil, fmt.Errorf("toggle checked: %w", err)
	}
	return s.GetItem(id)
}

func (s *GroceryStore) ClearChecked(listID int64) (int64, error) {
	result, err := s.db.Exec(
		`DELETE FROM cart_items WHERE list_id = ? AND checked = 1`,
		listID,
	)
	if err != nil {
		return 0, fmt.Errorf("clear checked: %w", err)
	}
	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return count, nil
}

func (s *GroceryStore) CountUnchecked(listID int64) (int, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM cart_items WHERE list_id = ? AND checked = 0`,
		listID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count unchecked: %w", err)
	}
	return count, nil
}
