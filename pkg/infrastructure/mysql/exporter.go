package mysql

import (
	"context"
	"time"

	driver "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/wwegiel111/Elektro-shop/pkg/domain/model"
)

const (
	upsertProduct = `INSERT INTO products (id, name, category, price, stock_quantity, description, image_url, is_featured)
VALUES (:id, :name, :category, :price, :stock_quantity, :description, :image_url, :is_featured)
ON DUPLICATE KEY UPDATE name = VALUES(name), category = VALUES(category), price = VALUES(price),
    stock_quantity = VALUES(stock_quantity), description = VALUES(description),
    image_url = VALUES(image_url), is_featured = VALUES(is_featured)`

	upsertOrder = `INSERT INTO orders (id, user_id, total_amount, status, order_date, customer_email)
VALUES (:id, :user_id, :total_amount, :status, :order_date, :customer_email)
ON DUPLICATE KEY UPDATE status = VALUES(status)`

	insertOrderItem = `INSERT IGNORE INTO order_items (order_id, product_id, name, quantity, price_at_purchase)
VALUES (:order_id, :product_id, :name, :quantity, :price_at_purchase)`
)

type productRow struct {
	ID          int             `db:"id"`
	Name        string          `db:"name"`
	Category    string          `db:"category"`
	Price       decimal.Decimal `db:"price"`
	Stock       int             `db:"stock_quantity"`
	Description string          `db:"description"`
	Image       string          `db:"image_url"`
	Featured    bool            `db:"is_featured"`
}

type orderRow struct {
	ID           string          `db:"id"`
	UserID       *int            `db:"user_id"`
	Total        decimal.Decimal `db:"total_amount"`
	Status       string          `db:"status"`
	CreatedAt    time.Time       `db:"order_date"`
	ContactEmail *string         `db:"customer_email"`
}

type orderItemRow struct {
	OrderID   string          `db:"order_id"`
	ProductID int             `db:"product_id"`
	Name      string          `db:"name"`
	Quantity  int             `db:"quantity"`
	Price     decimal.Decimal `db:"price_at_purchase"`
}

// NormalizeDSN validates a go-sql-driver DSN and turns on time parsing.
func NormalizeDSN(dsn string) (string, error) {
	cfg, err := driver.ParseDSN(dsn)
	if err != nil {
		return "", errors.Wrap(err, "parse mysql dsn")
	}
	cfg.ParseTime = true
	return cfg.FormatDSN(), nil
}

func Open(ctx context.Context, dsn string) (*sqlx.DB, error) {
	dsn, err := NormalizeDSN(dsn)
	if err != nil {
		return nil, err
	}
	db, err := sqlx.ConnectContext(ctx, "mysql", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "connect to mysql")
	}
	return db, nil
}

// Exporter copies a snapshot of the storefront into the reporting tables.
type Exporter struct {
	db *sqlx.DB
}

func NewExporter(db *sqlx.DB) *Exporter {
	return &Exporter{db: db}
}

func (e *Exporter) ExportCatalog(ctx context.Context, products []model.Product) error {
	return e.inTx(ctx, func(tx *sqlx.Tx) error {
		for _, p := range products {
			if _, err := tx.NamedExecContext(ctx, upsertProduct, toProductRow(p)); err != nil {
				return errors.Wrapf(err, "export product %d", p.ID)
			}
		}
		return nil
	})
}

func (e *Exporter) ExportOrders(ctx context.Context, orders []model.Order) error {
	return e.inTx(ctx, func(tx *sqlx.Tx) error {
		for _, o := range orders {
			if _, err := tx.NamedExecContext(ctx, upsertOrder, toOrderRow(o)); err != nil {
				return errors.Wrapf(err, "export order %s", o.ID)
			}
			for _, item := range toOrderItemRows(o) {
				if _, err := tx.NamedExecContext(ctx, insertOrderItem, item); err != nil {
					return errors.Wrapf(err, "export order %s item %d", o.ID, item.ProductID)
				}
			}
		}
		return nil
	})
}

func (e *Exporter) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := e.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	if err = fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return errors.Wrap(tx.Commit(), "commit transaction")
}

func toProductRow(p model.Product) productRow {
	return productRow{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Stock:       p.Stock,
		Description: p.Description,
		Image:       p.Image,
		Featured:    p.Featured,
	}
}

func toOrderRow(o model.Order) orderRow {
	row := orderRow{
		ID:        o.ID,
		UserID:    o.OwnerID,
		Total:     o.Total,
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
	}
	if o.ContactEmail != "" {
		email := o.ContactEmail
		row.ContactEmail = &email
	}
	return row
}

func toOrderItemRows(o model.Order) []orderItemRow {
	rows := make([]orderItemRow, 0, len(o.Lines))
	for _, line := range o.Lines {
		rows = append(rows, orderItemRow{
			OrderID:   o.ID,
			ProductID: line.ID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}
	return rows
}
