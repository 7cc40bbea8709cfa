package products

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/avigneron/boutique/internal/common"
	"github.com/avigneron/boutique/internal/server/models"
)

func newSQLMockDB(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

func productRows(items ...*models.Product) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "name", "slug", "description", "price",
		"video_url", "thumbnail_url", "order_link", "category_id", "is_active",
		"created_at", "updated_at"})
	for _, p := range items {
		rows.AddRow(p.ID, p.Name, p.Slug, p.Description, p.Price,
			p.VideoURL, p.ThumbnailURL, p.OrderLink, p.CategoryID, p.IsActive,
			p.CreatedAt, p.UpdatedAt)
	}
	return rows
}

func sampleProduct() *models.Product {
	now := time.Now()
	return &models.Product{
		ID:           "p1",
		Name:         "Huile CBD 10%",
		Slug:         "huile-cbd-10",
		Description:  "Huile de CBD à spectre complet",
		Price:        29.99,
		VideoURL:     "https://example.com/v.mp4",
		ThumbnailURL: "https://example.com/t.jpg",
		OrderLink:    "https://example.com/order",
		CategoryID:   "c1",
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestProductList(t *testing.T) {
	repo, mock := newSQLMockDB(t)

	p := sampleProduct()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, slug`)).
		WillReturnRows(productRows(p))

	items, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(items) != 1 || items[0].ID != "p1" || items[0].Price != 29.99 {
		t.Fatalf("unexpected result: %+v", items)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestProductListByCategorySlug(t *testing.T) {
	repo, mock := newSQLMockDB(t)

	p := sampleProduct()
	mock.ExpectQuery(`JOIN categories c ON c\.id = p\.category_id`).
		WithArgs("huiles").
		WillReturnRows(productRows(p))

	items, err := repo.ListByCategorySlug(context.Background(), "huiles")
	if err != nil {
		t.Fatalf("ListByCategorySlug error: %v", err)
	}
	if len(items) != 1 || items[0].CategoryID != "c1" {
		t.Fatalf("unexpected result: %+v", items)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestProductGetNotFound(t *testing.T) {
	repo, mock := newSQLMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM products WHERE id = $1`)).
		WithArgs("missing").
		WillReturnRows(productRows())

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestProductCreate(t *testing.T) {
	repo, mock := newSQLMockDB(t)

	p := sampleProduct()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO products`)).
		WithArgs(p.ID, p.Name, p.Slug, p.Description, p.Price,
			p.VideoURL, p.ThumbnailURL, p.OrderLink, p.CategoryID,
			p.IsActive, p.CreatedAt, p.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestProductUpdateNotFound(t *testing.T) {
	repo, mock := newSQLMockDB(t)

	p := sampleProduct()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE products SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Update(context.Background(), p); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestProductDelete(t *testing.T) {
	repo, mock := newSQLMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM products WHERE id = $1`)).
		WithArgs("p1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM products WHERE id = $1`)).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "missing"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}
