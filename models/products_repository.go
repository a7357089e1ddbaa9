package models

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductsRepository owns the canonical stored copy of every product.
// Instances handed out by its methods are detached snapshots.
type ProductsRepository struct {
	db *gorm.DB
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

// Migrate creates or updates the products table schema.
func (r *ProductsRepository) Migrate() error {
	return r.db.AutoMigrate(&Product{})
}

// Create inserts the product and lets the database assign its id. Creating
// an instance that already carries an id would silently duplicate the
// record, so that is rejected.
func (r *ProductsRepository) Create(product *Product) error {
	if product.ID != 0 {
		return validationErrorf("Create called on product that already has id [%d]", product.ID)
	}
	return r.db.Create(product).Error
}

// Find returns the product with the given id, or ErrProductNotFound.
func (r *ProductsRepository) Find(id uint) (*Product, error) {
	var product Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Update saves the record matching the product's id. A zero id is a caller
// error, not a no-op.
func (r *ProductsRepository) Update(product *Product) error {
	if product.ID == 0 {
		return validationErrorf("Update called on product with empty id")
	}
	return r.db.Save(product).Error
}

// Delete removes the product's row if it exists. Deleting an id that is
// absent from the store is a no-op.
func (r *ProductsRepository) Delete(product *Product) error {
	return r.db.Delete(&Product{}, product.ID).Error
}

// All returns every persisted product. Order is unspecified.
func (r *ProductsRepository) All() ([]Product, error) {
	var products []Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductsRepository) FindByName(name string) ([]Product, error) {
	return r.findWhere("name = ?", name)
}

func (r *ProductsRepository) FindByCategory(category Category) ([]Product, error) {
	return r.findWhere("category = ?", category.Name())
}

func (r *ProductsRepository) FindByAvailability(available bool) ([]Product, error) {
	return r.findWhere("available = ?", available)
}

// FindByPrice filters on exact price equality. Callers holding a textual
// price normalize it with ParsePrice first.
func (r *ProductsRepository) FindByPrice(price decimal.Decimal) ([]Product, error) {
	return r.findWhere("price = ?", price)
}

func (r *ProductsRepository) findWhere(query string, arg any) ([]Product, error) {
	var products []Product
	if err := r.db.Where(query, arg).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
