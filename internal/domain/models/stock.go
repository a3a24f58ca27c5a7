package models

import "github.com/shopspring/decimal"

// StockStatus classifies an inventory item. It is derived from the
// transaction log at query time and never stored.
type StockStatus string

const (
	StockCurrent StockStatus = "current"
	StockSold    StockStatus = "sold"
)

// StockItem is a physical asset held in (or sold from) inventory.
type StockItem struct {
	ItemNumber     string          `json:"item_number"`
	DateOfPurchase string          `json:"date_of_purchase"`
	Type           string          `json:"type"`
	Description    string          `json:"description"`
	SupplierName   string          `json:"supplier_name"`
	Phone          string          `json:"phone"`
	Price          decimal.Decimal `json:"price"`
	Status         StockStatus     `json:"status"`
}

// StockItemCreate is the POST /api/stock request body. ItemNumber is
// optional; the store assigns the next counter value when it is blank.
type StockItemCreate struct {
	ItemNumber     string          `json:"item_number"`
	DateOfPurchase string          `json:"date_of_purchase" binding:"required"`
	Type           string          `json:"type" binding:"required"`
	Description    string          `json:"description" binding:"required"`
	SupplierName   string          `json:"supplier_name" binding:"required"`
	Phone          string          `json:"phone" binding:"required"`
	Price          decimal.Decimal `json:"price"`
}

// ItemType is one entry in the controlled vocabulary for StockItem.Type.
type ItemType struct {
	Name string `json:"name"`
}

// ItemTypeCreate is the POST /api/item-types request body.
type ItemTypeCreate struct {
	Name string `json:"name" binding:"required"`
}
