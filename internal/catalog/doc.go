// Package catalog defines the static category table of the shop.
//
// Each category corresponds to one image folder under the images root.
// The table is ordered: its order is the scan order and the sortOrder
// written for each category row. A Table is immutable once built; callers
// receive copies of its entries.
package catalog
