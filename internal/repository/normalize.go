package repository

import (
	"strconv"

	"quickcommerce/internal/entity"
)

// productFromRow maps a remote catalog row onto the canonical Product shape.
// The products table (or view) is owned externally and its column names vary
// between deployments, so each logical attribute is resolved through a fixed
// fallback order:
//
//	name:  name, then title, then the literal "Item"
//	stock: stock, then quantity, then 0
//	price: price, then 0
func productFromRow(row map[string]any) entity.Product {
	p := entity.Product{
		ID:   asID(row["id"]),
		Name: "Item",
	}
	if name, ok := firstString(row, "name", "title"); ok {
		p.Name = name
	}
	if sku, ok := asString(row["sku"]); ok {
		p.SKU = sku
	}
	if category, ok := asString(row["category"]); ok {
		p.Category = category
	}
	if price, ok := asFloat(row["price"]); ok {
		p.Price = price
	}
	if image, ok := asString(row["image_url"]); ok {
		p.ImageURL = image
	}
	if stock, ok := firstInt(row, "stock", "quantity"); ok {
		p.Stock = stock
	}
	if seller, ok := asString(row["seller_id"]); ok {
		p.SellerID = seller
	}
	return p
}

func firstString(row map[string]any, keys ...string) (string, bool) {
	for _, key := range keys {
		if s, ok := asString(row[key]); ok {
			return s, true
		}
	}
	return "", false
}

func firstInt(row map[string]any, keys ...string) (int, bool) {
	for _, key := range keys {
		if n, ok := asInt(row[key]); ok {
			return n, true
		}
	}
	return 0, false
}

// asID renders any identifier column as a string; numeric ids are formatted.
func asID(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return ""
}

func asString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, t != ""
	case []byte:
		return string(t), len(t) > 0
	}
	return "", false
}

func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(t, 64)
		return f, err == nil
	case []byte:
		f, err := strconv.ParseFloat(string(t), 64)
		return f, err == nil
	}
	return 0, false
}

func asInt(v any) (int, bool) {
	switch t := v.(type) {
	case int64:
		return int(t), true
	case float64:
		return int(t), true
	case string:
		n, err := strconv.Atoi(t)
		return n, err == nil
	case []byte:
		n, err := strconv.Atoi(string(t))
		return n, err == nil
	}
	return 0, false
}
