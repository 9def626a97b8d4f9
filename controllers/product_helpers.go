package controllers

import "topgames-api/models"

// shapeProducts applies the public mapping to every record of a read
// response. The result marshals to [] rather than null when empty.
func shapeProducts(products []models.Product) []map[string]interface{} {
	shaped := make([]map[string]interface{}, 0, len(products))
	for i := range products {
		shaped = append(shaped, products[i].Public())
	}
	return shaped
}
