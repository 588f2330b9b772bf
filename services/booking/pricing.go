package booking

import "luxego/models"

// BasePrice returns the base price for a package id, or 0 for an unknown id.
func BasePrice(packageID string) float64 {
	return models.PackageBasePrices[packageID]
}

// ComputePrice derives a booking price: base price for the package plus the
// sum of add-on prices. Derivation happens once, at creation, and is never
// recomputed on update.
func ComputePrice(packageID string, addOns []models.AddOn) float64 {
	price := BasePrice(packageID)
	for _, a := range addOns {
		price += a.Price
	}
	return price
}
