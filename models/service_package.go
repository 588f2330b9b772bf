package models

// Package ids for the three fixed service tiers.
const (
	PackageFullValeting       = "full-valeting"
	PackageStandardValeting   = "standard-valeting"
	PackageRegularMaintenance = "regular-maintenance"
)

// ServicePackage describes one fixed service tier.
type ServicePackage struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Popular     bool     `json:"popular"`
	Duration    string   `json:"duration"`
	Icon        string   `json:"icon"`
}

// PackageBasePrices maps package id to its base price in GBP.
var PackageBasePrices = map[string]float64{
	PackageFullValeting:       80,
	PackageStandardValeting:   50,
	PackageRegularMaintenance: 30,
}

// PackageDisplayNames maps package id to the customer-facing name used in
// notification content.
var PackageDisplayNames = map[string]string{
	PackageFullValeting:       "Luxego Full Valeting",
	PackageStandardValeting:   "Luxego Standard Valeting",
	PackageRegularMaintenance: "Luxego Regular Maintenance",
}

// PackageDisplayPrices maps package id to the customer-facing price label.
var PackageDisplayPrices = map[string]string{
	PackageFullValeting:       "£80+",
	PackageStandardValeting:   "£50+",
	PackageRegularMaintenance: "£30+",
}

// IsValidPackage reports whether id names one of the three service tiers.
func IsValidPackage(id string) bool {
	_, ok := PackageBasePrices[id]
	return ok
}

// PackageCatalog is the static catalog served by the packages endpoint.
var PackageCatalog = []ServicePackage{
	{
		ID:          PackageFullValeting,
		Name:        "Luxego Full Valeting",
		Price:       80,
		Description: "Experience comprehensive care, inside and out",
		Features: []string{
			"Complete interior vacuuming",
			"Deep pre-wash treatment",
			"Premium interior care",
			"Exterior paint correction",
			"Alloy wheel cleaning",
			"Window polishing",
			"Air freshener application",
			"Leather conditioning (if applicable)",
		},
		Popular:  true,
		Duration: "3-4 hours",
		Icon:     "fa-crown",
	},
	{
		ID:          PackageStandardValeting,
		Name:        "Luxego Standard Valeting",
		Price:       50,
		Description: "Premium interior details, quick exterior shine",
		Features: []string{
			"Interior vacuuming",
			"Gentle pre-wash",
			"Basic interior care",
			"Exterior wash & dry",
			"Wheel cleaning",
			"Window cleaning",
			"Dashboard polishing",
		},
		Popular:  false,
		Duration: "2-3 hours",
		Icon:     "fa-star",
	},
	{
		ID:          PackageRegularMaintenance,
		Name:        "Luxego Regular Maintenance",
		Price:       30,
		Description: "Reliable regular cleaning",
		Features: []string{
			"Exterior wash",
			"Quick interior vacuum",
			"Window cleaning",
			"Tire dressing",
			"Air freshener spray",
		},
		Popular:  false,
		Duration: "1-2 hours",
		Icon:     "fa-check-circle",
	},
}
