package entities

import "github.com/shopspring/decimal"

// PlanLine is one purchase decision in the weekly plan
type PlanLine struct {
	Store              string
	Food               string
	PackageDescription string
	WeightLb           float64
	UnitPrice          decimal.Decimal
	Quantity           int
	TotalWeightLb      float64
	Cost               decimal.Decimal
}

// StoreSummary groups the plan lines bought at one store with subtotals
type StoreSummary struct {
	Store    string
	Packages int
	Cost     decimal.Decimal
	Lines    []PlanLine
}

// PurchasePlan is the weekly shopping list: every package with a positive
// solved quantity, plan-level rollups, and a per-store breakdown sorted by
// store name
type PurchasePlan struct {
	Lines         []PlanLine
	TotalCost     decimal.Decimal
	TotalPackages int
	TotalWeightLb float64
	Stores        []StoreSummary
}
