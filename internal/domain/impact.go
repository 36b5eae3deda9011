package domain

import (
	"math"
	"strings"
)

// unitPrices holds rough per-unit prices by category, in dollars.
var unitPrices = map[Category]map[string]float64{
	CategoryDairy:      {"liter": 2.0, "piece": 3.0, "kg": 8.0},
	CategoryMeat:       {"kg": 12.0, "piece": 5.0},
	CategoryPoultry:    {"kg": 8.0, "piece": 4.0},
	CategoryFish:       {"kg": 15.0, "piece": 8.0},
	CategoryVegetables: {"kg": 3.0, "piece": 0.5},
	CategoryFruits:     {"kg": 4.0, "piece": 0.75},
	CategoryBread:      {"piece": 3.0, "kg": 4.0},
	CategoryEggs:       {"piece": 0.25, "dozen": 3.0},
	CategoryFrozen:     {"kg": 6.0, "piece": 4.0},
	CategoryCanned:     {"piece": 2.0},
	CategoryCondiments: {"piece": 4.0, "liter": 5.0},
	CategoryBeverages:  {"liter": 2.0, "piece": 1.5},
	CategorySnacks:     {"piece": 3.0, "kg": 8.0},
	CategoryGrains:     {"kg": 3.0, "piece": 2.0},
	CategoryOther:      {"piece": 2.0, "kg": 5.0},
}

// co2PerKg is kilograms of CO2 emitted per kilogram of food.
var co2PerKg = map[Category]float64{
	CategoryMeat:       27.0,
	CategoryPoultry:    6.9,
	CategoryFish:       5.0,
	CategoryDairy:      3.2,
	CategoryEggs:       4.8,
	CategoryVegetables: 2.0,
	CategoryFruits:     1.1,
	CategoryGrains:     2.7,
	CategoryBread:      1.5,
	CategoryOther:      2.5,
}

// waterPerKg is liters of water used per kilogram of food.
var waterPerKg = map[Category]float64{
	CategoryMeat:       15400,
	CategoryPoultry:    4300,
	CategoryFish:       3500,
	CategoryDairy:      1000,
	CategoryEggs:       3300,
	CategoryVegetables: 300,
	CategoryFruits:     800,
	CategoryGrains:     1600,
	CategoryBread:      1600,
	CategoryOther:      1000,
}

const (
	defaultCO2PerKg   = 2.5
	defaultWaterPerKg = 1000.0
	kgPerPiece        = 0.15
)

// Impact is the environmental footprint of a quantity of food.
type Impact struct {
	CO2Kg       float64
	WaterLiters float64
}

// EstimateValue returns the approximate price of qty units of a category, rounded to cents.
// Units with no known price fall back to the category's per-piece price.
func EstimateValue(category Category, qty float64, unit string) float64 {
	prices, ok := unitPrices[Category(strings.ToLower(string(category)))]
	if !ok {
		prices = unitPrices[CategoryOther]
	}
	price, ok := prices[strings.ToLower(unit)]
	if !ok {
		price, ok = prices["piece"]
		if !ok {
			price = 2.0
		}
	}
	return RoundTo(qty*price, 2)
}

// EstimateImpact converts qty to kilograms and applies per-category CO2 and water factors.
// Pieces weigh 150 g and a liter weighs a kilogram; other units are taken as kilograms.
func EstimateImpact(category Category, qty float64, unit string) Impact {
	kg := qty
	switch strings.ToLower(unit) {
	case "piece", "pieces":
		kg = qty * kgPerPiece
	case "liter", "liters", "l":
		kg = qty
	}

	c := Category(strings.ToLower(string(category)))
	co2, ok := co2PerKg[c]
	if !ok {
		co2 = defaultCO2PerKg
	}
	water, ok := waterPerKg[c]
	if !ok {
		water = defaultWaterPerKg
	}

	return Impact{
		CO2Kg:       RoundTo(kg*co2, 2),
		WaterLiters: RoundTo(kg*water, 0),
	}
}

// RoundTo rounds v to the given number of decimal places, halves away from zero.
func RoundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
