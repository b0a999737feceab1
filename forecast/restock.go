package forecast

import (
	"fmt"
	"math"
)

// demandShares computes each product's fraction of all product-attributed
// units ever sold. Service lines (nil product id) are excluded from both
// numerator and denominator. Returns nil when no line ever referenced a
// product.
func demandShares(sales []Sale) map[int]float64 {
	counts := make(map[int]int)
	totalUnits := 0
	for _, sale := range sales {
		for _, item := range sale.Items {
			if item.ProductID == nil {
				continue
			}
			counts[*item.ProductID] += item.Quantity
			totalUnits += item.Quantity
		}
	}
	if totalUnits == 0 {
		return nil
	}

	shares := make(map[int]float64, len(counts))
	for id, units := range counts {
		shares[id] = float64(units) / float64(totalUnits)
	}
	return shares
}

// suggestRestocks walks the catalog and flags every product whose
// estimated 30-day demand exceeds its current stock. Products that were
// never sold have no share and are never flagged. Quantities are rounded
// half-up so the output is deterministic.
func suggestRestocks(products []Product, shares map[int]float64, total30 float64) []Suggestion {
	suggestions := []Suggestion{}
	for _, p := range products {
		share, ok := shares[p.ID]
		if !ok {
			continue
		}
		estimated := total30 * share
		if estimated <= float64(p.Stock) {
			continue
		}
		reorder := int(math.Round(estimated - float64(p.Stock)))
		suggestions = append(suggestions, Suggestion{
			ProductName:          p.Name,
			CurrentStock:         p.Stock,
			EstimatedSales30Days: int(math.Round(estimated)),
			Suggestion:           fmt.Sprintf("Estoque recomendado: %d unidades.", reorder),
		})
	}
	return suggestions
}
