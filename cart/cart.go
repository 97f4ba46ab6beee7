// Package cart implements the cart aggregator: pure functions over an
// ordered list of cart lines, plus the persisted per-user store.
package cart

import "restaurant-order-api/models"

// Customization is the per-line selection attached on add: taste, topping
// subsets and a free-text comment.
type Customization struct {
	TasteType      models.TasteType  `json:"tasteType"`
	VegToppings    models.StringList `json:"vegToppings"`
	NonVegToppings models.StringList `json:"nonVegToppings"`
	UserComment    string            `json:"userComment"`
}

// AddOrIncrement returns lines with item added. If a line for the item's
// id already exists its quantity grows by one and its customization is
// replaced with cust (last write wins); otherwise a new line with
// quantity 1 is appended. Line order is preserved.
func AddOrIncrement(lines models.CartLines, item models.FoodItem, cust Customization) models.CartLines {
	out := make(models.CartLines, len(lines))
	copy(out, lines)
	for i := range out {
		if out[i].FoodID == item.ID {
			out[i].Quantity++
			out[i].TasteType = cust.TasteType
			out[i].VegToppings = cust.VegToppings
			out[i].NonVegToppings = cust.NonVegToppings
			out[i].UserComment = cust.UserComment
			return out
		}
	}
	return append(out, models.CartLine{
		FoodID:         item.ID,
		FoodName:       item.FoodName,
		Image:          item.Image,
		Quantity:       1,
		UnitPrice:      item.Price,
		TasteType:      cust.TasteType,
		VegToppings:    cust.VegToppings,
		NonVegToppings: cust.NonVegToppings,
		UserComment:    cust.UserComment,
	})
}

// UpdateQuantity adds delta to the quantity of the line referencing
// foodID. A line whose quantity drops to zero or below is removed.
func UpdateQuantity(lines models.CartLines, foodID uint, delta int) models.CartLines {
	out := make(models.CartLines, 0, len(lines))
	for _, l := range lines {
		if l.FoodID == foodID {
			l.Quantity += delta
			if l.Quantity <= 0 {
				continue
			}
		}
		out = append(out, l)
	}
	return out
}

// Remove drops the line referencing foodID unconditionally.
func Remove(lines models.CartLines, foodID uint) models.CartLines {
	out := make(models.CartLines, 0, len(lines))
	for _, l := range lines {
		if l.FoodID == foodID {
			continue
		}
		out = append(out, l)
	}
	return out
}

// Total sums unit price times quantity over every line. Rounding to two
// decimals happens at presentation, never here.
func Total(lines models.CartLines) float64 {
	var total float64
	for _, l := range lines {
		total += l.UnitPrice * float64(l.Quantity)
	}
	return total
}
