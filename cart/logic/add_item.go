package logic

import (
	catalog "github.com/Ramakant55/Trendora-Boutique/catalog/logic"
	"github.com/Ramakant55/Trendora-Boutique/common"
)

// HandleAddToCart increments an existing line or adds a new one with
// quantity 1, snapshotting the product's name, image and price. A line
// already at MaxQuantity is not incremented.
func HandleAddToCart(state *CartState, product catalog.Product) (common.Event, error) {
	if err := common.RequirePositive(product.ID, ErrMsgProductIDPositive); err != nil {
		return nil, err
	}

	if i := state.Find(product.ID); i >= 0 {
		current := state.Lines[i].Quantity
		if current >= MaxQuantity {
			return nil, common.NewFailedPreconditionf(ErrMsgQuantityLimit, product.ID, MaxQuantity)
		}
		return QuantityIncremented{
			ProductID:   product.ID,
			OldQuantity: current,
			NewQuantity: current + 1,
		}, nil
	}

	if err := common.RequireNotEmpty(product.Name, ErrMsgProductName); err != nil {
		return nil, err
	}
	if err := common.RequireNonNegative(product.Price, ErrMsgPriceNegative); err != nil {
		return nil, err
	}

	return ItemAdded{
		ProductID: product.ID,
		Name:      product.Name,
		Image:     product.Image,
		UnitPrice: product.Price,
		Quantity:  1,
	}, nil
}
