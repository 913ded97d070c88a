// Package profile implements the shop that turns money into skills.
package profile

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vovakirdan/skill-runner/internal/config"
	"github.com/vovakirdan/skill-runner/internal/runner"
)

var (
	// ErrInsufficientFunds is returned when the wallet cannot cover a price.
	ErrInsufficientFunds = errors.New("profile: insufficient funds")
	// ErrUnknownItem is returned for item names the shop does not sell.
	ErrUnknownItem = errors.New("profile: unknown item")
	// ErrAlreadyOwned is returned when buying a one-off item twice.
	ErrAlreadyOwned = errors.New("profile: already owned")
)

// Item names a shop item.
type Item string

const (
	ItemShotgun    Item = "shotgun" // one shotgun charge
	ItemExtraScore Item = "x2"      // double points for the next session
)

// Offer is a priced shop entry.
type Offer struct {
	Item  Item
	Price int
	Desc  string
}

// Catalog lists everything for sale at the given prices, cheapest first.
func Catalog(prices config.PriceConfig) []Offer {
	offers := []Offer{
		{Item: ItemShotgun, Price: prices.Shotgun, Desc: "one shotgun charge, clears the board"},
		{Item: ItemExtraScore, Price: prices.ExtraScore, Desc: "double dodge points next run"},
	}
	sort.SliceStable(offers, func(i, j int) bool { return offers[i].Price < offers[j].Price })
	return offers
}

// ParseItem converts a user-supplied name to an Item.
func ParseItem(name string) (Item, error) {
	switch Item(name) {
	case ItemShotgun, ItemExtraScore:
		return Item(name), nil
	case "extra_score", "multiplier":
		return ItemExtraScore, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownItem, name)
}

// Buy charges data for item and grants it. On error data is unchanged.
func Buy(data *runner.GameData, item Item, prices config.PriceConfig) error {
	var price int
	switch item {
	case ItemShotgun:
		price = prices.Shotgun
	case ItemExtraScore:
		if data.PlayerSkills.ExtraScore {
			return ErrAlreadyOwned
		}
		price = prices.ExtraScore
	default:
		return fmt.Errorf("%w: %q", ErrUnknownItem, item)
	}

	if data.Money < price {
		return fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientFunds, item, price, data.Money)
	}
	data.Money -= price

	switch item {
	case ItemShotgun:
		data.PlayerSkills.ShotgunSkill++
	case ItemExtraScore:
		data.PlayerSkills.ExtraScore = true
	}
	return nil
}
