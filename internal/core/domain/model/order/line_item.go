package order

import (
	"encoding/json"
	"fmt"

	"marketplace/internal/pkg/errs"
)

// LineItem is a value object describing one requested item within an
// order: a name and a positive quantity. Line items are immutable once the
// order is created.
type LineItem struct {
	name     string
	quantity int
}

// NewLineItem creates a validated line item.
// The name must be non-empty and the quantity positive.
func NewLineItem(name string, quantity int) (LineItem, error) {
	if name == "" {
		return LineItem{}, errs.NewValueIsRequiredError("line item name")
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	return LineItem{name: name, quantity: quantity}, nil
}

// Name returns the item name.
func (li LineItem) Name() string {
	return li.name
}

// Quantity returns the requested quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// lineItemDoc is the canonical serialized form of a line item. The field
// names match the payloads the original system stored, so observed data
// round-trips unchanged.
type lineItemDoc struct {
	Name     string `json:"name"`
	Quantity int    `json:"qty"`
}

// ParseItems decodes a serialized items payload into validated line items.
// A payload that is not valid JSON, decodes to an empty sequence, or
// contains an invalid line item is rejected; malformed payloads are never
// stored as opaque text.
func ParseItems(payload []byte) ([]LineItem, error) {
	var docs []lineItemDoc
	if err := json.Unmarshal(payload, &docs); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("items", err)
	}

	return NewLineItems(docsToPairs(docs))
}

// EncodeItems produces the canonical serialized form of the items
// sequence. ParseItems(EncodeItems(items)) yields the original items.
func EncodeItems(items []LineItem) ([]byte, error) {
	docs := make([]lineItemDoc, len(items))
	for i, item := range items {
		docs[i] = lineItemDoc{Name: item.Name(), Quantity: item.Quantity()}
	}

	encoded, err := json.Marshal(docs)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("items", err)
	}
	return encoded, nil
}

// ItemPair is the plain form of a line item before validation, used by
// callers that collect items from structured input rather than a
// serialized payload.
type ItemPair struct {
	Name     string
	Quantity int
}

// NewLineItems validates a sequence of item pairs into line items.
// The sequence must be non-empty and every pair must be valid.
func NewLineItems(pairs []ItemPair) ([]LineItem, error) {
	if len(pairs) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	items := make([]LineItem, len(pairs))
	for i, pair := range pairs {
		item, err := NewLineItem(pair.Name, pair.Quantity)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	return items, nil
}

func docsToPairs(docs []lineItemDoc) []ItemPair {
	pairs := make([]ItemPair, len(docs))
	for i, doc := range docs {
		pairs[i] = ItemPair{Name: doc.Name, Quantity: doc.Quantity}
	}
	return pairs
}
