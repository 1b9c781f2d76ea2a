// Package merchant provides the Merchant aggregate: a registered merchant
// principal owning exactly one shop. Merchants authenticate with a
// username and secret and manage the orders placed at their shop.
package merchant
