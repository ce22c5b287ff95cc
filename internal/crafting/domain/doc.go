// Package domain holds the stored crafting records that surround the pure
// resolution engine: inventory-tracked ingredients and helpers for turning
// them into engine inputs. The engine itself lives in internal/core/craft
// and knows nothing about quantities or persistence.
package domain
