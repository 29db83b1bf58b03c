package models

import (
	"fmt"
	"strings"
)

// Category names as they appear in persisted orders
const (
	CategoryOils   = "Oils"
	CategorySnacks = "Snacks"
)

// MenuEntry is one selectable item within a category menu
type MenuEntry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Menu is the ordered list of entries for one category
type Menu []MenuEntry

// OilsMenu and SnacksMenu are the full catalog. Static for the process
// lifetime - there is no catalog management.
var OilsMenu = Menu{
	{Code: "1", Name: "Groundnut Oil"},
	{Code: "2", Name: "Coconut Oil"},
	{Code: "3", Name: "Sunflower Oil"},
	{Code: "4", Name: "Sesame Oil"},
}

var SnacksMenu = Menu{
	{Code: "1", Name: "Murukulu"},
	{Code: "2", Name: "Chekkalu"},
	{Code: "3", Name: "Mixture"},
	{Code: "4", Name: "Boondi"},
}

// ResolveCategory maps a user token to a category and its menu.
// Accepts the numeric codes "1"/"2" or the category name, case-insensitive.
func ResolveCategory(token string) (string, Menu, bool) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "1", "oils":
		return CategoryOils, OilsMenu, true
	case "2", "snacks":
		return CategorySnacks, SnacksMenu, true
	}
	return "", nil, false
}

// Lookup resolves an item code to its display name
func (m Menu) Lookup(code string) (string, bool) {
	for _, entry := range m {
		if entry.Code == code {
			return entry.Name, true
		}
	}
	return "", false
}

// Render returns the numbered menu listing sent to the user
func (m Menu) Render() string {
	lines := make([]string, 0, len(m))
	for _, entry := range m {
		lines = append(lines, fmt.Sprintf("%s️⃣ %s", entry.Code, entry.Name))
	}
	return strings.Join(lines, "\n")
}
